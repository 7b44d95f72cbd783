// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/ergochat/ircclient/irc/logger"
	"github.com/ergochat/ircclient/irc/message"
)

// Client is one connection to a server. Messages are read, parsed and
// dispatched in arrival order on the goroutine that calls Run; Send may
// be called from any goroutine.
type Client struct {
	// Sender provides the outbound commands, writing through the client.
	Sender

	config  *Config
	logger  *logger.Manager
	handler Handler

	stateMutex sync.Mutex // tier 1
	conn       IRCConn

	writeMutex sync.Mutex // tier 2
}

// NewClient returns a Client for the given configuration. It does not connect.
func NewClient(config *Config, logger *logger.Manager, handler Handler) *Client {
	if handler == nil {
		handler = &DefaultHandler{}
	}
	client := &Client{
		config:  config,
		logger:  logger,
		handler: handler,
	}
	client.Sender = Sender{client}
	return client
}

// Config returns the configuration the client was created with.
func (client *Client) Config() *Config {
	return client.config
}

// Send encodes m and writes it to the connection.
func (client *Client) Send(m message.Message) error {
	line, err := m.Line()
	if err != nil {
		return err
	}

	client.stateMutex.Lock()
	conn := client.conn
	client.stateMutex.Unlock()
	if conn == nil {
		return errNotConnected
	}

	if client.logger.IsLoggingRawIO() {
		client.logger.Debug("rawout", string(line[:len(line)-len(crlf)]))
	}

	client.writeMutex.Lock()
	defer client.writeMutex.Unlock()
	return conn.Write(line)
}

// Run connects, performs the handshake, and reads until the connection
// ends or ctx is cancelled. Cancellation and a server-side close are
// clean shutdowns and return nil.
func (client *Client) Run(ctx context.Context) error {
	client.logger.Info("connect", "Connecting to", client.serverName())
	conn, localAddr, err := dialIRCConn(ctx, &client.config.Server)
	if err != nil {
		client.logger.Error("connect", "Could not connect", err.Error())
		return fmt.Errorf("connect: %w", err)
	}
	client.logger.Info("connect", "Connected to", client.serverName())
	return client.RunConn(ctx, conn, localAddr)
}

// RunConn is Run over an already established connection.
func (client *Client) RunConn(ctx context.Context, conn IRCConn, localAddr net.Addr) (err error) {
	client.stateMutex.Lock()
	client.conn = conn
	client.stateMutex.Unlock()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	err = client.handshake(localAddr)
	if err == nil {
		err = client.handler.OnConnect(client)
	}
	if err == nil {
		err = client.readLoop(conn)
	}

	if ctx.Err() != nil || errors.Is(err, io.EOF) {
		err = nil
	}
	client.handler.OnDisconnect(client, err)

	client.stateMutex.Lock()
	client.conn = nil
	client.stateMutex.Unlock()
	conn.Close()

	if err != nil {
		client.logger.Error("connect", "Disconnected", err.Error())
	} else {
		client.logger.Info("connect", "Disconnected")
	}
	return err
}

// Close closes the connection, which ends Run.
func (client *Client) Close() error {
	client.stateMutex.Lock()
	conn := client.conn
	client.stateMutex.Unlock()
	if conn == nil {
		return errNotConnected
	}
	return conn.Close()
}

func (client *Client) serverName() string {
	if client.config.Server.WebSocket != "" {
		return client.config.Server.WebSocket
	}
	return client.config.Server.Address
}

// handshakeHostname picks the hostname sent in USER: the configured one,
// else the local address of the socket, else "localhost".
func (client *Client) handshakeHostname(localAddr net.Addr) string {
	if client.config.Server.Hostname != "" {
		return client.config.Server.Hostname
	}
	if localAddr != nil {
		if host, _, err := net.SplitHostPort(localAddr.String()); err == nil && host != "" {
			return host
		}
	}
	return "localhost"
}

func (client *Client) handshake(localAddr net.Addr) (err error) {
	config := client.config
	if config.Server.Password != "" {
		if err = client.Pass(config.Server.Password); err != nil {
			return
		}
	}
	if err = client.Nick(config.Client.Nick); err != nil {
		return
	}
	return client.User(config.Client.Username, client.handshakeHostname(localAddr), config.Server.Host(), config.Client.Realname)
}

func (client *Client) readLoop(conn IRCConn) error {
	decoder := client.config.Server.Decoder()
	if decoder == nil {
		decoder, _ = message.NewDecoder("")
	}

	for {
		line, err := conn.ReadLine()
		if err != nil {
			return err
		}
		if client.logger.IsLoggingRawIO() {
			client.logger.Debug("rawin", string(line))
		}

		// the reader's buffer may continue past line, so copy before terminating it
		raw := make([]byte, 0, len(line)+len(crlf))
		raw = append(append(raw, line...), crlf...)
		msg, err := decoder.Parse(raw)
		if err != nil {
			client.logger.Warning("parse", "Skipping unparseable line", err.Error(), string(line))
			continue
		}

		if err := Dispatch(client.handler, client, &msg); err != nil {
			client.logger.Error("dispatch", msg.Kind.String(), err.Error())
			return err
		}
	}
}
