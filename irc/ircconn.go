// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"net"
	"unicode/utf8"

	"github.com/ergochat/irc-go/ircreader"
	"github.com/gorilla/websocket"

	"github.com/ergochat/ircclient/irc/message"
)

var (
	crlf = []byte{'\r', '\n'}
)

// IRCConn abstracts away the distinction between a regular
// net.Conn (which includes both raw TCP and TLS) and a websocket.
// it doesn't expose Read and Write because websockets are message-oriented,
// not stream-oriented.
type IRCConn interface {
	// Write sends one line, CRLF included.
	Write([]byte) error
	// ReadLine blocks until a full line is read and returns it without
	// its terminator.
	ReadLine() (line []byte, err error)

	Close() error
}

// IRCStreamConn is an IRCConn over a regular stream connection.
type IRCStreamConn struct {
	conn   net.Conn
	reader ircreader.Reader
}

// NewIRCStreamConn returns an IRCStreamConn that buffers at most maxReadQ
// bytes of an unterminated line.
func NewIRCStreamConn(conn net.Conn, maxReadQ int) *IRCStreamConn {
	var cc IRCStreamConn
	cc.conn = conn
	cc.reader.Initialize(conn, message.MaxLineLength, maxReadQ)
	return &cc
}

func (cc *IRCStreamConn) Write(buf []byte) (err error) {
	_, err = cc.conn.Write(buf)
	return
}

func (cc *IRCStreamConn) ReadLine() (line []byte, err error) {
	line, err = cc.reader.ReadLine()
	if errors.Is(err, ircreader.ErrReadQ) {
		err = errReadQ
	}
	return
}

func (cc *IRCStreamConn) Close() (err error) {
	return cc.conn.Close()
}

// IRCWSConn is an IRCConn over a websocket.
type IRCWSConn struct {
	conn *websocket.Conn
}

func NewIRCWSConn(conn *websocket.Conn) IRCWSConn {
	return IRCWSConn{conn: conn}
}

func (wc IRCWSConn) Write(buf []byte) (err error) {
	buf = bytes.TrimSuffix(buf, crlf)
	// the text subprotocol can't carry invalid UTF-8;
	// silently drop the message
	if !utf8.Valid(buf) {
		return nil
	}
	return wc.conn.WriteMessage(websocket.TextMessage, buf)
}

func (wc IRCWSConn) ReadLine() (line []byte, err error) {
	for {
		var messageType int
		messageType, line, err = wc.conn.ReadMessage()
		// on empty message or non-text message, try again, block if necessary
		if err != nil {
			return
		}
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			line = bytes.TrimSuffix(line, crlf)
			if len(line) != 0 {
				return
			}
		}
	}
}

func (wc IRCWSConn) Close() (err error) {
	return wc.conn.Close()
}

// dialIRCConn connects to the configured server and returns the
// connection along with the local address of the underlying socket.
func dialIRCConn(ctx context.Context, config *ServerConfig) (IRCConn, net.Addr, error) {
	ctx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	if config.WebSocket != "" {
		dialer := websocket.Dialer{
			TLSClientConfig:  config.TLSConfig(),
			HandshakeTimeout: config.ConnectTimeout,
			Subprotocols:     []string{"text.ircv3.net", "binary.ircv3.net"},
			ReadBufferSize:   config.MaxReadQBytes,
		}
		conn, _, err := dialer.DialContext(ctx, config.WebSocket, nil)
		if err != nil {
			return nil, nil, err
		}
		conn.SetReadLimit(int64(config.MaxReadQBytes))
		return NewIRCWSConn(conn), conn.LocalAddr(), nil
	}

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", config.Address)
	if err != nil {
		return nil, nil, err
	}
	if tlsConfig := config.TLSConfig(); tlsConfig != nil {
		tlsConn := tls.Client(conn, tlsConfig)
		if err := tlsConn.HandshakeContext(ctx); err != nil {
			conn.Close()
			return nil, nil, err
		}
		conn = tlsConn
	}
	return NewIRCStreamConn(conn, config.MaxReadQBytes), conn.LocalAddr(), nil
}
