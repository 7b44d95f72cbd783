// Copyright (c) 2026 ircclient authors
// released under the MIT license

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/ergochat/irc-go/ircfmt"
	"github.com/okzk/sdnotify"

	"github.com/ergochat/ircclient/irc"
	"github.com/ergochat/ircclient/irc/kafka"
	"github.com/ergochat/ircclient/irc/logger"
	"github.com/ergochat/ircclient/irc/message"
	"github.com/ergochat/ircclient/irc/transcript"
	"github.com/ergochat/ircclient/irc/utils"
)

const (
	ctcpDelim = "\x01"
	// room left in a PRIVMSG line for the text, assuming a long target
	wrapWidth = 400
	// nick collisions tolerated during registration before giving up
	maxNickRetries = 3
)

// console prints conversation to a terminal and reads commands from it.
type console struct {
	irc.DefaultHandler

	config *irc.Config
	logger *logger.Manager
	store  *transcript.Store
	sink   *kafka.Sink

	outMutex sync.Mutex // tier 2
	out      io.Writer
	now      func() time.Time

	stateMutex sync.Mutex // tier 1
	nick        string
	target      string
	registered  bool
	nickRetries int
}

func newConsole(config *irc.Config, logger *logger.Manager, out io.Writer) *console {
	c := &console{
		config: config,
		logger: logger,
		out:    out,
		now:    time.Now,
		nick:   config.Client.Nick,
	}
	c.Replies = irc.NewReplyMux()
	c.Replies.Handle(message.RPL_WELCOME, c.welcome)
	c.Replies.Handle(message.ERR_NICKNAMEINUSE, c.nickInUse)
	c.Replies.Handle(message.ERR_NICKCOLLISION, c.nickInUse)
	c.Replies.Fallback = c.printReply
	return c
}

func (c *console) currentNick() string {
	c.stateMutex.Lock()
	defer c.stateMutex.Unlock()
	return c.nick
}

func (c *console) printf(format string, args ...interface{}) {
	c.outMutex.Lock()
	defer c.outMutex.Unlock()
	fmt.Fprintf(c.out, "%s "+format+"\n", append([]interface{}{c.now().Format("15:04")}, args...)...)
}

// replay prints the most recent transcript lines for every known target.
func (c *console) replay(limit int) error {
	if c.store == nil || limit <= 0 {
		return nil
	}
	targets, err := c.store.Targets()
	if err != nil {
		return err
	}
	for _, target := range targets {
		entries, err := c.store.Recent(target, limit)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			c.outMutex.Lock()
			fmt.Fprintf(c.out, "%s [%s] %s\n", entry.Time.Local().Format("01-02 15:04"), entry.Target, ircfmt.Strip(entry.Line))
			c.outMutex.Unlock()
		}
	}
	return nil
}

func (c *console) OnConnect(w irc.Writer) error {
	c.printf("-!- Connected, registering as %s", c.currentNick())
	return nil
}

func (c *console) OnDisconnect(w irc.Writer, err error) {
	c.stateMutex.Lock()
	c.registered = false
	c.nickRetries = 0
	c.stateMutex.Unlock()
	if err != nil {
		c.printf("-!- Disconnected: %v", err)
	} else {
		c.printf("-!- Disconnected")
	}
}

func (c *console) OnAnyMessage(w irc.Writer, m *message.Message) {
	if c.store != nil {
		if _, err := c.store.Record(m, c.currentNick()); err != nil {
			c.logger.Warning("transcript", "Could not record message", err.Error())
		}
	}
	if c.sink != nil {
		c.sink.Publish(m)
	}
}

func (c *console) OnInvalidMessage(w irc.Writer, m *message.Message) error {
	c.logger.Debug("dispatch", "Ignoring malformed", m.Kind.String(), m.String())
	return nil
}

func (c *console) OnUnknownReply(w irc.Writer, m *message.Message) error {
	return c.printReply(w, m)
}

func (c *console) welcome(w irc.Writer, m *message.Message) error {
	c.stateMutex.Lock()
	c.registered = true
	if nick := m.Param(0); nick != "" {
		c.nick = nick
	}
	c.stateMutex.Unlock()

	if err := sdnotify.Ready(); err != nil {
		c.logger.Debug("connect", "sd_notify unavailable", err.Error())
	}
	if err := c.printReply(w, m); err != nil {
		return err
	}
	if len(c.config.Client.Autojoin) != 0 {
		return irc.Sender{Writer: w}.Join(c.config.Client.Autojoin, nil)
	}
	return nil
}

// nickInUse retries registration with an underscore appended, a few
// times. Erroneous nicks are only reported: appending can't fix them.
func (c *console) nickInUse(w irc.Writer, m *message.Message) error {
	c.stateMutex.Lock()
	if c.registered || c.nickRetries >= maxNickRetries {
		retrying := !c.registered
		c.stateMutex.Unlock()
		if retrying {
			c.printf("-!- Nick %s is unavailable; choose another with /nick", m.Param(1))
			return nil
		}
		return c.printReply(w, m)
	}
	c.nickRetries++
	c.nick += "_"
	nick := c.nick
	c.stateMutex.Unlock()
	c.printf("-!- Nick %s is unavailable, trying %s", m.Param(1), nick)
	return irc.Sender{Writer: w}.Nick(nick)
}

func (c *console) printReply(w irc.Writer, m *message.Message) error {
	params := m.Params
	// the first param of a reply is our own nick
	if len(params) != 0 {
		params = params[1:]
	}
	c.printf("-%s- %s", m.Nick(), ircfmt.Strip(strings.Join(params, " ")))
	return nil
}

func (c *console) OnNick(w irc.Writer, origin, nick string, hopcount *int) error {
	old := message.Message{Origin: origin}
	c.stateMutex.Lock()
	if old.Nick() == c.nick {
		c.nick = nick
	}
	c.stateMutex.Unlock()
	c.printf("-!- %s is now known as %s", old.Nick(), nick)
	return nil
}

func (c *console) OnJoin(w irc.Writer, origin string, channels, keys []string) error {
	who := message.Message{Origin: origin}
	if who.Nick() == c.currentNick() && len(channels) != 0 {
		c.stateMutex.Lock()
		c.target = channels[len(channels)-1]
		c.stateMutex.Unlock()
	}
	c.printf("-!- %s has joined %s", origin, strings.Join(channels, ","))
	return nil
}

func (c *console) OnPart(w irc.Writer, origin string, channels []string, msg *string) error {
	reason := ""
	if msg != nil {
		reason = " (" + ircfmt.Strip(*msg) + ")"
	}
	c.printf("-!- %s has left %s%s", origin, strings.Join(channels, ","), reason)
	return nil
}

func (c *console) OnQuit(w irc.Writer, origin string, msg *string) error {
	reason := ""
	if msg != nil {
		reason = " (" + ircfmt.Strip(*msg) + ")"
	}
	c.printf("-!- %s has quit%s", origin, reason)
	return nil
}

func (c *console) OnKick(w irc.Writer, origin, channel, user string, comment *string) error {
	reason := ""
	if comment != nil {
		reason = " (" + ircfmt.Strip(*comment) + ")"
	}
	c.printf("-!- %s was kicked from %s by %s%s", user, channel, origin, reason)
	return nil
}

func (c *console) OnTopic(w irc.Writer, origin, channel string, topic *string) error {
	if topic != nil {
		c.printf("-!- %s changed the topic of %s to: %s", origin, channel, ircfmt.Strip(*topic))
	}
	return nil
}

func (c *console) OnChannelMode(w irc.Writer, origin, channel, modes string, args []string) error {
	c.printf("-!- mode/%s [%s] by %s", channel, strings.Join(append([]string{modes}, args...), " "), origin)
	return nil
}

func (c *console) OnUserMode(w irc.Writer, origin, nick, modes string) error {
	c.printf("-!- mode/%s [%s]", nick, modes)
	return nil
}

func (c *console) OnInvite(w irc.Writer, origin, nick, channel string) error {
	c.printf("-!- %s invites you to %s", origin, channel)
	return nil
}

func (c *console) OnPrivmsg(w irc.Writer, origin string, receivers []string, text string) error {
	sender := message.Message{Origin: origin}
	nick := sender.Nick()
	if ctcp, ok := ctcpBody(text); ok {
		return c.ctcp(w, nick, ctcp)
	}
	c.printf("[%s] <%s> %s", strings.Join(receivers, ","), nick, ircfmt.Strip(text))
	return nil
}

func (c *console) OnNotice(w irc.Writer, origin, nick, text string) error {
	sender := message.Message{Origin: origin}
	c.printf("-%s- %s", sender.Nick(), ircfmt.Strip(text))
	return nil
}

func (c *console) OnWallops(w irc.Writer, origin, text string) error {
	c.printf("!%s! %s", origin, ircfmt.Strip(text))
	return nil
}

func (c *console) OnError(w irc.Writer, origin, msg string) error {
	c.printf("-!- ERROR %s", msg)
	return nil
}

func ctcpBody(text string) (string, bool) {
	if len(text) < 2 || !strings.HasPrefix(text, ctcpDelim) {
		return "", false
	}
	return strings.TrimSuffix(text[1:], ctcpDelim), true
}

// ctcp answers VERSION and PING queries and prints ACTIONs.
func (c *console) ctcp(w irc.Writer, nick, body string) error {
	verb, arg, _ := strings.Cut(body, " ")
	switch verb {
	case "ACTION":
		c.printf("* %s %s", nick, ircfmt.Strip(arg))
	case "VERSION":
		return irc.Sender{Writer: w}.Notice(nick, ctcpDelim+"VERSION "+irc.Ver+ctcpDelim)
	case "PING":
		return irc.Sender{Writer: w}.Notice(nick, ctcpDelim+body+ctcpDelim)
	default:
		c.logger.Debug("ctcp", "Ignoring", verb, "from", nick)
	}
	return nil
}

// errQuit ends the input loop after a /quit.
var errQuit = errors.New("quit requested")

// input reads commands from in until EOF or ctx is done. It returns
// errQuit after a /quit.
func (c *console) input(ctx context.Context, w irc.Writer, in io.Reader) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			err := c.command(w, line)
			if err == errQuit {
				return err
			} else if err != nil {
				c.printf("-!- %v", err)
			}
		}
	}
}

// command runs one line of user input: a /command, or text for the
// current target.
func (c *console) command(w irc.Writer, line string) error {
	sender := irc.Sender{Writer: w}
	if !strings.HasPrefix(line, "/") || strings.HasPrefix(line, "//") {
		line = strings.TrimPrefix(line, "/")
		c.stateMutex.Lock()
		target := c.target
		c.stateMutex.Unlock()
		if target == "" {
			return errors.New("no target; /join a channel or use /msg")
		}
		return c.say(sender, target, line)
	}

	verb, arg, _ := strings.Cut(line[1:], " ")
	switch strings.ToLower(verb) {
	case "join":
		channels, keys, _ := strings.Cut(arg, " ")
		if channels == "" {
			return errors.New("usage: /join <channels> [keys]")
		}
		var keyList []string
		if keys != "" {
			keyList = strings.Split(keys, ",")
		}
		return sender.Join(strings.Split(channels, ","), keyList)
	case "part":
		channels, reason, _ := strings.Cut(arg, " ")
		if channels == "" {
			c.stateMutex.Lock()
			channels = c.target
			c.stateMutex.Unlock()
		}
		return sender.Part(strings.Split(channels, ","), reason)
	case "msg":
		target, text, _ := strings.Cut(arg, " ")
		if target == "" || text == "" {
			return errors.New("usage: /msg <target> <text>")
		}
		return c.say(sender, target, text)
	case "me":
		c.stateMutex.Lock()
		target := c.target
		c.stateMutex.Unlock()
		if target == "" {
			return errors.New("no target; /join a channel or use /query")
		}
		return sender.Privmsg([]string{target}, ctcpDelim+"ACTION "+arg+ctcpDelim)
	case "query", "target":
		c.stateMutex.Lock()
		c.target = arg
		c.stateMutex.Unlock()
		return nil
	case "nick":
		c.stateMutex.Lock()
		if !c.registered && arg != "" {
			// retries during registration continue from the chosen nick
			c.nick = arg
			c.nickRetries = 0
		}
		c.stateMutex.Unlock()
		return sender.Nick(arg)
	case "topic":
		channel, topic, hasTopic := strings.Cut(arg, " ")
		if hasTopic {
			return sender.SetTopic(channel, topic)
		}
		return sender.Topic(channel)
	case "away":
		return sender.Away(arg)
	case "whois":
		return sender.Whois("", strings.Split(arg, ",")...)
	case "raw", "quote":
		msg, err := message.Parse(arg + "\r\n")
		if err != nil {
			return err
		}
		return w.Send(msg)
	case "history":
		target, _, _ := strings.Cut(arg, " ")
		return c.history(target)
	case "quit":
		err := sender.Quit(arg)
		if err != nil {
			return err
		}
		return errQuit
	default:
		return fmt.Errorf("unknown command /%s", verb)
	}
}

// say sends text to target, split over as many lines as it needs.
func (c *console) say(sender irc.Sender, target, text string) error {
	for _, piece := range utils.WordWrap(text, wrapWidth) {
		if err := sender.Privmsg([]string{target}, piece); err != nil {
			return err
		}
	}
	return nil
}

func (c *console) history(target string) error {
	if c.store == nil {
		return errors.New("transcript is disabled")
	}
	if target == "" {
		c.stateMutex.Lock()
		target = c.target
		c.stateMutex.Unlock()
	}
	entries, err := c.store.Recent(target, 20)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		c.printf("[%s] %s", entry.Target, ircfmt.Strip(entry.Line))
	}
	return nil
}
