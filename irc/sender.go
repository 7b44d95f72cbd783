// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/ergochat/irc-go/ircutils"

	"github.com/ergochat/ircclient/irc/message"
)

// Writer sends a message to the peer.
type Writer interface {
	Send(m message.Message) error
}

// LineWriter is a Writer that encodes messages onto an io.Writer.
type LineWriter struct {
	sync.Mutex
	w io.Writer
}

// NewLineWriter returns a LineWriter writing to w.
func NewLineWriter(w io.Writer) *LineWriter {
	return &LineWriter{w: w}
}

func (lw *LineWriter) Send(m message.Message) (err error) {
	lw.Lock()
	defer lw.Unlock()
	_, err = m.WriteTo(lw.w)
	return
}

// Sender formats and sends the standard client commands. For optional
// arguments, "" means the argument is left out.
type Sender struct {
	Writer
}

func (s Sender) send(command message.Command, params ...string) error {
	return s.Send(message.New(command, params...))
}

// sendOptional sends command with the required params, followed by the
// optional ones up to the last non-empty one.
func (s Sender) sendOptional(command message.Command, required []string, optional ...string) error {
	last := -1
	for i, param := range optional {
		if param != "" {
			last = i
		}
	}
	return s.send(command, append(required, optional[:last+1]...)...)
}

// sanitize makes free text safe to send as the final param of a line
// that already carries overhead bytes.
func sanitize(text string, overhead int) string {
	return ircutils.SanitizeText(text, message.MaxLineLength-overhead)
}

func (s Sender) Pass(password string) error {
	return s.send(message.PASS, password)
}

func (s Sender) Nick(nick string) error {
	return s.send(message.NICK, nick)
}

// User sends USER; hostname and servername are ignored by most servers
// but required on the wire.
func (s Sender) User(username, hostname, servername, realname string) error {
	return s.send(message.USER, username, hostname, servername, realname)
}

func (s Sender) Oper(user, password string) error {
	return s.send(message.OPER, user, password)
}

func (s Sender) Quit(msg string) error {
	return s.sendOptional(message.QUIT, nil, msg)
}

func (s Sender) Join(channels, keys []string) error {
	if len(keys) == 0 {
		return s.send(message.JOIN, strings.Join(channels, ","))
	}
	return s.send(message.JOIN, strings.Join(channels, ","), strings.Join(keys, ","))
}

func (s Sender) Part(channels []string, msg string) error {
	return s.sendOptional(message.PART, []string{strings.Join(channels, ",")}, msg)
}

func (s Sender) ChannelMode(channel, modes string, args ...string) error {
	return s.send(message.MODE, append([]string{channel, modes}, args...)...)
}

func (s Sender) UserMode(nick, modes string) error {
	return s.send(message.MODE, nick, modes)
}

// Topic asks for the topic of channel.
func (s Sender) Topic(channel string) error {
	return s.send(message.TOPIC, channel)
}

// SetTopic sets the topic of channel; an empty topic clears it.
func (s Sender) SetTopic(channel, topic string) error {
	return s.send(message.TOPIC, channel, topic)
}

func (s Sender) Names(channels ...string) error {
	return s.sendOptional(message.NAMES, nil, strings.Join(channels, ","))
}

func (s Sender) List(channels []string, server string) error {
	return s.sendOptional(message.LIST, nil, strings.Join(channels, ","), server)
}

func (s Sender) Invite(nick, channel string) error {
	return s.send(message.INVITE, nick, channel)
}

func (s Sender) Kick(channel, user, comment string) error {
	return s.sendOptional(message.KICK, []string{channel, user}, comment)
}

func (s Sender) Version(server string) error {
	return s.sendOptional(message.VERSION, nil, server)
}

func (s Sender) Stats(query, server string) error {
	return s.sendOptional(message.STATS, nil, query, server)
}

func (s Sender) Links(remote, mask string) error {
	if remote == "" {
		return s.sendOptional(message.LINKS, nil, mask)
	}
	return s.send(message.LINKS, remote, mask)
}

func (s Sender) Time(server string) error {
	return s.sendOptional(message.TIME, nil, server)
}

// Connect sends CONNECT; a zero port is left out.
func (s Sender) Connect(target string, port int, remote string) error {
	var portString string
	if port != 0 {
		portString = strconv.Itoa(port)
	}
	return s.sendOptional(message.CONNECT, []string{target}, portString, remote)
}

func (s Sender) Trace(server string) error {
	return s.sendOptional(message.TRACE, nil, server)
}

func (s Sender) Admin(server string) error {
	return s.sendOptional(message.ADMIN, nil, server)
}

func (s Sender) Info(server string) error {
	return s.sendOptional(message.INFO, nil, server)
}

// Privmsg sends text to receivers. Line breaks and control characters that
// can't be carried are replaced, and text that would overflow the line is cut.
func (s Sender) Privmsg(receivers []string, text string) error {
	target := strings.Join(receivers, ",")
	overhead := len("PRIVMSG ") + len(target) + len(" :\r\n")
	return s.send(message.PRIVMSG, target, sanitize(text, overhead))
}

func (s Sender) Notice(nick, text string) error {
	overhead := len("NOTICE ") + len(nick) + len(" :\r\n")
	return s.send(message.NOTICE, nick, sanitize(text, overhead))
}

func (s Sender) Who(name string, operators bool) error {
	if operators {
		return s.send(message.WHO, name, "o")
	}
	return s.send(message.WHO, name)
}

func (s Sender) Whois(server string, masks ...string) error {
	if server == "" {
		return s.send(message.WHOIS, strings.Join(masks, ","))
	}
	return s.send(message.WHOIS, server, strings.Join(masks, ","))
}

// Whowas sends WHOWAS; a zero count is left out, and the server is only
// sent with a count.
func (s Sender) Whowas(nick string, count int, server string) error {
	if count == 0 {
		return s.send(message.WHOWAS, nick)
	}
	return s.sendOptional(message.WHOWAS, []string{nick, strconv.Itoa(count)}, server)
}

func (s Sender) Kill(nick, comment string) error {
	return s.send(message.KILL, nick, comment)
}

func (s Sender) Ping(server1, server2 string) error {
	return s.sendOptional(message.PING, []string{server1}, server2)
}

func (s Sender) Pong(daemon1, daemon2 string) error {
	return s.sendOptional(message.PONG, []string{daemon1}, daemon2)
}

// Away marks the client as away; an empty message marks it as back.
func (s Sender) Away(msg string) error {
	return s.sendOptional(message.AWAY, nil, msg)
}

func (s Sender) Rehash() error {
	return s.send(message.REHASH)
}

func (s Sender) Restart() error {
	return s.send(message.RESTART)
}

func (s Sender) Summon(user, server string) error {
	return s.sendOptional(message.SUMMON, []string{user}, server)
}

func (s Sender) Users(server string) error {
	return s.sendOptional(message.USERS, nil, server)
}

func (s Sender) Wallops(text string) error {
	return s.send(message.WALLOPS, sanitize(text, len("WALLOPS :\r\n")))
}

func (s Sender) Userhost(nicks ...string) error {
	return s.send(message.USERHOST, nicks...)
}

func (s Sender) Ison(nicks ...string) error {
	return s.send(message.ISON, nicks...)
}
