// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"github.com/ergochat/ircclient/irc/message"
)

// Handler receives dispatched messages. Every method corresponds to one
// event: a command with its destructured arguments, a numeric reply, or
// one of the fallbacks. Optional arguments are nil when absent.
//
// Embed DefaultHandler to get no-op implementations of everything,
// then override the events of interest.
type Handler interface {
	// OnConnect is called once, after the handshake is sent and before the first read.
	OnConnect(w Writer) error
	// OnDisconnect is called once after the read loop ends; err is nil on a clean shutdown.
	OnDisconnect(w Writer, err error)

	// OnAnyMessage sees every message before classification.
	OnAnyMessage(w Writer, m *message.Message)
	// OnInvalidMessage receives known commands whose parameters don't fit their contract.
	OnInvalidMessage(w Writer, m *message.Message) error
	OnUnknownCommand(w Writer, m *message.Message) error
	OnUnknownReply(w Writer, m *message.Message) error
	// OnNumeric receives every named numeric reply.
	OnNumeric(w Writer, reply message.Reply, m *message.Message) error

	OnPass(w Writer, origin, password string) error
	OnNick(w Writer, origin, nick string, hopcount *int) error
	OnUser(w Writer, origin, username, hostname, servername, realname string) error
	OnServer(w Writer, origin, name string, hopcount int, info string) error
	OnOper(w Writer, origin, user, password string) error
	OnQuit(w Writer, origin string, msg *string) error
	OnSquit(w Writer, origin, server, comment string) error

	OnJoin(w Writer, origin string, channels, keys []string) error
	OnPart(w Writer, origin string, channels []string, msg *string) error
	OnChannelMode(w Writer, origin, channel, modes string, args []string) error
	OnUserMode(w Writer, origin, nick, modes string) error
	OnTopic(w Writer, origin, channel string, topic *string) error
	OnNames(w Writer, origin string, channels []string) error
	OnList(w Writer, origin string, channels []string, server *string) error
	OnInvite(w Writer, origin, nick, channel string) error
	OnKick(w Writer, origin, channel, user string, comment *string) error

	OnVersion(w Writer, origin string, server *string) error
	OnStats(w Writer, origin string, query, server *string) error
	OnLinks(w Writer, origin string, remote, mask *string) error
	OnTime(w Writer, origin string, server *string) error
	// OnServerConnect receives the CONNECT command.
	OnServerConnect(w Writer, origin, target string, port *int, remote *string) error
	OnTrace(w Writer, origin string, server *string) error
	OnAdmin(w Writer, origin string, server *string) error
	OnInfo(w Writer, origin string, server *string) error

	OnPrivmsg(w Writer, origin string, receivers []string, text string) error
	OnNotice(w Writer, origin, nick, text string) error

	// OnWho receives WHO; operators is true when the "o" flag was given.
	OnWho(w Writer, origin, name string, operators bool) error
	OnWhois(w Writer, origin string, server *string, masks []string) error
	OnWhowas(w Writer, origin, nick string, count *int, server *string) error

	OnKill(w Writer, origin, nick, comment string) error
	OnPing(w Writer, origin, server1 string, server2 *string) error
	OnPong(w Writer, origin, daemon1 string, daemon2 *string) error
	OnError(w Writer, origin, msg string) error

	OnAway(w Writer, origin string, msg *string) error
	OnRehash(w Writer, origin string) error
	OnRestart(w Writer, origin string) error
	OnSummon(w Writer, origin, user string, server *string) error
	OnUsers(w Writer, origin string, server *string) error
	OnWallops(w Writer, origin, text string) error
	OnUserhost(w Writer, origin string, nicks []string) error
	OnIson(w Writer, origin string, nicks []string) error
}

// DefaultHandler implements Handler. Every event is a no-op except PING,
// which is answered with a PONG. If Replies is set, OnNumeric hands
// numerics to it.
type DefaultHandler struct {
	Replies *ReplyMux
}

var _ Handler = (*DefaultHandler)(nil)

func (*DefaultHandler) OnConnect(w Writer) error              { return nil }
func (*DefaultHandler) OnDisconnect(w Writer, err error)      {}
func (*DefaultHandler) OnAnyMessage(Writer, *message.Message) {}

func (*DefaultHandler) OnInvalidMessage(w Writer, m *message.Message) error { return nil }
func (*DefaultHandler) OnUnknownCommand(w Writer, m *message.Message) error { return nil }
func (*DefaultHandler) OnUnknownReply(w Writer, m *message.Message) error   { return nil }

func (dh *DefaultHandler) OnNumeric(w Writer, reply message.Reply, m *message.Message) error {
	if dh.Replies != nil {
		return dh.Replies.Dispatch(w, reply, m)
	}
	return nil
}

func (*DefaultHandler) OnPass(w Writer, origin, password string) error            { return nil }
func (*DefaultHandler) OnNick(w Writer, origin, nick string, hopcount *int) error { return nil }
func (*DefaultHandler) OnUser(w Writer, origin, username, hostname, servername, realname string) error {
	return nil
}
func (*DefaultHandler) OnServer(w Writer, origin, name string, hopcount int, info string) error {
	return nil
}
func (*DefaultHandler) OnOper(w Writer, origin, user, password string) error   { return nil }
func (*DefaultHandler) OnQuit(w Writer, origin string, msg *string) error      { return nil }
func (*DefaultHandler) OnSquit(w Writer, origin, server, comment string) error { return nil }
func (*DefaultHandler) OnJoin(w Writer, origin string, channels, keys []string) error {
	return nil
}
func (*DefaultHandler) OnPart(w Writer, origin string, channels []string, msg *string) error {
	return nil
}
func (*DefaultHandler) OnChannelMode(w Writer, origin, channel, modes string, args []string) error {
	return nil
}
func (*DefaultHandler) OnUserMode(w Writer, origin, nick, modes string) error         { return nil }
func (*DefaultHandler) OnTopic(w Writer, origin, channel string, topic *string) error { return nil }
func (*DefaultHandler) OnNames(w Writer, origin string, channels []string) error      { return nil }
func (*DefaultHandler) OnList(w Writer, origin string, channels []string, server *string) error {
	return nil
}
func (*DefaultHandler) OnInvite(w Writer, origin, nick, channel string) error { return nil }
func (*DefaultHandler) OnKick(w Writer, origin, channel, user string, comment *string) error {
	return nil
}
func (*DefaultHandler) OnVersion(w Writer, origin string, server *string) error      { return nil }
func (*DefaultHandler) OnStats(w Writer, origin string, query, server *string) error { return nil }
func (*DefaultHandler) OnLinks(w Writer, origin string, remote, mask *string) error  { return nil }
func (*DefaultHandler) OnTime(w Writer, origin string, server *string) error         { return nil }
func (*DefaultHandler) OnServerConnect(w Writer, origin, target string, port *int, remote *string) error {
	return nil
}
func (*DefaultHandler) OnTrace(w Writer, origin string, server *string) error { return nil }
func (*DefaultHandler) OnAdmin(w Writer, origin string, server *string) error { return nil }
func (*DefaultHandler) OnInfo(w Writer, origin string, server *string) error  { return nil }
func (*DefaultHandler) OnPrivmsg(w Writer, origin string, receivers []string, text string) error {
	return nil
}
func (*DefaultHandler) OnNotice(w Writer, origin, nick, text string) error        { return nil }
func (*DefaultHandler) OnWho(w Writer, origin, name string, operators bool) error { return nil }
func (*DefaultHandler) OnWhois(w Writer, origin string, server *string, masks []string) error {
	return nil
}
func (*DefaultHandler) OnWhowas(w Writer, origin, nick string, count *int, server *string) error {
	return nil
}
func (*DefaultHandler) OnKill(w Writer, origin, nick, comment string) error { return nil }

// OnPing answers with a PONG to the first server in the PING.
func (*DefaultHandler) OnPing(w Writer, origin, server1 string, server2 *string) error {
	return Sender{w}.Pong(server1, "")
}

func (*DefaultHandler) OnPong(w Writer, origin, daemon1 string, daemon2 *string) error {
	return nil
}
func (*DefaultHandler) OnError(w Writer, origin, msg string) error                   { return nil }
func (*DefaultHandler) OnAway(w Writer, origin string, msg *string) error            { return nil }
func (*DefaultHandler) OnRehash(w Writer, origin string) error                       { return nil }
func (*DefaultHandler) OnRestart(w Writer, origin string) error                      { return nil }
func (*DefaultHandler) OnSummon(w Writer, origin, user string, server *string) error { return nil }
func (*DefaultHandler) OnUsers(w Writer, origin string, server *string) error        { return nil }
func (*DefaultHandler) OnWallops(w Writer, origin, text string) error                { return nil }
func (*DefaultHandler) OnUserhost(w Writer, origin string, nicks []string) error     { return nil }
func (*DefaultHandler) OnIson(w Writer, origin string, nicks []string) error         { return nil }
