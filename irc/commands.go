// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"fmt"

	"github.com/ergochat/ircclient/irc/message"
)

// Command is the parameter contract of a known command and the handler
// call it destructures into.
type Command struct {
	params  []param
	handler func(h Handler, w Writer, origin string, a args) error
}

// Commands holds the contract of every known command. MODE is routed
// separately, since its shape depends on its target.
var Commands map[message.Command]Command

func init() {
	Commands = map[message.Command]Command{
		message.PASS: {
			params: []param{required("password")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnPass(w, origin, a.str(0))
			},
		},
		message.NICK: {
			params: []param{required("nick"), number(optional("hopcount"), 32)},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnNick(w, origin, a.str(0), a.optNum(1))
			},
		},
		message.USER: {
			params: []param{required("username"), required("hostname"), required("servername"), required("realname")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnUser(w, origin, a.str(0), a.str(1), a.str(2), a.str(3))
			},
		},
		message.SERVER: {
			params: []param{required("servername"), number(required("hopcount"), 32), required("info")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnServer(w, origin, a.str(0), a.num(1), a.str(2))
			},
		},
		message.OPER: {
			params: []param{required("user"), required("password")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnOper(w, origin, a.str(0), a.str(1))
			},
		},
		message.QUIT: {
			params: []param{optional("message")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnQuit(w, origin, a.opt(0))
			},
		},
		message.SQUIT: {
			params: []param{required("server"), required("comment")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnSquit(w, origin, a.str(0), a.str(1))
			},
		},
		message.JOIN: {
			params: []param{list("channels"), optionalList("keys")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnJoin(w, origin, a.list(0), a.list(1))
			},
		},
		message.PART: {
			params: []param{list("channels"), optional("message")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnPart(w, origin, a.list(0), a.opt(1))
			},
		},
		message.MODE: {},
		message.TOPIC: {
			params: []param{required("channel"), optional("topic")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnTopic(w, origin, a.str(0), a.opt(1))
			},
		},
		message.NAMES: {
			params: []param{optionalList("channels")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnNames(w, origin, a.list(0))
			},
		},
		message.LIST: {
			params: []param{optionalList("channels"), optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnList(w, origin, a.list(0), a.opt(1))
			},
		},
		message.INVITE: {
			params: []param{required("nick"), required("channel")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnInvite(w, origin, a.str(0), a.str(1))
			},
		},
		message.KICK: {
			params: []param{required("channel"), required("user"), optional("comment")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnKick(w, origin, a.str(0), a.str(1), a.opt(2))
			},
		},
		message.VERSION: {
			params: []param{optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnVersion(w, origin, a.opt(0))
			},
		},
		message.STATS: {
			params: []param{optional("query"), optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnStats(w, origin, a.opt(0), a.opt(1))
			},
		},
		message.LINKS: {
			params: []param{leading("remote"), optional("mask")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnLinks(w, origin, a.opt(0), a.opt(1))
			},
		},
		message.TIME: {
			params: []param{optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnTime(w, origin, a.opt(0))
			},
		},
		message.CONNECT: {
			params: []param{required("target"), number(optional("port"), 16), optional("remote")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnServerConnect(w, origin, a.str(0), a.optNum(1), a.opt(2))
			},
		},
		message.TRACE: {
			params: []param{optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnTrace(w, origin, a.opt(0))
			},
		},
		message.ADMIN: {
			params: []param{optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnAdmin(w, origin, a.opt(0))
			},
		},
		message.INFO: {
			params: []param{optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnInfo(w, origin, a.opt(0))
			},
		},
		message.PRIVMSG: {
			params: []param{list("receivers"), required("text")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnPrivmsg(w, origin, a.list(0), a.str(1))
			},
		},
		message.NOTICE: {
			params: []param{required("nick"), required("text")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnNotice(w, origin, a.str(0), a.str(1))
			},
		},
		message.WHO: {
			params: []param{required("name"), literal(optional("operators"), "o")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnWho(w, origin, a.str(0), a.flag(1))
			},
		},
		message.WHOIS: {
			params: []param{leading("server"), list("masks")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnWhois(w, origin, a.opt(0), a.list(1))
			},
		},
		message.WHOWAS: {
			params: []param{required("nick"), number(optional("count"), 32), optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnWhowas(w, origin, a.str(0), a.optNum(1), a.opt(2))
			},
		},
		message.KILL: {
			params: []param{required("nick"), required("comment")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnKill(w, origin, a.str(0), a.str(1))
			},
		},
		message.PING: {
			params: []param{required("server1"), optional("server2")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnPing(w, origin, a.str(0), a.opt(1))
			},
		},
		message.PONG: {
			params: []param{required("daemon1"), optional("daemon2")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnPong(w, origin, a.str(0), a.opt(1))
			},
		},
		message.ERROR: {
			params: []param{required("message")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnError(w, origin, a.str(0))
			},
		},
		message.AWAY: {
			params: []param{optional("message")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnAway(w, origin, a.opt(0))
			},
		},
		message.REHASH: {
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnRehash(w, origin)
			},
		},
		message.RESTART: {
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnRestart(w, origin)
			},
		},
		message.SUMMON: {
			params: []param{required("user"), optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnSummon(w, origin, a.str(0), a.opt(1))
			},
		},
		message.USERS: {
			params: []param{optional("server")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnUsers(w, origin, a.opt(0))
			},
		},
		message.WALLOPS: {
			params: []param{required("text")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnWallops(w, origin, a.str(0))
			},
		},
		message.USERHOST: {
			params: []param{rest("nicks")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnUserhost(w, origin, a.list(0))
			},
		},
		message.ISON: {
			params: []param{rest("nicks")},
			handler: func(h Handler, w Writer, origin string, a args) error {
				return h.OnIson(w, origin, a.list(0))
			},
		},
	}

	// every known command needs a contract
	for _, command := range message.Commands {
		if _, ok := Commands[command]; !ok {
			panic(fmt.Sprintf("no contract for command %s", command))
		}
	}
}
