// Copyright (c) 2026 ircclient authors
// released under the MIT license

package message

// Command is a textual protocol verb. The named constants below form the
// closed vocabulary; any other token is carried verbatim as a raw command.
type Command string

const (
	PASS     Command = "PASS"
	NICK     Command = "NICK"
	USER     Command = "USER"
	SERVER   Command = "SERVER"
	OPER     Command = "OPER"
	QUIT     Command = "QUIT"
	SQUIT    Command = "SQUIT"
	JOIN     Command = "JOIN"
	PART     Command = "PART"
	MODE     Command = "MODE"
	TOPIC    Command = "TOPIC"
	NAMES    Command = "NAMES"
	LIST     Command = "LIST"
	INVITE   Command = "INVITE"
	KICK     Command = "KICK"
	VERSION  Command = "VERSION"
	STATS    Command = "STATS"
	LINKS    Command = "LINKS"
	TIME     Command = "TIME"
	CONNECT  Command = "CONNECT"
	TRACE    Command = "TRACE"
	ADMIN    Command = "ADMIN"
	INFO     Command = "INFO"
	PRIVMSG  Command = "PRIVMSG"
	NOTICE   Command = "NOTICE"
	WHO      Command = "WHO"
	WHOIS    Command = "WHOIS"
	WHOWAS   Command = "WHOWAS"
	KILL     Command = "KILL"
	PING     Command = "PING"
	PONG     Command = "PONG"
	ERROR    Command = "ERROR"
	AWAY     Command = "AWAY"
	REHASH   Command = "REHASH"
	RESTART  Command = "RESTART"
	SUMMON   Command = "SUMMON"
	USERS    Command = "USERS"
	WALLOPS  Command = "WALLOPS"
	USERHOST Command = "USERHOST"
	ISON     Command = "ISON"
)

// Commands lists the named vocabulary, in RFC order.
var Commands = []Command{
	PASS, NICK, USER, SERVER, OPER, QUIT, SQUIT,
	JOIN, PART, MODE, TOPIC, NAMES, LIST, INVITE, KICK,
	VERSION, STATS, LINKS, TIME, CONNECT, TRACE, ADMIN, INFO,
	PRIVMSG, NOTICE,
	WHO, WHOIS, WHOWAS,
	KILL, PING, PONG, ERROR,
	AWAY, REHASH, RESTART, SUMMON, USERS, WALLOPS, USERHOST, ISON,
}

var knownCommands map[Command]bool

func init() {
	knownCommands = make(map[Command]bool, len(Commands))
	for _, command := range Commands {
		knownCommands[command] = true
	}
}

// Known returns true if the command is part of the named vocabulary
// (as opposed to a raw command carried for forward compatibility).
func (command Command) Known() bool {
	return knownCommands[command]
}

func (command Command) String() string {
	return string(command)
}
