// Copyright (c) 2026 ircclient authors
// released under the MIT license

package message

import "testing"

func TestReplyValues(t *testing.T) {
	assertEqual(RPL_WELCOME, Reply(1), t)
	assertEqual(ERR_NOSUCHNICK, Reply(401), t)
	assertEqual(ERR_NICKNAMEINUSE, Reply(433), t)
	assertEqual(RPL_NAMREPLY, Reply(353), t)
	assertEqual(RPL_ENDOFMOTD, Reply(376), t)
	// not in RFC 1459 or 2812, but what deployed servers send
	assertEqual(RPL_TOPICDATE, Reply(333), t)
	assertEqual(ERR_MSGFORBIDDEN, Reply(505), t)
	assertEqual(RPL_TOPICDATE.Known(), true, t)
}

func TestReplyNames(t *testing.T) {
	assertEqual(RPL_WELCOME.Known(), true, t)
	assertEqual(Reply(42).Known(), false, t)
	assertEqual(RPL_WELCOME.Name(), "RPL_WELCOME", t)
	assertEqual(Reply(42).Name(), "", t)
	assertEqual(RPL_WELCOME.String(), "RPL_WELCOME(001)", t)
	assertEqual(Reply(42).String(), "UNKNOWN(042)", t)
	assertEqual(ERR_USERSDONTMATCH.Code(), "502", t)

	for reply, name := range replyNames {
		if reply > MaxReply {
			t.Errorf("%s does not fit three digits", name)
		}
	}
}

func TestCommands(t *testing.T) {
	assertEqual(len(Commands), 40, t)
	for _, command := range Commands {
		if !command.Known() {
			t.Errorf("%s should be known", command)
		}
	}
	assertEqual(Command("FROB").Known(), false, t)
	assertEqual(Command("nick").Known(), false, t)
}

func TestKind(t *testing.T) {
	assertEqual(resolveToken("001"), NumericKind(RPL_WELCOME), t)
	assertEqual(resolveToken("042"), NumericKind(42), t)
	assertEqual(resolveToken("NICK"), KindOf(NICK), t)
	assertEqual(resolveToken("FROB"), KindOf("FROB"), t)

	kind := resolveToken("433")
	assertEqual(kind.IsReply(ERR_NICKNAMEINUSE), true, t)
	assertEqual(kind.IsCommand(NICK), false, t)
	assertEqual(kind.Token(), "433", t)
	assertEqual(KindOf("FROB").Known(), false, t)
	assertEqual(KindOf(JOIN).Known(), true, t)
}
