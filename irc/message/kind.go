// Copyright (c) 2026 ircclient authors
// released under the MIT license

package message

// Kind classifies a message: either a textual Command (named or raw)
// or a numeric Reply (known or unknown). The zero Kind is an empty
// command, which the encoder refuses.
type Kind struct {
	Numeric bool
	Command Command
	Reply   Reply
}

// KindOf returns the Kind for a textual command.
func KindOf(command Command) Kind {
	return Kind{Command: command}
}

// NumericKind returns the Kind for a numeric reply.
func NumericKind(reply Reply) Kind {
	return Kind{Numeric: true, Reply: reply}
}

// IsReply returns true if the kind carries the given numeric.
func (kind Kind) IsReply(reply Reply) bool {
	return kind.Numeric && kind.Reply == reply
}

// IsCommand returns true if the kind carries the given command.
func (kind Kind) IsCommand(command Command) bool {
	return !kind.Numeric && kind.Command == command
}

// Known returns true for named commands and named replies.
func (kind Kind) Known() bool {
	if kind.Numeric {
		return kind.Reply.Known()
	}
	return kind.Command.Known()
}

// Token returns the command token as it appears on the wire.
func (kind Kind) Token() string {
	if kind.Numeric {
		return kind.Reply.Code()
	}
	return string(kind.Command)
}

func (kind Kind) String() string {
	if kind.Numeric {
		return kind.Reply.String()
	}
	return string(kind.Command)
}

// resolveToken maps a grammatically valid command token to its Kind.
// It never fails: unrecognized tokens become raw commands or unknown replies.
func resolveToken(token string) Kind {
	if len(token) == 3 && isDigit(token[0]) {
		code := Reply(token[0]-'0')*100 + Reply(token[1]-'0')*10 + Reply(token[2]-'0')
		return NumericKind(code)
	}
	return KindOf(Command(token))
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
