// Copyright (c) 2026 ircclient authors
// released under the MIT license

package message

import (
	"io"
	"strings"

	"github.com/ergochat/irc-go/ircmsg"
)

const (
	// MaxLineLength is the longest permitted line, CRLF included.
	MaxLineLength = 512
)

var (
	crlf = "\r\n"
)

// Message is one protocol line in structured form.
//
// Only the final parameter may contain a space; a space in any other
// parameter is a caller error and the encoded line will not parse back
// into the same Message. Non-final parameters starting with ':' and
// textual commands that aren't uppercase letters are refused by the
// encoder.
type Message struct {
	// Origin is the sender prefix, or "" when the line carried none.
	Origin string
	Kind   Kind
	Params []string
}

// New returns a Message with the given command and parameters and no origin.
func New(command Command, params ...string) Message {
	return Message{Kind: KindOf(command), Params: params}
}

// NewReply returns a numeric Message with the given parameters and no origin.
func NewReply(reply Reply, params ...string) Message {
	return Message{Kind: NumericKind(reply), Params: params}
}

// Param returns the i'th parameter, or "" if there are not that many.
func (msg *Message) Param(i int) string {
	if i < len(msg.Params) {
		return msg.Params[i]
	}
	return ""
}

// Nick returns the name part of a nick!user@host origin, or the whole
// origin for server-originated lines.
func (msg *Message) Nick() string {
	nuh, err := ircmsg.ParseNUH(msg.Origin)
	if err != nil {
		return ""
	}
	return nuh.Name
}

// Parse parses one complete line, including its CRLF terminator.
func Parse(line string) (Message, error) {
	if len(line) > MaxLineLength {
		return Message{}, &ParseError{Rule: RuleLength, Err: ErrMessageTooLong}
	}
	return parseLine(line)
}

func parseLine(line string) (msg Message, err error) {
	if !strings.HasSuffix(line, crlf) {
		return msg, mismatch(RuleTerminator)
	}
	body := line[:len(line)-len(crlf)]
	if strings.ContainsAny(body, "\r\n\x00") {
		return msg, mismatch(RuleParams)
	}

	if strings.HasPrefix(body, ":") {
		idx := strings.IndexByte(body, ' ')
		if idx < 2 {
			return msg, mismatch(RuleOrigin)
		}
		msg.Origin = body[1:idx]
		body = body[idx+1:]
	}

	token, tail, hasTail := strings.Cut(body, " ")
	if !validToken(token) {
		return msg, mismatch(RuleCommand)
	}
	msg.Kind = resolveToken(token)
	if hasTail {
		msg.Params = splitParams(tail)
	}
	return msg, nil
}

// validToken accepts one or more uppercase letters, or exactly three digits.
func validToken(token string) bool {
	if len(token) == 0 {
		return false
	}
	if isDigit(token[0]) {
		return len(token) == 3 && isDigit(token[1]) && isDigit(token[2])
	}
	for i := 0; i < len(token); i++ {
		if token[i] < 'A' || 'Z' < token[i] {
			return false
		}
	}
	return true
}

// splitParams splits a parameter tail on single spaces. The first token
// starting with ':' takes the rest of the tail as the final parameter.
func splitParams(tail string) (params []string) {
	for len(tail) != 0 {
		if tail[0] == ':' {
			return append(params, tail[1:])
		}
		param, rest, found := strings.Cut(tail, " ")
		params = append(params, param)
		if !found {
			break
		}
		tail = rest
	}
	return
}

// paramRequiresTrailing returns true for a final parameter that can only
// be carried in the ':' form.
func paramRequiresTrailing(param string) bool {
	return len(param) == 0 || strings.IndexByte(param, ' ') != -1 || param[0] == ':'
}

// encodedLen validates the message and returns the length of its wire form.
func (msg *Message) encodedLen() (int, error) {
	size := 0
	if msg.Origin != "" {
		if strings.ContainsAny(msg.Origin, " \r\n\x00") {
			return 0, ErrInvalidCharacter
		}
		size += 1 + len(msg.Origin) + 1
	}

	if msg.Kind.Numeric {
		if msg.Kind.Reply > MaxReply {
			return 0, ErrCommandMissing
		}
		size += 3
	} else {
		command := string(msg.Kind.Command)
		if command == "" {
			return 0, ErrCommandMissing
		}
		// a textual command spelled like a numeric would come back as a Reply
		if !validToken(command) || isDigit(command[0]) {
			return 0, ErrInvalidCommand
		}
		size += len(command)
	}

	for i, param := range msg.Params {
		if strings.ContainsAny(param, "\r\n\x00") {
			return 0, ErrInvalidCharacter
		}
		size += 1 + len(param)
		if i == len(msg.Params)-1 {
			if paramRequiresTrailing(param) {
				size++
			}
		} else if strings.HasPrefix(param, ":") {
			// would be read back as the start of the final param
			return 0, ErrInvalidParam
		}
	}

	size += len(crlf)
	if size > MaxLineLength {
		return 0, ErrMessageTooLong
	}
	return size, nil
}

func (msg *Message) appendLine(buf []byte) []byte {
	if msg.Origin != "" {
		buf = append(buf, ':')
		buf = append(buf, msg.Origin...)
		buf = append(buf, ' ')
	}
	buf = append(buf, msg.Kind.Token()...)
	for i, param := range msg.Params {
		buf = append(buf, ' ')
		if i == len(msg.Params)-1 && paramRequiresTrailing(param) {
			buf = append(buf, ':')
		}
		buf = append(buf, param...)
	}
	return append(buf, crlf...)
}

// Line returns the wire form of the message, CRLF included. Messages whose
// wire form would exceed MaxLineLength are rejected, never truncated.
func (msg *Message) Line() ([]byte, error) {
	size, err := msg.encodedLen()
	if err != nil {
		return nil, err
	}
	return msg.appendLine(make([]byte, 0, size)), nil
}

// String returns the wire form without CRLF, or "" for an unencodable message.
func (msg *Message) String() string {
	line, err := msg.Line()
	if err != nil {
		return ""
	}
	return string(line[:len(line)-len(crlf)])
}

type flusher interface {
	Flush() error
}

// WriteTo encodes the message into a fixed-size buffer and writes it to w
// in a single call, flushing w afterwards if it supports that.
func (msg *Message) WriteTo(w io.Writer) (int64, error) {
	if _, err := msg.encodedLen(); err != nil {
		return 0, err
	}
	var buf [MaxLineLength]byte
	line := msg.appendLine(buf[:0])
	n, err := w.Write(line)
	if err != nil {
		return int64(n), err
	}
	if f, ok := w.(flusher); ok {
		err = f.Flush()
	}
	return int64(n), err
}
