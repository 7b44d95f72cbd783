// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"strconv"
	"strings"

	"github.com/ergochat/ircclient/irc/message"
)

type paramKind int

const (
	// paramRequired must be present.
	paramRequired paramKind = iota
	// paramOptional is filled, in order, when there are more params than
	// required fields.
	paramOptional
	// paramLeading is optional but only filled once every paramOptional
	// is; it comes first on the wire (e.g. the server in WHOIS [server] masks).
	paramLeading
	// paramList is required and split on commas.
	paramList
	// paramOptionalList is a paramOptional split on commas.
	paramOptionalList
	// paramRest is required and takes every remaining param.
	paramRest
)

// param is one field of a command's parameter contract.
type param struct {
	name string
	kind paramKind
	// numeric is the bit size of an unsigned integer field, or 0 for text
	numeric int
	// literal, if set, is the only accepted value
	literal string
}

func (p param) required() bool {
	return p.kind == paramRequired || p.kind == paramList || p.kind == paramRest
}

func required(name string) param          { return param{name: name, kind: paramRequired} }
func optional(name string) param          { return param{name: name, kind: paramOptional} }
func leading(name string) param           { return param{name: name, kind: paramLeading} }
func list(name string) param              { return param{name: name, kind: paramList} }
func optionalList(name string) param      { return param{name: name, kind: paramOptionalList} }
func rest(name string) param              { return param{name: name, kind: paramRest} }
func number(p param, bits int) param      { p.numeric = bits; return p }
func literal(p param, value string) param { p.literal = value; return p }

// value is one destructured field.
type value struct {
	present bool
	text    string
	number  int
	list    []string
}

// args holds destructured fields in contract order.
type args []value

func (a args) str(i int) string {
	return a[i].text
}

func (a args) opt(i int) *string {
	if !a[i].present {
		return nil
	}
	text := a[i].text
	return &text
}

func (a args) num(i int) int {
	return a[i].number
}

func (a args) optNum(i int) *int {
	if !a[i].present {
		return nil
	}
	number := a[i].number
	return &number
}

func (a args) list(i int) []string {
	return a[i].list
}

func (a args) flag(i int) bool {
	return a[i].present
}

// destructure matches params against a contract. It returns false when
// there are too few params, or when a numeric or literal field doesn't
// fit. Params beyond the contract are ignored.
func destructure(contract []param, params []string) (result args, ok bool) {
	needed := 0
	for _, p := range contract {
		if p.required() {
			needed++
		}
	}
	if len(params) < needed {
		return nil, false
	}

	// decide which optional fields are present: plain optionals first,
	// in declaration order, then leading ones
	spare := len(params) - needed
	present := make([]bool, len(contract))
	for pass := 0; pass < 2; pass++ {
		for i, p := range contract {
			if spare == 0 {
				break
			}
			switch p.kind {
			case paramOptional, paramOptionalList:
				if pass == 0 {
					present[i] = true
					spare--
				}
			case paramLeading:
				if pass == 1 {
					present[i] = true
					spare--
				}
			}
		}
	}

	result = make(args, len(contract))
	pos := 0
	for i, p := range contract {
		if !p.required() && !present[i] {
			continue
		}
		if p.kind == paramRest {
			result[i] = value{present: true, list: params[pos:]}
			pos = len(params)
			continue
		}

		raw := params[pos]
		pos++
		field := value{present: true, text: raw}
		switch {
		case p.kind == paramList || p.kind == paramOptionalList:
			field.list = strings.Split(raw, ",")
		case p.numeric != 0:
			number, err := strconv.ParseUint(raw, 10, p.numeric)
			if err != nil {
				return nil, false
			}
			field.number = int(number)
		case p.literal != "" && raw != p.literal:
			return nil, false
		}
		result[i] = field
	}
	return result, true
}

// IsChannelName returns true if target names a channel rather than a user.
func IsChannelName(target string) bool {
	return strings.HasPrefix(target, "#") || strings.HasPrefix(target, "&")
}

// Dispatch classifies m and calls exactly one of the specific handler for
// its command or reply, OnInvalidMessage, or the unknown fallbacks.
// OnAnyMessage always runs first. The handler's error is returned.
func Dispatch(h Handler, w Writer, m *message.Message) error {
	h.OnAnyMessage(w, m)

	if m.Kind.Numeric {
		if m.Kind.Reply.Known() {
			return h.OnNumeric(w, m.Kind.Reply, m)
		}
		return h.OnUnknownReply(w, m)
	}

	if m.Kind.Command == message.MODE {
		return dispatchMode(h, w, m)
	}

	cmd, ok := Commands[m.Kind.Command]
	if !ok {
		return h.OnUnknownCommand(w, m)
	}
	values, ok := destructure(cmd.params, m.Params)
	if !ok {
		return h.OnInvalidMessage(w, m)
	}
	return cmd.handler(h, w, m.Origin, values)
}

// dispatchMode routes MODE by its target: channel targets carry mode
// arguments after the modestring, user targets carry only the modestring.
func dispatchMode(h Handler, w Writer, m *message.Message) error {
	if len(m.Params) < 2 {
		return h.OnInvalidMessage(w, m)
	}
	target, modes := m.Params[0], m.Params[1]
	if IsChannelName(target) {
		return h.OnChannelMode(w, m.Origin, target, modes, m.Params[2:])
	}
	return h.OnUserMode(w, m.Origin, target, modes)
}
