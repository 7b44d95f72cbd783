// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"sync"

	"github.com/ergochat/ircclient/irc/message"
)

// ReplyHandlerFunc handles one numeric reply.
type ReplyHandlerFunc func(w Writer, m *message.Message) error

// ReplyMux routes named numerics to handlers registered per reply.
// Registration normally happens once at setup; it is safe to register
// while dispatching. The zero value is an empty mux.
type ReplyMux struct {
	sync.RWMutex // tier 1
	handlers     map[message.Reply]ReplyHandlerFunc
	// Fallback, if set, receives numerics with no registered handler.
	Fallback ReplyHandlerFunc
}

// NewReplyMux returns an empty ReplyMux.
func NewReplyMux() *ReplyMux {
	return &ReplyMux{
		handlers: make(map[message.Reply]ReplyHandlerFunc),
	}
}

// Handle registers fn for reply, replacing any previous handler.
func (mux *ReplyMux) Handle(reply message.Reply, fn ReplyHandlerFunc) {
	mux.Lock()
	defer mux.Unlock()
	if mux.handlers == nil {
		mux.handlers = make(map[message.Reply]ReplyHandlerFunc)
	}
	mux.handlers[reply] = fn
}

// Remove unregisters the handler for reply.
func (mux *ReplyMux) Remove(reply message.Reply) {
	mux.Lock()
	defer mux.Unlock()
	delete(mux.handlers, reply)
}

// Dispatch calls the handler registered for reply.
func (mux *ReplyMux) Dispatch(w Writer, reply message.Reply, m *message.Message) error {
	mux.RLock()
	fn, ok := mux.handlers[reply]
	mux.RUnlock()
	if !ok {
		fn = mux.Fallback
	}
	if fn == nil {
		return nil
	}
	return fn(w, m)
}
