// Copyright (c) 2026 ircclient authors
// released under the MIT license

package irc

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/go-test/deep"

	"github.com/ergochat/ircclient/irc/message"
)

func assertEqual(supplied, expected interface{}, t *testing.T) {
	t.Helper()
	if !reflect.DeepEqual(supplied, expected) {
		t.Errorf("expected %v but got %v", expected, supplied)
	}
}

func strp(s string) *string { return &s }
func intp(i int) *int       { return &i }

var (
	none  *string
	noInt *int
)

type call struct {
	Name string
	Args []interface{}
}

// recorder records every handler call it receives.
type recorder struct {
	DefaultHandler
	anyMessages int
	calls       []call
	err         error
}

func (r *recorder) record(name string, args ...interface{}) error {
	r.calls = append(r.calls, call{Name: name, Args: args})
	return r.err
}

func (r *recorder) OnAnyMessage(w Writer, m *message.Message) { r.anyMessages++ }

func (r *recorder) OnInvalidMessage(w Writer, m *message.Message) error {
	return r.record("OnInvalidMessage", m.Kind.String())
}
func (r *recorder) OnUnknownCommand(w Writer, m *message.Message) error {
	return r.record("OnUnknownCommand", m.Kind.String())
}
func (r *recorder) OnUnknownReply(w Writer, m *message.Message) error {
	return r.record("OnUnknownReply", m.Kind.Reply)
}
func (r *recorder) OnNumeric(w Writer, reply message.Reply, m *message.Message) error {
	return r.record("OnNumeric", reply, m.Params)
}
func (r *recorder) OnPass(w Writer, origin, password string) error {
	return r.record("OnPass", origin, password)
}
func (r *recorder) OnNick(w Writer, origin, nick string, hopcount *int) error {
	return r.record("OnNick", origin, nick, hopcount)
}
func (r *recorder) OnUser(w Writer, origin, username, hostname, servername, realname string) error {
	return r.record("OnUser", origin, username, hostname, servername, realname)
}
func (r *recorder) OnServer(w Writer, origin, name string, hopcount int, info string) error {
	return r.record("OnServer", origin, name, hopcount, info)
}
func (r *recorder) OnOper(w Writer, origin, user, password string) error {
	return r.record("OnOper", origin, user, password)
}
func (r *recorder) OnQuit(w Writer, origin string, msg *string) error {
	return r.record("OnQuit", origin, msg)
}
func (r *recorder) OnSquit(w Writer, origin, server, comment string) error {
	return r.record("OnSquit", origin, server, comment)
}
func (r *recorder) OnJoin(w Writer, origin string, channels, keys []string) error {
	return r.record("OnJoin", origin, channels, keys)
}
func (r *recorder) OnPart(w Writer, origin string, channels []string, msg *string) error {
	return r.record("OnPart", origin, channels, msg)
}
func (r *recorder) OnChannelMode(w Writer, origin, channel, modes string, args []string) error {
	return r.record("OnChannelMode", origin, channel, modes, args)
}
func (r *recorder) OnUserMode(w Writer, origin, nick, modes string) error {
	return r.record("OnUserMode", origin, nick, modes)
}
func (r *recorder) OnTopic(w Writer, origin, channel string, topic *string) error {
	return r.record("OnTopic", origin, channel, topic)
}
func (r *recorder) OnNames(w Writer, origin string, channels []string) error {
	return r.record("OnNames", origin, channels)
}
func (r *recorder) OnList(w Writer, origin string, channels []string, server *string) error {
	return r.record("OnList", origin, channels, server)
}
func (r *recorder) OnInvite(w Writer, origin, nick, channel string) error {
	return r.record("OnInvite", origin, nick, channel)
}
func (r *recorder) OnKick(w Writer, origin, channel, user string, comment *string) error {
	return r.record("OnKick", origin, channel, user, comment)
}
func (r *recorder) OnVersion(w Writer, origin string, server *string) error {
	return r.record("OnVersion", origin, server)
}
func (r *recorder) OnStats(w Writer, origin string, query, server *string) error {
	return r.record("OnStats", origin, query, server)
}
func (r *recorder) OnLinks(w Writer, origin string, remote, mask *string) error {
	return r.record("OnLinks", origin, remote, mask)
}
func (r *recorder) OnTime(w Writer, origin string, server *string) error {
	return r.record("OnTime", origin, server)
}
func (r *recorder) OnServerConnect(w Writer, origin, target string, port *int, remote *string) error {
	return r.record("OnServerConnect", origin, target, port, remote)
}
func (r *recorder) OnTrace(w Writer, origin string, server *string) error {
	return r.record("OnTrace", origin, server)
}
func (r *recorder) OnAdmin(w Writer, origin string, server *string) error {
	return r.record("OnAdmin", origin, server)
}
func (r *recorder) OnInfo(w Writer, origin string, server *string) error {
	return r.record("OnInfo", origin, server)
}
func (r *recorder) OnPrivmsg(w Writer, origin string, receivers []string, text string) error {
	return r.record("OnPrivmsg", origin, receivers, text)
}
func (r *recorder) OnNotice(w Writer, origin, nick, text string) error {
	return r.record("OnNotice", origin, nick, text)
}
func (r *recorder) OnWho(w Writer, origin, name string, operators bool) error {
	return r.record("OnWho", origin, name, operators)
}
func (r *recorder) OnWhois(w Writer, origin string, server *string, masks []string) error {
	return r.record("OnWhois", origin, server, masks)
}
func (r *recorder) OnWhowas(w Writer, origin, nick string, count *int, server *string) error {
	return r.record("OnWhowas", origin, nick, count, server)
}
func (r *recorder) OnKill(w Writer, origin, nick, comment string) error {
	return r.record("OnKill", origin, nick, comment)
}
func (r *recorder) OnPing(w Writer, origin, server1 string, server2 *string) error {
	r.record("OnPing", origin, server1, server2)
	return r.DefaultHandler.OnPing(w, origin, server1, server2)
}
func (r *recorder) OnPong(w Writer, origin, daemon1 string, daemon2 *string) error {
	return r.record("OnPong", origin, daemon1, daemon2)
}
func (r *recorder) OnError(w Writer, origin, msg string) error {
	return r.record("OnError", origin, msg)
}
func (r *recorder) OnAway(w Writer, origin string, msg *string) error {
	return r.record("OnAway", origin, msg)
}
func (r *recorder) OnRehash(w Writer, origin string) error {
	return r.record("OnRehash", origin)
}
func (r *recorder) OnRestart(w Writer, origin string) error {
	return r.record("OnRestart", origin)
}
func (r *recorder) OnSummon(w Writer, origin, user string, server *string) error {
	return r.record("OnSummon", origin, user, server)
}
func (r *recorder) OnUsers(w Writer, origin string, server *string) error {
	return r.record("OnUsers", origin, server)
}
func (r *recorder) OnWallops(w Writer, origin, text string) error {
	return r.record("OnWallops", origin, text)
}
func (r *recorder) OnUserhost(w Writer, origin string, nicks []string) error {
	return r.record("OnUserhost", origin, nicks)
}
func (r *recorder) OnIson(w Writer, origin string, nicks []string) error {
	return r.record("OnIson", origin, nicks)
}

// sentWriter collects outgoing messages.
type sentWriter struct {
	sent []message.Message
}

func (sw *sentWriter) Send(m message.Message) error {
	sw.sent = append(sw.sent, m)
	return nil
}

func c(name string, args ...interface{}) call {
	return call{Name: name, Args: args}
}

func dispatchLine(t *testing.T, h Handler, w Writer, line string) error {
	t.Helper()
	msg, err := message.Parse(line + "\r\n")
	if err != nil {
		t.Fatalf("could not parse %q: %v", line, err)
	}
	return Dispatch(h, w, &msg)
}

func TestDispatchContracts(t *testing.T) {
	testCases := []struct {
		line     string
		expected call
	}{
		{"PASS secret", c("OnPass", "", "secret")},
		{":srv NICK x", c("OnNick", "srv", "x", noInt)},
		{"NICK x 5", c("OnNick", "", "x", intp(5))},
		{"NICK x 5 extra", c("OnNick", "", "x", intp(5))},
		{"NICK x abc", c("OnInvalidMessage", "NICK")},
		{"NICK x -1", c("OnInvalidMessage", "NICK")},
		{"NICK", c("OnInvalidMessage", "NICK")},
		{"USER guest 0 * :Real Name", c("OnUser", "", "guest", "0", "*", "Real Name")},
		{"USER guest 0 *", c("OnInvalidMessage", "USER")},
		{"SERVER irc.example.com 1 :Example server", c("OnServer", "", "irc.example.com", 1, "Example server")},
		{"SERVER irc.example.com x :Example server", c("OnInvalidMessage", "SERVER")},
		{"OPER admin hunter2", c("OnOper", "", "admin", "hunter2")},
		{"QUIT", c("OnQuit", "", none)},
		{":a!b@c QUIT :bye now", c("OnQuit", "a!b@c", strp("bye now"))},
		{"SQUIT tolsun.oulu.fi :Bad Link", c("OnSquit", "", "tolsun.oulu.fi", "Bad Link")},
		{"JOIN #a,#b", c("OnJoin", "", []string{"#a", "#b"}, []string(nil))},
		{"JOIN #a,#b k1,k2", c("OnJoin", "", []string{"#a", "#b"}, []string{"k1", "k2"})},
		{"JOIN", c("OnInvalidMessage", "JOIN")},
		{"PART #a", c("OnPart", "", []string{"#a"}, none)},
		{"PART #a,#b :see you", c("OnPart", "", []string{"#a", "#b"}, strp("see you"))},
		{"TOPIC #a", c("OnTopic", "", "#a", none)},
		{"TOPIC #a :new topic", c("OnTopic", "", "#a", strp("new topic"))},
		{"TOPIC #a :", c("OnTopic", "", "#a", strp(""))},
		{"NAMES", c("OnNames", "", []string(nil))},
		{"NAMES #a,#b", c("OnNames", "", []string{"#a", "#b"})},
		{"LIST", c("OnList", "", []string(nil), none)},
		{"LIST #a srv", c("OnList", "", []string{"#a"}, strp("srv"))},
		{"INVITE nick #a", c("OnInvite", "", "nick", "#a")},
		{"KICK #a nick", c("OnKick", "", "#a", "nick", none)},
		{"KICK #a nick :reason", c("OnKick", "", "#a", "nick", strp("reason"))},
		{"KICK #a", c("OnInvalidMessage", "KICK")},
		{"VERSION", c("OnVersion", "", none)},
		{"VERSION srv", c("OnVersion", "", strp("srv"))},
		{"STATS", c("OnStats", "", none, none)},
		{"STATS l", c("OnStats", "", strp("l"), none)},
		{"STATS l srv", c("OnStats", "", strp("l"), strp("srv"))},
		{"LINKS", c("OnLinks", "", none, none)},
		{"LINKS *.net", c("OnLinks", "", none, strp("*.net"))},
		{"LINKS remote.net *.net", c("OnLinks", "", strp("remote.net"), strp("*.net"))},
		{"TIME srv", c("OnTime", "", strp("srv"))},
		{"CONNECT srv", c("OnServerConnect", "", "srv", noInt, none)},
		{"CONNECT srv 6667 remote", c("OnServerConnect", "", "srv", intp(6667), strp("remote"))},
		{"CONNECT srv 70000", c("OnInvalidMessage", "CONNECT")},
		{"TRACE", c("OnTrace", "", none)},
		{"ADMIN srv", c("OnAdmin", "", strp("srv"))},
		{"INFO", c("OnInfo", "", none)},
		{"NOTICE a :hi", c("OnNotice", "", "a", "hi")},
		{"NOTICE a", c("OnInvalidMessage", "NOTICE")},
		{"WHO *.fi", c("OnWho", "", "*.fi", false)},
		{"WHO *.fi o", c("OnWho", "", "*.fi", true)},
		{"WHO *.fi x", c("OnInvalidMessage", "WHO")},
		{"WHOIS nick", c("OnWhois", "", none, []string{"nick"})},
		{"WHOIS srv a,b", c("OnWhois", "", strp("srv"), []string{"a", "b"})},
		{"WHOWAS nick", c("OnWhowas", "", "nick", noInt, none)},
		{"WHOWAS nick 3 srv", c("OnWhowas", "", "nick", intp(3), strp("srv"))},
		{"WHOWAS nick x", c("OnInvalidMessage", "WHOWAS")},
		{"KILL nick :reason", c("OnKill", "", "nick", "reason")},
		{"PONG d1", c("OnPong", "", "d1", none)},
		{"PONG d1 d2", c("OnPong", "", "d1", strp("d2"))},
		{"ERROR :Closing link", c("OnError", "", "Closing link")},
		{"AWAY", c("OnAway", "", none)},
		{"AWAY :gone fishing", c("OnAway", "", strp("gone fishing"))},
		{"REHASH", c("OnRehash", "")},
		{"RESTART", c("OnRestart", "")},
		{"SUMMON user", c("OnSummon", "", "user", none)},
		{"SUMMON user srv", c("OnSummon", "", "user", strp("srv"))},
		{"USERS srv", c("OnUsers", "", strp("srv"))},
		{"WALLOPS :text here", c("OnWallops", "", "text here")},
		{"USERHOST a b c", c("OnUserhost", "", []string{"a", "b", "c"})},
		{"USERHOST", c("OnInvalidMessage", "USERHOST")},
		{"ISON a b", c("OnIson", "", []string{"a", "b"})},
		{"MODE #chan +o nick", c("OnChannelMode", "", "#chan", "+o", []string{"nick"})},
		{"MODE &chan +n", c("OnChannelMode", "", "&chan", "+n", []string{})},
		{"MODE nick +i", c("OnUserMode", "", "nick", "+i")},
		{"MODE nick +i extra", c("OnUserMode", "", "nick", "+i")},
		{"MODE #chan", c("OnInvalidMessage", "MODE")},
		{"001 nick :Welcome", c("OnNumeric", message.RPL_WELCOME, []string{"nick", "Welcome"})},
		{"042 x", c("OnUnknownReply", message.Reply(42))},
		{"FROB x", c("OnUnknownCommand", "FROB")},
	}

	for i, tt := range testCases {
		t.Run(fmt.Sprintf("case %d: %s", i, tt.line), func(t *testing.T) {
			var h recorder
			var w sentWriter
			if err := dispatchLine(t, &h, &w, tt.line); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			assertEqual(h.anyMessages, 1, t)
			if len(h.calls) != 1 {
				t.Fatalf("expected exactly one handler call, got %v", h.calls)
			}
			if diff := deep.Equal(h.calls[0], tt.expected); diff != nil {
				t.Error(diff)
			}
		})
	}
}

func TestContractTotality(t *testing.T) {
	for _, command := range message.Commands {
		if _, ok := Commands[command]; !ok {
			t.Errorf("no contract for %s", command)
		}
	}
	assertEqual(len(Commands), len(message.Commands), t)
}

func TestPingPong(t *testing.T) {
	var h recorder
	var w sentWriter
	if err := dispatchLine(t, &h, &w, "PING server1"); err != nil {
		t.Fatal(err)
	}
	assertEqual(h.anyMessages, 1, t)
	if diff := deep.Equal(h.calls, []call{c("OnPing", "", "server1", none)}); diff != nil {
		t.Error(diff)
	}
	if len(w.sent) != 1 {
		t.Fatalf("expected one reply, got %v", w.sent)
	}
	line, err := w.sent[0].Line()
	if err != nil {
		t.Fatal(err)
	}
	assertEqual(string(line), "PONG server1\r\n", t)
}

func TestDefaultHandlerPing(t *testing.T) {
	var out flushRecorder
	w := NewLineWriter(&out)
	msg, err := message.Parse("PING server1 server2\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := Dispatch(&DefaultHandler{}, w, &msg); err != nil {
		t.Fatal(err)
	}
	assertEqual(out.String(), "PONG server1\r\n", t)
	assertEqual(out.flushes, 1, t)
}

func TestPrivmsg(t *testing.T) {
	var h recorder
	var w sentWriter
	if err := dispatchLine(t, &h, &w, ":nick!user@host PRIVMSG #chan,#chan2 :hello there"); err != nil {
		t.Fatal(err)
	}
	expected := []call{c("OnPrivmsg", "nick!user@host", []string{"#chan", "#chan2"}, "hello there")}
	if diff := deep.Equal(h.calls, expected); diff != nil {
		t.Error(diff)
	}
	assertEqual(len(w.sent), 0, t)
}

func TestHandlerErrors(t *testing.T) {
	failure := errors.New("handler failed")
	h := recorder{err: failure}
	var w sentWriter
	if err := dispatchLine(t, &h, &w, "NOTICE a :hi"); err != failure {
		t.Errorf("expected handler error, got %v", err)
	}
	// invalid and unknown fallbacks propagate too
	if err := dispatchLine(t, &h, &w, "NOTICE a"); err != failure {
		t.Errorf("expected handler error, got %v", err)
	}
	if err := dispatchLine(t, &h, &w, "FROB"); err != failure {
		t.Errorf("expected handler error, got %v", err)
	}
}

func TestReplyMux(t *testing.T) {
	mux := NewReplyMux()
	var welcomed, fallback []string
	mux.Handle(message.RPL_WELCOME, func(w Writer, m *message.Message) error {
		welcomed = append(welcomed, m.Param(0))
		return nil
	})
	mux.Fallback = func(w Writer, m *message.Message) error {
		fallback = append(fallback, m.Kind.Reply.Name())
		return nil
	}

	h := &DefaultHandler{Replies: mux}
	var w sentWriter
	dispatchLine(t, h, &w, ":srv 001 nick :Welcome")
	dispatchLine(t, h, &w, ":srv 376 nick :End of MOTD")
	dispatchLine(t, h, &w, ":srv 042 nick :unknown")
	assertEqual(welcomed, []string{"nick"}, t)
	assertEqual(fallback, []string{"RPL_ENDOFMOTD"}, t)

	mux.Remove(message.RPL_WELCOME)
	dispatchLine(t, h, &w, ":srv 001 nick :Welcome")
	assertEqual(welcomed, []string{"nick"}, t)
	assertEqual(fallback, []string{"RPL_ENDOFMOTD", "RPL_WELCOME"}, t)
}

func TestReplyMuxZeroValue(t *testing.T) {
	var mux ReplyMux
	var w sentWriter
	h := &DefaultHandler{Replies: &mux}

	// nothing registered yet
	dispatchLine(t, h, &w, ":srv 001 nick :Welcome")
	mux.Remove(message.RPL_WELCOME)

	welcomes := 0
	mux.Handle(message.RPL_WELCOME, func(w Writer, m *message.Message) error {
		welcomes++
		return nil
	})
	dispatchLine(t, h, &w, ":srv 001 nick :Welcome")
	assertEqual(welcomes, 1, t)
}

func TestDestructure(t *testing.T) {
	contract := []param{leading("server"), optional("a"), list("masks"), optional("b")}

	_, ok := destructure(contract, nil)
	assertEqual(ok, false, t)

	// plain optionals fill in declaration order before leading ones
	values, ok := destructure(contract, []string{"x", "m1,m2"})
	assertEqual(ok, true, t)
	assertEqual(values.opt(0), none, t)
	assertEqual(*values.opt(1), "x", t)
	assertEqual(values.list(2), []string{"m1", "m2"}, t)
	assertEqual(values.opt(3), none, t)

	values, ok = destructure(contract, []string{"srv", "x", "m", "y"})
	assertEqual(ok, true, t)
	assertEqual(*values.opt(0), "srv", t)
	assertEqual(*values.opt(1), "x", t)
	assertEqual(values.list(2), []string{"m"}, t)
	assertEqual(*values.opt(3), "y", t)
}

func TestIsChannelName(t *testing.T) {
	assertEqual(IsChannelName("#chan"), true, t)
	assertEqual(IsChannelName("&local"), true, t)
	assertEqual(IsChannelName("nick"), false, t)
	assertEqual(IsChannelName(""), false, t)
}
