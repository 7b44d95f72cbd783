// Copyright (c) 2026 ircclient authors
// released under the MIT license

package main

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-test/deep"

	"github.com/ergochat/ircclient/irc"
	"github.com/ergochat/ircclient/irc/logger"
	"github.com/ergochat/ircclient/irc/message"
	"github.com/ergochat/ircclient/irc/transcript"
)

type sentLines struct {
	sync.Mutex
	lines []string
}

func (s *sentLines) Send(m message.Message) error {
	s.Lock()
	defer s.Unlock()
	s.lines = append(s.lines, m.String())
	return nil
}

func (s *sentLines) take() (lines []string) {
	s.Lock()
	defer s.Unlock()
	lines, s.lines = s.lines, nil
	return
}

func newTestConsole(t *testing.T) (*console, *bytes.Buffer) {
	t.Helper()
	logman, err := logger.NewManager(nil)
	if err != nil {
		t.Fatal(err)
	}
	config := &irc.Config{}
	config.Client.Nick = "alice"
	config.Client.Autojoin = []string{"#one", "#two"}
	var out bytes.Buffer
	con := newConsole(config, logman, &out)
	con.now = func() time.Time { return time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC) }
	return con, &out
}

func dispatch(t *testing.T, con *console, w irc.Writer, line string) {
	t.Helper()
	msg, err := message.Parse(line + "\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if err := irc.Dispatch(con, w, &msg); err != nil {
		t.Fatal(err)
	}
}

func TestConsoleRegistration(t *testing.T) {
	con, out := newTestConsole(t)
	w := &sentLines{}

	dispatch(t, con, w, ":srv 433 * alice :Nickname is already in use")
	if diff := deep.Equal(w.take(), []string{"NICK alice_"}); diff != nil {
		t.Error(diff)
	}

	dispatch(t, con, w, ":srv 001 alice_ :Welcome to the network")
	if diff := deep.Equal(w.take(), []string{"JOIN #one,#two"}); diff != nil {
		t.Error(diff)
	}
	if con.currentNick() != "alice_" {
		t.Errorf("unexpected nick %q", con.currentNick())
	}

	// after registration a nick collision is only reported
	dispatch(t, con, w, ":srv 433 alice_ bob :Nickname is already in use")
	if lines := w.take(); len(lines) != 0 {
		t.Errorf("unexpected lines %v", lines)
	}

	dispatch(t, con, w, "PING :srv")
	if diff := deep.Equal(w.take(), []string{"PONG srv"}); diff != nil {
		t.Error(diff)
	}

	if !strings.Contains(out.String(), "12:30 -srv- Welcome to the network\n") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestConsoleNickRetries(t *testing.T) {
	con, out := newTestConsole(t)
	w := &sentLines{}

	// an erroneous nick is reported, never retried
	for i := 0; i < 5; i++ {
		dispatch(t, con, w, ":srv 432 * bad*nick :Erroneous nickname")
	}
	if lines := w.take(); len(lines) != 0 {
		t.Errorf("unexpected lines %v", lines)
	}
	if !strings.Contains(out.String(), "-srv- bad*nick Erroneous nickname\n") {
		t.Errorf("unexpected output %q", out.String())
	}

	for i := 0; i < 5; i++ {
		dispatch(t, con, w, ":srv 433 * alice :Nickname is already in use")
	}
	expected := []string{"NICK alice_", "NICK alice__", "NICK alice___"}
	if diff := deep.Equal(w.take(), expected); diff != nil {
		t.Error(diff)
	}
	if !strings.Contains(out.String(), "choose another with /nick") {
		t.Errorf("giving up should be reported, got %q", out.String())
	}

	// choosing a nick by hand starts over
	if err := con.command(w, "/nick bob"); err != nil {
		t.Fatal(err)
	}
	dispatch(t, con, w, ":srv 436 * bob :Nickname collision")
	if diff := deep.Equal(w.take(), []string{"NICK bob", "NICK bob_"}); diff != nil {
		t.Error(diff)
	}
}

func TestConsoleOutput(t *testing.T) {
	con, out := newTestConsole(t)
	w := &sentLines{}

	dispatch(t, con, w, ":alice!a@host JOIN #chan")
	dispatch(t, con, w, ":bob!b@host PRIVMSG #chan :\x02hello\x02 there")
	dispatch(t, con, w, ":bob!b@host PRIVMSG #chan :\x01ACTION waves\x01")
	dispatch(t, con, w, ":bob!b@host NICK robert")
	dispatch(t, con, w, ":robert!b@host PART #chan :bye")

	expected := []string{
		"12:30 -!- alice!a@host has joined #chan",
		"12:30 [#chan] <bob> hello there",
		"12:30 * bob waves",
		"12:30 -!- bob is now known as robert",
		"12:30 -!- robert!b@host has left #chan (bye)",
	}
	if diff := deep.Equal(strings.Split(strings.TrimSpace(out.String()), "\n"), expected); diff != nil {
		t.Error(diff)
	}
	con.stateMutex.Lock()
	target := con.target
	con.stateMutex.Unlock()
	if target != "#chan" {
		t.Errorf("joining should select the channel, got %q", target)
	}
}

func TestConsoleCTCP(t *testing.T) {
	con, _ := newTestConsole(t)
	w := &sentLines{}

	dispatch(t, con, w, ":bob!b@host PRIVMSG alice :\x01VERSION\x01")
	dispatch(t, con, w, ":bob!b@host PRIVMSG alice :\x01PING 12345\x01")
	expected := []string{
		"NOTICE bob :\x01VERSION " + irc.Ver + "\x01",
		"NOTICE bob :\x01PING 12345\x01",
	}
	if diff := deep.Equal(w.take(), expected); diff != nil {
		t.Error(diff)
	}
}

func TestConsoleCommands(t *testing.T) {
	con, _ := newTestConsole(t)
	w := &sentLines{}

	if err := con.command(w, "hello"); err == nil {
		t.Error("text without a target should fail")
	}

	testCases := []struct {
		input string
		sent  []string
	}{
		{"/join #a,#b key", []string{"JOIN #a,#b key"}},
		{"/query #a", nil},
		{"hello there", []string{"PRIVMSG #a :hello there"}},
		{"//not a command", []string{"PRIVMSG #a :/not a command"}},
		{"/me waves", []string{"PRIVMSG #a :\x01ACTION waves\x01"}},
		{"/msg bob hi", []string{"PRIVMSG bob hi"}},
		{"/part", []string{"PART #a"}},
		{"/part #b see you", []string{"PART #b :see you"}},
		{"/topic #a", []string{"TOPIC #a"}},
		{"/topic #a new topic", []string{"TOPIC #a :new topic"}},
		{"/nick carol", []string{"NICK carol"}},
		{"/whois bob", []string{"WHOIS bob"}},
		{"/raw MODE #a +o bob", []string{"MODE #a +o bob"}},
	}
	for _, tt := range testCases {
		if err := con.command(w, tt.input); err != nil {
			t.Errorf("%q: unexpected error %v", tt.input, err)
			continue
		}
		if diff := deep.Equal(w.take(), tt.sent); diff != nil {
			t.Errorf("%q: %v", tt.input, diff)
		}
	}

	if err := con.command(w, "/frob"); err == nil {
		t.Error("unknown commands should fail")
	}
	if err := con.command(w, "/raw not valid"); err == nil {
		t.Error("unparseable raw lines should fail")
	}
	if err := con.command(w, "/quit bye"); err != errQuit {
		t.Errorf("expected errQuit, got %v", err)
	}
	if diff := deep.Equal(w.take(), []string{"QUIT bye"}); diff != nil {
		t.Error(diff)
	}
}

func TestConsoleWrapping(t *testing.T) {
	con, _ := newTestConsole(t)
	w := &sentLines{}
	text := strings.Repeat("word ", 200)
	if err := con.command(w, "/msg #chan "+text); err != nil {
		t.Fatal(err)
	}
	lines := w.take()
	if len(lines) < 2 {
		t.Fatalf("long text should be split, got %d lines", len(lines))
	}
	for _, line := range lines {
		if !strings.HasPrefix(line, "PRIVMSG #chan :word") {
			t.Errorf("unexpected line %q", line)
		}
	}
}

func TestConsoleInput(t *testing.T) {
	con, _ := newTestConsole(t)
	w := &sentLines{}
	err := con.input(context.Background(), w, strings.NewReader("/join #a\n/quit\n/join #b\n"))
	if err != errQuit {
		t.Errorf("expected errQuit, got %v", err)
	}
	if diff := deep.Equal(w.take(), []string{"JOIN #a", "QUIT"}); diff != nil {
		t.Error(diff)
	}
}

func TestConsoleTranscript(t *testing.T) {
	con, out := newTestConsole(t)
	store, err := transcript.Open(transcript.MemoryPath, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	con.store = store
	w := &sentLines{}

	dispatch(t, con, w, ":bob!b@host PRIVMSG #chan :one")
	dispatch(t, con, w, ":bob!b@host PRIVMSG #chan :two")
	dispatch(t, con, w, ":bob!b@host PRIVMSG alice :private")

	entries, err := store.Recent("#chan", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 || entries[1].Line != ":bob!b@host PRIVMSG #chan two" {
		t.Errorf("unexpected entries %#v", entries)
	}

	out.Reset()
	if err := con.replay(1); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "[#chan] :bob!b@host PRIVMSG #chan two\n") || !strings.Contains(out.String(), "[bob] ") {
		t.Errorf("unexpected replay %q", out.String())
	}
	if strings.Contains(out.String(), "#chan one") {
		t.Errorf("replay should be limited, got %q", out.String())
	}
}
