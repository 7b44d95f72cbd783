// Copyright (c) 2026 ircclient authors
// released under the MIT license

// Package transcript keeps a rolling, per-target record of conversation
// lines (PRIVMSG, NOTICE, JOIN, PART, QUIT and TOPIC) in a buntdb file.
package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ergochat/ircclient/irc/kv"
	"github.com/ergochat/ircclient/irc/message"
)

const (
	// DefaultTTL is how long lines are kept when no TTL is configured.
	DefaultTTL = 7 * 24 * time.Hour

	// MemoryPath opens a transcript that is never written to disk.
	MemoryPath = ":memory:"

	// keys are "transcript <target> <stamp>"; targets can't contain spaces
	keyPrefix = "transcript "
)

var (
	ErrLocked = errors.New("Couldn't lock transcript (is another ircclient using it?)")
)

// gofrs/flock.Flock has Unlock() error, so it isn't a sync.Locker
type unlocker interface {
	Unlock() error
}

// Config controls the on-disk transcript.
type Config struct {
	Enabled bool
	Path    string
	TTL     time.Duration `yaml:"ttl"`
	// Replay is the number of lines per target printed at startup.
	Replay int
}

// Entry is one recorded line.
type Entry struct {
	Time    time.Time       `json:"time"`
	Target  string          `json:"target"`
	Message message.Message `json:"-"`
	Line    string          `json:"line"`
}

// Store is a transcript backed by a kv.Store.
type Store struct {
	sync.Mutex // tier 1
	db         kv.Store
	lock       unlocker
	ttl        time.Duration
	lastStamp  int64
	now        func() time.Time
}

// Open opens the transcript at path, taking an exclusive lock on it.
func Open(path string, ttl time.Duration) (*Store, error) {
	var lock unlocker
	if path != MemoryPath {
		var err error
		lock, err = lockFile(path + ".lock")
		if err != nil {
			return nil, err
		}
	}
	db, err := kv.BuntdbOpen(path)
	if err != nil {
		if lock != nil {
			lock.Unlock()
		}
		return nil, fmt.Errorf("could not open transcript %s: %w", path, err)
	}
	return newStore(db, lock, ttl), nil
}

func newStore(db kv.Store, lock unlocker, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		db:   db,
		lock: lock,
		ttl:  ttl,
		now:  time.Now,
	}
}

// Close closes the database and releases the lock.
func (store *Store) Close() error {
	err := store.db.Close()
	if store.lock != nil {
		if unlockErr := store.lock.Unlock(); err == nil {
			err = unlockErr
		}
	}
	return err
}

// Targets returns the transcript targets a message belongs to. self is
// the client's own nick: private messages to it are filed under the sender.
func Targets(m *message.Message, self string) (targets []string) {
	if m.Kind.Numeric {
		return nil
	}
	switch m.Kind.Command {
	case message.PRIVMSG, message.NOTICE:
		if len(m.Params) < 2 {
			return nil
		}
		for _, receiver := range strings.Split(m.Params[0], ",") {
			if receiver == "" {
				continue
			}
			if self != "" && foldTarget(receiver) == foldTarget(self) {
				receiver = m.Nick()
			}
			if receiver != "" {
				targets = append(targets, receiver)
			}
		}
	case message.JOIN, message.PART:
		if len(m.Params) < 1 {
			return nil
		}
		for _, channel := range strings.Split(m.Params[0], ",") {
			if channel != "" {
				targets = append(targets, channel)
			}
		}
	case message.TOPIC:
		if len(m.Params) >= 2 {
			targets = append(targets, m.Params[0])
		}
	case message.QUIT:
		if nick := m.Nick(); nick != "" {
			targets = append(targets, nick)
		}
	}
	return
}

// stamp returns a strictly increasing timestamp, so keys never collide.
func (store *Store) stamp() (time.Time, int64) {
	now := store.now()
	stamp := now.UnixNano()
	if stamp <= store.lastStamp {
		stamp = store.lastStamp + 1
	}
	store.lastStamp = stamp
	return now, stamp
}

func entryKey(target string, stamp int64) string {
	return fmt.Sprintf("%s%s %020d", keyPrefix, foldTarget(target), stamp)
}

// Record stores m under each of its targets. Messages that don't belong
// in a transcript are ignored. It returns the number of entries written.
func (store *Store) Record(m *message.Message, self string) (int, error) {
	targets := Targets(m, self)
	if len(targets) == 0 {
		return 0, nil
	}
	line, err := m.Line()
	if err != nil {
		return 0, err
	}

	store.Lock()
	defer store.Unlock()

	now, stamp := store.stamp()
	setOptions := &kv.SetOptions{Expires: true, TTL: store.ttl}
	err = store.db.Update(func(tx kv.Tx) error {
		for _, target := range targets {
			value, err := json.Marshal(Entry{
				Time:   now.UTC(),
				Target: target,
				Line:   strings.TrimSuffix(string(line), "\r\n"),
			})
			if err != nil {
				return err
			}
			if _, _, err := tx.Set(entryKey(target, stamp), string(value), setOptions); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(targets), nil
}

func decodeEntry(value string) (entry Entry, err error) {
	if err = json.Unmarshal([]byte(value), &entry); err != nil {
		return
	}
	entry.Message, err = message.Parse(entry.Line + "\r\n")
	return
}

// Recent returns up to limit of the most recent entries for target,
// oldest first. A limit of 0 or less returns everything.
func (store *Store) Recent(target string, limit int) (entries []Entry, err error) {
	pattern := keyPrefix + foldTarget(target) + " *"
	var decodeErr error
	err = store.db.View(func(tx kv.Tx) error {
		return tx.DescendKeys(pattern, func(key, value string) bool {
			entry, err := decodeEntry(value)
			if err != nil {
				decodeErr = fmt.Errorf("corrupt transcript entry %s: %w", key, err)
				return false
			}
			entries = append(entries, entry)
			return limit <= 0 || len(entries) < limit
		})
	})
	if err == nil {
		err = decodeErr
	}
	if err != nil {
		return nil, err
	}
	// reverse into chronological order
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

// Targets returns every target with at least one stored entry, as
// recorded in the most recent entry for it.
func (store *Store) Targets() (targets []string, err error) {
	seen := make(map[string]bool)
	err = store.db.View(func(tx kv.Tx) error {
		return tx.AscendKeys(keyPrefix+"*", func(key, value string) bool {
			var entry Entry
			if json.Unmarshal([]byte(value), &entry) != nil {
				return true
			}
			folded := foldTarget(entry.Target)
			if !seen[folded] {
				seen[folded] = true
				targets = append(targets, entry.Target)
			}
			return true
		})
	})
	return
}

// Forget deletes every entry for target.
func (store *Store) Forget(target string) (count int, err error) {
	pattern := keyPrefix + foldTarget(target) + " *"
	err = store.db.Update(func(tx kv.Tx) error {
		var keys []string
		err := tx.AscendKeys(pattern, func(key, value string) bool {
			keys = append(keys, key)
			return true
		})
		if err != nil {
			return err
		}
		for _, key := range keys {
			if _, err := tx.Delete(key); err != nil && err != kv.ErrNotFound {
				return err
			}
			count++
		}
		return nil
	})
	return
}
