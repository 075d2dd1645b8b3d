// Package reminder holds the active-set synchronizer: an in-memory mirror of
// the reminder directory, advanced one filesystem event at a time.
package reminder

import (
	"github.com/charmbracelet/log"
)

// Record is one live reminder: its directory-relative filename and its text,
// exactly as stored on disk.
type Record struct {
	Name string
	Text string
}

// EventKind discriminates watcher events.
type EventKind int

const (
	// Created covers both new files and in-place rewrites.
	Created EventKind = iota
	// Deleted covers removal and rename-away.
	Deleted
)

// Event is one filesystem notification for a reminder filename.
type Event struct {
	Kind EventKind
	Name string
}

// Reader supplies reminder text for a filename. *store.Store satisfies it;
// tests substitute an in-memory fake.
type Reader interface {
	Read(name string) (string, error)
	List() ([]string, error)
}

// Hooks receive the synchronizer's signals. Appeared is called after a record
// enters the active set, Removed after it leaves. Both run on the caller's
// goroutine and must not block for long.
type Hooks struct {
	Appeared func(Record)
	Removed  func(Record)
}

// Set mirrors the reminder directory into a map of active records. All
// methods must be called from a single goroutine; the Set itself never spawns
// one.
type Set struct {
	reader Reader
	hooks  Hooks
	active map[string]Record
	logger *log.Logger
}

// NewSet returns an empty synchronizer reading file content through reader.
func NewSet(reader Reader, hooks Hooks) *Set {
	return &Set{
		reader: reader,
		hooks:  hooks,
		active: make(map[string]Record),
		logger: log.WithPrefix("sync"),
	}
}

// Len returns the number of active records.
func (s *Set) Len() int {
	return len(s.active)
}

// Active returns a copy of the current active set.
func (s *Set) Active() map[string]Record {
	out := make(map[string]Record, len(s.active))
	for k, v := range s.active {
		out[k] = v
	}
	return out
}

// Rescan seeds the active set from a full directory listing, signalling
// appeared for every record. Meant for startup, before any events are applied.
func (s *Set) Rescan() error {
	names, err := s.reader.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		s.insert(name)
	}
	return nil
}

// Apply advances the active set by one event.
//
// Created for an unknown name reads and inserts it. Created for a known name
// retires the old record and inserts a freshly-read one: in-place edits are
// replace, not update. Deleted removes the record if present and is a no-op
// otherwise, so double-delivered or foreign deletions never fail. A file that
// cannot be read is logged and skipped; the display process keeps running.
func (s *Set) Apply(ev Event) {
	switch ev.Kind {
	case Created:
		if old, ok := s.active[ev.Name]; ok {
			s.remove(old)
		}
		s.insert(ev.Name)
	case Deleted:
		if old, ok := s.active[ev.Name]; ok {
			s.remove(old)
		}
	}
}

func (s *Set) insert(name string) {
	text, err := s.reader.Read(name)
	if err != nil {
		s.logger.Warn("skipping unreadable reminder", "name", name, "err", err)
		return
	}
	rec := Record{Name: name, Text: text}
	s.active[name] = rec
	if s.hooks.Appeared != nil {
		s.hooks.Appeared(rec)
	}
}

func (s *Set) remove(rec Record) {
	delete(s.active, rec.Name)
	if s.hooks.Removed != nil {
		s.hooks.Removed(rec)
	}
}
