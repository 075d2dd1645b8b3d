// Package watch adapts fsnotify into the serialized event stream the
// synchronizer consumes.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/mkells/remindwindows/internal/core/reminder"
	"github.com/mkells/remindwindows/internal/core/slug"
)

// Watcher watches one reminder directory and funnels matching filesystem
// events onto a single channel, so the consumer loop stays the only mutator
// of synchronizer state.
type Watcher struct {
	fs     *fsnotify.Watcher
	dir    string
	events chan reminder.Event
	errs   chan error
}

// New creates a watcher for dir. The directory must already exist.
func New(dir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	if _, err := os.Stat(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch path does not exist: %s", dir)
	}

	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		fs:     fs,
		dir:    dir,
		events: make(chan reminder.Event, 64),
		errs:   make(chan error, 1),
	}, nil
}

// Events is the serialized stream of reminder events. Closed when Run returns.
func (w *Watcher) Events() <-chan reminder.Event {
	return w.events
}

// Errors surfaces non-fatal watcher errors for logging.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Run pumps fsnotify events into the event channel until ctx is cancelled or
// the underlying watcher closes. Pending events are dropped at shutdown.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)
	defer w.fs.Close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fs.Events:
			if !ok {
				return fmt.Errorf("watcher closed unexpectedly")
			}
			out, ok := translate(ev)
			if !ok {
				continue
			}
			select {
			case w.events <- out:
			case <-ctx.Done():
				return nil
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

// translate maps an fsnotify event to a reminder event. Create and Write both
// surface as Created (editors that truncate in place report Write); Remove
// and Rename surface as Deleted. Names without the reminder extension, such
// as editor swap files, are dropped.
func translate(ev fsnotify.Event) (reminder.Event, bool) {
	name := filepath.Base(ev.Name)
	if !strings.HasSuffix(name, slug.Extension) {
		return reminder.Event{}, false
	}

	switch {
	case ev.Op&(fsnotify.Create|fsnotify.Write) != 0:
		return reminder.Event{Kind: reminder.Created, Name: name}, true
	case ev.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		return reminder.Event{Kind: reminder.Deleted, Name: name}, true
	}
	return reminder.Event{}, false
}
