// Package daemon runs the long-lived display process: it seeds the active
// set from the reminder directory, then keeps it aligned with the directory
// through watcher events, forwarding appeared/removed signals to a presenter.
package daemon

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mkells/remindwindows/internal/core/reminder"
	"github.com/mkells/remindwindows/internal/core/store"
	"github.com/mkells/remindwindows/internal/core/watch"
)

// Presenter owns window lifecycle for active reminders. Record lifecycle
// stays with the synchronizer; presenters only mirror its signals.
type Presenter interface {
	ReminderAppeared(reminder.Record)
	ReminderRemoved(reminder.Record)
}

// Daemon wires store, watcher, and synchronizer into one event loop.
type Daemon struct {
	store     *store.Store
	presenter Presenter
	set       *reminder.Set
	logger    *log.Logger
}

// New creates a daemon presenting reminders from st through p.
func New(st *store.Store, p Presenter) *Daemon {
	d := &Daemon{
		store:     st,
		presenter: p,
		logger:    log.WithPrefix("daemon"),
	}
	d.set = reminder.NewSet(st, reminder.Hooks{
		Appeared: p.ReminderAppeared,
		Removed:  p.ReminderRemoved,
	})
	return d
}

// Run performs the initial scan and then consumes watcher events until ctx is
// cancelled. Events are applied one at a time on this goroutine; nothing else
// mutates the active set.
func (d *Daemon) Run(ctx context.Context) error {
	w, err := watch.New(d.store.Dir())
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	watchDone := make(chan error, 1)
	go func() { watchDone <- w.Run(ctx) }()

	d.logger.Info("watching reminder directory", "dir", d.store.Dir())

	if err := d.set.Rescan(); err != nil {
		return fmt.Errorf("initial scan failed: %w", err)
	}
	d.logger.Info("initial scan complete", "active", d.set.Len())

	for {
		select {
		case <-ctx.Done():
			d.logger.Info("shutting down")
			<-watchDone
			return nil

		case ev, ok := <-w.Events():
			if !ok {
				return <-watchDone
			}
			d.set.Apply(ev)

		case err := <-w.Errors():
			d.logger.Warn("watcher error", "err", err)
		}
	}
}
