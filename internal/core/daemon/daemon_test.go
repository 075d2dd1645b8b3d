package daemon

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mkells/remindwindows/internal/core/reminder"
	"github.com/mkells/remindwindows/internal/core/store"
)

// capturePresenter records signals across goroutines.
type capturePresenter struct {
	mu       sync.Mutex
	appeared []string
	removed  []string
}

func (p *capturePresenter) ReminderAppeared(rec reminder.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.appeared = append(p.appeared, rec.Name)
}

func (p *capturePresenter) ReminderRemoved(rec reminder.Record) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.removed = append(p.removed, rec.Name)
}

func (p *capturePresenter) counts() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.appeared), len(p.removed)
}

// net is the appeared-minus-removed balance: with the replace-on-recreate
// rule this always equals the active set size.
func (p *capturePresenter) net() int {
	a, r := p.counts()
	return a - r
}

func waitFor(t *testing.T, desc string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", desc)
}

func TestDaemon_MirrorsDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.rem"), []byte("pre-existing"), 0644); err != nil {
		t.Fatal(err)
	}

	st, err := store.Open(dir)
	if err != nil {
		t.Fatal(err)
	}

	p := &capturePresenter{}
	d := New(st, p)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()
	defer func() {
		cancel()
		if err := <-done; err != nil {
			t.Errorf("Run() error = %v", err)
		}
	}()

	// Initial scan surfaces the pre-existing reminder.
	waitFor(t, "initial scan", func() bool { return p.net() == 1 })

	// A file created while watching appears.
	if err := os.WriteFile(filepath.Join(dir, "b.rem"), []byte("new"), 0644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "created reminder", func() bool { return p.net() == 2 })

	// A deleted file is retired.
	if err := os.Remove(filepath.Join(dir, "a.rem")); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "removed reminder", func() bool { return p.net() == 1 })
}
