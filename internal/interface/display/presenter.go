package display

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkells/remindwindows/internal/core/reminder"
)

// Presenter forwards synchronizer signals into a running bubbletea program.
// Send is safe to call from the daemon goroutine.
type Presenter struct {
	program *tea.Program
}

// NewPresenter wraps a program started with the board Model.
func NewPresenter(p *tea.Program) *Presenter {
	return &Presenter{program: p}
}

func (p *Presenter) ReminderAppeared(rec reminder.Record) {
	p.program.Send(appearedMsg(rec))
}

func (p *Presenter) ReminderRemoved(rec reminder.Record) {
	p.program.Send(removedMsg(rec))
}
