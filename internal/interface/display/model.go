// Package display renders the active reminder set as a board of terminal
// windows, one card per reminder, driven by synchronizer signals.
package display

import (
	"strings"

	"github.com/cbroglie/mustache"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkells/remindwindows/internal/core/reminder"
	"github.com/mkells/remindwindows/internal/core/slug"
	"github.com/mkells/remindwindows/internal/core/store"
)

type appearedMsg reminder.Record

type removedMsg reminder.Record

type keyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Dismiss key.Binding
	Delete  key.Binding
	Quit    key.Binding
	Help    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Dismiss, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Dismiss, k.Delete},
		{k.Help, k.Quit},
	}
}

var defaultKeys = keyMap{
	Next:    key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next")),
	Prev:    key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev")),
	Dismiss: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dismiss")),
	Delete:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Model is the bubbletea model for the reminder board.
type Model struct {
	store         *store.Store
	titleTemplate string

	cards []reminder.Record
	focus int

	keys   keyMap
	help   help.Model
	width  int
	height int
	err    error
}

// New returns an empty board backed by st.
func New(st *store.Store, titleTemplate string) Model {
	return Model{
		store:         st,
		titleTemplate: titleTemplate,
		keys:          defaultKeys,
		help:          help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case appearedMsg:
		// The synchronizer retires a record before re-announcing it, so a
		// duplicate name here means the removal signal was dismissed locally.
		m.dropCard(reminder.Record(msg).Name)
		m.cards = append(m.cards, reminder.Record(msg))
		return m, nil

	case removedMsg:
		m.dropCard(reminder.Record(msg).Name)
		m.clampFocus()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.Next):
			if len(m.cards) > 0 {
				m.focus = (m.focus + 1) % len(m.cards)
			}
			return m, nil

		case key.Matches(msg, m.keys.Prev):
			if len(m.cards) > 0 {
				m.focus = (m.focus + len(m.cards) - 1) % len(m.cards)
			}
			return m, nil

		case key.Matches(msg, m.keys.Dismiss):
			// Close the window only; the file and the record stay.
			if m.focus < len(m.cards) {
				m.dropCard(m.cards[m.focus].Name)
				m.clampFocus()
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			// Delete the backing file; the watcher event retires the record
			// and removes the card everywhere.
			if m.focus < len(m.cards) {
				m.err = m.store.Delete(m.cards[m.focus].Name)
			}
			return m, nil
		}
	}

	return m, nil
}

func (m *Model) dropCard(name string) {
	for i, c := range m.cards {
		if c.Name == name {
			m.cards = append(m.cards[:i], m.cards[i+1:]...)
			return
		}
	}
}

func (m *Model) clampFocus() {
	if m.focus >= len(m.cards) && m.focus > 0 {
		m.focus = len(m.cards) - 1
	}
}

func (m Model) View() string {
	var b strings.Builder

	if len(m.cards) == 0 {
		b.WriteString(emptyStyle.Render("No reminders. Add one with: remindwindows add <text>"))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderBoard())
	}

	if m.err != nil {
		b.WriteString(statusStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// renderBoard lays cards out left to right, wrapping rows to the terminal
// width.
func (m Model) renderBoard() string {
	cardWidth := lipgloss.Width(cardStyle.Render(""))
	perRow := 1
	if m.width > cardWidth {
		perRow = m.width / cardWidth
	}

	var rows []string
	for start := 0; start < len(m.cards); start += perRow {
		end := start + perRow
		if end > len(m.cards) {
			end = len(m.cards)
		}
		row := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			row = append(row, m.renderCard(i))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n"
}

func (m Model) renderCard(i int) string {
	rec := m.cards[i]
	style := cardStyle
	if i == m.focus {
		style = focusedCardStyle
	}

	title, err := mustache.Render(m.titleTemplate, map[string]interface{}{
		"name": strings.TrimSuffix(rec.Name, slug.Extension),
		"text": rec.Text,
	})
	if err != nil || title == "" {
		title = rec.Name
	}

	body := cardTitleStyle.Render(title) + "\n" + cardTextStyle.Render(strings.TrimRight(rec.Text, "\n"))
	return style.Render(body)
}
