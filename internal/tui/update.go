package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/tui/components/today"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateDiaryForm {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.today.SetSize(msg.Width, m.bodyHeight())
		m.week.SetSize(msg.Width, m.bodyHeight())
		return m, nil

	case dataMsg:
		m.err = nil
		m.today.SetStatus(msg.status)
		m.week.SetData(msg.stats, msg.phase)
		m.entries = msg.entries
		m.mantra = msg.mantra
		return m, nil

	case today.MarkDoneMsg:
		return m, m.markDone(msg.Category)

	case markedMsg:
		m.status = msg.category.Emoji() + " " + msg.category.DisplayName() + " marked done"
		return m, m.refresh()

	case entryAddedMsg:
		m.status = "Diary entry saved"
		return m, m.refresh()

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.Right):
			m.state = (m.state + 1) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab), key.Matches(msg, m.keys.Left):
			m.state = (m.state - 1 + SessionState(len(tabTitles))) % SessionState(len(tabTitles))
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.status = ""
			return m, m.refresh()
		case m.state == StateDiary && key.Matches(msg, m.keys.Add):
			return m.openForm()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.today, cmd = m.today.Update(msg)
	case StateWeek:
		m.week, cmd = m.week.Update(msg)
	}
	return m, cmd
}

func (m Model) openForm() (tea.Model, tea.Cmd) {
	m.draft = new(string)
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Diary entry").
				Description("Only you can read this.").
				Value(m.draft).
				Validate(func(s string) error {
					if isBlank(s) {
						return apperrors.ErrEmptyEntry
					}
					return nil
				}),
		),
	).WithShowHelp(true)
	m.state = StateDiaryForm
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.keys.Cancel) {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		text := *m.draft
		m.closeForm()
		return m, m.addEntry(text)
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.draft = nil
	m.state = StateDiary
}

// bodyHeight leaves room for the tab bar, status line and help.
func (m Model) bodyHeight() int {
	if h := m.height - 6; h > 0 {
		return h
	}
	return 0
}
