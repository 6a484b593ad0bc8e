package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = m.viewToday()
	case StateWeek:
		content = docStyle.Render(m.week.View())
	case StateDiary:
		content = m.viewDiary()
	case StateDiaryForm:
		content = docStyle.Render(m.form.View())
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	active := m.state
	if active == StateDiaryForm {
		active = StateDiary
	}
	var tabs []string
	for i, title := range tabTitles {
		if active == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewToday() string {
	var b strings.Builder
	b.WriteString(m.today.View())
	if m.mantra != nil {
		b.WriteString("\n" + mantraStyle.Render("✨ "+m.mantra.Text))
		if m.mantra.Translation != nil {
			b.WriteString("\n" + mutedStyle.Render(*m.mantra.Translation))
		}
	}
	return docStyle.Render(b.String())
}

func (m Model) viewDiary() string {
	if len(m.entries) == 0 {
		return docStyle.Render("No diary entries yet.\nPress 'a' to write one.")
	}
	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(mutedStyle.Render(e.CreatedAt.Format("2006-01-02 15:04")) + "  " + e.Text + "\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return dangerStyle.Render("⚠ " + apperrors.UserMessage(m.err))
	}
	if m.status != "" {
		return mutedStyle.Render(m.status)
	}
	return ""
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
