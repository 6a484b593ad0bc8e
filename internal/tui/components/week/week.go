// Package week renders the trailing seven days and the current habit phase.
package week

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/true1853/Nykha-bot/internal/models"
)

var (
	headingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	Stats    *models.UserWeeklyStats
	Phase    *models.Phase
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.Stats == nil {
		return "Loading…"
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

func (m *Model) SetData(stats models.UserWeeklyStats, phase *models.Phase) {
	m.Stats = &stats
	m.Phase = phase
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Content(m.Stats, m.Phase))
}

// Content is the plain rendering shared with tests.
func Content(stats *models.UserWeeklyStats, phase *models.Phase) string {
	if stats == nil {
		return "No statistics loaded."
	}

	var b strings.Builder
	row := func(label string, value any) {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(label), valueStyle.Render(fmt.Sprint(value)))
	}

	b.WriteString(headingStyle.Render("Last 7 days") + "\n")
	row("Active days", fmt.Sprintf("%d/7", stats.DaysActive))
	row("Practices done", stats.TasksDoneTotal)
	for _, c := range models.Categories() {
		row("  "+c.Emoji()+" "+c.DisplayName(), stats.CategoriesDone[c])
	}
	row("Diary entries", stats.DiaryEntries)
	row("Streak", stats.Streak)

	if phase != nil {
		b.WriteString("\n" + headingStyle.Render(phase.Title) + "\n")
		row("Daily habit", phase.DailyHabit)
		row("Meal habit", phase.MealHabit)
		row("Reflection", phase.Reflection)
	}
	return b.String()
}
