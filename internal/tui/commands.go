package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/true1853/Nykha-bot/internal/errors"
	"github.com/true1853/Nykha-bot/internal/models"
)

// dataMsg carries everything the dashboard shows.
type dataMsg struct {
	status  models.TodayStatus
	stats   models.UserWeeklyStats
	phase   *models.Phase
	entries []models.DiaryEntry
	mantra  *models.Mantra
}

type markedMsg struct {
	category models.Category
}

type entryAddedMsg struct {
	entry models.DiaryEntry
}

type errMsg struct {
	err error
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.op()
		defer cancel()

		var d dataMsg
		var err error
		if d.status, err = m.backend.TodayStatus(ctx, m.userID); err != nil {
			return errMsg{err}
		}
		if d.stats, err = m.backend.UserWeeklyStats(ctx, m.userID); err != nil {
			return errMsg{err}
		}
		if d.entries, err = m.backend.RecentEntries(ctx, m.userID, diaryShown); err != nil {
			return errMsg{err}
		}
		// An unknown phase key or an empty catalog only hides that section.
		if phase, err := m.backend.CurrentPhase(ctx, m.userID); err == nil {
			d.phase = &phase
		} else if !apperrors.IsNotFound(err) {
			return errMsg{err}
		}
		if mantra, err := m.backend.RandomMantra(ctx); err == nil {
			d.mantra = &mantra
		}
		return d
	}
}

func (m Model) markDone(c models.Category) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.op()
		defer cancel()
		if err := m.backend.MarkDone(ctx, m.userID, string(c)); err != nil {
			return errMsg{err}
		}
		return markedMsg{category: c}
	}
}

func (m Model) addEntry(text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.op()
		defer cancel()
		entry, err := m.backend.AppendDiaryEntry(ctx, m.userID, text)
		if err != nil {
			return errMsg{err}
		}
		return entryAddedMsg{entry: entry}
	}
}
