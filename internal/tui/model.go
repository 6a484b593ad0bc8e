// Package tui is the interactive dashboard for a single user.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/true1853/Nykha-bot/internal/models"
	"github.com/true1853/Nykha-bot/internal/tui/components/today"
	"github.com/true1853/Nykha-bot/internal/tui/components/week"
)

// Backend is the subset of the application the dashboard drives.
type Backend interface {
	TodayStatus(ctx context.Context, id models.UserID) (models.TodayStatus, error)
	MarkDone(ctx context.Context, id models.UserID, category string) error
	UserWeeklyStats(ctx context.Context, id models.UserID) (models.UserWeeklyStats, error)
	CurrentPhase(ctx context.Context, id models.UserID) (models.Phase, error)
	RecentEntries(ctx context.Context, id models.UserID, limit int) ([]models.DiaryEntry, error)
	AppendDiaryEntry(ctx context.Context, id models.UserID, text string) (models.DiaryEntry, error)
	RandomMantra(ctx context.Context) (models.Mantra, error)
}

type SessionState int

const (
	StateToday SessionState = iota
	StateWeek
	StateDiary
	StateDiaryForm
)

var tabTitles = []string{"Today", "Week", "Diary"}

const diaryShown = 10

type Model struct {
	ctx     context.Context
	timeout time.Duration
	backend Backend
	userID  models.UserID

	state    SessionState
	keys     KeyMap
	help     help.Model
	today    today.Model
	week     week.Model
	entries  []models.DiaryEntry
	mantra   *models.Mantra
	form     *huh.Form
	draft    *string
	status   string
	err      error
	quitting bool
	width    int
	height   int
}

// NewModel builds the dashboard. Every backend call is bounded by timeout.
func NewModel(ctx context.Context, backend Backend, userID models.UserID, timeout time.Duration) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:     ctx,
		timeout: timeout,
		backend: backend,
		userID:  userID,
		state:   StateToday,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		today:   today.New(0, 0),
		week:    week.New(0, 0),
	}
}

func (m Model) op() (context.Context, context.CancelFunc) {
	if m.timeout <= 0 {
		return context.WithCancel(m.ctx)
	}
	return context.WithTimeout(m.ctx, m.timeout)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateToday:
		keys = append(keys, m.keys.Enter, m.keys.Refresh)
	case StateDiary:
		keys = append(keys, m.keys.Add)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Refresh}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	var actions []key.Binding
	switch m.state {
	case StateToday:
		actions = []key.Binding{m.keys.Enter}
	case StateDiary:
		actions = []key.Binding{m.keys.Add}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}
