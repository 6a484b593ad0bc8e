// Package today renders the daily category checklist.
package today

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/true1853/Nykha-bot/internal/models"
)

// MarkDoneMsg asks the parent to record Category as done for today.
type MarkDoneMsg struct {
	Category models.Category
}

type Item struct {
	Category models.Category
	Done     bool
}

func (i Item) Title() string {
	mark := "⬜"
	if i.Done {
		mark = "✅"
	}
	return mark + " " + i.Category.Emoji() + " " + i.Category.DisplayName()
}

func (i Item) Description() string {
	if i.Done {
		return "done today"
	}
	return "press enter to mark done"
}

func (i Item) FilterValue() string { return string(i.Category) }

type KeyMap struct {
	Mark key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Mark: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "mark done"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(items(models.NewTodayStatus()), list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Mark}
	}
	return Model{list: l, keys: keys}
}

func items(status models.TodayStatus) []list.Item {
	cats := models.Categories()
	out := make([]list.Item, len(cats))
	for i, c := range cats {
		out[i] = Item{Category: c, Done: status[c]}
	}
	return out
}

func (m *Model) SetStatus(status models.TodayStatus) {
	m.list.SetItems(items(status))
}

// Selected returns the highlighted item.
func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, m.keys.Mark) {
		// Marking twice is harmless but there is nothing to do.
		if i, ok := m.Selected(); ok && !i.Done {
			return m, func() tea.Msg { return MarkDoneMsg{Category: i.Category} }
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
