package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
)

// CommandOption is one palette row.
type CommandOption struct {
	ID       string
	Name     string
	Desc     string
	Disabled bool
	Reason   string
}

func (o CommandOption) Title() string {
	if o.Disabled && o.Reason != "" {
		return fmt.Sprintf("%s (%s)", o.Name, o.Reason)
	}
	return o.Name
}
func (o CommandOption) Description() string { return o.Desc }
func (o CommandOption) FilterValue() string { return o.Name + " " + o.Desc + " " + o.ID }

// CommandScreen is the command palette. It searches on every keystroke and
// closes itself once a command is chosen.
type CommandScreen struct {
	origin   string
	title    string
	keys     *core.KeyRegistry
	search   func(query string) []CommandOption
	onSelect func(id string) tea.Msg
	input    textinput.Model
	list     list.Model
}

func NewCommandScreen(origin, title, placeholder string, keys *core.KeyRegistry, search func(query string) []CommandOption, onSelect func(id string) tea.Msg) *CommandScreen {
	inp := textinput.New()
	inp.Placeholder = placeholder
	inp.Prompt = "cmd> "
	inp.Focus()
	lst := list.New(nil, list.NewDefaultDelegate(), 48, 12)
	lst.SetShowTitle(false)
	lst.SetShowStatusBar(false)
	lst.SetFilteringEnabled(false)
	lst.SetShowHelp(false)
	s := &CommandScreen{origin: origin, title: title, keys: keys, search: search, onSelect: onSelect, input: inp, list: lst}
	s.refresh()
	return s
}

func (s *CommandScreen) Title() string { return s.title }
func (s *CommandScreen) Scope() string { return core.ScopeCommand }

// Origin is the page scope the palette was opened from.
func (s *CommandScreen) Origin() string { return s.origin }

// Query is the current search text.
func (s *CommandScreen) Query() string { return s.input.Value() }

func (s *CommandScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch {
		case s.keys.IsAction(key, core.ActionClose, core.ScopeCommand):
			return s, nil, true
		case s.keys.IsAction(key, core.ActionSelect, core.ScopeCommand):
			it, ok := s.list.SelectedItem().(CommandOption)
			if !ok {
				return s, nil, false
			}
			if it.Disabled {
				return s, core.StatusCmd(it.Reason), true
			}
			if s.onSelect == nil {
				return s, nil, true
			}
			id := it.ID
			return s, func() tea.Msg { return s.onSelect(id) }, true
		case key.Type == tea.KeyUp || key.Type == tea.KeyDown:
			var cmd tea.Cmd
			s.list, cmd = s.list.Update(msg)
			return s, cmd, false
		}
	}
	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.refresh()
	}
	return s, cmd, false
}

func (s *CommandScreen) refresh() {
	if s.search == nil {
		return
	}
	items := s.search(strings.TrimSpace(s.input.Value()))
	ls := make([]list.Item, 0, len(items))
	for _, it := range items {
		ls = append(ls, it)
	}
	_ = s.list.SetItems(ls)
	s.list.Select(0)
}

func (s *CommandScreen) View(width, height int) string {
	s.list.SetWidth(max(10, width))
	s.list.SetHeight(max(4, height-2))
	return s.input.View() + "\n" + s.list.View()
}

// CommandSearch adapts the model's registry to palette rows.
func CommandSearch(m *core.Model, scope string) func(string) []CommandOption {
	return func(query string) []CommandOption {
		results := m.CommandRegistry().Search(query, scope, m)
		out := make([]CommandOption, 0, len(results))
		for _, r := range results {
			out = append(out, CommandOption{ID: r.CommandID, Name: r.Name, Desc: r.Desc, Disabled: r.Disabled, Reason: r.Reason})
		}
		return out
	}
}
