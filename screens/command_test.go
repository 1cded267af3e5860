package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
)

func paletteOptions(query string) []CommandOption {
	all := []CommandOption{
		{ID: "go:/about", Name: "About"},
		{ID: "go:/", Name: "Home"},
		{ID: "login", Name: "Log in", Disabled: true, Reason: "already logged in"},
	}
	if query == "" {
		return all
	}
	var out []CommandOption
	for _, o := range all {
		if o.Name[0] == query[0] {
			out = append(out, o)
		}
	}
	return out
}

func newPalette(selected *string) *CommandScreen {
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	return NewCommandScreen(core.ScopePage, "Commands", "Search commands", keys, paletteOptions, func(id string) tea.Msg {
		*selected = id
		return core.CommandExecuteMsg{CommandID: id}
	})
}

func TestCommandScreenSelectsFirstMatch(t *testing.T) {
	var selected string
	s := newPalette(&selected)
	if s.Scope() != core.ScopeCommand {
		t.Fatalf("unexpected scope %q", s.Scope())
	}
	s.Update(key("H"))
	_, cmd, pop := s.Update(key("enter"))
	if !pop {
		t.Fatalf("expected palette to close on select")
	}
	msgs := collect(cmd)
	if selected != "go:/" || len(msgs) != 1 {
		t.Fatalf("expected Home selected, got %q %v", selected, msgs)
	}
}

func TestCommandScreenDisabledReportsReason(t *testing.T) {
	var selected string
	s := newPalette(&selected)
	s.Update(key("L"))
	_, cmd, pop := s.Update(key("enter"))
	if !pop || selected != "" {
		t.Fatalf("disabled command must not run")
	}
	msgs := collect(cmd)
	if len(msgs) != 1 || msgs[0].(core.StatusMsg).Text != "already logged in" {
		t.Fatalf("expected reason status, got %v", msgs)
	}
}

func TestCommandScreenEscCloses(t *testing.T) {
	var selected string
	s := newPalette(&selected)
	if _, _, pop := s.Update(key("esc")); !pop {
		t.Fatalf("expected esc to close")
	}
	if _, _, pop := s.Update(key("x")); pop {
		t.Fatalf("typing must not close")
	}
	if s.Query() != "x" {
		t.Fatalf("expected query x, got %q", s.Query())
	}
}
