package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"page"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "page") {
		t.Fatalf("expected ctrl+k in page")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "page:form") {
		t.Fatalf("did not expect ctrl+k in page:form")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "nav:drawer") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestDefaultBindingsKeepLettersOutOfForms(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, r := range []rune{'q', 'm', 'a', 'l', 's'} {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		for _, b := range reg.BindingsForScope(ScopeForm) {
			if reg.IsAction(msg, b.Action, ScopeForm) {
				t.Fatalf("%q is bound to %s in forms", r, b.Action)
			}
		}
	}
}

func TestApplyActionKeybindingsOverridesEveryBinding(t *testing.T) {
	bindings := ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{ActionOpenDrawer: {"ctrl+d"}})
	reg := NewKeyRegistry(bindings)
	ctrlD := tea.KeyMsg{Type: tea.KeyCtrlD}
	if !reg.IsAction(ctrlD, ActionOpenDrawer, ScopePage) || !reg.IsAction(ctrlD, ActionOpenDrawer, ScopeForm) {
		t.Fatalf("override should apply in every scope")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, ActionOpenDrawer, ScopePage) {
		t.Fatalf("old key still bound")
	}
	defaults := DefaultKeybindingsByAction(DefaultKeyBindings())
	if got := defaults[ActionOpenDrawer]; len(got) != 1 || got[0] != "m" {
		t.Fatalf("default keys for open-drawer = %v", got)
	}
}

func TestKeyRegistryReplace(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	reg.Replace([]KeyBinding{{Keys: []string{"x"}, Action: ActionQuit}})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, ActionQuit, ScopePage) {
		t.Fatalf("replacement binding missing")
	}
	if len(reg.BindingsForScope(ScopePage)) != 1 {
		t.Fatalf("old bindings kept after replace")
	}
}
