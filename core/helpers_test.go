package core

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/i18n"
)

type fakeActions struct {
	authenticate int
	logout       int
	login        int
	signUp       int
}

func (a *fakeActions) Authenticate() tea.Cmd         { a.authenticate++; return nil }
func (a *fakeActions) Logout() tea.Cmd               { a.logout++; return nil }
func (a *fakeActions) Login(string, string) tea.Cmd  { a.login++; return nil }
func (a *fakeActions) SignUp(string, string) tea.Cmd { a.signUp++; return nil }

type fakeNavigator struct{ paths []string }

func (n *fakeNavigator) Navigate(path string) tea.Cmd {
	n.paths = append(n.paths, path)
	return nil
}

// fakeZones reports a hit for every zone id in hits.
type fakeZones struct{ hits map[string]bool }

func (z *fakeZones) Mark(_, s string) string { return s }
func (z *fakeZones) Scan(s string) string    { return s }
func (z *fakeZones) Hit(id string, _ tea.MouseMsg) bool {
	return z.hits[id]
}

func (z *fakeZones) clickOn(ids ...string) tea.MouseMsg {
	z.hits = map[string]bool{}
	for _, id := range ids {
		z.hits[id] = true
	}
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func testLocalizer(t *testing.T) i18n.Localizer {
	t.Helper()
	c, err := i18n.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c.For("en")
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	case "ctrl+o":
		return tea.KeyMsg{Type: tea.KeyCtrlO}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// collect runs cmd and every command it batches, returning the non-nil
// messages produced within a short window. Callers make sure no command
// blocks, for example by publishing before a listen command runs.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 64)
	pending := 0
	spawn := func(c tea.Cmd) {
		if c == nil {
			return
		}
		pending++
		go func() { ch <- c() }()
	}
	spawn(cmd)
	var out []tea.Msg
	for pending > 0 {
		select {
		case msg := <-ch:
			pending--
			if batch, ok := msg.(tea.BatchMsg); ok {
				for _, c := range batch {
					spawn(c)
				}
				continue
			}
			if msg != nil {
				out = append(out, msg)
			}
		case <-time.After(time.Second):
			return out
		}
	}
	return out
}
