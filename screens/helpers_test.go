package screens

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/i18n"
)

type fakeActions struct {
	logins  [][2]string
	signUps [][2]string
}

func (a *fakeActions) Authenticate() tea.Cmd { return nil }
func (a *fakeActions) Logout() tea.Cmd       { return nil }
func (a *fakeActions) Login(name, pw string) tea.Cmd {
	a.logins = append(a.logins, [2]string{name, pw})
	return nil
}
func (a *fakeActions) SignUp(name, pw string) tea.Cmd {
	a.signUps = append(a.signUps, [2]string{name, pw})
	return nil
}

func testLocalizer(t *testing.T) i18n.Localizer {
	t.Helper()
	c, err := i18n.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return c.For("en")
}

func key(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(update func(tea.Msg) tea.Cmd, s string) {
	for _, r := range s {
		update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// collect runs cmd and everything it batches, returning the non-nil
// messages produced within a short window.
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
