package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
	"github.com/jask/navshell/internal/i18n"
)

const (
	fieldName = iota
	fieldPassword
	fieldCount
)

// AuthForm collects a name and password and submits them as a login or a
// sign-up depending on op.
type AuthForm struct {
	op     string
	loc    i18n.Localizer
	inputs [fieldCount]textinput.Model
	focus  int
	busy   bool
	err    string
}

func NewAuthForm(op string, loc i18n.Localizer) *AuthForm {
	f := &AuthForm{op: op, loc: loc}
	name := textinput.New()
	name.CharLimit = 64
	pw := textinput.New()
	pw.CharLimit = 128
	pw.EchoMode = textinput.EchoPassword
	pw.EchoCharacter = '•'
	f.inputs = [fieldCount]textinput.Model{name, pw}
	f.reset()
	return f
}

func (f *AuthForm) Op() string { return f.op }

func (f *AuthForm) titleID() string {
	if f.op == core.OpSignUp {
		return "page.me.sign_up"
	}
	return "page.me.login"
}

func (f *AuthForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = fieldName
	f.inputs[fieldName].Focus()
	f.busy = false
	f.err = ""
}

func (f *AuthForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = (i + fieldCount) % fieldCount
	f.inputs[f.focus].Focus()
}

// Enter clears the form each time the page is shown.
func (f *AuthForm) Enter() tea.Cmd {
	f.reset()
	return textinput.Blink
}

func (f *AuthForm) Mount(core.Props[struct{}]) tea.Cmd { return nil }

func (f *AuthForm) Update(p core.Props[struct{}], msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.AuthResultMsg:
		if msg.Op != f.op {
			return nil
		}
		f.busy = false
		if msg.Err != nil {
			f.err = msg.Err.Error()
			return nil
		}
		f.reset()
		return navigateTo("/")
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f.setFocus(f.focus + 1)
			return nil
		case "shift+tab", "up":
			f.setFocus(f.focus - 1)
			return nil
		case "esc":
			return navigateTo("/")
		case "enter":
			if f.focus < fieldCount-1 {
				f.setFocus(f.focus + 1)
				return nil
			}
			return f.submit(p.Actions)
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *AuthForm) submit(actions core.Actions) tea.Cmd {
	if f.busy || actions == nil {
		return nil
	}
	name := strings.TrimSpace(f.inputs[fieldName].Value())
	pw := f.inputs[fieldPassword].Value()
	f.err = ""
	f.busy = true
	if f.op == core.OpSignUp {
		return actions.SignUp(name, pw)
	}
	return actions.Login(name, pw)
}

func (f *AuthForm) View(_ core.Props[struct{}], width, height int) string {
	lines := []string{
		titleStyle.Render(f.loc.T(f.titleID())),
		labelStyle.Width(labelWidth).Render(f.loc.T("form.name")) + f.inputs[fieldName].View(),
		labelStyle.Width(labelWidth).Render(f.loc.T("form.password")) + f.inputs[fieldPassword].View(),
		"",
	}
	if f.err != "" {
		lines = append(lines, errStyle.Render(f.err))
	}
	lines = append(lines, mutedStyle.Render(f.loc.T("form.submit")))
	return page(width, height, lines...)
}

func navigateTo(path string) tea.Cmd {
	return func() tea.Msg { return core.NavigateMsg{Path: path} }
}
