package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/logx"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, tea.Batch(m.navbar.Update(m.navOwn(), msg), m.updatePage(msg))
	case SnapshotMsg:
		// Every connected component filters by subscription, so the
		// snapshot goes to all of them, shown or not.
		cmds := []tea.Cmd{m.navbar.Update(m.navOwn(), msg), m.fab.Update(FabOwn{}, msg)}
		for _, p := range m.router.Pages() {
			cmds = append(cmds, p.Update(msg))
		}
		return m, tea.Batch(cmds...)
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case NavigateMsg:
		return m, m.goTo(msg.Path)
	case AuthResultMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
		} else {
			m.SetStatus(m.loc.T(authStatusID(msg.Op)))
		}
		return m, m.updatePage(msg)
	case ConfigChangedMsg:
		if msg.Err != nil {
			logx.Error(msg.Err, "config reload")
			m.SetError(msg.Err)
			return m, nil
		}
		return m, m.applyConfig(msg.Config)
	case OpenDrawerMsg, DismissDrawerMsg, SelectDrawerLinkMsg, ToggleAccountMenuMsg, LogoutMsg:
		return m, m.navbar.Update(m.navOwn(), msg)
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, m.Quit()
		}
		if m.screens.Top() != nil {
			return m, m.updateScreen(msg)
		}
		scope := m.pageScope()
		if m.nav.Wants(msg, scope) {
			return m, m.navbar.Update(m.navOwn(), msg)
		}
		if m.keys.IsAction(msg, ActionQuit, scope) {
			return m, m.Quit()
		}
		if m.keys.IsAction(msg, ActionPalette, scope) && m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
			return m, nil
		}
		return m, m.updatePage(msg)
	case tea.MouseMsg:
		if m.screens.Top() != nil {
			return m, m.updateScreen(msg)
		}
		if m.nav.Wants(msg, m.pageScope()) {
			return m, m.navbar.Update(m.navOwn(), msg)
		}
		if m.quick.Wants(m.fab.Snapshot(), msg) {
			return m, m.fab.Update(FabOwn{}, msg)
		}
		return m, m.updatePage(msg)
	}

	if m.screens.Top() != nil {
		return m, m.updateScreen(msg)
	}
	return m, m.updatePage(msg)
}

func (m *Model) updateScreen(msg tea.Msg) tea.Cmd {
	next, cmd, pop := m.screens.Top().Update(msg)
	if pop {
		m.screens.Pop()
		return cmd
	}
	m.screens.replaceTop(next)
	return cmd
}

func (m Model) navOwn() NavOwn {
	return NavOwn{Scope: m.pageScope()}
}

func authStatusID(op string) string {
	if op == OpSignUp {
		return "status.signed_up"
	}
	return "status.logged_in"
}
