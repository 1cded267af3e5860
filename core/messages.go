package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/config"
	"github.com/jask/navshell/internal/state"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

// SnapshotMsg carries a published snapshot to the subscription that
// received it.
type SnapshotMsg struct {
	SubscriptionID uint64
	Snapshot       state.Snapshot
}

type NavigateMsg struct {
	Path string
}

type OpenDrawerMsg struct{}

type DismissDrawerMsg struct{}

type SelectDrawerLinkMsg struct {
	Path string
}

type ToggleAccountMenuMsg struct{}

type LogoutMsg struct{}

// AuthResultMsg reports the outcome of an interactive login or sign up.
type AuthResultMsg struct {
	Op  string
	Err error
}

type ConfigChangedMsg struct {
	Config config.Config
	Err    error
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}
