package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
	"github.com/jask/navshell/internal/state"
)

// ConnectedPage routes a component connected to the store. The component
// mounts on the first visit and unmounts when the shell closes.
type ConnectedPage struct {
	path    string
	titleID string
	scope   string
	conn    *core.Connected[struct{}]
}

func NewConnectedPage(path, titleID, scope string, store *state.Store, actions core.Actions, comp core.Component[struct{}]) *ConnectedPage {
	if scope == "" {
		scope = core.ScopePage
	}
	return &ConnectedPage{
		path:    path,
		titleID: titleID,
		scope:   scope,
		conn:    core.Connect[struct{}](store, actions, comp),
	}
}

func (p *ConnectedPage) Path() string    { return p.path }
func (p *ConnectedPage) TitleID() string { return p.titleID }
func (p *ConnectedPage) Scope() string   { return p.scope }

func (p *ConnectedPage) Enter() tea.Cmd {
	cmds := []tea.Cmd{p.conn.Init(struct{}{})}
	if e, ok := p.conn.Component().(core.Enterer); ok {
		cmds = append(cmds, e.Enter())
	}
	return tea.Batch(cmds...)
}

func (p *ConnectedPage) Update(msg tea.Msg) tea.Cmd {
	return p.conn.Update(struct{}{}, msg)
}

func (p *ConnectedPage) View(width, height int) string {
	return p.conn.View(struct{}{}, width, height)
}

func (p *ConnectedPage) Close() { p.conn.Unmount() }

// Snapshot is the state the page last rendered against.
func (p *ConnectedPage) Snapshot() state.Snapshot { return p.conn.Snapshot() }
