// Package app assembles the shell: routes, palette commands and the
// options handed to core.NewModel.
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
	"github.com/jask/navshell/internal/config"
	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/internal/state"
	"github.com/jask/navshell/screens"
	"github.com/jask/navshell/widgets"
)

// Deps are the runtime collaborators built by main.
type Deps struct {
	Store        *state.Store
	Actions      core.Actions
	Localizer    i18n.Localizer
	Locales      []string
	Zones        widgets.Zones
	QuickActions core.QuickActionSource
	Config       config.Config
	SaveConfig   func(config.Config) error
	StartPath    string
}

// NewModel builds the root model with every page and command registered.
func NewModel(d Deps) core.Model {
	router := core.NewRouter(func(path, suggestion string) core.Page {
		return screens.NewNotFound(d.Localizer, path, suggestion)
	})
	commands := core.NewCommandRegistry(nil)
	m := core.NewModel(core.Options{
		Store:        d.Store,
		Actions:      d.Actions,
		Router:       router,
		Keys:         core.NewKeyRegistry(core.ApplyActionKeybindings(core.DefaultKeyBindings(), d.Config.UI.Keybindings)),
		Commands:     commands,
		Localizer:    d.Localizer,
		Zones:        d.Zones,
		QuickActions: d.QuickActions,
		Config:       d.Config,
		StartPath:    d.StartPath,
	})
	RegisterPages(&m, d)
	RegisterCommands(commands, router.Pages())
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		loc := model.Localizer()
		return screens.NewCommandScreen(scope, loc.T("command.palette"), loc.T("command.search"), model.Keys(),
			screens.CommandSearch(model, scope),
			func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} },
		)
	}
	return m
}

// RegisterPages adds the shell's routes to m's router.
func RegisterPages(m *core.Model, d Deps) {
	loc := d.Localizer
	nav := m.Navbar()
	fallbackAvatar := func() string { return nav.FallbackAvatar }
	save := d.SaveConfig
	if save == nil {
		save = config.Save
	}
	m.Router().Register(
		screens.NewConnectedPage("/", "page.home", core.ScopePage, d.Store, d.Actions, screens.NewHome(loc)),
		screens.NewAbout(loc),
		screens.NewConnectedPage("/login", "page.me.login", core.ScopeForm, d.Store, d.Actions, screens.NewAuthForm(core.OpLogin, loc)),
		screens.NewConnectedPage("/signup", "page.me.sign_up", core.ScopeForm, d.Store, d.Actions, screens.NewAuthForm(core.OpSignUp, loc)),
		screens.NewConnectedPage("/profile", "page.me.profile", core.ScopePage, d.Store, d.Actions, screens.NewProfile(loc, fallbackAvatar)),
		screens.NewPreferences(loc, m.Keys(), d.Locales, d.Config, save),
	)
}

// RegisterCommands adds a go-to command per page plus the account and
// navigation commands.
func RegisterCommands(reg *core.CommandRegistry, pages []core.Page) {
	for _, p := range pages {
		path := core.NormalizePath(p.Path())
		cmd := core.Command{
			ID:          "go:" + path,
			NameID:      p.TitleID(),
			Description: path,
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return m.Navigate(path)
			},
		}
		if path == "/login" || path == "/signup" {
			cmd.Disabled = signedIn
		}
		reg.Register(cmd)
	}
	reg.Register(core.Command{
		ID:          "open-drawer",
		NameID:      "command.open_drawer",
		Description: "show the navigation drawer",
		Scopes:      []string{"*"},
		Execute: func(*core.Model) tea.Cmd {
			return func() tea.Msg { return core.OpenDrawerMsg{} }
		},
	})
	reg.Register(core.Command{
		ID:          "logout",
		NameID:      "page.me.logout",
		Description: "end the current session",
		Scopes:      []string{"*"},
		Execute: func(*core.Model) tea.Cmd {
			return func() tea.Msg { return core.LogoutMsg{} }
		},
		Disabled: func(m *core.Model) (bool, string) {
			if m == nil || m.Snapshot().Authenticated() {
				return false, ""
			}
			return true, m.Localizer().T("command.reason.anonymous")
		},
	})
	reg.Register(core.Command{
		ID:          "quit",
		NameID:      "command.quit",
		Description: "exit navshell",
		Scopes:      []string{"*"},
		Execute: func(m *core.Model) tea.Cmd {
			return m.Quit()
		},
	})
}

func signedIn(m *core.Model) (bool, string) {
	if m == nil || !m.Snapshot().Authenticated() {
		return false, ""
	}
	return true, m.Localizer().T("command.reason.signed_in")
}
