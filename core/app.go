package core

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/config"
	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/internal/logx"
	"github.com/jask/navshell/internal/state"
	"github.com/jask/navshell/widgets"
)

// QuickActionSource loads the quick actions offered on a route.
type QuickActionSource interface {
	ForRoute(ctx context.Context, route string) ([]state.QuickAction, error)
}

type Options struct {
	Store        *state.Store
	Actions      Actions
	Router       *Router
	Keys         *KeyRegistry
	Commands     *CommandRegistry
	Localizer    i18n.Localizer
	Zones        widgets.Zones
	QuickActions QuickActionSource
	Config       config.Config
	StartPath    string
}

// Model is the root of the program: the navigation bar framing the
// current page, modal screens, and the status and key help lines.
type Model struct {
	width     int
	height    int
	store     *state.Store
	actions   Actions
	router    *Router
	keys      *KeyRegistry
	commands  *CommandRegistry
	loc       i18n.Localizer
	zones     widgets.Zones
	quickSrc  QuickActionSource
	cfg       config.Config
	startPath string
	navSeq    *atomic.Uint64

	nav    *Navbar
	navbar *Connected[NavOwn]
	quick  *QuickActions
	fab    *Connected[FabOwn]

	screens   ScreenStack
	status    string
	statusErr bool
	quitting  bool

	OpenCommandModal func(m *Model, scope string) Screen
}

func NewModel(opts Options) Model {
	if opts.Router == nil {
		opts.Router = NewRouter(nil)
	}
	if opts.Keys == nil {
		opts.Keys = NewKeyRegistry(DefaultKeyBindings())
	}
	if opts.Commands == nil {
		opts.Commands = NewCommandRegistry(nil)
	}
	if opts.Zones == nil {
		opts.Zones = widgets.NoZones{}
	}
	if opts.Localizer == nil {
		opts.Localizer = rawIDs{}
	}
	if opts.StartPath == "" {
		opts.StartPath = "/"
	}
	nav := NewNavbar(opts.Router, opts.Localizer, BreakpointDetector{DesktopMinWidth: opts.Config.UI.DesktopMinWidth}, opts.Zones, opts.Keys)
	if opts.Config.UI.DefaultAvatar != "" {
		nav.FallbackAvatar = opts.Config.UI.DefaultAvatar
	}
	quick := NewQuickActions(opts.Router, opts.Localizer, opts.Zones)
	return Model{
		width:     100,
		height:    32,
		store:     opts.Store,
		actions:   opts.Actions,
		router:    opts.Router,
		keys:      opts.Keys,
		commands:  opts.Commands,
		loc:       opts.Localizer,
		zones:     opts.Zones,
		quickSrc:  opts.QuickActions,
		cfg:       opts.Config,
		startPath: opts.StartPath,
		navSeq:    &atomic.Uint64{},
		nav:       nav,
		navbar:    Connect[NavOwn](opts.Store, opts.Actions, nav),
		quick:     quick,
		fab:       Connect[FabOwn](opts.Store, opts.Actions, quick),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.navbar.Init(NavOwn{Scope: m.pageScope()}),
		m.fab.Init(FabOwn{}),
		m.router.Navigate(m.startPath),
	)
}

// Close unmounts connected components and releases page resources.
func (m Model) Close() {
	m.navbar.Unmount()
	m.fab.Unmount()
	for _, p := range m.router.Pages() {
		if c, ok := p.(Closer); ok {
			c.Close()
		}
	}
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) pageScope() string {
	if s, ok := m.router.Current().(Scoped); ok {
		return s.Scope()
	}
	return ScopePage
}

// ActiveScope is the key scope of whatever receives keys first.
func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	if s := m.nav.Scope(); s != "" {
		return s
	}
	return m.pageScope()
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) CommandRegistry() *CommandRegistry { return m.commands }

func (m *Model) Keys() *KeyRegistry { return m.keys }

func (m *Model) Store() *state.Store { return m.store }

func (m *Model) Actions() Actions { return m.actions }

func (m *Model) Router() *Router { return m.router }

func (m *Model) Navbar() *Navbar { return m.nav }

func (m *Model) Localizer() i18n.Localizer { return m.loc }

func (m *Model) Config() config.Config { return m.cfg }

// Snapshot is the state the navigation bar currently renders.
func (m *Model) Snapshot() state.Snapshot { return m.navbar.Snapshot() }

func (m *Model) Navigate(path string) tea.Cmd { return m.router.Navigate(path) }

func (m *Model) Quit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func (m *Model) goTo(path string) tea.Cmd {
	page := m.router.Go(path)
	cmds := []tea.Cmd{m.loadQuickActions(m.router.CurrentPath())}
	if e, ok := page.(Enterer); ok {
		cmds = append(cmds, e.Enter())
	}
	return tea.Batch(cmds...)
}

// loadQuickActions publishes the route's quick actions. A result that
// arrives after a later navigation is dropped.
func (m *Model) loadQuickActions(route string) tea.Cmd {
	seq := m.navSeq.Add(1)
	src, store, current := m.quickSrc, m.store, m.navSeq
	if src == nil || store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		actions, err := src.ForRoute(ctx, route)
		if err != nil {
			logx.Error(err, "load quick actions", "route", route)
			return nil
		}
		if current.Load() != seq {
			return nil
		}
		store.Update(func(s state.Snapshot) state.Snapshot { return s.WithPendingActions(actions) })
		return nil
	}
}

type localeSetter interface {
	SetLocale(locale string)
}

func (m *Model) applyConfig(cfg config.Config) tea.Cmd {
	prev := m.cfg
	m.cfg = cfg
	if ls, ok := m.loc.(localeSetter); ok && cfg.UI.Locale != prev.UI.Locale {
		ls.SetLocale(cfg.UI.Locale)
	}
	if cfg.UI.DefaultAvatar != "" {
		m.nav.FallbackAvatar = cfg.UI.DefaultAvatar
	}
	m.nav.SetLayoutDetector(BreakpointDetector{DesktopMinWidth: cfg.UI.DesktopMinWidth})
	m.keys.Replace(ApplyActionKeybindings(DefaultKeyBindings(), cfg.UI.Keybindings))
	logx.Info("config applied", "locale", cfg.UI.Locale, "desktop_min_width", cfg.UI.DesktopMinWidth)
	return m.updatePage(ConfigChangedMsg{Config: cfg})
}

func (m *Model) updatePage(msg tea.Msg) tea.Cmd {
	if page := m.router.Current(); page != nil {
		return page.Update(msg)
	}
	return nil
}
