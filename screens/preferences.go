package screens

import (
	"slices"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
	"github.com/jask/navshell/internal/config"
	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/widgets"
)

const (
	breakpointStep = 10
	minBreakpoint  = 40
	maxBreakpoint  = 300
)

type preferencesSavedMsg struct {
	cfg config.Config
	err error
}

// Preferences edits the ui section of the config and saves it to disk.
// Saved changes come back as a ConfigChangedMsg and apply immediately.
type Preferences struct {
	loc     i18n.Localizer
	keys    *core.KeyRegistry
	locales []string
	save    func(config.Config) error

	draft  config.Config
	dirty  bool
	saving bool
}

func NewPreferences(loc i18n.Localizer, keys *core.KeyRegistry, locales []string, cfg config.Config, save func(config.Config) error) *Preferences {
	return &Preferences{loc: loc, keys: keys, locales: slices.Clone(locales), save: save, draft: cfg}
}

func (p *Preferences) Path() string    { return "/preferences" }
func (p *Preferences) TitleID() string { return "page.me.preferences" }
func (p *Preferences) Scope() string   { return core.ScopePreferences }

// Draft is the unsaved configuration.
func (p *Preferences) Draft() config.Config { return p.draft }
func (p *Preferences) Dirty() bool          { return p.dirty }

func (p *Preferences) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case core.ConfigChangedMsg:
		if msg.Err == nil {
			p.draft = msg.Config
			p.dirty = false
		}
		return nil
	case preferencesSavedMsg:
		p.saving = false
		if msg.err != nil {
			return core.ErrorCmd(msg.err)
		}
		cfg := msg.cfg
		return tea.Batch(
			func() tea.Msg { return core.ConfigChangedMsg{Config: cfg} },
			core.StatusCmd(p.loc.T("status.saved")),
		)
	case tea.KeyMsg:
		switch {
		case p.keys.IsAction(msg, core.ActionCycleLocale, core.ScopePreferences):
			p.cycleLocale()
		case p.keys.IsAction(msg, core.ActionWiden, core.ScopePreferences):
			p.shiftBreakpoint(breakpointStep)
		case p.keys.IsAction(msg, core.ActionNarrow, core.ScopePreferences):
			p.shiftBreakpoint(-breakpointStep)
		case p.keys.IsAction(msg, core.ActionSave, core.ScopePreferences):
			return p.saveCmd()
		}
	}
	return nil
}

func (p *Preferences) cycleLocale() {
	if len(p.locales) == 0 {
		return
	}
	i := slices.Index(p.locales, p.draft.UI.Locale)
	p.draft.UI.Locale = p.locales[(i+1)%len(p.locales)]
	p.dirty = true
}

func (p *Preferences) shiftBreakpoint(delta int) {
	w := p.draft.UI.DesktopMinWidth
	if w <= 0 {
		w = core.DefaultDesktopMinWidth
	}
	p.draft.UI.DesktopMinWidth = min(maxBreakpoint, max(minBreakpoint, w+delta))
	p.dirty = true
}

func (p *Preferences) saveCmd() tea.Cmd {
	if p.saving || p.save == nil {
		return nil
	}
	p.saving = true
	cfg := p.draft
	save := p.save
	return func() tea.Msg {
		return preferencesSavedMsg{cfg: cfg, err: save(cfg)}
	}
}

func (p *Preferences) View(width, height int) string {
	breakpoint := p.draft.UI.DesktopMinWidth
	if breakpoint <= 0 {
		breakpoint = core.DefaultDesktopMinWidth
	}
	title := p.loc.T("page.me.preferences")
	if p.dirty {
		title += " *"
	}
	help := p.loc.T("preferences.help")
	return render(width, height, widgets.VStack{
		Spacing: 1,
		Widgets: []widgets.Widget{
			widgets.Text(titleStyle.UnsetMarginBottom().Render(title)),
			fields(
				widgets.Field{Label: p.loc.T("preferences.locale"), Value: textStyle.Render(p.draft.UI.Locale)},
				widgets.Field{Label: p.loc.T("preferences.breakpoint"), Value: textStyle.Render(strconv.Itoa(breakpoint))},
			),
			widgets.Func(func(w, _ int) string { return mutedStyle.MaxWidth(w).Render(help) }),
		},
	})
}
