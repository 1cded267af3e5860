package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type MenuItemKind int

const (
	ItemLink MenuItemKind = iota
	ItemAction
	ItemDivider
)

// MenuItem is one selectable (or separating) entry. Label is already localized.
type MenuItem struct {
	Kind   MenuItemKind
	ID     string
	Label  string
	Path   string
	ZoneID string
}

// Selectable reports whether the entry can be chosen.
func (i MenuItem) Selectable() bool { return i.Kind != ItemDivider }

// Menu is anything that renders a trigger and a list of items. A menu with
// an empty trigger renders its items inline.
type Menu interface {
	Trigger() string
	Items() []MenuItem
}

// Dropdown is a menu opened from a trigger. Image is the trigger's
// picture reference; terminals draw it as a glyph.
type Dropdown struct {
	TriggerLabel string
	Image        string
	Entries      []MenuItem
}

func (d Dropdown) Trigger() string   { return d.TriggerLabel }
func (d Dropdown) Items() []MenuItem { return d.Entries }

// LinkGroup renders its items side by side without a trigger.
type LinkGroup struct {
	Entries []MenuItem
}

func (LinkGroup) Trigger() string     { return "" }
func (g LinkGroup) Items() []MenuItem { return g.Entries }

var (
	menuLinkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Padding(0, 1)
	menuTriggerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true).Padding(0, 1)
	menuItemStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	menuCursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1e1e2e")).Background(lipgloss.Color("#89b4fa"))
	menuDividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#585b70"))
	menuBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#585b70"))
	menuTriggerSuffix = " ▾"
	avatarGlyph       = "◉"
)

// RenderInline draws the menu as it sits in a bar: either its trigger or
// its items side by side. triggerZone marks the trigger for clicks.
func RenderInline(m Menu, zones Zones, triggerZone string, open bool) string {
	if zones == nil {
		zones = NoZones{}
	}
	if t := m.Trigger(); t != "" {
		if d, ok := m.(Dropdown); ok && d.Image != "" {
			t = avatarGlyph + " " + t
		}
		suffix := menuTriggerSuffix
		if open {
			suffix = " ▴"
		}
		return zones.Mark(triggerZone, menuTriggerStyle.Render(t+suffix))
	}
	parts := make([]string, 0, len(m.Items()))
	for _, it := range m.Items() {
		if !it.Selectable() {
			continue
		}
		parts = append(parts, zones.Mark(it.ZoneID, menuLinkStyle.Render(it.Label)))
	}
	return strings.Join(parts, "")
}

// RenderList draws the items of an open menu in a bordered box. cursor
// indexes Items(); dividers are drawn as rules.
func RenderList(m Menu, zones Zones, cursor int) string {
	if zones == nil {
		zones = NoZones{}
	}
	items := m.Items()
	inner := 0
	for _, it := range items {
		inner = max(inner, ansi.StringWidth(it.Label)+2)
	}
	inner = max(inner, 12)
	rows := make([]string, 0, len(items))
	for i, it := range items {
		if !it.Selectable() {
			rows = append(rows, menuDividerStyle.Render(strings.Repeat("─", inner)))
			continue
		}
		label := padRight(" "+it.Label, inner)
		style := menuItemStyle
		if i == cursor {
			style = menuCursorStyle
		}
		rows = append(rows, zones.Mark(it.ZoneID, style.Render(label)))
	}
	return menuBoxStyle.Render(strings.Join(rows, "\n"))
}
