package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DrawerItem is one navigation entry of a drawer. Label is already localized.
type DrawerItem struct {
	Icon   string
	Label  string
	ZoneID string
}

// Drawer is a full-height side panel.
type Drawer struct {
	Items  []DrawerItem
	Cursor int
	ZoneID string
}

var (
	drawerStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#11111b")).
			Foreground(lipgloss.Color("#cdd6f4"))
	drawerCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#313244")).
				Foreground(lipgloss.Color("#89b4fa")).
				Bold(true)
)

func (d Drawer) Render(width, height int) string {
	return d.RenderZoned(NoZones{}, width, height)
}

// RenderZoned renders the drawer marking the panel and every item for clicks.
func (d Drawer) RenderZoned(zones Zones, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)
	rows = append(rows, drawerStyle.Render(strings.Repeat(" ", width)))
	for i, it := range d.Items {
		if len(rows) >= height {
			break
		}
		line := padRight("  "+it.Icon+"  "+it.Label, width)
		style := drawerStyle
		if i == d.Cursor {
			style = drawerCursorStyle
		}
		rows = append(rows, zones.Mark(it.ZoneID, style.Render(line)))
	}
	for len(rows) < height {
		rows = append(rows, drawerStyle.Render(strings.Repeat(" ", width)))
	}
	panel := strings.Join(rows, "\n")
	if d.ZoneID != "" {
		panel = zones.Mark(d.ZoneID, panel)
	}
	return panel
}
