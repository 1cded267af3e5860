package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// FabItem is one quick action. Label is already localized.
type FabItem struct {
	Label  string
	ZoneID string
}

// Fab is the floating action button stack drawn in a corner.
type Fab struct {
	Title string
	Items []FabItem
}

var (
	fabStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#a6e3a1")).
			Padding(0, 1)
	fabTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	fabItemStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
)

// RenderZoned returns "" when there is nothing to offer.
func (f Fab) RenderZoned(zones Zones) string {
	if len(f.Items) == 0 {
		return ""
	}
	if zones == nil {
		zones = NoZones{}
	}
	rows := []string{fabTitleStyle.Render("+ " + f.Title)}
	for _, it := range f.Items {
		rows = append(rows, zones.Mark(it.ZoneID, fabItemStyle.Render("› "+it.Label)))
	}
	return fabStyle.Render(strings.Join(rows, "\n"))
}

// PlaceBottomRight overlays card onto base in the bottom-right corner.
func PlaceBottomRight(base, card string, width, height int) string {
	if card == "" {
		return FitCanvas(base, width, height)
	}
	lines := splitToLines(card, 0)
	w := maxLineWidth(lines)
	x := max(0, width-w-1)
	y := max(0, height-len(lines))
	return OverlayAt(FitCanvas(base, width, height), card, x, y, width, height)
}
