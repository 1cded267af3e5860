package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var dimStyle = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#45475a"))

// Dim renders s faint, dropping its own styling, when active is set.
// Each call dims one region; callers that dim several regions for one
// logical overlay pass the same flag to every call.
func Dim(s string, active bool) string {
	if !active {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = dimStyle.Render(ansi.Strip(line))
	}
	return strings.Join(lines, "\n")
}

// Slide draws panel over the left edge of base, as a drawer slides in.
// With dim set, every base cell left visible is dimmed: the dimmed area is
// the whole of base, whatever regions it was composed from.
func Slide(base, panel string, dim bool, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	baseLines := splitToLines(fitCanvas(base, width, height), height)
	panelLines := splitToLines(panel, height)
	pw := min(width, maxLineWidth(panelLines))
	for i := range baseLines {
		rest := dropColumns(baseLines[i], pw)
		baseLines[i] = padRightANSI(panelLines[i], pw) + Dim(rest, dim)
	}
	return strings.Join(baseLines, "\n")
}
