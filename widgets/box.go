package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Box is a rounded card with an optional title row. Its height follows the
// body; width is exact.
type Box struct {
	Title string
	Body  Widget
}

func (b Box) Render(width, height int) string {
	if width < 5 || height < 3 {
		return ""
	}
	innerW, innerH := width-4, height-2
	rows := make([]string, 0, 2)
	if b.Title != "" {
		rows = append(rows, padRight(b.Title, innerW))
		innerH--
	}
	if b.Body != nil && innerH > 0 {
		rows = append(rows, b.Body.Render(innerW, innerH))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(width - 2).
		Render(strings.Join(rows, "\n"))
}
