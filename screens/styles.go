package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/navshell/widgets"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true).MarginBottom(1)
	textStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f849c"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#f38ba8"))
	pageStyle  = lipgloss.NewStyle().Padding(1, 2)
)

const labelWidth = 28

// render draws w inside the page padding, clipped to width x height.
func render(width, height int, w widgets.Widget) string {
	innerW, innerH := max(1, width-4), max(1, height-2)
	return pageStyle.Render(widgets.Text(w.Render(innerW, innerH)).Render(innerW, innerH))
}

func page(width, height int, lines ...string) string {
	return render(width, height, widgets.Text(strings.Join(lines, "\n")))
}

func fields(rows ...widgets.Field) widgets.Fields {
	for i := range rows {
		rows[i].Label = labelStyle.Render(rows[i].Label)
	}
	return widgets.Fields{Rows: rows, LabelWidth: labelWidth}
}
