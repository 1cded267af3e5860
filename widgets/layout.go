package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Each child is offered a share of
// the height by Ratios (equal shares when Ratios does not match) and
// Spacing blank rows separate children.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	n := len(v.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	heights := splitWidths(max(1, height-v.Spacing*(n-1)), n, v.Ratios)
	gap := strings.Repeat("\n", max(0, v.Spacing))
	var b strings.Builder
	for i, w := range v.Widgets {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(gap)
		}
		b.WriteString(w.Render(width, max(1, heights[i])))
	}
	return b.String()
}

// HStack places widgets side by side, each padded to its column width so
// that later columns line up.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	widths := splitWidths(max(1, width-h.Gap*(n-1)), n, h.Ratios)
	cols := make([][]string, n)
	rows := 0
	for i, w := range h.Widgets {
		cols[i] = splitToLines(w.Render(max(1, widths[i]), height), 0)
		rows = max(rows, len(cols[i]))
	}
	sep := strings.Repeat(" ", max(0, h.Gap))
	out := make([]string, rows)
	for r := range out {
		cells := make([]string, n)
		for i, col := range cols {
			cell := ""
			if r < len(col) {
				cell = col[r]
			}
			cells[i] = padRight(cell, widths[i])
		}
		out[r] = strings.Join(cells, sep)
	}
	return strings.Join(out, "\n")
}

// Bar lays left and right out on one line of exactly width cells, right
// aligned to the trailing edge. Left is truncated first when space runs out.
func Bar(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	left = strings.ReplaceAll(left, "\n", " ")
	right = ansi.Truncate(strings.ReplaceAll(right, "\n", " "), width, "")
	rightW := ansi.StringWidth(right)
	room := max(0, width-rightW-1)
	left = ansi.Truncate(left, room, "")
	gap := width - ansi.StringWidth(left) - rightW
	if gap < 0 {
		gap = 0
	}
	return padRight(left+strings.Repeat(" ", gap)+right, width)
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		w := int(math.Floor((ratios[i] / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
