package widgets

import "strings"

// Widget renders itself into a width x height cell area.
type Widget interface {
	Render(width, height int) string
}

// Func adapts a render function to Widget.
type Func func(width, height int) string

func (f Func) Render(width, height int) string {
	if f == nil {
		return ""
	}
	return f(width, height)
}

// Text is a static block of text.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(string(t), 0)
	if len(lines) > height {
		lines = lines[:height]
	}
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}
