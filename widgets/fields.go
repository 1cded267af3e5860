package widgets

import "strings"

// Field is one label and value row.
type Field struct {
	Label string
	Value string
}

// Fields lays rows out with labels in a fixed-width column. Rows beyond
// height are dropped.
type Fields struct {
	Rows       []Field
	LabelWidth int
}

func (f Fields) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(f.Rows) == 0 {
		return ""
	}
	lw := min(max(0, f.LabelWidth), width/2)
	rows := f.Rows
	if len(rows) > height {
		rows = rows[:height]
	}
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, padRight(padRight(r.Label, lw)+r.Value, width))
	}
	return strings.Join(out, "\n")
}
