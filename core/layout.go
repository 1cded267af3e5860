package core

// Layout is the responsive mode the shell renders in.
type Layout int

const (
	Desktop Layout = iota
	Mobile
)

func (l Layout) String() string {
	if l == Mobile {
		return "mobile"
	}
	return "desktop"
}

// LayoutDetector classifies a terminal size.
type LayoutDetector interface {
	Detect(width, height int) Layout
}

const DefaultDesktopMinWidth = 90

// BreakpointDetector reports Mobile below DesktopMinWidth columns.
type BreakpointDetector struct {
	DesktopMinWidth int
}

func (d BreakpointDetector) Detect(width, _ int) Layout {
	minWidth := d.DesktopMinWidth
	if minWidth <= 0 {
		minWidth = DefaultDesktopMinWidth
	}
	if width < minWidth {
		return Mobile
	}
	return Desktop
}
