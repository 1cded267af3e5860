package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/navshell/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	frameHeight := max(0, m.height-lipgloss.Height(status)-lipgloss.Height(footer))
	bodyHeight := max(0, frameHeight-1)

	var body string
	if page := m.router.Current(); page != nil && bodyHeight > 0 {
		body = page.View(max(1, m.width), bodyHeight)
	}
	body = m.fab.View(FabOwn{Base: body}, max(1, m.width), bodyHeight)
	if top := m.screens.Top(); top != nil && bodyHeight > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, bodyHeight-6)), max(1, m.width), bodyHeight)
	}
	own := m.navOwn()
	own.Body = body
	frame := m.navbar.View(own, max(1, m.width), frameHeight)

	view := strings.Join([]string{frame, status, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	view = appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
	return m.zones.Scan(view)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
