package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/i18n"
)

// NotFound is shown for unregistered paths. Enter follows the suggestion.
type NotFound struct {
	loc        i18n.Localizer
	path       string
	suggestion string
}

func NewNotFound(loc i18n.Localizer, path, suggestion string) *NotFound {
	return &NotFound{loc: loc, path: path, suggestion: suggestion}
}

func (n *NotFound) Path() string       { return n.path }
func (n *NotFound) TitleID() string    { return "page.not_found" }
func (n *NotFound) Suggestion() string { return n.suggestion }

func (n *NotFound) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && n.suggestion != "" {
		return navigateTo(n.suggestion)
	}
	return nil
}

func (n *NotFound) View(width, height int) string {
	lines := []string{
		titleStyle.Render(n.loc.T("page.not_found")),
		mutedStyle.Render(n.path),
	}
	if n.suggestion != "" {
		lines = append(lines, "", textStyle.Render(n.loc.Tf("page.not_found.suggest", n.suggestion)))
	}
	return page(width, height, lines...)
}
