package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/i18n"
)

type About struct {
	loc i18n.Localizer
}

func NewAbout(loc i18n.Localizer) *About { return &About{loc: loc} }

func (a *About) Path() string           { return "/about" }
func (a *About) TitleID() string        { return "page.about" }
func (a *About) Update(tea.Msg) tea.Cmd { return nil }

func (a *About) View(width, height int) string {
	return page(width, height,
		titleStyle.Render(a.loc.T("page.about")),
		textStyle.Render(a.loc.T("page.about.body")),
	)
}
