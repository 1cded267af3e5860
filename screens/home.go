package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/core"
	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/widgets"
)

// sideMinWidth is the narrowest page that still gets the quick action card.
const sideMinWidth = 70

// Home greets the current user and lists the route's quick actions.
type Home struct {
	loc i18n.Localizer
}

func NewHome(loc i18n.Localizer) *Home { return &Home{loc: loc} }

func (h *Home) Mount(core.Props[struct{}]) tea.Cmd           { return nil }
func (h *Home) Update(core.Props[struct{}], tea.Msg) tea.Cmd { return nil }

func (h *Home) View(p core.Props[struct{}], width, height int) string {
	greeting := h.loc.T("page.home.anonymous")
	if u, ok := p.State.User(); ok {
		greeting = h.loc.Tf("page.home.welcome", u.Name)
	}
	main := widgets.Text(titleStyle.Render(h.loc.T("app.name")) + "\n" + textStyle.Render(greeting))
	if width < sideMinWidth || len(p.State.PendingActions) == 0 {
		return render(width, height, main)
	}
	items := make([]string, 0, len(p.State.PendingActions))
	for _, a := range p.State.PendingActions {
		items = append(items, "• "+h.loc.T(a.LabelID))
	}
	side := widgets.Box{Title: h.loc.T("fab.quick_actions"), Body: widgets.Text(strings.Join(items, "\n"))}
	return render(width, height, widgets.HStack{
		Widgets: []widgets.Widget{main, side},
		Ratios:  []float64{0.6, 0.4},
		Gap:     2,
	})
}
