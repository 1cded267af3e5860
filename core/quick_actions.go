package core

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/internal/state"
	"github.com/jask/navshell/widgets"
)

// FabOwn is the page body the quick actions are drawn over.
type FabOwn struct {
	Base string
}

// QuickActions renders the pending actions of the current snapshot as a
// floating card. It only reads them; the shell publishes them.
type QuickActions struct {
	nav   Navigator
	loc   i18n.Localizer
	zones widgets.Zones
}

func NewQuickActions(nav Navigator, loc i18n.Localizer, zones widgets.Zones) *QuickActions {
	if zones == nil {
		zones = widgets.NoZones{}
	}
	if loc == nil {
		loc = rawIDs{}
	}
	return &QuickActions{nav: nav, loc: loc, zones: zones}
}

func fabItemZone(i int) string { return "fab:" + strconv.Itoa(i) }

func (q *QuickActions) Mount(Props[FabOwn]) tea.Cmd { return nil }

func (q *QuickActions) Update(p Props[FabOwn], msg tea.Msg) tea.Cmd {
	mouse, ok := msg.(tea.MouseMsg)
	if !ok || mouse.Action != tea.MouseActionPress || mouse.Button != tea.MouseButtonLeft {
		return nil
	}
	if i := q.hit(p.State, mouse); i >= 0 && q.nav != nil {
		return q.nav.Navigate(p.State.PendingActions[i].Path)
	}
	return nil
}

// Wants reports whether msg is a click on one of s's actions.
func (q *QuickActions) Wants(s state.Snapshot, msg tea.Msg) bool {
	mouse, ok := msg.(tea.MouseMsg)
	return ok && q.hit(s, mouse) >= 0
}

func (q *QuickActions) hit(s state.Snapshot, msg tea.MouseMsg) int {
	for i := range s.PendingActions {
		if q.zones.Hit(fabItemZone(i), msg) {
			return i
		}
	}
	return -1
}

func (q *QuickActions) View(p Props[FabOwn], width, height int) string {
	items := make([]widgets.FabItem, 0, len(p.State.PendingActions))
	for i, a := range p.State.PendingActions {
		items = append(items, widgets.FabItem{Label: q.loc.T(a.LabelID), ZoneID: fabItemZone(i)})
	}
	card := widgets.Fab{Title: q.loc.T("fab.quick_actions"), Items: items}.RenderZoned(q.zones)
	return widgets.PlaceBottomRight(p.Own.Base, card, width, height)
}
