package core

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/internal/state"
	"github.com/jask/navshell/widgets"
)

// Account menu entry ids.
const (
	MenuLogin       = "login"
	MenuSignUp      = "signup"
	MenuProfile     = "profile"
	MenuPreferences = "preferences"
	MenuDivider     = "divider"
	MenuLogout      = "logout"
)

const drawerMaxWidth = 28

// AccountControl builds the account control for user. A nil user gets the
// login and sign up links; anyone else gets a dropdown.
func AccountControl(loc i18n.Localizer, user *state.User, fallbackAvatar string) widgets.Menu {
	if loc == nil {
		loc = rawIDs{}
	}
	if user == nil {
		return widgets.LinkGroup{Entries: []widgets.MenuItem{
			{Kind: widgets.ItemLink, ID: MenuLogin, Label: loc.T("page.me.login"), Path: "/login", ZoneID: accountItemZone(0)},
			{Kind: widgets.ItemLink, ID: MenuSignUp, Label: loc.T("page.me.sign_up"), Path: "/signup", ZoneID: accountItemZone(1)},
		}}
	}
	avatar := user.AvatarURL
	if avatar == "" {
		avatar = fallbackAvatar
	}
	return widgets.Dropdown{
		TriggerLabel: user.Name,
		Image:        avatar,
		Entries: []widgets.MenuItem{
			{Kind: widgets.ItemLink, ID: MenuProfile, Label: loc.T("page.me.profile"), Path: "/profile", ZoneID: accountItemZone(0)},
			{Kind: widgets.ItemLink, ID: MenuPreferences, Label: loc.T("page.me.preferences"), Path: "/preferences", ZoneID: accountItemZone(1)},
			{Kind: widgets.ItemDivider, ID: MenuDivider},
			{Kind: widgets.ItemAction, ID: MenuLogout, Label: loc.T("page.me.logout"), ZoneID: accountItemZone(3)},
		},
	}
}

type rawIDs struct{}

func (rawIDs) T(id string) string            { return id }
func (rawIDs) Tf(id string, _ ...any) string { return id }

// Derive evaluates the render tuple for snapshot s.
func (n *Navbar) Derive(s state.Snapshot) NavState {
	return n.navState(s)
}

func (n *Navbar) View(p Props[NavOwn], width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	st := n.navState(p.State)
	menu := n.accountMenu(p.State)
	var frame string
	if st.Layout == Mobile {
		frame = n.renderMobile(st, menu, p.Own.Body, width, height)
	} else {
		frame = n.renderDesktop(menu, p.Own.Body, width, height)
	}
	if st.MenuOpen {
		list := n.zones.Mark(zoneMenu, widgets.RenderList(menu, n.zones, n.accountCursor))
		x := max(0, width-lipgloss.Width(list)-1)
		frame = widgets.OverlayAt(frame, list, x, 1, width, height)
	}
	return frame
}

func (n *Navbar) localizer() i18n.Localizer {
	if n.loc == nil {
		return rawIDs{}
	}
	return n.loc
}

func (n *Navbar) renderDesktop(menu widgets.Menu, body string, width, height int) string {
	loc := n.localizer()
	left := n.zones.Mark(zoneBrand, brandStyle.Render(loc.T("app.name"))) +
		n.zones.Mark(zoneAbout, navLinkStyle.Render(loc.T("page.about")))
	right := widgets.RenderInline(menu, n.zones, zoneAccount, n.accountOpen)
	bar := navBarStyle.Render(widgets.Bar(left, right, width))
	return joinFrame(bar, body, width, height)
}

func (n *Navbar) renderMobile(st NavState, menu widgets.Menu, body string, width, height int) string {
	loc := n.localizer()
	left := n.zones.Mark(zoneToggle, toggleStyle.Render("☰")) + brandStyle.Render(loc.T("app.name"))
	right := widgets.RenderInline(menu, n.zones, zoneAccount, n.accountOpen)
	frame := joinFrame(navBarStyle.Render(widgets.Bar(left, right, width)), body, width, height)
	if st.Drawer != DrawerOpen {
		return frame
	}
	items := make([]widgets.DrawerItem, 0, len(drawerLinks))
	for i, l := range drawerLinks {
		items = append(items, widgets.DrawerItem{Icon: l.Icon, Label: loc.T(l.LabelID), ZoneID: drawerItemZone(i)})
	}
	dw := min(drawerMaxWidth, max(12, width*2/3))
	drawer := widgets.Drawer{Items: items, Cursor: n.drawerCursor, ZoneID: zoneDrawer}.RenderZoned(n.zones, dw, height)
	// The bar and the body share one dimmed flag.
	return widgets.Slide(frame, drawer, st.Dimmed(), width, height)
}

func joinFrame(bar, body string, width, height int) string {
	if height <= 1 {
		return widgets.FitCanvas(bar, width, height)
	}
	return widgets.FitCanvas(bar+"\n"+widgets.FitCanvas(body, width, height-1), width, height)
}
