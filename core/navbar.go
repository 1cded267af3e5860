package core

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/i18n"
	"github.com/jask/navshell/internal/logx"
	"github.com/jask/navshell/internal/state"
	"github.com/jask/navshell/widgets"
)

// Navigator requests navigation to a path.
type Navigator interface {
	Navigate(path string) tea.Cmd
}

// NavOwn are the props the shell passes to the navigation bar: the page
// body it frames and the key scope of that page.
type NavOwn struct {
	Body  string
	Scope string
}

type DrawerState int

const (
	DrawerClosed DrawerState = iota
	DrawerOpen
)

type AccountState int

const (
	Anonymous AccountState = iota
	Authenticated
)

// NavState is the tuple the navigation bar renders from. It is evaluated
// once per render.
type NavState struct {
	Layout   Layout
	Drawer   DrawerState
	Account  AccountState
	User     state.User
	MenuOpen bool
}

// Dimmed reports whether the bar and the body are rendered behind the
// drawer. Both regions read this one value.
func (s NavState) Dimmed() bool {
	return s.Layout == Mobile && s.Drawer == DrawerOpen
}

const (
	ActionOpenDrawer  = "open-drawer"
	ActionDismiss     = "dismiss"
	ActionAccountMenu = "account-menu"
	ActionNavUp       = "nav-up"
	ActionNavDown     = "nav-down"
	ActionSelect      = "select"
)

const (
	ScopeDrawer  = "nav:drawer"
	ScopeAccount = "nav:account"
)

const (
	zoneToggle  = "nav:toggle"
	zoneBrand   = "nav:brand"
	zoneAbout   = "nav:about"
	zoneAccount = "nav:account"
	zoneDrawer  = "nav:drawer"
	zoneMenu    = "nav:menu"
)

func drawerItemZone(i int) string  { return "nav:drawer:" + strconv.Itoa(i) }
func accountItemZone(i int) string { return "nav:account:" + strconv.Itoa(i) }

type drawerLink struct {
	Icon    string
	LabelID string
	Path    string
}

var drawerLinks = []drawerLink{
	{Icon: "⌂", LabelID: "page.home", Path: "/"},
	{Icon: "?", LabelID: "page.about", Path: "/about"},
}

// Navbar is the responsive navigation controller. It owns the drawer and
// account menu visibility; everything else comes from props.
type Navbar struct {
	nav            Navigator
	loc            i18n.Localizer
	detector       LayoutDetector
	zones          widgets.Zones
	keys           *KeyRegistry
	FallbackAvatar string

	width  int
	height int
	layout Layout

	drawerVisible bool
	bootstrapped  bool
	accountOpen   bool
	drawerCursor  int
	accountCursor int
}

func NewNavbar(nav Navigator, loc i18n.Localizer, detector LayoutDetector, zones widgets.Zones, keys *KeyRegistry) *Navbar {
	if detector == nil {
		detector = BreakpointDetector{}
	}
	if zones == nil {
		zones = widgets.NoZones{}
	}
	if keys == nil {
		keys = NewKeyRegistry(DefaultKeyBindings())
	}
	n := &Navbar{
		nav:            nav,
		loc:            loc,
		detector:       detector,
		zones:          zones,
		keys:           keys,
		FallbackAvatar: "/images/avatar.png",
		width:          100,
		height:         32,
	}
	n.layout = detector.Detect(n.width, n.height)
	return n
}

// SetLayoutDetector swaps the detector and re-evaluates the layout.
func (n *Navbar) SetLayoutDetector(d LayoutDetector) {
	if d == nil {
		return
	}
	n.detector = d
	n.resize(n.width, n.height)
}

func (n *Navbar) Layout() Layout { return n.layout }

// DrawerVisible is the drawer flag as last set by drawer events.
func (n *Navbar) DrawerVisible() bool { return n.drawerVisible }

func (n *Navbar) AccountMenuOpen() bool { return n.accountOpen }

// Scope is the key scope the bar claims, or "" when it is not modal.
func (n *Navbar) Scope() string {
	switch {
	case n.accountOpen:
		return ScopeAccount
	case n.layout == Mobile && n.drawerVisible:
		return ScopeDrawer
	}
	return ""
}

// Mount authenticates once when no user is present.
func (n *Navbar) Mount(p Props[NavOwn]) tea.Cmd {
	if n.bootstrapped {
		return nil
	}
	n.bootstrapped = true
	if p.State.Authenticated() || p.Actions == nil {
		return nil
	}
	logx.Debug("no user at mount, authenticating")
	return p.Actions.Authenticate()
}

func (n *Navbar) Update(p Props[NavOwn], msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		n.resize(msg.Width, msg.Height)
	case SnapshotMsg:
		if !p.State.Authenticated() {
			n.accountOpen = false
		}
		n.accountCursor = clampCursor(n.accountCursor, len(n.accountMenu(p.State).Items()))
	case OpenDrawerMsg:
		n.openDrawer()
	case DismissDrawerMsg:
		n.dismissDrawer()
	case SelectDrawerLinkMsg:
		return n.selectDrawerLink(msg.Path)
	case ToggleAccountMenuMsg:
		n.toggleAccountMenu(p.State)
	case LogoutMsg:
		return n.logout(p)
	case tea.KeyMsg:
		return n.handleKey(p, msg)
	case tea.MouseMsg:
		return n.handleMouse(p, msg)
	}
	return nil
}

func (n *Navbar) resize(width, height int) {
	n.width, n.height = width, height
	next := n.detector.Detect(width, height)
	if next != n.layout {
		// The two layouts anchor the dropdown to different triggers.
		n.accountOpen = false
		logx.Debug("layout changed", "layout", next.String())
	}
	n.layout = next
}

func (n *Navbar) openDrawer() {
	if n.layout != Mobile || n.drawerVisible {
		return
	}
	n.drawerVisible = true
	n.drawerCursor = 0
	n.accountOpen = false
}

func (n *Navbar) dismissDrawer() {
	if n.layout != Mobile {
		return
	}
	n.drawerVisible = false
}

func (n *Navbar) selectDrawerLink(path string) tea.Cmd {
	if n.layout == Mobile {
		n.drawerVisible = false
	}
	if n.nav == nil {
		return nil
	}
	return n.nav.Navigate(path)
}

func (n *Navbar) toggleAccountMenu(s state.Snapshot) {
	if n.accountOpen {
		n.accountOpen = false
		return
	}
	if !s.Authenticated() {
		return
	}
	n.accountOpen = true
	n.accountCursor = firstSelectable(n.accountMenu(s).Items())
}

func (n *Navbar) logout(p Props[NavOwn]) tea.Cmd {
	n.accountOpen = false
	if !p.State.Authenticated() || p.Actions == nil {
		return nil
	}
	return p.Actions.Logout()
}

func (n *Navbar) activate(p Props[NavOwn], item widgets.MenuItem) tea.Cmd {
	n.accountOpen = false
	switch item.Kind {
	case widgets.ItemLink:
		if n.nav != nil {
			return n.nav.Navigate(item.Path)
		}
	case widgets.ItemAction:
		if item.ID == MenuLogout {
			return n.logout(p)
		}
	}
	return nil
}

// Wants reports whether msg is meant for the bar rather than the page
// underneath, whose key scope is pageScope.
func (n *Navbar) Wants(msg tea.Msg, pageScope string) bool {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if n.Scope() != "" {
			return true
		}
		if n.layout == Mobile && n.keys.IsAction(msg, ActionOpenDrawer, pageScope) {
			return true
		}
		return n.keys.IsAction(msg, ActionAccountMenu, pageScope)
	case tea.MouseMsg:
		if n.Scope() != "" {
			return true
		}
		for _, id := range []string{zoneToggle, zoneBrand, zoneAbout, zoneAccount, accountItemZone(0), accountItemZone(1)} {
			if n.zones.Hit(id, msg) {
				return true
			}
		}
	}
	return false
}

func (n *Navbar) handleKey(p Props[NavOwn], msg tea.KeyMsg) tea.Cmd {
	scope := n.Scope()
	switch scope {
	case ScopeAccount:
		items := n.accountMenu(p.State).Items()
		switch {
		case n.keys.IsAction(msg, ActionDismiss, scope), n.keys.IsAction(msg, ActionAccountMenu, scope):
			n.accountOpen = false
		case n.keys.IsAction(msg, ActionNavDown, scope):
			n.accountCursor = stepSelectable(items, n.accountCursor, 1)
		case n.keys.IsAction(msg, ActionNavUp, scope):
			n.accountCursor = stepSelectable(items, n.accountCursor, -1)
		case n.keys.IsAction(msg, ActionSelect, scope):
			if n.accountCursor >= 0 && n.accountCursor < len(items) && items[n.accountCursor].Selectable() {
				return n.activate(p, items[n.accountCursor])
			}
		}
		return nil
	case ScopeDrawer:
		switch {
		case n.keys.IsAction(msg, ActionDismiss, scope), n.keys.IsAction(msg, ActionOpenDrawer, scope):
			n.dismissDrawer()
		case n.keys.IsAction(msg, ActionNavDown, scope):
			n.drawerCursor = min(len(drawerLinks)-1, n.drawerCursor+1)
		case n.keys.IsAction(msg, ActionNavUp, scope):
			n.drawerCursor = max(0, n.drawerCursor-1)
		case n.keys.IsAction(msg, ActionSelect, scope):
			return n.selectDrawerLink(drawerLinks[n.drawerCursor].Path)
		case n.keys.IsAction(msg, ActionAccountMenu, scope):
			n.toggleAccountMenu(p.State)
		}
		return nil
	}
	switch {
	case n.keys.IsAction(msg, ActionOpenDrawer, p.Own.Scope):
		n.openDrawer()
	case n.keys.IsAction(msg, ActionAccountMenu, p.Own.Scope):
		n.toggleAccountMenu(p.State)
	}
	return nil
}

func (n *Navbar) handleMouse(p Props[NavOwn], msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	if n.accountOpen {
		items := n.accountMenu(p.State).Items()
		for i, it := range items {
			if it.Selectable() && n.zones.Hit(accountItemZone(i), msg) {
				return n.activate(p, it)
			}
		}
		if n.zones.Hit(zoneMenu, msg) {
			return nil
		}
		// Any other click closes the menu, including one on its trigger.
		n.accountOpen = false
		return nil
	}
	if n.layout == Mobile && n.drawerVisible {
		for i, l := range drawerLinks {
			if n.zones.Hit(drawerItemZone(i), msg) {
				return n.selectDrawerLink(l.Path)
			}
		}
		if !n.zones.Hit(zoneDrawer, msg) {
			n.dismissDrawer()
		}
		return nil
	}
	switch {
	case n.zones.Hit(zoneToggle, msg):
		n.openDrawer()
	case n.zones.Hit(zoneAccount, msg):
		n.toggleAccountMenu(p.State)
	case n.zones.Hit(zoneBrand, msg):
		return n.navigate("/")
	case n.zones.Hit(zoneAbout, msg):
		return n.navigate("/about")
	default:
		if p.State.Authenticated() {
			return nil
		}
		for i, it := range n.accountMenu(p.State).Items() {
			if n.zones.Hit(accountItemZone(i), msg) {
				return n.navigate(it.Path)
			}
		}
	}
	return nil
}

func (n *Navbar) navigate(path string) tea.Cmd {
	if n.nav == nil {
		return nil
	}
	return n.nav.Navigate(path)
}

// navState derives the render tuple. Desktop never consults drawerVisible.
func (n *Navbar) navState(s state.Snapshot) NavState {
	st := NavState{Layout: n.layout, Drawer: DrawerClosed}
	if n.layout == Mobile && n.drawerVisible {
		st.Drawer = DrawerOpen
	}
	if u, ok := s.User(); ok {
		st.Account = Authenticated
		st.User = u
		st.MenuOpen = n.accountOpen
	}
	return st
}

func (n *Navbar) accountMenu(s state.Snapshot) widgets.Menu {
	u, ok := s.User()
	if !ok {
		return AccountControl(n.loc, nil, n.FallbackAvatar)
	}
	return AccountControl(n.loc, &u, n.FallbackAvatar)
}

func clampCursor(cur, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(cur, 0), n-1)
}

func firstSelectable(items []widgets.MenuItem) int {
	for i, it := range items {
		if it.Selectable() {
			return i
		}
	}
	return 0
}

func stepSelectable(items []widgets.MenuItem, cur, dir int) int {
	for i := cur + dir; i >= 0 && i < len(items); i += dir {
		if items[i].Selectable() {
			return i
		}
	}
	return cur
}
