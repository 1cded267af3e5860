package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/navshell/internal/state"
	"github.com/jask/navshell/widgets"
)

const (
	mobileWidth  = 60
	desktopWidth = 120
)

type navFixture struct {
	t      *testing.T
	store  *state.Store
	acts   *fakeActions
	router *fakeNavigator
	zones  *fakeZones
	nav    *Navbar
	conn   *Connected[NavOwn]
}

func newNavFixture(t *testing.T, width int, user *state.User) *navFixture {
	t.Helper()
	initial := state.Default().WithUser(user)
	f := &navFixture{
		t:      t,
		store:  state.NewStore(&initial),
		acts:   &fakeActions{},
		router: &fakeNavigator{},
		zones:  &fakeZones{},
	}
	f.nav = NewNavbar(f.router, testLocalizer(t), BreakpointDetector{DesktopMinWidth: 90}, f.zones, NewKeyRegistry(DefaultKeyBindings()))
	f.conn = Connect[NavOwn](f.store, f.acts, f.nav)
	f.conn.Init(NavOwn{Scope: ScopePage})
	f.send(tea.WindowSizeMsg{Width: width, Height: 24})
	t.Cleanup(f.conn.Unmount)
	return f
}

func (f *navFixture) send(msg tea.Msg) tea.Cmd {
	return f.conn.Update(NavOwn{Scope: ScopePage}, msg)
}

// publish replaces the shared state and hands the result to the bar the
// way the runtime would.
func (f *navFixture) publish(fn func(state.Snapshot) state.Snapshot) {
	f.store.Update(fn)
	f.send(SnapshotMsg{SubscriptionID: f.conn.sub.ID(), Snapshot: f.store.Current()})
}

func (f *navFixture) derive() NavState {
	return f.nav.Derive(f.conn.Snapshot())
}

func (f *navFixture) view() string {
	return ansi.Strip(f.conn.View(NavOwn{Body: "BODY", Scope: ScopePage}, f.nav.width, f.nav.height))
}

func (f *navFixture) assertDimmedMatchesDrawer(step string) {
	f.t.Helper()
	st := f.derive()
	if st.Dimmed() != f.nav.DrawerVisible() {
		f.t.Fatalf("%s: dimmed=%v drawerVisible=%v", step, st.Dimmed(), f.nav.DrawerVisible())
	}
	drawerShown := strings.Contains(f.view(), "Home")
	if drawerShown != st.Dimmed() {
		f.t.Fatalf("%s: drawer rendered=%v dimmed=%v", step, drawerShown, st.Dimmed())
	}
}

func TestMountAuthenticatesOnceWithoutUser(t *testing.T) {
	f := newNavFixture(t, mobileWidth, nil)
	if f.acts.authenticate != 1 {
		t.Fatalf("authenticate calls = %d, want 1", f.acts.authenticate)
	}
	f.conn.Init(NavOwn{})
	f.nav.Mount(Props[NavOwn]{Actions: f.acts})
	for i := 0; i < 3; i++ {
		f.publish(func(s state.Snapshot) state.Snapshot { return s.WithPendingActions(nil) })
	}
	if f.acts.authenticate != 1 {
		t.Fatalf("authenticate calls = %d after re-entry and snapshots, want 1", f.acts.authenticate)
	}
	if f.nav.DrawerVisible() {
		t.Fatalf("drawer must stay closed without drawer events")
	}
}

func TestMountWithUserSkipsAuthenticate(t *testing.T) {
	f := newNavFixture(t, desktopWidth, &state.User{ID: "1", Name: "Ada"})
	if f.acts.authenticate != 0 {
		t.Fatalf("authenticate calls = %d, want 0", f.acts.authenticate)
	}
	f.publish(func(s state.Snapshot) state.Snapshot { return s.WithUser(nil) })
	if f.acts.authenticate != 0 {
		t.Fatalf("losing the user must not trigger authentication")
	}
}

func TestDimmedTracksDrawerVisible(t *testing.T) {
	f := newNavFixture(t, mobileWidth, nil)
	f.assertDimmedMatchesDrawer("initial")

	steps := []struct {
		name string
		msg  func() tea.Msg
		open bool
	}{
		{"open", func() tea.Msg { return OpenDrawerMsg{} }, true},
		{"open twice", func() tea.Msg { return OpenDrawerMsg{} }, true},
		{"dismiss", func() tea.Msg { return DismissDrawerMsg{} }, false},
		{"dismiss closed", func() tea.Msg { return DismissDrawerMsg{} }, false},
		{"menu key", func() tea.Msg { return keyMsg("m") }, true},
		{"esc", func() tea.Msg { return keyMsg("esc") }, false},
		{"toggle click", func() tea.Msg { return f.zones.clickOn(zoneToggle) }, true},
		{"click inside drawer", func() tea.Msg { return f.zones.clickOn(zoneDrawer) }, true},
		{"outside click", func() tea.Msg { return f.zones.clickOn() }, false},
		{"open again", func() tea.Msg { return OpenDrawerMsg{} }, true},
		{"link", func() tea.Msg { return SelectDrawerLinkMsg{Path: "/about"} }, false},
	}
	for _, step := range steps {
		f.send(step.msg())
		if f.nav.DrawerVisible() != step.open {
			t.Fatalf("%s: drawerVisible=%v, want %v", step.name, f.nav.DrawerVisible(), step.open)
		}
		f.assertDimmedMatchesDrawer(step.name)
	}
}

func TestLayoutSwitchKeepsDrawer(t *testing.T) {
	f := newNavFixture(t, mobileWidth, nil)
	f.send(OpenDrawerMsg{})

	f.send(tea.WindowSizeMsg{Width: desktopWidth, Height: 24})
	if f.nav.Layout() != Desktop {
		t.Fatalf("expected desktop layout")
	}
	if !f.nav.DrawerVisible() {
		t.Fatalf("layout switch reset the drawer")
	}
	if st := f.derive(); st.Drawer != DrawerClosed || st.Dimmed() {
		t.Fatalf("desktop must not render the drawer: %+v", st)
	}

	f.send(DismissDrawerMsg{})
	f.send(OpenDrawerMsg{})
	if !f.nav.DrawerVisible() {
		t.Fatalf("desktop changed the drawer flag")
	}

	f.send(tea.WindowSizeMsg{Width: mobileWidth, Height: 24})
	if st := f.derive(); st.Drawer != DrawerOpen || !st.Dimmed() {
		t.Fatalf("drawer should reopen in mobile: %+v", st)
	}
}

func TestSelectDrawerLinkAlwaysCloses(t *testing.T) {
	f := newNavFixture(t, mobileWidth, nil)

	f.send(SelectDrawerLinkMsg{Path: "/about"})
	if f.nav.DrawerVisible() {
		t.Fatalf("closed drawer opened on link")
	}

	f.send(OpenDrawerMsg{})
	f.send(keyMsg("enter"))
	if f.nav.DrawerVisible() {
		t.Fatalf("enter on a drawer link must close the drawer")
	}

	f.send(OpenDrawerMsg{})
	f.send(f.zones.clickOn(drawerItemZone(1), zoneDrawer))
	if f.nav.DrawerVisible() {
		t.Fatalf("clicking a drawer link must close the drawer")
	}

	want := []string{"/about", "/", "/about"}
	if strings.Join(f.router.paths, ",") != strings.Join(want, ",") {
		t.Fatalf("navigations = %v, want %v", f.router.paths, want)
	}
}

func TestAnonymousAccountControl(t *testing.T) {
	loc := testLocalizer(t)
	menu := AccountControl(loc, nil, "/images/avatar.png")
	if menu.Trigger() != "" {
		t.Fatalf("anonymous control must not have a trigger, got %q", menu.Trigger())
	}
	items := menu.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].Label != loc.T("page.me.login") || items[0].Path != "/login" {
		t.Fatalf("first item = %+v", items[0])
	}
	if items[1].Label != loc.T("page.me.sign_up") || items[1].Path != "/signup" {
		t.Fatalf("second item = %+v", items[1])
	}
	for _, it := range items {
		if !it.Selectable() {
			t.Fatalf("anonymous item %q not selectable", it.ID)
		}
	}

	f := newNavFixture(t, desktopWidth, nil)
	out := f.view()
	if !strings.Contains(out, "Log in") || !strings.Contains(out, "Sign up") {
		t.Fatalf("bar misses account links: %q", out)
	}
	if strings.Contains(out, "◉") {
		t.Fatalf("anonymous bar shows an avatar")
	}
}

func TestAuthenticatedAccountControl(t *testing.T) {
	loc := testLocalizer(t)
	menu := AccountControl(loc, &state.User{ID: "1", Name: "Ada"}, "/images/avatar.png")
	d, ok := menu.(widgets.Dropdown)
	if !ok {
		t.Fatalf("expected a dropdown, got %T", menu)
	}
	if d.Trigger() != "Ada" || d.Image != "/images/avatar.png" {
		t.Fatalf("trigger = %q image = %q", d.Trigger(), d.Image)
	}
	var ids []string
	for _, it := range d.Items() {
		ids = append(ids, it.ID)
	}
	if strings.Join(ids, ",") != "profile,preferences,divider,logout" {
		t.Fatalf("items = %v", ids)
	}
	if d.Items()[2].Selectable() || d.Items()[3].Kind != widgets.ItemAction {
		t.Fatalf("unexpected item kinds: %+v", d.Items())
	}

	withAvatar := AccountControl(loc, &state.User{Name: "Ada", AvatarURL: "https://x/ada.png"}, "/images/avatar.png")
	if withAvatar.(widgets.Dropdown).Image != "https://x/ada.png" {
		t.Fatalf("user avatar not used")
	}

	f := newNavFixture(t, desktopWidth, &state.User{ID: "1", Name: "Ada"})
	if out := f.view(); !strings.Contains(out, "◉ Ada") || strings.Contains(out, "Log in") {
		t.Fatalf("bar should show the account trigger only: %q", out)
	}
}

func TestDrawerSurvivesAccountChanges(t *testing.T) {
	f := newNavFixture(t, mobileWidth, &state.User{ID: "1", Name: "Ada"})
	f.send(OpenDrawerMsg{})

	f.send(LogoutMsg{})
	if f.acts.logout != 1 {
		t.Fatalf("logout calls = %d, want 1", f.acts.logout)
	}
	if f.derive().Account != Authenticated {
		t.Fatalf("account changed before a snapshot arrived")
	}
	f.publish(func(s state.Snapshot) state.Snapshot { return s.WithUser(nil) })
	if !f.nav.DrawerVisible() {
		t.Fatalf("logout closed the drawer")
	}
	if f.derive().Account != Anonymous {
		t.Fatalf("expected anonymous after the snapshot")
	}

	f.publish(func(s state.Snapshot) state.Snapshot { return s.WithUser(&state.User{Name: "Grace"}) })
	if !f.nav.DrawerVisible() {
		t.Fatalf("login closed the drawer")
	}
}

func TestLogoutRequiresUser(t *testing.T) {
	f := newNavFixture(t, desktopWidth, nil)
	f.send(LogoutMsg{})
	if f.acts.logout != 0 {
		t.Fatalf("anonymous logout reached the backend")
	}
}

func TestAccountMenuKeyboard(t *testing.T) {
	f := newNavFixture(t, desktopWidth, &state.User{ID: "1", Name: "Ada"})
	f.send(keyMsg("a"))
	if !f.nav.AccountMenuOpen() || f.nav.Scope() != ScopeAccount {
		t.Fatalf("a should open the account menu")
	}
	if out := f.view(); !strings.Contains(out, "Preferences") {
		t.Fatalf("open menu not rendered: %q", out)
	}
	f.send(keyMsg("down"))
	f.send(keyMsg("down"))
	if f.nav.accountCursor != 3 {
		t.Fatalf("cursor = %d, want 3 (divider skipped)", f.nav.accountCursor)
	}
	f.send(keyMsg("enter"))
	if f.acts.logout != 1 || f.nav.AccountMenuOpen() {
		t.Fatalf("enter on logout: logout=%d open=%v", f.acts.logout, f.nav.AccountMenuOpen())
	}

	f.send(ToggleAccountMenuMsg{})
	f.send(keyMsg("enter"))
	if len(f.router.paths) != 1 || f.router.paths[0] != "/profile" {
		t.Fatalf("navigations = %v", f.router.paths)
	}
}

func TestAccountMenuClosesOnLayoutChange(t *testing.T) {
	f := newNavFixture(t, desktopWidth, &state.User{ID: "1", Name: "Ada"})
	f.send(ToggleAccountMenuMsg{})
	f.send(tea.WindowSizeMsg{Width: desktopWidth + 10, Height: 30})
	if !f.nav.AccountMenuOpen() {
		t.Fatalf("resize within a layout closed the menu")
	}
	f.send(tea.WindowSizeMsg{Width: mobileWidth, Height: 30})
	if f.nav.AccountMenuOpen() {
		t.Fatalf("layout change must close the account menu")
	}
}

func TestAccountMenuOutsideClickAndItemClick(t *testing.T) {
	f := newNavFixture(t, desktopWidth, &state.User{ID: "1", Name: "Ada"})
	f.send(f.zones.clickOn(zoneAccount))
	if !f.nav.AccountMenuOpen() {
		t.Fatalf("click on trigger should open the menu")
	}
	f.send(f.zones.clickOn(zoneMenu))
	if !f.nav.AccountMenuOpen() {
		t.Fatalf("click inside the menu closed it")
	}
	f.send(f.zones.clickOn())
	if f.nav.AccountMenuOpen() {
		t.Fatalf("outside click should close the menu")
	}
	f.send(ToggleAccountMenuMsg{})
	f.send(f.zones.clickOn(accountItemZone(1), zoneMenu))
	if len(f.router.paths) != 1 || f.router.paths[0] != "/preferences" {
		t.Fatalf("navigations = %v", f.router.paths)
	}
}

func TestAnonymousLinkClickNavigates(t *testing.T) {
	f := newNavFixture(t, desktopWidth, nil)
	click := f.zones.clickOn(accountItemZone(1))
	if !f.nav.Wants(click, ScopePage) {
		t.Fatalf("bar should claim clicks on its links")
	}
	f.send(click)
	if len(f.router.paths) != 1 || f.router.paths[0] != "/signup" {
		t.Fatalf("navigations = %v", f.router.paths)
	}
	f.send(ToggleAccountMenuMsg{})
	if f.nav.AccountMenuOpen() {
		t.Fatalf("anonymous users have no dropdown")
	}
}

func TestDesktopIgnoresDrawerInput(t *testing.T) {
	f := newNavFixture(t, desktopWidth, nil)
	if f.nav.Wants(keyMsg("m"), ScopePage) {
		t.Fatalf("desktop should not claim the drawer key")
	}
	f.send(OpenDrawerMsg{})
	f.send(keyMsg("m"))
	if f.nav.DrawerVisible() {
		t.Fatalf("desktop opened the drawer")
	}
}

func TestWantsRespectsPageScope(t *testing.T) {
	f := newNavFixture(t, mobileWidth, nil)
	if f.nav.Wants(keyMsg("m"), ScopeForm) {
		t.Fatalf("letter keys belong to forms")
	}
	if !f.nav.Wants(keyMsg("ctrl+o"), ScopeForm) {
		t.Fatalf("ctrl+o should open the drawer from a form")
	}
	f.send(OpenDrawerMsg{})
	if !f.nav.Wants(keyMsg("x"), ScopeForm) || !f.nav.Wants(f.zones.clickOn(), ScopeForm) {
		t.Fatalf("an open drawer claims all input")
	}
}

func TestViewFillsHeight(t *testing.T) {
	for _, width := range []int{mobileWidth, desktopWidth} {
		f := newNavFixture(t, width, &state.User{Name: "Ada"})
		f.send(OpenDrawerMsg{})
		f.send(ToggleAccountMenuMsg{})
		out := ansi.Strip(f.conn.View(NavOwn{Body: "BODY"}, width, 10))
		if got := strings.Count(out, "\n") + 1; got != 10 {
			t.Fatalf("width %d: rows = %d, want 10", width, got)
		}
		if !strings.Contains(out, "Preferences") {
			t.Fatalf("width %d: account menu missing", width)
		}
		if width == desktopWidth && !strings.Contains(out, "navshell") {
			t.Fatalf("brand missing")
		}
		if width == mobileWidth && !strings.Contains(out, "Home") {
			t.Fatalf("drawer missing")
		}
	}
}
