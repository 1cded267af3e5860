package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type fakePage struct {
	path    string
	scope   string
	keys    int
	entered int
	closed  bool
	last    tea.Msg
}

func (p *fakePage) Path() string    { return p.path }
func (p *fakePage) TitleID() string { return "page.home" }
func (p *fakePage) Scope() string {
	if p.scope == "" {
		return ScopePage
	}
	return p.scope
}
func (p *fakePage) Enter() tea.Cmd { p.entered++; return nil }
func (p *fakePage) Close()         { p.closed = true }
func (p *fakePage) View(int, int) string {
	return "page " + p.path
}
func (p *fakePage) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tea.KeyMsg); ok {
		p.keys++
	}
	p.last = msg
	return nil
}

type notFoundPage struct {
	fakePage
	suggestion string
}

func TestRouterResolvesNormalisedPaths(t *testing.T) {
	home, about := &fakePage{path: "/"}, &fakePage{path: "/about"}
	r := NewRouter(nil)
	r.Register(home, about, nil)

	if got := r.Go("/about/"); got != about {
		t.Fatalf("expected about page, got %#v", got)
	}
	if r.CurrentPath() != "/about" {
		t.Fatalf("current path = %q", r.CurrentPath())
	}
	if got := r.Go(""); got != home {
		t.Fatalf("empty path should resolve home")
	}
	if got := r.Paths(); len(got) != 2 || got[0] != "/" || got[1] != "/about" {
		t.Fatalf("paths = %v", got)
	}
}

func TestRouterNotFoundSuggestsClosestPath(t *testing.T) {
	var nf *notFoundPage
	r := NewRouter(func(path, suggestion string) Page {
		nf = &notFoundPage{fakePage: fakePage{path: path}, suggestion: suggestion}
		return nf
	})
	r.Register(&fakePage{path: "/"}, &fakePage{path: "/about"}, &fakePage{path: "/profile"})

	page := r.Go("/abuot")
	if page != Page(nf) || nf.suggestion != "/about" {
		t.Fatalf("expected not-found page suggesting /about, got %+v", nf)
	}
	r.Go("/completely-unrelated-place")
	if nf.suggestion != "" {
		t.Fatalf("did not expect a suggestion, got %q", nf.suggestion)
	}
	if r.CurrentPath() != "/completely-unrelated-place" {
		t.Fatalf("current path = %q", r.CurrentPath())
	}
}

func TestRouterNavigateEmitsMessage(t *testing.T) {
	r := NewRouter(nil)
	msg := r.Navigate("/about")()
	nav, ok := msg.(NavigateMsg)
	if !ok || nav.Path != "/about" {
		t.Fatalf("unexpected message %#v", msg)
	}
}

func TestScreenStack(t *testing.T) {
	var s ScreenStack
	if s.Pop() != nil || s.Top() != nil {
		t.Fatalf("empty stack should return nil")
	}
	a, b := &fakeScreen{}, &fakeScreen{}
	s.Push(a)
	s.Push(nil)
	s.Push(b)
	if s.Len() != 2 || s.Top() != Screen(b) {
		t.Fatalf("unexpected stack state")
	}
	if s.Pop() != Screen(b) || s.Top() != Screen(a) {
		t.Fatalf("pop order wrong")
	}
}
