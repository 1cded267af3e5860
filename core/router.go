package core

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/logx"
)

// Page is a routed view behind the navigation bar.
type Page interface {
	Path() string
	TitleID() string
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Scoped pages declare the key scope active while they are shown.
type Scoped interface {
	Scope() string
}

// Enterer pages are told each time they become current.
type Enterer interface {
	Enter() tea.Cmd
}

// Closer pages release resources when the shell exits.
type Closer interface {
	Close()
}

// NotFoundFunc builds the page shown for an unregistered path. suggestion
// is the closest registered path, or "".
type NotFoundFunc func(path, suggestion string) Page

// Router maps exact paths to pages.
type Router struct {
	pages    map[string]Page
	order    []string
	current  Page
	path     string
	notFound NotFoundFunc
}

func NewRouter(notFound NotFoundFunc) *Router {
	return &Router{pages: map[string]Page{}, notFound: notFound}
}

func (r *Router) Register(pages ...Page) {
	for _, p := range pages {
		if p == nil {
			continue
		}
		path := NormalizePath(p.Path())
		if _, exists := r.pages[path]; !exists {
			r.order = append(r.order, path)
		}
		r.pages[path] = p
	}
}

// Navigate requests navigation; the shell applies it with Go.
func (r *Router) Navigate(path string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Path: path} }
}

// Go makes path current and returns its page. Unknown paths resolve to the
// not-found page.
func (r *Router) Go(path string) Page {
	path = NormalizePath(path)
	r.path = path
	if p, ok := r.pages[path]; ok {
		r.current = p
		logx.Debug("navigate", "path", path)
		return p
	}
	suggestion := r.Suggest(path)
	logx.Debug("navigate to unknown path", "path", path, "suggestion", suggestion)
	if r.notFound == nil {
		r.current = nil
		return nil
	}
	r.current = r.notFound(path, suggestion)
	return r.current
}

func (r *Router) Current() Page { return r.current }

// CurrentPath is the last path passed to Go, normalised.
func (r *Router) CurrentPath() string { return r.path }

func (r *Router) Paths() []string { return slices.Clone(r.order) }

func (r *Router) Lookup(path string) (Page, bool) {
	p, ok := r.pages[NormalizePath(path)]
	return p, ok
}

// Suggest returns the registered path closest to path when it is within
// a small edit distance.
func (r *Router) Suggest(path string) string {
	best, bestDist := "", -1
	for _, candidate := range r.order {
		d := levenshtein.ComputeDistance(path, candidate)
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	if bestDist < 0 || bestDist > max(2, len(path)/3) {
		return ""
	}
	return best
}

// NormalizePath trims whitespace and trailing slashes and ensures a
// leading slash.
func NormalizePath(path string) string {
	path = strings.TrimSpace(path)
	path = strings.TrimRight(path, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// Screen is a modal layered over the page, such as the command palette.
type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type ScreenStack struct {
	items []Screen
}

func (s *ScreenStack) Push(screen Screen) {
	if screen == nil {
		return
	}
	s.items = append(s.items, screen)
}

func (s *ScreenStack) Pop() Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ScreenStack) Len() int {
	return len(s.items)
}

func (s *ScreenStack) replaceTop(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1] = screen
}

// Pages returns registered pages in registration order.
func (r *Router) Pages() []Page {
	out := make([]Page, 0, len(r.order))
	for _, p := range r.order {
		out = append(out, r.pages[p])
	}
	return out
}
