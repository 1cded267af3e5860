// Package i18n resolves message ids to localized strings.
package i18n

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var localeFS embed.FS

// Localizer resolves a message id. Unknown ids resolve to the id itself.
type Localizer interface {
	T(id string) string
	Tf(id string, args ...any) string
}

type localeFile struct {
	Messages map[string]string `toml:"messages"`
}

// Catalog holds every embedded locale.
type Catalog struct {
	tags     []language.Tag
	messages map[language.Tag]map[string]string
	matcher  language.Matcher
}

// Load parses the embedded locale files. English is always first so it wins
// as the fallback match.
func Load() (*Catalog, error) {
	entries, err := localeFS.ReadDir("locales")
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	c := &Catalog{messages: map[language.Tag]map[string]string{}}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || path.Ext(name) != ".toml" {
			continue
		}
		tag, err := language.Parse(strings.TrimSuffix(name, ".toml"))
		if err != nil {
			return nil, fmt.Errorf("locale %s: %w", name, err)
		}
		var lf localeFile
		if _, err := toml.DecodeFS(localeFS, path.Join("locales", name), &lf); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
		c.messages[tag] = lf.Messages
		c.tags = append(c.tags, tag)
	}
	if len(c.tags) == 0 {
		return nil, fmt.Errorf("no locales embedded")
	}
	sort.SliceStable(c.tags, func(i, j int) bool {
		if c.tags[i] == language.English {
			return true
		}
		if c.tags[j] == language.English {
			return false
		}
		return c.tags[i].String() < c.tags[j].String()
	})
	c.matcher = language.NewMatcher(c.tags)
	return c, nil
}

// Locales lists the available locale codes, fallback first.
func (c *Catalog) Locales() []string {
	out := make([]string, 0, len(c.tags))
	for _, t := range c.tags {
		out = append(out, t.String())
	}
	return out
}

// For returns a localizer for the best match of the requested locale.
func (c *Catalog) For(locale string) Localizer {
	_, idx, _ := c.matcher.Match(language.Make(locale))
	tag := c.tags[idx]
	return &localizer{
		tag:      tag,
		messages: c.messages[tag],
		fallback: c.messages[c.tags[0]],
	}
}

type localizer struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
}

func (l *localizer) T(id string) string {
	if s, ok := l.messages[id]; ok {
		return s
	}
	if s, ok := l.fallback[id]; ok {
		return s
	}
	return id
}

func (l *localizer) Tf(id string, args ...any) string {
	return fmt.Sprintf(l.T(id), args...)
}

// Locale reports the locale a Localizer resolved to, or "" when unknown.
func Locale(l Localizer) string {
	switch lz := l.(type) {
	case *localizer:
		return lz.tag.String()
	case *Switch:
		return Locale(lz.current())
	}
	return ""
}

// Switch is a Localizer whose locale can be changed while the program runs.
type Switch struct {
	mu  sync.RWMutex
	cat *Catalog
	cur Localizer
}

func NewSwitch(c *Catalog, locale string) *Switch {
	return &Switch{cat: c, cur: c.For(locale)}
}

// SetLocale swaps every subsequent lookup to locale.
func (s *Switch) SetLocale(locale string) {
	next := s.cat.For(locale)
	s.mu.Lock()
	s.cur = next
	s.mu.Unlock()
}

func (s *Switch) current() Localizer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *Switch) T(id string) string { return s.current().T(id) }

func (s *Switch) Tf(id string, args ...any) string { return s.current().Tf(id, args...) }
