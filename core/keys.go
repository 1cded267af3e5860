package core

import (
	"slices"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses to actions by scope. It is shared by the
// shell and the navigation bar, and may be replaced when config changes.
type KeyRegistry struct {
	mu       sync.RWMutex
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings = append(r.bindings, binding)
}

// Replace swaps every binding at once.
func (r *KeyRegistry) Replace(bindings []KeyBinding) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings = slices.Clone(bindings)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
