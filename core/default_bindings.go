package core

import "strings"

// Page scopes. Pages that take text input use ScopeForm so single letter
// bindings do not steal their keys.
const (
	ScopePage        = "page"
	ScopeForm        = "page:form"
	ScopePreferences = "page:preferences"
	ScopeCommand     = "screen:command"
)

const (
	ActionQuit        = "quit"
	ActionPalette     = "open-command-palette"
	ActionClose       = "close"
	ActionCycleLocale = "cycle-locale"
	ActionWiden       = "breakpoint-up"
	ActionNarrow      = "breakpoint-down"
	ActionSave        = "save"
)

func DefaultKeyBindings() []KeyBinding {
	pages := []string{ScopePage, ScopePreferences}
	anyPage := []string{ScopePage, ScopePreferences, ScopeForm}
	return []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "quit", Scopes: pages},
		{Keys: []string{"ctrl+k"}, Action: ActionPalette, Description: "commands", Scopes: anyPage},
		{Keys: []string{"m"}, Action: ActionOpenDrawer, Description: "menu", Scopes: pages},
		{Keys: []string{"ctrl+o"}, Action: ActionOpenDrawer, Description: "menu", Scopes: []string{ScopeForm}},
		{Keys: []string{"a"}, Action: ActionAccountMenu, Description: "account", Scopes: pages},
		{Keys: []string{"ctrl+p"}, Action: ActionAccountMenu, Description: "account", Scopes: []string{ScopeForm}},
		{Keys: []string{"l"}, Action: ActionCycleLocale, Description: "language", Scopes: []string{ScopePreferences}},
		{Keys: []string{"+", "="}, Action: ActionWiden, Description: "breakpoint +", Scopes: []string{ScopePreferences}},
		{Keys: []string{"-"}, Action: ActionNarrow, Description: "breakpoint -", Scopes: []string{ScopePreferences}},
		{Keys: []string{"s"}, Action: ActionSave, Description: "save", Scopes: []string{ScopePreferences}},
		{Keys: []string{"j", "down"}, Action: ActionNavDown, Description: "down", Scopes: []string{ScopeDrawer, ScopeAccount}},
		{Keys: []string{"k", "up"}, Action: ActionNavUp, Description: "up", Scopes: []string{ScopeDrawer, ScopeAccount}},
		{Keys: []string{"enter"}, Action: ActionSelect, Description: "open", Scopes: []string{ScopeDrawer, ScopeAccount, ScopeCommand}},
		{Keys: []string{"esc"}, Action: ActionDismiss, Description: "close", Scopes: []string{ScopeDrawer, ScopeAccount}},
		{Keys: []string{"esc"}, Action: ActionClose, Description: "close", Scopes: []string{ScopeCommand}},
	}
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings overrides the keys of every binding whose action
// appears in actionKeys. Scopes and descriptions are kept.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
