package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"
)

// Command is a palette entry. NameID is a message id resolved through the
// model's localizer.
type Command struct {
	ID          string
	NameID      string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// Search returns the commands available in scope. An empty query lists
// them enabled first, by name; otherwise results are ranked by fuzzy match.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	results := make([]CommandResult, 0, len(r.commands))
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		name := c.NameID
		if m != nil && m.loc != nil {
			name = m.loc.T(c.NameID)
		}
		disabled, reason := false, ""
		if c.Disabled != nil {
			disabled, reason = c.Disabled(m)
		}
		results = append(results, CommandResult{
			CommandID: c.ID,
			Name:      name,
			Desc:      c.Description,
			Disabled:  disabled,
			Reason:    reason,
		})
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	q := strings.TrimSpace(query)
	if q == "" {
		return results
	}
	haystack := make([]string, len(results))
	for i, res := range results {
		haystack[i] = res.Name + " " + res.Desc + " " + res.CommandID
	}
	matches := fuzzy.Find(q, haystack)
	ranked := make([]CommandResult, 0, len(matches))
	for _, match := range matches {
		ranked = append(ranked, results[match.Index])
	}
	return ranked
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
