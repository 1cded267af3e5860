package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Zones marks clickable regions in rendered output and resolves mouse
// events against them.
type Zones interface {
	Mark(id, s string) string
	Scan(s string) string
	Hit(id string, msg tea.MouseMsg) bool
}

// ZoneManager implements Zones on top of bubblezone.
type ZoneManager struct {
	m *zone.Manager
}

func NewZoneManager() *ZoneManager {
	return &ZoneManager{m: zone.New()}
}

func (z *ZoneManager) Mark(id, s string) string { return z.m.Mark(id, s) }

// Scan strips the zone markers from the final view and records positions.
func (z *ZoneManager) Scan(s string) string { return z.m.Scan(s) }

func (z *ZoneManager) Hit(id string, msg tea.MouseMsg) bool {
	info := z.m.Get(id)
	if info == nil || info.IsZero() {
		return false
	}
	return info.InBounds(msg)
}

// Close stops the manager's background worker.
func (z *ZoneManager) Close() { z.m.Close() }

// NoZones disables mouse zones.
type NoZones struct{}

func (NoZones) Mark(_, s string) string       { return s }
func (NoZones) Scan(s string) string          { return s }
func (NoZones) Hit(string, tea.MouseMsg) bool { return false }
