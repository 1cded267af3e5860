package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/navshell/internal/state"
)

// Props is what a connected component sees: one snapshot, the shared
// actions, and the props its parent passed in.
type Props[P any] struct {
	State   state.Snapshot
	Actions Actions
	Own     P
}

// Component is a presentational component driven by Props.
type Component[P any] interface {
	// Mount is called exactly once, before the first Update or View.
	Mount(props Props[P]) tea.Cmd
	Update(props Props[P], msg tea.Msg) tea.Cmd
	View(props Props[P], width, height int) string
}

// Connected wraps a Component so that its parent supplies only own props.
// It subscribes to the store on Init and feeds the component each newer
// snapshot exactly once.
type Connected[P any] struct {
	store   *state.Store
	actions Actions
	comp    Component[P]

	sub     *state.Subscription
	snap    state.Snapshot
	mounted bool
}

func Connect[P any](store *state.Store, actions Actions, comp Component[P]) *Connected[P] {
	return &Connected[P]{store: store, actions: actions, comp: comp, snap: state.Default()}
}

// Init mounts the component. Calling it again is a no-op.
func (c *Connected[P]) Init(own P) tea.Cmd {
	if c.mounted {
		return nil
	}
	c.mounted = true
	if c.store != nil {
		c.sub, c.snap = c.store.Subscribe()
	}
	return tea.Batch(c.comp.Mount(c.props(own)), c.listen())
}

func (c *Connected[P]) listen() tea.Cmd {
	sub := c.sub
	if sub == nil {
		return nil
	}
	return func() tea.Msg {
		snap, ok := <-sub.C()
		if !ok {
			return nil
		}
		return SnapshotMsg{SubscriptionID: sub.ID(), Snapshot: snap}
	}
}

// Update routes msg to the component. Snapshots addressed to another
// subscription, or not newer than the one already applied, are dropped.
func (c *Connected[P]) Update(own P, msg tea.Msg) tea.Cmd {
	if !c.mounted {
		return nil
	}
	if m, ok := msg.(SnapshotMsg); ok {
		if c.sub == nil || m.SubscriptionID != c.sub.ID() {
			return nil
		}
		next := c.listen()
		if m.Snapshot.Revision <= c.snap.Revision {
			return next
		}
		c.snap = m.Snapshot
		return tea.Batch(c.comp.Update(c.props(own), m), next)
	}
	return c.comp.Update(c.props(own), msg)
}

func (c *Connected[P]) View(own P, width, height int) string {
	return c.comp.View(c.props(own), width, height)
}

// Unmount unsubscribes. Snapshots still in flight are ignored afterwards.
func (c *Connected[P]) Unmount() {
	if c.sub == nil {
		return
	}
	if c.store != nil {
		c.store.Unsubscribe(c.sub)
	}
	c.sub = nil
}

// Snapshot is the snapshot the component currently renders against.
func (c *Connected[P]) Snapshot() state.Snapshot { return c.snap }

func (c *Connected[P]) Component() Component[P] { return c.comp }

func (c *Connected[P]) props(own P) Props[P] {
	return Props[P]{State: c.snap, Actions: c.actions, Own: own}
}
