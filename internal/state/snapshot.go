// Package state holds the application-wide snapshot shared by the shell and
// the store that owns it.
package state

import "slices"

// User is the authenticated account as seen by the UI.
type User struct {
	ID        string
	Name      string
	AvatarURL string
}

// QuickAction is an entry offered by the floating action button.
type QuickAction struct {
	ID      string
	LabelID string
	Path    string
}

// Snapshot is a read-only view of global state at one revision.
// Revision 0 is the default snapshot handed out before any state exists.
type Snapshot struct {
	Revision       uint64
	CurrentUser    *User
	PendingActions []QuickAction
}

// Default returns the snapshot used when no global state has been published.
func Default() Snapshot {
	return Snapshot{PendingActions: []QuickAction{}}
}

// User reports the current user, if any.
func (s Snapshot) User() (User, bool) {
	if s.CurrentUser == nil {
		return User{}, false
	}
	return *s.CurrentUser, true
}

// Authenticated reports whether a user is present.
func (s Snapshot) Authenticated() bool {
	return s.CurrentUser != nil
}

// WithUser returns a copy of s with the user replaced. A nil user clears it.
func (s Snapshot) WithUser(u *User) Snapshot {
	next := s.clone()
	if u == nil {
		next.CurrentUser = nil
		return next
	}
	cp := *u
	next.CurrentUser = &cp
	return next
}

// WithPendingActions returns a copy of s with the pending actions replaced.
func (s Snapshot) WithPendingActions(actions []QuickAction) Snapshot {
	next := s.clone()
	next.PendingActions = slices.Clone(actions)
	if next.PendingActions == nil {
		next.PendingActions = []QuickAction{}
	}
	return next
}

func (s Snapshot) clone() Snapshot {
	out := Snapshot{Revision: s.Revision}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		out.CurrentUser = &u
	}
	out.PendingActions = slices.Clone(s.PendingActions)
	if out.PendingActions == nil {
		out.PendingActions = []QuickAction{}
	}
	return out
}
