package state

import (
	"sync"

	"github.com/jask/navshell/internal/logx"
)

// Store owns the single authoritative snapshot. Writers replace it whole;
// subscribers receive the latest revision through a one-slot mailbox, so a
// burst of replacements coalesces into the newest one.
type Store struct {
	mu     sync.Mutex
	snap   Snapshot
	has    bool
	nextID uint64
	subs   map[uint64]*Subscription
}

// Subscription is a single subscriber's mailbox.
type Subscription struct {
	id     uint64
	ch     chan Snapshot
	closed bool
}

// ID identifies the subscription within its store.
func (s *Subscription) ID() uint64 { return s.id }

// C yields snapshots in revision order. It is closed on unsubscribe.
func (s *Subscription) C() <-chan Snapshot { return s.ch }

// NewStore creates a store. A nil initial snapshot means no state exists yet.
func NewStore(initial *Snapshot) *Store {
	st := &Store{subs: map[uint64]*Subscription{}}
	if initial != nil {
		st.snap = initial.clone()
		st.snap.Revision = 1
		st.has = true
	}
	return st
}

// Current returns the latest snapshot, or Default when nothing was published.
func (st *Store) Current() Snapshot {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.currentLocked()
}

func (st *Store) currentLocked() Snapshot {
	if !st.has {
		return Default()
	}
	return st.snap.clone()
}

// Replace swaps in next and returns the revision assigned to it.
func (st *Store) Replace(next Snapshot) uint64 {
	return st.Update(func(Snapshot) Snapshot { return next })
}

// Update applies fn to the current snapshot and publishes the result.
func (st *Store) Update(fn func(Snapshot) Snapshot) uint64 {
	st.mu.Lock()
	defer st.mu.Unlock()
	next := fn(st.currentLocked()).clone()
	next.Revision = st.snap.Revision + 1
	st.snap = next
	st.has = true
	for _, sub := range st.subs {
		deliver(sub, next)
	}
	logx.Debug("snapshot published",
		"revision", next.Revision,
		"authenticated", next.Authenticated(),
		"pending_actions", len(next.PendingActions),
		"subscribers", len(st.subs))
	return next.Revision
}

// deliver drops any undelivered snapshot before sending the new one. Callers
// hold st.mu, which serialises publishers and keeps delivery monotonic.
func deliver(sub *Subscription, snap Snapshot) {
	select {
	case <-sub.ch:
	default:
	}
	sub.ch <- snap.clone()
}

// Subscribe registers a subscriber and returns the snapshot current at the
// moment of registration. Later revisions arrive on the subscription.
func (st *Store) Subscribe() (*Subscription, Snapshot) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.nextID++
	sub := &Subscription{id: st.nextID, ch: make(chan Snapshot, 1)}
	st.subs[sub.id] = sub
	return sub, st.currentLocked()
}

// Unsubscribe removes sub and closes its channel. Safe to call twice.
func (st *Store) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	if sub.closed {
		return
	}
	sub.closed = true
	delete(st.subs, sub.id)
	close(sub.ch)
}

// Subscribers returns the number of live subscriptions.
func (st *Store) Subscribers() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.subs)
}
