package state

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/navshell/internal/logx"
)

func TestCurrentWithoutStateIsDefault(t *testing.T) {
	t.Parallel()

	st := NewStore(nil)
	snap := st.Current()
	require.Equal(t, uint64(0), snap.Revision)
	require.False(t, snap.Authenticated())
	require.NotNil(t, snap.PendingActions)
	require.Empty(t, snap.PendingActions)
}

func TestReplaceAssignsIncreasingRevisions(t *testing.T) {
	t.Parallel()

	st := NewStore(&Snapshot{})
	require.Equal(t, uint64(1), st.Current().Revision)
	r2 := st.Replace(Default().WithUser(&User{Name: "Ada"}))
	r3 := st.Replace(Default())
	require.Equal(t, uint64(2), r2)
	require.Equal(t, uint64(3), r3)
	require.False(t, st.Current().Authenticated())
}

func TestSubscribeReturnsCurrentAndCoalesces(t *testing.T) {
	t.Parallel()

	st := NewStore(nil)
	sub, first := st.Subscribe()
	require.Equal(t, uint64(0), first.Revision)

	st.Update(func(s Snapshot) Snapshot { return s.WithUser(&User{Name: "Ada"}) })
	st.Update(func(s Snapshot) Snapshot { return s.WithPendingActions([]QuickAction{{ID: "x"}}) })
	last := st.Update(func(s Snapshot) Snapshot { return s.WithUser(nil) })

	got := <-sub.C()
	require.Equal(t, last, got.Revision)
	require.False(t, got.Authenticated())
	require.Len(t, got.PendingActions, 1)

	select {
	case extra := <-sub.C():
		t.Fatalf("expected coalesced delivery, got extra revision %d", extra.Revision)
	default:
	}
}

func TestDeliveryIsMonotonicUnderConcurrentWriters(t *testing.T) {
	t.Parallel()

	st := NewStore(nil)
	sub, _ := st.Subscribe()
	done := make(chan struct{})
	var seen []uint64
	go func() {
		defer close(done)
		for snap := range sub.C() {
			seen = append(seen, snap.Revision)
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				st.Update(func(s Snapshot) Snapshot { return s })
			}
		}()
	}
	wg.Wait()
	st.Unsubscribe(sub)
	<-done

	for i := 1; i < len(seen); i++ {
		require.Greater(t, seen[i], seen[i-1])
	}
}

func TestSnapshotsAreIsolatedCopies(t *testing.T) {
	t.Parallel()

	actions := []QuickAction{{ID: "a", LabelID: "page.home", Path: "/"}}
	st := NewStore(nil)
	st.Replace(Default().WithPendingActions(actions).WithUser(&User{Name: "Ada"}))
	actions[0].ID = "mutated"

	snap := st.Current()
	require.Equal(t, "a", snap.PendingActions[0].ID)
	snap.PendingActions[0].ID = "local"
	snap.CurrentUser.Name = "Eve"

	again := st.Current()
	require.Equal(t, "a", again.PendingActions[0].ID)
	require.Equal(t, "Ada", again.CurrentUser.Name)
}

func TestUnsubscribeClosesAndIsIdempotent(t *testing.T) {
	t.Parallel()

	st := NewStore(nil)
	sub, _ := st.Subscribe()
	require.Equal(t, 1, st.Subscribers())
	st.Unsubscribe(sub)
	st.Unsubscribe(sub)
	require.Equal(t, 0, st.Subscribers())
	_, ok := <-sub.C()
	require.False(t, ok)

	st.Replace(Default())
}

func TestUpdateLogsPublishedRevision(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navshell.log")
	closer, err := logx.Init(logx.Options{Path: path, Level: "debug"})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = logx.Init(logx.Options{}) })

	st := NewStore(nil)
	st.Replace(Snapshot{PendingActions: []QuickAction{{ID: "a"}}})
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"snapshot published"`)
	require.Contains(t, string(data), `"revision":1`)
	require.Contains(t, string(data), `"pending_actions":1`)
}
