package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"codenexus/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory ProgressStore for tests
type fakeStore struct {
	mu           sync.Mutex
	snapshots    map[uint]engine.Snapshot
	saveCount    int
	failSaves    int
	loadErr      error
	accumulators map[uint][2]int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		snapshots:    map[uint]engine.Snapshot{},
		accumulators: map[uint][2]int{},
	}
}

func (f *fakeStore) LoadProgress(userID uint) (engine.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return engine.NewSnapshot(userID), f.loadErr
	}
	snap, ok := f.snapshots[userID]
	if !ok {
		return engine.NewSnapshot(userID), nil
	}
	return snap.Clone(), nil
}

func (f *fakeStore) SaveProgress(snap engine.Snapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saveCount++
	if f.failSaves > 0 {
		f.failSaves--
		return errors.New("store unavailable")
	}
	f.snapshots[snap.UserID] = snap.Clone()
	return nil
}

func (f *fakeStore) UpdateUserAccumulators(userID uint, points, streak int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accumulators[userID] = [2]int{points, streak}
	return nil
}

func (f *fakeStore) saved(userID uint) (engine.Snapshot, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	snap, ok := f.snapshots[userID]
	return snap, ok
}

func TestSyncQueuePersistsSnapshot(t *testing.T) {
	store := newFakeStore()
	q := NewSyncQueue(store)

	snap := engine.NewSnapshot(7)
	snap.Points = 120
	snap.CurrentStreak = 2
	snap.Version = 1
	q.Enqueue(snap)

	require.True(t, q.Flush(2*time.Second))

	saved, ok := store.saved(7)
	require.True(t, ok)
	assert.Equal(t, 120, saved.Points)
	assert.Equal(t, [2]int{120, 2}, store.accumulators[7])
}

func TestSyncQueueCoalescesToLatestVersion(t *testing.T) {
	store := newFakeStore()
	q := NewSyncQueue(store)

	for v := int64(1); v <= 20; v++ {
		snap := engine.NewSnapshot(7)
		snap.Points = int(v) * 10
		snap.Version = v
		q.Enqueue(snap)
	}

	require.True(t, q.Flush(2*time.Second))

	saved, ok := store.saved(7)
	require.True(t, ok)
	// intermediate versions may be skipped but the final one must land
	assert.Equal(t, int64(20), saved.Version)
	assert.Equal(t, 200, saved.Points)
}

func TestSyncQueueRetriesFailedWrites(t *testing.T) {
	store := newFakeStore()
	store.failSaves = 2

	q := NewSyncQueue(store)
	q.backoff = time.Millisecond

	snap := engine.NewSnapshot(7)
	snap.Points = 50
	snap.Version = 1
	q.Enqueue(snap)

	require.True(t, q.Flush(2*time.Second))

	saved, ok := store.saved(7)
	require.True(t, ok)
	assert.Equal(t, 50, saved.Points)
	assert.GreaterOrEqual(t, store.saveCount, 3)
}

func TestSyncQueueKeepsUsersIndependent(t *testing.T) {
	store := newFakeStore()
	q := NewSyncQueue(store)

	for _, id := range []uint{1, 2, 3} {
		snap := engine.NewSnapshot(id)
		snap.Points = int(id) * 100
		snap.Version = 1
		q.Enqueue(snap)
	}

	require.True(t, q.Flush(2*time.Second))

	for _, id := range []uint{1, 2, 3} {
		saved, ok := store.saved(id)
		require.True(t, ok, "user %d", id)
		assert.Equal(t, int(id)*100, saved.Points)
	}
}
