package services

import (
	"errors"
	"testing"
	"time"

	"codenexus/engine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceCatalog() *engine.Catalog {
	return &engine.Catalog{
		Tracks: []engine.Track{{ID: 1, ModuleIDs: []uint{1, 2}}},
		Modules: map[uint]engine.Module{
			1: {ID: 1, TrackID: 1, Blocks: []engine.Block{
				{ID: 10, Type: engine.BlockTypeVideo, Visible: true},
				{ID: 11, Type: engine.BlockTypeProblem, Visible: true, ProblemID: 100, ProblemPoints: 20},
			}},
			2: {ID: 2, TrackID: 1, Blocks: []engine.Block{
				{ID: 20, Type: engine.BlockTypeVideo, Visible: true},
			}},
		},
		ProblemPoints: map[uint]int{100: 20},
	}
}

func TestProgressServiceSolveProblemPersists(t *testing.T) {
	store := newFakeStore()
	svc := NewProgressService(store, engine.DefaultConfig())
	set := &engine.DailySet{Date: "2024-01-01", ProblemIDs: []uint{100}}

	snap, events := svc.SolveProblem(7, 100, 20, "2024-01-01", set)

	require.Len(t, events, 3)
	assert.Equal(t, 120, snap.Points)
	assert.Equal(t, 1, snap.CurrentStreak)

	require.True(t, svc.Queue().Flush(2*time.Second))
	saved, ok := store.saved(7)
	require.True(t, ok)
	assert.Equal(t, 120, saved.Points)
	assert.Equal(t, [2]int{120, 1}, store.accumulators[7])
}

func TestProgressServiceDuplicateSolveSkipsPersistence(t *testing.T) {
	store := newFakeStore()
	svc := NewProgressService(store, engine.DefaultConfig())

	svc.SolveProblem(7, 100, 20, "2024-01-01", nil)
	require.True(t, svc.Queue().Flush(2*time.Second))
	writes := store.saveCount

	_, events := svc.SolveProblem(7, 100, 20, "2024-01-01", nil)
	assert.Empty(t, events)

	require.True(t, svc.Queue().Flush(2*time.Second))
	assert.Equal(t, writes, store.saveCount)
}

func TestProgressServiceCompleteBlockFlow(t *testing.T) {
	store := newFakeStore()
	svc := NewProgressService(store, engine.DefaultConfig())
	cat := serviceCatalog()

	svc.CompleteBlock(7, cat, 1, 10, "2024-01-01", nil)
	snap, events := svc.CompleteBlock(7, cat, 1, 11, "2024-01-01", nil)

	require.Len(t, events, 3)
	assert.Equal(t, 70, snap.Points)
	assert.True(t, snap.Units[1].ModuleCompleted)
	assert.True(t, snap.CompletedProblemIDs[100])
}

func TestProgressServiceFallsBackToEmptySnapshot(t *testing.T) {
	store := newFakeStore()
	store.loadErr = errors.New("connection refused")
	svc := NewProgressService(store, engine.DefaultConfig())

	snap := svc.Get(7)
	assert.Equal(t, uint(7), snap.UserID)
	assert.Equal(t, 0, snap.Points)
	assert.Empty(t, snap.CompletedProblemIDs)
}

func TestProgressServiceRefreshMergesInsteadOfOverwriting(t *testing.T) {
	store := newFakeStore()
	svc := NewProgressService(store, engine.DefaultConfig())
	cat := serviceCatalog()

	// local optimistic solve, not yet visible remotely
	svc.SolveProblem(7, 100, 20, "2024-01-01", nil)
	require.True(t, svc.Queue().Flush(2*time.Second))

	// remote state from another device with a different solve
	remote := engine.NewSnapshot(7)
	remote.CompletedProblemIDs[200] = true
	remote.Points = 15
	remote.Version = 10
	store.mu.Lock()
	store.snapshots[7] = remote
	store.mu.Unlock()

	merged, err := svc.Refresh(7, cat)
	require.NoError(t, err)

	assert.True(t, merged.CompletedProblemIDs[100], "local completion survived")
	assert.True(t, merged.CompletedProblemIDs[200], "remote completion adopted")
	// merged floor: problem 100 is worth 20; remote's scalar alone undercounts
	assert.GreaterOrEqual(t, merged.Points, 20)
}

func TestProgressServiceOrdersRapidActions(t *testing.T) {
	store := newFakeStore()
	svc := NewProgressService(store, engine.DefaultConfig())
	cat := serviceCatalog()

	// back-to-back actions against the in-memory snapshot; none may be lost
	// or double-applied
	svc.CompleteBlock(7, cat, 1, 10, "2024-01-01", nil)
	svc.CompleteBlock(7, cat, 1, 11, "2024-01-01", nil)
	svc.CompleteBlock(7, cat, 2, 20, "2024-01-01", nil)
	svc.CompleteBlock(7, cat, 2, 20, "2024-01-01", nil) // duplicate

	snap := svc.Get(7)
	// 3 blocks * 25 + problem 20
	assert.Equal(t, 95, snap.Points)
	assert.True(t, snap.Units[2].ModuleCompleted)

	require.True(t, svc.Queue().Flush(2*time.Second))
	saved, ok := store.saved(7)
	require.True(t, ok)
	assert.Equal(t, 95, saved.Points)
}
