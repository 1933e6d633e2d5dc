package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeUnionsSetFields(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()

	local := NewSnapshot(7)
	local.CompletedProblemIDs[1] = true
	local.CompletedDates["2024-01-01"] = true
	local.Version = 2

	remote := NewSnapshot(7)
	remote.CompletedProblemIDs[2] = true
	remote.CompletedDates["2024-01-02"] = true
	remote.Version = 5

	merged := Merge(local, remote, cat, cfg)

	assert.True(t, merged.CompletedProblemIDs[1])
	assert.True(t, merged.CompletedProblemIDs[2])
	assert.True(t, merged.CompletedDates["2024-01-01"])
	assert.True(t, merged.CompletedDates["2024-01-02"])
	assert.Equal(t, int64(5), merged.Version)
}

func TestMergeRaisesPointsToImpliedFloor(t *testing.T) {
	// remote carries a higher version but a stale, lower point total than the
	// merged completion sets imply; merge must not trust it blindly
	cat := testCatalog()
	cfg := testConfig()

	local := NewSnapshot(7)
	local.CompletedProblemIDs[100] = true // worth 20
	local.Units[1] = UnitProgress{ModuleID: 1, CompletedBlockIDs: map[uint]bool{10: true, 11: true}}
	local.Points = 70
	local.Version = 3

	remote := NewSnapshot(7)
	remote.Points = 5
	remote.Version = 9

	merged := Merge(local, remote, cat, cfg)

	// 20 problem + 2*25 blocks = 70
	assert.Equal(t, 70, merged.Points)
}

func TestMergeKeepsHigherAcknowledgedPoints(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()

	local := NewSnapshot(7)
	local.Points = 40
	local.Version = 2

	remote := NewSnapshot(7)
	remote.Points = 300
	remote.Version = 8

	merged := Merge(local, remote, cat, cfg)
	assert.Equal(t, 300, merged.Points)
}

func TestMergeRecomputesDerivedModuleState(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()

	// each side completed one of module 1's two blocks; only the union
	// completes the module and unlocks module 2
	local := NewSnapshot(7)
	local.Units[1] = UnitProgress{ModuleID: 1, Unlocked: true, CompletedBlockIDs: map[uint]bool{10: true}}
	local.Version = 2

	remote := NewSnapshot(7)
	remote.Units[1] = UnitProgress{ModuleID: 1, Unlocked: true, CompletedBlockIDs: map[uint]bool{11: true}}
	remote.Units[2] = UnitProgress{ModuleID: 2, CompletedBlockIDs: map[uint]bool{}}
	remote.Version = 1

	merged := Merge(local, remote, cat, cfg)

	require.True(t, merged.Units[1].ModuleCompleted)
	assert.True(t, merged.CompletedModuleIDs[1])
	assert.True(t, merged.Units[2].Unlocked)
	assert.False(t, merged.Units[2].ModuleCompleted)
}

func TestMergeTakesMaxScalars(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()

	local := NewSnapshot(7)
	local.CurrentStreak = 4
	local.LastChallengeDate = "2024-01-04"
	local.Version = 6

	remote := NewSnapshot(7)
	remote.CurrentStreak = 2
	remote.LastChallengeDate = "2024-01-02"
	remote.Version = 3

	merged := Merge(local, remote, cat, cfg)
	assert.Equal(t, 4, merged.CurrentStreak)
	assert.Equal(t, "2024-01-04", merged.LastChallengeDate)
}

func TestMergeIsIdempotentOverEqualSnapshots(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()

	snap := NewSnapshot(7)
	snap, _ = MarkBlockComplete(snap, cat, 1, 10, "2024-01-01", nil, cfg)
	snap, _ = MarkBlockComplete(snap, cat, 1, 11, "2024-01-01", nil, cfg)

	merged := Merge(snap, snap, cat, cfg)
	assert.Equal(t, snap.Points, merged.Points)
	assert.Equal(t, snap.CurrentStreak, merged.CurrentStreak)
	assert.Equal(t, len(snap.CompletedProblemIDs), len(merged.CompletedProblemIDs))
}
