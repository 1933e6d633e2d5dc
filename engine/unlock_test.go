package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstModuleIsNeverLocked(t *testing.T) {
	track := Track{ID: 1, ModuleIDs: []uint{1, 2, 3}}
	assert.False(t, IsModuleLocked(track, 1, NewSnapshot(7)))
}

func TestModuleLockedUntilPredecessorCompletes(t *testing.T) {
	track := Track{ID: 1, ModuleIDs: []uint{1, 2, 3}}
	snap := NewSnapshot(7)

	assert.True(t, IsModuleLocked(track, 2, snap))
	assert.True(t, IsModuleLocked(track, 3, snap))

	// module 2 unlocks the instant module 1 flips to completed, with no
	// explicit unlock call
	snap.Units[1] = UnitProgress{ModuleID: 1, ModuleCompleted: true, CompletedBlockIDs: map[uint]bool{}}
	assert.False(t, IsModuleLocked(track, 2, snap))
	assert.True(t, IsModuleLocked(track, 3, snap))
}

func TestUnlockUsesCompletionStateNotStoredFlag(t *testing.T) {
	track := Track{ID: 1, ModuleIDs: []uint{1, 2}}
	snap := NewSnapshot(7)

	// stale stored flag claims module 2 is unlocked; the recomputation must
	// override it while module 1 is incomplete
	snap.Units[2] = UnitProgress{ModuleID: 2, Unlocked: true, CompletedBlockIDs: map[uint]bool{}}
	assert.True(t, IsModuleLocked(track, 2, snap))
}

func TestUnknownModuleIsLocked(t *testing.T) {
	track := Track{ID: 1, ModuleIDs: []uint{1, 2}}
	assert.True(t, IsModuleLocked(track, 99, NewSnapshot(7)))
	assert.True(t, IsModuleLocked(Track{}, 1, NewSnapshot(7)))
}
