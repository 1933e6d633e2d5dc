package engine

// IsModuleLocked reports whether a module is still locked for the user. The
// first module of a track is always unlocked; every other module unlocks the
// instant its predecessor is completed. Recomputed on every read, never
// cached, since completion state can change underneath (e.g. a remote sync
// landing after a solve on another device).
func IsModuleLocked(track Track, moduleID uint, snap Snapshot) bool {
	if len(track.ModuleIDs) == 0 {
		return true
	}
	if track.ModuleIDs[0] == moduleID {
		return false
	}
	for i, id := range track.ModuleIDs {
		if id != moduleID {
			continue
		}
		prev := track.ModuleIDs[i-1]
		return !snap.Units[prev].ModuleCompleted
	}
	// not part of this track
	return true
}
