package engine

// MarkProblemSolved credits a problem completion. Re-solving an already
// completed problem is a no-op with no events, which makes double submissions
// and replayed sync messages harmless.
//
// todaysSet is the challenge set for today, or nil when no set exists for the
// date. A problem solved on a previous day still counts toward completing
// today's set; the per-date bonus is guarded by LastChallengeDate so it is
// granted at most once per calendar date.
func MarkProblemSolved(snap Snapshot, problemID uint, rewardPoints int, today string, todaysSet *DailySet, cfg Config) (Snapshot, []Event) {
	if snap.CompletedProblemIDs[problemID] {
		return snap, nil
	}

	next := snap.Clone()
	next.CompletedProblemIDs[problemID] = true
	if rewardPoints > 0 {
		next.Points += rewardPoints
	}
	next.Version++

	events := []Event{{Kind: EventXpAwarded, Amount: rewardPoints}}

	if todaysSet != nil && todaysSet.Date == today && len(todaysSet.ProblemIDs) > 0 {
		inSet := false
		allSolved := true
		for _, pid := range todaysSet.ProblemIDs {
			if pid == problemID {
				inSet = true
			}
			if !next.CompletedProblemIDs[pid] {
				allSolved = false
			}
		}

		if inSet && allSolved && snap.LastChallengeDate != today {
			next.CurrentStreak++
			next.Points += cfg.DailyBonusXP
			next.LastChallengeDate = today
			next.CompletedDates[today] = true
			events = append(events,
				Event{Kind: EventXpAwarded, Amount: cfg.DailyBonusXP},
				Event{Kind: EventDailyChallengeCompleted, Date: today},
			)
		}
	}

	return next, events
}

// MarkBlockComplete credits a content block completion inside a module.
// Completing a block of a locked module is a silent no-op: the UI should not
// offer the action, but stale views can still race remote unlock state.
//
// A PROBLEM block chains into MarkProblemSolved so the module-level and
// global problem-level completion tracks stay consistent from a single user
// action.
func MarkBlockComplete(snap Snapshot, cat *Catalog, moduleID, blockID uint, today string, todaysSet *DailySet, cfg Config) (Snapshot, []Event) {
	mod, ok := cat.Modules[moduleID]
	if !ok {
		return snap, nil
	}

	track, ok := cat.TrackOf(moduleID)
	if !ok || IsModuleLocked(track, moduleID, snap) {
		return snap, nil
	}

	var block *Block
	for i := range mod.Blocks {
		if mod.Blocks[i].ID == blockID {
			block = &mod.Blocks[i]
			break
		}
	}
	if block == nil {
		return snap, nil
	}

	unit, exists := snap.Units[moduleID]
	if exists && unit.CompletedBlockIDs[blockID] {
		return snap, nil
	}

	next := snap.Clone()
	nu, ok := next.Units[moduleID]
	if !ok {
		nu = UnitProgress{
			ModuleID:          moduleID,
			CompletedBlockIDs: map[uint]bool{},
			Unlocked:          len(track.ModuleIDs) > 0 && track.ModuleIDs[0] == moduleID,
		}
	}
	nu.CompletedBlockIDs[blockID] = true

	next.Points += cfg.BlockXP
	events := []Event{{Kind: EventXpAwarded, Amount: cfg.BlockXP}}

	// moduleCompleted is derived: every visible block of the module present
	// in the completed set
	completed := moduleFullyCompleted(mod, nu.CompletedBlockIDs)
	if completed && !nu.ModuleCompleted {
		nu.ModuleCompleted = true
		next.CompletedModuleIDs[moduleID] = true
		events = append(events, Event{Kind: EventModuleCompleted, ModuleID: moduleID})
	}
	next.Units[moduleID] = nu

	// refresh the stored unlocked flag of the successor module for display
	// queries; lock checks always recompute instead of trusting it
	if nu.ModuleCompleted {
		if succ, ok := successorModule(track, moduleID); ok {
			su, ok := next.Units[succ]
			if !ok {
				su = UnitProgress{ModuleID: succ, CompletedBlockIDs: map[uint]bool{}}
			}
			su.Unlocked = true
			next.Units[succ] = su
		}
	}

	next.Version++

	if block.Type == BlockTypeProblem && block.ProblemID != 0 {
		chained, problemEvents := MarkProblemSolved(next, block.ProblemID, block.ProblemPoints, today, todaysSet, cfg)
		next = chained
		events = append(events, problemEvents...)
	}

	return next, events
}

func moduleFullyCompleted(mod Module, completedBlockIDs map[uint]bool) bool {
	for _, b := range mod.Blocks {
		if b.Visible && !completedBlockIDs[b.ID] {
			return false
		}
	}
	return true
}

func successorModule(track Track, moduleID uint) (uint, bool) {
	for i, id := range track.ModuleIDs {
		if id == moduleID && i+1 < len(track.ModuleIDs) {
			return track.ModuleIDs[i+1], true
		}
	}
	return 0, false
}
