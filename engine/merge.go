package engine

// Merge reconciles a locally-mutated snapshot with a remotely-fetched one.
// Set-valued fields merge by union: completion is monotonic, and either side
// may hold unsynced-but-valid completions. Scalars start from whichever side
// carries the higher version, then points are raised to the floor the merged
// completion sets imply, so a stale remote total can never erase credited
// work. Derived module state is recomputed from the merged sets.
func Merge(local, remote Snapshot, cat *Catalog, cfg Config) Snapshot {
	base := local
	if remote.Version > local.Version {
		base = remote
	}
	out := base.Clone()

	for pid := range local.CompletedProblemIDs {
		out.CompletedProblemIDs[pid] = true
	}
	for pid := range remote.CompletedProblemIDs {
		out.CompletedProblemIDs[pid] = true
	}
	for d := range local.CompletedDates {
		out.CompletedDates[d] = true
	}
	for d := range remote.CompletedDates {
		out.CompletedDates[d] = true
	}

	mergeUnits(&out, local)
	mergeUnits(&out, remote)

	// re-derive moduleCompleted and unlocked from the merged block sets
	for id, u := range out.Units {
		mod, ok := cat.Modules[id]
		if !ok {
			continue
		}
		u.ModuleCompleted = moduleFullyCompleted(mod, u.CompletedBlockIDs)
		out.Units[id] = u
		if u.ModuleCompleted {
			out.CompletedModuleIDs[id] = true
		}
	}
	for id, u := range out.Units {
		if track, ok := cat.TrackOf(id); ok {
			u.Unlocked = !IsModuleLocked(track, id, out)
			out.Units[id] = u
		}
	}

	if floor := ImpliedPoints(out, cat, cfg); out.Points < floor {
		out.Points = floor
	}
	if local.CurrentStreak > out.CurrentStreak {
		out.CurrentStreak = local.CurrentStreak
	}
	if remote.CurrentStreak > out.CurrentStreak {
		out.CurrentStreak = remote.CurrentStreak
	}
	// ISO dates compare lexically
	if local.LastChallengeDate > out.LastChallengeDate {
		out.LastChallengeDate = local.LastChallengeDate
	}
	if remote.LastChallengeDate > out.LastChallengeDate {
		out.LastChallengeDate = remote.LastChallengeDate
	}
	if local.Version > out.Version {
		out.Version = local.Version
	}
	if remote.Version > out.Version {
		out.Version = remote.Version
	}

	return out
}

func mergeUnits(out *Snapshot, src Snapshot) {
	for id, su := range src.Units {
		u, ok := out.Units[id]
		if !ok {
			u = UnitProgress{ModuleID: id, CompletedBlockIDs: map[uint]bool{}}
		}
		for bid := range su.CompletedBlockIDs {
			u.CompletedBlockIDs[bid] = true
		}
		u.Unlocked = u.Unlocked || su.Unlocked
		out.Units[id] = u
	}
}

// ImpliedPoints computes the minimum point total consistent with the
// snapshot's completion sets: problem rewards plus per-block XP plus one
// daily bonus per fully-completed date. Unknown problem ids contribute
// nothing.
func ImpliedPoints(snap Snapshot, cat *Catalog, cfg Config) int {
	total := 0
	for pid := range snap.CompletedProblemIDs {
		total += cat.ProblemPoints[pid]
	}
	for _, u := range snap.Units {
		total += cfg.BlockXP * len(u.CompletedBlockIDs)
	}
	total += cfg.DailyBonusXP * len(snap.CompletedDates)
	return total
}
