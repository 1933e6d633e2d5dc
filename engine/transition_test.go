package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{BlockXP: 25, DailyBonusXP: 100}
}

// single track, two modules: module 1 has a video and a problem block,
// module 2 has a single video block
func testCatalog() *Catalog {
	return &Catalog{
		Tracks: []Track{{ID: 1, ModuleIDs: []uint{1, 2}}},
		Modules: map[uint]Module{
			1: {ID: 1, TrackID: 1, Blocks: []Block{
				{ID: 10, Type: BlockTypeVideo, Visible: true},
				{ID: 11, Type: BlockTypeProblem, Visible: true, ProblemID: 100, ProblemPoints: 20},
			}},
			2: {ID: 2, TrackID: 1, Blocks: []Block{
				{ID: 20, Type: BlockTypeVideo, Visible: true},
			}},
		},
		ProblemPoints: map[uint]int{100: 20},
	}
}

func TestMarkProblemSolvedCompletesDailyChallenge(t *testing.T) {
	snap := NewSnapshot(7)
	set := &DailySet{Date: "2024-01-01", ProblemIDs: []uint{1}}

	next, events := MarkProblemSolved(snap, 1, 10, "2024-01-01", set, testConfig())

	assert.Equal(t, 110, next.Points)
	assert.Equal(t, 1, next.CurrentStreak)
	assert.Equal(t, "2024-01-01", next.LastChallengeDate)
	assert.True(t, next.CompletedProblemIDs[1])
	assert.True(t, next.CompletedDates["2024-01-01"])

	require.Len(t, events, 3)
	assert.Equal(t, Event{Kind: EventXpAwarded, Amount: 10}, events[0])
	assert.Equal(t, Event{Kind: EventXpAwarded, Amount: 100}, events[1])
	assert.Equal(t, Event{Kind: EventDailyChallengeCompleted, Date: "2024-01-01"}, events[2])

	// input snapshot untouched
	assert.Equal(t, 0, snap.Points)
	assert.False(t, snap.CompletedProblemIDs[1])
}

func TestMarkProblemSolvedIsIdempotent(t *testing.T) {
	set := &DailySet{Date: "2024-01-01", ProblemIDs: []uint{1}}
	cfg := testConfig()

	once, _ := MarkProblemSolved(NewSnapshot(7), 1, 10, "2024-01-01", set, cfg)
	twice, events := MarkProblemSolved(once, 1, 10, "2024-01-01", set, cfg)

	assert.Empty(t, events)
	assert.Equal(t, once.Points, twice.Points)
	assert.Equal(t, once.CurrentStreak, twice.CurrentStreak)
	assert.Equal(t, once.Version, twice.Version)
}

func TestMarkProblemSolvedNoSetForToday(t *testing.T) {
	next, events := MarkProblemSolved(NewSnapshot(7), 1, 10, "2024-01-01", nil, testConfig())

	assert.Equal(t, 10, next.Points)
	assert.Equal(t, 0, next.CurrentStreak)
	require.Len(t, events, 1)
	assert.Equal(t, EventXpAwarded, events[0].Kind)
}

func TestMarkProblemSolvedBonusGrantedOncePerDate(t *testing.T) {
	// the bonus was already credited today; a replayed solve of another set
	// problem must not re-grant it
	cfg := testConfig()
	set := &DailySet{Date: "2024-01-01", ProblemIDs: []uint{1, 2}}

	snap := NewSnapshot(7)
	snap.CompletedProblemIDs[1] = true
	snap.LastChallengeDate = "2024-01-01"
	snap.CurrentStreak = 3

	next, events := MarkProblemSolved(snap, 2, 10, "2024-01-01", set, cfg)

	assert.Equal(t, 10, next.Points)
	assert.Equal(t, 3, next.CurrentStreak)
	require.Len(t, events, 1)
}

func TestMarkProblemSolvedCountsEarlierSolves(t *testing.T) {
	// a set problem solved on a previous day still counts toward "every
	// problem solved": completion is cumulative, not same-day-only
	set := &DailySet{Date: "2024-01-02", ProblemIDs: []uint{1, 2}}

	snap := NewSnapshot(7)
	snap.CompletedProblemIDs[1] = true
	snap.Points = 10
	snap.LastChallengeDate = "2024-01-01"
	snap.CurrentStreak = 1

	next, events := MarkProblemSolved(snap, 2, 15, "2024-01-02", set, testConfig())

	assert.Equal(t, 10+15+100, next.Points)
	assert.Equal(t, 2, next.CurrentStreak)
	assert.Equal(t, "2024-01-02", next.LastChallengeDate)
	require.Len(t, events, 3)
}

func TestMarkProblemSolvedOutsideSetNeverTriggersBonus(t *testing.T) {
	// the triggering problem must belong to today's set for the bonus check
	set := &DailySet{Date: "2024-01-01", ProblemIDs: []uint{1}}

	snap := NewSnapshot(7)
	snap.CompletedProblemIDs[1] = true // set already fully solved earlier

	next, events := MarkProblemSolved(snap, 99, 10, "2024-01-01", set, testConfig())

	assert.Equal(t, 10, next.Points)
	assert.Equal(t, 0, next.CurrentStreak)
	require.Len(t, events, 1)
}

func TestMarkBlockCompleteModuleFlow(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()
	snap := NewSnapshot(7)

	// video block: 25 XP, module not yet complete
	afterVideo, events := MarkBlockComplete(snap, cat, 1, 10, "2024-01-01", nil, cfg)
	require.Len(t, events, 1)
	assert.Equal(t, Event{Kind: EventXpAwarded, Amount: 25}, events[0])
	assert.Equal(t, 25, afterVideo.Points)
	assert.False(t, afterVideo.Units[1].ModuleCompleted)

	// problem block: 25 block XP + 20 problem XP, module completes exactly now
	final, events := MarkBlockComplete(afterVideo, cat, 1, 11, "2024-01-01", nil, cfg)
	require.Len(t, events, 3)
	assert.Equal(t, Event{Kind: EventXpAwarded, Amount: 25}, events[0])
	assert.Equal(t, Event{Kind: EventModuleCompleted, ModuleID: 1}, events[1])
	assert.Equal(t, Event{Kind: EventXpAwarded, Amount: 20}, events[2])

	assert.Equal(t, 70, final.Points)
	assert.True(t, final.Units[1].ModuleCompleted)
	assert.True(t, final.CompletedModuleIDs[1])
	assert.True(t, final.CompletedProblemIDs[100])
	assert.True(t, final.Units[2].Unlocked)
}

func TestMarkBlockCompleteIsIdempotent(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()

	once, _ := MarkBlockComplete(NewSnapshot(7), cat, 1, 10, "2024-01-01", nil, cfg)
	twice, events := MarkBlockComplete(once, cat, 1, 10, "2024-01-01", nil, cfg)

	assert.Empty(t, events)
	assert.Equal(t, once.Points, twice.Points)
	assert.Equal(t, once.Version, twice.Version)
}

func TestMarkBlockCompleteLockedModuleIsSilentNoop(t *testing.T) {
	cat := testCatalog()

	next, events := MarkBlockComplete(NewSnapshot(7), cat, 2, 20, "2024-01-01", nil, testConfig())

	assert.Empty(t, events)
	assert.Equal(t, 0, next.Points)
	assert.Empty(t, next.Units)
}

func TestMarkBlockCompleteUnknownBlockIsNoop(t *testing.T) {
	cat := testCatalog()

	next, events := MarkBlockComplete(NewSnapshot(7), cat, 1, 999, "2024-01-01", nil, testConfig())

	assert.Empty(t, events)
	assert.Equal(t, 0, next.Points)
}

func TestMarkBlockCompleteIgnoresHiddenBlocks(t *testing.T) {
	cat := testCatalog()
	mod := cat.Modules[1]
	mod.Blocks = append(mod.Blocks, Block{ID: 12, Type: BlockTypePDF, Visible: false})
	cat.Modules[1] = mod

	snap, _ := MarkBlockComplete(NewSnapshot(7), cat, 1, 10, "2024-01-01", nil, testConfig())
	snap, _ = MarkBlockComplete(snap, cat, 1, 11, "2024-01-01", nil, testConfig())

	// hidden block 12 is not required for completion
	assert.True(t, snap.Units[1].ModuleCompleted)
}

func TestPointsAndSetsAreMonotonic(t *testing.T) {
	cat := testCatalog()
	cfg := testConfig()
	set := &DailySet{Date: "2024-01-01", ProblemIDs: []uint{100}}

	snap := NewSnapshot(7)
	steps := []func(Snapshot) Snapshot{
		func(s Snapshot) Snapshot { n, _ := MarkBlockComplete(s, cat, 1, 10, "2024-01-01", set, cfg); return n },
		func(s Snapshot) Snapshot { n, _ := MarkBlockComplete(s, cat, 1, 11, "2024-01-01", set, cfg); return n },
		func(s Snapshot) Snapshot { n, _ := MarkProblemSolved(s, 100, 20, "2024-01-01", set, cfg); return n },
		func(s Snapshot) Snapshot { n, _ := MarkBlockComplete(s, cat, 2, 20, "2024-01-01", set, cfg); return n },
		func(s Snapshot) Snapshot { n, _ := MarkProblemSolved(s, 5, 30, "2024-01-01", set, cfg); return n },
	}

	for i, step := range steps {
		next := step(snap)
		assert.GreaterOrEqual(t, next.Points, snap.Points, "step %d decreased points", i)
		assert.GreaterOrEqual(t, len(next.CompletedProblemIDs), len(snap.CompletedProblemIDs), "step %d shrank solved set", i)
		assert.GreaterOrEqual(t, next.CurrentStreak, snap.CurrentStreak, "step %d decreased streak", i)
		snap = next
	}
}

func TestStreakCreditedAtMostOncePerDate(t *testing.T) {
	cfg := testConfig()
	set := &DailySet{Date: "2024-01-01", ProblemIDs: []uint{1, 2}}

	snap := NewSnapshot(7)
	snap, _ = MarkProblemSolved(snap, 1, 10, "2024-01-01", set, cfg)
	snap, _ = MarkProblemSolved(snap, 2, 10, "2024-01-01", set, cfg)
	require.Equal(t, 1, snap.CurrentStreak)

	// replayed completions of the same date
	snap, _ = MarkProblemSolved(snap, 1, 10, "2024-01-01", set, cfg)
	snap, _ = MarkProblemSolved(snap, 2, 10, "2024-01-01", set, cfg)
	assert.Equal(t, 1, snap.CurrentStreak)
}

func TestModuleCompletionDerivation(t *testing.T) {
	// after any interleaving, moduleCompleted must equal "all visible blocks
	// completed" for every module
	cat := testCatalog()
	cfg := testConfig()

	orders := [][][2]uint{
		{{1, 10}, {1, 11}, {2, 20}},
		{{1, 11}, {1, 10}, {2, 20}},
	}

	for _, order := range orders {
		snap := NewSnapshot(7)
		for _, pair := range order {
			snap, _ = MarkBlockComplete(snap, cat, pair[0], pair[1], "2024-01-01", nil, cfg)
		}
		for id, mod := range cat.Modules {
			expected := true
			for _, b := range mod.Blocks {
				if b.Visible && !snap.Units[id].CompletedBlockIDs[b.ID] {
					expected = false
				}
			}
			assert.Equal(t, expected, snap.Units[id].ModuleCompleted, "module %d", id)
		}
	}
}
