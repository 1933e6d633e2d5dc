// Package engine holds the progress accounting core: pure transition
// functions over in-memory snapshots. The engine performs no I/O, reads no
// clocks and touches no globals; catalog data, today's date and the XP
// configuration are always passed in by the caller.
package engine

// Config carries the tunable XP constants
type Config struct {
	BlockXP      int // awarded once per completed content block
	DailyBonusXP int // awarded once per fully-solved daily challenge set
}

// DefaultConfig mirrors the product defaults
func DefaultConfig() Config {
	return Config{BlockXP: 25, DailyBonusXP: 100}
}

// Event kinds emitted by transitions, consumed by the UI as toasts
const (
	EventXpAwarded               = "XP_AWARDED"
	EventModuleCompleted         = "MODULE_COMPLETED"
	EventDailyChallengeCompleted = "DAILY_CHALLENGE_COMPLETED"
)

// Event is one entry of the ordered notification list returned by a
// transition. Order matters: the problem XP toast precedes the bonus toast.
type Event struct {
	Kind     string `json:"kind"`
	Amount   int    `json:"amount,omitempty"`
	ModuleID uint   `json:"module_id,omitempty"`
	Date     string `json:"date,omitempty"`
}

// UnitProgress is the per-module slice of a snapshot
type UnitProgress struct {
	ModuleID          uint
	CompletedBlockIDs map[uint]bool
	Unlocked          bool
	ModuleCompleted   bool
}

// Snapshot is one user's full progress state. Transitions treat it as
// immutable: they clone, mutate the clone and return it.
type Snapshot struct {
	UserID              uint
	Points              int
	CurrentStreak       int
	LastChallengeDate   string // ISO date of the last credited full-day completion
	CompletedProblemIDs map[uint]bool
	CompletedDates      map[string]bool
	CompletedModuleIDs  map[uint]bool
	Units               map[uint]UnitProgress
	Version             int64 // bumped on every mutation, orders persistence writes
}

// NewSnapshot returns the all-zero progress state created at first login
func NewSnapshot(userID uint) Snapshot {
	return Snapshot{
		UserID:              userID,
		CompletedProblemIDs: map[uint]bool{},
		CompletedDates:      map[string]bool{},
		CompletedModuleIDs:  map[uint]bool{},
		Units:               map[uint]UnitProgress{},
	}
}

// Clone deep-copies the snapshot
func (s Snapshot) Clone() Snapshot {
	out := s
	out.CompletedProblemIDs = copyUintSet(s.CompletedProblemIDs)
	out.CompletedDates = copyStringSet(s.CompletedDates)
	out.CompletedModuleIDs = copyUintSet(s.CompletedModuleIDs)
	out.Units = make(map[uint]UnitProgress, len(s.Units))
	for id, u := range s.Units {
		cu := u
		cu.CompletedBlockIDs = copyUintSet(u.CompletedBlockIDs)
		out.Units[id] = cu
	}
	return out
}

func copyUintSet(in map[uint]bool) map[uint]bool {
	out := make(map[uint]bool, len(in))
	for k, v := range in {
		if v {
			out[k] = true
		}
	}
	return out
}

func copyStringSet(in map[string]bool) map[string]bool {
	out := make(map[string]bool, len(in))
	for k, v := range in {
		if v {
			out[k] = true
		}
	}
	return out
}

// Content block type discriminators, mirrored by the curriculum models
const (
	BlockTypeVideo   = "VIDEO"
	BlockTypePDF     = "PDF"
	BlockTypeProblem = "PROBLEM"
)

// Block is the catalog view of one content block
type Block struct {
	ID            uint
	Type          string // VIDEO, PDF, PROBLEM
	Visible       bool
	ProblemID     uint
	ProblemPoints int
}

// Module is the catalog view of one module with its blocks in stored order
type Module struct {
	ID      uint
	TrackID uint
	Blocks  []Block
}

// Track is the catalog view of one track; ModuleIDs is in stored order and
// establishes unlock ordering
type Track struct {
	ID        uint
	ModuleIDs []uint
}

// Catalog is the read-only curriculum view the engine evaluates against
type Catalog struct {
	Tracks        []Track
	Modules       map[uint]Module
	ProblemPoints map[uint]int
}

// TrackOf resolves the track a module belongs to
func (c *Catalog) TrackOf(moduleID uint) (Track, bool) {
	mod, ok := c.Modules[moduleID]
	if !ok {
		return Track{}, false
	}
	for _, t := range c.Tracks {
		if t.ID == mod.TrackID {
			return t, true
		}
	}
	return Track{}, false
}

// DailySet is the challenge set assigned to one calendar date
type DailySet struct {
	Date       string
	ProblemIDs []uint
}
