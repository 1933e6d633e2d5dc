package progress

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserProgress is the per-user accumulator row. Set-valued completion state
// lives in SolvedProblem, CompletedDate and UnitProgress rows; this row holds
// the scalars plus a monotonic version used to order concurrent writes.
type UserProgress struct {
	gorm.Model
	UserID            uint   `json:"user_id" gorm:"uniqueIndex;not null"`
	Points            int    `json:"points" gorm:"default:0"`
	CurrentStreak     int    `json:"current_streak" gorm:"default:0"`
	LastChallengeDate string `json:"last_challenge_date" gorm:"size:10;default:''"`
	Version           int64  `json:"version" gorm:"default:0"`
	IsDeleted         bool   `gorm:"default:false"`
}

// SolvedProblem records one globally-completed problem. Append-only; a solve
// is never revoked.
type SolvedProblem struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index:idx_user_problem,unique;not null"`
	ProblemID uint `json:"problem_id" gorm:"index:idx_user_problem,unique;not null"`
	IsDeleted bool `gorm:"default:false"`
}

// CompletedDate records a calendar date on which the user fully completed
// that date's challenge set
type CompletedDate struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index:idx_user_date,unique;not null"`
	Date      string `json:"date" gorm:"index:idx_user_date,unique;size:10;not null"`
	IsDeleted bool   `gorm:"default:false"`
}

// UnitProgress is the per-(user, module) completion record. CompletedBlockIDs
// is a JSON array of content block ids; Unlocked and ModuleCompleted are
// derived by the engine and stored only for display queries.
type UnitProgress struct {
	gorm.Model
	UserID            uint           `json:"user_id" gorm:"index:idx_user_module,unique;not null"`
	ModuleID          uint           `json:"module_id" gorm:"index:idx_user_module,unique;not null"`
	CompletedBlockIDs datatypes.JSON `json:"completed_block_ids"`
	Unlocked          bool           `json:"unlocked" gorm:"default:false"`
	ModuleCompleted   bool           `json:"module_completed" gorm:"default:false"`
	IsDeleted         bool           `gorm:"default:false"`
}
