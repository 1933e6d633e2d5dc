package curriculum

import "gorm.io/gorm"

// DailyChallengeSet is the fixed list of problems assigned to one calendar
// date. One set per date, ISO YYYY-MM-DD.
type DailyChallengeSet struct {
	gorm.Model
	Date      string `json:"date" gorm:"uniqueIndex;size:10;not null"`
	IsDeleted bool   `gorm:"default:false"`
}

// DailyChallengeProblem links a problem into a challenge set, ordered
type DailyChallengeProblem struct {
	gorm.Model
	SetID      uint `json:"set_id" gorm:"index;not null"`
	ProblemID  uint `json:"problem_id" gorm:"index;not null"`
	OrderIndex int  `json:"order_index" gorm:"default:0"`
	IsDeleted  bool `gorm:"default:false"`
}
