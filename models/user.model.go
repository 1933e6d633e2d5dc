package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `gorm:"default:''"`
	Email    string `gorm:"unique;not null"`
	Password string `gorm:"not null"`
	Role     string `gorm:"default:'STUDENT'"` // STUDENT, ADMIN

	// External judge handles used by the platform sync sweep
	LeetcodeUsername string `json:"leetcode_username" gorm:"default:''"`
	GfgUsername      string `json:"gfg_username" gorm:"default:''"`

	// Denormalized leaderboard accumulators, written back by the progress
	// engine through the sync adapter
	Points        int `json:"points" gorm:"default:0"`
	CurrentStreak int `json:"current_streak" gorm:"default:0"`

	LastLogin           time.Time  `gorm:"default:NULL"`
	FailedLoginAttempts int        `gorm:"default:0"`
	LastFailedLogin     *time.Time `json:"last_failed_login"`
	IsBlocked           bool       `gorm:"default:false"`
	BlockedUntil        *time.Time `json:"blocked_until"`
	IsDeleted           bool       `gorm:"default:false"`
}
