package curriculum

import "gorm.io/gorm"

// External judge platforms
const (
	PlatformLeetCode = "LEETCODE"
	PlatformGfg      = "GEEKSFORGEEKS"
)

// Problem is a coding problem hosted on an external platform. The same
// problem may be referenced from curriculum modules and from daily challenge
// sets; completion is tracked globally by problem id, not by context.
type Problem struct {
	gorm.Model
	Title        string `json:"title"`
	Description  string `json:"description"`
	Difficulty   string `json:"difficulty" gorm:"default:'EASY'"` // EASY, MEDIUM, HARD
	Points       int    `json:"points" gorm:"default:10"`
	Platform     string `json:"platform" gorm:"default:'LEETCODE'"`
	Slug         string `json:"slug" gorm:"index"` // platform problem slug, matched by the sync sweep
	ExternalLink string `json:"external_link"`
	IsDeleted    bool   `gorm:"default:false"`
}
