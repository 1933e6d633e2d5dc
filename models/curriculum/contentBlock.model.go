package curriculum

import "gorm.io/gorm"

// Block type discriminators
const (
	BlockTypeVideo   = "VIDEO"
	BlockTypePDF     = "PDF"
	BlockTypeProblem = "PROBLEM"
)

// ContentBlock is one playable/readable/solvable item inside a module. Order
// within a module is significant for next-item navigation.
type ContentBlock struct {
	gorm.Model
	ModuleID   uint   `json:"module_id" gorm:"index;not null"`
	Title      string `json:"title"`
	BlockType  string `json:"block_type" gorm:"default:'VIDEO'"` // VIDEO, PDF, PROBLEM
	URL        string `json:"url"`                               // For VIDEO and PDF types
	ProblemID  uint   `json:"problem_id" gorm:"default:0"`       // For PROBLEM type
	OrderIndex int    `json:"order_index" gorm:"default:0"`      // Order within module
	IsVisible  bool   `json:"is_visible" gorm:"default:true"`
	IsDeleted  bool   `gorm:"default:false"`
}
