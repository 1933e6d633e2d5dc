package curriculum

import "gorm.io/gorm"

// Module represents an ordered unit of content blocks within a track. The
// position in the track's module list establishes unlock order: a module is
// locked until its predecessor is completed.
type Module struct {
	gorm.Model
	TrackID     uint   `json:"track_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"` // Module order in track
	IsVisible   bool   `json:"is_visible" gorm:"default:true"`
	IsDeleted   bool   `gorm:"default:false"`
}
