package curriculum

import "gorm.io/gorm"

// Track represents a top-level curriculum path composed of ordered modules
type Track struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	OrderIndex  int    `json:"order_index" gorm:"default:0"`
	IsVisible   bool   `json:"is_visible" gorm:"default:false"`
	IsDeleted   bool   `gorm:"default:false"`
}
