package models

import "time"

// Room image types
const (
	ImageTypeMain    = "MAIN"
	ImageTypeGallery = "GALLERY"
)

type RoomImage struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	RoomID    uint      `json:"roomId" gorm:"index;not null"`
	URL       string    `json:"url" gorm:"type:varchar(500);not null"`
	Type      string    `json:"type" gorm:"type:varchar(20);default:GALLERY"`
	Caption   string    `json:"caption,omitempty" gorm:"type:varchar(255)"`
	SortOrder int       `json:"sortOrder" gorm:"default:0"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
