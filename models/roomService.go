package models

import "time"

// RoomService gắn dịch vụ vào phòng, có thể ghi đè giá
type RoomService struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	RoomID      uint       `json:"roomId" gorm:"index;not null"`
	ServiceID   uint       `json:"serviceId" gorm:"index;not null"`
	Service     *Service   `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	CustomPrice *float64   `json:"customPrice,omitempty" gorm:"type:decimal(12,2)"`
	IsActive    bool       `json:"isActive" gorm:"default:true"`
	StartDate   *time.Time `json:"startDate,omitempty" gorm:"type:date"`
	EndDate     *time.Time `json:"endDate,omitempty" gorm:"type:date"`
	Note        string     `json:"note,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
