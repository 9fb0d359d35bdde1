package models

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// UtilityReading một dòng chỉ số cho mỗi (phòng, dịch vụ, tháng, năm)
type UtilityReading struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	RoomID          uint            `json:"roomId" gorm:"not null;uniqueIndex:idx_reading_period"`
	Room            *Room           `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	ServiceID       uint            `json:"serviceId" gorm:"not null;uniqueIndex:idx_reading_period"`
	Service         *Service        `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Month           int             `json:"month" gorm:"not null;uniqueIndex:idx_reading_period"` // 1-12
	Year            int             `json:"year" gorm:"not null;uniqueIndex:idx_reading_period"`
	PreviousReading float64         `json:"previousReading" gorm:"type:decimal(10,2);default:0"`
	CurrentReading  float64         `json:"currentReading" gorm:"type:decimal(10,2)"`
	Consumption     float64         `json:"consumption" gorm:"type:decimal(10,2)"`
	ReadingDate     time.Time       `json:"readingDate" gorm:"type:date"`
	ReadBy          *uint           `json:"readBy,omitempty"`
	Reader          *User           `json:"reader,omitempty" gorm:"foreignKey:ReadBy"`
	Images          json.RawMessage `json:"images,omitempty" gorm:"type:json"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeSave tính cột consumption tại tầng lưu trữ, code nghiệp vụ không tự tính lại
func (r *UtilityReading) BeforeSave(tx *gorm.DB) error {
	r.Consumption = r.CurrentReading - r.PreviousReading
	return nil
}
