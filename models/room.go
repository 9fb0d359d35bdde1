package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// Room status constants
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusOccupied    = "OCCUPIED"
	RoomStatusMaintenance = "MAINTENANCE"
	RoomStatusReserved    = "RESERVED"
)

type Room struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Code         string          `json:"code" gorm:"type:varchar(20);uniqueIndex;not null"`
	Name         string          `json:"name" gorm:"type:varchar(100)"`
	Floor        *int            `json:"floor,omitempty"`
	Area         *float64        `json:"area,omitempty" gorm:"type:decimal(6,2)"`
	Price        float64         `json:"price" gorm:"type:decimal(12,2)"`
	Deposit      *float64        `json:"deposit,omitempty" gorm:"type:decimal(12,2)"`
	MaxOccupants int             `json:"maxOccupants" gorm:"default:2"`
	Status       string          `json:"status" gorm:"type:varchar(20);default:AVAILABLE"`
	Amenities    json.RawMessage `json:"amenities,omitempty" gorm:"type:json"`
	Description  string          `json:"description,omitempty"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Services     []RoomService   `json:"services,omitempty" gorm:"foreignKey:RoomID"`
	Images       []RoomImage     `json:"images,omitempty" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	switch r.Status {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusReserved:
		return nil
	}
	return fmt.Errorf("invalid room status: %s", r.Status)
}

// IsRentable báo phòng có nhận hợp đồng mới được không
func (r *Room) IsRentable() bool {
	return r.Status == RoomStatusAvailable || r.Status == RoomStatusReserved
}
