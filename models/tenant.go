package models

import (
	"encoding/json"
	"time"
)

// Tenant status constants
const (
	TenantStatusActive   = "ACTIVE"
	TenantStatusInactive = "INACTIVE"
)

// Gender constants
const (
	GenderMale   = "MALE"
	GenderFemale = "FEMALE"
	GenderOther  = "OTHER"
)

type Tenant struct {
	ID               uint            `json:"id" gorm:"primaryKey"`
	FullName         string          `json:"fullName" gorm:"type:varchar(100);not null"`
	DateOfBirth      *time.Time      `json:"dateOfBirth,omitempty" gorm:"type:date"`
	Gender           string          `json:"gender,omitempty" gorm:"type:varchar(10)"`
	IDCard           *string         `json:"idCard,omitempty" gorm:"type:varchar(20);uniqueIndex"`
	IDCardDate       *time.Time      `json:"idCardDate,omitempty" gorm:"type:date"`
	IDCardPlace      string          `json:"idCardPlace,omitempty" gorm:"type:varchar(100)"`
	Phone            string          `json:"phone" gorm:"type:varchar(20);not null"`
	Email            string          `json:"email,omitempty" gorm:"type:varchar(100)"`
	Hometown         string          `json:"hometown,omitempty" gorm:"type:varchar(255)"`
	CurrentAddress   string          `json:"currentAddress,omitempty" gorm:"type:varchar(255)"`
	Occupation       string          `json:"occupation,omitempty" gorm:"type:varchar(100)"`
	EmergencyContact json.RawMessage `json:"emergencyContact,omitempty" gorm:"type:json"`
	Status           string          `json:"status" gorm:"type:varchar(20);default:ACTIVE"`
	Note             string          `json:"note,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}
