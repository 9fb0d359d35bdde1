package models

import (
	"encoding/json"
	"time"
)

// Contract status constants
const (
	ContractStatusDraft      = "DRAFT"
	ContractStatusActive     = "ACTIVE"
	ContractStatusExpired    = "EXPIRED"
	ContractStatusTerminated = "TERMINATED"
)

type Contract struct {
	ID                uint            `json:"id" gorm:"primaryKey"`
	ContractCode      string          `json:"contractCode" gorm:"type:varchar(50);uniqueIndex;not null"`
	RoomID            uint            `json:"roomId" gorm:"index;not null"`
	Room              *Room           `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	MainTenantID      uint            `json:"mainTenantId" gorm:"index;not null"`
	MainTenant        *Tenant         `json:"mainTenant,omitempty" gorm:"foreignKey:MainTenantID"`
	StartDate         time.Time       `json:"startDate" gorm:"type:date"`
	EndDate           time.Time       `json:"endDate" gorm:"type:date"`
	MonthlyRent       float64         `json:"monthlyRent" gorm:"type:decimal(12,2)"`
	Deposit           float64         `json:"deposit" gorm:"type:decimal(12,2)"`
	PaymentDueDay     int             `json:"paymentDueDay" gorm:"default:5"`
	Status            string          `json:"status" gorm:"type:varchar(20);default:DRAFT"`
	TerminationDate   *time.Time      `json:"terminationDate,omitempty" gorm:"type:date"`
	TerminationReason string          `json:"terminationReason,omitempty"`
	Terms             json.RawMessage `json:"terms,omitempty" gorm:"type:json"`
	Note              string          `json:"note,omitempty"`
	CreatedAt         time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	ContractTenants   []ContractTenant `json:"contractTenants,omitempty" gorm:"foreignKey:ContractID"`
}
