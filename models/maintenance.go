package models

import (
	"encoding/json"
	"time"
)

// Maintenance type constants
const (
	MaintenanceTypeRepair      = "REPAIR"
	MaintenanceTypeMaintenance = "MAINTENANCE"
	MaintenanceTypeInspection  = "INSPECTION"
)

// Maintenance priority constants
const (
	MaintenancePriorityLow    = "LOW"
	MaintenancePriorityMedium = "MEDIUM"
	MaintenancePriorityHigh   = "HIGH"
	MaintenancePriorityUrgent = "URGENT"
)

// Maintenance status constants
const (
	MaintenanceStatusPending    = "PENDING"
	MaintenanceStatusInProgress = "IN_PROGRESS"
	MaintenanceStatusCompleted  = "COMPLETED"
	MaintenanceStatusCancelled  = "CANCELLED"
)

type Maintenance struct {
	ID                 uint            `json:"id" gorm:"primaryKey"`
	RoomID             uint            `json:"roomId" gorm:"index;not null"`
	Room               *Room           `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	Title              string          `json:"title" gorm:"type:varchar(255);not null"`
	Description        string          `json:"description" gorm:"not null"`
	Type               string          `json:"type" gorm:"type:varchar(20);default:REPAIR"`
	Priority           string          `json:"priority" gorm:"type:varchar(20);default:MEDIUM"`
	Status             string          `json:"status" gorm:"type:varchar(20);default:PENDING"`
	ReportedByTenantID *uint           `json:"reportedByTenantId,omitempty"`
	ReportedByTenant   *Tenant         `json:"reportedByTenant,omitempty" gorm:"foreignKey:ReportedByTenantID"`
	ReportedByUserID   *uint           `json:"reportedByUserId,omitempty"`
	ReportedByUser     *User           `json:"reportedByUser,omitempty" gorm:"foreignKey:ReportedByUserID"`
	AssignedTo         *uint           `json:"assignedTo,omitempty"`
	Assignee           *User           `json:"assignee,omitempty" gorm:"foreignKey:AssignedTo"`
	Cost               float64         `json:"cost" gorm:"type:decimal(12,2);default:0"`
	ScheduledDate      *time.Time      `json:"scheduledDate,omitempty"`
	CompletedDate      *time.Time      `json:"completedDate,omitempty"`
	Images             json.RawMessage `json:"images,omitempty" gorm:"type:json"`
	Note               string          `json:"note,omitempty"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func IsValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		return true
	}
	return false
}

func IsValidMaintenancePriority(p string) bool {
	switch p {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh, MaintenancePriorityUrgent:
		return true
	}
	return false
}
