package models

import "time"

// ContractTenant gắn người thuê phụ vào hợp đồng
type ContractTenant struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	ContractID   uint       `json:"contractId" gorm:"index;not null"`
	TenantID     uint       `json:"tenantId" gorm:"index;not null"`
	Tenant       *Tenant    `json:"tenant,omitempty" gorm:"foreignKey:TenantID"`
	IsMainTenant bool       `json:"isMainTenant" gorm:"default:false"`
	JoinDate     time.Time  `json:"joinDate" gorm:"type:date"`
	LeaveDate    *time.Time `json:"leaveDate,omitempty" gorm:"type:date"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
