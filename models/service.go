package models

import "time"

// Service type constants
const (
	ServiceTypeFixed    = "FIXED"    // cố định: rác, internet, bảo vệ...
	ServiceTypeVariable = "VARIABLE" // theo số lượng: xe...
	ServiceTypeMetered  = "METERED"  // theo đồng hồ: điện, nước
)

type Service struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"type:varchar(100);not null"`
	Type        string    `json:"type" gorm:"type:varchar(20);not null"`
	Price       float64   `json:"price" gorm:"type:decimal(12,2)"`
	Unit        string    `json:"unit,omitempty" gorm:"type:varchar(20)"` // kwh, m3, month, person, vehicle
	IsRequired  bool      `json:"isRequired" gorm:"default:false"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func IsValidServiceType(t string) bool {
	return t == ServiceTypeFixed || t == ServiceTypeVariable || t == ServiceTypeMetered
}
