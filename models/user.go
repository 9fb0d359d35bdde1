package models

import "time"

// User role constants
const (
	RoleAdmin   = "ADMIN"
	RoleManager = "MANAGER"
	RoleStaff   = "STAFF"
)

type User struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
	Name        string     `gorm:"type:varchar(100)" json:"name"`
	Email       string     `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Password    string     `gorm:"type:varchar(255)" json:"-"`
	Role        string     `gorm:"type:varchar(20);default:STAFF" json:"role"`
	Phone       string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Avatar      string     `gorm:"type:varchar(255)" json:"avatar,omitempty"`
	IsActive    bool       `gorm:"default:true" json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
}

func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleManager || role == RoleStaff
}
