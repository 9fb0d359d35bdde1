package dto

import "encoding/json"

// CreateTenantRequest request tạo người thuê
type CreateTenantRequest struct {
	FullName         string          `json:"fullName" binding:"required"`
	DateOfBirth      string          `json:"dateOfBirth"`
	Gender           string          `json:"gender"`
	IDCard           *string         `json:"idCard"`
	IDCardDate       string          `json:"idCardDate"`
	IDCardPlace      string          `json:"idCardPlace"`
	Phone            string          `json:"phone" binding:"required"`
	Email            string          `json:"email"`
	Hometown         string          `json:"hometown"`
	CurrentAddress   string          `json:"currentAddress"`
	Occupation       string          `json:"occupation"`
	EmergencyContact json.RawMessage `json:"emergencyContact"`
	Note             string          `json:"note"`
}

// UpdateTenantRequest request cập nhật người thuê
type UpdateTenantRequest struct {
	FullName         *string         `json:"fullName"`
	DateOfBirth      *string         `json:"dateOfBirth"`
	Gender           *string         `json:"gender"`
	IDCard           *string         `json:"idCard"`
	IDCardDate       *string         `json:"idCardDate"`
	IDCardPlace      *string         `json:"idCardPlace"`
	Phone            *string         `json:"phone"`
	Email            *string         `json:"email"`
	Hometown         *string         `json:"hometown"`
	CurrentAddress   *string         `json:"currentAddress"`
	Occupation       *string         `json:"occupation"`
	EmergencyContact json.RawMessage `json:"emergencyContact"`
	Status           *string         `json:"status"`
	Note             *string         `json:"note"`
}

// TenantStatistics thống kê người thuê
type TenantStatistics struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Renting  int64 `json:"renting"`
}
