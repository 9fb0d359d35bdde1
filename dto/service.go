package dto

// CreateServiceRequest request tạo dịch vụ
type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Price       float64 `json:"price"`
	Unit        string  `json:"unit"`
	IsRequired  bool    `json:"isRequired"`
	Description string  `json:"description"`
}

// UpdateServiceRequest request cập nhật dịch vụ
type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Type        *string  `json:"type"`
	Price       *float64 `json:"price"`
	Unit        *string  `json:"unit"`
	IsRequired  *bool    `json:"isRequired"`
	Description *string  `json:"description"`
	IsActive    *bool    `json:"isActive"`
}

// ServiceStatistics thống kê dịch vụ theo loại
type ServiceStatistics struct {
	Total    int64 `json:"total"`
	Fixed    int64 `json:"fixed"`
	Variable int64 `json:"variable"`
	Metered  int64 `json:"metered"`
	Active   int64 `json:"active"`
}
