package dto

import "encoding/json"

// CreateMaintenanceRequest request tạo phiếu bảo trì
type CreateMaintenanceRequest struct {
	RoomID             uint            `json:"roomId" binding:"required"`
	Title              string          `json:"title" binding:"required"`
	Description        string          `json:"description" binding:"required"`
	Type               string          `json:"type"`
	Priority           string          `json:"priority"`
	ReportedByTenantID *uint           `json:"reportedByTenantId"`
	ReportedByUserID   *uint           `json:"reportedByUserId"`
	ScheduledDate      string          `json:"scheduledDate"`
	Images             json.RawMessage `json:"images"`
	Note               string          `json:"note"`
}

// UpdateMaintenanceRequest request cập nhật phiếu bảo trì
type UpdateMaintenanceRequest struct {
	Title         *string         `json:"title"`
	Description   *string         `json:"description"`
	Type          *string         `json:"type"`
	Priority      *string         `json:"priority"`
	Cost          *float64        `json:"cost"`
	ScheduledDate *string         `json:"scheduledDate"`
	Images        json.RawMessage `json:"images"`
	Note          *string         `json:"note"`
}

// UpdateMaintenanceStatusRequest đổi trạng thái phiếu bảo trì
type UpdateMaintenanceStatusRequest struct {
	Status string   `json:"status" binding:"required"`
	Cost   *float64 `json:"cost"`
	Note   string   `json:"note"`
}

// AssignMaintenanceRequest phân công người xử lý
type AssignMaintenanceRequest struct {
	AssignedTo uint `json:"assignedTo" binding:"required"`
}

// MaintenanceStatistics thống kê phiếu bảo trì
type MaintenanceStatistics struct {
	Total      int64   `json:"total"`
	Pending    int64   `json:"pending"`
	InProgress int64   `json:"inProgress"`
	Completed  int64   `json:"completed"`
	Cancelled  int64   `json:"cancelled"`
	Urgent     int64   `json:"urgent"`
	TotalCost  float64 `json:"totalCost"`
}
