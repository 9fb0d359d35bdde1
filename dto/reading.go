package dto

import "encoding/json"

// CreateReadingRequest request ghi chỉ số điện nước
type CreateReadingRequest struct {
	RoomID          uint            `json:"roomId" binding:"required"`
	ServiceID       uint            `json:"serviceId" binding:"required"`
	Month           int             `json:"month" binding:"required"`
	Year            int             `json:"year" binding:"required"`
	CurrentReading  float64         `json:"currentReading"`
	PreviousReading *float64        `json:"previousReading"`
	ReadingDate     string          `json:"readingDate"`
	Images          json.RawMessage `json:"images"`
	Note            string          `json:"note"`
}

// UpdateReadingRequest request sửa chỉ số đã ghi
type UpdateReadingRequest struct {
	CurrentReading  *float64        `json:"currentReading"`
	PreviousReading *float64        `json:"previousReading"`
	ReadingDate     *string         `json:"readingDate"`
	Images          json.RawMessage `json:"images"`
	Note            *string         `json:"note"`
}

// BulkReadingRequest ghi chỉ số hàng loạt cho một kỳ
type BulkReadingRequest struct {
	Month    int                `json:"month" binding:"required"`
	Year     int                `json:"year" binding:"required"`
	Readings []BulkReadingEntry `json:"readings" binding:"required"`
}

// BulkReadingEntry một dòng trong request ghi hàng loạt
type BulkReadingEntry struct {
	RoomID         uint    `json:"roomId" binding:"required"`
	ServiceID      uint    `json:"serviceId" binding:"required"`
	CurrentReading float64 `json:"currentReading"`
	Note           string  `json:"note"`
}

// BulkReadingReport kết quả ghi hàng loạt
type BulkReadingReport struct {
	Created int               `json:"created"`
	Failed  int               `json:"failed"`
	Errors  []BulkReadingFail `json:"errors,omitempty"`
}

// BulkReadingFail lý do một dòng bị từ chối
type BulkReadingFail struct {
	RoomID    uint   `json:"roomId"`
	ServiceID uint   `json:"serviceId"`
	Reason    string `json:"reason"`
}

// PendingReading phòng chưa ghi chỉ số trong kỳ
type PendingReading struct {
	RoomID      uint   `json:"roomId"`
	RoomCode    string `json:"roomCode"`
	ServiceID   uint   `json:"serviceId"`
	ServiceName string `json:"serviceName"`
}

// ConsumptionStatistics tổng tiêu thụ theo dịch vụ trong kỳ
type ConsumptionStatistics struct {
	ServiceID        uint    `json:"serviceId"`
	ServiceName      string  `json:"serviceName"`
	TotalConsumption float64 `json:"totalConsumption"`
	RoomCount        int64   `json:"roomCount"`
}
