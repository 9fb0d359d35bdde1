package dto

import "encoding/json"

// CreateRoomRequest request tạo phòng
type CreateRoomRequest struct {
	Code         string          `json:"code" binding:"required"`
	Name         string          `json:"name"`
	Floor        *int            `json:"floor"`
	Area         *float64        `json:"area"`
	Price        float64         `json:"price"`
	Deposit      *float64        `json:"deposit"`
	MaxOccupants int             `json:"maxOccupants"`
	Status       string          `json:"status"`
	Amenities    json.RawMessage `json:"amenities"`
	Description  string          `json:"description"`
	Note         string          `json:"note"`
}

// UpdateRoomRequest request cập nhật phòng
type UpdateRoomRequest struct {
	Name         *string         `json:"name"`
	Floor        *int            `json:"floor"`
	Area         *float64        `json:"area"`
	Price        *float64        `json:"price"`
	Deposit      *float64        `json:"deposit"`
	MaxOccupants *int            `json:"maxOccupants"`
	Status       *string         `json:"status"`
	Amenities    json.RawMessage `json:"amenities"`
	Description  *string         `json:"description"`
	Note         *string         `json:"note"`
}

// AddRoomServiceRequest gắn dịch vụ vào phòng
type AddRoomServiceRequest struct {
	ServiceID   uint     `json:"serviceId" binding:"required"`
	CustomPrice *float64 `json:"customPrice"`
	StartDate   string   `json:"startDate"`
	Note        string   `json:"note"`
}

// AddRoomImageRequest thêm ảnh phòng theo URL có sẵn
type AddRoomImageRequest struct {
	URL       string `json:"url" binding:"required"`
	Type      string `json:"type"`
	Caption   string `json:"caption"`
	SortOrder int    `json:"sortOrder"`
}

// RoomStatistics thống kê phòng theo trạng thái
type RoomStatistics struct {
	Total       int64 `json:"total"`
	Available   int64 `json:"available"`
	Occupied    int64 `json:"occupied"`
	Maintenance int64 `json:"maintenance"`
	Reserved    int64 `json:"reserved"`
}
