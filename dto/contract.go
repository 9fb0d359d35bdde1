package dto

import "encoding/json"

// CreateContractRequest request tạo hợp đồng mới
type CreateContractRequest struct {
	ContractCode      string          `json:"contractCode" binding:"required"`
	RoomID            uint            `json:"roomId" binding:"required"`
	MainTenantID      uint            `json:"mainTenantId" binding:"required"`
	AdditionalTenants []uint          `json:"additionalTenants"`
	StartDate         string          `json:"startDate" binding:"required"`
	EndDate           string          `json:"endDate" binding:"required"`
	MonthlyRent       float64         `json:"monthlyRent"`
	Deposit           float64         `json:"deposit"`
	PaymentDueDay     int             `json:"paymentDueDay"`
	Terms             json.RawMessage `json:"terms"`
	Note              string          `json:"note"`
}

// UpdateContractRequest request cập nhật hợp đồng, không đổi trạng thái
type UpdateContractRequest struct {
	MonthlyRent   *float64        `json:"monthlyRent"`
	Deposit       *float64        `json:"deposit"`
	PaymentDueDay *int            `json:"paymentDueDay"`
	Terms         json.RawMessage `json:"terms"`
	Note          *string         `json:"note"`
}

// TerminateContractRequest request thanh lý hợp đồng
type TerminateContractRequest struct {
	TerminationDate   string `json:"terminationDate"`
	TerminationReason string `json:"terminationReason"`
}

// RenewContractRequest request gia hạn hợp đồng
type RenewContractRequest struct {
	NewEndDate string `json:"newEndDate" binding:"required"`
}

// CreateContractResponse kèm danh sách người thuê phụ bị bỏ qua
type CreateContractResponse struct {
	Contract         interface{} `json:"contract"`
	SkippedTenantIds []uint      `json:"skippedTenantIds,omitempty"`
}
