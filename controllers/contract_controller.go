package controllers

import (
	"time"

	"rms/config"
	"rms/dto"
	"rms/errors"
	"rms/models"
	"rms/response"
	"rms/validator"

	"github.com/gin-gonic/gin"
)

// GetAllContracts lấy danh sách hợp đồng, lọc theo status/roomId/tenantId/search
func GetAllContracts(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Contract{}).
		Preload("Room").
		Preload("MainTenant")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if roomID := c.Query("roomId"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if tenantID := c.Query("tenantId"); tenantID != "" {
		query = query.Where("main_tenant_id = ?", tenantID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("contract_code LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var contracts []models.Contract
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&contracts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, contracts, page, limit, int(total))
}

// GetContractDetail lấy chi tiết hợp đồng kèm phòng và người thuê
func GetContractDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var contract models.Contract
	if err := config.DB.
		Preload("Room").
		Preload("MainTenant").
		Preload("ContractTenants").
		Preload("ContractTenants.Tenant").
		First(&contract, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeContractNotFound)
		return
	}

	response.Success(c, contract)
}

// CreateContract tạo hợp đồng DRAFT mới, phòng chuyển sang RESERVED
func CreateContract(c *gin.Context) {
	var req dto.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	startDate, err := validator.ParseDate(req.StartDate)
	if err != nil {
		response.AppError(c, err)
		return
	}
	endDate, err := validator.ParseDate(req.EndDate)
	if err != nil {
		response.AppError(c, err)
		return
	}

	contract := models.Contract{
		ContractCode:  req.ContractCode,
		RoomID:        req.RoomID,
		MainTenantID:  req.MainTenantID,
		StartDate:     startDate,
		EndDate:       endDate,
		MonthlyRent:   req.MonthlyRent,
		Deposit:       req.Deposit,
		PaymentDueDay: req.PaymentDueDay,
		Terms:         req.Terms,
		Note:          req.Note,
	}
	if contract.PaymentDueDay == 0 {
		contract.PaymentDueDay = 5
	}

	if err := validator.ValidateContract(&contract); err != nil {
		response.AppError(c, err)
		return
	}

	var existing models.Contract
	if err := config.DB.Where("contract_code = ?", req.ContractCode).First(&existing).Error; err == nil {
		response.Error(c, 400, errors.ErrCodeDBDuplicate, "Mã hợp đồng đã tồn tại")
		return
	}

	skipped, err := contractService().Create(&contract, req.AdditionalTenants)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Created(c, dto.CreateContractResponse{
		Contract:         contract,
		SkippedTenantIds: skipped,
	})
}

// UpdateContract cập nhật các trường không liên quan trạng thái
func UpdateContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var contract models.Contract
	if err := config.DB.First(&contract, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeContractNotFound)
		return
	}

	var req dto.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.MonthlyRent != nil {
		contract.MonthlyRent = *req.MonthlyRent
	}
	if req.Deposit != nil {
		contract.Deposit = *req.Deposit
	}
	if req.PaymentDueDay != nil {
		contract.PaymentDueDay = *req.PaymentDueDay
	}
	if req.Terms != nil {
		contract.Terms = req.Terms
	}
	if req.Note != nil {
		contract.Note = *req.Note
	}

	if contract.MonthlyRent < 0 || contract.Deposit < 0 {
		response.BadRequest(c, "Tiền thuê và tiền cọc không được âm")
		return
	}
	if contract.PaymentDueDay < 1 || contract.PaymentDueDay > 31 {
		response.BadRequest(c, "Ngày đến hạn thanh toán phải trong khoảng 1-31")
		return
	}

	if err := config.DB.Save(&contract).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contract)
}

// DeleteContract xóa hợp đồng và các dòng người thuê liên quan
func DeleteContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := contractService().Delete(id); err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// ActivateContract kích hoạt hợp đồng DRAFT
func ActivateContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	contract, err := contractService().Activate(id)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, contract)
}

// TerminateContract thanh lý hợp đồng
func TerminateContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.TerminateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var terminationDate time.Time
	if req.TerminationDate != "" {
		parsed, err := validator.ParseDate(req.TerminationDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		terminationDate = parsed
	}

	contract, err := contractService().Terminate(id, terminationDate, req.TerminationReason)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, contract)
}

// RenewContract gia hạn hợp đồng ACTIVE
func RenewContract(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.RenewContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "newEndDate là bắt buộc")
		return
	}

	newEndDate, err := validator.ParseDate(req.NewEndDate)
	if err != nil {
		response.AppError(c, err)
		return
	}

	var current models.Contract
	if err := config.DB.First(&current, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeContractNotFound)
		return
	}
	if !newEndDate.After(current.EndDate) {
		response.BadRequest(c, "Ngày kết thúc mới phải sau ngày kết thúc hiện tại")
		return
	}

	contract, err := contractService().Renew(id, newEndDate)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, contract)
}

// GetContractStatistics thống kê hợp đồng theo trạng thái
func GetContractStatistics(c *gin.Context) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := config.DB.Model(&models.Contract{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		response.ServerError(c)
		return
	}

	stats := gin.H{
		"total":      int64(0),
		"draft":      int64(0),
		"active":     int64(0),
		"expired":    int64(0),
		"terminated": int64(0),
	}
	var total int64
	for _, r := range rows {
		total += r.Count
		switch r.Status {
		case models.ContractStatusDraft:
			stats["draft"] = r.Count
		case models.ContractStatusActive:
			stats["active"] = r.Count
		case models.ContractStatusExpired:
			stats["expired"] = r.Count
		case models.ContractStatusTerminated:
			stats["terminated"] = r.Count
		}
	}
	stats["total"] = total

	response.Success(c, stats)
}

// GetExpiringContracts hợp đồng ACTIVE sắp hết hạn trong N ngày tới
func GetExpiringContracts(c *gin.Context) {
	days, ok := parseIDParam(c, "days")
	if !ok {
		response.BadRequest(c, "Số ngày không hợp lệ")
		return
	}

	now := time.Now()
	deadline := now.AddDate(0, 0, int(days))

	var contracts []models.Contract
	if err := config.DB.
		Preload("Room").
		Preload("MainTenant").
		Where("status = ? AND end_date >= ? AND end_date <= ?", models.ContractStatusActive, now, deadline).
		Order("end_date ASC").
		Find(&contracts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contracts)
}
