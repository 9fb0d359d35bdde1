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

// GetAllMaintenances danh sách phiếu bảo trì, ưu tiên cao xếp trước
func GetAllMaintenances(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Maintenance{}).
		Preload("Room").
		Preload("Assignee")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if priority := c.Query("priority"); priority != "" {
		query = query.Where("priority = ?", priority)
	}
	if roomID := c.Query("roomId"); roomID != "" {
		query = query.Where("room_id = ?", roomID)
	}
	if maintenanceType := c.Query("type"); maintenanceType != "" {
		query = query.Where("type = ?", maintenanceType)
	}
	if assignedTo := c.Query("assignedTo"); assignedTo != "" {
		query = query.Where("assigned_to = ?", assignedTo)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("title LIKE ? OR description LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var maintenances []models.Maintenance
	if err := query.
		Order("CASE priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'MEDIUM' THEN 2 ELSE 3 END").
		Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&maintenances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, maintenances, page, limit, int(total))
}

// GetMaintenanceDetail chi tiết phiếu bảo trì
func GetMaintenanceDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var maintenance models.Maintenance
	if err := config.DB.
		Preload("Room").
		Preload("ReportedByTenant").
		Preload("ReportedByUser").
		Preload("Assignee").
		First(&maintenance, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeMaintenanceNotFound)
		return
	}

	response.Success(c, maintenance)
}

// CreateMaintenance tạo phiếu bảo trì, phiếu URGENT được đẩy qua websocket
func CreateMaintenance(c *gin.Context) {
	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, req.RoomID).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	maintenance := models.Maintenance{
		RoomID:             req.RoomID,
		Title:              req.Title,
		Description:        req.Description,
		Type:               req.Type,
		Priority:           req.Priority,
		Status:             models.MaintenanceStatusPending,
		ReportedByTenantID: req.ReportedByTenantID,
		ReportedByUserID:   req.ReportedByUserID,
		Images:             req.Images,
		Note:               req.Note,
	}
	if maintenance.Type == "" {
		maintenance.Type = models.MaintenanceTypeRepair
	}
	if maintenance.Priority == "" {
		maintenance.Priority = models.MaintenancePriorityMedium
	}
	if req.ScheduledDate != "" {
		scheduled, err := validator.ParseDate(req.ScheduledDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		maintenance.ScheduledDate = &scheduled
	}

	if maintenance.ReportedByTenantID == nil && maintenance.ReportedByUserID == nil {
		if userID, exists := c.Get("userID"); exists {
			if uid, ok := userID.(uint); ok {
				maintenance.ReportedByUserID = &uid
			}
		}
	}

	if err := validator.ValidateMaintenance(&maintenance); err != nil {
		response.AppError(c, err)
		return
	}

	if err := config.DB.Create(&maintenance).Error; err != nil {
		response.ServerError(c)
		return
	}

	if maintenance.Priority == models.MaintenancePriorityUrgent {
		BroadcastEvent("maintenance.urgent", gin.H{
			"id":       maintenance.ID,
			"roomCode": room.Code,
			"title":    maintenance.Title,
		})
	}

	response.Created(c, maintenance)
}

// UpdateMaintenance cập nhật nội dung phiếu, không đổi trạng thái
func UpdateMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var maintenance models.Maintenance
	if err := config.DB.First(&maintenance, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeMaintenanceNotFound)
		return
	}

	var req dto.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Title != nil {
		maintenance.Title = *req.Title
	}
	if req.Description != nil {
		maintenance.Description = *req.Description
	}
	if req.Type != nil {
		maintenance.Type = *req.Type
	}
	if req.Priority != nil {
		maintenance.Priority = *req.Priority
	}
	if req.Cost != nil {
		maintenance.Cost = *req.Cost
	}
	if req.ScheduledDate != nil && *req.ScheduledDate != "" {
		scheduled, err := validator.ParseDate(*req.ScheduledDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		maintenance.ScheduledDate = &scheduled
	}
	if req.Images != nil {
		maintenance.Images = req.Images
	}
	if req.Note != nil {
		maintenance.Note = *req.Note
	}

	if err := validator.ValidateMaintenance(&maintenance); err != nil {
		response.AppError(c, err)
		return
	}

	if err := config.DB.Save(&maintenance).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, maintenance)
}

// UpdateMaintenanceStatus đổi trạng thái phiếu, COMPLETED thì đóng dấu ngày
func UpdateMaintenanceStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var maintenance models.Maintenance
	if err := config.DB.First(&maintenance, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeMaintenanceNotFound)
		return
	}

	var req dto.UpdateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "status là bắt buộc")
		return
	}

	if !models.IsValidMaintenanceStatus(req.Status) {
		response.Error(c, 400, errors.ErrCodeInvalidStatus, "Trạng thái phiếu bảo trì không hợp lệ")
		return
	}

	if maintenance.Status == models.MaintenanceStatusCompleted ||
		maintenance.Status == models.MaintenanceStatusCancelled {
		response.Error(c, 400, errors.ErrCodeInvalidState, "Phiếu bảo trì đã đóng, không thể đổi trạng thái")
		return
	}

	maintenance.Status = req.Status
	if req.Cost != nil {
		maintenance.Cost = *req.Cost
	}
	if req.Note != "" {
		maintenance.Note = req.Note
	}
	if req.Status == models.MaintenanceStatusCompleted {
		now := time.Now()
		maintenance.CompletedDate = &now
	}

	if err := config.DB.Save(&maintenance).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, maintenance)
}

// AssignMaintenance phân công người xử lý, phiếu PENDING tự chuyển IN_PROGRESS
func AssignMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var maintenance models.Maintenance
	if err := config.DB.First(&maintenance, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeMaintenanceNotFound)
		return
	}

	var req dto.AssignMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "assignedTo là bắt buộc")
		return
	}

	var user models.User
	if err := config.DB.First(&user, req.AssignedTo).Error; err != nil {
		response.NotFound(c, errors.ErrCodeUserNotFound)
		return
	}

	maintenance.AssignedTo = &req.AssignedTo
	if maintenance.Status == models.MaintenanceStatusPending {
		maintenance.Status = models.MaintenanceStatusInProgress
	}

	if err := config.DB.Save(&maintenance).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, maintenance)
}

// DeleteMaintenance xóa phiếu bảo trì
func DeleteMaintenance(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var maintenance models.Maintenance
	if err := config.DB.First(&maintenance, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeMaintenanceNotFound)
		return
	}

	if err := config.DB.Delete(&maintenance).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetMaintenancesByRoom lịch sử bảo trì của một phòng
func GetMaintenancesByRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var maintenances []models.Maintenance
	if err := config.DB.
		Preload("Assignee").
		Where("room_id = ?", roomID).
		Order("created_at DESC").
		Find(&maintenances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, maintenances)
}

// GetOverdueMaintenances phiếu quá hạn xử lý: đã lên lịch nhưng chưa xong
func GetOverdueMaintenances(c *gin.Context) {
	now := time.Now()

	var maintenances []models.Maintenance
	if err := config.DB.
		Preload("Room").
		Preload("Assignee").
		Where("status IN ? AND scheduled_date IS NOT NULL AND scheduled_date < ?",
			[]string{models.MaintenanceStatusPending, models.MaintenanceStatusInProgress}, now).
		Order("scheduled_date ASC").
		Find(&maintenances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, maintenances)
}

// GetMaintenanceStatistics thống kê phiếu bảo trì
func GetMaintenanceStatistics(c *gin.Context) {
	var stats dto.MaintenanceStatistics

	if err := config.DB.Model(&models.Maintenance{}).Count(&stats.Total).Error; err != nil {
		response.ServerError(c)
		return
	}
	config.DB.Model(&models.Maintenance{}).Where("status = ?", models.MaintenanceStatusPending).Count(&stats.Pending)
	config.DB.Model(&models.Maintenance{}).Where("status = ?", models.MaintenanceStatusInProgress).Count(&stats.InProgress)
	config.DB.Model(&models.Maintenance{}).Where("status = ?", models.MaintenanceStatusCompleted).Count(&stats.Completed)
	config.DB.Model(&models.Maintenance{}).Where("status = ?", models.MaintenanceStatusCancelled).Count(&stats.Cancelled)
	config.DB.Model(&models.Maintenance{}).
		Where("priority = ? AND status IN ?", models.MaintenancePriorityUrgent,
			[]string{models.MaintenanceStatusPending, models.MaintenanceStatusInProgress}).
		Count(&stats.Urgent)

	var totalCost struct{ Total float64 }
	config.DB.Model(&models.Maintenance{}).
		Select("COALESCE(SUM(cost), 0) as total").
		Where("status = ?", models.MaintenanceStatusCompleted).
		Scan(&totalCost)
	stats.TotalCost = totalCost.Total

	response.Success(c, stats)
}
