package controllers

import (
	"rms/config"
	"rms/dto"
	"rms/errors"
	"rms/models"
	"rms/response"
	"rms/validator"

	"github.com/gin-gonic/gin"
)

// GetAllServices lấy danh sách dịch vụ
func GetAllServices(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Service{})

	if serviceType := c.Query("type"); serviceType != "" {
		query = query.Where("type = ?", serviceType)
	}
	if isActive := c.Query("isActive"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if isRequired := c.Query("isRequired"); isRequired != "" {
		query = query.Where("is_required = ?", isRequired == "true")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var servicesList []models.Service
	if err := query.Order("name ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&servicesList).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, servicesList, page, limit, int(total))
}

// GetServiceDetail lấy chi tiết dịch vụ
func GetServiceDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeServiceNotFound)
		return
	}

	response.Success(c, service)
}

// GetServicesByType lấy dịch vụ theo loại FIXED/VARIABLE/METERED
func GetServicesByType(c *gin.Context) {
	serviceType := c.Param("type")
	if !models.IsValidServiceType(serviceType) {
		response.BadRequest(c, "Loại dịch vụ không hợp lệ")
		return
	}

	var servicesList []models.Service
	if err := config.DB.
		Where("type = ? AND is_active = ?", serviceType, true).
		Order("name ASC").
		Find(&servicesList).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, servicesList)
}

// GetRequiredServices danh sách dịch vụ bắt buộc
func GetRequiredServices(c *gin.Context) {
	var servicesList []models.Service
	if err := config.DB.
		Where("is_required = ? AND is_active = ?", true, true).
		Order("name ASC").
		Find(&servicesList).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, servicesList)
}

// CreateService tạo dịch vụ mới
func CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	service := models.Service{
		Name:        req.Name,
		Type:        req.Type,
		Price:       req.Price,
		Unit:        req.Unit,
		IsRequired:  req.IsRequired,
		Description: req.Description,
		IsActive:    true,
	}

	if err := validator.ValidateService(&service); err != nil {
		response.AppError(c, err)
		return
	}

	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, service)
}

// UpdateService cập nhật dịch vụ
func UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeServiceNotFound)
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Type != nil {
		service.Type = *req.Type
	}
	if req.Price != nil {
		service.Price = *req.Price
	}
	if req.Unit != nil {
		service.Unit = *req.Unit
	}
	if req.IsRequired != nil {
		service.IsRequired = *req.IsRequired
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.IsActive != nil {
		service.IsActive = *req.IsActive
	}

	if err := validator.ValidateService(&service); err != nil {
		response.AppError(c, err)
		return
	}

	if err := config.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, service)
}

// DeleteService ngưng dịch vụ nếu đang được phòng dùng, xóa hẳn nếu không
func DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeServiceNotFound)
		return
	}

	var refCount int64
	if err := config.DB.Model(&models.RoomService{}).
		Where("service_id = ?", id).
		Count(&refCount).Error; err != nil {
		response.ServerError(c)
		return
	}

	if refCount > 0 {
		service.IsActive = false
		if err := config.DB.Save(&service).Error; err != nil {
			response.ServerError(c)
			return
		}
		response.Success(c, gin.H{"id": id, "deactivated": true})
		return
	}

	if err := config.DB.Delete(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetServiceStatistics thống kê dịch vụ theo loại
func GetServiceStatistics(c *gin.Context) {
	var stats dto.ServiceStatistics

	if err := config.DB.Model(&models.Service{}).Count(&stats.Total).Error; err != nil {
		response.ServerError(c)
		return
	}
	config.DB.Model(&models.Service{}).Where("type = ?", models.ServiceTypeFixed).Count(&stats.Fixed)
	config.DB.Model(&models.Service{}).Where("type = ?", models.ServiceTypeVariable).Count(&stats.Variable)
	config.DB.Model(&models.Service{}).Where("type = ?", models.ServiceTypeMetered).Count(&stats.Metered)
	config.DB.Model(&models.Service{}).Where("is_active = ?", true).Count(&stats.Active)

	response.Success(c, stats)
}
