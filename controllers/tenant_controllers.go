package controllers

import (
	"rms/config"
	"rms/dto"
	"rms/errors"
	"rms/models"
	"rms/response"
	"rms/services"
	"rms/validator"

	"github.com/gin-gonic/gin"
)

// GetAllTenants lấy danh sách người thuê, lọc theo status/search
func GetAllTenants(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Tenant{})

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if gender := c.Query("gender"); gender != "" {
		query = query.Where("gender = ?", gender)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("full_name LIKE ? OR phone LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var tenants []models.Tenant
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&tenants).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, tenants, page, limit, int(total))
}

// GetTenantDetail lấy chi tiết người thuê
func GetTenantDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var tenant models.Tenant
	if err := config.DB.First(&tenant, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeTenantNotFound)
		return
	}

	response.Success(c, tenant)
}

// SearchTenants tìm kiếm mờ không phân biệt dấu theo tên/SĐT/CMND/quê quán
func SearchTenants(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "q là bắt buộc")
		return
	}

	var tenants []models.Tenant
	if err := config.DB.Find(&tenants).Error; err != nil {
		response.ServerError(c)
		return
	}

	results := services.SearchTenants(query, tenants)
	response.Success(c, results)
}

// GetTenantContracts lịch sử hợp đồng của người thuê, kể cả làm người thuê phụ
func GetTenantContracts(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var tenant models.Tenant
	if err := config.DB.First(&tenant, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeTenantNotFound)
		return
	}

	var contracts []models.Contract
	if err := config.DB.
		Preload("Room").
		Joins("JOIN contract_tenants ON contract_tenants.contract_id = contracts.id").
		Where("contract_tenants.tenant_id = ?", id).
		Order("contracts.created_at DESC").
		Find(&contracts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contracts)
}

// CreateTenant tạo người thuê mới
func CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	tenant := models.Tenant{
		FullName:         req.FullName,
		Gender:           req.Gender,
		IDCard:           req.IDCard,
		IDCardPlace:      req.IDCardPlace,
		Phone:            req.Phone,
		Email:            req.Email,
		Hometown:         req.Hometown,
		CurrentAddress:   req.CurrentAddress,
		Occupation:       req.Occupation,
		EmergencyContact: req.EmergencyContact,
		Status:           models.TenantStatusActive,
		Note:             req.Note,
	}

	if req.DateOfBirth != "" {
		dob, err := validator.ParseDate(req.DateOfBirth)
		if err != nil {
			response.AppError(c, err)
			return
		}
		tenant.DateOfBirth = &dob
	}
	if req.IDCardDate != "" {
		idCardDate, err := validator.ParseDate(req.IDCardDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		tenant.IDCardDate = &idCardDate
	}

	if err := validator.ValidateTenant(&tenant); err != nil {
		response.AppError(c, err)
		return
	}

	if tenant.IDCard != nil && *tenant.IDCard != "" {
		var existing models.Tenant
		if err := config.DB.Where("id_card = ?", *tenant.IDCard).First(&existing).Error; err == nil {
			response.Error(c, 400, errors.ErrCodeIDCardExists, "Số CMND/CCCD đã tồn tại")
			return
		}
	}

	if err := config.DB.Create(&tenant).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, tenant)
}

// UpdateTenant cập nhật thông tin người thuê
func UpdateTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var tenant models.Tenant
	if err := config.DB.First(&tenant, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeTenantNotFound)
		return
	}

	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.FullName != nil {
		tenant.FullName = *req.FullName
	}
	if req.Gender != nil {
		tenant.Gender = *req.Gender
	}
	if req.IDCard != nil {
		// Đổi CMND/CCCD thì phải kiểm tra trùng với người khác
		if *req.IDCard != "" {
			var existing models.Tenant
			if err := config.DB.Where("id_card = ? AND id != ?", *req.IDCard, id).
				First(&existing).Error; err == nil {
				response.Error(c, 400, errors.ErrCodeIDCardExists, "Số CMND/CCCD đã tồn tại")
				return
			}
		}
		tenant.IDCard = req.IDCard
	}
	if req.IDCardPlace != nil {
		tenant.IDCardPlace = *req.IDCardPlace
	}
	if req.Phone != nil {
		tenant.Phone = *req.Phone
	}
	if req.Email != nil {
		tenant.Email = *req.Email
	}
	if req.Hometown != nil {
		tenant.Hometown = *req.Hometown
	}
	if req.CurrentAddress != nil {
		tenant.CurrentAddress = *req.CurrentAddress
	}
	if req.Occupation != nil {
		tenant.Occupation = *req.Occupation
	}
	if req.EmergencyContact != nil {
		tenant.EmergencyContact = req.EmergencyContact
	}
	if req.Status != nil {
		if *req.Status != models.TenantStatusActive && *req.Status != models.TenantStatusInactive {
			response.BadRequest(c, "Trạng thái người thuê không hợp lệ")
			return
		}
		tenant.Status = *req.Status
	}
	if req.Note != nil {
		tenant.Note = *req.Note
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := validator.ParseDate(*req.DateOfBirth)
		if err != nil {
			response.AppError(c, err)
			return
		}
		tenant.DateOfBirth = &dob
	}
	if req.IDCardDate != nil && *req.IDCardDate != "" {
		idCardDate, err := validator.ParseDate(*req.IDCardDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		tenant.IDCardDate = &idCardDate
	}

	if err := validator.ValidateTenant(&tenant); err != nil {
		response.AppError(c, err)
		return
	}

	if err := config.DB.Save(&tenant).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, tenant)
}

// DeleteTenant xóa người thuê nếu không còn hợp đồng tham chiếu
func DeleteTenant(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var tenant models.Tenant
	if err := config.DB.First(&tenant, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeTenantNotFound)
		return
	}

	var refCount int64
	if err := config.DB.Model(&models.ContractTenant{}).
		Where("tenant_id = ?", id).
		Count(&refCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if refCount > 0 {
		response.BadRequest(c, "Không thể xóa người thuê đang có hợp đồng")
		return
	}

	if err := config.DB.Delete(&tenant).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetTenantStatistics thống kê người thuê
func GetTenantStatistics(c *gin.Context) {
	var stats dto.TenantStatistics

	if err := config.DB.Model(&models.Tenant{}).Count(&stats.Total).Error; err != nil {
		response.ServerError(c)
		return
	}
	config.DB.Model(&models.Tenant{}).Where("status = ?", models.TenantStatusActive).Count(&stats.Active)
	config.DB.Model(&models.Tenant{}).Where("status = ?", models.TenantStatusInactive).Count(&stats.Inactive)

	// Số người đang ở: có mặt trong hợp đồng ACTIVE
	config.DB.Model(&models.ContractTenant{}).
		Joins("JOIN contracts ON contracts.id = contract_tenants.contract_id").
		Where("contracts.status = ?", models.ContractStatusActive).
		Distinct("contract_tenants.tenant_id").
		Count(&stats.Renting)

	response.Success(c, stats)
}
