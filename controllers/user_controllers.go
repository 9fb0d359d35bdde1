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

// GetAllUsers danh sách tài khoản nhân viên
func GetAllUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.User{})

	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if isActive := c.Query("isActive"); isActive != "" {
		query = query.Where("is_active = ?", isActive == "true")
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var users []models.User
	if err := query.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&users).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, users, page, limit, int(total))
}

// GetUserDetail chi tiết tài khoản
func GetUserDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeUserNotFound)
		return
	}

	response.Success(c, user)
}

// CreateUser tạo tài khoản nhân viên mới
func CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		Phone:    req.Phone,
		IsActive: true,
	}
	if user.Role == "" {
		user.Role = models.RoleStaff
	}

	if err := validator.ValidateUser(&user); err != nil {
		response.AppError(c, err)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		response.Error(c, 400, errors.ErrCodeEmailExists, "Email đã tồn tại")
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashed

	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, user)
}

// UpdateUser cập nhật tài khoản
func UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeUserNotFound)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Role != nil {
		if !models.IsValidRole(*req.Role) {
			response.Error(c, 400, errors.ErrCodeInvalidRole, "Role không hợp lệ")
			return
		}
		user.Role = *req.Role
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Password != nil {
		if len(*req.Password) < 6 {
			response.BadRequest(c, "Mật khẩu phải có ít nhất 6 ký tự")
			return
		}
		hashed, err := services.HashPassword(*req.Password)
		if err != nil {
			response.ServerError(c)
			return
		}
		user.Password = hashed
	}

	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, user)
}

// ToggleUserActive khóa hoặc mở khóa tài khoản
func ToggleUserActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeUserNotFound)
		return
	}

	user.IsActive = !user.IsActive
	if err := config.DB.Model(&user).Update("is_active", user.IsActive).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, user)
}

// DeleteUser xóa tài khoản
func DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeUserNotFound)
		return
	}

	if currentID, exists := c.Get("userID"); exists {
		if uid, ok := currentID.(uint); ok && uid == user.ID {
			response.BadRequest(c, "Không thể tự xóa tài khoản của mình")
			return
		}
	}

	if err := config.DB.Delete(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// GetUserStatistics thống kê tài khoản theo role
func GetUserStatistics(c *gin.Context) {
	var stats dto.UserStatistics

	if err := config.DB.Model(&models.User{}).Count(&stats.Total).Error; err != nil {
		response.ServerError(c)
		return
	}
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&stats.Admin)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleManager).Count(&stats.Manager)
	config.DB.Model(&models.User{}).Where("role = ?", models.RoleStaff).Count(&stats.Staff)
	config.DB.Model(&models.User{}).Where("is_active = ?", true).Count(&stats.Active)

	response.Success(c, stats)
}
