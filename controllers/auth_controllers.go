package controllers

import (
	"context"
	"os"

	"rms/config"
	"rms/dto"
	"rms/errors"
	"rms/models"
	"rms/response"
	"rms/services"
	"rms/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
)

// Login đăng nhập bằng email và mật khẩu
func Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Email và mật khẩu là bắt buộc")
		return
	}

	user, token, err := services.Login(config.DB, req.Email, req.Password)
	if err != nil {
		appErr := errors.GetAppError(err)
		if appErr != nil && (appErr.Code == errors.ErrCodeUserNotFound || appErr.Code == errors.ErrCodeInvalidPassword) {
			response.Error(c, 401, errors.ErrCodeInvalidPassword, "Email hoặc mật khẩu không đúng")
			return
		}
		response.AppError(c, err)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
		Token:  token,
	})
}

// Register tạo tài khoản STAFF mới bằng email/mật khẩu
func Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     models.RoleStaff,
		Phone:    req.Phone,
		IsActive: true,
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

// AuthGoogle đăng nhập bằng Google ID token, tài khoản mới tạo với role STAFF
func AuthGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "credential là bắt buộc")
		return
	}

	payload, err := idtoken.Validate(context.Background(), req.Credential, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Error(c, 401, errors.ErrCodeInvalidToken, "Token Google không hợp lệ")
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	if email == "" {
		response.Error(c, 401, errors.ErrCodeInvalidToken, "Token Google thiếu email")
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		created, err := services.CreateGoogleUser(config.DB, name, email, picture)
		if err != nil {
			response.AppError(c, err)
			return
		}
		user = *created
	}

	if !user.IsActive {
		response.Error(c, 401, errors.ErrCodeUnauthorized, "Tài khoản đã bị khóa")
		return
	}

	token, err := services.GenerateToken(&user)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.UserLoginResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		Avatar: user.Avatar,
		Token:  token,
	})
}

// GetProfile thông tin tài khoản đang đăng nhập
func GetProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c, errors.ErrCodeUserNotFound)
		return
	}

	response.Success(c, user)
}
