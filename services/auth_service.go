package services

import (
	stderrors "errors"
	"os"
	"time"

	"rms/errors"
	"rms/models"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInfo struct {
	UserId uint   `json:"userid"`
	Role   string `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so sánh mật khẩu với hash đã lưu
func CheckPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// GenerateToken tạo JWT cho user
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserInfo: UserInfo{
			UserId: user.ID,
			Role:   user.Role,
		},
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(72 * time.Hour).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// Login kiểm tra email/mật khẩu và trả về user kèm token
func Login(db *gorm.DB, email, password string) (*models.User, string, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errors.NewAppError(errors.ErrCodeUserNotFound, "Email hoặc mật khẩu không đúng", nil)
		}
		return nil, "", errors.NewAppError(errors.ErrCodeDBError, "Lỗi database", err)
	}

	if !user.IsActive {
		return nil, "", errors.NewAppError(errors.ErrCodeUnauthorized, "Tài khoản đã bị khóa", nil)
	}

	if err := CheckPassword(user.Password, password); err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeInvalidPassword, "Email hoặc mật khẩu không đúng", nil)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeDBError, "Lỗi database", err)
	}

	token, err := GenerateToken(&user)
	if err != nil {
		return nil, "", errors.NewAppError(errors.ErrCodeDBError, "Không thể tạo token", err)
	}

	return &user, token, nil
}

// CreateGoogleUser tạo tài khoản STAFF từ thông tin Google
func CreateGoogleUser(db *gorm.DB, name, email, picture string) (*models.User, error) {
	user := models.User{
		Name:   name,
		Email:  email,
		Avatar: picture,
		Role:   models.RoleStaff,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi database", err)
	}
	return &user, nil
}
