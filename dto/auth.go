package dto

// LoginRequest request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest đăng nhập bằng Google ID token
type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// UserLoginResponse thông tin user kèm token sau khi đăng nhập
type UserLoginResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Avatar string `json:"avatar,omitempty"`
	Token  string `json:"token"`
}
