package dto

// CreateUserRequest request tạo tài khoản nhân viên
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// UpdateUserRequest request cập nhật tài khoản
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Phone    *string `json:"phone"`
	Avatar   *string `json:"avatar"`
}

// UserStatistics thống kê tài khoản theo role
type UserStatistics struct {
	Total   int64 `json:"total"`
	Admin   int64 `json:"admin"`
	Manager int64 `json:"manager"`
	Staff   int64 `json:"staff"`
	Active  int64 `json:"active"`
}
