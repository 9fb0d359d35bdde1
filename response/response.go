package response

import (
	"net/http"

	"rms/errors"

	"github.com/gin-gonic/gin"
)

// Response định nghĩa cấu trúc response
type Response struct {
	Code       int              `json:"code"`
	Mess       string           `json:"mess"`
	ErrorCode  errors.ErrorCode `json:"errorCode,omitempty"`
	Data       interface{}      `json:"data,omitempty"`
	Pagination *Pagination      `json:"pagination,omitempty"`
}

// Pagination định nghĩa cấu trúc phân trang
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination tính totalPages từ tổng số dòng
func NewPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// Created trả về response tạo mới thành công
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Thành công",
		Data: data,
	})
}

// SuccessWithPagination trả về response thành công có phân trang
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code:       1,
		Mess:       "Thành công",
		Data:       data,
		Pagination: NewPagination(page, limit, total),
	})
}

// Error trả về response lỗi kèm mã lỗi ổn định để client phân nhánh
func Error(c *gin.Context, status int, code errors.ErrorCode, message string) {
	c.JSON(status, Response{
		Code:      0,
		Mess:      message,
		ErrorCode: code,
	})
}

// AppError map AppError sang HTTP status tương ứng.
// Lỗi không xác định trả message cố định, error gốc chỉ ghi log.
func AppError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		ServerError(c)
		return
	}
	status := http.StatusBadRequest
	switch {
	case errors.IsNotFound(err):
		status = http.StatusNotFound
	case appErr.Code == errors.ErrCodeDBError:
		status = http.StatusInternalServerError
	case appErr.Code == errors.ErrCodeUnauthorized || appErr.Code == errors.ErrCodeInvalidToken:
		status = http.StatusUnauthorized
	}
	if status == http.StatusInternalServerError {
		ServerError(c)
		return
	}
	Error(c, status, appErr.Code, appErr.Message)
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code:      0,
		Mess:      "Lỗi server",
		ErrorCode: errors.ErrCodeDBError,
	})
}

// Unauthorized trả về response chưa xác thực
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code:      0,
		Mess:      "Chưa xác thực",
		ErrorCode: errors.ErrCodeUnauthorized,
	})
}

// Forbidden trả về response không có quyền
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code:      0,
		Mess:      "Không có quyền truy cập",
		ErrorCode: errors.ErrCodeUnauthorized,
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, code errors.ErrorCode) {
	c.JSON(http.StatusNotFound, Response{
		Code:      0,
		Mess:      "Không tìm thấy",
		ErrorCode: code,
	})
}

// ValidationError trả về response lỗi validation
func ValidationError(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:      0,
		Mess:      message,
		ErrorCode: errors.ErrCodeValidation,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code:      0,
		Mess:      message,
		ErrorCode: errors.ErrCodeValidation,
	})
}
