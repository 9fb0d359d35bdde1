package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi trả về cho client
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized    ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken    ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidPassword ErrorCode = "INVALID_PASSWORD"
	ErrCodeInvalidEmail    ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone    ErrorCode = "INVALID_PHONE"
	ErrCodeInvalidRole     ErrorCode = "INVALID_ROLE"
	ErrCodeEmailExists     ErrorCode = "EMAIL_EXISTS"

	// Not found errors
	ErrCodeRoomNotFound        ErrorCode = "ROOM_NOT_FOUND"
	ErrCodeTenantNotFound      ErrorCode = "TENANT_NOT_FOUND"
	ErrCodeContractNotFound    ErrorCode = "CONTRACT_NOT_FOUND"
	ErrCodeServiceNotFound     ErrorCode = "SERVICE_NOT_FOUND"
	ErrCodeReadingNotFound     ErrorCode = "READING_NOT_FOUND"
	ErrCodeMaintenanceNotFound ErrorCode = "MAINTENANCE_NOT_FOUND"
	ErrCodeUserNotFound        ErrorCode = "USER_NOT_FOUND"

	// State errors
	ErrCodeInvalidState     ErrorCode = "INVALID_STATE"
	ErrCodeRoomNotAvailable ErrorCode = "ROOM_NOT_AVAILABLE"

	// Database errors
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidStatus ErrorCode = "INVALID_STATUS"
	ErrCodeIDCardExists  ErrorCode = "ID_CARD_EXISTS"
	ErrCodeReadingExists ErrorCode = "READING_EXISTS"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// IsNotFound kiểm tra lỗi có thuộc nhóm not-found không
func IsNotFound(err error) bool {
	appErr := GetAppError(err)
	if appErr == nil {
		return false
	}
	switch appErr.Code {
	case ErrCodeRoomNotFound, ErrCodeTenantNotFound, ErrCodeContractNotFound,
		ErrCodeServiceNotFound, ErrCodeReadingNotFound, ErrCodeMaintenanceNotFound,
		ErrCodeUserNotFound:
		return true
	}
	return false
}
