package validator

import (
	"regexp"
	"time"

	"rms/errors"
	"rms/models"
)

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã phòng không được để trống", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng không được âm", nil)
	}

	if room.MaxOccupants < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số người tối đa không được âm", nil)
	}

	if room.Status != "" {
		if err := room.ValidateStatus(); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidStatus, "Trạng thái phòng không hợp lệ", err)
		}
	}

	return nil
}

// ValidateTenant validate thông tin người thuê
func ValidateTenant(tenant *models.Tenant) error {
	if tenant.FullName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ tên không được để trống", nil)
	}

	if tenant.Phone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if !isValidPhone(tenant.Phone) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if tenant.Email != "" && !isValidEmail(tenant.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if tenant.Gender != "" &&
		tenant.Gender != models.GenderMale &&
		tenant.Gender != models.GenderFemale &&
		tenant.Gender != models.GenderOther {
		return errors.NewAppError(errors.ErrCodeValidation, "Giới tính không hợp lệ", nil)
	}

	return nil
}

// ValidateContract validate thông tin hợp đồng trước khi tạo
func ValidateContract(contract *models.Contract) error {
	if contract.ContractCode == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã hợp đồng không được để trống", nil)
	}

	if contract.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phòng không được để trống", nil)
	}

	if contract.MainTenantID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Người thuê chính không được để trống", nil)
	}

	if contract.StartDate.IsZero() || contract.EndDate.IsZero() {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Ngày bắt đầu và kết thúc không được để trống", nil)
	}

	if contract.EndDate.Before(contract.StartDate) {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày kết thúc phải sau ngày bắt đầu", nil)
	}

	if contract.MonthlyRent < 0 || contract.Deposit < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Tiền thuê và tiền cọc không được âm", nil)
	}

	if contract.PaymentDueDay < 0 || contract.PaymentDueDay > 31 {
		return errors.NewAppError(errors.ErrCodeValidation, "Ngày đến hạn thanh toán phải trong khoảng 1-31", nil)
	}

	return nil
}

// ValidateService validate thông tin dịch vụ
func ValidateService(service *models.Service) error {
	if service.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên dịch vụ không được để trống", nil)
	}

	if !models.IsValidServiceType(service.Type) {
		return errors.NewAppError(errors.ErrCodeValidation, "Loại dịch vụ không hợp lệ", nil)
	}

	if service.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá dịch vụ không được âm", nil)
	}

	return nil
}

// ValidateReading validate chỉ số điện nước
func ValidateReading(reading *models.UtilityReading) error {
	if reading.RoomID == 0 || reading.ServiceID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phòng và dịch vụ không được để trống", nil)
	}

	if reading.Month < 1 || reading.Month > 12 {
		return errors.NewAppError(errors.ErrCodeValidation, "Tháng phải trong khoảng 1-12", nil)
	}

	if reading.Year < 2000 {
		return errors.NewAppError(errors.ErrCodeValidation, "Năm không hợp lệ", nil)
	}

	if reading.CurrentReading < reading.PreviousReading {
		return errors.NewAppError(errors.ErrCodeValidation, "Chỉ số mới không được nhỏ hơn chỉ số cũ", nil)
	}

	return nil
}

// ValidateMaintenance validate phiếu bảo trì
func ValidateMaintenance(m *models.Maintenance) error {
	if m.RoomID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Phòng không được để trống", nil)
	}

	if m.Title == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tiêu đề không được để trống", nil)
	}

	if m.Description == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mô tả không được để trống", nil)
	}

	if m.ReportedByTenantID == nil && m.ReportedByUserID == nil {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Người báo không được để trống", nil)
	}

	if m.Priority != "" && !models.IsValidMaintenancePriority(m.Priority) {
		return errors.NewAppError(errors.ErrCodeValidation, "Độ ưu tiên không hợp lệ", nil)
	}

	return nil
}

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.Role != "" && !models.IsValidRole(user.Role) {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ParseDate parse chuỗi ngày dạng 2006-01-02
func ParseDate(dateStr string) (time.Time, error) {
	parsed, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Định dạng ngày không hợp lệ, cần YYYY-MM-DD", err)
	}
	return parsed, nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^[0-9]{10,11}$`)
	return phoneRegex.MatchString(phone)
}
