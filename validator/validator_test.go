package validator

import (
	"testing"
	"time"

	"rms/errors"
	"rms/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRoom(t *testing.T) {
	assert.NoError(t, ValidateRoom(&models.Room{Code: "P101", Price: 3000000}))

	err := ValidateRoom(&models.Room{Price: 3000000})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	err = ValidateRoom(&models.Room{Code: "P101", Price: -1})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)

	err = ValidateRoom(&models.Room{Code: "P101", Status: "BAY_MAU"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidStatus, errors.GetAppError(err).Code)
}

func TestValidateTenant(t *testing.T) {
	assert.NoError(t, ValidateTenant(&models.Tenant{FullName: "Nguyễn Văn A", Phone: "0901234567"}))

	err := ValidateTenant(&models.Tenant{Phone: "0901234567"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	err = ValidateTenant(&models.Tenant{FullName: "Nguyễn Văn A", Phone: "abc"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidPhone, errors.GetAppError(err).Code)

	err = ValidateTenant(&models.Tenant{FullName: "Nguyễn Văn A", Phone: "0901234567", Email: "khong-phai-email"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidEmail, errors.GetAppError(err).Code)

	err = ValidateTenant(&models.Tenant{FullName: "Nguyễn Văn A", Phone: "0901234567", Gender: "X"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
}

func TestValidateContract(t *testing.T) {
	valid := &models.Contract{
		ContractCode:  "HD001",
		RoomID:        1,
		MainTenantID:  1,
		StartDate:     time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent:   3000000,
		PaymentDueDay: 5,
	}
	assert.NoError(t, ValidateContract(valid))

	endBeforeStart := *valid
	endBeforeStart.EndDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	err := ValidateContract(&endBeforeStart)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)

	negativeRent := *valid
	negativeRent.MonthlyRent = -1
	assert.Error(t, ValidateContract(&negativeRent))

	badDueDay := *valid
	badDueDay.PaymentDueDay = 32
	assert.Error(t, ValidateContract(&badDueDay))

	missingRoom := *valid
	missingRoom.RoomID = 0
	err = ValidateContract(&missingRoom)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)
}

func TestValidateService(t *testing.T) {
	assert.NoError(t, ValidateService(&models.Service{Name: "Điện", Type: models.ServiceTypeMetered, Price: 3500}))

	err := ValidateService(&models.Service{Name: "Điện", Type: "THEO_MUA"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)

	err = ValidateService(&models.Service{Type: models.ServiceTypeFixed})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)
}

func TestValidateReading(t *testing.T) {
	valid := &models.UtilityReading{
		RoomID:          1,
		ServiceID:       1,
		Month:           6,
		Year:            2025,
		PreviousReading: 100,
		CurrentReading:  150,
	}
	assert.NoError(t, ValidateReading(valid))

	badMonth := *valid
	badMonth.Month = 13
	assert.Error(t, ValidateReading(&badMonth))

	// Chỉ số mới nhỏ hơn chỉ số cũ
	rollback := *valid
	rollback.CurrentReading = 50
	err := ValidateReading(&rollback)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)
}

func TestValidateMaintenance(t *testing.T) {
	userID := uint(1)
	valid := &models.Maintenance{
		RoomID:           1,
		Title:            "Hỏng vòi nước",
		Description:      "Vòi nước phòng tắm bị rò rỉ",
		ReportedByUserID: &userID,
	}
	assert.NoError(t, ValidateMaintenance(valid))

	noReporter := *valid
	noReporter.ReportedByUserID = nil
	err := ValidateMaintenance(&noReporter)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	badPriority := *valid
	badPriority.Priority = "SIEU_GAP"
	assert.Error(t, ValidateMaintenance(&badPriority))
}

func TestValidateUser(t *testing.T) {
	assert.NoError(t, ValidateUser(&models.User{Email: "a@b.com", Password: "secret1"}))

	err := ValidateUser(&models.User{Email: "sai", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidEmail, errors.GetAppError(err).Code)

	err = ValidateUser(&models.User{Email: "a@b.com", Password: "123"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidation, errors.GetAppError(err).Code)

	err = ValidateUser(&models.User{Email: "a@b.com", Password: "secret1", Role: "BOSS"})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidRole, errors.GetAppError(err).Code)
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-06-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDate("15/06/2025")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)
}
