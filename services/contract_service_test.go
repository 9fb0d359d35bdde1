package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"rms/errors"
	"rms/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Room{},
		&models.Tenant{},
		&models.Contract{},
		&models.ContractTenant{},
	))

	return db
}

var roomSeq uint64

func seedRoom(t *testing.T, db *gorm.DB, status string) *models.Room {
	t.Helper()
	room := &models.Room{
		Code:   fmt.Sprintf("P%03d", atomic.AddUint64(&roomSeq, 1)),
		Name:   "Phòng test",
		Price:  3000000,
		Status: status,
	}
	require.NoError(t, db.Create(room).Error)
	return room
}

func seedTenant(t *testing.T, db *gorm.DB, name string) *models.Tenant {
	t.Helper()
	tenant := &models.Tenant{
		FullName: name,
		Phone:    "0901234567",
		Status:   models.TenantStatusActive,
	}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func newTestService(db *gorm.DB) *ContractService {
	return NewContractService(ContractServiceOptions{DB: db})
}

func draftContract(room *models.Room, tenant *models.Tenant, code string) *models.Contract {
	return &models.Contract{
		ContractCode: code,
		RoomID:       room.ID,
		MainTenantID: tenant.ID,
		StartDate:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRent:  3000000,
		Deposit:      3000000,
	}
}

func TestCreateContractReservesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn A")

	contract := draftContract(room, tenant, "HD001")
	skipped, err := svc.Create(contract, nil)
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, models.ContractStatusDraft, contract.Status)

	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusReserved, savedRoom.Status)

	// Người thuê chính phải có dòng contract_tenants
	var mainRow models.ContractTenant
	require.NoError(t, db.Where("contract_id = ? AND is_main_tenant = ?", contract.ID, true).First(&mainRow).Error)
	assert.Equal(t, tenant.ID, mainRow.TenantID)
}

func TestCreateContractOnOccupiedRoomRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	tenant := seedTenant(t, db, "Nguyễn Văn B")

	for _, status := range []string{models.RoomStatusOccupied, models.RoomStatusMaintenance} {
		room := seedRoom(t, db, status)
		contract := draftContract(room, tenant, "HD-"+status)

		_, err := svc.Create(contract, nil)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrCodeRoomNotAvailable, appErr.Code)

		// Không có gì được ghi
		var count int64
		db.Model(&models.Contract{}).Where("contract_code = ?", contract.ContractCode).Count(&count)
		assert.Zero(t, count)

		var savedRoom models.Room
		require.NoError(t, db.First(&savedRoom, room.ID).Error)
		assert.Equal(t, status, savedRoom.Status)
	}
}

func TestCreateContractMissingRoomOrTenant(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn C")

	contract := draftContract(room, tenant, "HD002")
	contract.RoomID = 9999
	_, err := svc.Create(contract, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRoomNotFound, errors.GetAppError(err).Code)

	contract = draftContract(room, tenant, "HD003")
	contract.MainTenantID = 9999
	_, err = svc.Create(contract, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeTenantNotFound, errors.GetAppError(err).Code)

	// Phòng chưa bị đặt chỗ vì cả hai lần đều thất bại
	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, savedRoom.Status)
}

func TestCreateContractSkipsUnknownAdditionalTenants(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	main := seedTenant(t, db, "Nguyễn Văn D")
	extra := seedTenant(t, db, "Trần Thị E")

	contract := draftContract(room, main, "HD004")
	skipped, err := svc.Create(contract, []uint{extra.ID, 8888, main.ID})
	require.NoError(t, err)
	assert.Equal(t, []uint{8888}, skipped)

	var rows []models.ContractTenant
	require.NoError(t, db.Where("contract_id = ?", contract.ID).Find(&rows).Error)
	// Người thuê chính + một người thuê phụ hợp lệ, id trùng main bị bỏ qua
	assert.Len(t, rows, 2)
}

func TestActivateContractOccupiesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn F")

	contract := draftContract(room, tenant, "HD005")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)

	activated, err := svc.Activate(contract.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusActive, activated.Status)

	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, savedRoom.Status)
}

func TestActivateNonDraftRejectedWithoutMutation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn G")

	contract := draftContract(room, tenant, "HD006")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)
	_, err = svc.Activate(contract.ID)
	require.NoError(t, err)

	// Kích hoạt lần hai phải bị từ chối, không có gì thay đổi
	_, err = svc.Activate(contract.ID)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidState, errors.GetAppError(err).Code)

	var saved models.Contract
	require.NoError(t, db.First(&saved, contract.ID).Error)
	assert.Equal(t, models.ContractStatusActive, saved.Status)

	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, savedRoom.Status)
}

func TestActivateMissingContract(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)

	_, err := svc.Activate(12345)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeContractNotFound, errors.GetAppError(err).Code)
}

func TestTerminateReleasesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn H")

	contract := draftContract(room, tenant, "HD007")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)
	_, err = svc.Activate(contract.ID)
	require.NoError(t, err)

	date := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	terminated, err := svc.Terminate(contract.ID, date, "người thuê trả phòng")
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusTerminated, terminated.Status)
	require.NotNil(t, terminated.TerminationDate)
	assert.Equal(t, "người thuê trả phòng", terminated.TerminationReason)

	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, savedRoom.Status)
}

func TestTerminateDefaultsDateToNow(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn I")

	contract := draftContract(room, tenant, "HD008")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)

	terminated, err := svc.Terminate(contract.ID, time.Time{}, "hủy nháp")
	require.NoError(t, err)
	require.NotNil(t, terminated.TerminationDate)
	assert.WithinDuration(t, time.Now(), *terminated.TerminationDate, 5*time.Second)
}

func TestDoubleTerminateRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn K")

	contract := draftContract(room, tenant, "HD009")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)
	_, err = svc.Terminate(contract.ID, time.Time{}, "lần một")
	require.NoError(t, err)

	_, err = svc.Terminate(contract.ID, time.Time{}, "lần hai")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidState, errors.GetAppError(err).Code)

	var saved models.Contract
	require.NoError(t, db.First(&saved, contract.ID).Error)
	assert.Equal(t, "lần một", saved.TerminationReason)
}

func TestRenewExtendsActiveContract(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn L")

	contract := draftContract(room, tenant, "HD010")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)
	_, err = svc.Activate(contract.ID)
	require.NoError(t, err)

	newEndDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	renewed, err := svc.Renew(contract.ID, newEndDate)
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusActive, renewed.Status)
	assert.Equal(t, newEndDate, renewed.EndDate.UTC())

	// Gia hạn không đụng tới phòng
	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, savedRoom.Status)
}

func TestRenewDraftRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn M")

	contract := draftContract(room, tenant, "HD011")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)

	_, err = svc.Renew(contract.ID, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidState, errors.GetAppError(err).Code)
}

func TestDeleteDraftContractResetsReservedRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn N")

	contract := draftContract(room, tenant, "HD012")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(contract.ID))

	var count int64
	db.Model(&models.Contract{}).Where("id = ?", contract.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.ContractTenant{}).Where("contract_id = ?", contract.ID).Count(&count)
	assert.Zero(t, count)

	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, savedRoom.Status)
}

func TestDeleteTerminatedContractLeavesRoomAlone(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn O")

	contract := draftContract(room, tenant, "HD013")
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)
	_, err = svc.Activate(contract.ID)
	require.NoError(t, err)
	_, err = svc.Terminate(contract.ID, time.Time{}, "trả phòng")
	require.NoError(t, err)

	// Sau thanh lý phòng đã AVAILABLE, đổi tay sang MAINTENANCE rồi xóa
	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("status", models.RoomStatusMaintenance).Error)

	require.NoError(t, svc.Delete(contract.ID))

	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusMaintenance, savedRoom.Status)
}

func TestExpireOverdueFlipsOnlyOverdueActive(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	tenant := seedTenant(t, db, "Nguyễn Văn P")

	roomOverdue := seedRoom(t, db, models.RoomStatusAvailable)
	overdue := draftContract(roomOverdue, tenant, "HD014")
	overdue.EndDate = time.Now().AddDate(0, 0, -1)
	_, err := svc.Create(overdue, nil)
	require.NoError(t, err)
	_, err = svc.Activate(overdue.ID)
	require.NoError(t, err)

	roomCurrent := seedRoom(t, db, models.RoomStatusAvailable)
	current := draftContract(roomCurrent, tenant, "HD015")
	current.EndDate = time.Now().AddDate(0, 6, 0)
	_, err = svc.Create(current, nil)
	require.NoError(t, err)
	_, err = svc.Activate(current.ID)
	require.NoError(t, err)

	roomDraft := seedRoom(t, db, models.RoomStatusAvailable)
	draft := draftContract(roomDraft, tenant, "HD016")
	draft.EndDate = time.Now().AddDate(0, 0, -10)
	_, err = svc.Create(draft, nil)
	require.NoError(t, err)

	expired, err := svc.ExpireOverdue(time.Now())
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, overdue.ID, expired[0].ID)

	var saved models.Contract
	require.NoError(t, db.First(&saved, overdue.ID).Error)
	assert.Equal(t, models.ContractStatusExpired, saved.Status)

	saved = models.Contract{}
	require.NoError(t, db.First(&saved, current.ID).Error)
	assert.Equal(t, models.ContractStatusActive, saved.Status)

	saved = models.Contract{}
	require.NoError(t, db.First(&saved, draft.ID).Error)
	assert.Equal(t, models.ContractStatusDraft, saved.Status)

	// Phòng của hợp đồng hết hạn vẫn OCCUPIED cho tới khi thanh lý
	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, roomOverdue.ID).Error)
	assert.Equal(t, models.RoomStatusOccupied, savedRoom.Status)
}

func TestTerminateExpiredContractReleasesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestService(db)
	room := seedRoom(t, db, models.RoomStatusAvailable)
	tenant := seedTenant(t, db, "Nguyễn Văn Q")

	contract := draftContract(room, tenant, "HD017")
	contract.EndDate = time.Now().AddDate(0, 0, -1)
	_, err := svc.Create(contract, nil)
	require.NoError(t, err)
	_, err = svc.Activate(contract.ID)
	require.NoError(t, err)

	_, err = svc.ExpireOverdue(time.Now())
	require.NoError(t, err)

	_, err = svc.Terminate(contract.ID, time.Time{}, "thanh lý sau hết hạn")
	require.NoError(t, err)

	var savedRoom models.Room
	require.NoError(t, db.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusAvailable, savedRoom.Status)
}
