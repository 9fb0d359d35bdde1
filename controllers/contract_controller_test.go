package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"rms/config"
	"rms/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupContractTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Room{},
		&models.Tenant{},
		&models.Contract{},
		&models.ContractTenant{},
	))
	config.DB = db

	router := gin.New()
	router.POST("/contracts", CreateContract)
	router.GET("/contracts/:id", GetContractDetail)
	router.POST("/contracts/:id/activate", ActivateContract)
	router.POST("/contracts/:id/terminate", TerminateContract)
	router.POST("/contracts/:id/renew", RenewContract)
	return router
}

func seedContractSetup(t *testing.T) (*models.Room, *models.Tenant) {
	t.Helper()
	room := &models.Room{Code: "P201", Price: 3000000, Status: models.RoomStatusAvailable}
	require.NoError(t, config.DB.Create(room).Error)

	tenant := &models.Tenant{FullName: "Nguyễn Văn A", Phone: "0901234567", Status: models.TenantStatusActive}
	require.NoError(t, config.DB.Create(tenant).Error)

	return room, tenant
}

type envelope struct {
	Code      int             `json:"code"`
	Mess      string          `json:"mess"`
	ErrorCode string          `json:"errorCode"`
	Data      json.RawMessage `json:"data"`
}

func doJSON(router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader([]byte("{}"))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestCreateContractEndpoint(t *testing.T) {
	router := setupContractTest(t)
	room, tenant := seedContractSetup(t)

	w, env := doJSON(router, http.MethodPost, "/contracts", gin.H{
		"contractCode": "HD100",
		"roomId":       room.ID,
		"mainTenantId": tenant.ID,
		"startDate":    "2025-01-01",
		"endDate":      "2025-12-31",
		"monthlyRent":  3000000,
		"deposit":      3000000,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, env.Code)

	var savedRoom models.Room
	require.NoError(t, config.DB.First(&savedRoom, room.ID).Error)
	assert.Equal(t, models.RoomStatusReserved, savedRoom.Status)
}

func TestCreateContractReportsSkippedTenants(t *testing.T) {
	router := setupContractTest(t)
	room, tenant := seedContractSetup(t)

	w, env := doJSON(router, http.MethodPost, "/contracts", gin.H{
		"contractCode":      "HD101",
		"roomId":            room.ID,
		"mainTenantId":      tenant.ID,
		"additionalTenants": []uint{7777},
		"startDate":         "2025-01-01",
		"endDate":           "2025-12-31",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var data struct {
		SkippedTenantIds []uint `json:"skippedTenantIds"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []uint{7777}, data.SkippedTenantIds)
}

func TestCreateContractDuplicateCode(t *testing.T) {
	router := setupContractTest(t)
	room, tenant := seedContractSetup(t)

	body := gin.H{
		"contractCode": "HD102",
		"roomId":       room.ID,
		"mainTenantId": tenant.ID,
		"startDate":    "2025-01-01",
		"endDate":      "2025-12-31",
	}
	w, _ := doJSON(router, http.MethodPost, "/contracts", body)
	require.Equal(t, http.StatusCreated, w.Code)

	// Phòng đã RESERVED nên tạo tiếp trên phòng khác, mã trùng vẫn bị chặn
	room2 := &models.Room{Code: "P202", Price: 3000000, Status: models.RoomStatusAvailable}
	require.NoError(t, config.DB.Create(room2).Error)
	body["roomId"] = room2.ID

	w, env := doJSON(router, http.MethodPost, "/contracts", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DB_DUPLICATE", env.ErrorCode)
}

func TestCreateContractInvalidDates(t *testing.T) {
	router := setupContractTest(t)
	room, tenant := seedContractSetup(t)

	w, env := doJSON(router, http.MethodPost, "/contracts", gin.H{
		"contractCode": "HD103",
		"roomId":       room.ID,
		"mainTenantId": tenant.ID,
		"startDate":    "2025-12-31",
		"endDate":      "2025-01-01",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.ErrorCode)
}

func TestActivateEndpointInvalidState(t *testing.T) {
	router := setupContractTest(t)
	room, tenant := seedContractSetup(t)

	_, env := doJSON(router, http.MethodPost, "/contracts", gin.H{
		"contractCode": "HD104",
		"roomId":       room.ID,
		"mainTenantId": tenant.ID,
		"startDate":    "2025-01-01",
		"endDate":      "2025-12-31",
	})
	var data struct {
		Contract models.Contract `json:"contract"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	contractID := data.Contract.ID

	w, _ := doJSON(router, http.MethodPost, "/contracts/"+itoa(contractID)+"/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Lần hai: trạng thái không còn DRAFT
	w, env = doJSON(router, http.MethodPost, "/contracts/"+itoa(contractID)+"/activate", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_STATE", env.ErrorCode)
}

func TestActivateEndpointNotFound(t *testing.T) {
	router := setupContractTest(t)
	seedContractSetup(t)

	w, env := doJSON(router, http.MethodPost, "/contracts/99999/activate", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "CONTRACT_NOT_FOUND", env.ErrorCode)
}

func TestRenewEndpointRequiresLaterDate(t *testing.T) {
	router := setupContractTest(t)
	room, tenant := seedContractSetup(t)

	_, env := doJSON(router, http.MethodPost, "/contracts", gin.H{
		"contractCode": "HD105",
		"roomId":       room.ID,
		"mainTenantId": tenant.ID,
		"startDate":    "2025-01-01",
		"endDate":      "2025-12-31",
	})
	var data struct {
		Contract models.Contract `json:"contract"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	contractID := data.Contract.ID

	w, _ := doJSON(router, http.MethodPost, "/contracts/"+itoa(contractID)+"/activate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(router, http.MethodPost, "/contracts/"+itoa(contractID)+"/renew", gin.H{
		"newEndDate": "2025-06-30",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(router, http.MethodPost, "/contracts/"+itoa(contractID)+"/renew", gin.H{
		"newEndDate": "2026-12-31",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
