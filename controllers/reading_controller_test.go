package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func setupReadingTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Room{},
		&models.Service{},
		&models.RoomService{},
		&models.UtilityReading{},
	))
	config.DB = db

	router := gin.New()
	router.POST("/utility-readings", CreateReading)
	router.GET("/utility-readings/pending/:year/:month", GetPendingReadings)
	return router
}

func seedMeteredSetup(t *testing.T) (*models.Room, *models.Service) {
	t.Helper()
	room := &models.Room{Code: "P101", Price: 3000000, Status: models.RoomStatusOccupied}
	require.NoError(t, config.DB.Create(room).Error)

	service := &models.Service{Name: "Điện", Type: models.ServiceTypeMetered, Price: 3500, Unit: "kwh", IsActive: true}
	require.NoError(t, config.DB.Create(service).Error)

	rs := &models.RoomService{RoomID: room.ID, ServiceID: service.ID, IsActive: true}
	require.NoError(t, config.DB.Create(rs).Error)

	return room, service
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateReadingComputesConsumption(t *testing.T) {
	router := setupReadingTest(t)
	room, service := seedMeteredSetup(t)

	prev := 100.0
	w := postJSON(router, "/utility-readings", gin.H{
		"roomId":          room.ID,
		"serviceId":       service.ID,
		"month":           6,
		"year":            2025,
		"currentReading":  150.0,
		"previousReading": prev,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var saved models.UtilityReading
	require.NoError(t, config.DB.Where("room_id = ? AND service_id = ?", room.ID, service.ID).First(&saved).Error)
	assert.Equal(t, 50.0, saved.Consumption)
}

func TestDuplicateReadingRejectedFirstRowUnchanged(t *testing.T) {
	router := setupReadingTest(t)
	room, service := seedMeteredSetup(t)

	w := postJSON(router, "/utility-readings", gin.H{
		"roomId":         room.ID,
		"serviceId":      service.ID,
		"month":          6,
		"year":           2025,
		"currentReading": 150.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Cùng (phòng, dịch vụ, tháng, năm) lần hai phải bị từ chối
	w = postJSON(router, "/utility-readings", gin.H{
		"roomId":         room.ID,
		"serviceId":      service.ID,
		"month":          6,
		"year":           2025,
		"currentReading": 999.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		ErrorCode string `json:"errorCode"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "READING_EXISTS", resp.ErrorCode)

	var readings []models.UtilityReading
	require.NoError(t, config.DB.Find(&readings).Error)
	require.Len(t, readings, 1)
	assert.Equal(t, 150.0, readings[0].CurrentReading)
}

func TestReadingPreviousChainsFromLastPeriod(t *testing.T) {
	router := setupReadingTest(t)
	room, service := seedMeteredSetup(t)

	w := postJSON(router, "/utility-readings", gin.H{
		"roomId":         room.ID,
		"serviceId":      service.ID,
		"month":          12,
		"year":           2024,
		"currentReading": 200.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Kỳ tiếp theo không gửi previousReading, lấy currentReading kỳ trước
	w = postJSON(router, "/utility-readings", gin.H{
		"roomId":         room.ID,
		"serviceId":      service.ID,
		"month":          1,
		"year":           2025,
		"currentReading": 260.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var saved models.UtilityReading
	require.NoError(t, config.DB.
		Where("room_id = ? AND service_id = ? AND month = ? AND year = ?", room.ID, service.ID, 1, 2025).
		First(&saved).Error)
	assert.Equal(t, 200.0, saved.PreviousReading)
	assert.Equal(t, 60.0, saved.Consumption)
}

func TestCreateReadingRejectsNonMeteredService(t *testing.T) {
	router := setupReadingTest(t)
	room, _ := seedMeteredSetup(t)

	fixed := &models.Service{Name: "Rác", Type: models.ServiceTypeFixed, Price: 50000, IsActive: true}
	require.NoError(t, config.DB.Create(fixed).Error)

	w := postJSON(router, "/utility-readings", gin.H{
		"roomId":         room.ID,
		"serviceId":      fixed.ID,
		"month":          6,
		"year":           2025,
		"currentReading": 10.0,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateReadingRejectsRollback(t *testing.T) {
	router := setupReadingTest(t)
	room, service := seedMeteredSetup(t)

	prev := 100.0
	w := postJSON(router, "/utility-readings", gin.H{
		"roomId":          room.ID,
		"serviceId":       service.ID,
		"month":           6,
		"year":            2025,
		"currentReading":  50.0,
		"previousReading": prev,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPendingReadingsScan(t *testing.T) {
	router := setupReadingTest(t)
	room, service := seedMeteredSetup(t)

	// Phòng OCCUPIED thứ hai cũng có dịch vụ điện, chưa ghi chỉ số
	room2 := &models.Room{Code: "P102", Price: 3000000, Status: models.RoomStatusOccupied}
	require.NoError(t, config.DB.Create(room2).Error)
	require.NoError(t, config.DB.Create(&models.RoomService{RoomID: room2.ID, ServiceID: service.ID, IsActive: true}).Error)

	// Phòng trống không được tính
	room3 := &models.Room{Code: "P103", Price: 3000000, Status: models.RoomStatusAvailable}
	require.NoError(t, config.DB.Create(room3).Error)
	require.NoError(t, config.DB.Create(&models.RoomService{RoomID: room3.ID, ServiceID: service.ID, IsActive: true}).Error)

	w := postJSON(router, "/utility-readings", gin.H{
		"roomId":         room.ID,
		"serviceId":      service.ID,
		"month":          6,
		"year":           2025,
		"currentReading": 150.0,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/utility-readings/pending/2025/6", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []struct {
			RoomID    uint `json:"roomId"`
			ServiceID uint `json:"serviceId"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, room2.ID, resp.Data[0].RoomID)
	assert.Equal(t, service.ID, resp.Data[0].ServiceID)
}
