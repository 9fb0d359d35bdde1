package controllers

import (
	"strconv"
	"time"

	"rms/config"
	"rms/dto"
	"rms/errors"
	"rms/models"
	"rms/response"
	"rms/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// buildReading dựng bản ghi chỉ số từ request, nối chỉ số cũ từ kỳ trước
// nếu client không gửi previousReading.
func buildReading(db *gorm.DB, roomID, serviceID uint, month, year int, currentReading float64, previousReading *float64) (*models.UtilityReading, error) {
	var room models.Room
	if err := db.First(&room, roomID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeRoomNotFound, "Không tìm thấy phòng", nil)
	}

	var service models.Service
	if err := db.First(&service, serviceID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeServiceNotFound, "Không tìm thấy dịch vụ", nil)
	}
	if service.Type != models.ServiceTypeMetered {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Chỉ ghi chỉ số cho dịch vụ loại METERED", nil)
	}

	var existing models.UtilityReading
	if err := db.Where("room_id = ? AND service_id = ? AND month = ? AND year = ?",
		roomID, serviceID, month, year).First(&existing).Error; err == nil {
		return nil, errors.NewAppError(errors.ErrCodeReadingExists, "Chỉ số kỳ này đã tồn tại", nil)
	}

	reading := models.UtilityReading{
		RoomID:         roomID,
		ServiceID:      serviceID,
		Month:          month,
		Year:           year,
		CurrentReading: currentReading,
		ReadingDate:    time.Now(),
	}

	if previousReading != nil {
		reading.PreviousReading = *previousReading
	} else {
		// Nối chỉ số cũ từ kỳ liền trước
		prevMonth, prevYear := month-1, year
		if prevMonth == 0 {
			prevMonth, prevYear = 12, year-1
		}
		var prev models.UtilityReading
		if err := db.Where("room_id = ? AND service_id = ? AND month = ? AND year = ?",
			roomID, serviceID, prevMonth, prevYear).First(&prev).Error; err == nil {
			reading.PreviousReading = prev.CurrentReading
		}
	}

	if err := validator.ValidateReading(&reading); err != nil {
		return nil, err
	}

	return &reading, nil
}

// CreateReading ghi chỉ số điện nước cho một phòng một kỳ
func CreateReading(c *gin.Context) {
	var req dto.CreateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	reading, err := buildReading(config.DB, req.RoomID, req.ServiceID, req.Month, req.Year, req.CurrentReading, req.PreviousReading)
	if err != nil {
		response.AppError(c, err)
		return
	}

	if req.ReadingDate != "" {
		readingDate, err := validator.ParseDate(req.ReadingDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		reading.ReadingDate = readingDate
	}
	reading.Images = req.Images
	reading.Note = req.Note

	if userID, exists := c.Get("userID"); exists {
		if uid, ok := userID.(uint); ok {
			reading.ReadBy = &uid
		}
	}

	if err := config.DB.Create(reading).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, reading)
}

// GetReadingsByRoom lịch sử chỉ số của một phòng
func GetReadingsByRoom(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		response.BadRequest(c, "roomId không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, roomID).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	query := config.DB.Preload("Service").Where("room_id = ?", roomID)
	if serviceID := c.Query("serviceId"); serviceID != "" {
		query = query.Where("service_id = ?", serviceID)
	}

	var readings []models.UtilityReading
	if err := query.Order("year DESC, month DESC").Find(&readings).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, readings)
}

// GetReadingsByMonth toàn bộ chỉ số của một kỳ
func GetReadingsByMonth(c *gin.Context) {
	year, okYear := parseIDParam(c, "year")
	month, okMonth := parseIDParam(c, "month")
	if !okYear || !okMonth || month < 1 || month > 12 {
		response.BadRequest(c, "Kỳ không hợp lệ")
		return
	}

	var readings []models.UtilityReading
	if err := config.DB.
		Preload("Room").
		Preload("Service").
		Where("year = ? AND month = ?", year, month).
		Order("room_id ASC, service_id ASC").
		Find(&readings).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, readings)
}

// GetReadingDetail chi tiết một lần ghi chỉ số
func GetReadingDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var reading models.UtilityReading
	if err := config.DB.
		Preload("Room").
		Preload("Service").
		Preload("Reader").
		First(&reading, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeReadingNotFound)
		return
	}

	response.Success(c, reading)
}

// UpdateReading sửa chỉ số đã ghi
func UpdateReading(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var reading models.UtilityReading
	if err := config.DB.First(&reading, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeReadingNotFound)
		return
	}

	var req dto.UpdateReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.CurrentReading != nil {
		reading.CurrentReading = *req.CurrentReading
	}
	if req.PreviousReading != nil {
		reading.PreviousReading = *req.PreviousReading
	}
	if req.ReadingDate != nil && *req.ReadingDate != "" {
		readingDate, err := validator.ParseDate(*req.ReadingDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		reading.ReadingDate = readingDate
	}
	if req.Images != nil {
		reading.Images = req.Images
	}
	if req.Note != nil {
		reading.Note = *req.Note
	}

	if err := validator.ValidateReading(&reading); err != nil {
		response.AppError(c, err)
		return
	}

	if err := config.DB.Save(&reading).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, reading)
}

// DeleteReading xóa chỉ số
func DeleteReading(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var reading models.UtilityReading
	if err := config.DB.First(&reading, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeReadingNotFound)
		return
	}

	if err := config.DB.Delete(&reading).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": id})
}

// BulkCreateReadings ghi chỉ số hàng loạt cho một kỳ. Dòng lỗi bị bỏ qua
// và báo lại trong kết quả, các dòng còn lại vẫn được ghi.
func BulkCreateReadings(c *gin.Context) {
	var req dto.BulkReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}
	if req.Month < 1 || req.Month > 12 {
		response.BadRequest(c, "Tháng phải trong khoảng 1-12")
		return
	}

	report := dto.BulkReadingReport{}
	for _, entry := range req.Readings {
		reading, err := buildReading(config.DB, entry.RoomID, entry.ServiceID, req.Month, req.Year, entry.CurrentReading, nil)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, dto.BulkReadingFail{
				RoomID:    entry.RoomID,
				ServiceID: entry.ServiceID,
				Reason:    errorReason(err),
			})
			continue
		}
		reading.Note = entry.Note

		if err := config.DB.Create(reading).Error; err != nil {
			report.Failed++
			report.Errors = append(report.Errors, dto.BulkReadingFail{
				RoomID:    entry.RoomID,
				ServiceID: entry.ServiceID,
				Reason:    "Lỗi database",
			})
			continue
		}
		report.Created++
	}

	response.Success(c, report)
}

func errorReason(err error) string {
	if appErr := errors.GetAppError(err); appErr != nil {
		return appErr.Message
	}
	return "Lỗi không xác định"
}

// GetPendingReadings phòng có dịch vụ METERED nhưng chưa ghi chỉ số trong kỳ
func GetPendingReadings(c *gin.Context) {
	year, okYear := parseIDParam(c, "year")
	month, okMonth := parseIDParam(c, "month")
	if !okYear || !okMonth || month < 1 || month > 12 {
		response.BadRequest(c, "Kỳ không hợp lệ")
		return
	}

	var rooms []models.Room
	if err := config.DB.
		Preload("Services", "is_active = ?", true).
		Preload("Services.Service").
		Where("status = ?", models.RoomStatusOccupied).
		Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	var pending []dto.PendingReading
	for _, room := range rooms {
		for _, rs := range room.Services {
			if rs.Service == nil || rs.Service.Type != models.ServiceTypeMetered {
				continue
			}
			var count int64
			config.DB.Model(&models.UtilityReading{}).
				Where("room_id = ? AND service_id = ? AND month = ? AND year = ?",
					room.ID, rs.ServiceID, month, year).
				Count(&count)
			if count == 0 {
				pending = append(pending, dto.PendingReading{
					RoomID:      room.ID,
					RoomCode:    room.Code,
					ServiceID:   rs.ServiceID,
					ServiceName: rs.Service.Name,
				})
			}
		}
	}

	response.Success(c, pending)
}

// GetConsumptionStatistics tổng tiêu thụ theo dịch vụ trong một kỳ
func GetConsumptionStatistics(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil || month < 1 || month > 12 {
		response.BadRequest(c, "year và month là bắt buộc")
		return
	}

	var stats []dto.ConsumptionStatistics
	if err := config.DB.Model(&models.UtilityReading{}).
		Select("utility_readings.service_id, services.name as service_name, SUM(utility_readings.consumption) as total_consumption, COUNT(DISTINCT utility_readings.room_id) as room_count").
		Joins("JOIN services ON services.id = utility_readings.service_id").
		Where("utility_readings.year = ? AND utility_readings.month = ?", year, month).
		Group("utility_readings.service_id, services.name").
		Scan(&stats).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, stats)
}
