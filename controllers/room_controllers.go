package controllers

import (
	"context"
	"log"
	"time"

	"rms/config"
	"rms/dto"
	"rms/errors"
	"rms/models"
	"rms/response"
	"rms/services"
	"rms/validator"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllRooms lấy danh sách phòng, lọc theo status/floor/search
func GetAllRooms(c *gin.Context) {
	page, limit := parsePagination(c)

	query := config.DB.Model(&models.Room{}).
		Preload("Services").
		Preload("Services.Service").
		Preload("Images")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if floor := c.Query("floor"); floor != "" {
		query = query.Where("floor = ?", floor)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("code LIKE ? OR name LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if minPrice := c.Query("minPrice"); minPrice != "" {
		query = query.Where("price >= ?", minPrice)
	}
	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		query = query.Where("price <= ?", maxPrice)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var rooms []models.Room
	if err := query.Order("code ASC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithPagination(c, rooms, page, limit, int(total))
}

// GetRoomDetail lấy chi tiết phòng kèm dịch vụ và ảnh
func GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.
		Preload("Services", "is_active = ?", true).
		Preload("Services.Service").
		Preload("Images").
		First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	response.Success(c, room)
}

// GetAvailableRooms danh sách phòng đang trống
func GetAvailableRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.
		Where("status = ?", models.RoomStatusAvailable).
		Order("code ASC").
		Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rooms)
}

// GetRoomAvailability trạng thái cho thuê của một phòng kèm hợp đồng hiện hành
func GetRoomAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var current models.Contract
	var currentContract *models.Contract
	if err := config.DB.Preload("MainTenant").
		Where("room_id = ? AND status IN ?", id,
			[]string{models.ContractStatusDraft, models.ContractStatusActive, models.ContractStatusExpired}).
		Order("created_at DESC").
		First(&current).Error; err == nil {
		currentContract = &current
	}

	response.Success(c, gin.H{
		"roomId":          room.ID,
		"status":          room.Status,
		"rentable":        room.IsRentable(),
		"currentContract": currentContract,
	})
}

// GetRoomServices dịch vụ đang gắn cho một phòng
func GetRoomServices(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var roomServices []models.RoomService
	if err := config.DB.Preload("Service").
		Where("room_id = ? AND is_active = ?", id, true).
		Find(&roomServices).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, roomServices)
}

// GetRoomImages ảnh của một phòng theo thứ tự sắp xếp
func GetRoomImages(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var images []models.RoomImage
	if err := config.DB.Where("room_id = ?", id).
		Order("sort_order ASC, id ASC").
		Find(&images).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, images)
}

// CreateRoom tạo phòng mới, tự gắn các dịch vụ bắt buộc
func CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	room := models.Room{
		Code:         req.Code,
		Name:         req.Name,
		Floor:        req.Floor,
		Area:         req.Area,
		Price:        req.Price,
		Deposit:      req.Deposit,
		MaxOccupants: req.MaxOccupants,
		Status:       req.Status,
		Amenities:    req.Amenities,
		Description:  req.Description,
		Note:         req.Note,
	}
	if room.Status == "" {
		room.Status = models.RoomStatusAvailable
	}
	if room.MaxOccupants == 0 {
		room.MaxOccupants = 2
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.AppError(c, err)
		return
	}

	var existing models.Room
	if err := config.DB.Where("code = ?", req.Code).First(&existing).Error; err == nil {
		response.Error(c, 400, errors.ErrCodeDBDuplicate, "Mã phòng đã tồn tại")
		return
	}

	if err := config.DB.Create(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	// Gắn các dịch vụ bắt buộc cho phòng mới
	var requiredServices []models.Service
	if err := config.DB.Where("is_required = ? AND is_active = ?", true, true).
		Find(&requiredServices).Error; err == nil {
		now := time.Now()
		for _, svc := range requiredServices {
			rs := models.RoomService{
				RoomID:    room.ID,
				ServiceID: svc.ID,
				StartDate: &now,
			}
			rs.IsActive = true
			if err := config.DB.Create(&rs).Error; err != nil {
				log.Printf("Không thể gắn dịch vụ bắt buộc %d cho phòng %d: %v", svc.ID, room.ID, err)
			}
		}
	}

	invalidateDashboardCache()
	response.Created(c, room)
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Floor != nil {
		room.Floor = req.Floor
	}
	if req.Area != nil {
		room.Area = req.Area
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Deposit != nil {
		room.Deposit = req.Deposit
	}
	if req.MaxOccupants != nil {
		room.MaxOccupants = *req.MaxOccupants
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Amenities != nil {
		room.Amenities = req.Amenities
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Note != nil {
		room.Note = *req.Note
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.AppError(c, err)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	invalidateDashboardCache()
	response.Success(c, room)
}

// DeleteRoom xóa phòng nếu không còn hợp đồng tham chiếu
func DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var contractCount int64
	if err := config.DB.Model(&models.Contract{}).
		Where("room_id = ?", id).
		Count(&contractCount).Error; err != nil {
		response.ServerError(c)
		return
	}
	if contractCount > 0 {
		response.BadRequest(c, "Không thể xóa phòng đang có hợp đồng")
		return
	}

	if err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomService{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	}); err != nil {
		response.ServerError(c)
		return
	}

	invalidateDashboardCache()
	response.Success(c, gin.H{"id": id})
}

// AddRoomService gắn dịch vụ vào phòng
func AddRoomService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var req dto.AddRoomServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, req.ServiceID).Error; err != nil {
		response.NotFound(c, errors.ErrCodeServiceNotFound)
		return
	}

	var existing models.RoomService
	if err := config.DB.Where("room_id = ? AND service_id = ? AND is_active = ?", id, req.ServiceID, true).
		First(&existing).Error; err == nil {
		response.BadRequest(c, "Phòng đã có dịch vụ này")
		return
	}

	rs := models.RoomService{
		RoomID:      room.ID,
		ServiceID:   req.ServiceID,
		CustomPrice: req.CustomPrice,
		IsActive:    true,
		Note:        req.Note,
	}
	if req.StartDate != "" {
		startDate, err := validator.ParseDate(req.StartDate)
		if err != nil {
			response.AppError(c, err)
			return
		}
		rs.StartDate = &startDate
	} else {
		now := time.Now()
		rs.StartDate = &now
	}

	if err := config.DB.Create(&rs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, rs)
}

// RemoveRoomService gỡ dịch vụ khỏi phòng, đánh dấu ngưng thay vì xóa
func RemoveRoomService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}
	serviceID, ok := parseIDParam(c, "serviceId")
	if !ok {
		response.BadRequest(c, "serviceId không hợp lệ")
		return
	}

	var rs models.RoomService
	if err := config.DB.Where("room_id = ? AND service_id = ? AND is_active = ?", id, serviceID, true).
		First(&rs).Error; err != nil {
		response.NotFound(c, errors.ErrCodeServiceNotFound)
		return
	}

	now := time.Now()
	rs.IsActive = false
	rs.EndDate = &now
	if err := config.DB.Save(&rs).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rs)
}

// UploadRoomImage upload ảnh phòng lên Cloudinary
func UploadRoomImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "Thiếu file ảnh")
		return
	}

	src, err := file.Open()
	if err != nil {
		response.ServerError(c)
		return
	}
	defer src.Close()

	uploadResult, err := config.Cloudinary.Upload.Upload(context.Background(), src, uploader.UploadParams{
		Folder: "rooms",
	})
	if err != nil {
		log.Printf("Lỗi upload ảnh phòng %d: %v", id, err)
		response.ServerError(c)
		return
	}

	image := models.RoomImage{
		RoomID:  room.ID,
		URL:     uploadResult.SecureURL,
		Type:    c.DefaultPostForm("type", models.ImageTypeGallery),
		Caption: c.PostForm("caption"),
	}
	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, image)
}

// AddRoomImage thêm ảnh phòng theo URL có sẵn
func AddRoomImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	var req dto.AddRoomImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "url là bắt buộc")
		return
	}

	image := models.RoomImage{
		RoomID:    room.ID,
		URL:       req.URL,
		Type:      req.Type,
		Caption:   req.Caption,
		SortOrder: req.SortOrder,
	}
	if image.Type == "" {
		image.Type = models.ImageTypeGallery
	}

	if err := config.DB.Create(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, image)
}

// DeleteRoomImage xóa ảnh phòng
func DeleteRoomImage(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}
	imageID, ok := parseIDParam(c, "imageId")
	if !ok {
		response.BadRequest(c, "imageId không hợp lệ")
		return
	}

	var image models.RoomImage
	if err := config.DB.Where("id = ? AND room_id = ?", imageID, id).First(&image).Error; err != nil {
		response.NotFound(c, errors.ErrCodeRoomNotFound)
		return
	}

	if err := config.DB.Delete(&image).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": imageID})
}

// GetRoomStatistics thống kê phòng theo trạng thái
func GetRoomStatistics(c *gin.Context) {
	var stats dto.RoomStatistics

	db := config.DB.Model(&models.Room{})
	if err := db.Count(&stats.Total).Error; err != nil {
		response.ServerError(c)
		return
	}
	config.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusAvailable).Count(&stats.Available)
	config.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied).Count(&stats.Occupied)
	config.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusMaintenance).Count(&stats.Maintenance)
	config.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusReserved).Count(&stats.Reserved)

	response.Success(c, stats)
}

// invalidateDashboardCache xóa cache tổng quan khi dữ liệu nền thay đổi
func invalidateDashboardCache() {
	if config.RedisClient == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, config.RedisClient, dashboardOverviewCacheKey); err != nil {
		log.Printf("Không thể xóa cache dashboard: %v", err)
	}
}
