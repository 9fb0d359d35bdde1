package controllers

import (
	"log"
	"time"

	"rms/config"
	"rms/dto"
	"rms/models"
	"rms/response"
	"rms/services"

	"github.com/gin-gonic/gin"
)

const dashboardOverviewCacheKey = "dashboard:overview"

// GetDashboardOverview số liệu tổng quan, cache Redis TTL ngắn
func GetDashboardOverview(c *gin.Context) {
	var overview dto.DashboardOverview

	if config.RedisClient != nil {
		if err := services.GetFromRedis(config.Ctx, config.RedisClient, dashboardOverviewCacheKey, &overview); err == nil && overview.TotalRooms > 0 {
			response.Success(c, overview)
			return
		}
	}

	if err := config.DB.Model(&models.Room{}).Count(&overview.TotalRooms).Error; err != nil {
		response.ServerError(c)
		return
	}
	config.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusOccupied).Count(&overview.OccupiedRooms)
	config.DB.Model(&models.Room{}).Where("status = ?", models.RoomStatusAvailable).Count(&overview.AvailableRooms)
	if overview.TotalRooms > 0 {
		overview.OccupancyRate = float64(overview.OccupiedRooms) / float64(overview.TotalRooms) * 100
	}

	config.DB.Model(&models.Contract{}).Where("status = ?", models.ContractStatusActive).Count(&overview.ActiveContracts)
	config.DB.Model(&models.Tenant{}).Where("status = ?", models.TenantStatusActive).Count(&overview.ActiveTenants)
	config.DB.Model(&models.Maintenance{}).
		Where("status IN ?", []string{models.MaintenanceStatusPending, models.MaintenanceStatusInProgress}).
		Count(&overview.PendingMaintenance)

	now := time.Now()
	config.DB.Model(&models.Contract{}).
		Where("status = ? AND end_date >= ? AND end_date <= ?", models.ContractStatusActive, now, now.AddDate(0, 0, 30)).
		Count(&overview.ExpiringContracts)

	var revenue struct{ Total float64 }
	config.DB.Model(&models.Contract{}).
		Select("COALESCE(SUM(monthly_rent), 0) as total").
		Where("status = ?", models.ContractStatusActive).
		Scan(&revenue)
	overview.MonthlyRevenue = revenue.Total

	if config.RedisClient != nil {
		if err := services.SetToRedis(config.Ctx, config.RedisClient, dashboardOverviewCacheKey, overview, 5*time.Minute); err != nil {
			log.Printf("Không thể lưu cache dashboard: %v", err)
		}
	}

	response.Success(c, overview)
}

// GetOccupancyRate tỷ lệ lấp đầy 12 tháng gần nhất, tính từ hợp đồng
// có hiệu lực trong tháng đó
func GetOccupancyRate(c *gin.Context) {
	var totalRooms int64
	if err := config.DB.Model(&models.Room{}).Count(&totalRooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	now := time.Now()
	var points []dto.OccupancyPoint
	for i := 11; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		var occupied int64
		config.DB.Model(&models.Contract{}).
			Where("status IN ? AND start_date <= ? AND end_date >= ?",
				[]string{models.ContractStatusActive, models.ContractStatusExpired, models.ContractStatusTerminated},
				monthEnd, monthStart).
			Distinct("room_id").
			Count(&occupied)

		rate := 0.0
		if totalRooms > 0 {
			rate = float64(occupied) / float64(totalRooms) * 100
		}
		points = append(points, dto.OccupancyPoint{
			Month:         int(monthStart.Month()),
			Year:          monthStart.Year(),
			OccupancyRate: rate,
		})
	}

	response.Success(c, points)
}

// GetRevenue doanh thu dự kiến theo tháng từ hợp đồng có hiệu lực
func GetRevenue(c *gin.Context) {
	now := time.Now()
	var points []dto.RevenuePoint
	for i := 11; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, -1)

		var revenue struct{ Total float64 }
		config.DB.Model(&models.Contract{}).
			Select("COALESCE(SUM(monthly_rent), 0) as total").
			Where("start_date <= ? AND end_date >= ? AND status != ?",
				monthEnd, monthStart, models.ContractStatusDraft).
			Scan(&revenue)

		points = append(points, dto.RevenuePoint{
			Month:   int(monthStart.Month()),
			Year:    monthStart.Year(),
			Revenue: revenue.Total,
		})
	}

	response.Success(c, points)
}

// GetRoomStatus phân bố phòng theo tầng và trạng thái
func GetRoomStatus(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	byFloor := map[int]*dto.FloorSummary{}
	for _, room := range rooms {
		floor := 0
		if room.Floor != nil {
			floor = *room.Floor
		}
		summary, ok := byFloor[floor]
		if !ok {
			summary = &dto.FloorSummary{Floor: floor}
			byFloor[floor] = summary
		}
		summary.Total++
		switch room.Status {
		case models.RoomStatusOccupied:
			summary.Occupied++
		case models.RoomStatusAvailable:
			summary.Available++
		}
	}

	var result []dto.FloorSummary
	for _, summary := range byFloor {
		result = append(result, *summary)
	}

	response.Success(c, result)
}

// GetDashboardExpiringContracts hợp đồng hết hạn trong 30 ngày tới
func GetDashboardExpiringContracts(c *gin.Context) {
	now := time.Now()

	var contracts []models.Contract
	if err := config.DB.
		Preload("Room").
		Preload("MainTenant").
		Where("status = ? AND end_date >= ? AND end_date <= ?",
			models.ContractStatusActive, now, now.AddDate(0, 0, 30)).
		Order("end_date ASC").
		Limit(20).
		Find(&contracts).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, contracts)
}

// GetMaintenanceSummary phiếu bảo trì đang mở, ưu tiên cao trước
func GetMaintenanceSummary(c *gin.Context) {
	var maintenances []models.Maintenance
	if err := config.DB.
		Preload("Room").
		Where("status IN ?", []string{models.MaintenanceStatusPending, models.MaintenanceStatusInProgress}).
		Order("CASE priority WHEN 'URGENT' THEN 0 WHEN 'HIGH' THEN 1 WHEN 'MEDIUM' THEN 2 ELSE 3 END").
		Limit(20).
		Find(&maintenances).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, maintenances)
}

// GetDashboardPendingReadings số phòng chưa ghi chỉ số trong tháng hiện tại
func GetDashboardPendingReadings(c *gin.Context) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	var rooms []models.Room
	if err := config.DB.
		Preload("Services", "is_active = ?", true).
		Preload("Services.Service").
		Where("status = ?", models.RoomStatusOccupied).
		Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	pendingCount := 0
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
				pendingCount++
			}
		}
	}

	response.Success(c, gin.H{
		"month":   month,
		"year":    year,
		"pending": pendingCount,
	})
}

// GetRecentActivities hoạt động gần nhất: hợp đồng, bảo trì, chỉ số
func GetRecentActivities(c *gin.Context) {
	var contracts []models.Contract
	config.DB.Preload("Room").Order("updated_at DESC").Limit(5).Find(&contracts)

	var maintenances []models.Maintenance
	config.DB.Preload("Room").Order("updated_at DESC").Limit(5).Find(&maintenances)

	var readings []models.UtilityReading
	config.DB.Preload("Room").Preload("Service").Order("created_at DESC").Limit(5).Find(&readings)

	response.Success(c, gin.H{
		"contracts":    contracts,
		"maintenances": maintenances,
		"readings":     readings,
	})
}
