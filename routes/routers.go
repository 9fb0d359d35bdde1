package routes

import (
	"rms/controllers"
	middlewares "rms/middleware"
	"rms/models"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

func SetupRoutes(router *gin.Engine, m *melody.Melody) {

	controllers.InitNotifier(m)

	staff := middlewares.AuthMiddleware(models.RoleAdmin, models.RoleManager, models.RoleStaff)
	manager := middlewares.AuthMiddleware(models.RoleAdmin, models.RoleManager)
	admin := middlewares.AuthMiddleware(models.RoleAdmin)

	v1 := router.Group("/api/v1")

	v1.POST("/auth/login", controllers.Login)
	v1.POST("/auth/register", controllers.Register)
	v1.POST("/auth/google", controllers.AuthGoogle)
	v1.GET("/profile", staff, controllers.GetProfile)

	v1.GET("/rooms", staff, controllers.GetAllRooms)
	v1.GET("/rooms/available", staff, controllers.GetAvailableRooms)
	v1.GET("/rooms/statistics/summary", staff, controllers.GetRoomStatistics)
	v1.GET("/rooms/:id", staff, controllers.GetRoomDetail)
	v1.GET("/rooms/:id/availability", staff, controllers.GetRoomAvailability)
	v1.POST("/rooms", manager, controllers.CreateRoom)
	v1.PUT("/rooms/:id", manager, controllers.UpdateRoom)
	v1.DELETE("/rooms/:id", manager, controllers.DeleteRoom)
	v1.GET("/rooms/:id/services", staff, controllers.GetRoomServices)
	v1.POST("/rooms/:id/services", manager, controllers.AddRoomService)
	v1.DELETE("/rooms/:id/services/:serviceId", manager, controllers.RemoveRoomService)
	v1.GET("/rooms/:id/images", staff, controllers.GetRoomImages)
	v1.POST("/rooms/:id/images", manager, controllers.AddRoomImage)
	v1.POST("/rooms/:id/images/upload", manager, controllers.UploadRoomImage)
	v1.DELETE("/rooms/:id/images/:imageId", manager, controllers.DeleteRoomImage)

	v1.GET("/tenants", staff, controllers.GetAllTenants)
	v1.GET("/tenants/search", staff, controllers.SearchTenants)
	v1.GET("/tenants/statistics/summary", staff, controllers.GetTenantStatistics)
	v1.GET("/tenants/:id", staff, controllers.GetTenantDetail)
	v1.GET("/tenants/:id/contracts", staff, controllers.GetTenantContracts)
	v1.POST("/tenants", staff, controllers.CreateTenant)
	v1.PUT("/tenants/:id", staff, controllers.UpdateTenant)
	v1.DELETE("/tenants/:id", manager, controllers.DeleteTenant)

	v1.GET("/contracts", staff, controllers.GetAllContracts)
	v1.GET("/contracts/statistics/summary", staff, controllers.GetContractStatistics)
	v1.GET("/contracts/expiring/:days", staff, controllers.GetExpiringContracts)
	v1.GET("/contracts/:id", staff, controllers.GetContractDetail)
	v1.POST("/contracts", manager, controllers.CreateContract)
	v1.PUT("/contracts/:id", manager, controllers.UpdateContract)
	v1.DELETE("/contracts/:id", manager, controllers.DeleteContract)
	v1.POST("/contracts/:id/activate", manager, controllers.ActivateContract)
	v1.POST("/contracts/:id/terminate", manager, controllers.TerminateContract)
	v1.POST("/contracts/:id/renew", manager, controllers.RenewContract)

	v1.GET("/services", staff, controllers.GetAllServices)
	v1.GET("/services/required/list", staff, controllers.GetRequiredServices)
	v1.GET("/services/statistics/summary", staff, controllers.GetServiceStatistics)
	v1.GET("/services/type/:type", staff, controllers.GetServicesByType)
	v1.GET("/services/:id", staff, controllers.GetServiceDetail)
	v1.POST("/services", manager, controllers.CreateService)
	v1.PUT("/services/:id", manager, controllers.UpdateService)
	v1.DELETE("/services/:id", manager, controllers.DeleteService)

	v1.GET("/utility-readings/room/:roomId", staff, controllers.GetReadingsByRoom)
	v1.GET("/utility-readings/month/:year/:month", staff, controllers.GetReadingsByMonth)
	v1.GET("/utility-readings/pending/:year/:month", staff, controllers.GetPendingReadings)
	v1.GET("/utility-readings/statistics/consumption", staff, controllers.GetConsumptionStatistics)
	v1.GET("/utility-readings/:id", staff, controllers.GetReadingDetail)
	v1.POST("/utility-readings", staff, controllers.CreateReading)
	v1.POST("/utility-readings/bulk", staff, controllers.BulkCreateReadings)
	v1.PUT("/utility-readings/:id", staff, controllers.UpdateReading)
	v1.DELETE("/utility-readings/:id", manager, controllers.DeleteReading)

	v1.GET("/maintenance", staff, controllers.GetAllMaintenances)
	v1.GET("/maintenance/overdue/list", staff, controllers.GetOverdueMaintenances)
	v1.GET("/maintenance/statistics/summary", staff, controllers.GetMaintenanceStatistics)
	v1.GET("/maintenance/room/:roomId", staff, controllers.GetMaintenancesByRoom)
	v1.GET("/maintenance/:id", staff, controllers.GetMaintenanceDetail)
	v1.POST("/maintenance", staff, controllers.CreateMaintenance)
	v1.PUT("/maintenance/:id", staff, controllers.UpdateMaintenance)
	v1.PUT("/maintenance/:id/status", staff, controllers.UpdateMaintenanceStatus)
	v1.POST("/maintenance/:id/assign", manager, controllers.AssignMaintenance)
	v1.DELETE("/maintenance/:id", manager, controllers.DeleteMaintenance)

	v1.GET("/users", manager, controllers.GetAllUsers)
	v1.GET("/users/statistics/summary", manager, controllers.GetUserStatistics)
	v1.GET("/users/:id", manager, controllers.GetUserDetail)
	v1.POST("/users", admin, controllers.CreateUser)
	v1.PUT("/users/:id", admin, controllers.UpdateUser)
	v1.PUT("/users/:id/toggle-active", admin, controllers.ToggleUserActive)
	v1.DELETE("/users/:id", admin, controllers.DeleteUser)

	v1.GET("/dashboard/overview", staff, controllers.GetDashboardOverview)
	v1.GET("/dashboard/occupancy-rate", staff, controllers.GetOccupancyRate)
	v1.GET("/dashboard/revenue", manager, controllers.GetRevenue)
	v1.GET("/dashboard/room-status", staff, controllers.GetRoomStatus)
	v1.GET("/dashboard/expiring-contracts", staff, controllers.GetDashboardExpiringContracts)
	v1.GET("/dashboard/maintenance-summary", staff, controllers.GetMaintenanceSummary)
	v1.GET("/dashboard/pending-readings", staff, controllers.GetDashboardPendingReadings)
	v1.GET("/dashboard/recent-activities", staff, controllers.GetRecentActivities)
}
