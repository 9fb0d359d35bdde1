package dto

// DashboardOverview số liệu tổng quan cho trang chủ
type DashboardOverview struct {
	TotalRooms         int64   `json:"totalRooms"`
	OccupiedRooms      int64   `json:"occupiedRooms"`
	AvailableRooms     int64   `json:"availableRooms"`
	OccupancyRate      float64 `json:"occupancyRate"`
	ActiveContracts    int64   `json:"activeContracts"`
	ActiveTenants      int64   `json:"activeTenants"`
	PendingMaintenance int64   `json:"pendingMaintenance"`
	ExpiringContracts  int64   `json:"expiringContracts"`
	MonthlyRevenue     float64 `json:"monthlyRevenue"`
}

// OccupancyPoint tỷ lệ lấp đầy tại một thời điểm
type OccupancyPoint struct {
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// RevenuePoint doanh thu dự kiến theo tháng từ các hợp đồng ACTIVE
type RevenuePoint struct {
	Month   int     `json:"month"`
	Year    int     `json:"year"`
	Revenue float64 `json:"revenue"`
}

// FloorSummary số phòng theo tầng và trạng thái
type FloorSummary struct {
	Floor     int   `json:"floor"`
	Total     int64 `json:"total"`
	Occupied  int64 `json:"occupied"`
	Available int64 `json:"available"`
}
