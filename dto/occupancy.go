package dto

// DailyOccupancy là thống kê theo từng ngày
type DailyOccupancy struct {
	Date           string  `json:"date"`
	OccupiedRooms  int     `json:"occupiedRooms"`
	AvailableRooms int     `json:"availableRooms"`
	BlockedRooms   int     `json:"blockedRooms"`
	Revenue        float64 `json:"revenue"`
	OccupancyRate  float64 `json:"occupancyRate"`
}

// RoomTypeOccupancy là thống kê theo loại phòng
type RoomTypeOccupancy struct {
	Type          uint    `json:"type"`
	RoomCount     int     `json:"roomCount"`
	OccupiedCount int     `json:"occupiedCount"`
	OccupancyRate float64 `json:"occupancyRate"`
}

// OccupancyStatsResponse là thống kê tổng hợp của một khoảng ngày
type OccupancyStatsResponse struct {
	FromDate        string              `json:"fromDate"`
	ToDate          string              `json:"toDate"`
	TotalRooms      int                 `json:"totalRooms"`
	OccupancyRate   float64             `json:"occupancyRate"`
	TotalRevenue    float64             `json:"totalRevenue"`
	AverageRevenue  float64             `json:"averageRevenue"`
	TodayCheckIns   int                 `json:"todayCheckIns"`
	TodayCheckOuts  int                 `json:"todayCheckOuts"`
	Daily           []DailyOccupancy    `json:"daily"`
	ByRoomType      []RoomTypeOccupancy `json:"byRoomType"`
}
