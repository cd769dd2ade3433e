package dto

// DayAvailability là trạng thái của một (phòng, ngày) trong lưới availability
type DayAvailability struct {
	RoomID         uint   `json:"roomId"`
	Date           string `json:"date"`
	IsAvailable    bool   `json:"isAvailable"`
	IsBlocked      bool   `json:"isBlocked"`
	HasReservation bool   `json:"hasReservation"`
	IsToday        bool   `json:"isToday"`
	IsCheckInDay   bool   `json:"isCheckInDay"`
	IsCheckOutDay  bool   `json:"isCheckOutDay"`
	Price          int    `json:"price"`
	MinNights      int    `json:"minNights,omitempty"`
	BlockReason    string `json:"blockReason,omitempty"`
	GuestName      string `json:"guestName,omitempty"`
	GuestInitials  string `json:"guestInitials,omitempty"`
	ReservationID  uint   `json:"reservationId,omitempty"`
}

// GridRoom là thông tin phòng kèm các ngày trong lưới
type GridRoom struct {
	RoomID   uint              `json:"roomId"`
	RoomCode string            `json:"roomCode"`
	RoomName string            `json:"roomName"`
	Type     uint              `json:"type"`
	Price    int               `json:"price"`
	Days     []DayAvailability `json:"days"`
}

// AvailabilityGridResponse là lưới availability theo khoảng ngày
type AvailabilityGridResponse struct {
	FromDate string     `json:"fromDate"`
	ToDate   string     `json:"toDate"`
	Rooms    []GridRoom `json:"rooms"`
}

// CheckAvailabilityRequest là request kiểm tra phòng trống
type CheckAvailabilityRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
}

// CheckAvailabilityResponse là kết quả kiểm tra phòng trống kèm chi tiết ngày bận
type CheckAvailabilityResponse struct {
	RoomID           uint     `json:"roomId"`
	IsAvailable      bool     `json:"isAvailable"`
	Reason           string   `json:"reason,omitempty"`
	UnavailableDates []string `json:"unavailableDates,omitempty"`
	TotalPrice       float64  `json:"totalPrice"`
	Nights           int      `json:"nights"`
}

// BlockPeriodRequest là request tạo block period
type BlockPeriodRequest struct {
	RoomID   *uint  `json:"roomId"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason"`
}

// OverrideRequest là request cập nhật override theo ngày
type OverrideRequest struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	Date        string `json:"date" binding:"required"`
	IsAvailable *bool  `json:"isAvailable"`
	CustomPrice *int   `json:"customPrice"`
	MinNights   *int   `json:"minNights"`
	BlockReason string `json:"blockReason"`
}
