package constants

// Company status
const (
	CompanyStatusActive   = 1
	CompanyStatusInactive = 0
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// User role
const (
	RoleViewer = 0
	RoleEditor = 1
	RoleAdmin  = 2
)

// Trạng thái đặt phòng, lưu dạng chuỗi trong DB và so sánh không phân biệt hoa thường
const (
	ReservationStatusPending    = "pending"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCheckedIn  = "checked_in"
	ReservationStatusCheckedOut = "checked_out"
	ReservationStatusCancelled  = "cancelled"
)

// Order status
const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusCompleted = 2
	OrderStatusCancelled = 3
)

// Room status
const (
	RoomStatusActive      = 1
	RoomStatusInactive    = 0
	RoomStatusMaintenance = 2
)

// Loại rule đặt phòng
const (
	RuleTypeMinNights      = "min_nights"
	RuleTypeNoCheckinDays  = "no_checkin_days"
	RuleTypeAdvanceBooking = "advance_booking"
)

// Loại entity trong editor history
const (
	EntityTypePage    = "page"
	EntityTypeSection = "section"
	EntityTypeTheme   = "theme"
)

// Page status
const (
	PageStatusDraft     = 0
	PageStatusPublished = 1
	PageStatusArchived  = 2
)

// Theme status
const (
	ThemeStatusDraft     = 0
	ThemeStatusPublished = 1
)

// WhatsApp message status
const (
	WhatsAppStatusPending = 0
	WhatsAppStatusSent    = 1
	WhatsAppStatusFailed  = 2
)

// Giới hạn editor history
const (
	HistoryMaxEntries = 50
	HistoryExpireDays = 30
)
