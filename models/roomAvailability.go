package models

import "time"

// RoomAvailability là bản ghi override theo từng (phòng, ngày).
// Ngày không có bản ghi mặc định là còn trống với giá gốc của phòng.
type RoomAvailability struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CompanyID     uint      `gorm:"index" json:"companyId"`
	RoomID        uint      `gorm:"index" json:"roomId"`
	Date          time.Time `gorm:"index" json:"date"`
	IsAvailable   bool      `gorm:"default:true" json:"isAvailable"`
	CustomPrice   *int      `json:"customPrice,omitempty"`
	MinNights     *int      `json:"minNights,omitempty"`
	BlockReason   string    `json:"blockReason,omitempty"`
	ReservationID *uint     `gorm:"index" json:"reservationId,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// RoomBlockPeriod chặn một khoảng ngày, RoomID nil nghĩa là chặn toàn bộ phòng.
// Xóa mềm qua IsActive, khi hủy block thì revert các RoomAvailability liên quan.
type RoomBlockPeriod struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"index" json:"companyId"`
	RoomID    *uint     `gorm:"index" json:"roomId,omitempty"`
	FromDate  time.Time `gorm:"index" json:"fromDate"`
	ToDate    time.Time `gorm:"index" json:"toDate"`
	Reason    string    `json:"reason"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
