package models

import (
	"time"
)

// Reservation là một lượt đặt phòng theo khoảng [CheckInDate, CheckOutDate),
// ngày check-out không tính là ngày ở
type Reservation struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	CompanyID    uint      `json:"companyId" gorm:"index"`
	RoomID       uint      `json:"roomId" gorm:"index"`
	CustomerID   *uint     `json:"customerId"`
	Code         string    `json:"code" gorm:"uniqueIndex;type:varchar(36)"`
	CheckInDate  time.Time `json:"checkInDate" gorm:"index"`
	CheckOutDate time.Time `json:"checkOutDate" gorm:"index"`
	Status       string    `json:"status" gorm:"type:varchar(20);default:'pending'"`
	Rate         int       `json:"rate"`
	TotalPrice   float64   `json:"totalPrice"`
	GuestName    string    `json:"guestName,omitempty"`
	GuestEmail   string    `json:"guestEmail,omitempty"`
	GuestPhone   string    `json:"guestPhone,omitempty"`
	Note         string    `json:"note"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Room     Room      `json:"room" gorm:"foreignKey:RoomID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

// Nights trả về số đêm của lượt đặt phòng
func (r *Reservation) Nights() int {
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}
