package models

import (
	"fmt"
	"time"
)

type Room struct {
	RoomId      uint      `json:"id" gorm:"primaryKey"`
	CompanyID   uint      `json:"companyId" gorm:"index"`
	RoomCode    string    `json:"roomCode"`
	RoomName    string    `json:"roomName"`
	Type        uint      `json:"type"`
	Price       int       `json:"price"`
	People      int       `json:"people"`
	Floor       int       `json:"floor"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Status      int       `json:"status" gorm:"default:1"`

	Company        Company            `json:"-" gorm:"foreignKey:CompanyID"`
	Reservations   []Reservation      `json:"-" gorm:"foreignKey:RoomID"`
	Availabilities []RoomAvailability `json:"-" gorm:"foreignKey:RoomID"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < 0 || r.Status > 2 {
		return fmt.Errorf("invalid status: %d, must be between 0 and 2", r.Status)
	}
	return nil
}
