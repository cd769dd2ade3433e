package dto

import "time"

type CustomerRequest struct {
	ID          uint   `json:"id"`
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Note        string `json:"note"`
}

type CustomerResponse struct {
	ID               uint      `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	PhoneNumber      string    `json:"phoneNumber"`
	Address          string    `json:"address"`
	Note             string    `json:"note"`
	ReservationCount int       `json:"reservationCount"`
	OrderCount       int       `json:"orderCount"`
	CreatedAt        time.Time `json:"createdAt"`
}
