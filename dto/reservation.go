package dto

import "time"

// ReservationRequest là request tạo đặt phòng
type ReservationRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CustomerID   *uint  `json:"customerId"`
	CheckInDate  string `json:"checkInDate" binding:"required"`
	CheckOutDate string `json:"checkOutDate" binding:"required"`
	GuestName    string `json:"guestName,omitempty"`
	GuestEmail   string `json:"guestEmail,omitempty"`
	GuestPhone   string `json:"guestPhone,omitempty"`
	Note         string `json:"note"`
}

// UpdateReservationDatesRequest là request đổi ngày của đặt phòng
type UpdateReservationDatesRequest struct {
	ReservationID uint   `json:"reservationId" binding:"required"`
	CheckInDate   string `json:"checkInDate" binding:"required"`
	CheckOutDate  string `json:"checkOutDate" binding:"required"`
}

// ChangeReservationStatusRequest là request chuyển trạng thái đặt phòng
type ChangeReservationStatusRequest struct {
	ReservationID uint   `json:"reservationId" binding:"required"`
	Action        string `json:"action" binding:"required"`
}

// ReservationRoomResponse là thông tin phòng trong response đặt phòng
type ReservationRoomResponse struct {
	ID       uint   `json:"id"`
	RoomCode string `json:"roomCode"`
	RoomName string `json:"roomName"`
	Price    int    `json:"price"`
}

// ReservationResponse là response chi tiết đặt phòng
type ReservationResponse struct {
	ID           uint                    `json:"id"`
	Code         string                  `json:"code"`
	CheckInDate  string                  `json:"checkInDate"`
	CheckOutDate string                  `json:"checkOutDate"`
	Status       string                  `json:"status"`
	Rate         int                     `json:"rate"`
	TotalPrice   float64                 `json:"totalPrice"`
	Nights       int                     `json:"nights"`
	GuestName    string                  `json:"guestName,omitempty"`
	GuestEmail   string                  `json:"guestEmail,omitempty"`
	GuestPhone   string                  `json:"guestPhone,omitempty"`
	Note         string                  `json:"note"`
	Room         ReservationRoomResponse `json:"room"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}
