package dto

import "time"

type RoomRequest struct {
	RoomId      uint   `json:"id"`
	RoomCode    string `json:"roomCode"`
	RoomName    string `json:"roomName" binding:"required"`
	Type        uint   `json:"type"`
	Price       int    `json:"price"`
	People      int    `json:"people"`
	Floor       int    `json:"floor"`
	Description string `json:"description"`
	Status      int    `json:"status"`
}

type RoomResponse struct {
	RoomId      uint      `json:"id"`
	RoomCode    string    `json:"roomCode"`
	RoomName    string    `json:"roomName"`
	Type        uint      `json:"type"`
	Price       int       `json:"price"`
	People      int       `json:"people"`
	Floor       int       `json:"floor"`
	Description string    `json:"description"`
	Status      int       `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
