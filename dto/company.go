package dto

import "time"

type CompanyRequest struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug"`
	Domain        string `json:"domain"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
	WhatsAppPhone string `json:"whatsAppPhone"`
}

type CompanyResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Domain        string    `json:"domain"`
	Plan          int       `json:"plan"`
	Status        int       `json:"status"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	Address       string    `json:"address"`
	WhatsAppPhone string    `json:"whatsAppPhone"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
