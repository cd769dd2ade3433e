package models

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Company là tenant của hệ thống, mọi dữ liệu đều scope theo CompanyID
type Company struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" validate:"required"`
	Slug          string    `json:"slug" gorm:"uniqueIndex" validate:"required"`
	Domain        string    `json:"domain"`
	Plan          int       `json:"plan" gorm:"default:0"`
	Status        int       `json:"status" gorm:"default:1"`
	Email         string    `json:"email"`
	PhoneNumber   string    `json:"phoneNumber"`
	Address       string    `json:"address"`
	WhatsAppPhone string    `json:"whatsAppPhone"`
	OwnerID       uint      `json:"ownerId"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (co *Company) ValidateStatus() error {
	if co.Status < 0 || co.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be 0 or 1", co.Status)
	}
	return nil
}

func (co *Company) Validate() error {
	validate := validator.New()
	if err := validate.Struct(co); err != nil {
		return err
	}
	return co.ValidateStatus()
}
