package models

import (
	"encoding/json"
	"fmt"
	"time"
)

type ProductCategory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"index" json:"companyId"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	SortOrder int       `gorm:"default:0" json:"sortOrder"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	CompanyID   uint            `gorm:"index" json:"companyId"`
	CategoryID  *uint           `json:"categoryId,omitempty"`
	Name        string          `json:"name"`
	Slug        string          `gorm:"index" json:"slug"`
	Price       int             `json:"price"`
	SalePrice   *int            `json:"salePrice,omitempty"`
	Stock       int             `gorm:"default:0" json:"stock"`
	Description string          `json:"description"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	Status      int             `gorm:"default:1" json:"status"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`

	Category *ProductCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

func (p *Product) ValidateStatus() error {
	if p.Status < 0 || p.Status > 1 {
		return fmt.Errorf("invalid status: %d, must be 0 or 1", p.Status)
	}
	return nil
}
