package models

import (
	"fmt"
	"time"
)

// ReviewStatus là biểu diễn duy nhất cho trạng thái review,
// mọi so sánh đều đi qua các hằng số bên dưới
type ReviewStatus int

const (
	ReviewStatusPending  ReviewStatus = 0
	ReviewStatusApproved ReviewStatus = 1
	ReviewStatusRejected ReviewStatus = 2
)

type Review struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	CompanyID  uint         `gorm:"index" json:"companyId"`
	ProductID  *uint        `gorm:"index" json:"productId,omitempty"`
	CustomerID *uint        `json:"customerId,omitempty"`
	GuestName  string       `json:"guestName"`
	Rating     int          `json:"rating"`
	Content    string       `json:"content"`
	Status     ReviewStatus `gorm:"default:0" json:"status"`
	Reply      string       `json:"reply"`
	CreatedAt  time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`

	Product  *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Customer *Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
}

func (r *Review) ValidateRating() error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("invalid rating: %d, must be between 1 and 5", r.Rating)
	}
	return nil
}
