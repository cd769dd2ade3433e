package models

import (
	"time"
)

// Order status constants
const (
	OrderStatusPending   = 0
	OrderStatusConfirmed = 1
	OrderStatusCompleted = 2
	OrderStatusCancelled = 3
)

type Order struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	CompanyID     uint        `json:"companyId" gorm:"index"`
	CustomerID    *uint       `json:"customerId"`
	Customer      *Customer   `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	Code          string      `json:"code" gorm:"uniqueIndex;type:varchar(36)"`
	Status        int         `json:"status"`
	GuestName     string      `json:"guestName,omitempty"`
	GuestEmail    string      `json:"guestEmail,omitempty"`
	GuestPhone    string      `json:"guestPhone,omitempty"`
	ShippingAddr  string      `json:"shippingAddr"`
	Note          string      `json:"note"`
	SubTotal      float64     `json:"subTotal"`
	ShippingFee   float64     `json:"shippingFee"`
	DiscountPrice float64     `json:"discountPrice"`
	TotalPrice    float64     `json:"totalPrice"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updatedAt"`
	Items         []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"orderId" gorm:"index"`
	ProductID uint    `json:"productId"`
	Product   Product `json:"product" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity"`
	Price     int     `json:"price"`
}

type OrderRequest struct {
	CustomerID   *uint              `json:"customerId"`
	GuestName    string             `json:"guestName,omitempty"`
	GuestEmail   string             `json:"guestEmail,omitempty"`
	GuestPhone   string             `json:"guestPhone,omitempty"`
	ShippingAddr string             `json:"shippingAddr"`
	Note         string             `json:"note"`
	Items        []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}
