package dto

import "time"

type OrderItemResponse struct {
	ProductID   uint   `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       int    `json:"price"`
}

type OrderResponse struct {
	ID            uint                `json:"id"`
	Code          string              `json:"code"`
	Status        int                 `json:"status"`
	GuestName     string              `json:"guestName,omitempty"`
	GuestEmail    string              `json:"guestEmail,omitempty"`
	GuestPhone    string              `json:"guestPhone,omitempty"`
	ShippingAddr  string              `json:"shippingAddr"`
	Note          string              `json:"note"`
	SubTotal      float64             `json:"subTotal"`
	ShippingFee   float64             `json:"shippingFee"`
	DiscountPrice float64             `json:"discountPrice"`
	TotalPrice    float64             `json:"totalPrice"`
	Items         []OrderItemResponse `json:"items"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

type ChangeOrderStatusRequest struct {
	OrderID uint   `json:"orderId" binding:"required"`
	Action  string `json:"action" binding:"required"`
}
