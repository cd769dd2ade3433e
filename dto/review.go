package dto

import "time"

type ReviewRequest struct {
	ProductID  *uint  `json:"productId"`
	CustomerID *uint  `json:"customerId"`
	GuestName  string `json:"guestName"`
	Rating     int    `json:"rating" binding:"required"`
	Content    string `json:"content"`
}

type ModerateReviewRequest struct {
	ReviewID uint   `json:"reviewId" binding:"required"`
	Action   string `json:"action" binding:"required"`
	Reply    string `json:"reply"`
}

type ReviewResponse struct {
	ID        uint      `json:"id"`
	ProductID *uint     `json:"productId,omitempty"`
	GuestName string    `json:"guestName"`
	Rating    int       `json:"rating"`
	Content   string    `json:"content"`
	Status    int       `json:"status"`
	Reply     string    `json:"reply,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReviewSummary là thống kê review của một sản phẩm
type ReviewSummary struct {
	Total         int     `json:"total"`
	AverageRating float64 `json:"averageRating"`
	CountByStar   [6]int  `json:"countByStar"`
}
