package models

import "time"

// WhatsAppMessage là log tin nhắn gửi đi qua provider
type WhatsAppMessage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyID   uint      `gorm:"index" json:"companyId"`
	ToPhone     string    `json:"toPhone"`
	Body        string    `json:"body"`
	Template    string    `json:"template,omitempty"`
	Status      int       `gorm:"default:0" json:"status"`
	ProviderSid string    `json:"providerSid,omitempty"`
	ErrorMess   string    `json:"errorMess,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
