package models

import (
	"time"

	"gorm.io/datatypes"
)

// EditorHistory là bản ghi version append-only theo (company, entityType, entityId).
// Version tăng đơn điệu theo từng key. Bản ghi checkpoint không bị trim và không hết hạn.
type EditorHistory struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CompanyID    uint           `gorm:"index:idx_history_key" json:"companyId"`
	EntityType   string         `gorm:"index:idx_history_key;type:varchar(30)" json:"entityType"`
	EntityID     uint           `gorm:"index:idx_history_key" json:"entityId"`
	Version      int            `json:"version"`
	State        datatypes.JSON `gorm:"type:jsonb" json:"state"`
	Description  string         `json:"description"`
	IsCheckpoint bool           `gorm:"default:false" json:"isCheckpoint"`
	ExpiresAt    *time.Time     `gorm:"index" json:"expiresAt,omitempty"`
	CreatedBy    uint           `json:"createdBy"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}
