package models

import (
	"time"

	"gorm.io/datatypes"
)

// ThemeSetting là cấu hình theme của website, mỗi company một bản ghi
type ThemeSetting struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"uniqueIndex" json:"companyId"`
	Name      string         `json:"name"`
	Config    datatypes.JSON `gorm:"type:jsonb" json:"config"`
	Status    int            `gorm:"default:0" json:"status"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
