package models

import (
	"time"

	"gorm.io/datatypes"
)

// Page là một trang trong website editor, slug duy nhất theo từng company
type Page struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CompanyID uint      `gorm:"index" json:"companyId"`
	Title     string    `json:"title"`
	Slug      string    `gorm:"index" json:"slug"`
	Status    int       `gorm:"default:0" json:"status"`
	IsHome    bool      `gorm:"default:false" json:"isHome"`
	SeoTitle  string    `json:"seoTitle"`
	SeoDesc   string    `json:"seoDesc"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Sections []Section `json:"sections" gorm:"foreignKey:PageID"`
}

// Section là một khối nội dung trong page, sắp xếp theo SortOrder
type Section struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"index" json:"companyId"`
	PageID    uint           `gorm:"index" json:"pageId"`
	Type      string         `gorm:"type:varchar(50)" json:"type"`
	Content   datatypes.JSON `gorm:"type:jsonb" json:"content"`
	SortOrder int            `gorm:"default:0" json:"sortOrder"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}
