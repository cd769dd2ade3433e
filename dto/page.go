package dto

import (
	"encoding/json"
	"time"
)

type PageRequest struct {
	ID       uint   `json:"id"`
	Title    string `json:"title" binding:"required"`
	Slug     string `json:"slug"`
	IsHome   bool   `json:"isHome"`
	SeoTitle string `json:"seoTitle"`
	SeoDesc  string `json:"seoDesc"`
}

type SectionRequest struct {
	ID        uint            `json:"id"`
	PageID    uint            `json:"pageId" binding:"required"`
	Type      string          `json:"type" binding:"required"`
	Content   json.RawMessage `json:"content"`
	SortOrder int             `json:"sortOrder"`
}

type ReorderSectionsRequest struct {
	PageID     uint   `json:"pageId" binding:"required"`
	SectionIDs []uint `json:"sectionIds" binding:"required"`
}

type SectionResponse struct {
	ID        uint            `json:"id"`
	Type      string          `json:"type"`
	Content   json.RawMessage `json:"content"`
	SortOrder int             `json:"sortOrder"`
}

type PageResponse struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Slug      string            `json:"slug"`
	Status    int               `json:"status"`
	IsHome    bool              `json:"isHome"`
	SeoTitle  string            `json:"seoTitle"`
	SeoDesc   string            `json:"seoDesc"`
	Sections  []SectionResponse `json:"sections"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

type ThemeRequest struct {
	Name   string          `json:"name"`
	Config json.RawMessage `json:"config" binding:"required"`
}

type ThemeResponse struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Config    json.RawMessage `json:"config"`
	Status    int             `json:"status"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// EditorEvent là payload broadcast qua websocket khi có thay đổi trong editor
type EditorEvent struct {
	Event      string `json:"event"`
	EntityType string `json:"entityType"`
	EntityID   uint   `json:"entityId"`
	Version    int    `json:"version,omitempty"`
	SessionID  string `json:"sessionId,omitempty"`
}
