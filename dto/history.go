package dto

import (
	"encoding/json"
	"time"
)

// SaveHistoryRequest là request lưu một version vào editor history
type SaveHistoryRequest struct {
	EntityType   string          `json:"entityType" binding:"required"`
	EntityID     uint            `json:"entityId" binding:"required"`
	State        json.RawMessage `json:"state" binding:"required"`
	Description  string          `json:"description"`
	IsCheckpoint bool            `json:"isCheckpoint"`
}

// HistoryEntryResponse là một version trong lịch sử chỉnh sửa
type HistoryEntryResponse struct {
	ID           uint            `json:"id"`
	EntityType   string          `json:"entityType"`
	EntityID     uint            `json:"entityId"`
	Version      int             `json:"version"`
	State        json.RawMessage `json:"state,omitempty"`
	Description  string          `json:"description"`
	IsCheckpoint bool            `json:"isCheckpoint"`
	ExpiresAt    *time.Time      `json:"expiresAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// UndoRedoRequest là request undo/redo của editor
type UndoRedoRequest struct {
	EntityType string `json:"entityType" binding:"required"`
	EntityID   uint   `json:"entityId" binding:"required"`
}

// UndoRedoResponse trả về version hiện tại sau khi di chuyển con trỏ.
// Entry nil nghĩa là đã ở biên, không di chuyển được.
type UndoRedoResponse struct {
	CurrentVersion int                   `json:"currentVersion"`
	MaxVersion     int                   `json:"maxVersion"`
	Entry          *HistoryEntryResponse `json:"entry,omitempty"`
}
