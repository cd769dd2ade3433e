package dto

import "encoding/json"

// RuleRequest là request tạo/cập nhật rule đặt phòng
type RuleRequest struct {
	ID        uint            `json:"id"`
	RuleType  string          `json:"ruleType" binding:"required"`
	Params    json.RawMessage `json:"params" binding:"required"`
	Priority  int             `json:"priority"`
	ValidFrom string          `json:"validFrom"`
	ValidTo   string          `json:"validTo"`
	RoomIDs   []uint          `json:"roomIds"`
	IsActive  *bool           `json:"isActive"`
}

// AppliedRule mô tả một rule đã được đánh giá, để hiển thị cho người dùng
type AppliedRule struct {
	RuleID      uint   `json:"ruleId"`
	RuleType    string `json:"ruleType"`
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
}

// RuleEvaluationResult là kết quả đánh giá toàn bộ rule cho một lượt đặt
type RuleEvaluationResult struct {
	Passed       bool          `json:"passed"`
	FailReason   string        `json:"failReason,omitempty"`
	Violations   []string      `json:"violations,omitempty"`
	AppliedRules []AppliedRule `json:"appliedRules"`
}
