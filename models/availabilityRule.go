package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// AvailabilityRule là chính sách đặt phòng, tham số lưu dạng JSON theo RuleType.
// RoomIDs rỗng nghĩa là rule áp dụng cho toàn bộ phòng của company.
type AvailabilityRule struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CompanyID uint           `gorm:"index" json:"companyId"`
	RuleType  string         `gorm:"type:varchar(30)" json:"ruleType"`
	Params    datatypes.JSON `gorm:"type:jsonb" json:"params"`
	Priority  int            `gorm:"default:0" json:"priority"`
	ValidFrom *time.Time     `json:"validFrom,omitempty"`
	ValidTo   *time.Time     `json:"validTo,omitempty"`
	RoomIDs   pq.Int64Array  `gorm:"type:integer[]" json:"roomIds"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// MinNightsParams tham số cho rule min_nights
type MinNightsParams struct {
	MinNights int `json:"minNights"`
}

// NoCheckinDaysParams tham số cho rule no_checkin_days,
// Days theo time.Weekday (0 = Chủ nhật)
type NoCheckinDaysParams struct {
	Days []int `json:"days"`
}

// AdvanceBookingParams tham số cho rule advance_booking
type AdvanceBookingParams struct {
	MaxDays int `json:"maxDays"`
}

// DecodeParams giải mã tham số JSON thành struct tương ứng với RuleType.
// Giải mã một lần khi load rule, không truy cập map động trong lúc đánh giá.
func (r *AvailabilityRule) DecodeParams() (interface{}, error) {
	switch r.RuleType {
	case "min_nights":
		var p MinNightsParams
		if err := json.Unmarshal(r.Params, &p); err != nil {
			return nil, fmt.Errorf("invalid min_nights params: %w", err)
		}
		return p, nil
	case "no_checkin_days":
		var p NoCheckinDaysParams
		if err := json.Unmarshal(r.Params, &p); err != nil {
			return nil, fmt.Errorf("invalid no_checkin_days params: %w", err)
		}
		return p, nil
	case "advance_booking":
		var p AdvanceBookingParams
		if err := json.Unmarshal(r.Params, &p); err != nil {
			return nil, fmt.Errorf("invalid advance_booking params: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown rule type: %s", r.RuleType)
	}
}

// AppliesToRoom kiểm tra rule có áp dụng cho phòng không
func (r *AvailabilityRule) AppliesToRoom(roomID uint) bool {
	if len(r.RoomIDs) == 0 {
		return true
	}
	for _, id := range r.RoomIDs {
		if uint(id) == roomID {
			return true
		}
	}
	return false
}

// AppliesToDates kiểm tra khoảng ngày đặt có nằm trong cửa sổ hiệu lực của rule không
func (r *AvailabilityRule) AppliesToDates(checkIn, checkOut time.Time) bool {
	if r.ValidFrom != nil && checkIn.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && checkOut.After(*r.ValidTo) {
		return false
	}
	return true
}
