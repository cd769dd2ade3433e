package services

import (
	"fmt"
	"strings"
	"time"

	"builder/dto"
	"builder/models"
	"builder/services/logger"

	"gorm.io/gorm"
)

// RuleService đánh giá các chính sách đặt phòng
type RuleService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewRuleService(db *gorm.DB) *RuleService {
	return &RuleService{
		db:     db,
		logger: logger.NewDefaultLogger(logger.InfoLevel),
	}
}

var weekdayNames = []string{"Chủ nhật", "Thứ hai", "Thứ ba", "Thứ tư", "Thứ năm", "Thứ sáu", "Thứ bảy"}

// EvaluateRulesForStay đánh giá toàn bộ rule cho một lượt đặt, không dừng sớm,
// gom đủ mọi vi phạm để trả về cho người dùng
func EvaluateRulesForStay(rules []models.AvailabilityRule, roomID uint, checkIn, checkOut, now time.Time, log logger.Logger) dto.RuleEvaluationResult {
	checkIn = NormalizeDate(checkIn)
	checkOut = NormalizeDate(checkOut)

	result := dto.RuleEvaluationResult{
		Passed:       true,
		AppliedRules: []dto.AppliedRule{},
	}

	for _, rule := range rules {
		if !rule.IsActive || !rule.AppliesToRoom(roomID) || !rule.AppliesToDates(checkIn, checkOut) {
			continue
		}

		params, err := rule.DecodeParams()
		if err != nil {
			// Rule có tham số hỏng thì bỏ qua, không chặn đặt phòng
			if log != nil {
				log.Warn("Bỏ qua rule %d do tham số không hợp lệ: %v", rule.ID, err)
			}
			continue
		}

		applied := dto.AppliedRule{
			RuleID:   rule.ID,
			RuleType: rule.RuleType,
			Passed:   true,
		}
		var violation string

		switch p := params.(type) {
		case models.MinNightsParams:
			nights := int(checkOut.Sub(checkIn).Hours() / 24)
			applied.Description = fmt.Sprintf("Yêu cầu ở tối thiểu %d đêm", p.MinNights)
			if nights < p.MinNights {
				violation = fmt.Sprintf("Phải ở tối thiểu %d đêm, hiện tại %d đêm", p.MinNights, nights)
			}
		case models.NoCheckinDaysParams:
			names := make([]string, 0, len(p.Days))
			for _, d := range p.Days {
				if d >= 0 && d < len(weekdayNames) {
					names = append(names, weekdayNames[d])
				}
			}
			applied.Description = fmt.Sprintf("Không nhận phòng vào: %s", strings.Join(names, ", "))
			for _, d := range p.Days {
				if int(checkIn.Weekday()) == d {
					violation = fmt.Sprintf("Không thể nhận phòng vào %s", weekdayNames[checkIn.Weekday()])
					break
				}
			}
		case models.AdvanceBookingParams:
			applied.Description = fmt.Sprintf("Chỉ được đặt trước tối đa %d ngày", p.MaxDays)
			daysAhead := int(checkIn.Sub(NormalizeDate(now)).Hours() / 24)
			if daysAhead > p.MaxDays {
				violation = fmt.Sprintf("Chỉ được đặt trước tối đa %d ngày, hiện tại đặt trước %d ngày", p.MaxDays, daysAhead)
			}
		}

		if violation != "" {
			applied.Passed = false
			result.Passed = false
			result.Violations = append(result.Violations, violation)
			if result.FailReason == "" {
				result.FailReason = violation
			}
		}
		result.AppliedRules = append(result.AppliedRules, applied)
	}

	return result
}

// EvaluateBookingRules load rule của company (rule theo phòng lẫn rule chung)
// theo thứ tự priority rồi đánh giá cho lượt đặt
func (s *RuleService) EvaluateBookingRules(companyID, roomID uint, checkIn, checkOut time.Time) dto.RuleEvaluationResult {
	var rules []models.AvailabilityRule
	if err := s.db.Where("company_id = ? AND is_active = true", companyID).
		Order("priority ASC, id ASC").Find(&rules).Error; err != nil {
		s.logger.Error("Lỗi khi load rule đặt phòng: %v", err)
		return dto.RuleEvaluationResult{Passed: true, AppliedRules: []dto.AppliedRule{}}
	}

	return EvaluateRulesForStay(rules, roomID, checkIn, checkOut, time.Now().UTC(), s.logger)
}
