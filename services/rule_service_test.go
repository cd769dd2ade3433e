package services

import (
	"strconv"
	"strings"
	"testing"

	"builder/models"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func minNightsRule(id uint, minNights int) models.AvailabilityRule {
	return models.AvailabilityRule{
		ID:       id,
		RuleType: "min_nights",
		Params:   datatypes.JSON([]byte(`{"minNights":` + strconv.Itoa(minNights) + `}`)),
		IsActive: true,
	}
}

func TestEvaluateRulesMinNights(t *testing.T) {
	rules := []models.AvailabilityRule{minNightsRule(1, 3)}
	now := mkDate(2026, 3, 1)

	// 2 đêm thì vi phạm
	result := EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 10), mkDate(2026, 3, 12), now, nil)
	if result.Passed {
		t.Errorf("ở 2 đêm với rule tối thiểu 3 đêm phải bị chặn")
	}
	if len(result.Violations) != 1 {
		t.Fatalf("số vi phạm = %d, want 1", len(result.Violations))
	}
	if result.FailReason != result.Violations[0] {
		t.Errorf("FailReason phải là vi phạm đầu tiên")
	}

	// Đúng 3 đêm thì qua
	result = EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 10), mkDate(2026, 3, 13), now, nil)
	if !result.Passed || len(result.Violations) != 0 {
		t.Errorf("ở đúng 3 đêm phải qua, got %+v", result)
	}
	if len(result.AppliedRules) != 1 || !result.AppliedRules[0].Passed {
		t.Errorf("rule đã áp vẫn phải xuất hiện trong AppliedRules")
	}
}

func TestEvaluateRulesNoCheckinDays(t *testing.T) {
	// 14/03/2026 là thứ bảy
	rules := []models.AvailabilityRule{{
		ID:       2,
		RuleType: "no_checkin_days",
		Params:   datatypes.JSON([]byte(`{"days":[0,6]}`)),
		IsActive: true,
	}}
	now := mkDate(2026, 3, 1)

	result := EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 14), mkDate(2026, 3, 16), now, nil)
	if result.Passed {
		t.Errorf("nhận phòng thứ bảy phải bị chặn")
	}
	if !strings.Contains(result.FailReason, "Thứ bảy") {
		t.Errorf("FailReason phải nêu tên thứ, got %q", result.FailReason)
	}

	// Thứ hai 16/03 thì qua
	result = EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 16), mkDate(2026, 3, 18), now, nil)
	if !result.Passed {
		t.Errorf("nhận phòng thứ hai phải qua, got %+v", result)
	}
}

func TestEvaluateRulesAdvanceBooking(t *testing.T) {
	rules := []models.AvailabilityRule{{
		ID:       3,
		RuleType: "advance_booking",
		Params:   datatypes.JSON([]byte(`{"maxDays":30}`)),
		IsActive: true,
	}}
	now := mkDate(2026, 3, 1)

	// Đặt trước 40 ngày thì vi phạm
	result := EvaluateRulesForStay(rules, 10, mkDate(2026, 4, 10), mkDate(2026, 4, 12), now, nil)
	if result.Passed {
		t.Errorf("đặt trước 40 ngày với giới hạn 30 phải bị chặn")
	}

	// Đặt trước đúng 30 ngày thì qua
	result = EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 31), mkDate(2026, 4, 2), now, nil)
	if !result.Passed {
		t.Errorf("đặt trước đúng 30 ngày phải qua, got %+v", result)
	}
}

func TestEvaluateRulesCollectsAllViolations(t *testing.T) {
	rules := []models.AvailabilityRule{
		minNightsRule(1, 5),
		{
			ID:       2,
			RuleType: "no_checkin_days",
			Params:   datatypes.JSON([]byte(`{"days":[6]}`)),
			IsActive: true,
		},
	}
	now := mkDate(2026, 3, 1)

	// Thứ bảy 14/03, 2 đêm => vi phạm cả hai rule
	result := EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 14), mkDate(2026, 3, 16), now, nil)
	if len(result.Violations) != 2 {
		t.Fatalf("phải gom đủ mọi vi phạm, got %d: %v", len(result.Violations), result.Violations)
	}
	if result.FailReason != result.Violations[0] {
		t.Errorf("FailReason phải là vi phạm đầu tiên theo thứ tự rule")
	}
	if len(result.AppliedRules) != 2 {
		t.Errorf("AppliedRules = %d, want 2", len(result.AppliedRules))
	}
}

func TestEvaluateRulesSkipsInvalidParams(t *testing.T) {
	rules := []models.AvailabilityRule{
		{ID: 1, RuleType: "min_nights", Params: datatypes.JSON([]byte(`không phải json`)), IsActive: true},
		{ID: 2, RuleType: "loại_lạ", Params: datatypes.JSON([]byte(`{}`)), IsActive: true},
	}
	now := mkDate(2026, 3, 1)

	result := EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 10), mkDate(2026, 3, 11), now, nil)
	if !result.Passed || len(result.AppliedRules) != 0 {
		t.Errorf("rule có tham số hỏng phải bị bỏ qua, không chặn đặt phòng: %+v", result)
	}
}

func TestEvaluateRulesFiltering(t *testing.T) {
	validFrom := mkDate(2026, 6, 1)
	validTo := mkDate(2026, 6, 30)

	rules := []models.AvailabilityRule{
		// Không active
		{ID: 1, RuleType: "min_nights", Params: datatypes.JSON([]byte(`{"minNights":9}`)), IsActive: false},
		// Chỉ áp cho phòng 99
		{ID: 2, RuleType: "min_nights", Params: datatypes.JSON([]byte(`{"minNights":9}`)), IsActive: true, RoomIDs: pq.Int64Array{99}},
		// Ngoài cửa sổ hiệu lực
		{ID: 3, RuleType: "min_nights", Params: datatypes.JSON([]byte(`{"minNights":9}`)), IsActive: true, ValidFrom: &validFrom, ValidTo: &validTo},
	}
	now := mkDate(2026, 3, 1)

	result := EvaluateRulesForStay(rules, 10, mkDate(2026, 3, 10), mkDate(2026, 3, 11), now, nil)
	if !result.Passed || len(result.AppliedRules) != 0 {
		t.Errorf("rule không áp dụng phải bị bỏ qua: %+v", result)
	}

	// Phòng 99 trong cửa sổ hiệu lực thì rule 2 và 3 đều áp
	result = EvaluateRulesForStay(rules, 99, mkDate(2026, 6, 10), mkDate(2026, 6, 11), now, nil)
	if result.Passed || len(result.AppliedRules) != 2 {
		t.Errorf("rule theo phòng và theo cửa sổ hiệu lực phải được áp: %+v", result)
	}
}

func TestAvailabilityRuleAppliesTo(t *testing.T) {
	rule := models.AvailabilityRule{RoomIDs: pq.Int64Array{}}
	if !rule.AppliesToRoom(5) {
		t.Errorf("RoomIDs rỗng phải áp cho mọi phòng")
	}
	rule.RoomIDs = pq.Int64Array{3, 5}
	if !rule.AppliesToRoom(5) || rule.AppliesToRoom(7) {
		t.Errorf("AppliesToRoom sai với danh sách phòng cụ thể")
	}

	from := mkDate(2026, 1, 10)
	to := mkDate(2026, 1, 20)
	rule = models.AvailabilityRule{ValidFrom: &from, ValidTo: &to}
	if !rule.AppliesToDates(mkDate(2026, 1, 12), mkDate(2026, 1, 15)) {
		t.Errorf("khoảng nằm trong cửa sổ phải áp dụng")
	}
	if rule.AppliesToDates(mkDate(2026, 1, 5), mkDate(2026, 1, 15)) {
		t.Errorf("check-in trước ValidFrom không được áp dụng")
	}
	if rule.AppliesToDates(mkDate(2026, 1, 15), mkDate(2026, 1, 25)) {
		t.Errorf("check-out sau ValidTo không được áp dụng")
	}
}
