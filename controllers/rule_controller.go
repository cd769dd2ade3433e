package controllers

import (
	"strconv"
	"time"

	"builder/config"
	"builder/dto"
	"builder/models"
	"builder/response"
	"builder/services"
	"builder/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

func parseRuleDates(req *dto.RuleRequest) (*time.Time, *time.Time, error) {
	var validFrom, validTo *time.Time
	if req.ValidFrom != "" {
		t, err := time.Parse("02/01/2006", req.ValidFrom)
		if err != nil {
			return nil, nil, err
		}
		t = services.NormalizeDate(t)
		validFrom = &t
	}
	if req.ValidTo != "" {
		t, err := time.Parse("02/01/2006", req.ValidTo)
		if err != nil {
			return nil, nil, err
		}
		t = services.NormalizeDate(t)
		validTo = &t
	}
	return validFrom, validTo, nil
}

func toRoomIDArray(roomIDs []uint) pq.Int64Array {
	arr := make(pq.Int64Array, 0, len(roomIDs))
	for _, id := range roomIDs {
		arr = append(arr, int64(id))
	}
	return arr
}

// GetRules trả về danh sách rule của company theo thứ tự ưu tiên
func GetRules(c *gin.Context) {
	companyID := getCompanyID(c)

	var rules []models.AvailabilityRule
	if err := config.DB.Where("company_id = ?", companyID).
		Order("priority ASC, id ASC").Find(&rules).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.SuccessWithTotal(c, rules, len(rules))
}

// CreateRule tạo rule đặt phòng mới
func CreateRule(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRule(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	validFrom, validTo, err := parseRuleDates(&req)
	if err != nil {
		response.BadRequest(c, "Ngày hiệu lực không hợp lệ")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	rule := models.AvailabilityRule{
		CompanyID: companyID,
		RuleType:  req.RuleType,
		Params:    datatypes.JSON(req.Params),
		Priority:  req.Priority,
		ValidFrom: validFrom,
		ValidTo:   validTo,
		RoomIDs:   toRoomIDArray(req.RoomIDs),
		IsActive:  isActive,
	}

	if err := config.DB.Create(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rule)
}

// UpdateRule cập nhật rule theo ID
func UpdateRule(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.RuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateRule(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var rule models.AvailabilityRule
	if err := config.DB.Where("id = ? AND company_id = ?", req.ID, companyID).First(&rule).Error; err != nil {
		response.NotFound(c)
		return
	}

	validFrom, validTo, err := parseRuleDates(&req)
	if err != nil {
		response.BadRequest(c, "Ngày hiệu lực không hợp lệ")
		return
	}

	rule.RuleType = req.RuleType
	rule.Params = datatypes.JSON(req.Params)
	rule.Priority = req.Priority
	rule.ValidFrom = validFrom
	rule.ValidTo = validTo
	rule.RoomIDs = toRoomIDArray(req.RoomIDs)
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := config.DB.Save(&rule).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, rule)
}

// DeleteRule xóa rule theo ID
func DeleteRule(c *gin.Context) {
	companyID := getCompanyID(c)

	ruleID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	result := config.DB.Where("id = ? AND company_id = ?", ruleID, companyID).
		Delete(&models.AvailabilityRule{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, nil)
}

// EvaluateRules đánh giá thử toàn bộ rule cho một lượt đặt, trả về mọi vi phạm
func EvaluateRules(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.CheckAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, checkOut, err := validator.ValidateDateRange(req.CheckInDate, req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if !checkOut.After(checkIn) {
		response.BadRequest(c, "Ngày trả phòng phải sau ngày nhận phòng")
		return
	}

	ruleService := services.NewRuleService(config.DB)
	result := ruleService.EvaluateBookingRules(companyID, req.RoomID, checkIn, checkOut)

	response.Success(c, result)
}
