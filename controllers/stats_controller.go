package controllers

import (
	"fmt"
	"log"
	"time"

	"builder/config"
	"builder/dto"
	"builder/response"
	"builder/services"
	"builder/validator"

	"github.com/gin-gonic/gin"
)

// GetOccupancyStats trả về thống kê occupancy và doanh thu theo khoảng ngày.
// Kết quả cache trong Redis, lỗi đọc dữ liệu trả về thống kê rỗng thay vì báo lỗi.
func GetOccupancyStats(c *gin.Context) {
	companyID := getCompanyID(c)

	fromStr := c.DefaultQuery("fromDate", "")
	toStr := c.DefaultQuery("toDate", "")
	if fromStr == "" || toStr == "" {
		// Mặc định thống kê 30 ngày gần nhất
		today := services.TodayUTC()
		fromStr = today.AddDate(0, 0, -29).Format("02/01/2006")
		toStr = today.Format("02/01/2006")
	}

	fromDate, toDate, err := validator.ValidateDateRange(fromStr, toStr)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	cacheKey := fmt.Sprintf("occupancy:stats:%d:%s:%s", companyID, fromDate.Format("2006-01-02"), toDate.Format("2006-01-02"))

	var cached dto.OccupancyStatsResponse
	rdb, redisErr := config.ConnectRedis()
	if redisErr == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.FromDate != "" {
			response.Success(c, cached)
			return
		}
	}

	occupancyService := services.NewOccupancyService(config.DB)
	stats := occupancyService.GetOccupancyStats(companyID, fromDate, toDate)

	if redisErr == nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, stats, 10*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu cache occupancy: %v", err)
		}
	}

	response.Success(c, stats)
}
