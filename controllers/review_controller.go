package controllers

import (
	"strconv"

	"builder/config"
	"builder/dto"
	"builder/models"
	"builder/response"

	"github.com/gin-gonic/gin"
)

func toReviewResponse(review *models.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:        review.ID,
		ProductID: review.ProductID,
		GuestName: review.GuestName,
		Rating:    review.Rating,
		Content:   review.Content,
		Status:    int(review.Status),
		Reply:     review.Reply,
		CreatedAt: review.CreatedAt,
	}
}

// GetReviews trả về danh sách review, lọc theo trạng thái và sản phẩm
func GetReviews(c *gin.Context) {
	companyID := getCompanyID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	query := config.DB.Model(&models.Review{}).Where("company_id = ?", companyID)
	if statusStr := c.Query("status"); statusStr != "" {
		status, err := strconv.Atoi(statusStr)
		if err != nil {
			response.BadRequest(c, "Trạng thái không hợp lệ")
			return
		}
		query = query.Where("status = ?", status)
	}
	if productStr := c.Query("productId"); productStr != "" {
		productID, err := strconv.Atoi(productStr)
		if err != nil {
			response.BadRequest(c, "productId không hợp lệ")
			return
		}
		query = query.Where("product_id = ?", productID)
	}

	var total int64
	query.Count(&total)

	var reviews []models.Review
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ReviewResponse, 0, len(reviews))
	for i := range reviews {
		result = append(result, toReviewResponse(&reviews[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// CreateReview tạo review mới ở trạng thái chờ duyệt
func CreateReview(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review := models.Review{
		CompanyID:  companyID,
		ProductID:  req.ProductID,
		CustomerID: req.CustomerID,
		GuestName:  req.GuestName,
		Rating:     req.Rating,
		Content:    req.Content,
		Status:     models.ReviewStatusPending,
	}
	if err := review.ValidateRating(); err != nil {
		response.BadRequest(c, "Số sao đánh giá phải từ 1 đến 5")
		return
	}

	if req.ProductID != nil {
		var count int64
		config.DB.Model(&models.Product{}).Where("id = ? AND company_id = ?", *req.ProductID, companyID).Count(&count)
		if count == 0 {
			response.NotFound(c)
			return
		}
	}

	if err := config.DB.Create(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReviewResponse(&review))
}

// ModerateReview duyệt hoặc từ chối review, có thể kèm phản hồi
func ModerateReview(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var review models.Review
	if err := config.DB.Where("id = ? AND company_id = ?", req.ReviewID, companyID).First(&review).Error; err != nil {
		response.NotFound(c)
		return
	}

	switch req.Action {
	case "approve":
		review.Status = models.ReviewStatusApproved
	case "reject":
		review.Status = models.ReviewStatusRejected
	default:
		response.BadRequest(c, "Hành động không hợp lệ: "+req.Action)
		return
	}
	if req.Reply != "" {
		review.Reply = req.Reply
	}

	if err := config.DB.Save(&review).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toReviewResponse(&review))
}

// GetReviewSummary thống kê review đã duyệt của một sản phẩm
func GetReviewSummary(c *gin.Context) {
	companyID := getCompanyID(c)

	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var reviews []models.Review
	if err := config.DB.Where("company_id = ? AND product_id = ? AND status = ?",
		companyID, productID, models.ReviewStatusApproved).Find(&reviews).Error; err != nil {
		response.ServerError(c)
		return
	}

	var summary dto.ReviewSummary
	var sum int
	for _, review := range reviews {
		summary.Total++
		sum += review.Rating
		if review.Rating >= 1 && review.Rating <= 5 {
			summary.CountByStar[review.Rating]++
		}
	}
	if summary.Total > 0 {
		summary.AverageRating = float64(sum) / float64(summary.Total)
	}

	response.Success(c, summary)
}
