package controllers

import (
	"strconv"

	"builder/config"
	"builder/dto"
	"builder/models"
	"builder/response"
	"builder/validator"

	"github.com/gin-gonic/gin"
)

// GetCustomers trả về danh sách khách hàng, tìm theo tên hoặc số điện thoại
func GetCustomers(c *gin.Context) {
	companyID := getCompanyID(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	keyword := c.Query("keyword")

	query := config.DB.Model(&models.Customer{}).Where("company_id = ?", companyID)
	if keyword != "" {
		query = query.Where("name ILIKE ? OR phone_number LIKE ?", "%"+keyword+"%", "%"+keyword+"%")
	}

	var total int64
	query.Count(&total)

	var customers []models.Customer
	if err := query.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&customers).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.CustomerResponse, 0, len(customers))
	for _, customer := range customers {
		var reservationCount, orderCount int64
		config.DB.Model(&models.Reservation{}).Where("company_id = ? AND customer_id = ?", companyID, customer.ID).Count(&reservationCount)
		config.DB.Model(&models.Order{}).Where("company_id = ? AND customer_id = ?", companyID, customer.ID).Count(&orderCount)

		result = append(result, dto.CustomerResponse{
			ID:               customer.ID,
			Name:             customer.Name,
			Email:            customer.Email,
			PhoneNumber:      customer.PhoneNumber,
			Address:          customer.Address,
			Note:             customer.Note,
			ReservationCount: int(reservationCount),
			OrderCount:       int(orderCount),
			CreatedAt:        customer.CreatedAt,
		})
	}

	response.SuccessWithPagination(c, result, page, limit, int(total))
}

// CreateCustomer tạo khách hàng mới
func CreateCustomer(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateCustomer(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	customer := models.Customer{
		CompanyID:   companyID,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		Note:        req.Note,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, customer)
}

// UpdateCustomer cập nhật thông tin khách hàng
func UpdateCustomer(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidateCustomer(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var customer models.Customer
	if err := config.DB.Where("id = ? AND company_id = ?", req.ID, companyID).First(&customer).Error; err != nil {
		response.NotFound(c)
		return
	}

	customer.Name = req.Name
	customer.Email = req.Email
	customer.PhoneNumber = req.PhoneNumber
	customer.Address = req.Address
	customer.Note = req.Note

	if err := config.DB.Save(&customer).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, customer)
}

// DeleteCustomer xóa khách hàng theo ID
func DeleteCustomer(c *gin.Context) {
	companyID := getCompanyID(c)

	customerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	result := config.DB.Where("id = ? AND company_id = ?", customerID, companyID).Delete(&models.Customer{})
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
