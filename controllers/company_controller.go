package controllers

import (
	"builder/config"
	"builder/dto"
	"builder/models"
	"builder/response"
	"builder/utils"

	"github.com/gin-gonic/gin"
)

func toCompanyResponse(company *models.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		ID:            company.ID,
		Name:          company.Name,
		Slug:          company.Slug,
		Domain:        company.Domain,
		Plan:          company.Plan,
		Status:        company.Status,
		Email:         company.Email,
		PhoneNumber:   company.PhoneNumber,
		Address:       company.Address,
		WhatsAppPhone: company.WhatsAppPhone,
		CreatedAt:     company.CreatedAt,
		UpdatedAt:     company.UpdatedAt,
	}
}

// GetCompany trả về thông tin company của user đang đăng nhập
func GetCompany(c *gin.Context) {
	companyID := getCompanyID(c)

	var company models.Company
	if err := config.DB.First(&company, companyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toCompanyResponse(&company))
}

// UpdateCompany cập nhật thông tin company
func UpdateCompany(c *gin.Context) {
	companyID := getCompanyID(c)

	var req dto.CompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var company models.Company
	if err := config.DB.First(&company, companyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}

	// Slug phải duy nhất giữa các company
	var count int64
	config.DB.Model(&models.Company{}).Where("slug = ? AND id <> ?", slug, companyID).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Slug đã được sử dụng")
		return
	}

	company.Name = req.Name
	company.Slug = slug
	company.Domain = req.Domain
	company.Email = req.Email
	company.PhoneNumber = req.PhoneNumber
	company.Address = req.Address
	company.WhatsAppPhone = req.WhatsAppPhone

	if err := config.DB.Save(&company).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toCompanyResponse(&company))
}
