package controllers

import (
	"strings"

	"builder/config"
	"builder/constants"
	"builder/dto"
	"builder/middleware"
	"builder/models"
	"builder/response"
	"builder/services"
	"builder/utils"
	"builder/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Register tạo company mới kèm tài khoản chủ sở hữu
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Email = strings.ToLower(input.Email)

	if err := validator.ValidateEmail(input.Email); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := validator.ValidatePassword(input.Password); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", input.Email).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Email đã được sử dụng")
		return
	}

	hashed, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	var user models.User
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		company := models.Company{
			Name:   input.CompanyName,
			Slug:   utils.Slugify(input.CompanyName),
			Status: constants.CompanyStatusActive,
		}
		if err := company.Validate(); err != nil {
			return err
		}
		if err := tx.Create(&company).Error; err != nil {
			return err
		}

		user = models.User{
			CompanyID:   company.ID,
			Name:        input.CompanyName,
			Email:       input.Email,
			Password:    hashed,
			PhoneNumber: input.PhoneNumber,
			Role:        constants.RoleAdmin,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		company.OwnerID = user.ID
		return tx.Save(&company).Error
	})
	if err != nil {
		utils.LogError("Lỗi khi đăng ký company: %v", err)
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{
		"id":        user.ID,
		"email":     user.Email,
		"companyId": user.CompanyID,
	})
}

func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input.Identifier = strings.ToLower(input.Identifier)

	var user models.User
	if err := config.DB.Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).First(&user).Error; err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		response.BadRequest(c, "Email hoặc mật khẩu không hợp lệ")
		return
	}

	if user.Status == constants.UserStatusInactive {
		response.Forbidden(c)
		return
	}

	userInfo := services.UserInfo{
		UserId:    user.ID,
		CompanyId: user.CompanyID,
		Role:      user.Role,
	}

	accessToken, err := services.GenerateToken(userInfo, 60*24*3)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userResponse := dto.UserLoginResponse{
		UserID:     user.ID,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserPhone:  user.PhoneNumber,
		UserRole:   user.Role,
		CompanyID:  user.CompanyID,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
		UserStatus: user.Status,
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: accessToken,
		User:        userResponse,
	})
}

func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// GetCurrentUser trả về thông tin user đang đăng nhập
func GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.Preload("Company").First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	user.Password = ""
	response.Success(c, user)
}

// ChangePassword đổi mật khẩu của user đang đăng nhập
func ChangePassword(c *gin.Context) {
	var input struct {
		OldPassword string `json:"oldPassword" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := validator.ValidatePassword(input.NewPassword); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	userID, _ := c.Get("userID")
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.OldPassword); err != nil {
		response.BadRequest(c, "Mật khẩu cũ không đúng")
		return
	}

	hashed, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Password = hashed
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}

// getCompanyID lấy companyID của user đang đăng nhập
func getCompanyID(c *gin.Context) uint {
	return middleware.GetCompanyID(c)
}
