package dto

import (
	"time"
)

type RegisterInput struct {
	CompanyName string `json:"companyName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type UserLoginResponse struct {
	UserID     uint      `json:"id"`
	UserName   string    `json:"name"`
	UserEmail  string    `json:"email"`
	UserPhone  string    `json:"phone"`
	UserRole   int       `json:"role"`
	CompanyID  uint      `json:"companyId"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	UserStatus int       `json:"status"`
}

type LoginResponse struct {
	AccessToken string            `json:"accessToken"`
	User        UserLoginResponse `json:"user"`
}
