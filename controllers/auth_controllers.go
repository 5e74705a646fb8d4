package controllers

import (
	"errors"
	"strings"

	"homestay/config"
	"homestay/constants"
	apperrors "homestay/errors"
	"homestay/models"
	"homestay/response"
	"homestay/services"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterUser đăng ký tài khoản chủ nhà mới
func RegisterUser(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var count int64
	config.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
	if count > 0 {
		response.BadRequest(c, "Email đã được sử dụng")
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       strings.ToLower(req.Email),
		Password:    hashed,
		PhoneNumber: req.PhoneNumber,
		Role:        constants.RoleOwner,
		Status:      constants.UserStatusActive,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"id": user.ID, "email": user.Email})
}

// Login đăng nhập bằng email/mật khẩu, trả JWT
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, err := services.FindUserByEmail(config.DB, strings.ToLower(req.Email))
	if err != nil {
		response.Unauthorized(c)
		return
	}
	if user.Status != constants.UserStatusActive {
		response.Forbidden(c)
		return
	}
	if err := services.CheckPassword(user.Password, req.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.CreateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"token": token, "user": user})
}

// AuthGoogle đăng nhập bằng Google Sign-In: xác thực id token, tạo tài
// khoản nếu email chưa có.
func AuthGoogle(c *gin.Context) {
	var req struct {
		TokenId string `json:"tokenId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	payload, err := services.VerifyGoogleIDToken(req.TokenId)
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if email == "" {
		response.Unauthorized(c)
		return
	}

	user, err := services.FindUserByEmail(config.DB, strings.ToLower(email))
	if err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			response.ServerError(c)
			return
		}
		newUser := models.User{
			Name:   name,
			Email:  strings.ToLower(email),
			Role:   constants.RoleOwner,
			Status: constants.UserStatusActive,
		}
		if err := config.DB.Create(&newUser).Error; err != nil {
			response.ServerError(c)
			return
		}
		user = &newUser
	}

	token, err := services.CreateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"token": token, "user": user})
}

// Logout xóa cookie phiên phía client; JWT stateless nên server không giữ
// gì để hủy.
func Logout(c *gin.Context) {
	for _, cookie := range c.Request.Cookies() {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}
	response.Success(c, nil)
}

// GetProfile trả thông tin tài khoản hiện tại
func GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}
	response.Success(c, user)
}
