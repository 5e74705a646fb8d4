package services

import (
	"context"

	"homestay/config"
	"homestay/errors"
	"homestay/models"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

// HashPassword băm mật khẩu bằng bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so mật khẩu với hash đã lưu.
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// VerifyGoogleIDToken xác thực id token của Google Sign-In và trả payload.
func VerifyGoogleIDToken(tokenId string) (*idtoken.Payload, error) {
	clientID := config.GetEnv("GOOGLE_CLIENT_ID")
	payload, err := idtoken.Validate(context.Background(), tokenId, clientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Google token không hợp lệ", err)
	}
	return payload, nil
}

// FindUserByEmail tìm user theo email.
func FindUserByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
