package service

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"volunteerhub_backend/internals/configs"
	userModel "volunteerhub_backend/internals/features/users/user/model"
)

const accessTTLDefault = 24 * time.Hour

// CreateAccessToken signs a short-lived HS256 token carrying the user id
// and role.
func CreateAccessToken(user *userModel.UserModel, ttl time.Duration) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}
	if ttl <= 0 {
		ttl = accessTTLDefault
	}

	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"id":   user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
