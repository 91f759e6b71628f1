package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"volunteerhub_backend/internals/features/users/auth/dto"
	userModel "volunteerhub_backend/internals/features/users/user/model"
	userRepo "volunteerhub_backend/internals/features/users/user/repository"
)

type AuthService struct {
	Users    userRepo.UserRepository
	TokenTTL time.Duration
}

func NewAuthService(users userRepo.UserRepository) *AuthService {
	return &AuthService{Users: users, TokenTTL: accessTTLDefault}
}

// Register creates the account with a bcrypt-hashed password.
func (s *AuthService) Register(req *dto.RegisterRequest) (*userModel.UserModel, error) {
	if _, err := s.Users.FindByEmail(req.Email); err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := req.ToModel()
	user.Password = string(hashed)
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and issues an access token. Both failure
// modes share one message so the response does not leak which part was
// wrong.
func (s *AuthService) Login(req *dto.LoginRequest) (string, *userModel.UserModel, error) {
	user, err := s.Users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := CreateAccessToken(user, s.TokenTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
