package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"volunteerhub_backend/internals/features/users/auth/dto"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	helper "volunteerhub_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	Service *authService.AuthService
}

func NewAuthController(service *authService.AuthService) *AuthController {
	return &AuthController{Service: service}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	user, err := ctrl.Service.Register(&req)
	if err != nil {
		log.Printf("[ERROR] register failed: %v", err)
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Account created successfully", fiber.Map{
		"user": user,
	})
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	token, user, err := ctrl.Service.Login(&req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}
