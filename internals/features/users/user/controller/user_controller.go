package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"volunteerhub_backend/internals/features/users/user/dto"
	userService "volunteerhub_backend/internals/features/users/user/service"
	helper "volunteerhub_backend/internals/helpers"
)

type UserController struct {
	Service *userService.UserService
}

func NewUserController(service *userService.UserService) *UserController {
	return &UserController{Service: service}
}

// GET /api/users/:id
func (ctrl *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	summary, err := ctrl.Service.UserSummary(userID)
	if err != nil {
		log.Printf("[ERROR] user summary %s: %v", userID, err)
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": summary})
}

// PUT /api/users/:id
func (ctrl *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}

	user, err := ctrl.Service.UpdateProfile(userID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Profile updated", fiber.Map{
		"user": dto.ToProfileResponse(user),
	})
}

// GET /api/users/leaderboard/top
func (ctrl *UserController) GetLeaderboard(c *fiber.Ctx) error {
	entries, err := ctrl.Service.Leaderboard(10)
	if err != nil {
		log.Printf("[ERROR] leaderboard: %v", err)
		return helper.FromFiberError(c, err)
	}
	// served as a bare array, not the usual message envelope
	return c.JSON(entries)
}
