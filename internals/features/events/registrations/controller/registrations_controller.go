package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	regService "volunteerhub_backend/internals/features/events/registrations/service"
	helper "volunteerhub_backend/internals/helpers"
)

type RegistrationController struct {
	Service *regService.RegistrationService
}

func NewRegistrationController(service *regService.RegistrationService) *RegistrationController {
	return &RegistrationController{Service: service}
}

// POST /api/events/:id/register
func (ctrl *RegistrationController) Register(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	var req struct {
		UserID string `json:"userId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid userId")
	}

	registration, err := ctrl.Service.Register(userID, eventID)
	if err != nil {
		log.Printf("[ERROR] register user %s for event %s: %v", userID, eventID, err)
		return helper.FromFiberError(c, err)
	}

	return helper.Success(c, "Successfully registered for event", fiber.Map{
		"registration": registration,
	})
}
