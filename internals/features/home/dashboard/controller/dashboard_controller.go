package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	dashService "volunteerhub_backend/internals/features/home/dashboard/service"
	helper "volunteerhub_backend/internals/helpers"
)

type DashboardController struct {
	Service *dashService.DashboardService
}

func NewDashboardController(service *dashService.DashboardService) *DashboardController {
	return &DashboardController{Service: service}
}

// GET /api/users/:id/dashboard
func (ctrl *DashboardController) GetDashboard(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	dashboard, err := ctrl.Service.BuildDashboard(userID)
	if err != nil {
		log.Printf("[ERROR] dashboard %s: %v", userID, err)
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": dashboard})
}
