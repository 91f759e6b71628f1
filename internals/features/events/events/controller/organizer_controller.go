package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	eventService "volunteerhub_backend/internals/features/events/events/service"
	helper "volunteerhub_backend/internals/helpers"
)

// OrganizerController serves the organizer dashboard: events they own
// with participation numbers, and per-event attendance rosters.
type OrganizerController struct {
	Service *eventService.EventService
}

func NewOrganizerController(service *eventService.EventService) *OrganizerController {
	return &OrganizerController{Service: service}
}

// GET /api/organizer/:id/events
func (ctrl *OrganizerController) GetOrganizerEvents(c *fiber.Ctx) error {
	organizerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid organizer id")
	}

	summaries, err := ctrl.Service.OrganizerEvents(organizerID)
	if err != nil {
		log.Printf("[ERROR] organizer events %s: %v", organizerID, err)
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": summaries})
}

// GET /api/organizer/events/:id/attendance
func (ctrl *OrganizerController) GetEventAttendance(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	roster, err := ctrl.Service.EventRoster(eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": roster})
}
