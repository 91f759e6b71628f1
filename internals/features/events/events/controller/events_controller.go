package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"volunteerhub_backend/internals/features/events/events/dto"
	eventService "volunteerhub_backend/internals/features/events/events/service"
	helper "volunteerhub_backend/internals/helpers"
)

var validate = validator.New()

type EventController struct {
	Service *eventService.EventService
}

func NewEventController(service *eventService.EventService) *EventController {
	return &EventController{Service: service}
}

// GET /api/events
func (ctrl *EventController) GetAllEvents(c *fiber.Ctx) error {
	events, err := ctrl.Service.ListEvents()
	if err != nil {
		log.Printf("[ERROR] list events: %v", err)
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": events})
}

// GET /api/events/:id
func (ctrl *EventController) GetEvent(c *fiber.Ctx) error {
	eventID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid event id")
	}

	detail, err := ctrl.Service.GetEvent(eventID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.JSON(fiber.Map{"data": detail})
}

// POST /api/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.ErrorWithDetails(c, fiber.StatusBadRequest, "Invalid request body", err.Error())
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	event, err := ctrl.Service.CreateEvent(&req)
	if err != nil {
		log.Printf("[ERROR] create event: %v", err)
		return helper.FromFiberError(c, err)
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Event created successfully", fiber.Map{
		"event": event,
	})
}
