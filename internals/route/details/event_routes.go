package details

import (
	"github.com/gofiber/fiber/v2"

	"volunteerhub_backend/internals/constants"
	eventController "volunteerhub_backend/internals/features/events/events/controller"
	eventService "volunteerhub_backend/internals/features/events/events/service"
	regController "volunteerhub_backend/internals/features/events/registrations/controller"
	regService "volunteerhub_backend/internals/features/events/registrations/service"
	authMiddleware "volunteerhub_backend/internals/middlewares/auth"
)

func EventRoutes(api fiber.Router, events *eventService.EventService, registrations *regService.RegistrationService) {
	eventCtrl := eventController.NewEventController(events)
	regCtrl := regController.NewRegistrationController(registrations)

	event := api.Group("/events")

	// public listing for the browse page
	event.Get("/", eventCtrl.GetAllEvents)
	event.Get("/:id", eventCtrl.GetEvent)

	// only organizers create events
	event.Post("/",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorOrganizer("event creation"),
			constants.OrganizerRoles,
		),
		eventCtrl.CreateEvent,
	)

	// any authenticated user can register
	event.Post("/:id/register",
		authMiddleware.AuthMiddleware(),
		regCtrl.Register,
	)
}
