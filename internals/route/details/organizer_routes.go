package details

import (
	"github.com/gofiber/fiber/v2"

	"volunteerhub_backend/internals/constants"
	eventController "volunteerhub_backend/internals/features/events/events/controller"
	eventService "volunteerhub_backend/internals/features/events/events/service"
	authMiddleware "volunteerhub_backend/internals/middlewares/auth"
)

func OrganizerRoutes(api fiber.Router, events *eventService.EventService) {
	ctrl := eventController.NewOrganizerController(events)

	organizer := api.Group("/organizer",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRolesSlice(
			constants.RoleErrorOrganizer("the organizer dashboard"),
			constants.OrganizerRoles,
		),
	)
	organizer.Get("/:id/events", ctrl.GetOrganizerEvents)
	organizer.Get("/events/:id/attendance", ctrl.GetEventAttendance)
}
