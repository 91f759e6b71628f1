// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	attService "volunteerhub_backend/internals/features/attendance/attendance/service"
	eventService "volunteerhub_backend/internals/features/events/events/service"
	regService "volunteerhub_backend/internals/features/events/registrations/service"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	userService "volunteerhub_backend/internals/features/users/user/service"
	dashService "volunteerhub_backend/internals/features/home/dashboard/service"
	routeDetails "volunteerhub_backend/internals/route/details"
)

var startTime time.Time

// Services groups everything the route tree needs. main.go decides which
// store backs them (PostgreSQL or the seeded in-memory one).
type Services struct {
	Auth          *authService.AuthService
	Users         *userService.UserService
	Events        *eventService.EventService
	Registrations *regService.RegistrationService
	Attendance    *attService.AttendanceService
	Dashboard     *dashService.DashboardService
}

func SetupRoutes(app *fiber.App, s *Services) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(api, s.Auth)

	log.Println("[INFO] Setting up EventRoutes...")
	routeDetails.EventRoutes(api, s.Events, s.Registrations)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(api, s.Users, s.Dashboard)

	log.Println("[INFO] Setting up AttendanceRoutes...")
	routeDetails.AttendanceRoutes(api, s.Attendance)

	log.Println("[INFO] Setting up OrganizerRoutes...")
	routeDetails.OrganizerRoutes(api, s.Events)
}
