package details

import (
	"github.com/gofiber/fiber/v2"

	attController "volunteerhub_backend/internals/features/attendance/attendance/controller"
	attService "volunteerhub_backend/internals/features/attendance/attendance/service"
	authMiddleware "volunteerhub_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, svc *attService.AttendanceService) {
	ctrl := attController.NewAttendanceController(svc)

	attendance := api.Group("/attendance", authMiddleware.AuthMiddleware())
	attendance.Post("/check-in", ctrl.CheckIn)
	attendance.Post("/check-out", ctrl.CheckOut)
}
