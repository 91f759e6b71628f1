package details

import (
	"github.com/gofiber/fiber/v2"

	dashController "volunteerhub_backend/internals/features/home/dashboard/controller"
	dashService "volunteerhub_backend/internals/features/home/dashboard/service"
	userController "volunteerhub_backend/internals/features/users/user/controller"
	userService "volunteerhub_backend/internals/features/users/user/service"
	authMiddleware "volunteerhub_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, users *userService.UserService, dashboard *dashService.DashboardService) {
	userCtrl := userController.NewUserController(users)
	dashCtrl := dashController.NewDashboardController(dashboard)

	user := api.Group("/users")

	// public leaderboard
	user.Get("/leaderboard/top", userCtrl.GetLeaderboard)

	user.Get("/:id", authMiddleware.AuthMiddleware(), userCtrl.GetProfile)
	user.Put("/:id", authMiddleware.AuthMiddleware(), userCtrl.UpdateProfile)
	user.Get("/:id/dashboard", authMiddleware.AuthMiddleware(), dashCtrl.GetDashboard)
}
