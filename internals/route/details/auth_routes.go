package details

import (
	"github.com/gofiber/fiber/v2"

	authController "volunteerhub_backend/internals/features/users/auth/controller"
	authService "volunteerhub_backend/internals/features/users/auth/service"
	"volunteerhub_backend/internals/middlewares"
)

func AuthRoutes(api fiber.Router, svc *authService.AuthService) {
	ctrl := authController.NewAuthController(svc)

	auth := api.Group("/auth")
	auth.Post("/register", ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
