package middlewares

import (
	"github.com/gofiber/fiber/v2"

	loggerMiddleware "volunteerhub_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base middleware stack in order:
// recovery first so panics in anything below still produce a 500.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(loggerMiddleware.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
