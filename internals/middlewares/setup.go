package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"aos_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar dengan urutan tetap:
// recovery → cors → logger → global rate limit.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
