package route

import (
	"github.com/gofiber/fiber/v2"

	"aos_backend/internals/features/users/auth/controller"
	"aos_backend/internals/middlewares"
)

func AuthRoutes(app *fiber.App) {
	app.Post("/api/login", middlewares.LoginRateLimiter(), controller.Login)
	app.Post("/api/logout", controller.Logout)
}
