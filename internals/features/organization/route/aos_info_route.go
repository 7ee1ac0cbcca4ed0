package route

import (
	"github.com/gofiber/fiber/v2"

	"aos_backend/internals/features/organization/controller"
)

func AosInfoPublicRoutes(r fiber.Router, ctl *controller.AosInfoController) {
	r.Get("/info", ctl.Get)
}

func AosInfoAdminRoutes(r fiber.Router, ctl *controller.AosInfoController) {
	r.Put("/info", ctl.Update)
}
