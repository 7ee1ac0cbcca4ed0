package route

import (
	"github.com/gofiber/fiber/v2"

	"aos_backend/internals/features/clergy/controller"
)

// ClergyPublicRoutes: jalur baca, tanpa auth.
func ClergyPublicRoutes(r fiber.Router, ctl *controller.ClergyController) {
	clergy := r.Group("/clergy")
	clergy.Get("/", ctl.List)
	clergy.Get("/statuses", ctl.ListStatuses)
	clergy.Get("/roles", ctl.ListRoles)
	clergy.Get("/:id", ctl.GetByID)
}

// ClergyAdminRoutes: mutasi + sesi draft, di belakang JWT.
func ClergyAdminRoutes(r fiber.Router, ctl *controller.ClergyController, draftCtl *controller.DraftController) {
	clergy := r.Group("/clergy")
	clergy.Post("/", ctl.Create)
	clergy.Put("/:id", ctl.Update)
	clergy.Delete("/:id", ctl.Delete)
	clergy.Patch("/:id/status", ctl.UpdateStatus)
	clergy.Post("/:id/photo", ctl.UploadPhoto)

	clergy.Post("/:id/draft", draftCtl.Apply)
	clergy.Get("/:id/draft", draftCtl.State)
	clergy.Delete("/:id/draft", draftCtl.Close)
}
