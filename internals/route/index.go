package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	clergyController "aos_backend/internals/features/clergy/controller"
	clergyRoute "aos_backend/internals/features/clergy/route"
	clergyService "aos_backend/internals/features/clergy/service"
	orgController "aos_backend/internals/features/organization/controller"
	orgRoute "aos_backend/internals/features/organization/route"
	orgService "aos_backend/internals/features/organization/service"
	authRoute "aos_backend/internals/features/users/auth/route"
	authMw "aos_backend/internals/middlewares/auth"
)

// SetupRoutes merakit store + roster sync + controller dan daftarkan semua
// route. Mengembalikan fungsi teardown (dipanggil saat graceful shutdown):
// stop polling, lepas subscription, tutup semua sesi draft.
func SetupRoutes(app *fiber.App, db *gorm.DB) func() {
	// ===================== CORE WIRING =====================
	store := clergyService.NewGormStore(db)
	store.StartPolling()

	rosterSync := clergyService.NewRosterSync(store)
	rosterSync.Start()

	if err := clergyService.EnsureDefaultRoleGroups(db); err != nil {
		log.Printf("[WARN] seed role groups gagal: %v", err)
	}

	clergyCtl := clergyController.NewClergyController(db, store, rosterSync)
	draftCtl := clergyController.NewDraftController(store)
	infoCtl := orgController.NewAosInfoController(orgService.NewAosInfoService(store))

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	clergyRoute.ClergyPublicRoutes(public, clergyCtl)
	orgRoute.AosInfoPublicRoutes(public, infoCtl)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a", authMw.AuthMiddleware())
	clergyRoute.ClergyAdminRoutes(admin, clergyCtl, draftCtl)
	orgRoute.AosInfoAdminRoutes(admin, infoCtl)

	return func() {
		draftCtl.CloseAll()
		rosterSync.Stop()
		store.StopPolling()
	}
}
