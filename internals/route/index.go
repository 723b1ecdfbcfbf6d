// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertRoute "linksphere_backend/internals/features/alerts/route"
	groupRoute "linksphere_backend/internals/features/groups/route"
	linkRoute "linksphere_backend/internals/features/links/route"
	newsRoute "linksphere_backend/internals/features/news/route"
	pdfRoute "linksphere_backend/internals/features/pdfs/route"
	searchRoute "linksphere_backend/internals/features/search/route"
	settingService "linksphere_backend/internals/features/settings/service"
	settingsRoute "linksphere_backend/internals/features/settings/route"
	helper "linksphere_backend/internals/helpers"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, hub *realtime.Hub, blobStorage *storage.LocalStorage, metrics settingService.MetricsSource) {
	api := app.Group("/api")

	// ===================== KONTEN =====================
	log.Println("[INFO] Setting up LinkRoutes...")
	linkRoute.LinkRoutes(api, db, hub)

	log.Println("[INFO] Setting up PdfRoutes...")
	pdfRoute.PdfRoutes(api, db, hub, blobStorage)

	log.Println("[INFO] Setting up NewsRoutes...")
	newsRoute.NewsRoutes(api, db, hub, blobStorage)

	log.Println("[INFO] Setting up AlertRoutes...")
	alertRoute.AlertRoutes(api, db, hub)

	log.Println("[INFO] Setting up GroupRoutes...")
	groupRoute.GroupRoutes(api, db, hub)

	// ===================== SETTINGS / ANALYTICS / SEARCH =====================
	log.Println("[INFO] Setting up SettingsRoutes...")
	settingsRoute.SettingsRoutes(api, db, hub, metrics)

	log.Println("[INFO] Setting up SearchRoutes...")
	searchRoute.SearchRoutes(api, db)

	// ===================== AGGREGATE SNAPSHOT =====================
	// Satu-shot snapshot via REST untuk client yang belum terhubung ke channel.
	api.Get("/data", func(c *fiber.Ctx) error {
		snapshot, err := hub.BuildSnapshot()
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data")
		}
		return helper.JsonOK(c, "Semua data", snapshot)
	})

	// ===================== BROADCAST CHANNEL =====================
	log.Println("[INFO] Setting up websocket /ws...")
	app.Use("/ws", realtime.UpgradeRequired())
	app.Get("/ws", hub.Handler())
}
