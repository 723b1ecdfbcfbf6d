package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "linksphere_backend/internals/features/settings/controller"
	"linksphere_backend/internals/features/settings/service"
	"linksphere_backend/internals/realtime"
)

func SettingsRoutes(api fiber.Router, db *gorm.DB, hub *realtime.Hub, metrics service.MetricsSource) {
	ctrl := settingsController.NewSettingsController(db, hub, metrics)

	api.Get("/settings", ctrl.GetSettings)
	api.Put("/settings", ctrl.UpdateSettings)
	api.Get("/analytics", ctrl.GetAnalytics)
}
