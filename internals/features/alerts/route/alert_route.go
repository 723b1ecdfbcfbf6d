package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alertController "linksphere_backend/internals/features/alerts/controller"
	"linksphere_backend/internals/realtime"
)

func AlertRoutes(api fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := alertController.NewAlertController(db, hub)

	alerts := api.Group("/alerts")
	alerts.Get("/", ctrl.GetAlerts)
	alerts.Post("/", ctrl.CreateAlert)
	alerts.Put("/:id", ctrl.UpdateAlert)
	alerts.Delete("/:id", ctrl.DeleteAlert)
}
