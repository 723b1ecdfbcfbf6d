package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	linkController "linksphere_backend/internals/features/links/controller"
	"linksphere_backend/internals/realtime"
)

func LinkRoutes(api fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := linkController.NewLinkController(db, hub)

	links := api.Group("/links")
	links.Get("/", ctrl.GetLinks)
	links.Post("/", ctrl.CreateLink)
	links.Put("/:id", ctrl.UpdateLink)
	links.Delete("/:id", ctrl.DeleteLink)
}
