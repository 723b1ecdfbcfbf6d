package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	groupController "linksphere_backend/internals/features/groups/controller"
	"linksphere_backend/internals/realtime"
)

func GroupRoutes(api fiber.Router, db *gorm.DB, hub *realtime.Hub) {
	ctrl := groupController.NewGroupController(db, hub)

	groups := api.Group("/groups")
	groups.Get("/", ctrl.GetGroups)
	groups.Post("/", ctrl.CreateGroup)
	groups.Put("/:id", ctrl.UpdateGroup)
	groups.Delete("/:id", ctrl.DeleteGroup)
}
