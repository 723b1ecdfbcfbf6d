package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	newsController "linksphere_backend/internals/features/news/controller"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
)

func NewsRoutes(api fiber.Router, db *gorm.DB, hub *realtime.Hub, blobStorage *storage.LocalStorage) {
	ctrl := newsController.NewNewsController(db, hub, blobStorage)

	news := api.Group("/news")
	news.Get("/", ctrl.GetNews)
	news.Post("/", ctrl.CreateNews)
	news.Put("/:id", ctrl.UpdateNews)
	news.Delete("/:id", ctrl.DeleteNews)
}
