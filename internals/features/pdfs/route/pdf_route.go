package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pdfController "linksphere_backend/internals/features/pdfs/controller"
	storage "linksphere_backend/internals/helpers/storage"
	"linksphere_backend/internals/realtime"
)

func PdfRoutes(api fiber.Router, db *gorm.DB, hub *realtime.Hub, blobStorage *storage.LocalStorage) {
	ctrl := pdfController.NewPdfController(db, hub, blobStorage)

	pdfs := api.Group("/pdfs")
	pdfs.Get("/", ctrl.GetPdfs)
	pdfs.Post("/", ctrl.UploadPdf)
	pdfs.Put("/:id", ctrl.UpdatePdf)
	pdfs.Delete("/:id", ctrl.DeletePdf)
}
