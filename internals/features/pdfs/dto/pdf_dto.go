package dto

import (
	"time"

	"linksphere_backend/internals/features/pdfs/model"
)

// ============================
// Response DTO
// ============================
type PdfDTO struct {
	PdfID          string    `json:"id"`
	PdfTitle       string    `json:"title"`
	PdfDescription string    `json:"description"`
	PdfURL         string    `json:"url"`
	PdfSizeLabel   string    `json:"size"`
	PdfFilename    string    `json:"filename"`
	PdfCreatedAt   time.Time `json:"createdAt"`
	PdfUpdatedAt   time.Time `json:"updatedAt"`
}

// Update hanya atribut; url/filename/size diset eksklusif oleh upload.
type UpdatePdfRequest struct {
	PdfID          string  `json:"id"`
	PdfTitle       string  `json:"title"`
	PdfDescription *string `json:"description"`
}

// ============================
// Converter
// ============================
func ToPdfDTO(m model.PdfModel) PdfDTO {
	return PdfDTO{
		PdfID:          m.PdfID,
		PdfTitle:       m.PdfTitle,
		PdfDescription: m.PdfDescription,
		PdfURL:         m.PdfURL,
		PdfSizeLabel:   m.PdfSizeLabel,
		PdfFilename:    m.PdfFilename,
		PdfCreatedAt:   m.PdfCreatedAt,
		PdfUpdatedAt:   m.PdfUpdatedAt,
	}
}

func ToPdfDTOs(ms []model.PdfModel) []PdfDTO {
	out := make([]PdfDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPdfDTO(m))
	}
	return out
}

func ApplyPdfUpdate(m *model.PdfModel, req UpdatePdfRequest) {
	if req.PdfTitle != "" {
		m.PdfTitle = req.PdfTitle
	}
	if req.PdfDescription != nil {
		m.PdfDescription = *req.PdfDescription
	}
}
