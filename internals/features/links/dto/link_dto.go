package dto

import (
	"time"

	"linksphere_backend/internals/features/links/model"
)

// ============================
// Response DTO
// ============================
type LinkDTO struct {
	LinkID          string    `json:"id"`
	LinkTitle       string    `json:"title"`
	LinkDescription string    `json:"description"`
	LinkURL         string    `json:"url"`
	LinkIcon        *string   `json:"icon,omitempty"`
	LinkCreatedAt   time.Time `json:"createdAt"`
	LinkUpdatedAt   time.Time `json:"updatedAt"`
}

// ============================
// Create Request DTO
// ============================
type CreateLinkRequest struct {
	LinkTitle       string  `json:"title" validate:"required,min=1"`
	LinkDescription string  `json:"description"`
	LinkURL         string  `json:"url" validate:"required,min=1"`
	LinkIcon        *string `json:"icon"`
}

// ============================
// Update Request DTO (partial)
// ============================
type UpdateLinkRequest struct {
	LinkID          string  `json:"id"`
	LinkTitle       string  `json:"title"`
	LinkDescription *string `json:"description"`
	LinkURL         string  `json:"url"`
	LinkIcon        *string `json:"icon"`
}

// ============================
// Converter
// ============================
func ToLinkDTO(m model.LinkModel) LinkDTO {
	return LinkDTO{
		LinkID:          m.LinkID,
		LinkTitle:       m.LinkTitle,
		LinkDescription: m.LinkDescription,
		LinkURL:         m.LinkURL,
		LinkIcon:        m.LinkIcon,
		LinkCreatedAt:   m.LinkCreatedAt,
		LinkUpdatedAt:   m.LinkUpdatedAt,
	}
}

func ToLinkDTOs(ms []model.LinkModel) []LinkDTO {
	out := make([]LinkDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLinkDTO(m))
	}
	return out
}

func ToLinkModel(req CreateLinkRequest) model.LinkModel {
	return model.LinkModel{
		LinkTitle:       req.LinkTitle,
		LinkDescription: req.LinkDescription,
		LinkURL:         req.LinkURL,
		LinkIcon:        req.LinkIcon,
	}
}

// ApplyLinkUpdate merge partial: field kosong berarti tidak diubah,
// jadi field wajib tidak pernah terhapus jadi kosong.
func ApplyLinkUpdate(m *model.LinkModel, req UpdateLinkRequest) {
	if req.LinkTitle != "" {
		m.LinkTitle = req.LinkTitle
	}
	if req.LinkDescription != nil {
		m.LinkDescription = *req.LinkDescription
	}
	if req.LinkURL != "" {
		m.LinkURL = req.LinkURL
	}
	if req.LinkIcon != nil {
		m.LinkIcon = req.LinkIcon
	}
}
