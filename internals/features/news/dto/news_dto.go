package dto

import (
	"time"

	"linksphere_backend/internals/features/news/model"
)

// ============================
// Response DTO
// ============================
type NewsDTO struct {
	NewsID        string    `json:"id"`
	NewsTitle     string    `json:"title"`
	NewsExcerpt   string    `json:"excerpt"`
	NewsContent   string    `json:"content,omitempty"`
	NewsURL       *string   `json:"url,omitempty"`
	NewsImage     *string   `json:"image,omitempty"`
	NewsDate      string    `json:"date"`
	NewsCreatedAt time.Time `json:"createdAt"`
	NewsUpdatedAt time.Time `json:"updatedAt"`
}

// ============================
// Create Request DTO
// ============================
type CreateNewsRequest struct {
	NewsTitle   string  `json:"title" validate:"required,min=1"`
	NewsExcerpt string  `json:"excerpt" validate:"required,min=1"`
	NewsContent string  `json:"content"`
	NewsURL     *string `json:"url"`
	NewsImage   *string `json:"image"` // URL eksternal; file upload lewat multipart
}

// ============================
// Update Request DTO (partial)
// ============================
type UpdateNewsRequest struct {
	NewsID      string  `json:"id"`
	NewsTitle   string  `json:"title"`
	NewsExcerpt string  `json:"excerpt"`
	NewsContent *string `json:"content"`
	NewsURL     *string `json:"url"`
	NewsImage   *string `json:"image"`
}

// ============================
// Converter
// ============================
func ToNewsDTO(m model.NewsModel) NewsDTO {
	return NewsDTO{
		NewsID:        m.NewsID,
		NewsTitle:     m.NewsTitle,
		NewsExcerpt:   m.NewsExcerpt,
		NewsContent:   m.NewsContent,
		NewsURL:       m.NewsURL,
		NewsImage:     m.NewsImage,
		NewsDate:      m.NewsDate,
		NewsCreatedAt: m.NewsCreatedAt,
		NewsUpdatedAt: m.NewsUpdatedAt,
	}
}

func ToNewsDTOs(ms []model.NewsModel) []NewsDTO {
	out := make([]NewsDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNewsDTO(m))
	}
	return out
}

func ToNewsModel(req CreateNewsRequest) model.NewsModel {
	return model.NewsModel{
		NewsTitle:   req.NewsTitle,
		NewsExcerpt: req.NewsExcerpt,
		NewsContent: req.NewsContent,
		NewsURL:     req.NewsURL,
		NewsImage:   req.NewsImage,
		NewsDate:    time.Now().Format("1/2/2006"), // tanggal display, diset saat create
	}
}

func ApplyNewsUpdate(m *model.NewsModel, req UpdateNewsRequest) {
	if req.NewsTitle != "" {
		m.NewsTitle = req.NewsTitle
	}
	if req.NewsExcerpt != "" {
		m.NewsExcerpt = req.NewsExcerpt
	}
	if req.NewsContent != nil {
		m.NewsContent = *req.NewsContent
	}
	if req.NewsURL != nil {
		m.NewsURL = req.NewsURL
	}
	if req.NewsImage != nil {
		m.NewsImage = req.NewsImage
	}
}
