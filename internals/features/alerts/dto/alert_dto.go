package dto

import (
	"time"

	"linksphere_backend/internals/features/alerts/model"
)

// ============================
// Response DTO
// ============================
type AlertDTO struct {
	AlertID        string     `json:"id"`
	AlertTitle     string     `json:"title"`
	AlertMessage   string     `json:"message"`
	AlertType      string     `json:"type"`
	AlertPriority  string     `json:"priority"`
	AlertExpiresAt *time.Time `json:"expiresAt,omitempty"`
	AlertDate      string     `json:"date"`
	AlertCreatedAt time.Time  `json:"createdAt"`
	AlertUpdatedAt time.Time  `json:"updatedAt"`
}

// ============================
// Create Request DTO
// ============================
type CreateAlertRequest struct {
	AlertTitle     string     `json:"title" validate:"required,min=1"`
	AlertMessage   string     `json:"message" validate:"required,min=1"`
	AlertType      string     `json:"type" validate:"omitempty,oneof=info warning error success"`
	AlertPriority  string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	AlertExpiresAt *time.Time `json:"expiresAt"`
}

// ============================
// Update Request DTO (partial)
// ============================
type UpdateAlertRequest struct {
	AlertID        string     `json:"id"`
	AlertTitle     string     `json:"title"`
	AlertMessage   string     `json:"message"`
	AlertType      string     `json:"type" validate:"omitempty,oneof=info warning error success"`
	AlertPriority  string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	AlertExpiresAt *time.Time `json:"expiresAt"`
}

// ============================
// Converter
// ============================
func ToAlertDTO(m model.AlertModel) AlertDTO {
	return AlertDTO{
		AlertID:        m.AlertID,
		AlertTitle:     m.AlertTitle,
		AlertMessage:   m.AlertMessage,
		AlertType:      m.AlertType,
		AlertPriority:  m.AlertPriority,
		AlertExpiresAt: m.AlertExpiresAt,
		AlertDate:      m.AlertDate,
		AlertCreatedAt: m.AlertCreatedAt,
		AlertUpdatedAt: m.AlertUpdatedAt,
	}
}

func ToAlertDTOs(ms []model.AlertModel) []AlertDTO {
	out := make([]AlertDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToAlertDTO(m))
	}
	return out
}

func ToAlertModel(req CreateAlertRequest) model.AlertModel {
	typ := req.AlertType
	if typ == "" {
		typ = "info"
	}
	priority := req.AlertPriority
	if priority == "" {
		priority = "medium"
	}
	return model.AlertModel{
		AlertTitle:     req.AlertTitle,
		AlertMessage:   req.AlertMessage,
		AlertType:      typ,
		AlertPriority:  priority,
		AlertExpiresAt: req.AlertExpiresAt,
		AlertDate:      time.Now().Format("1/2/2006"),
	}
}

func ApplyAlertUpdate(m *model.AlertModel, req UpdateAlertRequest) {
	if req.AlertTitle != "" {
		m.AlertTitle = req.AlertTitle
	}
	if req.AlertMessage != "" {
		m.AlertMessage = req.AlertMessage
	}
	if req.AlertType != "" {
		m.AlertType = req.AlertType
	}
	if req.AlertPriority != "" {
		m.AlertPriority = req.AlertPriority
	}
	if req.AlertExpiresAt != nil {
		m.AlertExpiresAt = req.AlertExpiresAt
	}
}
