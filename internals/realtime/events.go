package realtime

import (
	"encoding/json"

	AlertDTO "linksphere_backend/internals/features/alerts/dto"
	GroupDTO "linksphere_backend/internals/features/groups/dto"
	LinkDTO "linksphere_backend/internals/features/links/dto"
	NewsDTO "linksphere_backend/internals/features/news/dto"
	PdfDTO "linksphere_backend/internals/features/pdfs/dto"
	SettingDTO "linksphere_backend/internals/features/settings/dto"
)

// Event keluar (server → subscriber)
const (
	EventInitialData      = "initial-data"
	EventContentUpdated   = "content-updated"
	EventSettingsUpdated  = "settings-updated"
	EventAnalyticsUpdated = "analytics-updated"
)

// Event masuk (subscriber → server)
const (
	EventUpdateContent   = "update-content"
	EventUpdateSettings  = "update-settings"
	EventUpdateAnalytics = "update-analytics"
)

const (
	ActionAdd    = "add"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const (
	TypeLinks  = "links"
	TypePdfs   = "pdfs"
	TypeNews   = "news"
	TypeAlerts = "alerts"
	TypeGroups = "groups"
)

// Envelope adalah frame JSON di atas websocket: {"event": ..., "data": ...}.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// ContentUpdate: payload update-content masuk, content di-decode belakangan
// sesuai type+action.
type ContentUpdate struct {
	Type    string          `json:"type"`
	Action  string          `json:"action"`
	Content json.RawMessage `json:"content"`
}

// ContentEvent: payload content-updated keluar.
type ContentEvent struct {
	Type    string      `json:"type"`
	Action  string      `json:"action"`
	Content interface{} `json:"content"`
}

// contentRef dipakai untuk action delete: cukup id.
type contentRef struct {
	ID string `json:"id"`
}

// Snapshot: baseline state yang dikirim ke subscriber baru.
type Snapshot struct {
	Links     []LinkDTO.LinkDTO        `json:"links"`
	Pdfs      []PdfDTO.PdfDTO          `json:"pdfs"`
	News      []NewsDTO.NewsDTO        `json:"news"`
	Alerts    []AlertDTO.AlertDTO      `json:"alerts"`
	Groups    []GroupDTO.GroupDTO      `json:"groups"`
	Settings  SettingDTO.SettingDTO    `json:"settings"`
	Analytics SettingDTO.AnalyticsDTO  `json:"analytics"`
}
