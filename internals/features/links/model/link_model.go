package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LinkModel struct {
	LinkID          string    `gorm:"column:link_id;primaryKey;type:uuid"`
	LinkTitle       string    `gorm:"column:link_title;type:varchar(255);not null"`
	LinkDescription string    `gorm:"column:link_description;type:text"`
	LinkURL         string    `gorm:"column:link_url;type:text;not null"`
	LinkIcon        *string   `gorm:"column:link_icon;type:text"`
	LinkCreatedAt   time.Time `gorm:"column:link_created_at;autoCreateTime"`
	LinkUpdatedAt   time.Time `gorm:"column:link_updated_at;autoUpdateTime"`
}

func (LinkModel) TableName() string {
	return "links"
}

// ID dibuat server-side; id kiriman client diabaikan.
func (m *LinkModel) BeforeCreate(tx *gorm.DB) error {
	m.LinkID = uuid.NewString()
	return nil
}
