package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertModel struct {
	AlertID        string     `gorm:"column:alert_id;primaryKey;type:uuid"`
	AlertTitle     string     `gorm:"column:alert_title;type:varchar(255);not null"`
	AlertMessage   string     `gorm:"column:alert_message;type:text;not null"`
	AlertType      string     `gorm:"column:alert_type;type:varchar(16);default:'info'"`
	AlertPriority  string     `gorm:"column:alert_priority;type:varchar(16);default:'medium'"`
	AlertExpiresAt *time.Time `gorm:"column:alert_expires_at"`
	AlertDate      string     `gorm:"column:alert_date;type:varchar(32)"`
	AlertCreatedAt time.Time  `gorm:"column:alert_created_at;autoCreateTime"`
	AlertUpdatedAt time.Time  `gorm:"column:alert_updated_at;autoUpdateTime"`
}

func (AlertModel) TableName() string {
	return "alerts"
}

func (m *AlertModel) BeforeCreate(tx *gorm.DB) error {
	m.AlertID = uuid.NewString()
	return nil
}
