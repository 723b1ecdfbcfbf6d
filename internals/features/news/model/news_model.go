package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NewsModel struct {
	NewsID        string    `gorm:"column:news_id;primaryKey;type:uuid"`
	NewsTitle     string    `gorm:"column:news_title;type:varchar(255);not null"`
	NewsExcerpt   string    `gorm:"column:news_excerpt;type:text;not null"`
	NewsContent   string    `gorm:"column:news_content;type:text"`
	NewsURL       *string   `gorm:"column:news_url;type:text"`
	NewsImage     *string   `gorm:"column:news_image;type:text"`
	NewsDate      string    `gorm:"column:news_date;type:varchar(32)"` // tanggal display, diset saat create
	NewsCreatedAt time.Time `gorm:"column:news_created_at;autoCreateTime"`
	NewsUpdatedAt time.Time `gorm:"column:news_updated_at;autoUpdateTime"`
}

func (NewsModel) TableName() string {
	return "news"
}

func (m *NewsModel) BeforeCreate(tx *gorm.DB) error {
	m.NewsID = uuid.NewString()
	return nil
}
