package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PdfModel struct {
	PdfID          string    `gorm:"column:pdf_id;primaryKey;type:uuid"`
	PdfTitle       string    `gorm:"column:pdf_title;type:varchar(255);not null"`
	PdfDescription string    `gorm:"column:pdf_description;type:text"`
	PdfURL         string    `gorm:"column:pdf_url;type:text"`
	PdfSizeLabel   string    `gorm:"column:pdf_size_label;type:varchar(32)"`
	PdfFilename    string    `gorm:"column:pdf_filename;type:text"` // key blob di storage
	PdfCreatedAt   time.Time `gorm:"column:pdf_created_at;autoCreateTime"`
	PdfUpdatedAt   time.Time `gorm:"column:pdf_updated_at;autoUpdateTime"`
}

func (PdfModel) TableName() string {
	return "pdfs"
}

func (m *PdfModel) BeforeCreate(tx *gorm.DB) error {
	m.PdfID = uuid.NewString()
	return nil
}
