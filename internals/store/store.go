// Package store adalah Content Store: operasi CRUD generik di atas GORM
// untuk semua koleksi konten. Backing medium (PostgreSQL / SQLite file /
// SQLite :memory:) bebas diganti tanpa mengubah kontrak di sini.
package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record tidak ditemukan")

// ValidationError: field wajib kosong / nilai tidak valid. User-correctable,
// dipetakan ke 400 oleh controller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// ============================
// Generic CRUD
// ============================

func CreateOne[T any](db *gorm.DB, rec *T) error {
	return db.Create(rec).Error
}

func FindByID[T any](db *gorm.DB, idColumn, id string) (*T, error) {
	var rec T
	if err := db.First(&rec, idColumn+" = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

func ListAll[T any](db *gorm.DB, orderBy string) ([]T, error) {
	var recs []T
	q := db
	if orderBy != "" {
		q = q.Order(orderBy)
	}
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func SaveOne[T any](db *gorm.DB, rec *T) error {
	return db.Save(rec).Error
}

// DeleteByID menghapus record dan mengembalikan record yang dihapus
// (dipakai untuk payload broadcast).
func DeleteByID[T any](db *gorm.DB, idColumn, id string) (*T, error) {
	rec, err := FindByID[T](db, idColumn, id)
	if err != nil {
		return nil, err
	}
	if err := db.Delete(rec, idColumn+" = ?", id).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func CountAll[T any](db *gorm.DB) (int64, error) {
	var rec T
	var n int64
	if err := db.Model(&rec).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

// ============================
// Search
// ============================

// SearchColumns: substring match case-insensitive pada kolom teks yang
// ditunjuk per tipe. Query kosong tidak pernah sampai ke sini (lihat
// controller search).
func SearchColumns[T any](db *gorm.DB, q string, columns ...string) ([]T, error) {
	pattern := "%" + strings.ToLower(q) + "%"
	conds := make([]string, 0, len(columns))
	args := make([]interface{}, 0, len(columns))
	for _, col := range columns {
		conds = append(conds, "LOWER("+col+") LIKE ?")
		args = append(args, pattern)
	}

	var recs []T
	if err := db.Where(strings.Join(conds, " OR "), args...).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
