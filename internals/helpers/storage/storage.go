// Penyimpanan blob lokal: file upload disimpan di satu direktori dan
// disajikan balik sebagai static file di /uploads/<key>.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	helper "linksphere_backend/internals/helpers"
)

type LocalStorage struct {
	Dir string
}

func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("gagal membuat direktori upload: %w", err)
	}
	return &LocalStorage{Dir: dir}, nil
}

// SaveMultipart menyimpan file dari form multipart dengan key unik.
// Mengembalikan key dan ukuran file dalam bytes.
func (s *LocalStorage) SaveMultipart(fileHeader *multipart.FileHeader) (string, int64, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", 0, fmt.Errorf("gagal membuka file upload: %w", err)
	}
	defer src.Close()

	key := helper.GenerateUniqueFilename(fileHeader.Filename)
	dst, err := os.Create(filepath.Join(s.Dir, key))
	if err != nil {
		return "", 0, fmt.Errorf("gagal membuat file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return "", 0, fmt.Errorf("gagal menulis file: %w", err)
	}
	return key, written, nil
}

// SaveBytes menyimpan blob yang sudah ada di memori (mis. hasil konversi webp).
func (s *LocalStorage) SaveBytes(originalName string, data []byte) (string, int64, error) {
	key := helper.GenerateUniqueFilename(originalName)
	if err := os.WriteFile(filepath.Join(s.Dir, key), data, 0o644); err != nil {
		return "", 0, fmt.Errorf("gagal menulis file: %w", err)
	}
	return key, int64(len(data)), nil
}

// Delete menghapus blob berdasarkan key. Error dikembalikan untuk dilog,
// bukan untuk menggagalkan operasi pemanggil.
func (s *LocalStorage) Delete(key string) error {
	if key == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.Dir, key))
}

// URL path publik untuk sebuah key.
func (s *LocalStorage) URL(key string) string {
	return "/uploads/" + key
}
