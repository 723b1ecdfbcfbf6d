package helper

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

// Hapus karakter selain huruf, angka, titik, dash, underscore
func SanitizeFilename(filename string) string {
	return unsafeFilenameRe.ReplaceAllString(filename, "_")
}

// ✅ Buat nama unik untuk blob yang disimpan
func GenerateUniqueFilename(originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	uuidStr := uuid.New().String()
	return fmt.Sprintf("%s-%s-%s", timestamp, uuidStr, SanitizeFilename(originalFilename))
}

// FormatSizeMB label ukuran file ala "2.00 MB"
func FormatSizeMB(sizeBytes int64) string {
	return fmt.Sprintf("%.2f MB", float64(sizeBytes)/1024.0/1024.0)
}
