package configs

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	SiteName     string
	UploadDir    string
	MaxUploadMB  int
	CorsOrigins  string
	DefaultPin   string
	DefaultTheme string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	SiteName = GetEnv("SITE_NAME", "LinkSphere")
	UploadDir = GetEnv("UPLOAD_DIR", "./uploads")
	CorsOrigins = GetEnv("CORS_ORIGINS", "http://localhost:5173")
	DefaultPin = GetEnv("ADMIN_PIN_DEFAULT", "1234")
	DefaultTheme = GetEnv("DEFAULT_THEME", "light")

	MaxUploadMB = 50
	if v := GetEnv("MAX_UPLOAD_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			MaxUploadMB = n
		}
	}

	if GetEnv("DB_HOST") == "" {
		log.Println("⚠️ DB_HOST belum diset, fallback ke SQLite lokal")
	} else {
		log.Println("✅ Konfigurasi PostgreSQL ditemukan.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// MaxUploadBytes batas ukuran body upload multipart.
func MaxUploadBytes() int64 {
	return int64(MaxUploadMB) * 1024 * 1024
}
