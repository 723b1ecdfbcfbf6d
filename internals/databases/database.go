package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	gormUtils "gorm.io/gorm/utils"

	"linksphere_backend/internals/configs"
	AlertModel "linksphere_backend/internals/features/alerts/model"
	GroupModel "linksphere_backend/internals/features/groups/model"
	LinkModel "linksphere_backend/internals/features/links/model"
	NewsModel "linksphere_backend/internals/features/news/model"
	PdfModel "linksphere_backend/internals/features/pdfs/model"
	SettingModel "linksphere_backend/internals/features/settings/model"
)

var DB *gorm.DB

// ConnectDB membuka koneksi database.
// DB_HOST terisi → PostgreSQL; kosong → SQLite lokal (DB_FILE, default data.db,
// ":memory:" didukung untuk test / mode tanpa persistensi).
func ConnectDB() {
	var (
		db  *gorm.DB
		err error
	)

	if host := configs.GetEnv("DB_HOST"); host != "" {
		dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			configs.GetEnv("DB_USER"),
			configs.GetEnv("DB_PASSWORD"),
			host,
			configs.GetEnv("DB_PORT", "5432"),
			configs.GetEnv("DB_NAME"),
			configs.GetEnv("DB_SSLMODE", "require"),
		)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true, // ✅ hindari cache prepared statement
		}), &gorm.Config{
			Logger: NewGormLogger(),
		})
	} else {
		dbFile := configs.GetEnv("DB_FILE", "data.db")
		db, err = gorm.Open(sqlite.Open(dbFile), &gorm.Config{
			Logger: NewGormLogger(),
		})
	}

	if err != nil {
		log.Fatalf("❌ Gagal koneksi ke database: %v", err)
	}

	DB = db
	log.Println("✅ Database terkoneksi.")

	if err := Migrate(db); err != nil {
		log.Fatalf("❌ Gagal migrasi database: %v", err)
	}
}

// Migrate menjalankan AutoMigrate untuk semua koleksi konten.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&LinkModel.LinkModel{},
		&PdfModel.PdfModel{},
		&NewsModel.NewsModel{},
		&AlertModel.AlertModel{},
		&GroupModel.GroupModel{},
		&SettingModel.SettingModel{},
		&SettingModel.AnalyticsModel{},
	)
}

// TunePool menyetel pool koneksi (no-op untuk SQLite, tetap aman dipanggil).
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] gagal mengambil sql.DB: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[INFO] "+msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[WARN] "+msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	log.Printf("[ERROR] "+msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := gormUtils.FileWithLineNum()

	if err != nil && err != gorm.ErrRecordNotFound {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
