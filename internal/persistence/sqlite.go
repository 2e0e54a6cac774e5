package persistence

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	pkgLogger "github.com/jomidar/jomidar-api/pkg/logger"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jomidar/jomidar-api/internal/models"
)

// Connect opens the SQLite database backing snapshot persistence and the
// audit log, creating the parent directory and schema when missing.
func Connect(path string) (*gorm.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	// Configure GORM logger
	logLevel := logger.Silent
	if os.Getenv("ENVIRONMENT") != "production" {
		logLevel = logger.Warn
	}
	gormLogger := pkgLogger.NewGormLogger(logLevel, 200*time.Millisecond)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&SnapshotRecord{}, &models.AuditLog{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
