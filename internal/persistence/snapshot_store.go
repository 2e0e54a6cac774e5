package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jomidar/jomidar-api/internal/models"
)

// SnapshotRecord is the persisted form of the application state: one JSON
// blob per application namespace.
type SnapshotRecord struct {
	Namespace string    `gorm:"primaryKey"`
	Version   int       `gorm:"not null"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"index"`
}

// TableName specifies the table name for SnapshotRecord
func (SnapshotRecord) TableName() string {
	return "snapshots"
}

// SnapshotStore loads and saves full application snapshots. There is no
// partial or incremental persistence contract; every save replaces the
// whole blob for the namespace.
type SnapshotStore struct {
	db        *gorm.DB
	namespace string
}

// NewSnapshotStore creates a snapshot store bound to a namespace
func NewSnapshotStore(db *gorm.DB, namespace string) *SnapshotStore {
	return &SnapshotStore{db: db, namespace: namespace}
}

// Load returns the saved snapshot, migrated to the current schema version,
// or (nil, nil) when nothing has been saved for the namespace yet.
func (s *SnapshotStore) Load(ctx context.Context) (*models.Snapshot, error) {
	var rec SnapshotRecord
	err := s.db.WithContext(ctx).First(&rec, "namespace = ?", s.namespace).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	data, err := Migrate(rec.Data, rec.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate snapshot: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	snap.Version = models.SnapshotVersion
	return &snap, nil
}

// Save upserts the snapshot blob for the namespace.
func (s *SnapshotStore) Save(ctx context.Context, snap models.Snapshot) error {
	snap.Version = models.SnapshotVersion
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	rec := SnapshotRecord{
		Namespace: s.namespace,
		Version:   snap.Version,
		Data:      data,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "namespace"}},
		DoUpdates: clause.AssignmentColumns([]string{"version", "data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}
	return nil
}
