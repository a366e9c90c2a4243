package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/evandrarf/desertfoxes-be/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type databaseKV struct {
	db *gorm.DB
}

// NewDatabase stores entries in the progress_entries table. The table must
// already be migrated (see database.Migrate).
func NewDatabase(db *gorm.DB) KV {
	return &databaseKV{db: db}
}

func (d *databaseKV) Get(ctx context.Context, key string) ([]byte, error) {
	var row entity.ProgressEntry
	err := d.db.WithContext(ctx).Where("storage_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

func (d *databaseKV) Set(ctx context.Context, key string, value []byte) error {
	row := entity.ProgressEntry{Key: key, Value: string(value)}
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "storage_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

func (d *databaseKV) Delete(ctx context.Context, key string) error {
	err := d.db.WithContext(ctx).Where("storage_key = ?", key).Delete(&entity.ProgressEntry{}).Error
	if err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Close is a no-op; the *gorm.DB is owned by the caller.
func (d *databaseKV) Close() error {
	return nil
}
