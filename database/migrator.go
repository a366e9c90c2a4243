package database

import (
	"github.com/evandrarf/desertfoxes-be/internal/entity"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.ProgressEntry{},
		&entity.KnownUser{},
	)
}
