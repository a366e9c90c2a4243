package repository

import (
	"errors"
	"strings"

	"github.com/evandrarf/desertfoxes-be/internal/entity"
	"gorm.io/gorm"
)

type (
	KnownUserRepository interface {
		FindByUsername(db *gorm.DB, username string) (*entity.KnownUser, error)
		FindAll(db *gorm.DB) ([]entity.KnownUser, error)
		Create(db *gorm.DB, user *entity.KnownUser) error
	}

	knownUserRepository struct {
		db *gorm.DB
	}
)

func NewKnownUserRepository(db *gorm.DB) KnownUserRepository {
	return &knownUserRepository{db: db}
}

// FindByUsername matches case-insensitively. It returns nil, nil when the
// user is unknown.
func (r *knownUserRepository) FindByUsername(db *gorm.DB, username string) (*entity.KnownUser, error) {
	if db == nil {
		db = r.db
	}
	var user entity.KnownUser
	err := db.Where("lookup = ?", strings.ToLower(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *knownUserRepository) FindAll(db *gorm.DB) ([]entity.KnownUser, error) {
	if db == nil {
		db = r.db
	}
	var users []entity.KnownUser
	err := db.Order("created_at ASC").Order("id ASC").Find(&users).Error
	return users, err
}

func (r *knownUserRepository) Create(db *gorm.DB, user *entity.KnownUser) error {
	if db == nil {
		db = r.db
	}
	user.Lookup = strings.ToLower(user.Username)
	return db.Create(user).Error
}
