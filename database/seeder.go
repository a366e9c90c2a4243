package database

import (
	"fmt"
	"strings"

	"github.com/evandrarf/desertfoxes-be/internal/entity"
	"github.com/evandrarf/desertfoxes-be/internal/identity"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SeedKnownUsers registers the nicknames from identity.seed_users so they
// show up on the login screen of a fresh installation. Existing users are
// left untouched.
func SeedKnownUsers(db *gorm.DB, usernames []string, log *logrus.Logger) error {
	seeded := 0
	for _, raw := range usernames {
		username, err := identity.Normalize(raw)
		if err != nil {
			log.WithField("username", raw).Warn("Skipping invalid seed user")
			continue
		}

		user := entity.KnownUser{
			Username: username,
			Lookup:   strings.ToLower(username),
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "lookup"}},
			DoNothing: true,
		}).Create(&user)
		if result.Error != nil {
			return fmt.Errorf("failed to seed user %s: %w", username, result.Error)
		}
		seeded += int(result.RowsAffected)
	}

	log.WithField("count", seeded).Info("Known users seeded")
	return nil
}
