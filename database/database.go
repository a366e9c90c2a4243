package database

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

func New(config *viper.Viper) *gorm.DB {
	dialector, err := Dialector(config)
	if err != nil {
		panic(err)
	}

	gormConfig := &gorm.Config{}
	if !config.GetBool("database.debug") {
		gormConfig.Logger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		panic(fmt.Errorf("failed to connect database: %w", err))
	}

	return db
}

// Dialector picks the gorm driver named by database.driver.
func Dialector(config *viper.Viper) (gorm.Dialector, error) {
	driver := strings.ToLower(config.GetString("database.driver"))
	switch driver {
	case "", DriverPostgres:
		return postgres.Open(postgresDSN(config)), nil
	case DriverSQLite:
		path := config.GetString("database.sqlite.path")
		if path == "" {
			path = "desertfoxes.db"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func postgresDSN(config *viper.Viper) string {
	sslmode := config.GetString("database.sslmode")
	if sslmode == "" {
		sslmode = "disable"
	}
	timezone := config.GetString("database.timezone")
	if timezone == "" {
		timezone = "UTC"
	}

	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		config.GetString("database.host"),
		config.GetString("database.username"),
		config.GetString("database.password"),
		config.GetString("database.dbname"),
		config.GetInt("database.port"),
		sslmode,
		timezone,
	)
}
