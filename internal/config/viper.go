package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/evandrarf/desertfoxes-be/internal/progress"
	"github.com/spf13/viper"
)

func NewViper() *viper.Viper {
	config := viper.New()

	if os.Getenv("ENV") == "production" {
		config.SetConfigName("config.prod")
	} else {
		config.SetConfigName("config")
	}

	config.SetConfigType("yaml")
	config.AddConfigPath(".")

	SetDefaults(config)
	config.SetEnvPrefix("DESERTFOXES")
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	return config
}

func SetDefaults(config *viper.Viper) {
	config.SetDefault("app.name", "Desert Foxes")
	config.SetDefault("api.listen", ":8080")
	config.SetDefault("api.prefork", false)
	config.SetDefault("api.cors.origins", "*")
	config.SetDefault("log.level", "info")
	config.SetDefault("log.format", "text")
	config.SetDefault("database.driver", "postgres")
	config.SetDefault("database.port", 5432)
	config.SetDefault("database.sslmode", "disable")
	config.SetDefault("database.timezone", "UTC")
	config.SetDefault("database.sqlite.path", "desertfoxes.db")
	config.SetDefault("storage.backend", "database")
	config.SetDefault("storage.redis.namespace", "desertfoxes:")
	config.SetDefault("storage.write_timeout", "5s")
	config.SetDefault("progress.key_prefix", progress.DefaultKeyPrefix)
	config.SetDefault("progress.fallback_key", progress.DefaultFallbackKey)
	config.SetDefault("catalog.path", "")
	config.SetDefault("identity.seed_users", []string{})
}
