package storage

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

const (
	BackendDatabase = "database"
	BackendRedis    = "redis"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

// New builds the backend named by storage.backend. db is only used by the
// database backend and may be nil otherwise.
func New(config *viper.Viper, db *gorm.DB, log *logrus.Logger) (KV, error) {
	backend := strings.ToLower(strings.TrimSpace(config.GetString("storage.backend")))
	if backend == "" {
		backend = BackendDatabase
	}

	var (
		kv  KV
		err error
	)
	switch backend {
	case BackendDatabase:
		if db == nil {
			return nil, fmt.Errorf("storage backend %q requires a database connection", backend)
		}
		kv = NewDatabase(db)
	case BackendRedis:
		kv, err = NewRedis(RedisConfig{
			Addr:      config.GetString("storage.redis.addr"),
			Password:  config.GetString("storage.redis.password"),
			DB:        config.GetInt("storage.redis.db"),
			Namespace: config.GetString("storage.redis.namespace"),
		})
	case BackendFile:
		kv, err = NewFile(config.GetString("storage.file.dir"))
	case BackendMemory:
		kv = NewMemory()
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
	if err != nil {
		return nil, err
	}

	if log != nil {
		log.WithField("backend", backend).Info("Progress storage ready")
	}
	return kv, nil
}
