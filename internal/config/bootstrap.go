package config

import (
	"context"
	"fmt"

	"github.com/evandrarf/desertfoxes-be/internal/catalog"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/handler"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/middleware"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/repository"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/route"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/usecase"
	"github.com/evandrarf/desertfoxes-be/internal/identity"
	"github.com/evandrarf/desertfoxes-be/internal/pkg/validate"
	"github.com/evandrarf/desertfoxes-be/internal/progress"
	"github.com/evandrarf/desertfoxes-be/internal/storage"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/gorm"
)

type BootstrapConfig struct {
	Api       *fiber.App
	Config    *viper.Viper
	DB        *gorm.DB
	Log       *logrus.Logger
	Validator *validate.Validator
}

// Bootstrap wires every component onto config.Api. The returned shutdown
// function drains pending progress writes and closes the storage backend.
func Bootstrap(config *BootstrapConfig) (shutdown func(ctx context.Context), err error) {
	mid := middleware.NewMiddleware(&middleware.MiddlewareConfig{
		Log:    config.Log,
		Config: config.Config,
	})

	content, err := catalog.Load(config.Config.GetString("catalog.path"))
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}

	kv, err := storage.New(config.Config, config.DB, config.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress storage: %w", err)
	}

	session := identity.NewSession()
	store := progress.NewStore(progress.Config{
		Storage:      kv,
		Identity:     session,
		Log:          config.Log,
		KeyPrefix:    config.Config.GetString("progress.key_prefix"),
		FallbackKey:  config.Config.GetString("progress.fallback_key"),
		WriteTimeout: config.Config.GetDuration("storage.write_timeout"),
	})

	// Progress endpoints retry the load, so a storage outage here is not fatal.
	if err := store.Load(context.Background()); err != nil {
		config.Log.WithError(err).Warn("Initial progress load failed")
	}
	session.Subscribe(func() {
		if err := store.HandleIdentityChange(context.Background()); err != nil {
			config.Log.WithError(err).Warn("Failed to reload progress after identity change")
		}
	})

	var knownUserRepo repository.KnownUserRepository
	if config.DB != nil {
		knownUserRepo = repository.NewKnownUserRepository(config.DB)
	}

	sessionUsecase := usecase.NewSessionUsecase(usecase.SessionConfig{
		DB:         config.DB,
		Repository: knownUserRepo,
		Session:    session,
		Store:      store,
		Log:        config.Log,
	})
	progressUsecase := usecase.NewProgressUsecase(usecase.ProgressConfig{
		Store:   store,
		Catalog: content,
		Log:     config.Log,
	})
	catalogUsecase := usecase.NewCatalogUsecase(content)

	route.Setup(&route.RouteConfig{
		Api:             config.Api,
		Middleware:      mid,
		SessionHandler:  handler.NewSessionHandler(config.Validator, config.Log, sessionUsecase),
		ProgressHandler: handler.NewProgressHandler(config.Validator, config.Log, progressUsecase),
		CatalogHandler:  handler.NewCatalogHandler(config.Validator, config.Log, catalogUsecase),
	})

	return func(ctx context.Context) {
		if err := store.Flush(ctx); err != nil {
			config.Log.WithError(err).Warn("Pending progress writes not flushed")
		}
		store.Close()
		if err := kv.Close(); err != nil {
			config.Log.WithError(err).Warn("Failed to close progress storage")
		}
	}, nil
}
