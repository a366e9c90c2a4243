package route

import (
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/handler"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type RouteConfig struct {
	Api             *fiber.App
	Middleware      *middleware.Middleware
	SessionHandler  handler.SessionHandler
	ProgressHandler handler.ProgressHandler
	CatalogHandler  handler.CatalogHandler
}

func Setup(c *RouteConfig) {
	c.Api.Use(recover.New())
	c.Api.Use(c.Middleware.RequestLogger(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path}\n",
	}))
	c.Api.Use(c.Middleware.CorsMiddleware())

	SetupSessionRoute(c.Api, c.SessionHandler, c.Middleware)
	SetupProgressRoute(c.Api, c.ProgressHandler, c.Middleware)
	SetupCatalogRoute(c.Api, c.CatalogHandler, c.Middleware)
}
