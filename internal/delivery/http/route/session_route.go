package route

import (
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/handler"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupSessionRoute(api *fiber.App, handler handler.SessionHandler, m *middleware.Middleware) {
	router := api.Group("/session")
	{
		router.Get("/", handler.Current)
		router.Post("/login", handler.Login)
		router.Post("/logout", handler.Logout)
	}
}
