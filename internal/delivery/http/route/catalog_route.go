package route

import (
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/handler"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoute(api *fiber.App, handler handler.CatalogHandler, m *middleware.Middleware) {
	moduleRouter := api.Group("/modules")
	{
		moduleRouter.Get("/", handler.Modules)
		moduleRouter.Get("/:module_id", handler.Module)
	}

	api.Get("/quizzes/:module_id", handler.Quiz)
	api.Get("/timeline", handler.Timeline)
	api.Get("/flashcards", handler.Flashcards)
	api.Get("/paths", handler.LearningPaths)
	api.Get("/glossary", handler.Glossary)
	api.Get("/museum", handler.Museum)
	api.Get("/maps", handler.Maps)
}
