package route

import (
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/handler"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
)

func SetupProgressRoute(api *fiber.App, handler handler.ProgressHandler, m *middleware.Middleware) {
	router := api.Group("/progress")
	{
		router.Get("/", handler.Get)
		router.Delete("/", handler.Reset)
		router.Get("/summary", handler.Summary)
		router.Put("/path", handler.SetPath)
	}

	moduleRouter := router.Group("/modules/:module_id")
	{
		moduleRouter.Post("/complete", handler.CompleteModule)
		moduleRouter.Post("/cards/:card_id/read", handler.MarkCardRead)
	}

	router.Post("/quiz-attempts", handler.RecordQuizAttempt)
	router.Post("/quizzes/:module_id/submit", handler.SubmitQuiz)

	flashcardRouter := router.Group("/flashcards")
	{
		flashcardRouter.Get("/due", handler.DueFlashcards)
		flashcardRouter.Put("/:card_id", handler.ReviewFlashcard)
	}

	bookmarkRouter := router.Group("/bookmarks")
	{
		bookmarkRouter.Post("/", handler.AddBookmark)
		bookmarkRouter.Delete("/:type/:id", handler.RemoveBookmark)
	}
}
