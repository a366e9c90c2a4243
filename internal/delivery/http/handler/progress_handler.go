package handler

import (
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/domain"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/entity"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/usecase"
	"github.com/evandrarf/desertfoxes-be/internal/pkg/response"
	"github.com/evandrarf/desertfoxes-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type (
	ProgressHandler interface {
		Get(ctx *fiber.Ctx) error
		Summary(ctx *fiber.Ctx) error
		CompleteModule(ctx *fiber.Ctx) error
		MarkCardRead(ctx *fiber.Ctx) error
		RecordQuizAttempt(ctx *fiber.Ctx) error
		SubmitQuiz(ctx *fiber.Ctx) error
		ReviewFlashcard(ctx *fiber.Ctx) error
		DueFlashcards(ctx *fiber.Ctx) error
		SetPath(ctx *fiber.Ctx) error
		AddBookmark(ctx *fiber.Ctx) error
		RemoveBookmark(ctx *fiber.Ctx) error
		Reset(ctx *fiber.Ctx) error
	}

	progressHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.ProgressUsecase
	}
)

func NewProgressHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.ProgressUsecase) ProgressHandler {
	return &progressHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// GET /progress
func (h *progressHandler) Get(ctx *fiber.Ctx) error {
	res, err := h.usecase.Get(ctx.UserContext())
	if err != nil {
		return failed(domain.PROGRESS_GET_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_GET_SUCCESS, res, nil).Send(ctx)
}

// GET /progress/summary
func (h *progressHandler) Summary(ctx *fiber.Ctx) error {
	res, err := h.usecase.Summary(ctx.UserContext())
	if err != nil {
		return failed(domain.PROGRESS_SUMMARY_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_SUMMARY_SUCCESS, res, nil).Send(ctx)
}

// POST /progress/modules/:module_id/complete
func (h *progressHandler) CompleteModule(ctx *fiber.Ctx) error {
	res, err := h.usecase.CompleteModule(ctx.UserContext(), ctx.Params("module_id"))
	if err != nil {
		return failed(domain.PROGRESS_MODULE_COMPLETE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_MODULE_COMPLETE_SUCCESS, res, nil).Send(ctx)
}

// POST /progress/modules/:module_id/cards/:card_id/read
func (h *progressHandler) MarkCardRead(ctx *fiber.Ctx) error {
	res, err := h.usecase.MarkCardRead(ctx.UserContext(), ctx.Params("module_id"), ctx.Params("card_id"))
	if err != nil {
		return failed(domain.PROGRESS_CARD_READ_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_CARD_READ_SUCCESS, res, nil).Send(ctx)
}

// POST /progress/quiz-attempts
func (h *progressHandler) RecordQuizAttempt(ctx *fiber.Ctx) error {
	var req entity.QuizAttemptRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return failed(domain.PROGRESS_QUIZ_ATTEMPT_FAILED, err, h.logger).Send(ctx)
	}

	attempt, err := h.usecase.RecordQuizAttempt(ctx.UserContext(), req)
	if err != nil {
		return failed(domain.PROGRESS_QUIZ_ATTEMPT_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_QUIZ_ATTEMPT_SUCCESS, attempt, nil).WithStatus(fiber.StatusCreated).Send(ctx)
}

// POST /progress/quizzes/:module_id/submit
func (h *progressHandler) SubmitQuiz(ctx *fiber.Ctx) error {
	var req entity.SubmitQuizRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return failed(domain.PROGRESS_QUIZ_SUBMIT_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.SubmitQuiz(ctx.UserContext(), ctx.Params("module_id"), req)
	if err != nil {
		return failed(domain.PROGRESS_QUIZ_SUBMIT_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_QUIZ_SUBMIT_SUCCESS, res, nil).WithStatus(fiber.StatusCreated).Send(ctx)
}

// PUT /progress/flashcards/:card_id
func (h *progressHandler) ReviewFlashcard(ctx *fiber.Ctx) error {
	var req entity.FlashcardReviewRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return failed(domain.PROGRESS_FLASHCARD_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.ReviewFlashcard(ctx.UserContext(), ctx.Params("card_id"), req)
	if err != nil {
		return failed(domain.PROGRESS_FLASHCARD_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_FLASHCARD_SUCCESS, res, nil).Send(ctx)
}

// GET /progress/flashcards/due
func (h *progressHandler) DueFlashcards(ctx *fiber.Ctx) error {
	due, err := h.usecase.DueFlashcards(ctx.UserContext())
	if err != nil {
		return failed(domain.PROGRESS_FLASHCARD_DUE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_FLASHCARD_DUE_SUCCESS, due, count(len(due))).Send(ctx)
}

// PUT /progress/path
func (h *progressHandler) SetPath(ctx *fiber.Ctx) error {
	var req entity.SetPathRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return failed(domain.PROGRESS_PATH_FAILED, err, h.logger).Send(ctx)
	}

	res, err := h.usecase.SetPath(ctx.UserContext(), req)
	if err != nil {
		return failed(domain.PROGRESS_PATH_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_PATH_SUCCESS, res, nil).Send(ctx)
}

// POST /progress/bookmarks
func (h *progressHandler) AddBookmark(ctx *fiber.Ctx) error {
	var req entity.BookmarkRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return failed(domain.PROGRESS_BOOKMARK_ADD_FAILED, err, h.logger).Send(ctx)
	}

	bookmarks, err := h.usecase.AddBookmark(ctx.UserContext(), req)
	if err != nil {
		return failed(domain.PROGRESS_BOOKMARK_ADD_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_BOOKMARK_ADD_SUCCESS, bookmarks, count(len(bookmarks))).Send(ctx)
}

// DELETE /progress/bookmarks/:type/:id
func (h *progressHandler) RemoveBookmark(ctx *fiber.Ctx) error {
	bookmarks, err := h.usecase.RemoveBookmark(ctx.UserContext(), ctx.Params("type"), ctx.Params("id"))
	if err != nil {
		return failed(domain.PROGRESS_BOOKMARK_REMOVE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_BOOKMARK_REMOVE_SUCCESS, bookmarks, count(len(bookmarks))).Send(ctx)
}

// DELETE /progress
func (h *progressHandler) Reset(ctx *fiber.Ctx) error {
	res, err := h.usecase.Reset(ctx.UserContext())
	if err != nil {
		return failed(domain.PROGRESS_RESET_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.PROGRESS_RESET_SUCCESS, res, nil).Send(ctx)
}
