package handler

import (
	"errors"

	"github.com/evandrarf/desertfoxes-be/internal/catalog"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/usecase"
	"github.com/evandrarf/desertfoxes-be/internal/identity"
	"github.com/evandrarf/desertfoxes-be/internal/pkg/response"
	"github.com/evandrarf/desertfoxes-be/internal/pkg/validate"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrModuleNotFound),
		errors.Is(err, catalog.ErrQuestionNotFound),
		errors.Is(err, usecase.ErrUnknownCard),
		errors.Is(err, usecase.ErrUnknownFlashcard),
		errors.Is(err, usecase.ErrNoQuiz):
		return fiber.StatusNotFound
	case errors.Is(err, identity.ErrEmptyUsername),
		errors.Is(err, identity.ErrUsernameTooShort),
		errors.Is(err, usecase.ErrUnknownPath),
		errors.Is(err, usecase.ErrInvalidBookmark):
		return fiber.StatusBadRequest
	case errors.Is(err, usecase.ErrProgressUnavailable):
		return fiber.StatusServiceUnavailable
	}
	return fiber.StatusInternalServerError
}

// failed turns a usecase or validation error into a response with the
// matching status. Unexpected errors stay 500 and are logged without
// leaking their text to the client.
func failed(msg string, err error, log *logrus.Logger) *response.Response {
	var fieldsErr *validate.FieldsError
	var fiberErr *fiber.Error
	if errors.As(err, &fieldsErr) || errors.As(err, &fiberErr) {
		return response.NewFailed(msg, err, log)
	}

	code := statusFor(err)
	if code == fiber.StatusInternalServerError {
		return response.NewFailed(msg, err, log)
	}
	return response.NewFailed(msg, fiber.NewError(code, err.Error()), log)
}
