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
	SessionHandler interface {
		Login(ctx *fiber.Ctx) error
		Logout(ctx *fiber.Ctx) error
		Current(ctx *fiber.Ctx) error
	}

	sessionHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.SessionUsecase
	}
)

func NewSessionHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.SessionUsecase) SessionHandler {
	return &sessionHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

// POST /session/login
func (h *sessionHandler) Login(ctx *fiber.Ctx) error {
	var req entity.LoginRequest
	if err := h.validator.ParseAndValidate(ctx, &req); err != nil {
		return failed(domain.SESSION_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	session, err := h.usecase.Login(ctx.UserContext(), req)
	if err != nil {
		return failed(domain.SESSION_LOGIN_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SESSION_LOGIN_SUCCESS, session, nil).Send(ctx)
}

// POST /session/logout
func (h *sessionHandler) Logout(ctx *fiber.Ctx) error {
	session, err := h.usecase.Logout(ctx.UserContext())
	if err != nil {
		return failed(domain.SESSION_LOGOUT_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SESSION_LOGOUT_SUCCESS, session, nil).Send(ctx)
}

// GET /session
func (h *sessionHandler) Current(ctx *fiber.Ctx) error {
	session, err := h.usecase.Current(ctx.UserContext())
	if err != nil {
		return failed(domain.SESSION_GET_FAILED, err, h.logger).Send(ctx)
	}

	return response.NewSuccess(domain.SESSION_GET_SUCCESS, session, nil).Send(ctx)
}
