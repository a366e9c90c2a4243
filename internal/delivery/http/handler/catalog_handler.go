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
	CatalogHandler interface {
		Modules(ctx *fiber.Ctx) error
		Module(ctx *fiber.Ctx) error
		Timeline(ctx *fiber.Ctx) error
		Flashcards(ctx *fiber.Ctx) error
		Quiz(ctx *fiber.Ctx) error
		LearningPaths(ctx *fiber.Ctx) error
		Glossary(ctx *fiber.Ctx) error
		Museum(ctx *fiber.Ctx) error
		Maps(ctx *fiber.Ctx) error
	}

	catalogHandler struct {
		validator *validate.Validator
		logger    *logrus.Logger
		usecase   usecase.CatalogUsecase
	}
)

func NewCatalogHandler(validator *validate.Validator, logger *logrus.Logger, usecase usecase.CatalogUsecase) CatalogHandler {
	return &catalogHandler{
		validator: validator,
		logger:    logger,
		usecase:   usecase,
	}
}

func count(n int) fiber.Map {
	return fiber.Map{"count": n}
}

// GET /modules
func (h *catalogHandler) Modules(ctx *fiber.Ctx) error {
	modules := h.usecase.Modules()
	return response.NewSuccess(domain.CATALOG_MODULES_SUCCESS, modules, count(len(modules))).Send(ctx)
}

// GET /modules/:module_id
func (h *catalogHandler) Module(ctx *fiber.Ctx) error {
	module, err := h.usecase.Module(ctx.Params("module_id"))
	if err != nil {
		return failed(domain.CATALOG_MODULE_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.CATALOG_MODULE_SUCCESS, module, nil).Send(ctx)
}

// GET /timeline?category=8th-army
func (h *catalogHandler) Timeline(ctx *fiber.Ctx) error {
	events := h.usecase.Timeline(ctx.Query("category"))
	return response.NewSuccess(domain.CATALOG_TIMELINE_SUCCESS, events, count(len(events))).Send(ctx)
}

// GET /flashcards?module_id=module-1
func (h *catalogHandler) Flashcards(ctx *fiber.Ctx) error {
	cards := h.usecase.Flashcards(ctx.Query("module_id"))
	return response.NewSuccess(domain.CATALOG_FLASHCARDS_SUCCESS, cards, count(len(cards))).Send(ctx)
}

// GET /quizzes/:module_id
func (h *catalogHandler) Quiz(ctx *fiber.Ctx) error {
	quiz, err := h.usecase.Quiz(ctx.Params("module_id"))
	if err != nil {
		return failed(domain.CATALOG_QUIZ_FAILED, err, h.logger).Send(ctx)
	}
	return response.NewSuccess(domain.CATALOG_QUIZ_SUCCESS, quiz, nil).Send(ctx)
}

// GET /paths
func (h *catalogHandler) LearningPaths(ctx *fiber.Ctx) error {
	paths := h.usecase.LearningPaths()
	return response.NewSuccess(domain.CATALOG_PATHS_SUCCESS, paths, count(len(paths))).Send(ctx)
}

// GET /glossary
func (h *catalogHandler) Glossary(ctx *fiber.Ctx) error {
	terms := h.usecase.Glossary()
	return response.NewSuccess(domain.CATALOG_GLOSSARY_SUCCESS, terms, count(len(terms))).Send(ctx)
}

// GET /museum?type=tank&nation=axis
func (h *catalogHandler) Museum(ctx *fiber.Ctx) error {
	var query entity.MuseumQuery
	if err := h.validator.ParseQueryAndValidate(ctx, &query); err != nil {
		return failed(domain.CATALOG_MUSEUM_FAILED, err, h.logger).Send(ctx)
	}

	items := h.usecase.Museum(query)
	return response.NewSuccess(domain.CATALOG_MUSEUM_SUCCESS, items, count(len(items))).Send(ctx)
}

// GET /maps?category=tobruk
func (h *catalogHandler) Maps(ctx *fiber.Ctx) error {
	maps := h.usecase.Maps(ctx.Query("category"))
	return response.NewSuccess(domain.CATALOG_MAPS_SUCCESS, maps, count(len(maps))).Send(ctx)
}
