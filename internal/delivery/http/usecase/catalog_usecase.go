package usecase

import (
	"github.com/evandrarf/desertfoxes-be/internal/catalog"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/entity"
	"github.com/evandrarf/desertfoxes-be/internal/pkg/mapper"
)

type CatalogUsecase interface {
	Modules() []catalog.Module
	Module(id string) (*catalog.Module, error)
	Timeline(category string) []catalog.TimelineEvent
	Flashcards(moduleID string) []catalog.Flashcard
	Quiz(moduleID string) (*entity.QuizResponse, error)
	LearningPaths() []catalog.LearningPath
	Glossary() []catalog.GlossaryTerm
	Museum(query entity.MuseumQuery) []catalog.MuseumItem
	Maps(category string) []catalog.HistoricalMap
}

type catalogUsecase struct {
	catalog *catalog.Catalog
}

func NewCatalogUsecase(c *catalog.Catalog) CatalogUsecase {
	return &catalogUsecase{catalog: c}
}

func (u *catalogUsecase) Modules() []catalog.Module {
	return u.catalog.Modules()
}

func (u *catalogUsecase) Module(id string) (*catalog.Module, error) {
	m, err := u.catalog.Module(id)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (u *catalogUsecase) Timeline(category string) []catalog.TimelineEvent {
	return u.catalog.Timeline(category)
}

func (u *catalogUsecase) Flashcards(moduleID string) []catalog.Flashcard {
	return u.catalog.Flashcards(moduleID)
}

// Quiz returns the module's questions in module order, without answers.
func (u *catalogUsecase) Quiz(moduleID string) (*entity.QuizResponse, error) {
	m, err := u.catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}
	if len(m.QuizQuestions) == 0 {
		return nil, ErrNoQuiz
	}

	questions := make([]catalog.QuizQuestion, 0, len(m.QuizQuestions))
	for _, id := range m.QuizQuestions {
		q, err := u.catalog.Question(id)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	quiz := mapper.ToQuiz(m, questions)
	return &quiz, nil
}

func (u *catalogUsecase) LearningPaths() []catalog.LearningPath {
	return u.catalog.LearningPaths()
}

func (u *catalogUsecase) Glossary() []catalog.GlossaryTerm {
	return u.catalog.Glossary()
}

func (u *catalogUsecase) Museum(query entity.MuseumQuery) []catalog.MuseumItem {
	return u.catalog.Museum(catalog.MuseumFilter{Type: query.Type, Nation: query.Nation})
}

func (u *catalogUsecase) Maps(category string) []catalog.HistoricalMap {
	return u.catalog.Maps(category)
}
