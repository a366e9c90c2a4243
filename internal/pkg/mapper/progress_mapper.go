package mapper

import (
	"github.com/evandrarf/desertfoxes-be/internal/catalog"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/entity"
	"github.com/evandrarf/desertfoxes-be/internal/progress"
)

// ToModuleProgress - progress of one catalog module within a record
func ToModuleProgress(m catalog.Module, record progress.Record) entity.ModuleProgressResponse {
	cards := len(record.CardsRead[m.ID])
	completed := false
	for _, id := range record.ModulesCompleted {
		if id == m.ID {
			completed = true
			break
		}
	}

	return entity.ModuleProgressResponse{
		ModuleID:  m.ID,
		Number:    m.Number,
		Title:     m.Title,
		CardsRead: cards,
		Percent:   progress.ModulePercent(cards),
		Completed: completed,
	}
}

// ToSummary - per-module breakdown for every module in the catalog
func ToSummary(modules []catalog.Module, record progress.Record) entity.SummaryResponse {
	out := entity.SummaryResponse{
		TotalProgress:    progress.TotalPercent(len(record.ModulesCompleted)),
		ModulesCompleted: len(record.ModulesCompleted),
		TotalModules:     progress.TotalModules,
		QuizAttempts:     len(record.QuizAttempts),
		CurrentPath:      record.CurrentPath,
		Modules:          make([]entity.ModuleProgressResponse, 0, len(modules)),
	}
	for _, m := range modules {
		out.Modules = append(out.Modules, ToModuleProgress(m, record))
	}
	return out
}

func ToDueFlashcard(card catalog.Flashcard, state progress.FlashcardState) entity.DueFlashcardResponse {
	return entity.DueFlashcardResponse{
		ID:         card.ID,
		Front:      card.Front,
		Back:       card.Back,
		Category:   card.Category,
		ModuleID:   card.ModuleID,
		NextReview: state.NextReview,
	}
}
