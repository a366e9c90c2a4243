package mapper

import (
	"github.com/evandrarf/desertfoxes-be/internal/catalog"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/entity"
)

// ToPublicQuestion - strips the answer and explanation
func ToPublicQuestion(q catalog.QuizQuestion) entity.QuizQuestionResponse {
	return entity.QuizQuestionResponse{
		ID:         q.ID,
		ModuleID:   q.ModuleID,
		Type:       q.Type,
		Question:   q.Question,
		Options:    append([]string(nil), q.Options...),
		Difficulty: q.Difficulty,
	}
}

func ToQuiz(m catalog.Module, questions []catalog.QuizQuestion) entity.QuizResponse {
	out := entity.QuizResponse{
		ModuleID:  m.ID,
		Title:     m.Title,
		Questions: make([]entity.QuizQuestionResponse, 0, len(questions)),
	}
	for _, q := range questions {
		out.Questions = append(out.Questions, ToPublicQuestion(q))
	}
	return out
}
