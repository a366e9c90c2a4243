package entity

import "github.com/evandrarf/desertfoxes-be/internal/catalog"

type MuseumQuery struct {
	Type   string `query:"type" validate:"omitempty,oneof=all tank vehicle aircraft weapon artillery equipment sasWeapon"`
	Nation string `query:"nation" validate:"omitempty,oneof=all allied axis"`
}

// QuizQuestionResponse is a quiz question without its answer.
type QuizQuestionResponse struct {
	ID         string               `json:"id"`
	ModuleID   string               `json:"moduleId"`
	Type       catalog.QuestionType `json:"type"`
	Question   string               `json:"question"`
	Options    []string             `json:"options,omitempty"`
	Difficulty string               `json:"difficulty"`
}

type QuizResponse struct {
	ModuleID  string                 `json:"moduleId"`
	Title     string                 `json:"title"`
	Questions []QuizQuestionResponse `json:"questions"`
}
