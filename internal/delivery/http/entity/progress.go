package entity

import (
	"time"

	"github.com/evandrarf/desertfoxes-be/internal/progress"
)

type QuizAttemptRequest struct {
	QuizID             string   `json:"quizId" validate:"required"`
	ModuleID           string   `json:"moduleId" validate:"required"`
	Score              int      `json:"score" validate:"gte=0,ltefield=TotalQuestions"`
	TotalQuestions     int      `json:"totalQuestions" validate:"gte=1"`
	IncorrectQuestions []string `json:"incorrectQuestions" validate:"omitempty,dive,required"`
}

// SubmitQuizRequest maps question id to the given answer: the option index
// for multiple choice, free text otherwise.
type SubmitQuizRequest struct {
	Answers map[string]string `json:"answers" validate:"required"`
}

type FlashcardReviewRequest struct {
	Confidence string `json:"confidence" validate:"required,oneof=again good easy"`
}

type SetPathRequest struct {
	PathID string `json:"pathId"`
}

type BookmarkRequest struct {
	Type  string `json:"type" validate:"required,oneof=module card timeline glossary"`
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"max=200"`
}

type ProgressResponse struct {
	Username      string          `json:"username,omitempty"`
	TotalProgress int             `json:"totalProgress"`
	Progress      progress.Record `json:"progress"`
}

type ModuleProgressResponse struct {
	ModuleID  string `json:"moduleId"`
	Number    int    `json:"number"`
	Title     string `json:"title"`
	CardsRead int    `json:"cardsRead"`
	Percent   int    `json:"percent"`
	Completed bool   `json:"completed"`
}

type SummaryResponse struct {
	TotalProgress    int                      `json:"totalProgress"`
	ModulesCompleted int                      `json:"modulesCompleted"`
	TotalModules     int                      `json:"totalModules"`
	QuizAttempts     int                      `json:"quizAttempts"`
	CurrentPath      string                   `json:"currentPath,omitempty"`
	Modules          []ModuleProgressResponse `json:"modules"`
}

type QuestionResult struct {
	QuestionID    string `json:"questionId"`
	Answer        string `json:"answer"`
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
}

type QuizResultResponse struct {
	Attempt progress.QuizAttempt `json:"attempt"`
	Results []QuestionResult     `json:"results"`
}

type FlashcardReviewResponse struct {
	CardID string                  `json:"cardId"`
	State  progress.FlashcardState `json:"state"`
}

type DueFlashcardResponse struct {
	ID         string    `json:"id"`
	Front      string    `json:"front"`
	Back       string    `json:"back"`
	Category   string    `json:"category"`
	ModuleID   string    `json:"moduleId,omitempty"`
	NextReview time.Time `json:"nextReview"`
}
