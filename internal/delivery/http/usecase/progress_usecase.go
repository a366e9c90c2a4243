package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/evandrarf/desertfoxes-be/internal/catalog"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/entity"
	"github.com/evandrarf/desertfoxes-be/internal/pkg/mapper"
	"github.com/evandrarf/desertfoxes-be/internal/progress"
	"github.com/sirupsen/logrus"
)

type ProgressUsecase interface {
	Get(ctx context.Context) (*entity.ProgressResponse, error)
	Summary(ctx context.Context) (*entity.SummaryResponse, error)
	CompleteModule(ctx context.Context, moduleID string) (*entity.ModuleProgressResponse, error)
	MarkCardRead(ctx context.Context, moduleID, cardID string) (*entity.ModuleProgressResponse, error)
	RecordQuizAttempt(ctx context.Context, req entity.QuizAttemptRequest) (*progress.QuizAttempt, error)
	SubmitQuiz(ctx context.Context, moduleID string, req entity.SubmitQuizRequest) (*entity.QuizResultResponse, error)
	ReviewFlashcard(ctx context.Context, cardID string, req entity.FlashcardReviewRequest) (*entity.FlashcardReviewResponse, error)
	DueFlashcards(ctx context.Context) ([]entity.DueFlashcardResponse, error)
	SetPath(ctx context.Context, req entity.SetPathRequest) (*entity.ProgressResponse, error)
	AddBookmark(ctx context.Context, req entity.BookmarkRequest) ([]progress.Bookmark, error)
	RemoveBookmark(ctx context.Context, bookmarkType, id string) ([]progress.Bookmark, error)
	Reset(ctx context.Context) (*entity.ProgressResponse, error)
}

type ProgressConfig struct {
	Store   *progress.Store
	Catalog *catalog.Catalog
	Log     *logrus.Logger
	Now     func() time.Time
}

type progressUsecase struct {
	cfg ProgressConfig
}

func NewProgressUsecase(cfg ProgressConfig) ProgressUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	return &progressUsecase{cfg: cfg}
}

// ensureLoaded retries the initial read when it failed earlier, so a
// storage outage at startup does not leave the service read-only forever.
func (u *progressUsecase) ensureLoaded(ctx context.Context) error {
	if u.cfg.Store.Loaded() {
		return nil
	}
	if err := u.cfg.Store.HandleIdentityChange(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrProgressUnavailable, err)
	}
	return nil
}

func (u *progressUsecase) Get(ctx context.Context) (*entity.ProgressResponse, error) {
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return u.snapshot(), nil
}

func (u *progressUsecase) snapshot() *entity.ProgressResponse {
	username, _ := u.cfg.Store.Username()
	record := u.cfg.Store.Progress()
	return &entity.ProgressResponse{
		Username:      username,
		TotalProgress: progress.TotalPercent(len(record.ModulesCompleted)),
		Progress:      record,
	}
}

func (u *progressUsecase) Summary(ctx context.Context) (*entity.SummaryResponse, error) {
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	summary := mapper.ToSummary(u.cfg.Catalog.Modules(), u.cfg.Store.Progress())
	return &summary, nil
}

func (u *progressUsecase) CompleteModule(ctx context.Context, moduleID string) (*entity.ModuleProgressResponse, error) {
	m, err := u.cfg.Catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	u.cfg.Store.MarkModuleComplete(moduleID)
	res := mapper.ToModuleProgress(m, u.cfg.Store.Progress())
	return &res, nil
}

func (u *progressUsecase) MarkCardRead(ctx context.Context, moduleID, cardID string) (*entity.ModuleProgressResponse, error) {
	m, err := u.cfg.Catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}
	found := false
	for _, c := range m.Cards {
		if c.ID == cardID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrUnknownCard
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	u.cfg.Store.MarkCardRead(moduleID, cardID)
	res := mapper.ToModuleProgress(m, u.cfg.Store.Progress())
	return &res, nil
}

func (u *progressUsecase) RecordQuizAttempt(ctx context.Context, req entity.QuizAttemptRequest) (*progress.QuizAttempt, error) {
	if _, err := u.cfg.Catalog.Module(req.ModuleID); err != nil {
		return nil, err
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	attempt := progress.QuizAttempt{
		QuizID:             req.QuizID,
		ModuleID:           req.ModuleID,
		Date:               u.cfg.Now(),
		Score:              req.Score,
		TotalQuestions:     req.TotalQuestions,
		IncorrectQuestions: append([]string{}, req.IncorrectQuestions...),
	}
	u.cfg.Store.RecordQuizAttempt(attempt)
	return &attempt, nil
}

// SubmitQuiz grades answers against the module's questions and records the
// result. Unanswered questions count as incorrect.
func (u *progressUsecase) SubmitQuiz(ctx context.Context, moduleID string, req entity.SubmitQuizRequest) (*entity.QuizResultResponse, error) {
	m, err := u.cfg.Catalog.Module(moduleID)
	if err != nil {
		return nil, err
	}
	if len(m.QuizQuestions) == 0 {
		return nil, ErrNoQuiz
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	attempt := progress.QuizAttempt{
		QuizID:             "quiz-" + moduleID,
		ModuleID:           moduleID,
		Date:               u.cfg.Now(),
		TotalQuestions:     len(m.QuizQuestions),
		IncorrectQuestions: []string{},
	}
	results := make([]entity.QuestionResult, 0, len(m.QuizQuestions))

	for _, qid := range m.QuizQuestions {
		q, err := u.cfg.Catalog.Question(qid)
		if err != nil {
			return nil, err
		}
		answer := req.Answers[qid]
		correct := gradeAnswer(q, answer)
		if correct {
			attempt.Score++
		} else {
			attempt.IncorrectQuestions = append(attempt.IncorrectQuestions, qid)
		}
		results = append(results, entity.QuestionResult{
			QuestionID:    qid,
			Answer:        answer,
			Correct:       correct,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		})
	}

	u.cfg.Store.RecordQuizAttempt(attempt)
	u.cfg.Log.WithFields(logrus.Fields{
		"module": moduleID,
		"score":  attempt.Score,
		"total":  attempt.TotalQuestions,
	}).Debug("Quiz graded")

	return &entity.QuizResultResponse{Attempt: attempt, Results: results}, nil
}

func gradeAnswer(q catalog.QuizQuestion, answer string) bool {
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return false
	}
	if q.Type == catalog.QuestionMCQ {
		return answer == q.CorrectAnswer
	}
	return strings.EqualFold(strings.Join(strings.Fields(answer), " "), strings.Join(strings.Fields(q.CorrectAnswer), " "))
}

func (u *progressUsecase) ReviewFlashcard(ctx context.Context, cardID string, req entity.FlashcardReviewRequest) (*entity.FlashcardReviewResponse, error) {
	if _, ok := u.cfg.Catalog.Flashcard(cardID); !ok {
		return nil, ErrUnknownFlashcard
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	next, ok := u.cfg.Store.ReviewFlashcard(cardID, progress.Confidence(req.Confidence))
	if !ok {
		return nil, ErrProgressUnavailable
	}

	return &entity.FlashcardReviewResponse{CardID: cardID, State: next}, nil
}

func (u *progressUsecase) DueFlashcards(ctx context.Context) ([]entity.DueFlashcardResponse, error) {
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	record := u.cfg.Store.Progress()
	due := make([]entity.DueFlashcardResponse, 0)
	for _, id := range progress.DueFlashcards(record, u.cfg.Now()) {
		card, ok := u.cfg.Catalog.Flashcard(id)
		if !ok {
			continue
		}
		due = append(due, mapper.ToDueFlashcard(card, record.FlashcardProgress[id]))
	}
	return due, nil
}

// SetPath selects a learning path; an empty id clears the selection.
func (u *progressUsecase) SetPath(ctx context.Context, req entity.SetPathRequest) (*entity.ProgressResponse, error) {
	pathID := strings.TrimSpace(req.PathID)
	if pathID != "" {
		if _, err := u.cfg.Catalog.LearningPath(pathID); err != nil {
			return nil, ErrUnknownPath
		}
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	u.cfg.Store.SetCurrentPath(pathID)
	return u.snapshot(), nil
}

func (u *progressUsecase) AddBookmark(ctx context.Context, req entity.BookmarkRequest) ([]progress.Bookmark, error) {
	t := progress.BookmarkType(req.Type)
	if !t.Valid() {
		return nil, ErrInvalidBookmark
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	u.cfg.Store.AddBookmark(progress.Bookmark{Type: t, ID: req.ID, Title: req.Title})
	return u.cfg.Store.Progress().Bookmarks, nil
}

func (u *progressUsecase) RemoveBookmark(ctx context.Context, bookmarkType, id string) ([]progress.Bookmark, error) {
	t := progress.BookmarkType(bookmarkType)
	if !t.Valid() {
		return nil, ErrInvalidBookmark
	}
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	u.cfg.Store.RemoveBookmark(t, id)
	return u.cfg.Store.Progress().Bookmarks, nil
}

func (u *progressUsecase) Reset(ctx context.Context) (*entity.ProgressResponse, error) {
	if err := u.ensureLoaded(ctx); err != nil {
		return nil, err
	}

	u.cfg.Store.ResetProgress()
	u.cfg.Log.WithField("key", u.cfg.Store.Key()).Info("Progress reset")
	return u.snapshot(), nil
}
