package progress

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/evandrarf/desertfoxes-be/internal/storage"
	"github.com/sirupsen/logrus"
)

var ErrStoreClosed = errors.New("progress store closed")

// IdentityProvider supplies the active username, if any.
type IdentityProvider interface {
	Current() (username string, ok bool)
}

type Config struct {
	Storage  storage.KV
	Identity IdentityProvider
	Log      *logrus.Logger
	Now      func() time.Time

	KeyPrefix    string
	FallbackKey  string
	WriteTimeout time.Duration

	// OnWriteError receives every failed durable write as a *WriteError.
	// It runs on the writer goroutine and must not call back into the Store.
	// Defaults to an error log line.
	OnWriteError func(error)
}

// Store holds the progress record of the active identity and mirrors every
// change to durable storage. Mutations issued before Load has succeeded are
// dropped.
type Store struct {
	mu  sync.Mutex
	cfg Config
	log *logrus.Logger
	w   *writer

	record   Record
	username string
	hasUser  bool
	key      string
	loaded   bool
	closed   bool
}

func NewStore(cfg Config) *Store {
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	if cfg.Now == nil {
		cfg.Now = func() time.Time { return time.Now().UTC() }
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DefaultKeyPrefix
	}
	if cfg.FallbackKey == "" {
		cfg.FallbackKey = DefaultFallbackKey
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if cfg.OnWriteError == nil {
		log := cfg.Log
		cfg.OnWriteError = func(err error) {
			log.WithError(err).Error("Failed to persist progress")
		}
	}

	return &Store{
		cfg:    cfg,
		log:    cfg.Log,
		w:      newWriter(cfg.Storage, cfg.WriteTimeout, cfg.OnWriteError),
		record: NewRecord(cfg.Now()),
	}
}

// Load resolves the active identity and reads its record. A missing or
// unreadable record yields an empty one. A storage read failure is returned
// and leaves the store unloaded, so no write can clobber the stored record.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	username, ok := s.currentIdentity()
	return s.loadLocked(ctx, username, ok)
}

// HandleIdentityChange reloads when the active identity differs from the
// one the record was loaded for. Wire it to the identity source's change
// notifications.
func (s *Store) HandleIdentityChange(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	username, ok := s.currentIdentity()
	if s.loaded && ok == s.hasUser && username == s.username {
		return nil
	}

	s.log.WithFields(logrus.Fields{
		"from": s.username,
		"to":   username,
	}).Info("Active identity changed, reloading progress")
	return s.loadLocked(ctx, username, ok)
}

func (s *Store) currentIdentity() (string, bool) {
	if s.cfg.Identity == nil {
		return "", false
	}
	return s.cfg.Identity.Current()
}

func (s *Store) loadLocked(ctx context.Context, username string, ok bool) error {
	key := StorageKey(s.cfg.KeyPrefix, s.cfg.FallbackKey, username, ok)
	now := s.cfg.Now()

	s.loaded = false
	s.username, s.hasUser, s.key = username, ok, key
	s.record = NewRecord(now)

	// A record written just before an identity switch may still be queued.
	if err := s.drainLocked(ctx); err != nil {
		return fmt.Errorf("load progress %s: %w", key, err)
	}

	data, err := s.cfg.Storage.Get(ctx, key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.log.WithField("key", key).Debug("No stored progress, starting empty")
	case err != nil:
		return fmt.Errorf("load progress %s: %w", key, err)
	default:
		rec, decodeErr := DecodeRecord(data, now)
		if decodeErr != nil {
			s.log.WithError(decodeErr).WithField("key", key).Warn("Stored progress is malformed, starting empty")
		}
		s.record = rec
	}

	s.loaded = true
	return nil
}

// drainLocked waits until every queued write has been attempted.
func (s *Store) drainLocked(ctx context.Context) error {
	done := make(chan struct{})
	s.w.enqueue(writeJob{done: done})
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// mutate applies fn to the record and persists it when fn reports a change.
func (s *Store) mutate(op string, fn func(r *Record, now time.Time) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded || s.closed {
		s.log.WithField("op", op).Debug("Progress not loaded, dropping mutation")
		return
	}
	if fn(&s.record, s.cfg.Now()) {
		s.persistLocked()
	}
}

func (s *Store) persistLocked() {
	data, err := s.record.Encode()
	if err != nil {
		s.cfg.OnWriteError(&WriteError{Key: s.key, Op: WriteOpSet, Err: err})
		return
	}
	s.w.enqueue(writeJob{op: WriteOpSet, key: s.key, value: data})
}

func (s *Store) MarkModuleComplete(moduleID string) {
	s.mutate("markModuleComplete", func(r *Record, now time.Time) bool {
		if !containsString(r.ModulesCompleted, moduleID) {
			r.ModulesCompleted = append(r.ModulesCompleted, moduleID)
		}
		r.LastVisited = now
		return true
	})
}

func (s *Store) MarkCardRead(moduleID, cardID string) {
	s.mutate("markCardRead", func(r *Record, now time.Time) bool {
		cards := r.CardsRead[moduleID]
		if containsString(cards, cardID) {
			return false
		}
		r.CardsRead[moduleID] = append(cards, cardID)
		r.LastVisited = now
		return true
	})
}

// RecordQuizAttempt appends attempt as given; identical attempts are kept.
func (s *Store) RecordQuizAttempt(attempt QuizAttempt) {
	if attempt.IncorrectQuestions != nil {
		attempt.IncorrectQuestions = append([]string{}, attempt.IncorrectQuestions...)
	}
	s.mutate("recordQuizAttempt", func(r *Record, now time.Time) bool {
		r.QuizAttempts = append(r.QuizAttempts, attempt)
		r.LastVisited = now
		return true
	})
}

func (s *Store) UpdateFlashcardProgress(cardID string, state FlashcardState) {
	s.mutate("updateFlashcardProgress", func(r *Record, now time.Time) bool {
		r.FlashcardProgress[cardID] = state
		r.LastVisited = now
		return true
	})
}

// ReviewFlashcard schedules the next review of cardID from its stored state.
// It reports false when the mutation was dropped.
func (s *Store) ReviewFlashcard(cardID string, confidence Confidence) (FlashcardState, bool) {
	var next FlashcardState
	applied := false
	s.mutate("reviewFlashcard", func(r *Record, now time.Time) bool {
		var prev *FlashcardState
		if state, ok := r.FlashcardProgress[cardID]; ok {
			prev = &state
		}
		next = ScheduleReview(prev, confidence, now)
		r.FlashcardProgress[cardID] = next
		r.LastVisited = now
		applied = true
		return true
	})
	return next, applied
}

// SetCurrentPath selects a learning path; an empty id clears it.
func (s *Store) SetCurrentPath(pathID string) {
	s.mutate("setCurrentPath", func(r *Record, now time.Time) bool {
		r.CurrentPath = pathID
		r.LastVisited = now
		return true
	})
}

// AddBookmark ignores b.DateAdded and stamps the insertion time.
func (s *Store) AddBookmark(b Bookmark) {
	s.mutate("addBookmark", func(r *Record, now time.Time) bool {
		if indexOfBookmark(r.Bookmarks, b.Type, b.ID) >= 0 {
			return false
		}
		b.DateAdded = now
		r.Bookmarks = append(r.Bookmarks, b)
		r.LastVisited = now
		return true
	})
}

func (s *Store) RemoveBookmark(t BookmarkType, id string) {
	s.mutate("removeBookmark", func(r *Record, now time.Time) bool {
		i := indexOfBookmark(r.Bookmarks, t, id)
		if i < 0 {
			return false
		}
		r.Bookmarks = append(r.Bookmarks[:i:i], r.Bookmarks[i+1:]...)
		r.LastVisited = now
		return true
	})
}

// ResetProgress empties the record and deletes the stored entry.
func (s *Store) ResetProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded || s.closed {
		s.log.WithField("op", "resetProgress").Debug("Progress not loaded, dropping mutation")
		return
	}
	s.record = NewRecord(s.cfg.Now())
	s.w.enqueue(writeJob{op: WriteOpDelete, key: s.key})
}

// Progress returns a copy of the current record.
func (s *Store) Progress() Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

func (s *Store) ModuleProgress(moduleID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ModulePercent(len(s.record.CardsRead[moduleID]))
}

func (s *Store) TotalProgress() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TotalPercent(len(s.record.ModulesCompleted))
}

// Username reports the identity the current record belongs to.
func (s *Store) Username() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.username, s.hasUser
}

func (s *Store) Key() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.key
}

func (s *Store) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Flush blocks until every write queued so far has been attempted.
func (s *Store) Flush(ctx context.Context) error {
	done := make(chan struct{})

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrStoreClosed
	}
	s.w.enqueue(writeJob{done: done})
	s.mu.Unlock()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close drains pending writes and stops the writer. The storage backend is
// left open.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	s.w.close()
}
