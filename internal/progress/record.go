package progress

import (
	"encoding/json"
	"fmt"
	"time"
)

type Confidence string

const (
	ConfidenceAgain Confidence = "again"
	ConfidenceGood  Confidence = "good"
	ConfidenceEasy  Confidence = "easy"
)

func (c Confidence) Valid() bool {
	switch c {
	case ConfidenceAgain, ConfidenceGood, ConfidenceEasy:
		return true
	}
	return false
}

type BookmarkType string

const (
	BookmarkModule   BookmarkType = "module"
	BookmarkCard     BookmarkType = "card"
	BookmarkTimeline BookmarkType = "timeline"
	BookmarkGlossary BookmarkType = "glossary"
)

func (t BookmarkType) Valid() bool {
	switch t {
	case BookmarkModule, BookmarkCard, BookmarkTimeline, BookmarkGlossary:
		return true
	}
	return false
}

type QuizAttempt struct {
	QuizID             string    `json:"quizId"`
	ModuleID           string    `json:"moduleId"`
	Date               time.Time `json:"date"`
	Score              int       `json:"score"`
	TotalQuestions     int       `json:"totalQuestions"`
	IncorrectQuestions []string  `json:"incorrectQuestions"`
}

type FlashcardState struct {
	LastReviewed time.Time  `json:"lastReviewed"`
	Confidence   Confidence `json:"confidence"`
	ReviewCount  int        `json:"reviewCount"`
	NextReview   time.Time  `json:"nextReview"`
}

type Bookmark struct {
	Type      BookmarkType `json:"type"`
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	DateAdded time.Time    `json:"dateAdded"`
}

// Record is everything stored for one identity. The JSON shape is the one
// the browser client used to keep in local storage.
type Record struct {
	ModulesCompleted  []string                  `json:"modulesCompleted"`
	CardsRead         map[string][]string       `json:"cardsRead"`
	QuizAttempts      []QuizAttempt             `json:"quizAttempts"`
	FlashcardProgress map[string]FlashcardState `json:"flashcardProgress"`
	CurrentPath       string                    `json:"currentPath,omitempty"`
	LastVisited       time.Time                 `json:"lastVisited"`
	Bookmarks         []Bookmark                `json:"bookmarks"`
}

// NewRecord returns the canonical empty record.
func NewRecord(now time.Time) Record {
	return Record{
		ModulesCompleted:  []string{},
		CardsRead:         map[string][]string{},
		QuizAttempts:      []QuizAttempt{},
		FlashcardProgress: map[string]FlashcardState{},
		LastVisited:       now,
		Bookmarks:         []Bookmark{},
	}
}

// DecodeRecord decodes data over the empty record, so fields an older
// client never wrote keep their defaults.
func DecodeRecord(data []byte, now time.Time) (Record, error) {
	rec := NewRecord(now)
	if err := json.Unmarshal(data, &rec); err != nil {
		return NewRecord(now), fmt.Errorf("decode progress record: %w", err)
	}
	rec.normalize()
	return rec, nil
}

func (r Record) Encode() ([]byte, error) {
	return json.Marshal(r)
}

// normalize restores the set invariants on data that came from outside.
func (r *Record) normalize() {
	r.ModulesCompleted = uniqueStrings(r.ModulesCompleted)

	if r.CardsRead == nil {
		r.CardsRead = map[string][]string{}
	}
	for moduleID, cards := range r.CardsRead {
		r.CardsRead[moduleID] = uniqueStrings(cards)
	}

	if r.QuizAttempts == nil {
		r.QuizAttempts = []QuizAttempt{}
	}
	if r.FlashcardProgress == nil {
		r.FlashcardProgress = map[string]FlashcardState{}
	}

	bookmarks := make([]Bookmark, 0, len(r.Bookmarks))
	for _, b := range r.Bookmarks {
		if indexOfBookmark(bookmarks, b.Type, b.ID) < 0 {
			bookmarks = append(bookmarks, b)
		}
	}
	r.Bookmarks = bookmarks
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	out := Record{
		ModulesCompleted:  append([]string{}, r.ModulesCompleted...),
		CardsRead:         make(map[string][]string, len(r.CardsRead)),
		QuizAttempts:      make([]QuizAttempt, len(r.QuizAttempts)),
		FlashcardProgress: make(map[string]FlashcardState, len(r.FlashcardProgress)),
		CurrentPath:       r.CurrentPath,
		LastVisited:       r.LastVisited,
		Bookmarks:         append([]Bookmark{}, r.Bookmarks...),
	}
	for moduleID, cards := range r.CardsRead {
		out.CardsRead[moduleID] = append([]string{}, cards...)
	}
	for i, a := range r.QuizAttempts {
		if a.IncorrectQuestions != nil {
			a.IncorrectQuestions = append([]string{}, a.IncorrectQuestions...)
		}
		out.QuizAttempts[i] = a
	}
	for cardID, state := range r.FlashcardProgress {
		out.FlashcardProgress[cardID] = state
	}
	return out
}

func uniqueStrings(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func indexOfBookmark(list []Bookmark, t BookmarkType, id string) int {
	for i, b := range list {
		if b.Type == t && b.ID == id {
			return i
		}
	}
	return -1
}
