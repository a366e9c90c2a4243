package progress

import (
	"sort"
	"time"
)

const (
	retryDelay      = 10 * time.Minute
	maxIntervalDays = 365
)

// Days until the next review of a card answered "good", by how many times
// it had been reviewed before.
var goodIntervals = []int{1, 2, 3, 7, 10, 15, 20, 30}

// ScheduleReview computes the state after reviewing a card with the given
// confidence. prev is nil for a card never reviewed.
func ScheduleReview(prev *FlashcardState, confidence Confidence, now time.Time) FlashcardState {
	reviews := 0
	if prev != nil {
		reviews = prev.ReviewCount
	}

	next := FlashcardState{
		LastReviewed: now,
		Confidence:   confidence,
		ReviewCount:  reviews + 1,
	}

	switch confidence {
	case ConfidenceAgain:
		next.NextReview = now.Add(retryDelay)
	case ConfidenceEasy:
		next.NextReview = now.AddDate(0, 0, intervalDays(reviews, 2))
	default:
		next.NextReview = now.AddDate(0, 0, intervalDays(reviews, 1))
	}
	return next
}

func intervalDays(reviews, factor int) int {
	idx := reviews
	if idx >= len(goodIntervals) {
		idx = len(goodIntervals) - 1
	}
	days := goodIntervals[idx] * factor
	if days > maxIntervalDays {
		days = maxIntervalDays
	}
	return days
}

// DueFlashcards lists the cards whose next review is not after now,
// earliest first.
func DueFlashcards(r Record, now time.Time) []string {
	due := make([]string, 0)
	for cardID, state := range r.FlashcardProgress {
		if !state.NextReview.After(now) {
			due = append(due, cardID)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		a, b := r.FlashcardProgress[due[i]].NextReview, r.FlashcardProgress[due[j]].NextReview
		if !a.Equal(b) {
			return a.Before(b)
		}
		return due[i] < due[j]
	})
	return due
}
