package progress

import (
	"reflect"
	"testing"
	"time"
)

func TestScheduleReview(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		prev       *FlashcardState
		confidence Confidence
		wantCount  int
		wantNext   time.Time
	}{
		{name: "first retry", confidence: ConfidenceAgain, wantCount: 1, wantNext: now.Add(10 * time.Minute)},
		{name: "first good", confidence: ConfidenceGood, wantCount: 1, wantNext: now.AddDate(0, 0, 1)},
		{name: "first easy", confidence: ConfidenceEasy, wantCount: 1, wantNext: now.AddDate(0, 0, 2)},
		{name: "fourth good", prev: &FlashcardState{ReviewCount: 3}, confidence: ConfidenceGood, wantCount: 4, wantNext: now.AddDate(0, 0, 7)},
		{name: "long-running easy", prev: &FlashcardState{ReviewCount: 40}, confidence: ConfidenceEasy, wantCount: 41, wantNext: now.AddDate(0, 0, 60)},
		{name: "retry keeps counting", prev: &FlashcardState{ReviewCount: 5}, confidence: ConfidenceAgain, wantCount: 6, wantNext: now.Add(10 * time.Minute)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScheduleReview(tt.prev, tt.confidence, now)
			if got.ReviewCount != tt.wantCount {
				t.Errorf("reviewCount = %d want %d", got.ReviewCount, tt.wantCount)
			}
			if !got.NextReview.Equal(tt.wantNext) {
				t.Errorf("nextReview = %v want %v", got.NextReview, tt.wantNext)
			}
			if !got.LastReviewed.Equal(now) || got.Confidence != tt.confidence {
				t.Errorf("unexpected state %+v", got)
			}
		})
	}
}

func TestDueFlashcards(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	rec := NewRecord(now)
	rec.FlashcardProgress["late"] = FlashcardState{NextReview: now.Add(-2 * time.Hour)}
	rec.FlashcardProgress["exact"] = FlashcardState{NextReview: now}
	rec.FlashcardProgress["later"] = FlashcardState{NextReview: now.Add(-time.Hour)}
	rec.FlashcardProgress["future"] = FlashcardState{NextReview: now.Add(time.Hour)}

	got := DueFlashcards(rec, now)
	want := []string{"late", "later", "exact"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DueFlashcards = %v want %v", got, want)
	}
}
