package progress_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evandrarf/desertfoxes-be/internal/progress"
	"github.com/evandrarf/desertfoxes-be/internal/storage"
	"github.com/sirupsen/logrus"
)

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type fakeIdentity struct {
	mu   sync.Mutex
	name string
	ok   bool
}

func (f *fakeIdentity) Current() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.ok
}

func (f *fakeIdentity) set(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name, f.ok = name, name != ""
}

type failingKV struct {
	storage.KV
	setErr error
	getErr error
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.KV.Get(ctx, key)
}

func (f *failingKV) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	return f.KV.Set(ctx, key, value)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestStore(t *testing.T, kv storage.KV, id progress.IdentityProvider) *progress.Store {
	t.Helper()
	s := progress.NewStore(progress.Config{
		Storage:  kv,
		Identity: id,
		Log:      quietLogger(),
		Now:      func() time.Time { return testNow },
	})
	t.Cleanup(s.Close)
	return s
}

func loadedStore(t *testing.T, kv storage.KV, id progress.IdentityProvider) *progress.Store {
	t.Helper()
	s := newTestStore(t, kv, id)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return s
}

func flush(t *testing.T, s *progress.Store) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.Flush(ctx); err != nil {
		t.Fatalf("flush: %v", err)
	}
}

func TestMarkModuleCompleteIsIdempotent(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	s.MarkModuleComplete("module-1")
	once := s.Progress()
	s.MarkModuleComplete("module-1")
	twice := s.Progress()

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second call changed state: %+v vs %+v", once, twice)
	}
	if got := twice.ModulesCompleted; len(got) != 1 || got[0] != "module-1" {
		t.Fatalf("modulesCompleted = %v, want [module-1]", got)
	}
}

func TestMarkCardReadScenario(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	s.MarkCardRead("module-1", "card-3")
	s.MarkCardRead("module-1", "card-3")
	s.MarkCardRead("module-1", "card-5")

	got := s.Progress().CardsRead["module-1"]
	want := []string{"card-3", "card-5"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("cardsRead[module-1] = %v, want %v", got, want)
	}
	if p := s.ModuleProgress("module-1"); p != 25 {
		t.Fatalf("ModuleProgress = %d, want 25", p)
	}
	if p := s.ModuleProgress("module-9"); p != 0 {
		t.Fatalf("ModuleProgress of untouched module = %d, want 0", p)
	}
}

func TestTotalProgress(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	for _, id := range []string{"module-1", "module-2", "module-3"} {
		s.MarkModuleComplete(id)
	}
	if p := s.TotalProgress(); p != 30 {
		t.Fatalf("TotalProgress = %d, want 30", p)
	}
}

func TestPercentagesStayInRange(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	for i := 0; i < 14; i++ {
		s.MarkModuleComplete(string(rune('a' + i)))
		s.MarkCardRead("module-1", string(rune('a'+i)))

		if p := s.TotalProgress(); p < 0 || p > 100 {
			t.Fatalf("TotalProgress = %d out of range", p)
		}
		if p := s.ModuleProgress("module-1"); p < 0 || p > 100 {
			t.Fatalf("ModuleProgress = %d out of range", p)
		}
	}
	if p := s.TotalProgress(); p != 100 {
		t.Fatalf("TotalProgress = %d, want 100 once past the denominator", p)
	}
}

func TestRecordQuizAttemptAppendsEverything(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	first := progress.QuizAttempt{QuizID: "q1", ModuleID: "module-1", Date: testNow, Score: 3, TotalQuestions: 5, IncorrectQuestions: []string{"m1-q2", "m1-q4"}}
	second := progress.QuizAttempt{QuizID: "q2", ModuleID: "module-2", Date: testNow, Score: 5, TotalQuestions: 5}

	s.RecordQuizAttempt(first)
	s.RecordQuizAttempt(second)
	s.RecordQuizAttempt(second)

	got := s.Progress().QuizAttempts
	if len(got) != 3 {
		t.Fatalf("len(quizAttempts) = %d, want 3", len(got))
	}
	if got[0].QuizID != "q1" || got[1].QuizID != "q2" || got[2].QuizID != "q2" {
		t.Fatalf("attempts out of order: %+v", got)
	}

	first.IncorrectQuestions[0] = "mutated"
	if s.Progress().QuizAttempts[0].IncorrectQuestions[0] != "m1-q2" {
		t.Fatalf("stored attempt shares memory with the caller")
	}
}

func TestUpdateFlashcardProgressOverwrites(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	s1 := progress.FlashcardState{LastReviewed: testNow, Confidence: progress.ConfidenceAgain, ReviewCount: 1, NextReview: testNow.Add(time.Minute)}
	s2 := progress.FlashcardState{LastReviewed: testNow, Confidence: progress.ConfidenceEasy, ReviewCount: 2, NextReview: testNow.AddDate(0, 0, 4)}

	s.UpdateFlashcardProgress("fc-rommel", s1)
	s.UpdateFlashcardProgress("fc-rommel", s2)

	got := s.Progress().FlashcardProgress
	if len(got) != 1 {
		t.Fatalf("len(flashcardProgress) = %d, want 1", len(got))
	}
	if !reflect.DeepEqual(got["fc-rommel"], s2) {
		t.Fatalf("flashcard state = %+v, want %+v", got["fc-rommel"], s2)
	}
}

func TestSetCurrentPath(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	s.SetCurrentPath("quick-tour")
	if got := s.Progress().CurrentPath; got != "quick-tour" {
		t.Fatalf("currentPath = %q, want quick-tour", got)
	}
	s.SetCurrentPath("")
	if got := s.Progress().CurrentPath; got != "" {
		t.Fatalf("currentPath = %q, want cleared", got)
	}
}

func TestBookmarks(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	b := progress.Bookmark{Type: progress.BookmarkModule, ID: "module-4", Title: "Operation Crusader"}
	s.AddBookmark(b)
	s.AddBookmark(b)
	s.AddBookmark(progress.Bookmark{Type: progress.BookmarkCard, ID: "module-4", Title: "Same id, other type"})

	got := s.Progress().Bookmarks
	if len(got) != 2 {
		t.Fatalf("len(bookmarks) = %d, want 2", len(got))
	}
	if !got[0].DateAdded.Equal(testNow) {
		t.Fatalf("dateAdded = %v, want %v", got[0].DateAdded, testNow)
	}

	s.RemoveBookmark(progress.BookmarkModule, "module-4")
	s.RemoveBookmark(progress.BookmarkModule, "missing")

	got = s.Progress().Bookmarks
	if len(got) != 1 || got[0].Type != progress.BookmarkCard {
		t.Fatalf("bookmarks after remove = %+v", got)
	}
}

func TestRoundTripAcrossSessions(t *testing.T) {
	kv := storage.NewMemory()
	id := &fakeIdentity{}
	id.set("Kevin")

	s := loadedStore(t, kv, id)
	s.MarkModuleComplete("module-1")
	s.MarkCardRead("module-1", "card-1")
	s.RecordQuizAttempt(progress.QuizAttempt{QuizID: "q1", ModuleID: "module-1", Date: testNow, Score: 4, TotalQuestions: 5, IncorrectQuestions: []string{"m1-q3"}})
	s.UpdateFlashcardProgress("fc-1", progress.FlashcardState{LastReviewed: testNow, Confidence: progress.ConfidenceGood, ReviewCount: 1, NextReview: testNow.AddDate(0, 0, 1)})
	s.SetCurrentPath("quick-tour")
	s.AddBookmark(progress.Bookmark{Type: progress.BookmarkGlossary, ID: "gl-dak", Title: "DAK"})
	flush(t, s)

	want := s.Progress()

	next := loadedStore(t, kv, id)
	got := next.Progress()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("reloaded record differs:\n got %+v\nwant %+v", got, want)
	}
}

func TestIdentityIsolation(t *testing.T) {
	kv := storage.NewMemory()
	id := &fakeIdentity{}
	id.set("Kevin")
	s := loadedStore(t, kv, id)

	s.MarkModuleComplete("module-1")
	s.MarkCardRead("module-2", "card-1")
	flush(t, s)

	id.set("Anna")
	if err := s.HandleIdentityChange(context.Background()); err != nil {
		t.Fatalf("identity change: %v", err)
	}
	if name, _ := s.Username(); name != "Anna" {
		t.Fatalf("username = %q, want Anna", name)
	}
	if rec := s.Progress(); len(rec.ModulesCompleted) != 0 || len(rec.CardsRead) != 0 {
		t.Fatalf("Anna sees Kevin's progress: %+v", rec)
	}

	id.set("KEVIN")
	if err := s.HandleIdentityChange(context.Background()); err != nil {
		t.Fatalf("identity change: %v", err)
	}
	if got := s.Progress().ModulesCompleted; len(got) != 1 || got[0] != "module-1" {
		t.Fatalf("Kevin's progress not restored under case-folded key: %v", got)
	}
}

func TestHandleIdentityChangeWithoutChangeKeepsRecord(t *testing.T) {
	id := &fakeIdentity{}
	id.set("Kevin")
	s := loadedStore(t, storage.NewMemory(), id)

	s.MarkModuleComplete("module-1")
	if err := s.HandleIdentityChange(context.Background()); err != nil {
		t.Fatalf("identity change: %v", err)
	}
	if len(s.Progress().ModulesCompleted) != 1 {
		t.Fatalf("record was reloaded although identity did not change")
	}
}

func TestResetProgress(t *testing.T) {
	kv := storage.NewMemory()
	id := &fakeIdentity{}
	id.set("Kevin")
	s := loadedStore(t, kv, id)

	s.MarkModuleComplete("module-1")
	s.MarkCardRead("module-1", "card-1")
	s.AddBookmark(progress.Bookmark{Type: progress.BookmarkModule, ID: "module-1"})
	flush(t, s)

	s.ResetProgress()
	flush(t, s)

	if !reflect.DeepEqual(s.Progress(), progress.NewRecord(testNow)) {
		t.Fatalf("record after reset = %+v", s.Progress())
	}
	if s.TotalProgress() != 0 || s.ModuleProgress("module-1") != 0 {
		t.Fatalf("percentages not zero after reset")
	}
	if _, err := kv.Get(context.Background(), "desert-foxes-progress-kevin"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("stored entry still present after reset, err = %v", err)
	}
}

func TestMutationsBeforeLoadAreDropped(t *testing.T) {
	kv := storage.NewMemory()
	s := newTestStore(t, kv, &fakeIdentity{})

	s.MarkModuleComplete("module-1")
	s.MarkCardRead("module-1", "card-1")
	s.AddBookmark(progress.Bookmark{Type: progress.BookmarkModule, ID: "module-1"})
	s.ResetProgress()
	flush(t, s)

	if _, err := kv.Get(context.Background(), progress.DefaultFallbackKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("pre-load mutation reached storage, err = %v", err)
	}
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(s.Progress().ModulesCompleted) != 0 {
		t.Fatalf("pre-load mutation survived load")
	}
}

func TestMalformedRecordFallsBackToDefault(t *testing.T) {
	kv := storage.NewMemory()
	_ = kv.Set(context.Background(), progress.DefaultFallbackKey, []byte("{not json"))

	s := loadedStore(t, kv, &fakeIdentity{})
	if !reflect.DeepEqual(s.Progress(), progress.NewRecord(testNow)) {
		t.Fatalf("malformed record did not degrade to default: %+v", s.Progress())
	}

	s.MarkModuleComplete("module-1")
	if len(s.Progress().ModulesCompleted) != 1 {
		t.Fatalf("store unusable after malformed load")
	}
}

func TestOlderStoredShapeKeepsDefaults(t *testing.T) {
	kv := storage.NewMemory()
	legacy := `{"modulesCompleted":["module-1","module-1"],"cardsRead":{"module-1":["card-1"]},"lastVisited":"2024-01-02T03:04:05.000Z"}`
	_ = kv.Set(context.Background(), progress.DefaultFallbackKey, []byte(legacy))

	s := loadedStore(t, kv, &fakeIdentity{})
	rec := s.Progress()

	if rec.Bookmarks == nil || rec.QuizAttempts == nil || rec.FlashcardProgress == nil {
		t.Fatalf("missing fields did not fall back to defaults: %+v", rec)
	}
	if len(rec.ModulesCompleted) != 1 {
		t.Fatalf("duplicate module ids kept: %v", rec.ModulesCompleted)
	}
	if want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC); !rec.LastVisited.Equal(want) {
		t.Fatalf("lastVisited = %v, want %v", rec.LastVisited, want)
	}
}

func TestWriteFaultIsReportedNotRolledBack(t *testing.T) {
	kv := &failingKV{KV: storage.NewMemory(), setErr: errors.New("quota exceeded")}

	var (
		mu     sync.Mutex
		faults []error
	)
	s := progress.NewStore(progress.Config{
		Storage:  kv,
		Identity: &fakeIdentity{},
		Log:      quietLogger(),
		Now:      func() time.Time { return testNow },
		OnWriteError: func(err error) {
			mu.Lock()
			defer mu.Unlock()
			faults = append(faults, err)
		},
	})
	t.Cleanup(s.Close)
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	s.MarkModuleComplete("module-1")
	flush(t, s)

	if len(s.Progress().ModulesCompleted) != 1 {
		t.Fatalf("in-memory change rolled back after write fault")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(faults) != 1 {
		t.Fatalf("faults reported = %d, want 1", len(faults))
	}
	var werr *progress.WriteError
	if !errors.As(faults[0], &werr) || werr.Op != progress.WriteOpSet || werr.Key != progress.DefaultFallbackKey {
		t.Fatalf("unexpected fault: %v", faults[0])
	}
	if !errors.Is(faults[0], kv.setErr) {
		t.Fatalf("fault does not wrap the storage error")
	}
}

func TestLoadReadErrorLeavesStoreUnloaded(t *testing.T) {
	kv := &failingKV{KV: storage.NewMemory(), getErr: errors.New("connection refused")}
	s := newTestStore(t, kv, &fakeIdentity{})

	if err := s.Load(context.Background()); err == nil {
		t.Fatalf("expected read error")
	}
	if s.Loaded() {
		t.Fatalf("store marked loaded after read failure")
	}
}

func TestClosedStoreRejectsFlush(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})
	s.Close()

	if err := s.Flush(context.Background()); !errors.Is(err, progress.ErrStoreClosed) {
		t.Fatalf("Flush after Close = %v, want ErrStoreClosed", err)
	}
	s.MarkModuleComplete("module-1")
}

func TestIdentitySwitchSeesQueuedWrites(t *testing.T) {
	kv := storage.NewMemory()
	id := &fakeIdentity{}
	id.set("Kevin")
	s := loadedStore(t, kv, id)

	s.MarkModuleComplete("module-1")

	id.set("Anna")
	if err := s.HandleIdentityChange(context.Background()); err != nil {
		t.Fatalf("switch to Anna: %v", err)
	}
	id.set("Kevin")
	if err := s.HandleIdentityChange(context.Background()); err != nil {
		t.Fatalf("switch back to Kevin: %v", err)
	}

	if got := s.Progress().ModulesCompleted; len(got) != 1 || got[0] != "module-1" {
		t.Fatalf("modulesCompleted = %v, want [module-1]", got)
	}
}

type stalledKV struct {
	storage.KV
	release chan struct{}
	sets    atomic.Int32
}

func (k *stalledKV) Set(ctx context.Context, key string, value []byte) error {
	k.sets.Add(1)
	select {
	case <-k.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return k.KV.Set(ctx, key, value)
}

func TestMutationsDoNotWaitOnStalledStorage(t *testing.T) {
	kv := &stalledKV{KV: storage.NewMemory(), release: make(chan struct{})}
	s := loadedStore(t, kv, &fakeIdentity{})

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			s.SetCurrentPath(fmt.Sprintf("path-%d", i))
		}
		_ = s.TotalProgress()
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("mutations blocked behind a stalled write")
	}

	if got := s.Progress().CurrentPath; got != "path-99" {
		t.Errorf("currentPath = %q, want path-99", got)
	}

	close(kv.release)
	flush(t, s)

	if n := kv.sets.Load(); n > 2 {
		t.Errorf("storage saw %d writes, want pending writes merged into at most 2", n)
	}
	data, err := kv.Get(context.Background(), s.Key())
	if err != nil {
		t.Fatalf("get stored record: %v", err)
	}
	rec, err := progress.DecodeRecord(data, testNow)
	if err != nil {
		t.Fatalf("decode stored record: %v", err)
	}
	if rec.CurrentPath != "path-99" {
		t.Errorf("stored currentPath = %q, want path-99", rec.CurrentPath)
	}
}

func TestConcurrentReviewsKeepEveryCount(t *testing.T) {
	s := loadedStore(t, storage.NewMemory(), &fakeIdentity{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := s.ReviewFlashcard("fc-1", progress.ConfidenceGood); !ok {
				t.Error("review dropped on a loaded store")
			}
		}()
	}
	wg.Wait()

	if got := s.Progress().FlashcardProgress["fc-1"].ReviewCount; got != 50 {
		t.Fatalf("reviewCount = %d, want 50", got)
	}
}

func TestReviewFlashcardBeforeLoadIsDropped(t *testing.T) {
	s := newTestStore(t, storage.NewMemory(), &fakeIdentity{})

	if _, ok := s.ReviewFlashcard("fc-1", progress.ConfidenceEasy); ok {
		t.Fatal("review applied before load")
	}
	if len(s.Progress().FlashcardProgress) != 0 {
		t.Error("unloaded store recorded a review")
	}
}
