package identity

import (
	"errors"
	"strings"
	"sync"
	"unicode/utf8"
)

const MinUsernameLength = 2

var (
	ErrEmptyUsername    = errors.New("please enter a username")
	ErrUsernameTooShort = errors.New("username must be at least 2 characters")
)

// Normalize trims a nickname and checks it is long enough to be used.
func Normalize(username string) (string, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return "", ErrEmptyUsername
	}
	if utf8.RuneCountInString(name) < MinUsernameLength {
		return "", ErrUsernameTooShort
	}
	return name, nil
}

// Session holds the nickname of whoever is using the application right now.
// It is a local profile selector, not authentication.
type Session struct {
	mu        sync.RWMutex
	username  string
	active    bool
	nextID    int
	listeners map[int]func()
}

func NewSession() *Session {
	return &Session{listeners: make(map[int]func())}
}

func (s *Session) Current() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.active
}

func (s *Session) Set(username string) {
	s.mu.Lock()
	changed := !s.active || s.username != username
	s.username, s.active = username, true
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

func (s *Session) Clear() {
	s.mu.Lock()
	changed := s.active
	s.username, s.active = "", false
	s.mu.Unlock()

	if changed {
		s.notify()
	}
}

// Subscribe registers fn to run after every change of the active identity.
// Listeners run synchronously on the goroutine that made the change.
func (s *Session) Subscribe(fn func()) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *Session) notify() {
	s.mu.RLock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.RUnlock()

	for _, fn := range fns {
		fn()
	}
}
