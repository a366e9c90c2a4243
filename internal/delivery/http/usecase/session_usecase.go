package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/entity"
	"github.com/evandrarf/desertfoxes-be/internal/delivery/http/repository"
	dbEntity "github.com/evandrarf/desertfoxes-be/internal/entity"
	"github.com/evandrarf/desertfoxes-be/internal/identity"
	"github.com/evandrarf/desertfoxes-be/internal/progress"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SessionUsecase interface {
	Login(ctx context.Context, req entity.LoginRequest) (*entity.SessionResponse, error)
	Logout(ctx context.Context) (*entity.SessionResponse, error)
	Current(ctx context.Context) (*entity.SessionResponse, error)
}

type SessionConfig struct {
	DB         *gorm.DB
	Repository repository.KnownUserRepository
	Session    *identity.Session
	Store      *progress.Store
	Log        *logrus.Logger
}

type sessionUsecase struct {
	cfg SessionConfig

	mu        sync.Mutex
	sessionID string
}

func NewSessionUsecase(cfg SessionConfig) SessionUsecase {
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	return &sessionUsecase{cfg: cfg}
}

// Login activates username. A name already known under a different case
// reuses the stored spelling, so "kevin" and "Kevin" share one record.
func (u *sessionUsecase) Login(ctx context.Context, req entity.LoginRequest) (*entity.SessionResponse, error) {
	username, err := identity.Normalize(req.Username)
	if err != nil {
		return nil, err
	}

	if u.cfg.Repository != nil {
		known, err := u.cfg.Repository.FindByUsername(u.cfg.DB, username)
		if err != nil {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}
		if known == nil {
			known = &dbEntity.KnownUser{Username: username}
			if err := u.cfg.Repository.Create(u.cfg.DB, known); err != nil {
				return nil, fmt.Errorf("failed to register user: %w", err)
			}
			u.cfg.Log.WithField("username", username).Info("Registered new user")
		}
		username = known.Username
	}

	u.cfg.Session.Set(username)
	if err := u.cfg.Store.HandleIdentityChange(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProgressUnavailable, err)
	}

	u.mu.Lock()
	u.sessionID = uuid.NewString()
	u.mu.Unlock()

	return u.Current(ctx)
}

func (u *sessionUsecase) Logout(ctx context.Context) (*entity.SessionResponse, error) {
	u.cfg.Session.Clear()

	u.mu.Lock()
	u.sessionID = ""
	u.mu.Unlock()

	if err := u.cfg.Store.HandleIdentityChange(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProgressUnavailable, err)
	}
	return u.Current(ctx)
}

func (u *sessionUsecase) Current(ctx context.Context) (*entity.SessionResponse, error) {
	res := &entity.SessionResponse{KnownUsers: []string{}}

	username, ok := u.cfg.Session.Current()
	if ok {
		u.mu.Lock()
		res.SessionID = u.sessionID
		u.mu.Unlock()
		res.Username = username
		res.LoggedIn = true
	}

	if u.cfg.Repository != nil {
		users, err := u.cfg.Repository.FindAll(u.cfg.DB)
		if err != nil {
			return nil, fmt.Errorf("failed to list users: %w", err)
		}
		for _, user := range users {
			res.KnownUsers = append(res.KnownUsers, user.Username)
		}
	}
	return res, nil
}
