package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/trustme/internal/adapter"
	"github.com/MKhiriev/trustme/internal/store"
	"github.com/MKhiriev/trustme/models"
)

type clientAuthService struct {
	sessions store.SessionRepository
	adapter  adapter.ServerAdapter
	now      func() time.Time
}

// NewClientAuthService constructs a [ClientAuthService]. now stamps saved
// sessions; nil means time.Now.
func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, now func() time.Time) ClientAuthService {
	if now == nil {
		now = time.Now
	}
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, now: now}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.RegisterResponse, error) {
	registered, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}
	return registered, nil
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	login, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	session := models.Session{
		Username:         user.Username,
		AccessToken:      login.AccessToken,
		Salt:             login.Salt,
		TwoFactorEnabled: login.TwoFactorEnabled,
		CreatedAt:        a.now(),
	}
	if err = a.sessions.SaveSession(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")
	return a.sessions.DeleteSession(ctx)
}

func (a *clientAuthService) Session(ctx context.Context) (models.Session, error) {
	session, err := a.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNotLoggedIn
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}

	a.adapter.SetToken(session.AccessToken)
	return session, nil
}

func (a *clientAuthService) Profile(ctx context.Context) (models.RegisterResponse, error) {
	if _, err := a.Session(ctx); err != nil {
		return models.RegisterResponse{}, err
	}

	profile, err := a.adapter.GetProfile(ctx)
	if err != nil {
		return models.RegisterResponse{}, mapAdapterError(err)
	}
	return profile, nil
}

func (a *clientAuthService) DeleteAccount(ctx context.Context) error {
	if _, err := a.Session(ctx); err != nil {
		return err
	}
	if err := a.adapter.DeleteAccount(ctx); err != nil {
		return mapAdapterError(err)
	}
	return a.Logout(ctx)
}
