package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Premdhumal/go-tweet-client/internal/adapter"
	"github.com/Premdhumal/go-tweet-client/internal/logger"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/internal/store"
	"github.com/Premdhumal/go-tweet-client/models"
)

type authService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	session    *session.Store
	logger     *logger.Logger
}

func NewAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, sessionStore *session.Store, log *logger.Logger) AuthService {
	return &authService{
		localStore: localStore,
		adapter:    serverAdapter,
		session:    sessionStore,
		logger:     log,
	}
}

func (a *authService) Initialize(ctx context.Context) error {
	return a.session.Initialize(ctx)
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	if strings.TrimSpace(creds.Username) == "" {
		return models.User{}, ErrUsernameRequired
	}
	if creds.Password == "" {
		return models.User{}, ErrPasswordRequired
	}

	user, err := a.adapter.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
		}
		return models.User{}, mapAdapterError(err)
	}

	a.becomeUser(ctx, user)

	return user, nil
}

func (a *authService) Logout(ctx context.Context) error {
	err := a.adapter.Logout(ctx)

	// the local session ends regardless of the server's answer
	a.session.Clear()
	if clearErr := a.localStore.Clear(ctx); clearErr != nil {
		a.logger.Err(clearErr).Msg("failed to clear local caches on logout")
	}

	if err != nil {
		return mapAdapterError(err)
	}
	return nil
}

func (a *authService) Register(ctx context.Context, reg models.Registration) (models.User, error) {
	if strings.TrimSpace(reg.Username) == "" {
		return models.User{}, ErrUsernameRequired
	}
	if reg.Password == "" {
		return models.User{}, ErrPasswordRequired
	}

	user, err := a.adapter.Register(ctx, reg)
	if err != nil {
		return models.User{}, mapAdapterError(err)
	}

	// the server signs the fresh account in on the same session cookie
	a.becomeUser(ctx, user)

	return user, nil
}

// becomeUser records the new identity and resets the viewer-dependent caches.
func (a *authService) becomeUser(ctx context.Context, user models.User) {
	a.session.SetIdentity(user)
	if err := a.localStore.Clear(ctx); err != nil {
		a.logger.Err(err).Str("username", user.Username).Msg("failed to clear local caches on sign-in")
	}
}
