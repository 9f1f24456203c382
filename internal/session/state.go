// Package session holds the signed-in operator's state for the lifetime of
// a login: the access token and user profile.
package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/Angello-27/bovine-weight-estimation-sub001/internal/domain/models"
)

// ErrNoSession is returned when an operation requires a signed-in user.
var ErrNoSession = errors.New("no active session")

// Authenticator is the backend login surface.
type Authenticator interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Token, error)
	Me(ctx context.Context) (*models.User, error)
	SetToken(token string)
}

// State is the application session passed explicitly to the HTTP layer.
type State struct {
	auth   Authenticator
	logger *zap.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
}

// NewState creates an empty, signed-out session.
func NewState(auth Authenticator, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &State{auth: auth, logger: logger}
}

// Login authenticates, attaches the token to the backend client and loads the
// user profile when the login response does not include it.
func (s *State) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	token, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, err
	}

	s.auth.SetToken(token.AccessToken)

	user := token.User
	if user == nil {
		user, err = s.auth.Me(ctx)
		if err != nil {
			s.auth.SetToken("")
			return nil, err
		}
	}

	s.mu.Lock()
	s.token = token.AccessToken
	s.user = user
	s.mu.Unlock()

	s.logger.Info("session started", zap.String("username", user.Username))
	return user, nil
}

// Logout clears the session and detaches the token.
func (s *State) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		s.logger.Info("session ended", zap.String("username", s.user.Username))
	}
	s.token = ""
	s.user = nil
	s.auth.SetToken("")
}

// Current returns the signed-in user.
func (s *State) Current() (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" || s.user == nil {
		return nil, ErrNoSession
	}
	u := *s.user
	return &u, nil
}

// Active reports whether a user is signed in.
func (s *State) Active() bool {
	_, err := s.Current()
	return err == nil
}
