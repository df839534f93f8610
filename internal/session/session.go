// Package session gives commands an authenticated note service.
package session

import (
	"errors"
	"fmt"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
	"github.com/gnote-tools/cli/internal/notestore"
	"github.com/gnote-tools/cli/internal/usage"
)

// Session resolves the stored token into a note service.
type Session struct {
	Cache   domain.Cache
	Secrets domain.SecretStore
	Connect func(token string) domain.NoteService
	Logger  domain.Logger
}

// New builds a Session from the application.
func New(app *domain.Application) *Session {
	return &Session{
		Cache:   app.Cache,
		Secrets: app.Secrets,
		Connect: app.Connect,
		Logger:  app.Logger,
	}
}

func (s *Session) logger() domain.Logger {
	if s.Logger == nil {
		return log.NopLogger{}
	}
	return s.Logger
}

// LoggedIn reports whether a token is stored.
func (s *Session) LoggedIn() (bool, error) {
	token, err := s.Secrets.Token()
	if err != nil {
		return false, err
	}
	return token != "", nil
}

// Token returns the stored token, or a not-logged-in error.
func (s *Session) Token() (string, error) {
	token, err := s.Secrets.Token()
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", usage.NotLoggedIn()
	}
	return token, nil
}

// Service returns a note service for the stored token.
func (s *Session) Service() (domain.NoteService, error) {
	token, err := s.Token()
	if err != nil {
		return nil, err
	}
	return s.Connect(token), nil
}

// User returns the account cached at login.
func (s *Session) User() (*domain.User, error) {
	user, err := s.Cache.UserInfo()
	if err != nil {
		return nil, err
	}
	if user == nil {
		return &domain.User{}, nil
	}
	return user, nil
}

// Check translates service errors that end the session. An expired token
// is dropped so the next command asks for a login.
func (s *Session) Check(err error) error {
	if err == nil || !errors.Is(err, notestore.ErrAuthExpired) {
		return err
	}

	s.logger().Warn("session: token expired, dropping it")
	if derr := s.Secrets.DeleteToken(); derr != nil {
		s.logger().Error("session: drop token: %v", derr)
	}
	return usage.SessionExpired()
}

// Failed reports a failed service call as "could not <what>". Errors that
// are already meant for the user pass through Check unchanged.
func (s *Session) Failed(err error, what string) error {
	err = s.Check(err)
	var uerr *usage.Error
	if errors.As(err, &uerr) {
		return err
	}
	s.logger().Error("%s: %v", what, err)
	return fmt.Errorf("could not %s: %w", what, err)
}
