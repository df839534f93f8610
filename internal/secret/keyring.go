// Package secret keeps the session token in the OS keyring, falling back to
// the local cache where no keyring is available.
package secret

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"github.com/gnote-tools/cli/internal/domain"
	"github.com/gnote-tools/cli/internal/log"
)

const (
	serviceName  = "gnote"
	tokenAccount = "oauth_token"

	// cacheTokenKey is the user property holding a token the keyring refused.
	cacheTokenKey = "oauth_token"
)

// KeyringAPI is the subset of an OS keyring gnote needs.
type KeyringAPI interface {
	Get(service, account string) (string, error)
	Set(service, account, value string) error
	Delete(service, account string) error
}

type osKeyring struct{}

func (osKeyring) Get(service, account string) (string, error) {
	return keyring.Get(service, account)
}

func (osKeyring) Set(service, account, value string) error {
	return keyring.Set(service, account, value)
}

func (osKeyring) Delete(service, account string) error {
	return keyring.Delete(service, account)
}

// Store implements domain.SecretStore.
type Store struct {
	keyring KeyringAPI
	cache   domain.Cache
	logger  domain.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithKeyring replaces the OS keyring.
func WithKeyring(kr KeyringAPI) Option {
	return func(s *Store) { s.keyring = kr }
}

// WithLogger sets the logger for keyring failures.
func WithLogger(logger domain.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// New returns a Store that falls back to cache.
func New(cache domain.Cache, opts ...Option) *Store {
	s := &Store{keyring: osKeyring{}, cache: cache, logger: log.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the session token, or "" when there is none.
func (s *Store) Token() (string, error) {
	token, err := s.keyring.Get(serviceName, tokenAccount)
	if err == nil && token != "" {
		return token, nil
	}
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		s.logger.Warn("secret: keyring unavailable: %v", err)
	}

	var cached string
	if _, err := s.cache.UserProp(cacheTokenKey, &cached); err != nil {
		return "", fmt.Errorf("read cached token: %w", err)
	}
	return cached, nil
}

// SetToken stores token in the keyring, or in the cache when the keyring
// fails.
func (s *Store) SetToken(token string) error {
	err := s.keyring.Set(serviceName, tokenAccount, token)
	if err == nil {
		_, _ = s.cache.DelUserProp(cacheTokenKey)
		return nil
	}

	s.logger.Warn("secret: keyring unavailable, keeping token in the cache: %v", err)
	if err := s.cache.SetUserProp(cacheTokenKey, token); err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	return nil
}

// DeleteToken removes the token from both places.
func (s *Store) DeleteToken() error {
	if err := s.keyring.Delete(serviceName, tokenAccount); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		s.logger.Warn("secret: keyring delete failed: %v", err)
	}
	if _, err := s.cache.DelUserProp(cacheTokenKey); err != nil {
		return fmt.Errorf("delete cached token: %w", err)
	}
	return nil
}

var _ domain.SecretStore = (*Store)(nil)
