// Package session is the client's single source of truth for the bearer
// token and the user's display language. It wraps a storage.Store and is
// injected into every component that needs session state.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/bookstore/internal/client/storage"
	"github.com/dmitrijs2005/bookstore/internal/logging"
)

const (
	TokenKey    = "access_token"
	LanguageKey = "userLanguage"
)

var (
	ErrEmptyToken    = errors.New("empty token")
	ErrTokenMismatch = errors.New("token verification failed")
)

type Store struct {
	kv  storage.Store
	log logging.Logger
}

func New(kv storage.Store, log logging.Logger) *Store {
	return &Store{kv: kv, log: log.With("component", "session")}
}

// Token returns the stored bearer token. Storage failures are logged and
// reported as "no token".
func (s *Store) Token(ctx context.Context) (string, bool) {
	v, err := s.kv.Get(ctx, TokenKey)
	if err != nil {
		s.log.Error(ctx, "token read failed", "err", err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

// SetToken persists token and reads it back. A read-back that differs from
// what was written yields ErrTokenMismatch.
func (s *Store) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}

	if err := s.kv.Set(ctx, TokenKey, []byte(token)); err != nil {
		s.log.Error(ctx, "token write failed", "err", err)
		return fmt.Errorf("write token: %w", err)
	}

	saved, ok := s.Token(ctx)
	if !ok || saved != token {
		s.log.Error(ctx, "token read-back differs from written value")
		return ErrTokenMismatch
	}

	s.log.Debug(ctx, "token saved", "token", Redact(token))
	return nil
}

// RemoveToken deletes the token. Failures are logged, not returned.
func (s *Store) RemoveToken(ctx context.Context) {
	if err := s.kv.Delete(ctx, TokenKey); err != nil {
		s.log.Error(ctx, "token delete failed", "err", err)
		return
	}
	s.log.Debug(ctx, "token removed")
}

// Language returns the stored display language tag, if any.
func (s *Store) Language(ctx context.Context) (string, bool) {
	v, err := s.kv.Get(ctx, LanguageKey)
	if err != nil {
		s.log.Error(ctx, "language read failed", "err", err)
		return "", false
	}
	if len(v) == 0 {
		return "", false
	}
	return string(v), true
}

func (s *Store) SetLanguage(ctx context.Context, lang string) error {
	if err := s.kv.Set(ctx, LanguageKey, []byte(lang)); err != nil {
		return fmt.Errorf("write language: %w", err)
	}
	return nil
}

// Redact shortens a token for log output.
func Redact(token string) string {
	const keep = 12
	if len(token) <= keep {
		return "***"
	}
	return token[:keep] + "..."
}
