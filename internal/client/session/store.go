// Package session owns the bearer token of the signed-in user.
//
// The token lives in durable storage under StorageKey and is mirrored in
// memory. Reads re-check storage so a logout from another process is seen,
// but skip decoding while the stored token is the one already cached.
// Any token that fails to decode, match the claims schema, or is expired is
// removed from both places.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nicograef/jotti/internal/client/models"
	"github.com/nicograef/jotti/internal/client/repositories/metadata"
	"github.com/nicograef/jotti/internal/logging"
)

// StorageKey is the metadata key holding the raw token.
const StorageKey = "JOTTI_TOKEN"

type Store struct {
	mu     sync.Mutex
	repo   metadata.Repository
	now    func() time.Time
	log    logging.Logger
	raw    string
	claims *Claims
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// NewStore does not touch storage; the first read does.
func NewStore(repo metadata.Repository, opts ...Option) *Store {
	s := &Store{
		repo: repo,
		now:  time.Now,
		log:  logging.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateAndSetToken adopts raw as the session token. An invalid token
// clears any existing session and returns an error wrapping ErrInvalidToken.
func (s *Store) ValidateAndSetToken(ctx context.Context, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims, err := s.validate(raw)
	if err != nil {
		s.log.Warn(ctx, "rejecting session token", "error", err)
		s.clear(ctx)
		return err
	}

	if err := s.repo.Put(ctx, StorageKey, raw); err != nil {
		// The previous token must not survive a failed replacement.
		s.clear(ctx)
		return fmt.Errorf("persist session token: %w", err)
	}

	s.raw, s.claims = raw, &claims
	s.log.Info(ctx, "session started", "user", claims.Subject, "role", claims.Role, "expires", claims.Expiry())
	return nil
}

// Logout forgets the token. Calling it without a session is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.raw, s.claims = "", nil
	if err := s.repo.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("remove session token: %w", err)
	}
	return nil
}

// Session returns the current claims, if any.
func (s *Store) Session(ctx context.Context) (Claims, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, _ := s.current(ctx)
	if c == nil {
		return Claims{}, false
	}
	return *c, true
}

func (s *Store) IsAuthenticated(ctx context.Context) bool {
	_, ok := s.Session(ctx)
	return ok
}

func (s *Store) Username(ctx context.Context) (string, bool) {
	c, ok := s.Session(ctx)
	return c.Subject, ok
}

func (s *Store) IsAdmin(ctx context.Context) bool {
	c, ok := s.Session(ctx)
	return ok && c.Role == models.RoleAdmin
}

func (s *Store) IsService(ctx context.Context) bool {
	c, ok := s.Session(ctx)
	return ok && c.Role == models.RoleService
}

// Token returns the raw bearer token for outgoing requests.
func (s *Store) Token(ctx context.Context) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, raw := s.current(ctx)
	return raw, c != nil
}

// ExpiresIn is the time left on the current session, or zero without one.
func (s *Store) ExpiresIn(ctx context.Context) time.Duration {
	c, ok := s.Session(ctx)
	if !ok {
		return 0
	}
	return c.Expiry().Sub(s.now())
}

func (s *Store) validate(raw string) (Claims, error) {
	claims, err := decode(raw)
	if err != nil {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if int64(claims.ExpiresAt) <= s.now().Unix() {
		return Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, ErrTokenExpired)
	}
	return claims, nil
}

// current must be called with mu held.
func (s *Store) current(ctx context.Context) (*Claims, string) {
	raw, ok, err := s.repo.Get(ctx, StorageKey)
	if err != nil {
		s.log.Error(ctx, "reading session token failed", "error", err)
		return nil, ""
	}
	if !ok {
		s.raw, s.claims = "", nil
		return nil, ""
	}

	if s.claims != nil && raw == s.raw {
		if int64(s.claims.ExpiresAt) > s.now().Unix() {
			return s.claims, s.raw
		}
		s.log.Info(ctx, "session expired", "user", s.claims.Subject)
		s.clear(ctx)
		return nil, ""
	}

	claims, err := s.validate(raw)
	if err != nil {
		s.log.Warn(ctx, "discarding stored session token", "error", err)
		s.clear(ctx)
		return nil, ""
	}
	s.raw, s.claims = raw, &claims
	return s.claims, s.raw
}

// clear must be called with mu held.
func (s *Store) clear(ctx context.Context) {
	s.raw, s.claims = "", nil
	if err := s.repo.Delete(ctx, StorageKey); err != nil {
		s.log.Error(ctx, "removing session token failed", "error", err)
	}
}
