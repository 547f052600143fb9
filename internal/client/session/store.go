// Package session resolves and holds the current user's identity for the
// lifetime of the application run.
//
// The store starts in the loading state. Init exchanges the persisted
// credential token, if any, for a user profile exactly once; afterwards the
// pages read (user, loading) to gate what they render. Login and signup
// flows obtain a token out-of-band, persist it via SaveToken, and hand the
// resolved identity back through SetUser.
package session

import (
	"context"
	"sync"

	"github.com/dkrasnovs/blogspace/internal/client/api"
	"github.com/dkrasnovs/blogspace/internal/client/models"
	"github.com/dkrasnovs/blogspace/internal/logging"
)

// Store owns the session state: the resolved user and the loading flag.
// Consumers read it through Session and replace the user through SetUser;
// they never mutate it directly.
type Store struct {
	mu      sync.RWMutex
	user    *models.User
	loading bool

	tokens *TokenStore
	api    api.Client
	logger logging.Logger
}

// NewStore returns a store in the loading state. Call Init to resolve the
// persisted credential.
func NewStore(client api.Client, tokens *TokenStore, logger logging.Logger) *Store {
	return &Store{api: client, tokens: tokens, logger: logger, loading: true}
}

// Init runs the identity-resolution protocol. It is called once per
// application run:
//
//  1. read the persisted credential token;
//  2. absent: no network call, the session stays signed out;
//  3. present: resolve it via the identity endpoint; on any failure the
//     token is cleared and the session stays signed out.
//
// Failures are logged, never returned: the only recovery is the user
// re-authenticating. The loading flag drops once resolution completes,
// success or not.
func (s *Store) Init(ctx context.Context) {
	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	token, err := s.tokens.Load()
	if err != nil {
		s.logger.Warn(ctx, "failed to read persisted credential", "error", err)
		return
	}
	if token == "" {
		return
	}

	s.api.SetToken(token)
	user, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.logger.Warn(ctx, "failed to resolve identity", "error", err)
		if err := s.tokens.Clear(); err != nil {
			s.logger.Error(ctx, "failed to clear persisted credential", "error", err)
		}
		s.api.SetToken("")
		return
	}

	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// Session returns the current (user, loading) tuple. Never blocks.
func (s *Store) Session() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user, s.loading
}

// SetUser replaces the held identity. Callers are trusted to pass a resolved
// identity; nil signs the session out in memory without touching the
// persisted token.
func (s *Store) SetUser(user *models.User) {
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
}

// SaveToken persists a freshly obtained credential token and installs it on
// the API client. Used by login and signup after the token endpoint
// succeeds.
func (s *Store) SaveToken(token string) error {
	if err := s.tokens.Save(token); err != nil {
		return err
	}
	s.api.SetToken(token)
	return nil
}

// SignOut removes the persisted credential and resets the session to
// (absent, not loading).
func (s *Store) SignOut() error {
	err := s.tokens.Clear()
	s.api.SetToken("")
	s.mu.Lock()
	s.user = nil
	s.loading = false
	s.mu.Unlock()
	return err
}
