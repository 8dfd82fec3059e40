package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"go.pilab.hu/partsdesk/cache"
	"go.pilab.hu/partsdesk/domain"
)

// SessionService owns the session-token lifecycle: issue on login,
// validate on every authenticated request, revoke on logout.
type SessionService struct {
	repo  SessionRepository
	cache *cache.SessionCache
	ttl   time.Duration
	now   func() time.Time
}

// NewSessionService creates a SessionService. Sessions expire ttl after
// issue; expired records are rejected at validation and reaped by the
// store's TTL index.
func NewSessionService(repo SessionRepository, sessions *cache.SessionCache, ttl time.Duration) *SessionService {
	return &SessionService{
		repo:  repo,
		cache: sessions,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Issue generates a fresh opaque token and stores the session record,
// matched by (username, token). The returned session has its internal id
// stripped; the token is the only handle clients ever see.
func (s *SessionService) Issue(ctx context.Context, userID, username string, role domain.Role) (*domain.Session, error) {
	now := s.now().UTC()
	session := &domain.Session{
		UserID:    userID,
		Username:  username,
		Role:      role,
		Token:     uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.repo.Upsert(ctx, session); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Failed to store session")
		return nil, fmt.Errorf("issue session: %w", err)
	}

	session.ID = ""
	s.cache.Put(session)
	return session, nil
}

// Validate resolves a bearer token to its session. Empty, unknown, and
// expired tokens all yield ErrInvalidSession. Never mutates state.
func (s *SessionService) Validate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	if session := s.cache.Get(token); session != nil && !session.Expired(s.now()) {
		return session, nil
	}

	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrNoRecord) {
			return nil, domain.ErrInvalidSession
		}
		return nil, fmt.Errorf("validate session: %w", err)
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrInvalidSession
	}

	session.ID = ""
	s.cache.Put(session)
	return session, nil
}

// Revoke deletes the session matching the token and reports whether a
// record was actually removed.
func (s *SessionService) Revoke(ctx context.Context, token string) (bool, error) {
	s.cache.Evict(token)
	return s.repo.DeleteByToken(ctx, token)
}
