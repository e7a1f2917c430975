package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const DefaultTTL = 24 * time.Hour

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

type Service struct {
	repo        Repository
	ttl         time.Duration
	idGenerator func() string
	now         func() time.Time
}

func NewService(repo Repository, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		repo:        repo,
		ttl:         ttl,
		idGenerator: uuid.NewString,
		now:         time.Now,
	}
}

// Start issues an opaque token for the user.
func (s *Service) Start(ctx context.Context, userID string) (*Session, error) {
	created := Session{
		Token:     s.idGenerator(),
		UserID:    userID,
		ExpiresAt: s.now().UTC().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Resolve maps a token to its user id. Expired sessions are deleted lazily.
func (s *Service) Resolve(ctx context.Context, token string) (string, error) {
	found, err := s.repo.Get(ctx, token)
	if err != nil {
		return "", err
	}
	if s.now().UTC().After(found.ExpiresAt) {
		_ = s.repo.Delete(ctx, token)
		return "", ErrSessionExpired
	}
	return found.UserID, nil
}

func (s *Service) End(ctx context.Context, token string) error {
	return s.repo.Delete(ctx, token)
}

// EndAllForUser revokes every session of a user, used when an account is
// deleted.
func (s *Service) EndAllForUser(ctx context.Context, userID string) error {
	return s.repo.DeleteByUser(ctx, userID)
}
