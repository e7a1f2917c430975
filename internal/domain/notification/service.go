package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const DefaultCap = 50

var ErrNotAllowed = errors.New("not allowed")

// Authorizer decides whether a role may clear the log. Wired to the user
// package capability checks so the rule lives in one place.
type Authorizer func(role string) bool

type Service struct {
	repo        Repository
	limit       int
	authorize   Authorizer
	idGenerator func() string
	now         func() time.Time
}

func NewService(repo Repository, logCap int, authorize Authorizer) *Service {
	if logCap <= 0 {
		logCap = DefaultCap
	}
	return &Service{
		repo:        repo,
		limit:       logCap,
		authorize:   authorize,
		idGenerator: uuid.NewString,
		now:         time.Now,
	}
}

func (s *Service) List(ctx context.Context) ([]Notification, error) {
	return s.repo.List(ctx)
}

// Add appends a notification and evicts the oldest entries beyond the cap.
func (s *Service) Add(ctx context.Context, message string) error {
	note := Notification{
		ID:        s.idGenerator(),
		Message:   message,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, &note); err != nil {
		return err
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > int64(s.limit) {
		return s.repo.DeleteOldest(ctx, int(count)-s.limit)
	}
	return nil
}

func (s *Service) Clear(ctx context.Context, actorRole string) error {
	if s.authorize != nil && !s.authorize(actorRole) {
		return ErrNotAllowed
	}
	return s.repo.DeleteAll(ctx)
}
