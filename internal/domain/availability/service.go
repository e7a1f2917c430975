package availability

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Notifier receives an audit note after every successful write.
type Notifier interface {
	Add(ctx context.Context, message string) error
}

// NameResolver maps a user id to a display name for audit messages.
type NameResolver interface {
	UserName(ctx context.Context, userID string) (string, bool)
}

type Service struct {
	repo        Repository
	names       NameResolver
	notifier    Notifier
	idGenerator func() string
}

func NewService(repo Repository, names NameResolver, notifier Notifier) *Service {
	return &Service{
		repo:        repo,
		names:       names,
		notifier:    notifier,
		idGenerator: uuid.NewString,
	}
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListRange(ctx context.Context, from, to string) ([]Record, error) {
	return s.repo.ListRange(ctx, from, to)
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Set overwrites the slot selection for a user and date. An empty selection
// removes any existing record. The date string is stored as given; malformed
// dates are accepted and simply never match a calendar cell. The delete and
// insert run in one transaction so a failed insert keeps the prior record.
func (s *Service) Set(ctx context.Context, userID, date string, slots []Slot) error {
	normalized := Normalize(slots)

	err := s.repo.Transaction(ctx, func(tx Repository) error {
		if err := tx.DeleteByUserDate(ctx, userID, date); err != nil {
			return err
		}
		if len(normalized) == 0 {
			return nil
		}
		record := Record{
			ID:     s.idGenerator(),
			UserID: userID,
			Date:   date,
			Slots:  SlotList(normalized),
		}
		return tx.Create(ctx, &record)
	})
	if err != nil {
		return err
	}

	if len(normalized) > 0 {
		return s.notify(ctx, fmt.Sprintf("User %s (%s) modified their availability for %s.", s.nameOf(ctx, userID), userID, date))
	}
	return s.notify(ctx, fmt.Sprintf("User %s (%s) cleared their unavailability for %s.", s.nameOf(ctx, userID), userID, date))
}

func (s *Service) notify(ctx context.Context, message string) error {
	if s.notifier == nil {
		return nil
	}
	return s.notifier.Add(ctx, message)
}

func (s *Service) nameOf(ctx context.Context, userID string) string {
	if s.names == nil {
		return userID
	}
	name, ok := s.names.UserName(ctx, userID)
	if !ok {
		return userID
	}
	return name
}
