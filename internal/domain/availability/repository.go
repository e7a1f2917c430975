package availability

import "context"

type Repository interface {
	// Transaction runs fn against a repository bound to one transaction;
	// any error rolls the whole unit back.
	Transaction(ctx context.Context, fn func(Repository) error) error
	List(ctx context.Context) ([]Record, error)
	ListRange(ctx context.Context, from, to string) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	DeleteByUserDate(ctx context.Context, userID, date string) error
	Create(ctx context.Context, record *Record) error
}
