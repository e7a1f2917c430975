package notification

import "context"

type Repository interface {
	// List returns notifications newest first.
	List(ctx context.Context) ([]Notification, error)
	Create(ctx context.Context, note *Notification) error
	Count(ctx context.Context) (int64, error)
	// DeleteOldest drops the n oldest notifications.
	DeleteOldest(ctx context.Context, n int) error
	DeleteAll(ctx context.Context) error
}
