package notification

import (
	"context"

	notificationdomain "troupe-app-go/internal/domain/notification"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) List(ctx context.Context) ([]notificationdomain.Notification, error) {
	var notes []notificationdomain.Notification
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *PostgresRepository) Create(ctx context.Context, note *notificationdomain.Notification) error {
	return r.db.WithContext(ctx).Create(note).Error
}

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&notificationdomain.Notification{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresRepository) DeleteOldest(ctx context.Context, n int) error {
	if n <= 0 {
		return nil
	}
	return r.db.WithContext(ctx).Exec(`
		DELETE FROM notifications
		WHERE id IN (
			SELECT id FROM notifications ORDER BY created_at asc LIMIT ?
		)
	`, n).Error
}

func (r *PostgresRepository) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).Where("1 = 1").Delete(&notificationdomain.Notification{}).Error
}
