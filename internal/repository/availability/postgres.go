package availability

import (
	"context"

	availabilitydomain "troupe-app-go/internal/domain/availability"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Transaction(ctx context.Context, fn func(availabilitydomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

func (r *PostgresRepository) List(ctx context.Context) ([]availabilitydomain.Record, error) {
	var records []availabilitydomain.Record
	if err := r.db.WithContext(ctx).Order("created_at asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) ListRange(ctx context.Context, from, to string) ([]availabilitydomain.Record, error) {
	var records []availabilitydomain.Record
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", from, to).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]availabilitydomain.Record, error) {
	var records []availabilitydomain.Record
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *PostgresRepository) DeleteByUserDate(ctx context.Context, userID, date string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&availabilitydomain.Record{}).Error
}

func (r *PostgresRepository) Create(ctx context.Context, record *availabilitydomain.Record) error {
	return r.db.WithContext(ctx).Create(record).Error
}
