package session

import (
	"context"
	"errors"

	sessiondomain "troupe-app-go/internal/domain/session"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *sessiondomain.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *PostgresRepository) Get(ctx context.Context, token string) (*sessiondomain.Session, error) {
	var found sessiondomain.Session
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&found).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sessiondomain.ErrSessionNotFound
		}
		return nil, err
	}
	return &found, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&sessiondomain.Session{}).Error
}

func (r *PostgresRepository) DeleteByUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&sessiondomain.Session{}).Error
}
