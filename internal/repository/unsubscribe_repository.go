package repository

import (
	"context"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

type UnsubscribeRepository interface {
	// Create records the address; recording it twice is not an error.
	Create(ctx context.Context, unsubscribe *model.Unsubscribe) error
	Exists(ctx context.Context, email string) (bool, error)
}

type unsubscribeRepository struct {
	db *gorm.DB
}

func NewUnsubscribeRepository(db *gorm.DB) UnsubscribeRepository {
	return &unsubscribeRepository{db: db}
}

func (r *unsubscribeRepository) Create(ctx context.Context, unsubscribe *model.Unsubscribe) error {
	return r.db.WithContext(ctx).
		Where(model.Unsubscribe{Email: unsubscribe.Email}).
		FirstOrCreate(unsubscribe).Error
}

func (r *unsubscribeRepository) Exists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Unsubscribe{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
