package repository

import (
	"context"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *model.Invitation) error
	FindByToken(ctx context.Context, token string) (*model.Invitation, error)
}

type invitationRepository struct {
	db *gorm.DB
}

func NewInvitationRepository(db *gorm.DB) InvitationRepository {
	return &invitationRepository{db: db}
}

func (r *invitationRepository) Create(ctx context.Context, invitation *model.Invitation) error {
	return r.db.WithContext(ctx).Omit("Sender", "Survey").Create(invitation).Error
}

func (r *invitationRepository) FindByToken(ctx context.Context, token string) (*model.Invitation, error) {
	var invitation model.Invitation
	if err := r.db.WithContext(ctx).Preload("Survey").Preload("Sender").Where("token = ?", token).First(&invitation).Error; err != nil {
		return nil, translate(err, "invitation", token)
	}
	return &invitation, nil
}
