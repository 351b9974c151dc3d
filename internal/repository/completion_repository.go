package repository

import (
	"context"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

type CompletionRepository interface {
	// Create stores the completion and its answers.
	Create(ctx context.Context, completion *model.Completion) error
	// FindByIDWithDetails loads the user and every answer with its question and submittable.
	FindByIDWithDetails(ctx context.Context, id uint) (*model.Completion, error)
	FindAllBySurvey(ctx context.Context, surveyID uint) ([]model.Completion, error)
}

type completionRepository struct {
	db *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) CompletionRepository {
	return &completionRepository{db: db}
}

func (r *completionRepository) Create(ctx context.Context, completion *model.Completion) error {
	return r.db.WithContext(ctx).Omit("User").Create(completion).Error
}

func (r *completionRepository) FindByIDWithDetails(ctx context.Context, id uint) (*model.Completion, error) {
	var completion model.Completion
	if err := withAnswerDetails(r.db.WithContext(ctx)).First(&completion, id).Error; err != nil {
		return nil, translate(err, "completion", id)
	}
	return &completion, nil
}

func (r *completionRepository) FindAllBySurvey(ctx context.Context, surveyID uint) ([]model.Completion, error) {
	var completions []model.Completion
	err := withAnswerDetails(r.db.WithContext(ctx)).
		Where("survey_id = ?", surveyID).
		Order("created_at DESC, id DESC").
		Find(&completions).Error
	return completions, err
}

func withAnswerDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Preload("Answers.Question").
		Preload("Answers.Question.Submittable").
		Preload("Answers.Question.Submittable.Options")
}
