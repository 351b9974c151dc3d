package repository

import (
	"context"
	"fmt"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	// Create stores the question together with its submittable and options.
	Create(ctx context.Context, question *model.Question) error
	FindByID(ctx context.Context, id uint) (*model.Question, error)
	UpdateTitle(ctx context.Context, question *model.Question) error
	// ReplaceSubmittable stores question.Submittable as the question's new
	// submittable and deletes previous, all in one transaction.
	ReplaceSubmittable(ctx context.Context, question *model.Question, previous *model.Submittable) error
	AddOption(ctx context.Context, option *model.Option) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(ctx context.Context, question *model.Question) error {
	if question.Submittable == nil {
		return fmt.Errorf("question %q has no submittable", question.Title)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(question.Submittable).Error; err != nil {
			return fmt.Errorf("failed to create submittable: %w", err)
		}
		question.SubmittableID = question.Submittable.ID
		if err := tx.Omit(clause.Associations).Create(question).Error; err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
		return nil
	})
	if err != nil {
		question.ID = 0
		resetIDs(question.Submittable)
	}
	return err
}

func (r *questionRepository) FindByID(ctx context.Context, id uint) (*model.Question, error) {
	var question model.Question
	err := r.db.WithContext(ctx).
		Preload("Submittable").
		Preload("Submittable.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		}).
		First(&question, id).Error
	if err != nil {
		return nil, translate(err, "question", id)
	}
	return &question, nil
}

func (r *questionRepository) UpdateTitle(ctx context.Context, question *model.Question) error {
	return r.db.WithContext(ctx).Model(question).Update("title", question.Title).Error
}

func (r *questionRepository) ReplaceSubmittable(ctx context.Context, question *model.Question, previous *model.Submittable) error {
	replacement := question.Submittable
	if replacement == nil {
		return fmt.Errorf("question %d has no submittable", question.ID)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked model.Question
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Select("id").First(&locked, question.ID).Error; err != nil {
			return translate(err, "question", question.ID)
		}
		if err := tx.Create(replacement).Error; err != nil {
			return fmt.Errorf("failed to create submittable: %w", err)
		}
		if err := tx.Model(&model.Question{}).Where("id = ?", question.ID).Updates(map[string]interface{}{
			"title":          question.Title,
			"submittable_id": replacement.ID,
		}).Error; err != nil {
			return fmt.Errorf("failed to update question: %w", err)
		}
		if previous == nil || previous.ID == 0 {
			return nil
		}
		if err := tx.Where("submittable_id = ?", previous.ID).Delete(&model.Option{}).Error; err != nil {
			return fmt.Errorf("failed to delete options of submittable %d: %w", previous.ID, err)
		}
		if err := tx.Delete(&model.Submittable{}, previous.ID).Error; err != nil {
			return fmt.Errorf("failed to delete submittable %d: %w", previous.ID, err)
		}
		return nil
	})
	if err != nil {
		resetIDs(replacement)
		return err
	}
	question.SubmittableID = replacement.ID
	return nil
}

func (r *questionRepository) AddOption(ctx context.Context, option *model.Option) error {
	return r.db.WithContext(ctx).Create(option).Error
}

// resetIDs forgets ids assigned inside a rolled back transaction.
func resetIDs(s *model.Submittable) {
	if s == nil {
		return
	}
	s.ID = 0
	for i := range s.Options {
		s.Options[i].ID = 0
		s.Options[i].SubmittableID = 0
	}
}
