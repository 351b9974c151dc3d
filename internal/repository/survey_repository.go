package repository

import (
	"context"

	"github.com/lshigami/Surveyor/internal/model"
	"gorm.io/gorm"
)

// SurveyWithQuestionCount is a survey listing row.
type SurveyWithQuestionCount struct {
	model.Survey
	QuestionCount int
}

type SurveyRepository interface {
	Create(ctx context.Context, survey *model.Survey) error
	FindByID(ctx context.Context, id uint) (*model.Survey, error)
	// FindByIDWithQuestions loads the ordered questions with their submittables and options.
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Survey, error)
	// FindByIDWithAnswers additionally loads every answer and its completion, as needed for summaries.
	FindByIDWithAnswers(ctx context.Context, id uint) (*model.Survey, error)
	FindAllWithQuestionCount(ctx context.Context) ([]SurveyWithQuestionCount, error)
}

type surveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) SurveyRepository {
	return &surveyRepository{db: db}
}

func (r *surveyRepository) Create(ctx context.Context, survey *model.Survey) error {
	return r.db.WithContext(ctx).Omit("Author", "Questions", "Completions").Create(survey).Error
}

func (r *surveyRepository) FindByID(ctx context.Context, id uint) (*model.Survey, error) {
	var survey model.Survey
	if err := r.db.WithContext(ctx).First(&survey, id).Error; err != nil {
		return nil, translate(err, "survey", id)
	}
	return &survey, nil
}

func (r *surveyRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Survey, error) {
	var survey model.Survey
	err := withQuestions(r.db.WithContext(ctx)).
		Preload("Author").
		First(&survey, id).Error
	if err != nil {
		return nil, translate(err, "survey", id)
	}
	return &survey, nil
}

func (r *surveyRepository) FindByIDWithAnswers(ctx context.Context, id uint) (*model.Survey, error) {
	var survey model.Survey
	err := withQuestions(r.db.WithContext(ctx)).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at ASC, answers.id ASC")
		}).
		Preload("Questions.Answers.Completion").
		First(&survey, id).Error
	if err != nil {
		return nil, translate(err, "survey", id)
	}
	return &survey, nil
}

func (r *surveyRepository) FindAllWithQuestionCount(ctx context.Context) ([]SurveyWithQuestionCount, error) {
	var results []SurveyWithQuestionCount
	err := r.db.WithContext(ctx).Model(&model.Survey{}).
		Select("surveys.*, (SELECT COUNT(*) FROM questions WHERE questions.survey_id = surveys.id AND questions.deleted_at IS NULL) as question_count").
		Where("surveys.deleted_at IS NULL").
		Order("surveys.created_at DESC, surveys.id DESC").
		Scan(&results).Error
	return results, err
}

func withQuestions(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Preload("Questions.Submittable").
		Preload("Questions.Submittable.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("options.id ASC")
		})
}
