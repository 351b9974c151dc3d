package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
)

type QuestionService interface {
	AddQuestion(ctx context.Context, surveyID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error)
	GetQuestion(ctx context.Context, questionID uint) (*dto.QuestionResponseDTO, error)
	UpdateQuestion(ctx context.Context, questionID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error)
	AddOption(ctx context.Context, questionID uint, req dto.OptionCreateDTO) (*dto.QuestionResponseDTO, error)
	// PreviewType builds an unsaved submittable of the given type so a form
	// for it can be rendered.
	PreviewType(ctx context.Context, questionID uint, submittableType string) (*dto.QuestionResponseDTO, error)
	// SwitchType changes the question's type keeping its id. When the new
	// submittable is invalid the attempted question is returned together with
	// a *model.ValidationError and nothing is stored.
	SwitchType(ctx context.Context, questionID uint, req dto.QuestionTypeSwitchDTO) (*dto.QuestionResponseDTO, error)
}

type questionService struct {
	questionRepo repository.QuestionRepository
	surveyRepo   repository.SurveyRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository, surveyRepo repository.SurveyRepository) QuestionService {
	return &questionService{questionRepo: questionRepo, surveyRepo: surveyRepo}
}

func toAttributes(in dto.SubmittableAttributesDTO) model.SubmittableAttributes {
	attrs := model.SubmittableAttributes{Minimum: in.Minimum, Maximum: in.Maximum}
	for _, o := range in.Options {
		attrs.Options = append(attrs.Options, model.OptionAttributes{Text: o.Text, Score: o.Score})
	}
	return attrs
}

func (s *questionService) AddQuestion(ctx context.Context, surveyID uint, req dto.QuestionCreateDTO) (*dto.QuestionResponseDTO, error) {
	if _, err := s.surveyRepo.FindByID(ctx, surveyID); err != nil {
		return nil, err
	}
	question := model.Question{SurveyID: surveyID, Title: req.Title}
	if err := question.BuildSubmittable(req.SubmittableType, toAttributes(req.SubmittableAttributes)); err != nil {
		return nil, err
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to create question")
		return nil, fmt.Errorf("failed to create question: %w", err)
	}
	log.Info().Uint("questionID", question.ID).Str("type", string(question.Type())).Msg("Question created")
	resp := toQuestionDTO(&question)
	return &resp, nil
}

func (s *questionService) GetQuestion(ctx context.Context, questionID uint) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	resp := toQuestionDTO(question)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, questionID uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	question.Title = req.Title
	if err := question.Validate(); err != nil {
		return nil, err
	}
	if err := s.questionRepo.UpdateTitle(ctx, question); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to update question")
		return nil, fmt.Errorf("failed to update question %d: %w", questionID, err)
	}
	resp := toQuestionDTO(question)
	return &resp, nil
}

func (s *questionService) AddOption(ctx context.Context, questionID uint, req dto.OptionCreateDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if question.Type() != model.SubmittableMultipleChoice {
		return nil, fmt.Errorf("question %d is %s: %w", questionID, question.Type(), model.ErrNotMultipleChoice)
	}
	option := model.Option{SubmittableID: question.SubmittableID, Text: req.Text, Score: req.Score}
	if err := option.Validate(); err != nil {
		return nil, err
	}
	if err := s.questionRepo.AddOption(ctx, &option); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to add option")
		return nil, fmt.Errorf("failed to add option to question %d: %w", questionID, err)
	}
	question.Submittable.Options = append(question.Submittable.Options, option)
	resp := toQuestionDTO(question)
	return &resp, nil
}

func (s *questionService) PreviewType(ctx context.Context, questionID uint, submittableType string) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if err := question.BuildSubmittable(submittableType, model.SubmittableAttributes{}); err != nil {
		return nil, err
	}
	resp := toQuestionDTO(question)
	if question.Type() == model.SubmittableMultipleChoice {
		resp.Submittable = toSubmittableDTO(question.Submittable, question.Submittable.OptionsForForm())
	}
	return &resp, nil
}

func (s *questionService) SwitchType(ctx context.Context, questionID uint, req dto.QuestionTypeSwitchDTO) (*dto.QuestionResponseDTO, error) {
	question, err := s.questionRepo.FindByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	from := question.Type()

	previous, err := question.SwitchTo(req.SubmittableType, toAttributes(req.SubmittableAttributes))
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			attempted := toQuestionDTO(question)
			return &attempted, err
		}
		return nil, err
	}
	if err := s.questionRepo.ReplaceSubmittable(ctx, question, previous); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to switch question type")
		return nil, fmt.Errorf("failed to switch question %d to %s: %w", questionID, req.SubmittableType, err)
	}
	log.Info().Uint("questionID", questionID).Str("from", string(from)).Str("to", string(question.Type())).Msg("Question type switched")
	resp := toQuestionDTO(question)
	return &resp, nil
}
