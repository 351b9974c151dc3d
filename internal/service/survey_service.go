package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/lshigami/Surveyor/internal/summarizer"
	"github.com/rs/zerolog/log"
)

type SurveyService interface {
	CreateSurvey(ctx context.Context, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error)
	GetAllSurveys(ctx context.Context) ([]dto.SurveySummaryDTO, error)
	GetSurveyDetails(ctx context.Context, surveyID uint) (*dto.SurveyResponseDTO, error)
	// GetSummaries summarizes every question with the named summarizer. Unless
	// includeUnanswered is set, questions the viewer has not answered are hidden.
	GetSummaries(ctx context.Context, surveyID uint, key string, viewer *uint, includeUnanswered bool) (*dto.SummariesResponseDTO, error)
}

type surveyService struct {
	surveyRepo repository.SurveyRepository
	userRepo   repository.UserRepository
}

func NewSurveyService(surveyRepo repository.SurveyRepository, userRepo repository.UserRepository) SurveyService {
	return &surveyService{surveyRepo: surveyRepo, userRepo: userRepo}
}

func (s *surveyService) CreateSurvey(ctx context.Context, req dto.SurveyCreateDTO) (*dto.SurveyResponseDTO, error) {
	survey := model.Survey{Title: req.Title, AuthorID: req.AuthorID}
	if err := survey.Validate(); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.FindByID(ctx, req.AuthorID); err != nil {
		return nil, err
	}
	if err := s.surveyRepo.Create(ctx, &survey); err != nil {
		log.Error().Err(err).Msg("Failed to create survey")
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}
	log.Info().Uint("surveyID", survey.ID).Uint("authorID", survey.AuthorID).Msg("Survey created")
	return toSurveyDTO(&survey), nil
}

func (s *surveyService) GetAllSurveys(ctx context.Context) ([]dto.SurveySummaryDTO, error) {
	surveysWithCount, err := s.surveyRepo.FindAllWithQuestionCount(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get all surveys with question count from repository")
		return nil, fmt.Errorf("error fetching surveys: %w", err)
	}

	dtos := make([]dto.SurveySummaryDTO, 0, len(surveysWithCount))
	for _, swc := range surveysWithCount {
		dtos = append(dtos, dto.SurveySummaryDTO{
			ID:            swc.Survey.ID,
			Title:         swc.Survey.Title,
			AuthorID:      swc.Survey.AuthorID,
			QuestionCount: swc.QuestionCount,
			CreatedAt:     swc.Survey.CreatedAt,
		})
	}
	return dtos, nil
}

func (s *surveyService) GetSurveyDetails(ctx context.Context, surveyID uint) (*dto.SurveyResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(ctx, surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to get survey details from repository")
		return nil, err
	}
	return toSurveyDTO(survey), nil
}

func (s *surveyService) GetSummaries(ctx context.Context, surveyID uint, key string, viewer *uint, includeUnanswered bool) (*dto.SummariesResponseDTO, error) {
	sum, err := summarizer.New(key, viewer)
	if err != nil {
		return nil, err
	}
	survey, err := s.surveyRepo.FindByIDWithAnswers(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	var opts model.SummaryOptions
	if !includeUnanswered {
		opts.AnsweredBy = viewer
	}
	return &dto.SummariesResponseDTO{
		SurveyID:   survey.ID,
		Summarizer: key,
		Summaries:  survey.SummariesUsing(sum, opts),
	}, nil
}
