package service

import (
	"context"
	"fmt"

	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
)

type CompletionService interface {
	// CompleteSurvey stores a user's answers and thanks them by mail.
	CompleteSurvey(ctx context.Context, surveyID uint, req dto.CompletionCreateDTO) (*dto.CompletionResponseDTO, error)
	GetCompletionDetails(ctx context.Context, completionID uint) (*dto.CompletionResponseDTO, error)
	GetSurveyCompletions(ctx context.Context, surveyID uint) ([]dto.CompletionResponseDTO, error)
}

type completionService struct {
	surveyRepo     repository.SurveyRepository
	completionRepo repository.CompletionRepository
	userRepo       repository.UserRepository
	notifications  NotificationService
	scoreConverter ScoreConverterService
}

func NewCompletionService(
	surveyRepo repository.SurveyRepository,
	completionRepo repository.CompletionRepository,
	userRepo repository.UserRepository,
	notifications NotificationService,
	scoreConverter ScoreConverterService,
) CompletionService {
	return &completionService{
		surveyRepo:     surveyRepo,
		completionRepo: completionRepo,
		userRepo:       userRepo,
		notifications:  notifications,
		scoreConverter: scoreConverter,
	}
}

func (s *completionService) CompleteSurvey(ctx context.Context, surveyID uint, req dto.CompletionCreateDTO) (*dto.CompletionResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(ctx, surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("CompleteSurvey: Survey not found")
		return nil, err
	}
	user, err := s.userRepo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	completion := model.Completion{SurveyID: survey.ID, UserID: user.ID}
	attrs := make([]model.AnswerAttributes, 0, len(req.Answers))
	for _, a := range req.Answers {
		if _, ok := survey.Question(a.QuestionID); !ok {
			log.Warn().Uint("questionID", a.QuestionID).Uint("surveyID", surveyID).Msg("CompleteSurvey: Answer for a question not part of this survey, skipping.")
			continue
		}
		attrs = append(attrs, model.AnswerAttributes{QuestionID: a.QuestionID, Text: a.Text})
	}
	completion.BuildAnswers(attrs)
	if err := completion.Validate(); err != nil {
		return nil, err
	}
	// Answers that cannot be scored are rejected before anything is stored.
	for _, a := range completion.Answers {
		question, _ := survey.Question(a.QuestionID)
		if _, err := question.Score(a.Text); err != nil {
			return nil, fmt.Errorf("answer to question %d: %w", a.QuestionID, err)
		}
	}

	if err := s.completionRepo.Create(ctx, &completion); err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Uint("userID", user.ID).Msg("CompleteSurvey: Failed to create completion")
		return nil, fmt.Errorf("failed to create completion: %w", err)
	}
	log.Info().Uint("completionID", completion.ID).Int("answers", len(completion.Answers)).Msg("Survey completed")

	if err := s.notifications.NotifyCompletion(ctx, user, survey); err != nil {
		log.Error().Err(err).Uint("completionID", completion.ID).Msg("CompleteSurvey: Failed to send completion notification")
	}

	completion.User = user
	for i := range completion.Answers {
		completion.Answers[i].Question, _ = survey.Question(completion.Answers[i].QuestionID)
	}
	return toCompletionDTO(&completion, survey.MaxScore(), s.scoreConverter), nil
}

func (s *completionService) GetCompletionDetails(ctx context.Context, completionID uint) (*dto.CompletionResponseDTO, error) {
	completion, err := s.completionRepo.FindByIDWithDetails(ctx, completionID)
	if err != nil {
		log.Error().Err(err).Uint("completionID", completionID).Msg("Failed to get completion details")
		return nil, err
	}
	survey, err := s.surveyRepo.FindByIDWithQuestions(ctx, completion.SurveyID)
	if err != nil {
		return nil, err
	}
	return toCompletionDTO(completion, survey.MaxScore(), s.scoreConverter), nil
}

func (s *completionService) GetSurveyCompletions(ctx context.Context, surveyID uint) ([]dto.CompletionResponseDTO, error) {
	survey, err := s.surveyRepo.FindByIDWithQuestions(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	completions, err := s.completionRepo.FindAllBySurvey(ctx, surveyID)
	if err != nil {
		log.Error().Err(err).Uint("surveyID", surveyID).Msg("Failed to get completions from repository")
		return nil, fmt.Errorf("error fetching completions: %w", err)
	}

	maxScore := survey.MaxScore()
	resp := make([]dto.CompletionResponseDTO, 0, len(completions))
	for i := range completions {
		resp = append(resp, *toCompletionDTO(&completions[i], maxScore, s.scoreConverter))
	}
	return resp, nil
}
