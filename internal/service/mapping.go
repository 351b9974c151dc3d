package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/rs/zerolog/log"
)

func toUserDTO(user *model.User) (*dto.UserResponseDTO, error) {
	var resp dto.UserResponseDTO
	if err := copier.Copy(&resp, user); err != nil {
		log.Error().Err(err).Msg("Failed to copy User model to UserResponseDTO")
		return nil, fmt.Errorf("error preparing user response: %w", err)
	}
	resp.FullName = user.FullName()
	return &resp, nil
}

// toSubmittableDTO renders options as given so previews can pass padded form options.
func toSubmittableDTO(s *model.Submittable, options []model.Option) *dto.SubmittableResponseDTO {
	if s == nil {
		return nil
	}
	resp := &dto.SubmittableResponseDTO{
		ID:      s.ID,
		Type:    string(s.Type),
		Minimum: s.Minimum,
		Maximum: s.Maximum,
	}
	switch s.Type {
	case model.SubmittableScale:
		resp.Steps = s.Steps()
	case model.SubmittableMultipleChoice:
		resp.Options = make([]dto.OptionResponseDTO, len(options))
		for i, o := range options {
			resp.Options[i] = dto.OptionResponseDTO{ID: o.ID, Text: o.Text, Score: o.Score}
		}
	}
	return resp
}

func toQuestionDTO(q *model.Question) dto.QuestionResponseDTO {
	resp := dto.QuestionResponseDTO{
		ID:        q.ID,
		SurveyID:  q.SurveyID,
		Title:     q.Title,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	if q.Submittable != nil {
		resp.Submittable = toSubmittableDTO(q.Submittable, q.Submittable.Options)
	}
	return resp
}

func toSurveyDTO(survey *model.Survey) *dto.SurveyResponseDTO {
	resp := &dto.SurveyResponseDTO{
		ID:        survey.ID,
		Title:     survey.Title,
		AuthorID:  survey.AuthorID,
		Questions: make([]dto.QuestionResponseDTO, len(survey.Questions)),
		MaxScore:  survey.MaxScore(),
		CreatedAt: survey.CreatedAt,
	}
	for i := range survey.Questions {
		resp.Questions[i] = toQuestionDTO(&survey.Questions[i])
	}
	return resp
}

// toCompletionDTO scores the completion when every answer can still be
// scored. Answers whose question changed type since may no longer be.
func toCompletionDTO(c *model.Completion, maxScore int, converter ScoreConverterService) *dto.CompletionResponseDTO {
	resp := &dto.CompletionResponseDTO{
		ID:        c.ID,
		SurveyID:  c.SurveyID,
		UserID:    c.UserID,
		Answers:   make([]dto.AnswerResponseDTO, len(c.Answers)),
		MaxScore:  maxScore,
		CreatedAt: c.CreatedAt,
	}
	if c.User != nil {
		resp.UserName = c.User.FullName()
	}
	for i := range c.Answers {
		a := &c.Answers[i]
		answer := dto.AnswerResponseDTO{ID: a.ID, QuestionID: a.QuestionID, Text: a.Text}
		if a.Question != nil {
			answer.QuestionTitle = a.Question.Title
			if score, err := a.Score(); err == nil {
				answer.Score = &score
			}
		}
		resp.Answers[i] = answer
	}

	score, err := c.Score()
	if err != nil {
		log.Warn().Err(err).Uint("completionID", c.ID).Msg("Completion can no longer be scored")
		return resp
	}
	resp.Score = &score
	if percentage, err := converter.ConvertToPercentage(score, maxScore); err == nil {
		resp.Percentage = &percentage
	}
	return resp
}
