package dto

import (
	"time"

	"github.com/lshigami/Surveyor/internal/model"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string             `json:"message"`
	Details []string           `json:"details,omitempty"`
	Errors  []model.FieldError `json:"errors,omitempty"`
}

type UserResponseDTO struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

type MessageResponseDTO struct {
	ID          uint      `json:"id"`
	SenderID    uint      `json:"sender_id"`
	SenderEmail string    `json:"sender_email,omitempty"`
	RecipientID uint      `json:"recipient_id"`
	Body        string    `json:"body"`
	CreatedAt   time.Time `json:"created_at"`
}

type OptionResponseDTO struct {
	ID    uint   `json:"id"`
	Text  string `json:"text"`
	Score int    `json:"score"`
}

type SubmittableResponseDTO struct {
	ID      uint                `json:"id"`
	Type    string              `json:"type"`
	Minimum *int                `json:"minimum,omitempty"`
	Maximum *int                `json:"maximum,omitempty"`
	Steps   []int               `json:"steps,omitempty"`
	Options []OptionResponseDTO `json:"options,omitempty"`
}

type QuestionResponseDTO struct {
	ID          uint                    `json:"id"`
	SurveyID    uint                    `json:"survey_id"`
	Title       string                  `json:"title"`
	Submittable *SubmittableResponseDTO `json:"submittable,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// SurveyResponseDTO is a survey with its ordered questions.
type SurveyResponseDTO struct {
	ID        uint                  `json:"id"`
	Title     string                `json:"title"`
	AuthorID  uint                  `json:"author_id"`
	Questions []QuestionResponseDTO `json:"questions"`
	MaxScore  int                   `json:"max_score"`
	CreatedAt time.Time             `json:"created_at"`
}

// SurveySummaryDTO is a survey listing entry.
type SurveySummaryDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	AuthorID      uint      `json:"author_id"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
}

// SummariesResponseDTO is the result of summarizing a survey.
type SummariesResponseDTO struct {
	SurveyID   uint            `json:"survey_id"`
	Summarizer string          `json:"summarizer"`
	Summaries  []model.Summary `json:"summaries"`
}

type AnswerResponseDTO struct {
	ID            uint   `json:"id"`
	QuestionID    uint   `json:"question_id"`
	QuestionTitle string `json:"question_title,omitempty"`
	Text          string `json:"text"`
	Score         *int   `json:"score,omitempty"`
}

// CompletionResponseDTO is a completion with its answers and score.
type CompletionResponseDTO struct {
	ID         uint                `json:"id"`
	SurveyID   uint                `json:"survey_id"`
	UserID     uint                `json:"user_id"`
	UserName   string              `json:"user_name,omitempty"`
	Answers    []AnswerResponseDTO `json:"answers"`
	Score      *int                `json:"score,omitempty"`
	MaxScore   int                 `json:"max_score"`
	Percentage *float64            `json:"percentage,omitempty"`
	CreatedAt  time.Time           `json:"created_at"`
}

// InvitationResultDTO reports what happened to each invited address.
type InvitationResultDTO struct {
	RecipientEmail string `json:"recipient_email"`
	Token          string `json:"token"`
	Status         string `json:"status"`
	DeliveredVia   string `json:"delivered_via"`
}

// QuestionTypeErrorDTO is returned when a type switch is rejected. Question
// holds the attempted state so the form can be shown again.
type QuestionTypeErrorDTO struct {
	Message  string              `json:"message"`
	Question QuestionResponseDTO `json:"question"`
	Errors   []model.FieldError  `json:"errors"`
}
