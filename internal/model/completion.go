package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Completion is one user's pass through a survey.
type Completion struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	SurveyID  uint           `json:"survey_id" gorm:"not null;index" validate:"required"`
	UserID    uint           `json:"user_id" gorm:"not null;index" validate:"required"`
	User      *User          `json:"user,omitempty" gorm:"foreignKey:UserID" validate:"-"`
	Answers   []Answer       `json:"answers,omitempty" gorm:"foreignKey:CompletionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" validate:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// AnswerAttributes is the submitted answer to one question.
type AnswerAttributes struct {
	QuestionID uint
	Text       string
}

// BuildAnswers appends one unsaved answer per entry, in order. Blank answers
// are left out: a skipped question has no answer.
func (c *Completion) BuildAnswers(attrs []AnswerAttributes) {
	for _, a := range attrs {
		text := strings.TrimSpace(a.Text)
		if text == "" {
			continue
		}
		c.Answers = append(c.Answers, Answer{CompletionID: c.ID, QuestionID: a.QuestionID, Text: text})
	}
}

// Score sums the scores of every answer. Answers must be loaded with their
// questions and submittables.
func (c *Completion) Score() (int, error) {
	total := 0
	for i := range c.Answers {
		s, err := c.Answers[i].Score()
		if err != nil {
			return 0, fmt.Errorf("completion %d: %w", c.ID, err)
		}
		total += s
	}
	return total, nil
}

func (c *Completion) Validate() error {
	verr := validateStruct(c)
	for i := range c.Answers {
		for _, fe := range validateStruct(&c.Answers[i]).Fields {
			verr.Add(fmt.Sprintf("answers[%d].%s", i, fe.Field), fe.Message)
		}
	}
	return verr.OrNil()
}
