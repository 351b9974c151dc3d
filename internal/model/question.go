package model

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MissingAnswerText stands in for an answer that does not exist.
const MissingAnswerText = "No response"

type Question struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	SurveyID      uint           `json:"survey_id" gorm:"not null;index" validate:"required"`
	Title         string         `json:"title" gorm:"not null" validate:"required"`
	SubmittableID uint           `json:"submittable_id" gorm:"index"`
	Submittable   *Submittable   `json:"submittable" gorm:"foreignKey:SubmittableID" validate:"required"`
	Answers       []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID" validate:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BuildSubmittable attaches a new, unsaved submittable of the named type,
// replacing the current one.
func (q *Question) BuildSubmittable(typeName string, attrs SubmittableAttributes) error {
	t, err := ParseSubmittableType(typeName)
	if err != nil {
		return err
	}
	q.Submittable = NewSubmittable(t, attrs)
	return nil
}

// SwitchTo replaces the submittable with one of another type and validates
// the result. The previous submittable is returned so the caller can delete
// it once the replacement is stored. On validation failure the question keeps
// the attempted submittable and the error lists what is wrong with it.
func (q *Question) SwitchTo(typeName string, attrs SubmittableAttributes) (*Submittable, error) {
	previous := q.Submittable
	if err := q.BuildSubmittable(typeName, attrs); err != nil {
		return nil, err
	}
	if err := q.Validate(); err != nil {
		return previous, err
	}
	return previous, nil
}

// Validate checks the question and its submittable.
func (q *Question) Validate() error {
	q.Title = strings.TrimSpace(q.Title)
	verr := validateStruct(q)
	if s := q.Submittable; s != nil && s.Minimum != nil && s.Maximum != nil {
		if *s.Minimum > *s.Maximum {
			verr.Add("submittable.maximum", "must be greater than or equal to minimum")
		} else if width, _ := s.scaleWidth(); width > MaxScaleWidth {
			verr.Add("submittable.maximum", fmt.Sprintf("must be at most %d above minimum", MaxScaleWidth))
		}
	}
	return verr.OrNil()
}

// Type reports the submittable type, or "" when none is attached.
func (q *Question) Type() SubmittableType {
	if q.Submittable == nil {
		return ""
	}
	return q.Submittable.Type
}

func (q *Question) Score(text string) (int, error) {
	if q.Submittable == nil {
		return 0, fmt.Errorf("question %d has no submittable", q.ID)
	}
	return q.Submittable.Score(text)
}

func (q *Question) Breakdown() string {
	if q.Submittable == nil {
		return ""
	}
	return q.Submittable.Breakdown(q.Answers)
}

func (q *Question) Steps() []int {
	if q.Submittable == nil {
		return []int{}
	}
	return q.Submittable.Steps()
}

// SummaryUsing wraps the summarizer's value with the question title.
func (q *Question) SummaryUsing(s Summarizer) Summary {
	return Summary{Title: q.Title, Value: s.Summarize(q)}
}

// AnsweredBy reports whether the user gave a non-empty answer. Answers must
// be loaded with their completion.
func (q *Question) AnsweredBy(userID uint) bool {
	for _, a := range q.Answers {
		if a.Text != "" && a.Completion != nil && a.Completion.UserID == userID {
			return true
		}
	}
	return false
}

// MostRecentAnswerText returns the text of the latest answer.
func (q *Question) MostRecentAnswerText() string {
	ordered := inCreationOrder(q.Answers)
	if len(ordered) == 0 {
		return MissingAnswerText
	}
	return ordered[len(ordered)-1].Text
}

// AnswerTextFor returns the latest answer text given by the user.
func (q *Question) AnswerTextFor(userID uint) string {
	ordered := inCreationOrder(q.Answers)
	for i := len(ordered) - 1; i >= 0; i-- {
		if c := ordered[i].Completion; c != nil && c.UserID == userID {
			return ordered[i].Text
		}
	}
	return MissingAnswerText
}
