package model

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Survey struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null" validate:"required"`
	AuthorID    uint           `json:"author_id" gorm:"not null;index" validate:"required"`
	Author      *User          `json:"author,omitempty" gorm:"foreignKey:AuthorID" validate:"-"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:SurveyID" validate:"-"`
	Completions []Completion   `json:"completions,omitempty" gorm:"foreignKey:SurveyID" validate:"-"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (s *Survey) Validate() error {
	s.Title = strings.TrimSpace(s.Title)
	return validateStruct(s).OrNil()
}

// SummariesUsing summarizes every question in order, hiding questions the
// viewer in opts has not answered.
func (s *Survey) SummariesUsing(summarizer Summarizer, opts SummaryOptions) []Summary {
	hider := UnansweredQuestionHider{Summarizer: summarizer}
	summaries := make([]Summary, len(s.Questions))
	for i := range s.Questions {
		summaries[i] = hider.SummarizeOrHide(&s.Questions[i], opts.AnsweredBy)
	}
	return summaries
}

// MaxScore is the best total a completion of this survey can reach.
func (s *Survey) MaxScore() int {
	total := 0
	for _, q := range s.Questions {
		if q.Submittable != nil {
			total += q.Submittable.MaxScore()
		}
	}
	return total
}

// Question finds a loaded question by id.
func (s *Survey) Question(id uint) (*Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i], true
		}
	}
	return nil, false
}
