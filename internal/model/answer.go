package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type Answer struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CompletionID uint           `json:"completion_id" gorm:"not null;index"`
	Completion   *Completion    `json:"-" gorm:"foreignKey:CompletionID" validate:"-"`
	QuestionID   uint           `json:"question_id" gorm:"not null;index" validate:"required"`
	Question     *Question      `json:"question,omitempty" gorm:"foreignKey:QuestionID" validate:"-"`
	Text         string         `json:"text" gorm:"type:text;not null" validate:"required"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// Score delegates to the answered question. The question must be loaded.
func (a *Answer) Score() (int, error) {
	if a.Question == nil {
		return 0, fmt.Errorf("answer %d: question not loaded", a.ID)
	}
	return a.Question.Score(a.Text)
}
