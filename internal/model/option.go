package model

import (
	"strings"
	"time"
)

type Option struct {
	ID            uint      `gorm:"primarykey" json:"id"`
	SubmittableID uint      `json:"submittable_id" gorm:"not null;index"`
	Text          string    `json:"text" gorm:"not null" validate:"required"`
	Score         int       `json:"score" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (o *Option) Validate() error {
	o.Text = strings.TrimSpace(o.Text)
	return validateStruct(o).OrNil()
}
