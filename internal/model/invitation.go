package model

import (
	"regexp"
	"strings"
	"time"
)

const (
	InvitationPending  = "pending"
	InvitationAccepted = "accepted"
)

// EmailPattern is the address format accepted for invitation recipients.
var EmailPattern = regexp.MustCompile(`(?i)\A([^@\s]+)@((?:[-a-z0-9]+\.)+[a-z]{2,})\z`)

type Invitation struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	SenderID       uint      `json:"sender_id" gorm:"index"`
	Sender         *User     `json:"sender,omitempty" gorm:"foreignKey:SenderID" validate:"-"`
	SurveyID       uint      `json:"survey_id" gorm:"index"`
	Survey         *Survey   `json:"survey,omitempty" gorm:"foreignKey:SurveyID" validate:"-"`
	RecipientEmail string    `json:"recipient_email" validate:"required"`
	Status         string    `json:"status" gorm:"default:'pending'" validate:"oneof=pending accepted"`
	Token          string    `json:"token" gorm:"uniqueIndex"`
	Message        string    `json:"message" gorm:"type:text;not null;default:''"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (i *Invitation) Validate() error {
	i.RecipientEmail = strings.TrimSpace(i.RecipientEmail)
	verr := validateStruct(i)
	if i.RecipientEmail != "" && !EmailPattern.MatchString(i.RecipientEmail) {
		verr.Add("recipient_email", i.RecipientEmail+" is not a valid email")
	}
	return verr.OrNil()
}

// Unsubscribe suppresses email delivery to an address.
type Unsubscribe struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
