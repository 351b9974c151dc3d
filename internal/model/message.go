package model

import "time"

// Message is an in-app notification delivered to a registered user.
type Message struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	SenderID    uint      `json:"sender_id" gorm:"not null;index" validate:"required"`
	Sender      *User     `json:"sender,omitempty" gorm:"foreignKey:SenderID" validate:"-"`
	RecipientID uint      `json:"recipient_id" gorm:"not null;index" validate:"required"`
	Body        string    `json:"body" gorm:"type:text;not null" validate:"required"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *Message) Validate() error {
	return validateStruct(m).OrNil()
}
