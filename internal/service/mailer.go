package service

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Mail is one outbound email.
type Mail struct {
	To      string
	From    string
	Subject string
	Body    string
}

// Mailer hands mail to a transport.
type Mailer interface {
	Deliver(ctx context.Context, mail Mail) error
}

type logMailer struct{}

// NewLogMailer returns a Mailer that writes every message to the log instead
// of sending it.
func NewLogMailer() Mailer {
	return &logMailer{}
}

func (m *logMailer) Deliver(ctx context.Context, mail Mail) error {
	log.Info().
		Str("to", mail.To).
		Str("from", mail.From).
		Str("subject", mail.Subject).
		Int("body_length", len(mail.Body)).
		Msg("Mail delivered")
	return nil
}
