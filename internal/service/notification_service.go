package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/Surveyor/config"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
)

// CompletionSubject is the subject of the mail sent after a survey is completed.
const CompletionSubject = "Thank you for completing the survey"

type NotificationService interface {
	// DeliverEmail sends mail unless the address has unsubscribed. It reports
	// whether the mail went out.
	DeliverEmail(ctx context.Context, to, subject, body string) (bool, error)
	Unsubscribe(ctx context.Context, email string) error
	IsSuppressed(ctx context.Context, email string) (bool, error)
	NotifyCompletion(ctx context.Context, user *model.User, survey *model.Survey) error
}

type notificationService struct {
	mailer          Mailer
	unsubscribeRepo repository.UnsubscribeRepository
	from            string
}

func NewNotificationService(mailer Mailer, unsubscribeRepo repository.UnsubscribeRepository, cfg *config.Config) NotificationService {
	return &notificationService{mailer: mailer, unsubscribeRepo: unsubscribeRepo, from: cfg.Mail.From}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *notificationService) IsSuppressed(ctx context.Context, email string) (bool, error) {
	suppressed, err := s.unsubscribeRepo.Exists(ctx, normalizeEmail(email))
	if err != nil {
		return false, fmt.Errorf("failed to check unsubscribes for %s: %w", email, err)
	}
	return suppressed, nil
}

func (s *notificationService) Unsubscribe(ctx context.Context, email string) error {
	unsubscribe := model.Unsubscribe{Email: normalizeEmail(email)}
	if unsubscribe.Email == "" || !model.EmailPattern.MatchString(unsubscribe.Email) {
		verr := &model.ValidationError{}
		verr.Add("email", "is not a valid email")
		return verr
	}
	if err := s.unsubscribeRepo.Create(ctx, &unsubscribe); err != nil {
		log.Error().Err(err).Str("email", unsubscribe.Email).Msg("Failed to record unsubscribe")
		return fmt.Errorf("failed to unsubscribe %s: %w", unsubscribe.Email, err)
	}
	log.Info().Str("email", unsubscribe.Email).Msg("Email unsubscribed")
	return nil
}

func (s *notificationService) DeliverEmail(ctx context.Context, to, subject, body string) (bool, error) {
	suppressed, err := s.IsSuppressed(ctx, to)
	if err != nil {
		return false, err
	}
	if suppressed {
		log.Info().Str("to", to).Str("subject", subject).Msg("Skipping mail to unsubscribed address")
		return false, nil
	}
	mail := Mail{To: to, From: s.from, Subject: subject, Body: body}
	if err := s.mailer.Deliver(ctx, mail); err != nil {
		return false, fmt.Errorf("failed to deliver mail to %s: %w", to, err)
	}
	return true, nil
}

func (s *notificationService) NotifyCompletion(ctx context.Context, user *model.User, survey *model.Survey) error {
	if user == nil || user.Email == "" {
		return nil
	}
	body := fmt.Sprintf("Hi %s,\n\nThanks for completing %q.\n", user.FullName(), survey.Title)
	_, err := s.DeliverEmail(ctx, user.Email, CompletionSubject, body)
	return err
}
