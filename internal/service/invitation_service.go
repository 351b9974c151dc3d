package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/lshigami/Surveyor/config"
	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/rs/zerolog/log"
)

// Delivery channels reported for each invitation.
const (
	DeliveredViaMessage    = "message"
	DeliveredViaEmail      = "email"
	DeliveredViaSuppressed = "suppressed"
)

// InvitationSubject is the subject of invitation mail.
const InvitationSubject = "You have been invited to take a survey"

var invitationBody = template.Must(template.New("invitation").Parse(
	`{{.Sender}} has invited you to take the survey "{{.Survey}}".

{{.Message}}

Take the survey: {{.URL}}
`))

type invitationContent struct {
	Sender  string
	Survey  string
	Message string
	URL     string
}

type InvitationService interface {
	// Invite invites every recipient to the survey. Registered users get an
	// in-app message; anyone else is mailed unless they unsubscribed.
	// Recipients are handled one at a time and delivery stops at the first
	// failure. Recipients handled before it keep their invitation and
	// delivery, and are returned alongside the error.
	Invite(ctx context.Context, surveyID uint, req dto.InvitationCreateDTO) ([]dto.InvitationResultDTO, error)
}

type invitationService struct {
	surveyRepo     repository.SurveyRepository
	userRepo       repository.UserRepository
	invitationRepo repository.InvitationRepository
	messageRepo    repository.MessageRepository
	notifications  NotificationService
	baseURL        string
}

func NewInvitationService(
	surveyRepo repository.SurveyRepository,
	userRepo repository.UserRepository,
	invitationRepo repository.InvitationRepository,
	messageRepo repository.MessageRepository,
	notifications NotificationService,
	cfg *config.Config,
) InvitationService {
	return &invitationService{
		surveyRepo:     surveyRepo,
		userRepo:       userRepo,
		invitationRepo: invitationRepo,
		messageRepo:    messageRepo,
		notifications:  notifications,
		baseURL:        strings.TrimRight(cfg.App.BaseURL, "/"),
	}
}

func validateInvitation(recipients model.RecipientList, message string) error {
	verr := &model.ValidationError{}
	if strings.TrimSpace(message) == "" {
		verr.Add("message", "can't be blank")
	}
	if len(recipients.Emails()) == 0 {
		verr.Add("recipients", "can't be blank")
	}
	for _, invalid := range recipients.Invalid() {
		verr.Add("recipients", invalid+" is not a valid email")
	}
	return verr.OrNil()
}

func (s *invitationService) Invite(ctx context.Context, surveyID uint, req dto.InvitationCreateDTO) ([]dto.InvitationResultDTO, error) {
	recipients := model.RecipientList(req.Recipients)
	if err := validateInvitation(recipients, req.Message); err != nil {
		return nil, err
	}
	survey, err := s.surveyRepo.FindByID(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	sender, err := s.userRepo.FindByID(ctx, req.SenderID)
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	err = invitationBody.Execute(&body, invitationContent{
		Sender:  sender.Email,
		Survey:  survey.Title,
		Message: strings.TrimSpace(req.Message),
		URL:     fmt.Sprintf("%s/surveys/%d", s.baseURL, survey.ID),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render invitation: %w", err)
	}

	results := make([]dto.InvitationResultDTO, 0, len(recipients.Emails()))
	for _, email := range recipients.Emails() {
		result, err := s.deliver(ctx, survey, sender, normalizeEmail(email), req.Message, body.String())
		if err != nil {
			log.Error().Err(err).Uint("surveyID", surveyID).Str("recipient", email).Msg("Failed to deliver invitation")
			return results, err
		}
		results = append(results, *result)
	}
	log.Info().Uint("surveyID", surveyID).Int("recipients", len(results)).Msg("Invitations sent")
	return results, nil
}

func (s *invitationService) deliver(ctx context.Context, survey *model.Survey, sender *model.User, email, message, body string) (*dto.InvitationResultDTO, error) {
	invitation := model.Invitation{
		SenderID:       sender.ID,
		SurveyID:       survey.ID,
		RecipientEmail: email,
		Status:         model.InvitationPending,
		Token:          uuid.NewString(),
		Message:        strings.TrimSpace(message),
	}
	if err := invitation.Validate(); err != nil {
		return nil, err
	}
	if err := s.invitationRepo.Create(ctx, &invitation); err != nil {
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	result := &dto.InvitationResultDTO{
		RecipientEmail: invitation.RecipientEmail,
		Token:          invitation.Token,
		Status:         invitation.Status,
	}

	recipient, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		msg := model.Message{SenderID: sender.ID, RecipientID: recipient.ID, Body: body}
		if err := msg.Validate(); err != nil {
			return nil, err
		}
		if err := s.messageRepo.Create(ctx, &msg); err != nil {
			return nil, fmt.Errorf("failed to create message: %w", err)
		}
		result.DeliveredVia = DeliveredViaMessage
		return result, nil
	case !errors.Is(err, model.ErrNotFound):
		return nil, err
	}

	sent, err := s.notifications.DeliverEmail(ctx, email, InvitationSubject, body)
	if err != nil {
		return nil, err
	}
	result.DeliveredVia = DeliveredViaEmail
	if !sent {
		result.DeliveredVia = DeliveredViaSuppressed
	}
	return result, nil
}
