package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/lshigami/Surveyor/config"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/repository"
	"github.com/lshigami/Surveyor/internal/testutil"
	"gorm.io/gorm"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []Mail
	// failFor makes delivery to these addresses fail.
	failFor map[string]error
}

func (m *recordingMailer) Deliver(ctx context.Context, mail Mail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failFor[mail.To]; err != nil {
		return err
	}
	m.sent = append(m.sent, mail)
	return nil
}

func (m *recordingMailer) deliveries() []Mail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Mail(nil), m.sent...)
}

// fixture wires every service against a fresh database.
type fixture struct {
	db            *gorm.DB
	mailer        *recordingMailer
	users         UserService
	surveys       SurveyService
	questions     QuestionService
	completions   CompletionService
	invitations   InvitationService
	notifications NotificationService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	cfg := &config.Config{
		App:  config.App{BaseURL: "http://surveys.test/"},
		Mail: config.Mail{From: "from@example.com"},
	}
	mailer := &recordingMailer{}

	userRepo := repository.NewUserRepository(db)
	surveyRepo := repository.NewSurveyRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	notifications := NewNotificationService(mailer, repository.NewUnsubscribeRepository(db), cfg)

	return &fixture{
		db:            db,
		mailer:        mailer,
		users:         NewUserService(userRepo, messageRepo),
		surveys:       NewSurveyService(surveyRepo, userRepo),
		questions:     NewQuestionService(repository.NewQuestionRepository(db), surveyRepo),
		completions:   NewCompletionService(surveyRepo, repository.NewCompletionRepository(db), userRepo, notifications, NewScoreConverterService()),
		invitations:   NewInvitationService(surveyRepo, userRepo, repository.NewInvitationRepository(db), messageRepo, notifications, cfg),
		notifications: notifications,
	}
}

func intPtr(v int) *int { return &v }

func hasFieldError(err error, field string) bool {
	var verr *model.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	for _, f := range verr.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
