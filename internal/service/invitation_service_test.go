package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/testutil"
)

func TestInvitationServiceInvite(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, f.db, "author@example.com")
	member := testutil.CreateUser(t, f.db, "member@example.com")
	survey := testutil.CreateSurvey(t, f.db, author, "Team lunch")
	if err := f.notifications.Unsubscribe(ctx, "gone@example.com"); err != nil {
		t.Fatalf("Unsubscribe: %v", err)
	}

	results, err := f.invitations.Invite(ctx, survey.ID, dto.InvitationCreateDTO{
		SenderID:   author.ID,
		Recipients: "member@example.com, guest@example.com;\ngone@example.com",
		Message:    "Please vote",
	})
	if err != nil {
		t.Fatalf("Invite: %v", err)
	}
	want := map[string]string{
		"member@example.com": DeliveredViaMessage,
		"guest@example.com":  DeliveredViaEmail,
		"gone@example.com":   DeliveredViaSuppressed,
	}
	if len(results) != len(want) {
		t.Fatalf("expected %d results, got %d", len(want), len(results))
	}
	tokens := map[string]bool{}
	for _, r := range results {
		if want[r.RecipientEmail] != r.DeliveredVia {
			t.Fatalf("%s delivered via %q, want %q", r.RecipientEmail, r.DeliveredVia, want[r.RecipientEmail])
		}
		if r.Status != model.InvitationPending || r.Token == "" || tokens[r.Token] {
			t.Fatalf("bad invitation result %+v", r)
		}
		tokens[r.Token] = true
	}
	if got := testutil.Count(t, f.db, &model.Invitation{}); got != 3 {
		t.Fatalf("invitation count = %d, want 3", got)
	}

	mails := f.mailer.deliveries()
	if len(mails) != 1 || mails[0].To != "guest@example.com" || mails[0].Subject != InvitationSubject {
		t.Fatalf("unexpected mails %+v", mails)
	}
	for _, part := range []string{"author@example.com", "Team lunch", "Please vote", "http://surveys.test/surveys/"} {
		if !strings.Contains(mails[0].Body, part) {
			t.Fatalf("mail body missing %q:\n%s", part, mails[0].Body)
		}
	}

	messages, err := f.users.GetMessages(ctx, member.ID)
	if err != nil {
		t.Fatalf("GetMessages: %v", err)
	}
	if len(messages) != 1 || messages[0].SenderEmail != "author@example.com" || !strings.Contains(messages[0].Body, "Please vote") {
		t.Fatalf("unexpected messages %+v", messages)
	}
}

func TestInvitationServiceValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, f.db, "author@example.com")
	survey := testutil.CreateSurvey(t, f.db, author, "Team lunch")

	_, err := f.invitations.Invite(ctx, survey.ID, dto.InvitationCreateDTO{
		SenderID:   author.ID,
		Recipients: "ok@example.com, not-an-email",
		Message:    " ",
	})
	if !hasFieldError(err, "message") || !hasFieldError(err, "recipients") {
		t.Fatalf("expected message and recipients errors, got %v", err)
	}
	if !strings.Contains(err.Error(), "not-an-email is not a valid email") {
		t.Fatalf("invalid recipient not named: %v", err)
	}
	if got := testutil.Count(t, f.db, &model.Invitation{}); got != 0 {
		t.Fatalf("invitations stored despite validation failure")
	}
	if len(f.mailer.deliveries()) != 0 {
		t.Fatalf("mail sent despite validation failure")
	}
}

func TestInvitationServiceStopsAtFirstFailedDelivery(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, f.db, "author@example.com")
	survey := testutil.CreateSurvey(t, f.db, author, "Team lunch")
	bounce := errors.New("mailbox unavailable")
	f.mailer.failFor = map[string]error{"broken@example.com": bounce}

	results, err := f.invitations.Invite(ctx, survey.ID, dto.InvitationCreateDTO{
		SenderID:   author.ID,
		Recipients: "first@example.com, broken@example.com, last@example.com",
		Message:    "Please vote",
	})
	if !errors.Is(err, bounce) {
		t.Fatalf("expected delivery error, got %v", err)
	}
	if len(results) != 1 || results[0].RecipientEmail != "first@example.com" || results[0].DeliveredVia != DeliveredViaEmail {
		t.Fatalf("expected only the first recipient in results, got %+v", results)
	}

	mails := f.mailer.deliveries()
	if len(mails) != 1 || mails[0].To != "first@example.com" {
		t.Fatalf("unexpected mails %+v", mails)
	}
	// The failing recipient's invitation was stored before its mail bounced.
	if got := testutil.Count(t, f.db, &model.Invitation{}); got != 2 {
		t.Fatalf("invitation count = %d, want 2", got)
	}
}
