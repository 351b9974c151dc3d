package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/testutil"
)

func TestQuestionServiceSwitchType(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, f.db, "author@example.com")
	survey := testutil.CreateSurvey(t, f.db, author, "Feedback")

	created, err := f.questions.AddQuestion(ctx, survey.ID, dto.QuestionCreateDTO{
		Title:           "How was it?",
		SubmittableType: "open",
	})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}

	switched, err := f.questions.SwitchType(ctx, created.ID, dto.QuestionTypeSwitchDTO{
		SubmittableType:       "scale",
		SubmittableAttributes: dto.SubmittableAttributesDTO{Minimum: intPtr(1), Maximum: intPtr(5)},
	})
	if err != nil {
		t.Fatalf("SwitchType: %v", err)
	}
	if switched.ID != created.ID || switched.Submittable.Type != "scale" {
		t.Fatalf("unexpected switched question %+v", switched)
	}
	if len(switched.Submittable.Steps) != 5 {
		t.Fatalf("steps = %v", switched.Submittable.Steps)
	}
	if got := testutil.Count(t, f.db, &model.Submittable{}); got != 1 {
		t.Fatalf("submittable count = %d, want 1", got)
	}

	stored, err := f.questions.GetQuestion(ctx, created.ID)
	if err != nil || stored.Submittable.Type != "scale" {
		t.Fatalf("GetQuestion=%+v,%v", stored, err)
	}
}

func TestQuestionServiceSwitchTypeInvalid(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, f.db, "author@example.com")
	survey := testutil.CreateSurvey(t, f.db, author, "Feedback")
	created, err := f.questions.AddQuestion(ctx, survey.ID, dto.QuestionCreateDTO{Title: "Rate us", SubmittableType: "open"})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}

	attempted, err := f.questions.SwitchType(ctx, created.ID, dto.QuestionTypeSwitchDTO{
		SubmittableType:       "scale",
		SubmittableAttributes: dto.SubmittableAttributesDTO{Minimum: intPtr(1)},
	})
	if !hasFieldError(err, "submittable.maximum") {
		t.Fatalf("expected maximum error, got %v", err)
	}
	if attempted == nil || attempted.Submittable.Type != "scale" || *attempted.Submittable.Minimum != 1 {
		t.Fatalf("attempted state not returned: %+v", attempted)
	}

	stored, err := f.questions.GetQuestion(ctx, created.ID)
	if err != nil || stored.Submittable.Type != "open" {
		t.Fatalf("stored question changed: %+v,%v", stored, err)
	}

	_, err = f.questions.SwitchType(ctx, created.ID, dto.QuestionTypeSwitchDTO{SubmittableType: "essay"})
	var cerr *model.ConfigurationError
	if !errors.As(err, &cerr) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestQuestionServiceOptionsAndPreview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author := testutil.CreateUser(t, f.db, "author@example.com")
	survey := testutil.CreateSurvey(t, f.db, author, "Colors")

	open, err := f.questions.AddQuestion(ctx, survey.ID, dto.QuestionCreateDTO{Title: "Why?", SubmittableType: "open"})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	if _, err := f.questions.AddOption(ctx, open.ID, dto.OptionCreateDTO{Text: "No"}); !errors.Is(err, model.ErrNotMultipleChoice) {
		t.Fatalf("expected not multiple choice, got %v", err)
	}

	preview, err := f.questions.PreviewType(ctx, open.ID, "multiple_choice")
	if err != nil {
		t.Fatalf("PreviewType: %v", err)
	}
	if preview.Submittable.Type != "multiple_choice" || len(preview.Submittable.Options) != 3 {
		t.Fatalf("unexpected preview %+v", preview.Submittable)
	}
	if got := testutil.Count(t, f.db, &model.Submittable{}); got != 1 {
		t.Fatalf("preview stored a submittable")
	}

	mc, err := f.questions.AddQuestion(ctx, survey.ID, dto.QuestionCreateDTO{
		Title:           "Favorite?",
		SubmittableType: "multiple_choice",
		SubmittableAttributes: dto.SubmittableAttributesDTO{
			Options: []dto.OptionDTO{{Text: "Red", Score: 1}, {Text: ""}},
		},
	})
	if err != nil {
		t.Fatalf("AddQuestion: %v", err)
	}
	if len(mc.Submittable.Options) != 1 {
		t.Fatalf("blank option kept: %+v", mc.Submittable.Options)
	}
	updated, err := f.questions.AddOption(ctx, mc.ID, dto.OptionCreateDTO{Text: "Blue", Score: 2})
	if err != nil || len(updated.Submittable.Options) != 2 {
		t.Fatalf("AddOption=%+v,%v", updated, err)
	}
	if _, err := f.questions.AddOption(ctx, mc.ID, dto.OptionCreateDTO{Text: " "}); !hasFieldError(err, "text") {
		t.Fatalf("expected blank option error, got %v", err)
	}

	renamed, err := f.questions.UpdateQuestion(ctx, mc.ID, dto.QuestionUpdateDTO{Title: "Favorite color?"})
	if err != nil || renamed.Title != "Favorite color?" {
		t.Fatalf("UpdateQuestion=%+v,%v", renamed, err)
	}
	if _, err := f.questions.UpdateQuestion(ctx, mc.ID, dto.QuestionUpdateDTO{Title: ""}); !hasFieldError(err, "title") {
		t.Fatalf("expected blank title error, got %v", err)
	}
}

func TestQuestionServiceAddQuestionErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.questions.AddQuestion(ctx, 42, dto.QuestionCreateDTO{Title: "x", SubmittableType: "open"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected survey not found, got %v", err)
	}

	author := testutil.CreateUser(t, f.db, "author@example.com")
	survey := testutil.CreateSurvey(t, f.db, author, "Scale")
	_, err := f.questions.AddQuestion(ctx, survey.ID, dto.QuestionCreateDTO{
		Title:                 "Rate",
		SubmittableType:       "scale",
		SubmittableAttributes: dto.SubmittableAttributesDTO{Minimum: intPtr(10), Maximum: intPtr(1)},
	})
	if !hasFieldError(err, "submittable.maximum") {
		t.Fatalf("expected bounds error, got %v", err)
	}
	if got := testutil.Count(t, f.db, &model.Question{}); got != 0 {
		t.Fatalf("invalid question stored")
	}
}
