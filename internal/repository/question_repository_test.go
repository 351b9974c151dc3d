package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/testutil"
)

func intPtr(v int) *int { return &v }

func createQuestion(t *testing.T, repo QuestionRepository, surveyID uint, title string, typ model.SubmittableType, attrs model.SubmittableAttributes) *model.Question {
	t.Helper()
	q := &model.Question{SurveyID: surveyID, Title: title, Submittable: model.NewSubmittable(typ, attrs)}
	if err := repo.Create(context.Background(), q); err != nil {
		t.Fatalf("create question: %v", err)
	}
	return q
}

func TestQuestionRepositoryCreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "author@example.com")
	survey := testutil.CreateSurvey(t, db, author, "Colors")
	repo := NewQuestionRepository(db)

	q := createQuestion(t, repo, survey.ID, "Favorite?", model.SubmittableMultipleChoice, model.SubmittableAttributes{
		Options: []model.OptionAttributes{{Text: "Red", Score: 1}, {Text: "Blue", Score: 2}},
	})
	if q.ID == 0 || q.SubmittableID == 0 || q.SubmittableID != q.Submittable.ID {
		t.Fatalf("ids not assigned: %+v", q)
	}

	found, err := repo.FindByID(context.Background(), q.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Type() != model.SubmittableMultipleChoice || len(found.Submittable.Options) != 2 {
		t.Fatalf("unexpected question %+v", found.Submittable)
	}
	if found.Submittable.Options[0].Text != "Red" || found.Submittable.Options[1].Text != "Blue" {
		t.Fatalf("options out of order: %+v", found.Submittable.Options)
	}

	if _, err := repo.FindByID(context.Background(), 999); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuestionRepositoryReplaceSubmittable(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "author@example.com")
	survey := testutil.CreateSurvey(t, db, author, "Feedback")
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	q := createQuestion(t, repo, survey.ID, "How was it?", model.SubmittableMultipleChoice, model.SubmittableAttributes{
		Options: []model.OptionAttributes{{Text: "Good", Score: 1}, {Text: "Bad"}},
	})
	originalID := q.ID

	previous, err := q.SwitchTo("scale", model.SubmittableAttributes{Minimum: intPtr(1), Maximum: intPtr(5)})
	if err != nil {
		t.Fatalf("SwitchTo: %v", err)
	}
	if err := repo.ReplaceSubmittable(ctx, q, previous); err != nil {
		t.Fatalf("ReplaceSubmittable: %v", err)
	}

	if got := testutil.Count(t, db, &model.Question{}); got != 1 {
		t.Fatalf("question count = %d, want 1", got)
	}
	if got := testutil.Count(t, db, &model.Submittable{}); got != 1 {
		t.Fatalf("submittable count = %d, want 1", got)
	}
	if got := testutil.Count(t, db, &model.Option{}); got != 0 {
		t.Fatalf("option count = %d, want 0", got)
	}
	var multipleChoice int64
	db.Model(&model.Submittable{}).Where("type = ?", model.SubmittableMultipleChoice).Count(&multipleChoice)
	if multipleChoice != 0 {
		t.Fatalf("old multiple choice submittable not deleted")
	}

	found, err := repo.FindByID(ctx, originalID)
	if err != nil {
		t.Fatalf("FindByID after switch: %v", err)
	}
	if found.ID != originalID || found.Type() != model.SubmittableScale || *found.Submittable.Maximum != 5 {
		t.Fatalf("unexpected question after switch: %+v %+v", found, found.Submittable)
	}
	if found.Title != "How was it?" {
		t.Fatalf("title changed: %q", found.Title)
	}
}

func TestQuestionRepositoryReplaceSubmittableRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "author@example.com")
	survey := testutil.CreateSurvey(t, db, author, "Feedback")
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	q := createQuestion(t, repo, survey.ID, "How was it?", model.SubmittableOpen, model.SubmittableAttributes{})
	ghost := &model.Question{ID: q.ID + 100, SurveyID: survey.ID, Title: "Ghost"}
	previous, err := ghost.SwitchTo("open", model.SubmittableAttributes{})
	if err != nil {
		t.Fatalf("SwitchTo: %v", err)
	}

	err = repo.ReplaceSubmittable(ctx, ghost, previous)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if ghost.Submittable.ID != 0 {
		t.Fatalf("replacement kept id of rolled back insert")
	}
	if got := testutil.Count(t, db, &model.Submittable{}); got != 1 {
		t.Fatalf("submittable count = %d, want 1", got)
	}
}

func TestQuestionRepositoryUpdateTitleAndAddOption(t *testing.T) {
	db := testutil.NewTestDB(t)
	author := testutil.CreateUser(t, db, "author@example.com")
	survey := testutil.CreateSurvey(t, db, author, "Feedback")
	repo := NewQuestionRepository(db)
	ctx := context.Background()

	q := createQuestion(t, repo, survey.ID, "Old", model.SubmittableMultipleChoice, model.SubmittableAttributes{
		Options: []model.OptionAttributes{{Text: "One", Score: 1}},
	})
	q.Title = "New"
	if err := repo.UpdateTitle(ctx, q); err != nil {
		t.Fatalf("UpdateTitle: %v", err)
	}
	if err := repo.AddOption(ctx, &model.Option{SubmittableID: q.SubmittableID, Text: "Two", Score: 2}); err != nil {
		t.Fatalf("AddOption: %v", err)
	}

	found, err := repo.FindByID(ctx, q.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found.Title != "New" || len(found.Submittable.Options) != 2 || found.Submittable.MaxScore() != 2 {
		t.Fatalf("unexpected question %+v", found)
	}
}
