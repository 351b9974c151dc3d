package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/Surveyor/internal/dto"
	"github.com/lshigami/Surveyor/internal/model"
	"github.com/lshigami/Surveyor/internal/testutil"
)

func TestSurveyServiceCreateAndList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	author, err := f.users.CreateUser(ctx, dto.UserCreateDTO{Email: "Author@Example.com", FirstName: "Ada", LastName: "L"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if author.Email != "author@example.com" || author.FullName != "Ada L" {
		t.Fatalf("unexpected user %+v", author)
	}
	if _, err := f.users.CreateUser(ctx, dto.UserCreateDTO{Email: "author@example.com"}); !hasFieldError(err, "email") {
		t.Fatalf("expected duplicate email error, got %v", err)
	}

	if _, err := f.surveys.CreateSurvey(ctx, dto.SurveyCreateDTO{Title: " ", AuthorID: author.ID}); !hasFieldError(err, "title") {
		t.Fatalf("expected blank title error, got %v", err)
	}
	if _, err := f.surveys.CreateSurvey(ctx, dto.SurveyCreateDTO{Title: "Orphan", AuthorID: 404}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected author not found, got %v", err)
	}

	created, err := f.surveys.CreateSurvey(ctx, dto.SurveyCreateDTO{Title: "Lunch", AuthorID: author.ID})
	if err != nil {
		t.Fatalf("CreateSurvey: %v", err)
	}
	list, err := f.surveys.GetAllSurveys(ctx)
	if err != nil || len(list) != 1 || list[0].ID != created.ID || list[0].QuestionCount != 0 {
		t.Fatalf("GetAllSurveys=%+v,%v", list, err)
	}
}

func TestSurveyServiceGetSummaries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	s := seedScoredSurvey(t, f)
	alice := testutil.CreateUser(t, f.db, "alice@example.com")
	bob := testutil.CreateUser(t, f.db, "bob@example.com")

	complete := func(userID uint, answers ...dto.AnswerDTO) {
		if _, err := f.completions.CompleteSurvey(ctx, s.survey.ID, dto.CompletionCreateDTO{UserID: userID, Answers: answers}); err != nil {
			t.Fatalf("CompleteSurvey: %v", err)
		}
	}
	complete(alice.ID, dto.AnswerDTO{QuestionID: s.choice, Text: "Soup"}, dto.AnswerDTO{QuestionID: s.rating, Text: "5"})
	complete(bob.ID, dto.AnswerDTO{QuestionID: s.choice, Text: "Pasta"}, dto.AnswerDTO{QuestionID: s.rating, Text: "2"}, dto.AnswerDTO{QuestionID: s.comment, Text: "Cold"})

	all, err := f.surveys.GetSummaries(ctx, s.survey.ID, "breakdown", nil, false)
	if err != nil {
		t.Fatalf("GetSummaries: %v", err)
	}
	want := []model.Summary{
		{Title: "Dish", Value: "50% Soup, 50% Pasta"},
		{Title: "Rating", Value: "Average: 3.50"},
		{Title: "Comments", Value: "Cold"},
	}
	if len(all.Summaries) != len(want) {
		t.Fatalf("got %d summaries", len(all.Summaries))
	}
	for i := range want {
		if all.Summaries[i] != want[i] {
			t.Fatalf("summary %d = %+v want %+v", i, all.Summaries[i], want[i])
		}
	}

	viewer := alice.ID
	own, err := f.surveys.GetSummaries(ctx, s.survey.ID, "user_answer", &viewer, false)
	if err != nil {
		t.Fatalf("GetSummaries user_answer: %v", err)
	}
	if own.Summaries[0].Value != "Soup" || own.Summaries[1].Value != "5" || own.Summaries[2].Value != model.NoAnswerText {
		t.Fatalf("unexpected own summaries %+v", own.Summaries)
	}

	unhidden, err := f.surveys.GetSummaries(ctx, s.survey.ID, "most_recent", &viewer, true)
	if err != nil {
		t.Fatalf("GetSummaries most_recent: %v", err)
	}
	if unhidden.Summaries[2].Value != "Cold" {
		t.Fatalf("unanswered question hidden despite unanswered=true: %+v", unhidden.Summaries[2])
	}

	if _, err := f.surveys.GetSummaries(ctx, s.survey.ID, "median", nil, false); !errors.Is(err, model.ErrUnknownSummarizer) {
		t.Fatalf("expected unknown summarizer, got %v", err)
	}
	if _, err := f.surveys.GetSummaries(ctx, s.survey.ID, "user_answer", nil, false); !errors.Is(err, model.ErrSummarizerNeedsViewer) {
		t.Fatalf("expected missing viewer, got %v", err)
	}
}
