package summarizer

import (
	"errors"
	"testing"
	"time"

	"github.com/lshigami/Surveyor/internal/model"
)

func question() *model.Question {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &model.Question{
		Title:       "Favorite color",
		Submittable: &model.Submittable{Type: model.SubmittableMultipleChoice},
		Answers: []model.Answer{
			{ID: 1, Text: "Red", CreatedAt: start, Completion: &model.Completion{UserID: 1}},
			{ID: 2, Text: "Blue", CreatedAt: start.Add(time.Minute), Completion: &model.Completion{UserID: 2}},
			{ID: 3, Text: "Red", CreatedAt: start.Add(2 * time.Minute), Completion: &model.Completion{UserID: 3}},
		},
	}
}

func TestSummarizers(t *testing.T) {
	q := question()
	cases := []struct {
		name string
		s    model.Summarizer
		want string
	}{
		{"breakdown", Breakdown{}, "67% Red, 33% Blue"},
		{"most recent", MostRecent{}, "Red"},
		{"user answer", UserAnswer{UserID: 2}, "Blue"},
		{"user without answer", UserAnswer{UserID: 9}, model.MissingAnswerText},
	}
	for _, c := range cases {
		got := q.SummaryUsing(c.s)
		if got.Title != "Favorite color" || got.Value != c.want {
			t.Fatalf("%s: got %+v want %q", c.name, got, c.want)
		}
	}
}

func TestNew(t *testing.T) {
	viewer := uint(2)
	cases := []struct {
		key    string
		viewer *uint
		want   model.Summarizer
	}{
		{KeyBreakdown, nil, Breakdown{}},
		{KeyMostRecent, nil, MostRecent{}},
		{KeyUserAnswer, &viewer, UserAnswer{UserID: 2}},
	}
	for _, c := range cases {
		got, err := New(c.key, c.viewer)
		if err != nil || got != c.want {
			t.Fatalf("New(%q)=%v,%v", c.key, got, err)
		}
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New("median", nil)
	var cerr *model.ConfigurationError
	if !errors.As(err, &cerr) || !errors.Is(err, model.ErrUnknownSummarizer) {
		t.Fatalf("expected unknown summarizer, got %v", err)
	}

	_, err = New(KeyUserAnswer, nil)
	if !errors.Is(err, model.ErrSummarizerNeedsViewer) {
		t.Fatalf("expected missing viewer error, got %v", err)
	}
}
