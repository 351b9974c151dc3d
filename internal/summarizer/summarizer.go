// Package summarizer holds the strategies that turn a question's answers into
// a single display value.
package summarizer

import (
	"strings"

	"github.com/lshigami/Surveyor/internal/model"
)

const (
	KeyBreakdown  = "breakdown"
	KeyMostRecent = "most_recent"
	KeyUserAnswer = "user_answer"
)

// Breakdown aggregates every respondent's answer.
type Breakdown struct{}

func (Breakdown) Summarize(q *model.Question) string {
	return q.Breakdown()
}

// MostRecent shows the latest answer.
type MostRecent struct{}

func (MostRecent) Summarize(q *model.Question) string {
	return q.MostRecentAnswerText()
}

// UserAnswer shows one user's own answer.
type UserAnswer struct {
	UserID uint
}

func (s UserAnswer) Summarize(q *model.Question) string {
	return q.AnswerTextFor(s.UserID)
}

// New returns the summarizer registered under key. viewer is the requesting
// user and is required by the user_answer summarizer.
func New(key string, viewer *uint) (model.Summarizer, error) {
	switch strings.TrimSpace(key) {
	case KeyBreakdown:
		return Breakdown{}, nil
	case KeyMostRecent:
		return MostRecent{}, nil
	case KeyUserAnswer:
		if viewer == nil {
			return nil, &model.ConfigurationError{Kind: model.ErrSummarizerNeedsViewer, Value: key}
		}
		return UserAnswer{UserID: *viewer}, nil
	}
	return nil, &model.ConfigurationError{Kind: model.ErrUnknownSummarizer, Value: key}
}
