package model

// NoAnswerText replaces the summary of a question the viewer has not answered.
const NoAnswerText = "You haven't answered this question"

// UnansweredQuestionHider keeps viewers from seeing summaries of questions
// they have not answered themselves.
type UnansweredQuestionHider struct {
	Summarizer Summarizer
}

// SummarizeOrHide summarizes the question, or hides it from a viewer who has
// not answered it. A nil viewer sees everything.
func (h UnansweredQuestionHider) SummarizeOrHide(q *Question, viewer *uint) Summary {
	if viewer != nil && !q.AnsweredBy(*viewer) {
		return h.HideAnswerToQuestion(q)
	}
	return q.SummaryUsing(h.Summarizer)
}

func (h UnansweredQuestionHider) HideAnswerToQuestion(q *Question) Summary {
	return Summary{Title: q.Title, Value: NoAnswerText}
}
