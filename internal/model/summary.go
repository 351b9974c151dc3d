package model

// Summary is the summarized value of one question.
type Summary struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// Summarizer computes a display value for one question across its answers.
type Summarizer interface {
	Summarize(q *Question) string
}

// SummaryOptions controls how a survey is summarized. When AnsweredBy is set,
// questions that user has not answered are hidden.
type SummaryOptions struct {
	AnsweredBy *uint
}
