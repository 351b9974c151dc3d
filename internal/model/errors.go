package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrOptionNotFound means a multiple choice answer matched none of the options.
	ErrOptionNotFound = errors.New("no option matches answer text")

	// ErrNonNumericAnswer means a scale answer is not an integer.
	ErrNonNumericAnswer = errors.New("scale answer is not an integer")

	// ErrNotMultipleChoice is returned when options are added to a question of another type.
	ErrNotMultipleChoice = errors.New("question does not accept options")

	ErrUnknownSubmittableType = errors.New("unknown submittable type")
	ErrUnknownSummarizer      = errors.New("unknown summarizer")
	ErrSummarizerNeedsViewer  = errors.New("summarizer requires a viewer")
)

// FieldError is a single failed rule on one attribute.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every failed rule of a record so callers can
// redisplay the attempted input.
type ValidationError struct {
	Fields []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// Add appends a field error.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Empty reports whether no errors were collected.
func (e *ValidationError) Empty() bool { return len(e.Fields) == 0 }

// OrNil returns nil when nothing was collected, so a *ValidationError is
// never returned as a non-nil error interface holding an empty value.
func (e *ValidationError) OrNil() error {
	if e == nil || e.Empty() {
		return nil
	}
	return e
}

// ConfigurationError reports a programmer or configuration mistake such as an
// unrecognized type or summarizer key.
type ConfigurationError struct {
	Kind  error
	Value string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Value)
}

func (e *ConfigurationError) Unwrap() error { return e.Kind }
