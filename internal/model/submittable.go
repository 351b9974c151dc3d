package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SubmittableType tags the answer semantics of a question.
type SubmittableType string

const (
	SubmittableOpen           SubmittableType = "open"
	SubmittableMultipleChoice SubmittableType = "multiple_choice"
	SubmittableScale          SubmittableType = "scale"
)

// MaxScaleWidth is the largest allowed distance between a scale's bounds.
const MaxScaleWidth = 100

// SubmittableTypes lists every recognized type in display order.
var SubmittableTypes = []SubmittableType{SubmittableOpen, SubmittableMultipleChoice, SubmittableScale}

// ParseSubmittableType maps a type key onto the closed set of types.
func ParseSubmittableType(s string) (SubmittableType, error) {
	t := SubmittableType(strings.TrimSpace(s))
	switch t {
	case SubmittableOpen, SubmittableMultipleChoice, SubmittableScale:
		return t, nil
	}
	return "", &ConfigurationError{Kind: ErrUnknownSubmittableType, Value: s}
}

// Submittable is the type-specific part of a question. Options are only
// meaningful for multiple choice, Minimum and Maximum only for scale.
type Submittable struct {
	ID        uint            `gorm:"primarykey" json:"id"`
	Type      SubmittableType `json:"type" gorm:"type:varchar(32);not null;index" validate:"required,oneof=open multiple_choice scale"`
	Minimum   *int            `json:"minimum,omitempty" validate:"required_if=Type scale"`
	Maximum   *int            `json:"maximum,omitempty" validate:"required_if=Type scale"`
	Options   []Option        `json:"options,omitempty" gorm:"foreignKey:SubmittableID;constraint:OnDelete:CASCADE" validate:"dive"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// SubmittableAttributes is the type-specific input used to build a submittable.
type SubmittableAttributes struct {
	Minimum *int
	Maximum *int
	Options []OptionAttributes
}

// OptionAttributes is the input for one multiple choice option.
type OptionAttributes struct {
	Text  string
	Score int
}

// NewSubmittable builds an unsaved submittable of the given type keeping only
// the attributes that type uses.
func NewSubmittable(t SubmittableType, attrs SubmittableAttributes) *Submittable {
	s := &Submittable{Type: t}
	switch t {
	case SubmittableMultipleChoice:
		for _, o := range attrs.Options {
			text := strings.TrimSpace(o.Text)
			if text == "" && o.Score == 0 {
				continue
			}
			s.Options = append(s.Options, Option{Text: text, Score: o.Score})
		}
	case SubmittableScale:
		s.Minimum = attrs.Minimum
		s.Maximum = attrs.Maximum
	}
	return s
}

// Score converts an answer text into points.
func (s *Submittable) Score(text string) (int, error) {
	switch s.Type {
	case SubmittableOpen:
		return 0, nil
	case SubmittableMultipleChoice:
		for _, o := range s.Options {
			if o.Text == text {
				return o.Score, nil
			}
		}
		return 0, fmt.Errorf("%w: %q", ErrOptionNotFound, text)
	case SubmittableScale:
		n, err := strconv.Atoi(strings.TrimSpace(text))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrNonNumericAnswer, text)
		}
		return n, nil
	}
	return 0, &ConfigurationError{Kind: ErrUnknownSubmittableType, Value: string(s.Type)}
}

// MaxScore is the highest score a single answer can earn.
func (s *Submittable) MaxScore() int {
	switch s.Type {
	case SubmittableMultipleChoice:
		best := 0
		for i, o := range s.Options {
			if i == 0 || o.Score > best {
				best = o.Score
			}
		}
		return best
	case SubmittableScale:
		if s.Maximum != nil {
			return *s.Maximum
		}
	}
	return 0
}

// Breakdown aggregates all answers into one display value.
func (s *Submittable) Breakdown(answers []Answer) string {
	ordered := inCreationOrder(answers)
	switch s.Type {
	case SubmittableOpen:
		texts := make([]string, len(ordered))
		for i, a := range ordered {
			texts[i] = a.Text
		}
		return strings.Join(texts, ", ")
	case SubmittableMultipleChoice:
		return percentBreakdown(ordered)
	case SubmittableScale:
		return averageBreakdown(ordered)
	}
	return ""
}

// Steps returns every selectable value of a scale, both bounds included.
func (s *Submittable) Steps() []int {
	width, ok := s.scaleWidth()
	if !ok || width > MaxScaleWidth {
		return []int{}
	}
	steps := make([]int, 0, width+1)
	for i := int64(0); i <= width; i++ {
		steps = append(steps, *s.Minimum+int(i))
	}
	return steps
}

// scaleWidth returns maximum minus minimum computed without overflow. ok is
// false unless both bounds are set and ordered.
func (s *Submittable) scaleWidth() (width int64, ok bool) {
	if s.Type != SubmittableScale || s.Minimum == nil || s.Maximum == nil || *s.Minimum > *s.Maximum {
		return 0, false
	}
	lo, hi := int64(*s.Minimum), int64(*s.Maximum)
	if lo < 0 && hi > math.MaxInt64+lo {
		return math.MaxInt64, true
	}
	return hi - lo, true
}

// OptionsForForm returns the options to render in an edit form, padding an
// empty multiple choice with three blank options.
func (s *Submittable) OptionsForForm() []Option {
	if len(s.Options) > 0 {
		return s.Options
	}
	return []Option{{}, {}, {}}
}

// percentBreakdown orders groups by descending count; equal counts keep the
// order in which their text was first answered.
func percentBreakdown(answers []Answer) string {
	total := len(answers)
	if total == 0 {
		return ""
	}
	counts := make(map[string]int)
	var texts []string
	for _, a := range answers {
		if _, seen := counts[a.Text]; !seen {
			texts = append(texts, a.Text)
		}
		counts[a.Text]++
	}
	sort.SliceStable(texts, func(i, j int) bool {
		return counts[texts[i]] > counts[texts[j]]
	})
	parts := make([]string, len(texts))
	for i, text := range texts {
		percent := math.Round(100 * float64(counts[text]) / float64(total))
		parts[i] = fmt.Sprintf("%d%% %s", int(percent), text)
	}
	return strings.Join(parts, ", ")
}

// averageBreakdown ignores answers that are not integers.
func averageBreakdown(answers []Answer) string {
	sum, n := 0, 0
	for _, a := range answers {
		v, err := strconv.Atoi(strings.TrimSpace(a.Text))
		if err != nil {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("Average: %.2f", float64(sum)/float64(n))
}

func inCreationOrder(answers []Answer) []Answer {
	ordered := make([]Answer, len(answers))
	copy(ordered, answers)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}
