package model

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func intPtr(v int) *int { return &v }

func answers(texts ...string) []Answer {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]Answer, len(texts))
	for i, text := range texts {
		out[i] = Answer{ID: uint(i + 1), Text: text, CreatedAt: start.Add(time.Duration(i) * time.Minute)}
	}
	return out
}

func multipleChoice(options ...Option) *Submittable {
	return &Submittable{Type: SubmittableMultipleChoice, Options: options}
}

func scale(min, max int) *Submittable {
	return &Submittable{Type: SubmittableScale, Minimum: intPtr(min), Maximum: intPtr(max)}
}

func TestParseSubmittableType(t *testing.T) {
	for _, typ := range SubmittableTypes {
		got, err := ParseSubmittableType(string(typ))
		if err != nil || got != typ {
			t.Fatalf("ParseSubmittableType(%q)=%q,%v", typ, got, err)
		}
	}

	_, err := ParseSubmittableType("essay")
	var cerr *ConfigurationError
	if !errors.As(err, &cerr) || !errors.Is(err, ErrUnknownSubmittableType) {
		t.Fatalf("expected configuration error for unknown type, got %v", err)
	}
	if cerr.Value != "essay" {
		t.Fatalf("configuration error value = %q", cerr.Value)
	}
}

func TestSubmittableScore(t *testing.T) {
	mc := multipleChoice(Option{Text: "Yes", Score: 3}, Option{Text: "No", Score: -1})
	cases := []struct {
		name    string
		s       *Submittable
		text    string
		want    int
		wantErr error
	}{
		{"open scores nothing", &Submittable{Type: SubmittableOpen}, "anything", 0, nil},
		{"choice", mc, "Yes", 3, nil},
		{"negative choice", mc, "No", -1, nil},
		{"unknown choice", mc, "Maybe", 0, ErrOptionNotFound},
		{"scale value", scale(1, 10), "7", 7, nil},
		{"scale with spaces", scale(1, 10), " 4 ", 4, nil},
		{"scale not a number", scale(1, 10), "seven", 0, ErrNonNumericAnswer},
	}
	for _, c := range cases {
		got, err := c.s.Score(c.text)
		if c.wantErr != nil {
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("%s: err=%v, want %v", c.name, err, c.wantErr)
			}
			continue
		}
		if err != nil || got != c.want {
			t.Fatalf("%s: Score(%q)=%d,%v want %d", c.name, c.text, got, err, c.want)
		}
	}
}

func TestSubmittableMaxScore(t *testing.T) {
	cases := []struct {
		name string
		s    *Submittable
		want int
	}{
		{"open", &Submittable{Type: SubmittableOpen}, 0},
		{"choice", multipleChoice(Option{Text: "a", Score: 1}, Option{Text: "b", Score: 5}), 5},
		{"all negative", multipleChoice(Option{Text: "a", Score: -3}, Option{Text: "b", Score: -1}), -1},
		{"no options", multipleChoice(), 0},
		{"scale", scale(1, 7), 7},
	}
	for _, c := range cases {
		if got := c.s.MaxScore(); got != c.want {
			t.Fatalf("%s: MaxScore()=%d want %d", c.name, got, c.want)
		}
	}
}

func TestSubmittableBreakdown(t *testing.T) {
	cases := []struct {
		name    string
		s       *Submittable
		answers []Answer
		want    string
	}{
		{"open joins in order", &Submittable{Type: SubmittableOpen}, answers("Hey", "Hi", "Hello"), "Hey, Hi, Hello"},
		{"open without answers", &Submittable{Type: SubmittableOpen}, nil, ""},
		{"choice percentages", multipleChoice(), answers("Red", "Blue", "Red"), "67% Red, 33% Blue"},
		{"choice ties keep first answered", multipleChoice(), answers("Blue", "Red"), "50% Blue, 50% Red"},
		{"choice without answers", multipleChoice(), nil, ""},
		{"scale average", scale(1, 10), answers("5", "7", "8"), "Average: 6.67"},
		{"scale skips non numbers", scale(1, 10), answers("4", "n/a"), "Average: 4.00"},
		{"scale without answers", scale(1, 10), nil, ""},
	}
	for _, c := range cases {
		if got := c.s.Breakdown(c.answers); got != c.want {
			t.Fatalf("%s: Breakdown()=%q want %q", c.name, got, c.want)
		}
	}
}

func TestBreakdownUsesCreationOrder(t *testing.T) {
	a := answers("Hey", "Hi", "Hello")
	reversed := []Answer{a[2], a[1], a[0]}
	s := &Submittable{Type: SubmittableOpen}
	if got := s.Breakdown(reversed); got != "Hey, Hi, Hello" {
		t.Fatalf("Breakdown()=%q", got)
	}
	if reversed[0].Text != "Hello" {
		t.Fatalf("Breakdown reordered its input")
	}
}

func TestSubmittableSteps(t *testing.T) {
	if got := scale(1, 5).Steps(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("Steps()=%v", got)
	}
	if got := scale(3, 3).Steps(); !reflect.DeepEqual(got, []int{3}) {
		t.Fatalf("Steps() for single value=%v", got)
	}
	if got := scale(5, 1).Steps(); len(got) != 0 {
		t.Fatalf("Steps() for inverted bounds=%v", got)
	}
	if got := (&Submittable{Type: SubmittableScale}).Steps(); len(got) != 0 {
		t.Fatalf("Steps() without bounds=%v", got)
	}
	if got := scale(math.MaxInt-1, math.MaxInt).Steps(); !reflect.DeepEqual(got, []int{math.MaxInt - 1, math.MaxInt}) {
		t.Fatalf("Steps() at the top of int=%v", got)
	}
	if got := scale(-MaxScaleWidth/2, MaxScaleWidth/2).Steps(); len(got) != MaxScaleWidth+1 {
		t.Fatalf("Steps() for widest scale has %d values", len(got))
	}
	for _, bounds := range [][2]int{{0, 10_000_000_000}, {math.MinInt, math.MaxInt}, {0, MaxScaleWidth + 1}} {
		if got := scale(bounds[0], bounds[1]).Steps(); len(got) != 0 {
			t.Fatalf("Steps() for %v has %d values, want none", bounds, len(got))
		}
	}
}

func TestNewSubmittableKeepsOnlyTypeAttributes(t *testing.T) {
	attrs := SubmittableAttributes{
		Minimum: intPtr(1),
		Maximum: intPtr(5),
		Options: []OptionAttributes{{Text: " Yes ", Score: 1}, {Text: ""}, {Text: "No"}},
	}

	mc := NewSubmittable(SubmittableMultipleChoice, attrs)
	if mc.Minimum != nil || mc.Maximum != nil {
		t.Fatalf("multiple choice kept scale bounds")
	}
	if len(mc.Options) != 2 || mc.Options[0].Text != "Yes" || mc.Options[1].Text != "No" {
		t.Fatalf("unexpected options %+v", mc.Options)
	}

	sc := NewSubmittable(SubmittableScale, attrs)
	if len(sc.Options) != 0 || *sc.Minimum != 1 || *sc.Maximum != 5 {
		t.Fatalf("unexpected scale %+v", sc)
	}

	open := NewSubmittable(SubmittableOpen, attrs)
	if len(open.Options) != 0 || open.Minimum != nil {
		t.Fatalf("unexpected open %+v", open)
	}
}

func TestOptionsForForm(t *testing.T) {
	if got := multipleChoice().OptionsForForm(); len(got) != 3 {
		t.Fatalf("expected three blank options, got %d", len(got))
	}
	mc := multipleChoice(Option{Text: "Only"})
	if got := mc.OptionsForForm(); len(got) != 1 || got[0].Text != "Only" {
		t.Fatalf("OptionsForForm()=%+v", got)
	}
}
