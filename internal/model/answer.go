package model

import (
	"fmt"

	json "github.com/goccy/go-json"
)

type AnswerKind int

const (
	AnswerNone AnswerKind = iota
	AnswerChoice
	AnswerChoices
	AnswerNumber
)

// AnswerValue is a tagged union over the three shapes a question answer can
// take on the wire: a single option value, a list of option values, or a
// number. The zero value means "unanswered".
type AnswerValue struct {
	Kind    AnswerKind
	Choice  string
	Choices []string
	Number  float64
}

func Choice(v string) AnswerValue {
	return AnswerValue{Kind: AnswerChoice, Choice: v}
}

func Choices(vs ...string) AnswerValue {
	return AnswerValue{Kind: AnswerChoices, Choices: vs}
}

func Number(n float64) AnswerValue {
	return AnswerValue{Kind: AnswerNumber, Number: n}
}

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Choice(s)
		return nil
	}

	var ss []string
	if err := json.Unmarshal(data, &ss); err == nil {
		*v = Choices(ss...)
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Number(n)
		return nil
	}

	return fmt.Errorf("answer must be a string, a string array, or a number")
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case AnswerChoice:
		return json.Marshal(v.Choice)
	case AnswerChoices:
		return json.Marshal(v.Choices)
	case AnswerNumber:
		return json.Marshal(v.Number)
	default:
		return []byte("null"), nil
	}
}

// SectionAnswers maps question id to the answer given.
type SectionAnswers map[string]AnswerValue

// AnswerStore maps section id to that section's answers. The engine only
// reads it; absence of a key means the question is unanswered.
type AnswerStore map[string]SectionAnswers

// ChoiceOf returns the single-choice answer for (sectionID, questionID), or
// "" when the question is unanswered or answered with a different shape.
func (s AnswerStore) ChoiceOf(sectionID, questionID string) string {
	v, ok := s[sectionID][questionID]
	if !ok || v.Kind != AnswerChoice {
		return ""
	}
	return v.Choice
}

func (s AnswerStore) Get(sectionID, questionID string) (AnswerValue, bool) {
	v, ok := s[sectionID][questionID]
	return v, ok
}
