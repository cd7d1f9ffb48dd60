package catalog

import (
	"fmt"

	"scorecard-engine/internal/model"
)

// ValidateAnswers checks an answer store against an edition and reports
// every mismatch as a WARNING. Mismatched entries simply contribute zero
// points; the engine never rejects an answer store.
func ValidateAnswers(ed *Edition, store model.AnswerStore) []model.AssessmentMessage {
	var msgs []model.AssessmentMessage

	for sectionID, answers := range store {
		section, ok := ed.Section(sectionID)
		if !ok {
			msgs = append(msgs, model.AssessmentMessage{
				Level:   model.LevelWarning,
				Code:    "UNKNOWN_SECTION",
				Message: fmt.Sprintf("Section %s is not part of catalog %s", sectionID, ed.Version),
			})
			continue
		}
		for questionID, value := range answers {
			q, ok := section.Question(questionID)
			if !ok {
				msgs = append(msgs, model.AssessmentMessage{
					Level:   model.LevelWarning,
					Code:    "UNKNOWN_QUESTION",
					Message: fmt.Sprintf("Question %s.%s is not part of catalog %s", sectionID, questionID, ed.Version),
				})
				continue
			}
			if m := checkShape(sectionID, q, value); m != nil {
				msgs = append(msgs, *m)
			}
		}
	}

	return msgs
}

func checkShape(sectionID string, q *Question, v model.AnswerValue) *model.AssessmentMessage {
	switch q.Type {
	case SingleChoice:
		if v.Kind != model.AnswerChoice {
			return shapeMismatch(sectionID, q, "a single option value")
		}
		if !q.hasOption(v.Choice) {
			return unknownOption(sectionID, q, v.Choice)
		}
	case MultiChoice:
		if v.Kind != model.AnswerChoices {
			return shapeMismatch(sectionID, q, "a list of option values")
		}
		for _, c := range v.Choices {
			if !q.hasOption(c) {
				return unknownOption(sectionID, q, c)
			}
		}
	case NumericRange:
		if v.Kind != model.AnswerNumber {
			return shapeMismatch(sectionID, q, "a number")
		}
		if v.Number < q.Min || v.Number > q.Max {
			return &model.AssessmentMessage{
				Level:   model.LevelWarning,
				Code:    "NUMBER_OUT_OF_RANGE",
				Message: fmt.Sprintf("Answer to %s.%s is outside [%g, %g]", sectionID, q.ID, q.Min, q.Max),
			}
		}
	}
	return nil
}

func (q *Question) hasOption(value string) bool {
	for _, o := range q.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

func shapeMismatch(sectionID string, q *Question, want string) *model.AssessmentMessage {
	return &model.AssessmentMessage{
		Level:   model.LevelWarning,
		Code:    "ANSWER_SHAPE_MISMATCH",
		Message: fmt.Sprintf("Answer to %s.%s must be %s", sectionID, q.ID, want),
	}
}

func unknownOption(sectionID string, q *Question, value string) *model.AssessmentMessage {
	return &model.AssessmentMessage{
		Level:   model.LevelWarning,
		Code:    "UNKNOWN_OPTION",
		Message: fmt.Sprintf("Answer %q to %s.%s does not match any option", value, sectionID, q.ID),
	}
}
