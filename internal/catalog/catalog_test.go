package catalog

import (
	"testing"

	"scorecard-engine/internal/model"
)

func TestEditionsLoad(t *testing.T) {
	if _, ok := Get("2024.2"); !ok {
		t.Fatal("edition 2024.2 missing")
	}
	if _, ok := Get("2025.1"); !ok {
		t.Fatal("edition 2025.1 missing")
	}
	if Default().Version != "2025.1" {
		t.Fatalf("expected default edition 2025.1, got %s", Default().Version)
	}
}

func TestWeightsSumToHundred(t *testing.T) {
	for _, version := range []string{"2024.2", "2025.1"} {
		ed, _ := Get(version)
		sum := 0
		for _, s := range ed.Sections {
			sum += s.Weight
		}
		if sum != 100 {
			t.Fatalf("edition %s: weights sum to %d", version, sum)
		}
	}
}

func TestSectionMaximumsMatchPointTables(t *testing.T) {
	for _, version := range []string{"2024.2", "2025.1"} {
		ed, _ := Get(version)
		for _, s := range ed.Sections {
			best := 0
			for i := range s.Questions {
				best += s.Questions[i].BestPoints()
			}
			if best != s.MaxScore {
				t.Fatalf("edition %s section %s: best attainable %d != max_score %d", version, s.ID, best, s.MaxScore)
			}
		}
	}
}

func TestRetiredQuestionsOnlyInFiveSectionEdition(t *testing.T) {
	ed, _ := Get("2024.2")
	for _, s := range ed.Sections {
		for _, q := range s.Questions {
			if q.Retired {
				t.Fatalf("edition 2024.2 question %s.%s must not be retired", s.ID, q.ID)
			}
		}
	}

	ed, _ = Get("2025.1")
	retired := map[string]bool{}
	for _, s := range ed.Sections {
		for _, q := range s.Questions {
			if q.Retired {
				retired[s.ID+"."+q.ID] = true
			}
		}
	}
	want := []string{
		"toolingAutomation.evidenceCollection",
		"securityOperations.incidentResponse",
		"auditReadiness.riskAssessment",
		"changeManagement.changeApproval",
	}
	if len(retired) != len(want) {
		t.Fatalf("expected %d retired questions, got %v", len(want), retired)
	}
	for _, key := range want {
		if !retired[key] {
			t.Fatalf("expected %s to be retired", key)
		}
	}
}

func TestPointsFor(t *testing.T) {
	ed := Default()
	sec, _ := ed.Section("complianceMaturity")
	q, _ := sec.Question("certifications")

	if got := q.PointsFor(model.Choice("multiple")); got != 5 {
		t.Fatalf("multiple: expected 5 points, got %d", got)
	}
	if got := q.PointsFor(model.Choice("inProgress")); got != 2 {
		t.Fatalf("inProgress: expected 2 points, got %d", got)
	}
	if got := q.PointsFor(model.Choice("bogus")); got != 0 {
		t.Fatalf("unknown option: expected 0 points, got %d", got)
	}
	if got := q.PointsFor(model.AnswerValue{}); got != 0 {
		t.Fatalf("unanswered: expected 0 points, got %d", got)
	}
}

func TestPointsForRejectsMismatchedShape(t *testing.T) {
	ed := Default()
	sec, _ := ed.Section("complianceMaturity")
	q, _ := sec.Question("certifications")

	// A single-choice question answered with a repeated array must not
	// accumulate points per element.
	if got := q.PointsFor(model.Choices("multiple", "multiple", "multiple", "multiple")); got != 0 {
		t.Fatalf("array answer to a single-choice question: expected 0 points, got %d", got)
	}
	if got := q.PointsFor(model.Number(5)); got != 0 {
		t.Fatalf("numeric answer to a single-choice question: expected 0 points, got %d", got)
	}
}

func TestPointsForMultiChoice(t *testing.T) {
	q := Question{
		ID:   "frameworks",
		Type: MultiChoice,
		Options: []Option{
			{Value: "soc2", Points: 2},
			{Value: "iso27001", Points: 2},
			{Value: "hipaa", Points: 1},
		},
	}

	if got := q.PointsFor(model.Choices("soc2", "iso27001")); got != 4 {
		t.Fatalf("two selections: expected 4 points, got %d", got)
	}
	if got := q.PointsFor(model.Choices("soc2", "soc2", "soc2")); got != 2 {
		t.Fatalf("repeated selection must count once, got %d", got)
	}
	if got := q.PointsFor(model.Choices("soc2", "iso27001", "hipaa")); got != q.BestPoints() {
		t.Fatalf("all selections: expected best total %d, got %d", q.BestPoints(), got)
	}
	if got := q.PointsFor(model.Choice("soc2")); got != 0 {
		t.Fatalf("single value to a multi-choice question: expected 0 points, got %d", got)
	}
	if got := q.BestPoints(); got != 5 {
		t.Fatalf("multi-choice best total must sum options, got %d", got)
	}
}

func TestPointsForNumericRange(t *testing.T) {
	q := Question{
		ID:   "auditHours",
		Type: NumericRange,
		Min:  0,
		Max:  200,
		Bands: []NumericBand{
			{Min: 0, Max: 40, Points: 5},
			{Min: 41, Max: 120, Points: 3},
			{Min: 121, Max: 200, Points: 0},
		},
	}

	if got := q.PointsFor(model.Number(30)); got != 5 {
		t.Fatalf("in-band number: expected 5 points, got %d", got)
	}
	if got := q.PointsFor(model.Number(500)); got != 0 {
		t.Fatalf("out-of-band number: expected 0 points, got %d", got)
	}
	if got := q.PointsFor(model.Choice("30")); got != 0 {
		t.Fatalf("string answer to a numeric question: expected 0 points, got %d", got)
	}
}

func TestViewStripsRetiredQuestions(t *testing.T) {
	ed := Default()
	view := View(ed)

	for _, s := range view.Sections {
		for _, q := range s.Questions {
			if q.Retired {
				t.Fatalf("view exposes retired question %s.%s", s.ID, q.ID)
			}
		}
	}

	sec, _ := ed.Section("toolingAutomation")
	var viewSec *Section
	for i := range view.Sections {
		if view.Sections[i].ID == "toolingAutomation" {
			viewSec = &view.Sections[i]
		}
	}
	if viewSec == nil {
		t.Fatal("toolingAutomation missing from view")
	}
	if len(viewSec.Questions) != len(sec.Questions)-1 {
		t.Fatalf("expected %d asked questions, got %d", len(sec.Questions)-1, len(viewSec.Questions))
	}
}

func TestValidateAnswers(t *testing.T) {
	ed := Default()

	msgs := ValidateAnswers(ed, model.AnswerStore{
		"complianceMaturity": {
			"certifications": model.Choice("multiple"),
			"ghostQuestion":  model.Choice("x"),
			"complianceTeam": model.Choices("dedicatedTeam"),
		},
		"ghostSection": {"q": model.Choice("v")},
	})

	codes := map[string]int{}
	for _, m := range msgs {
		if m.Level != model.LevelWarning {
			t.Fatalf("validation must only warn, got %s for %s", m.Level, m.Code)
		}
		codes[m.Code]++
	}
	if codes["UNKNOWN_QUESTION"] != 1 || codes["UNKNOWN_SECTION"] != 1 || codes["ANSWER_SHAPE_MISMATCH"] != 1 {
		t.Fatalf("unexpected warning codes: %v", codes)
	}
}

func TestValidateAnswersCleanStore(t *testing.T) {
	ed := Default()
	msgs := ValidateAnswers(ed, model.AnswerStore{
		"auditReadiness": {"lastAudit": model.Choice("sixMonths")},
	})
	if len(msgs) != 0 {
		t.Fatalf("expected no warnings, got %v", msgs)
	}
}
