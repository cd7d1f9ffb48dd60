// Package engine turns a frozen answer store into the weighted audit debt
// score. Scoring is pure: the same answers always produce the same result,
// and malformed input degrades to zero contribution instead of failing.
package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"scorecard-engine/internal/catalog"
	"scorecard-engine/internal/inference"
	"scorecard-engine/internal/model"
	"scorecard-engine/internal/recommend"
)

// Score computes per-section scores and the weighted overall score for one
// catalog edition. Sections in the store that the edition does not know are
// ignored; unanswered questions contribute zero. Retired questions score
// through their inference rule.
func Score(ed *catalog.Edition, answers model.AnswerStore) model.OverallScore {
	sections := make([]model.SectionScore, 0, len(ed.Sections))
	weighted := 0.0

	for i := range ed.Sections {
		sec := &ed.Sections[i]
		score := sectionScore(ed.Version, sec, answers)

		sections = append(sections, model.SectionScore{
			ID:        sec.ID,
			Title:     sec.Title,
			Score:     score,
			MaxScore:  sec.MaxScore,
			RiskLevel: Classify(score, sec.MaxScore),
		})

		if sec.MaxScore > 0 {
			weighted += float64(score) / float64(sec.MaxScore) * float64(sec.Weight)
		}
	}

	// Round once, on the weighted sum.
	overall := int(math.Round(weighted))

	return model.OverallScore{
		OverallScore:     overall,
		OverallRiskLevel: Classify(overall, 100),
		Sections:         sections,
	}
}

func sectionScore(version string, sec *catalog.Section, answers model.AnswerStore) int {
	score := 0
	for i := range sec.Questions {
		q := &sec.Questions[i]

		var value model.AnswerValue
		if q.Retired {
			if rule, ok := inference.Lookup(version, sec.ID, q.ID); ok {
				if surrogate, ok := rule.Infer(answers); ok {
					value = model.Choice(surrogate)
				}
			}
		} else if v, ok := answers.Get(sec.ID, q.ID); ok {
			value = v
		}

		score += q.PointsFor(value)
	}

	if score > sec.MaxScore {
		score = sec.MaxScore
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Process runs a full assessment: edition dispatch, answer validation,
// scoring, and recommendations, wrapped in response metadata.
func Process(req *model.AssessmentRequest) *model.AssessmentResponse {
	start := time.Now()

	var msgs []model.AssessmentMessage

	ed := catalog.Default()
	version := req.CatalogVersion
	if version != "" {
		if known, ok := catalog.Get(version); ok {
			ed = known
		} else {
			msgs = append(msgs, model.AssessmentMessage{
				Level:   model.LevelWarning,
				Code:    "UNKNOWN_CATALOG_VERSION",
				Message: "Unknown catalog version " + version + ", using " + ed.Version,
			})
		}
	}

	msgs = append(msgs, catalog.ValidateAnswers(ed, req.Sections)...)
	for i := range msgs {
		msgs[i].ID = i
	}
	if msgs == nil {
		msgs = []model.AssessmentMessage{}
	}

	score := Score(ed, req.Sections)
	recs := recommend.Generate(score)

	elapsed := time.Since(start)
	now := time.Now().UTC()

	return &model.AssessmentResponse{
		AssessmentMetadata: model.AssessmentMetadata{
			AssessmentID:          uuid.New().String(),
			CatalogVersion:        ed.Version,
			AssessmentStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			AssessmentCompletedAt: now.Format(time.RFC3339),
			AssessmentDurationMs:  elapsed.Milliseconds(),
			AssessmentOutcome:     model.OutcomeSuccess,
		},
		AssessmentResult: model.AssessmentResult{
			Score:           score,
			Recommendations: recs,
			Messages:        msgs,
		},
	}
}
