// Package inference backfills answers for questions that were retired from
// the questionnaire but still carry points, so section maximums stay stable
// across catalog editions. Each inferred field has its own named rule over
// one or two source answers; rules run after all direct answers are read,
// in catalog order.
package inference

import "scorecard-engine/internal/model"

// FieldRef names one (section, question) pair in the answer store.
type FieldRef struct {
	SectionID  string
	QuestionID string
}

// Rule derives a surrogate option value for one retired question. Infer
// returns false when the source answers give nothing to go on; the question
// then counts as unanswered.
type Rule struct {
	Target  FieldRef
	Sources []FieldRef
	Infer   func(store model.AnswerStore) (string, bool)
}

var registry = map[string][]Rule{
	"2025.1": {
		{
			Target:  FieldRef{"toolingAutomation", "evidenceCollection"},
			Sources: []FieldRef{{"toolingAutomation", "workflows"}},
			Infer:   inferEvidenceCollection,
		},
		{
			Target: FieldRef{"securityOperations", "incidentResponse"},
			Sources: []FieldRef{
				{"complianceMaturity", "complianceTeam"},
				{"complianceMaturity", "securityPolicies"},
			},
			Infer: inferIncidentResponse,
		},
		{
			Target:  FieldRef{"auditReadiness", "riskAssessment"},
			Sources: []FieldRef{{"auditReadiness", "lastAudit"}},
			Infer:   inferRiskAssessment,
		},
		{
			Target:  FieldRef{"changeManagement", "changeApproval"},
			Sources: []FieldRef{{"complianceMaturity", "securityPolicies"}},
			Infer:   inferChangeApproval,
		},
	},
}

// Rules returns the inference rules for a catalog edition. Editions that
// ask every scored question directly have none.
func Rules(version string) []Rule {
	return registry[version]
}

// Lookup finds the rule targeting one retired question, if any.
func Lookup(version, sectionID, questionID string) (Rule, bool) {
	for _, r := range registry[version] {
		if r.Target.SectionID == sectionID && r.Target.QuestionID == questionID {
			return r, true
		}
	}
	return Rule{}, false
}

// Evidence-collection quality follows workflow automation: a team that
// automated its workflows has automated evidence capture with them.
func inferEvidenceCollection(store model.AnswerStore) (string, bool) {
	switch store.ChoiceOf("toolingAutomation", "workflows") {
	case "fullyAutomated":
		return "automated", true
	case "partiallyAutomated":
		return "centralizedManual", true
	case "manual":
		return "adhoc", true
	}
	return "", false
}

// Incident-response maturity combines compliance ownership with policy
// documentation. Both answers are ranked 0-2 and the ranks are summed:
// 4 means documented and tested, 3 documented, 2 informal, below that
// nothing can be inferred.
func inferIncidentResponse(store model.AnswerStore) (string, bool) {
	teamRank := 0
	switch store.ChoiceOf("complianceMaturity", "complianceTeam") {
	case "dedicatedTeam", "dedicatedPerson":
		teamRank = 2
	case "partTime":
		teamRank = 1
	}

	policyRank := 0
	switch store.ChoiceOf("complianceMaturity", "securityPolicies") {
	case "documentedAndReviewed":
		policyRank = 2
	case "documented":
		policyRank = 1
	}

	switch teamRank + policyRank {
	case 4:
		return "documentedAndTested", true
	case 3:
		return "documented", true
	case 2:
		return "informal", true
	}
	return "", false
}

// Risk-assessment cadence follows audit recency: a recent audit implies a
// recent risk assessment.
func inferRiskAssessment(store model.AnswerStore) (string, bool) {
	switch store.ChoiceOf("auditReadiness", "lastAudit") {
	case "sixMonths":
		return "quarterly", true
	case "oneYear":
		return "biannual", true
	case "twoYears":
		return "annual", true
	}
	return "", false
}

// Change-approval formality follows policy documentation.
func inferChangeApproval(store model.AnswerStore) (string, bool) {
	switch store.ChoiceOf("complianceMaturity", "securityPolicies") {
	case "documentedAndReviewed":
		return "formalAutomated", true
	case "documented":
		return "formalManual", true
	case "outdated":
		return "informal", true
	}
	return "", false
}
