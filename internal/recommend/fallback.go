package recommend

import "scorecard-engine/internal/model"

// Fallback is the pre-baked neutral result the transport layer substitutes
// when the engine fails. The flow must never dead-end on a crash.
func Fallback() (model.OverallScore, []model.Recommendation) {
	score := model.OverallScore{
		OverallScore:     50,
		OverallRiskLevel: model.RiskModerate,
		Sections: []model.SectionScore{
			{ID: "complianceMaturity", Title: "Compliance Program Maturity", Score: 10, MaxScore: 20, RiskLevel: model.RiskModerate},
			{ID: "toolingAutomation", Title: "Tooling & Automation", Score: 10, MaxScore: 20, RiskLevel: model.RiskModerate},
			{ID: "securityOperations", Title: "Security Operations & Controls", Score: 10, MaxScore: 20, RiskLevel: model.RiskModerate},
			{ID: "auditReadiness", Title: "Audit Readiness & Risk Management", Score: 10, MaxScore: 20, RiskLevel: model.RiskModerate},
			{ID: "changeManagement", Title: "Change Management & Vendor Risk", Score: 10, MaxScore: 20, RiskLevel: model.RiskModerate},
		},
	}

	recs := []model.Recommendation{
		{
			Title:       "Implement a Centralized Compliance Platform to Reduce Manual Audit Debt",
			Description: "Replace manual processes and spreadsheets with a dedicated compliance automation solution.",
			Priority:    model.PriorityHigh,
		},
		{
			Title:       "Automate Evidence Collection to Cut Down Operational Audit Debt",
			Description: "Reduce manual effort and human error by automating the collection of compliance evidence.",
			Priority:    model.PriorityMedium,
		},
		{
			Title:       "Establish Regular Access Reviews",
			Description: "Implement quarterly or more frequent access reviews to maintain proper access control.",
			Priority:    model.PriorityMedium,
		},
	}

	return score, recs
}
