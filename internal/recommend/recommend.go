// Package recommend derives the prioritized remediation list from a scored
// assessment. Templates are fixed per section; ordering follows catalog
// section order, never score order.
package recommend

import "scorecard-engine/internal/model"

type template struct {
	Title       string
	Description string
}

// Two templates per section, appended when the section lands in one of the
// two worst bands.
var sectionTemplates = map[string][2]template{
	"complianceMaturity": {
		{
			Title:       "Establish a Formal Compliance Program",
			Description: "Designate a compliance owner, develop a structured approach to compliance certifications, and implement regular training cycles.",
		},
		{
			Title:       "Document and Standardize Security Policies",
			Description: "Create or update security policies with regular review cycles and establish employee training programs that reflect current compliance requirements.",
		},
	},
	"toolingAutomation": {
		{
			Title:       "Implement a Compliance Management Platform",
			Description: "Replace manual processes and spreadsheets with a dedicated compliance automation solution that centralizes evidence collection across frameworks.",
		},
		{
			Title:       "Automate Evidence Collection and Compliance Monitoring",
			Description: "Reduce manual effort and human error by implementing automated evidence collection and real-time alerts for control failures or compliance gaps.",
		},
	},
	"securityOperations": {
		{
			Title:       "Establish Regular Control Reviews and Testing",
			Description: "Implement automated access reviews and continuous control monitoring with comprehensive documentation of controls that is regularly updated.",
		},
		{
			Title:       "Create and Test Incident Response Procedures",
			Description: "Develop detailed incident response documentation and conduct regular tabletop exercises to ensure effectiveness of your security operations.",
		},
	},
	"auditReadiness": {
		{
			Title:       "Develop a Comprehensive Audit Readiness Program",
			Description: "Create a structured approach to prepare for audits more efficiently with regular risk assessments and streamlined evidence retrieval.",
		},
		{
			Title:       "Implement Risk-based Control Monitoring",
			Description: "Map business risks to specific controls, establish a maintained risk register, and develop processes to identify and evaluate emerging risks.",
		},
	},
	"changeManagement": {
		{
			Title:       "Establish Formal Change Management Processes",
			Description: "Implement structured approval workflows for infrastructure and IT changes with clear risk tracking protocols and cross-team communication.",
		},
		{
			Title:       "Enhance Vendor Risk Management",
			Description: "Develop comprehensive vendor assessment procedures, implement ongoing monitoring, and regularly review contracts for compliance requirements.",
		},
	},
}

var gapAssessment = model.Recommendation{
	Title:       "Conduct a Comprehensive Compliance Gap Assessment",
	Description: "Perform a thorough review of your compliance program to identify all gaps and develop a remediation plan with clear ownership and timelines.",
	Priority:    model.PriorityHigh,
}

// Fillers keep the list at three entries minimum for respondents who scored
// well everywhere. Always the same two items, in this order.
var fillers = []model.Recommendation{
	{
		Title:       "Streamline Compliance Workflows with Clear Ownership",
		Description: "Define control ownership across teams, establish accountability metrics, and optimize your compliance processes to reduce manual effort.",
		Priority:    model.PriorityMedium,
	},
	{
		Title:       "Enhance Security Questionnaire Management",
		Description: "Implement a standardized process for managing incoming security questionnaires, ensuring accurate responses, and tracking completion.",
		Priority:    model.PriorityLow,
	},
}

// Generate builds the recommendation list for a scored assessment. The
// result always has at least three entries.
func Generate(score model.OverallScore) []model.Recommendation {
	var recs []model.Recommendation

	for _, section := range score.Sections {
		if !section.RiskLevel.WorseThanModerate() {
			continue
		}
		templates, ok := sectionTemplates[section.ID]
		if !ok {
			continue
		}
		priority := model.PriorityMedium
		if section.RiskLevel == model.RiskCritical {
			priority = model.PriorityHigh
		}
		for _, t := range templates {
			recs = append(recs, model.Recommendation{
				Title:       t.Title,
				Description: t.Description,
				Priority:    priority,
			})
		}
	}

	if score.OverallRiskLevel.WorseThanModerate() {
		recs = append(recs, gapAssessment)
	}

	for i := 0; len(recs) < 3; i++ {
		recs = append(recs, fillers[i%len(fillers)])
	}

	return recs
}
