package model

type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// WorseThanModerate reports whether the band is one of the two worst bands,
// the trigger condition for remediation recommendations.
func (r RiskLevel) WorseThanModerate() bool {
	return r == RiskHigh || r == RiskCritical
}

type SectionScore struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Score     int       `json:"score"`
	MaxScore  int       `json:"max_score"`
	RiskLevel RiskLevel `json:"risk_level"`
}

type OverallScore struct {
	OverallScore     int            `json:"overall_score"`
	OverallRiskLevel RiskLevel      `json:"overall_risk_level"`
	Sections         []SectionScore `json:"sections"`
}

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Recommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
}
