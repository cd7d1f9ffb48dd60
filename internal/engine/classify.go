package engine

import "scorecard-engine/internal/model"

// Classify maps a score against its maximum onto a risk band. Lower score
// means worse. The same thresholds apply to every section and to the
// overall score: >=75% Low, >=50% Moderate, >=25% High, below that
// Critical.
func Classify(score, maxScore int) model.RiskLevel {
	if maxScore <= 0 {
		return model.RiskCritical
	}

	percentage := float64(score) / float64(maxScore) * 100

	switch {
	case percentage >= 75:
		return model.RiskLow
	case percentage >= 50:
		return model.RiskModerate
	case percentage >= 25:
		return model.RiskHigh
	default:
		return model.RiskCritical
	}
}
