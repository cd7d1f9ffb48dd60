package model

type AssessmentResponse struct {
	AssessmentMetadata AssessmentMetadata `json:"assessment_metadata"`
	AssessmentResult   AssessmentResult   `json:"assessment_result"`
}

type AssessmentMetadata struct {
	AssessmentID          string `json:"assessment_id"`
	CatalogVersion        string `json:"catalog_version"`
	AssessmentStartedAt   string `json:"assessment_started_at"`
	AssessmentCompletedAt string `json:"assessment_completed_at"`
	AssessmentDurationMs  int64  `json:"assessment_duration_ms"`
	AssessmentOutcome     string `json:"assessment_outcome"`
}

type AssessmentResult struct {
	Score           OverallScore        `json:"score"`
	Recommendations []Recommendation    `json:"recommendations"`
	Messages        []AssessmentMessage `json:"messages"`
	BookingURL      string              `json:"booking_url,omitempty"`
	ReportFilename  string              `json:"report_filename,omitempty"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type ValidationErrorResponse struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields"`
}

const (
	OutcomeSuccess = "SUCCESS"

	// OutcomeDegraded marks a response built from the predefined neutral
	// fallback after the engine failed.
	OutcomeDegraded = "DEGRADED"
)
