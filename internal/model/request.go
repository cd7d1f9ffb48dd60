package model

type AssessmentRequest struct {
	Lead Lead `json:"lead"`

	// CatalogVersion selects the question-set edition. Empty means the
	// latest edition.
	CatalogVersion string `json:"catalog_version,omitempty"`

	Sections AnswerStore `json:"sections"`
}
