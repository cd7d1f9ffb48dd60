package model

// Lead is the contact record collected before the questionnaire begins.
// CompanySize is optional; everything else is required.
type Lead struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Company     string `json:"company"`
	Designation string `json:"designation"`
	CompanySize string `json:"company_size,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
