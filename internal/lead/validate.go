// Package lead validates the contact record collected before any questions
// are shown. Validation runs at the transport boundary; invalid leads never
// reach the engine.
package lead

import (
	"regexp"
	"strings"

	"scorecard-engine/internal/model"
)

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Free and personal mailbox providers are not accepted as work email.
var personalDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"aol.com":     true,
	"icloud.com":  true,
}

// Validate checks required fields and the work-email rule. An empty result
// means the lead may proceed to the questionnaire.
func Validate(l model.Lead) []model.FieldError {
	var errs []model.FieldError

	if strings.TrimSpace(l.FullName) == "" {
		errs = append(errs, model.FieldError{Field: "full_name", Message: "Full name is required"})
	}

	switch {
	case strings.TrimSpace(l.Email) == "":
		errs = append(errs, model.FieldError{Field: "email", Message: "Email is required"})
	case !ValidEmail(l.Email):
		errs = append(errs, model.FieldError{Field: "email", Message: "Please use your work email"})
	}

	if strings.TrimSpace(l.Company) == "" {
		errs = append(errs, model.FieldError{Field: "company", Message: "Company name is required"})
	}

	if strings.TrimSpace(l.Designation) == "" {
		errs = append(errs, model.FieldError{Field: "designation", Message: "Designation is required"})
	}

	return errs
}

// ValidEmail reports whether the address has a plausible shape and does not
// belong to a personal mailbox provider.
func ValidEmail(email string) bool {
	if !emailShape.MatchString(email) {
		return false
	}
	at := strings.LastIndex(email, "@")
	domain := strings.ToLower(email[at+1:])
	return !personalDomains[domain]
}
