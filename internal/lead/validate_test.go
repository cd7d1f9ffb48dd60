package lead

import (
	"testing"

	"scorecard-engine/internal/model"
)

func validLead() model.Lead {
	return model.Lead{
		FullName:    "Jane Doe",
		Email:       "jane@acmecorp.com",
		Company:     "Acme Corp",
		Designation: "CISO",
		CompanySize: "101-250",
	}
}

func TestValidateAcceptsWorkEmail(t *testing.T) {
	if errs := Validate(validLead()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateRejectsPersonalEmail(t *testing.T) {
	for _, email := range []string{
		"a@gmail.com",
		"a@yahoo.com",
		"a@hotmail.com",
		"a@outlook.com",
		"a@aol.com",
		"a@icloud.com",
		"a@GMAIL.com",
	} {
		l := validLead()
		l.Email = email
		errs := Validate(l)
		if len(errs) != 1 || errs[0].Field != "email" {
			t.Fatalf("%s: expected one email error, got %v", email, errs)
		}
		if errs[0].Message != "Please use your work email" {
			t.Fatalf("%s: unexpected message %q", email, errs[0].Message)
		}
	}
}

func TestValidateRejectsMalformedEmail(t *testing.T) {
	for _, email := range []string{"not-an-email", "a@b", "a b@c.com", "@c.com"} {
		l := validLead()
		l.Email = email
		if errs := Validate(l); len(errs) != 1 || errs[0].Field != "email" {
			t.Fatalf("%s: expected one email error, got %v", email, errs)
		}
	}
}

func TestValidateRequiredFields(t *testing.T) {
	errs := Validate(model.Lead{})
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors for an empty lead, got %d: %v", len(errs), errs)
	}

	fields := map[string]bool{}
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, f := range []string{"full_name", "email", "company", "designation"} {
		if !fields[f] {
			t.Fatalf("missing error for %s", f)
		}
	}
}

func TestValidateCompanySizeOptional(t *testing.T) {
	l := validLead()
	l.CompanySize = ""
	if errs := Validate(l); len(errs) != 0 {
		t.Fatalf("company size must be optional, got %v", errs)
	}
}
