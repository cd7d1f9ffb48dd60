package report

import (
	"net/url"
	"strconv"

	"scorecard-engine/internal/model"
)

const DefaultBookingBase = "https://sprinto.com/get-a-demo"

// BookingURL builds the demo-booking link for a scored lead. The source tag
// is fixed; company size is appended only when the lead provided one.
func BookingURL(base string, l model.Lead, score int) string {
	if base == "" {
		base = DefaultBookingBase
	}

	params := url.Values{}
	params.Set("name", l.FullName)
	params.Set("email", l.Email)
	params.Set("company", l.Company)
	params.Set("source", "audit_debt_scorecard")
	params.Set("score", strconv.Itoa(score))
	if l.CompanySize != "" {
		params.Set("size", l.CompanySize)
	}

	return base + "?" + params.Encode()
}
