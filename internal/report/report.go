// Package report renders the downloadable assessment report. The artifact
// is a cosmetic, paginated plain-text document; the one invariant that
// matters is that content never silently overflows a page.
package report

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"scorecard-engine/internal/model"
)

var riskDescriptions = map[model.RiskLevel]string{
	model.RiskLow:      "Your organization has minimal audit debt. Continue with your current practices.",
	model.RiskModerate: "Your organization has some audit debt that should be addressed in the coming months.",
	model.RiskHigh:     "Your organization has significant audit debt that requires immediate attention.",
	model.RiskCritical: "Your organization has critical audit debt that poses serious risks to your business.",
}

var businessInsights = map[model.RiskLevel]string{
	model.RiskLow:      "Your organization is in good standing with minimal audit debt. Continue to maintain your current compliance practices.",
	model.RiskModerate: "Your organization has some audit debt that could become problematic over time. Consider addressing these issues in the next few months.",
	model.RiskHigh:     "Your organization has significant audit debt that may already be impacting your business operations. Immediate attention is recommended.",
	model.RiskCritical: "Your organization has critical audit debt that poses serious risks to your business continuity, customer trust, and ability to close deals.",
}

const closingInsight = "Audit debt can lead to failed audits, lost deals, operational inefficiencies, and heightened security risks. Addressing these issues now can save significant time and resources in the future."

var businessImpacts = []string{
	"Failed compliance audits",
	"Lost business opportunities",
	"Costly remediation efforts",
	"Security vulnerabilities",
	"Operational inefficiencies",
}

// Render lays the report out block by block. Every block passes through the
// same pagination check; none is split mid-block.
func Render(l model.Lead, score model.OverallScore, recs []model.Recommendation, generatedAt time.Time) *Document {
	b := newBuilder()

	title := "Sprinto Audit Debt Scorecard Report"
	b.block(
		title,
		strings.Repeat("=", len(title)),
		"Generated on: "+generatedAt.Format("January 2, 2006"),
	)

	contact := []string{
		"CONTACT INFORMATION",
		"-------------------",
		"Name: " + l.FullName,
		"Company: " + l.Company,
		"Designation: " + l.Designation,
		"Email: " + l.Email,
	}
	if l.CompanySize != "" {
		contact = append(contact, "Company size: "+l.CompanySize+" employees")
	}
	b.block(contact...)

	results := []string{
		"AUDIT DEBT ASSESSMENT RESULTS",
		"-----------------------------",
		fmt.Sprintf("Overall Risk Level: %s (%d%%)", score.OverallRiskLevel, score.OverallScore),
	}
	results = append(results, wrap(riskDescriptions[score.OverallRiskLevel], ContentWidth)...)
	b.block(results...)

	table := []string{
		"SECTION SCORES",
		"--------------",
	}
	for _, s := range score.Sections {
		pct := 0
		if s.MaxScore > 0 {
			pct = int(float64(s.Score)/float64(s.MaxScore)*100 + 0.5)
		}
		table = append(table, fmt.Sprintf("%s: %s (%d%%)", s.Title, s.RiskLevel, pct))
	}
	b.block(table...)

	insight := []string{
		"WHAT THIS MEANS FOR YOUR BUSINESS",
		"---------------------------------",
	}
	insight = append(insight, wrap(businessInsights[score.OverallRiskLevel], ContentWidth)...)
	insight = append(insight, "")
	insight = append(insight, wrap(closingInsight, ContentWidth)...)
	b.block(insight...)

	b.block(
		"KEY RECOMMENDATIONS",
		"-------------------",
	)
	for _, r := range recs {
		lines := []string{fmt.Sprintf("[%s Priority] %s", r.Priority, r.Title)}
		lines = append(lines, wrap(r.Description, ContentWidth)...)
		b.block(lines...)
	}

	impact := []string{
		"BUSINESS IMPACT",
		"---------------",
		"Unaddressed audit debt can lead to:",
	}
	for _, item := range businessImpacts {
		impact = append(impact, "- "+item)
	}
	b.block(impact...)

	b.block(
		"NEXT STEPS",
		"----------",
		"Contact Sprinto to automate your compliance program and eliminate",
		"audit debt.",
		"Visit: www.sprinto.com/get-a-demo",
	)

	b.block(fmt.Sprintf("(c) %d Sprinto. All rights reserved.", generatedAt.Year()))

	doc := b.doc
	return &doc
}

// Generate produces the downloadable artifact. It is a single-shot
// operation: it either yields the document bytes or fails, and the caller
// decides how to surface the failure.
func Generate(l model.Lead, score model.OverallScore, recs []model.Recommendation, generatedAt time.Time) ([]byte, error) {
	doc := Render(l, score, recs, generatedAt)
	if len(doc.Pages) == 0 {
		return nil, fmt.Errorf("report: empty document")
	}
	return []byte(doc.Text()), nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Filename derives the download name from the company, whitespace collapsed
// to underscores.
func Filename(company string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(company), "_") + "_Audit_Debt_Report.txt"
}
