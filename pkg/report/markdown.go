package report

import (
	"fmt"
	"io"

	"github.com/toyinlola/clausecheck/pkg/category"
	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// MarkdownFormatter writes a report as Markdown suitable for sharing with
// reviewers or attaching to a contract record.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a Markdown report formatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the report as Markdown to the given writer.
func (f *MarkdownFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w, report)
	f.writeSummaryTable(w, report)
	f.writeClauses(w, report)
	f.writeExecutive(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *MarkdownFormatter) writeHeader(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "# ClauseCheck Contract Risk Report %s\n\n", ratingBadge(report.Rating))
}

func (f *MarkdownFormatter) writeSummaryTable(w io.Writer, report *interfaces.Report) {
	b := report.Breakdown

	fmt.Fprintln(w, "| Metric | Value |")
	fmt.Fprintln(w, "|--------|-------|")
	fmt.Fprintf(w, "| **Risk Score** | %.2f/100 %s |\n", b.NormalizedScore, ratingBadge(report.Rating))
	fmt.Fprintf(w, "| **Rating** | %s |\n", report.Rating)
	fmt.Fprintf(w, "| **Clauses** | %d |\n", len(report.Clauses))
	fmt.Fprintf(w, "| **High-Risk Clauses** | %d |\n", b.HighRiskCount)
	fmt.Fprintf(w, "| **Calibrated Clauses** | %d |\n", b.CalibratedClauses)
	fmt.Fprintf(w, "| **Total Severity** | %.4f of %.4f max |\n", b.TotalSeverityScore, b.MaxPossibleScore)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "*%s — `%s`*\n\n", b.ScoringMethod, b.Formula)
}

func (f *MarkdownFormatter) writeClauses(w io.Writer, report *interfaces.Report) {
	risky := 0
	for _, c := range report.Clauses {
		if c.Assessment.Severity != interfaces.SeverityNone {
			risky++
		}
	}
	if risky == 0 {
		fmt.Fprintln(w, "> No risky clauses found.")
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "## Clause Findings (%d)\n\n", risky)

	for i, c := range report.Clauses {
		a := c.Assessment
		if a.Severity == interfaces.SeverityNone {
			continue
		}

		fmt.Fprintf(w, "<details>\n")
		fmt.Fprintf(w, "<summary><strong>Clause %d</strong> [%s] — %s (score %.4f)</summary>\n\n",
			i+1, a.Severity, a.Label, a.SeverityScore)

		fmt.Fprintf(w, "> %s\n\n", a.Text)
		fmt.Fprintf(w, "- Category: %s\n", category.Description(a.Label))
		fmt.Fprintf(w, "- Confidence: %.2f (calibrated %.2f)\n", a.Confidence, a.CalibratedConfidence)
		fmt.Fprintf(w, "- Exposure: %s (x%.1f)\n", a.FinancialExposure.Level, a.FinancialExposure.Multiplier)
		if a.ExtractedMetadata.MonetaryValue > 0 {
			fmt.Fprintf(w, "- Monetary value: $%.0f\n", a.ExtractedMetadata.MonetaryValue)
		}
		for _, trigger := range a.HighRiskDetection.Triggers {
			fmt.Fprintf(w, "- Trigger: %s\n", trigger)
		}
		for _, m := range c.Mitigations {
			fmt.Fprintf(w, "- **[%s] %s:** %s\n", m.Priority, m.Name, m.Action)
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, "</details>")
		fmt.Fprintln(w)
	}
}

func (f *MarkdownFormatter) writeExecutive(w io.Writer, report *interfaces.Report) {
	exec := report.Executive
	if exec.TotalMitigationItems == 0 && len(exec.RecommendedReviews) == 0 {
		return
	}

	fmt.Fprintln(w, "## Executive Summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "**Estimated effort:** %s\n\n", exec.EstimatedEffort)

	if len(exec.CriticalActions) > 0 {
		fmt.Fprintln(w, "### Critical Actions")
		fmt.Fprintln(w)
		for _, s := range exec.CriticalActions {
			fmt.Fprintf(w, "1. **%s** — %s\n", s.Name, s.Action)
		}
		fmt.Fprintln(w)
	}

	if len(exec.HighPriorityActions) > 0 {
		fmt.Fprintln(w, "### High Priority Actions")
		fmt.Fprintln(w)
		for _, s := range exec.HighPriorityActions {
			fmt.Fprintf(w, "1. **%s** — %s\n", s.Name, s.Action)
		}
		fmt.Fprintln(w)
	}

	if len(exec.RecommendedReviews) > 0 {
		fmt.Fprintln(w, "### Recommended Reviews")
		fmt.Fprintln(w)
		for _, r := range exec.RecommendedReviews {
			fmt.Fprintf(w, "- %s\n", r)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "> %s\n\n", exec.RiskAcceptanceThreshold)
}

func (f *MarkdownFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "*Report ID: %s | Generated: %s*\n",
		report.ID, report.Timestamp.Format("2006-01-02 15:04:05"))
}

// ratingBadge returns a text badge based on the rating.
func ratingBadge(rating interfaces.RiskRating) string {
	switch rating {
	case interfaces.RatingGreen:
		return "🟢"
	case interfaces.RatingYellow:
		return "🟡"
	case interfaces.RatingRed:
		return "🔴"
	default:
		return "⚪"
	}
}
