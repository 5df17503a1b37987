package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

// TerminalFormatter writes a color-coded report to a terminal.
type TerminalFormatter struct{}

// NewTerminalFormatter creates a terminal report formatter.
func NewTerminalFormatter() *TerminalFormatter {
	return &TerminalFormatter{}
}

// Format writes the report to the given writer using ANSI colors.
func (f *TerminalFormatter) Format(w io.Writer, report *interfaces.Report) error {
	f.writeHeader(w)
	f.writeSummary(w, report)
	f.writeClauses(w, report)
	f.writeExecutive(w, report)
	f.writeFooter(w, report)
	return nil
}

func (f *TerminalFormatter) writeHeader(w io.Writer) {
	fmt.Fprintf(w, "\n%s%s══════════════════════════════════════════%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s  ClauseCheck Contract Risk Report%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "%s%s══════════════════════════════════════════%s\n\n", colorBold, colorCyan, colorReset)
}

func (f *TerminalFormatter) writeSummary(w io.Writer, report *interfaces.Report) {
	b := report.Breakdown
	color := ratingColor(report.Rating)

	fmt.Fprintf(w, "  %s%sRisk Score: %.2f/100 [%s]%s\n\n",
		colorBold, color, b.NormalizedScore, report.Rating, colorReset)

	if len(report.Clauses) == 0 {
		fmt.Fprintf(w, "  %sNo clauses analyzed.%s\n\n", colorDim, colorReset)
		return
	}

	fmt.Fprintf(w, "  %d clauses | %d high risk | %d calibrated\n\n",
		len(report.Clauses), b.HighRiskCount, b.CalibratedClauses)
}

func (f *TerminalFormatter) writeClauses(w io.Writer, report *interfaces.Report) {
	// Group risky clauses by severity, High first.
	for _, sev := range []interfaces.Severity{
		interfaces.SeverityHigh,
		interfaces.SeverityMedium,
		interfaces.SeverityLow,
	} {
		var indexes []int
		for i, c := range report.Clauses {
			if c.Assessment.Severity == sev {
				indexes = append(indexes, i)
			}
		}
		if len(indexes) == 0 {
			continue
		}

		color := severityColor(sev)
		fmt.Fprintf(w, "  %s%s── %s (%d) ──%s\n", colorBold, color, strings.ToUpper(string(sev)), len(indexes), colorReset)

		for _, i := range indexes {
			c := report.Clauses[i]
			a := c.Assessment

			fmt.Fprintf(w, "    %s[clause %d]%s %s (score %.4f)\n", color, i+1, colorReset, a.Label, a.SeverityScore)
			fmt.Fprintf(w, "      %s%s%s\n", colorDim, truncateText(a.Text, 100), colorReset)
			for _, trigger := range a.HighRiskDetection.Triggers {
				fmt.Fprintf(w, "      %s! %s%s\n", colorRed, trigger, colorReset)
			}
			for _, m := range c.Mitigations {
				fmt.Fprintf(w, "      %s→ [%s] %s%s\n", colorCyan, m.Priority, m.Name, colorReset)
			}
			fmt.Fprintln(w)
		}
	}
}

func (f *TerminalFormatter) writeExecutive(w io.Writer, report *interfaces.Report) {
	exec := report.Executive
	if exec.TotalMitigationItems == 0 && len(exec.RecommendedReviews) == 0 {
		return
	}

	fmt.Fprintf(w, "  %s%s── EXECUTIVE SUMMARY ──%s\n", colorBold, colorCyan, colorReset)
	fmt.Fprintf(w, "    Effort: %s\n", exec.EstimatedEffort)
	for _, r := range exec.RecommendedReviews {
		fmt.Fprintf(w, "    • %s\n", r)
	}
	fmt.Fprintln(w)
}

func (f *TerminalFormatter) writeFooter(w io.Writer, report *interfaces.Report) {
	fmt.Fprintf(w, "  %s%s──────────────────────────────────────────%s\n", colorDim, colorCyan, colorReset)
	fmt.Fprintf(w, "  %sClauses: %d | Mitigations: %d | Report: %s%s\n",
		colorDim, len(report.Clauses), report.Executive.TotalMitigationItems, report.ID, colorReset)
	fmt.Fprintf(w, "  %sGenerated: %s%s\n\n",
		colorDim, report.Timestamp.Format("2006-01-02 15:04:05"), colorReset)
}

// ratingColor returns the ANSI color for a rating.
func ratingColor(r interfaces.RiskRating) string {
	switch r {
	case interfaces.RatingGreen:
		return colorGreen
	case interfaces.RatingYellow:
		return colorYellow
	case interfaces.RatingRed:
		return colorRed
	default:
		return colorReset
	}
}

// severityColor returns the ANSI color for a severity level.
func severityColor(s interfaces.Severity) string {
	switch s {
	case interfaces.SeverityHigh:
		return colorRed
	case interfaces.SeverityMedium:
		return colorYellow
	case interfaces.SeverityLow:
		return colorDim
	default:
		return colorReset
	}
}

// truncateText shortens clause text for single-line terminal display.
func truncateText(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
