// Package report assembles contract risk reports from scored assessments
// and formats them as JSON, Markdown, or terminal output.
package report

import (
	"crypto/rand"
	"fmt"
	"time"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
	"github.com/toyinlola/clausecheck/pkg/mitigate"
	"github.com/toyinlola/clausecheck/pkg/scorer"
)

// Generator builds reports from assessments and a contract breakdown.
type Generator struct {
	redThreshold    float64
	yellowThreshold float64
}

// GeneratorOption configures the Generator.
type GeneratorOption func(*Generator)

// WithRatingThresholds overrides the default RED/YELLOW rating thresholds
// on the normalized risk score.
func WithRatingThresholds(red, yellow float64) GeneratorOption {
	return func(g *Generator) {
		g.redThreshold = red
		g.yellowThreshold = yellow
	}
}

// NewGenerator creates a report generator.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{
		redThreshold:    scorer.DefaultRedThreshold,
		yellowThreshold: scorer.DefaultYellowThreshold,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate produces a full report: per-clause assessments with mitigation
// recommendations (input order preserved), the contract breakdown, the
// executive mitigation summary, and an overall rating.
func (g *Generator) Generate(assessments []interfaces.RiskAssessment, breakdown interfaces.ContractRiskBreakdown) *interfaces.Report {
	start := time.Now()

	clauses := make([]interfaces.ClauseReport, len(assessments))
	for i, a := range assessments {
		clauses[i] = interfaces.ClauseReport{
			Assessment: a,
			Mitigations: mitigate.Strategies(
				a.Label,
				a.Severity,
				a.HighRiskDetection.Triggers,
				a.ExtractedMetadata.MonetaryValue,
				a.ExtractedMetadata.Durations,
			),
		}
	}

	rating := scorer.RatingFromScore(breakdown.NormalizedScore, g.redThreshold, g.yellowThreshold)

	return &interfaces.Report{
		ID:        generateID(),
		Timestamp: time.Now(),
		Rating:    rating,
		Breakdown: breakdown,
		Clauses:   clauses,
		Executive: mitigate.ExecutiveSummary(assessments),
		Summary:   buildSummary(rating, breakdown, assessments),
		Duration:  time.Since(start),
	}
}

// buildSummary creates a one-line summary of the contract risk.
func buildSummary(rating interfaces.RiskRating, breakdown interfaces.ContractRiskBreakdown, assessments []interfaces.RiskAssessment) string {
	if len(assessments) == 0 {
		return fmt.Sprintf("Contract Risk: %.2f/100 [%s] — no clauses", breakdown.NormalizedScore, rating)
	}

	return fmt.Sprintf("Contract Risk: %.2f/100 [%s] — %d of %d clauses high risk",
		breakdown.NormalizedScore, rating, breakdown.HighRiskCount, len(assessments))
}

// generateID creates a unique report identifier.
func generateID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b) // best-effort; crypto/rand is reliable
	return fmt.Sprintf("rpt-%x", b)
}
