// Package interfaces defines the shared types and contracts for all ClauseCheck modules.
// This package has ZERO dependencies on any other pkg/ package.
// All cross-module communication goes through types defined here.
package interfaces

import "time"

// RiskCategory is the high-level risk category assigned to a clause.
type RiskCategory string

const (
	CategoryLiability   RiskCategory = "Liability Risk"
	CategoryTermination RiskCategory = "Termination Risk"
	CategoryDataPrivacy RiskCategory = "Data Privacy Risk"
	CategoryPayment     RiskCategory = "Payment Risk"
	CategoryIP          RiskCategory = "IP Risk"
	CategoryNeutral     RiskCategory = "Neutral"
)

// Categories lists all known risk categories in display order.
func Categories() []RiskCategory {
	return []RiskCategory{
		CategoryLiability,
		CategoryTermination,
		CategoryDataPrivacy,
		CategoryPayment,
		CategoryIP,
		CategoryNeutral,
	}
}

// Severity is the bucketed per-clause risk level.
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
	SeverityNone   Severity = "None"
)

// ExposureLevel classifies the financial scale implied by clause text.
type ExposureLevel string

const (
	ExposureLow      ExposureLevel = "low"
	ExposureMedium   ExposureLevel = "medium"
	ExposureHigh     ExposureLevel = "high"
	ExposureCritical ExposureLevel = "critical"
)

// Priority ranks mitigation strategies.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
)

// ClauseInput is one classified contract clause as supplied by the
// external classifier. Immutable once received.
type ClauseInput struct {
	Text       string       `json:"clause"`
	Label      RiskCategory `json:"label"`
	Confidence float64      `json:"confidence"`
}

// Durations holds time periods extracted from clause text.
// Zero means "not found", never an error.
type Durations struct {
	Days             int `json:"days"`
	Months           int `json:"months"`
	Years            int `json:"years"`
	NoticePeriodDays int `json:"notice_period_days"`
}

// ExtractedMetadata holds structured signals pulled from clause text.
type ExtractedMetadata struct {
	MonetaryValue float64   `json:"monetary_value"`
	Durations     Durations `json:"durations"`
}

// ExposureAssessment buckets the monetary exposure of a clause.
type ExposureAssessment struct {
	Level         ExposureLevel `json:"level"`
	Multiplier    float64       `json:"multiplier"`
	MonetaryValue float64       `json:"monetary_value"`
}

// Adjustment is one applied confidence calibration step.
type Adjustment struct {
	Factor string  `json:"factor"`
	Delta  float64 `json:"adjustment"`
}

// CalibrationResult is the audit trail of confidence calibration.
// Adjustments appear in rule-evaluation order; skipped rules are omitted.
type CalibrationResult struct {
	Original       float64      `json:"original_confidence"`
	Calibrated     float64      `json:"calibrated_confidence"`
	Adjustments    []Adjustment `json:"adjustments,omitempty"`
	KeywordMatches int          `json:"keyword_matches"`
	MonetaryValue  float64      `json:"monetary_value"`
}

// HighRiskDetection records category-specific trigger matches.
type HighRiskDetection struct {
	IsHighRisk       bool     `json:"is_high_risk"`
	Triggers         []string `json:"risk_triggers"`
	SeverityOverride Severity `json:"severity_override,omitempty"`
}

// RiskAssessment is the full per-clause scoring record. Created once per
// clause by the scorer; never mutated afterward.
type RiskAssessment struct {
	ClauseInput

	CalibratedConfidence float64            `json:"calibrated_confidence"`
	Impact               float64            `json:"impact"`
	AdjustedImpact       float64            `json:"adjusted_impact"`
	Likelihood           float64            `json:"likelihood"`
	SeverityScore        float64            `json:"severity_score"`
	Severity             Severity           `json:"severity"`
	FinancialExposure    ExposureAssessment `json:"financial_exposure"`
	ExtractedMetadata    ExtractedMetadata  `json:"extracted_metadata"`
	HighRiskDetection    HighRiskDetection  `json:"high_risk_detection"`
	Calibration          CalibrationResult  `json:"calibration_details"`
}

// ContractRiskBreakdown aggregates all per-clause assessments into a single
// normalized contract score with full formula disclosure.
type ContractRiskBreakdown struct {
	ScoringMethod       string                    `json:"scoring_method"`
	Formula             string                    `json:"formula"`
	TotalSeverityScore  float64                   `json:"total_severity_score"`
	MaxPossibleScore    float64                   `json:"max_possible_score"`
	NormalizedScore     float64                   `json:"normalized_score"`
	CategoryWeights     map[RiskCategory]float64  `json:"category_weights"`
	ExposureMultipliers map[ExposureLevel]float64 `json:"exposure_multipliers"`
	HighRiskCount       int                       `json:"high_risk_count"`
	CalibratedClauses   int                       `json:"calibrated_clauses"`
}

// MitigationStrategy is one actionable recommendation for a risky clause.
// Identity for deduplication is (Name, first 50 chars of Action).
type MitigationStrategy struct {
	Priority  Priority `json:"priority"`
	Name      string   `json:"strategy"`
	Action    string   `json:"action"`
	Rationale string   `json:"rationale"`
}

// ExecutiveMitigationSummary is the contract-wide mitigation rollup.
type ExecutiveMitigationSummary struct {
	CriticalActions         []MitigationStrategy `json:"critical_actions"`
	HighPriorityActions     []MitigationStrategy `json:"high_priority_actions"`
	RecommendedReviews      []string             `json:"recommended_reviews"`
	TotalMitigationItems    int                  `json:"total_mitigation_items"`
	EstimatedEffort         string               `json:"estimated_effort"`
	RiskAcceptanceThreshold string               `json:"risk_acceptance_threshold"`
}

// RiskRating represents the overall contract risk rating.
// Unlike a trust score, a HIGHER normalized score means MORE risk.
type RiskRating string

const (
	RatingGreen  RiskRating = "GREEN"  // Low contract risk
	RatingYellow RiskRating = "YELLOW" // Review recommended
	RatingRed    RiskRating = "RED"    // High risk, escalate before signing
)

// ClauseReport pairs a scored clause with its mitigation recommendations.
type ClauseReport struct {
	Assessment  RiskAssessment       `json:"assessment"`
	Mitigations []MitigationStrategy `json:"mitigations,omitempty"`
}

// Report is the final output of a ClauseCheck analysis run.
// Clauses are in the same order as the input batch.
type Report struct {
	ID        string                     `json:"id"`
	Timestamp time.Time                  `json:"timestamp"`
	Rating    RiskRating                 `json:"rating"`
	Breakdown ContractRiskBreakdown      `json:"risk_breakdown"`
	Clauses   []ClauseReport             `json:"clauses"`
	Executive ExecutiveMitigationSummary `json:"executive_summary"`
	Summary   string                     `json:"summary"`
	Duration  time.Duration              `json:"duration"`
}
