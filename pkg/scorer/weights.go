// Package scorer implements the deterministic risk scoring core: financial
// exposure classification, confidence calibration, high-risk trigger
// detection, per-clause severity scoring, and contract-level aggregation.
package scorer

import "github.com/toyinlola/clausecheck/pkg/interfaces"

// CategoryProfile is the constant data associated with each risk category.
// Initialized once at startup and never mutated.
type CategoryProfile struct {
	BaseImpact         float64
	HighRiskKeywords   []string
	FinancialThreshold float64
}

// categoryProfiles holds the fixed per-category weights and keyword lists.
// FinancialThreshold is descriptive metadata only: exposure bucket
// boundaries are global (see ClassifyExposure), not category-relative.
var categoryProfiles = map[interfaces.RiskCategory]CategoryProfile{
	interfaces.CategoryLiability: {
		BaseImpact: 1.8,
		HighRiskKeywords: []string{
			"indemnif", "unlimited liability", "uncapped liability",
			"shall defend", "hold harmless", "breach of warranty",
			"gross negligence", "willful misconduct",
		},
		FinancialThreshold: 100_000,
	},
	interfaces.CategoryTermination: {
		BaseImpact: 1.7,
		HighRiskKeywords: []string{
			"termination for convenience", "immediate termination",
			"without cause", "at any time", "upon notice",
			"change of control", "material breach", "cure period",
		},
		FinancialThreshold: 50_000,
	},
	interfaces.CategoryDataPrivacy: {
		BaseImpact: 1.5,
		HighRiskKeywords: []string{
			"personal data", "personally identifiable", "pii",
			"gdpr", "ccpa", "data breach", "data protection",
			"privacy policy", "consent", "data subject rights",
			"data processing", "sensitive data", "biometric",
		},
		FinancialThreshold: 500_000,
	},
	interfaces.CategoryPayment: {
		BaseImpact: 1.3,
		HighRiskKeywords: []string{
			"late payment", "penalty", "interest", "liquidated damages",
			"payment terms", "overdue", "default", "acceleration",
			"payment upon demand", "upfront payment",
		},
		FinancialThreshold: 25_000,
	},
	interfaces.CategoryIP: {
		BaseImpact: 1.6,
		HighRiskKeywords: []string{
			"intellectual property", "ip ownership", "ip assignment",
			"patent", "trademark", "copyright", "trade secret",
			"license grant", "perpetual license", "irrevocable",
			"ip infringement", "joint ownership", "work for hire",
			"derivative works",
		},
		FinancialThreshold: 100_000,
	},
	interfaces.CategoryNeutral: {
		BaseImpact:         0.0,
		HighRiskKeywords:   nil,
		FinancialThreshold: 0,
	},
}

// UnknownCategoryImpact applies when a clause carries a label outside the
// known category set: minimal-impact treatment instead of an error.
const UnknownCategoryImpact = 1.0

// Profile returns the constant data for a category. Unknown categories get
// UnknownCategoryImpact and an empty keyword list.
func Profile(c interfaces.RiskCategory) CategoryProfile {
	if p, ok := categoryProfiles[c]; ok {
		return p
	}
	return CategoryProfile{BaseImpact: UnknownCategoryImpact}
}

// CategoryWeights returns the base impact weight of every known category.
func CategoryWeights() map[interfaces.RiskCategory]float64 {
	weights := make(map[interfaces.RiskCategory]float64, len(categoryProfiles))
	for c, p := range categoryProfiles {
		weights[c] = p.BaseImpact
	}
	return weights
}

// Exposure multipliers layered on top of category impact.
const (
	MultiplierCritical = 1.5 // >$500k or uncapped
	MultiplierHigh     = 1.3 // $100k - $500k
	MultiplierMedium   = 1.1 // $25k - $100k
	MultiplierLow      = 1.0 // <$25k or no amount
)

// ExposureMultipliers returns the fixed multiplier for each exposure level.
func ExposureMultipliers() map[interfaces.ExposureLevel]float64 {
	return map[interfaces.ExposureLevel]float64{
		interfaces.ExposureCritical: MultiplierCritical,
		interfaces.ExposureHigh:     MultiplierHigh,
		interfaces.ExposureMedium:   MultiplierMedium,
		interfaces.ExposureLow:      MultiplierLow,
	}
}

// Global exposure bucket boundaries in dollars.
const (
	ExposureCriticalFloor = 500_000
	ExposureHighFloor     = 100_000
	ExposureMediumFloor   = 25_000
)

// Calibrated-confidence bands for the severity category.
const (
	HighSeverityConfidence   = 0.85
	MediumSeverityConfidence = 0.65
)
