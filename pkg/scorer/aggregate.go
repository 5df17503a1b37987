package scorer

import "github.com/toyinlola/clausecheck/pkg/interfaces"

// ScoringMethod names the formula used for contract-level aggregation.
const ScoringMethod = "Advanced: Impact × Likelihood × Financial Exposure Factor"

// scoringFormula is disclosed in every breakdown for auditability.
const scoringFormula = "normalized_score = (sum(severity_score) / sum(adjusted_impact)) * 100"

// Aggregate sums per-clause assessments into one normalized 0-100 contract
// risk score. The raw sums are exposed alongside the percentage so the
// arithmetic can be audited. An empty batch yields all zeros.
func Aggregate(assessments []interfaces.RiskAssessment) interfaces.ContractRiskBreakdown {
	var total, maxPossible float64
	highRiskCount := 0
	calibratedClauses := 0

	for _, a := range assessments {
		total += a.SeverityScore
		maxPossible += a.AdjustedImpact

		if a.HighRiskDetection.IsHighRisk {
			highRiskCount++
		}
		if len(a.Calibration.Adjustments) > 0 {
			calibratedClauses++
		}
	}

	normalized := 0.0
	if maxPossible > 0 {
		normalized = round2(total / maxPossible * 100)
	}

	return interfaces.ContractRiskBreakdown{
		ScoringMethod:       ScoringMethod,
		Formula:             scoringFormula,
		TotalSeverityScore:  round4(total),
		MaxPossibleScore:    round4(maxPossible),
		NormalizedScore:     normalized,
		CategoryWeights:     CategoryWeights(),
		ExposureMultipliers: ExposureMultipliers(),
		HighRiskCount:       highRiskCount,
		CalibratedClauses:   calibratedClauses,
	}
}
