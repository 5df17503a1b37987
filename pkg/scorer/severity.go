package scorer

import (
	"math"

	"github.com/toyinlola/clausecheck/pkg/extract"
	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// ScoreClause runs the full per-clause pipeline: metadata extraction,
// confidence calibration, exposure classification, high-risk detection, and
// severity scoring. It is a pure function of its input; the returned
// assessment is never mutated afterward.
func (e *Engine) ScoreClause(in interfaces.ClauseInput) interfaces.RiskAssessment {
	monetaryValue := extract.MonetaryValue(in.Text)
	durations := extract.ExtractDurations(in.Text)

	calibrated := in.Confidence
	calibration := interfaces.CalibrationResult{
		Original:   round4(in.Confidence),
		Calibrated: round4(in.Confidence),
	}
	if e.calibrate {
		calibrated, calibration = Calibrate(in.Confidence, in.Label, in.Text, monetaryValue)
	}

	exposure := ClassifyExposure(in.Text, in.Label, monetaryValue)
	adjustedImpact := Profile(in.Label).BaseImpact * exposure.Multiplier

	detection := DetectHighRisk(in.Text, in.Label, monetaryValue)

	return interfaces.RiskAssessment{
		ClauseInput:          in,
		CalibratedConfidence: calibrated,
		Impact:               Profile(in.Label).BaseImpact,
		AdjustedImpact:       round4(adjustedImpact),
		Likelihood:           calibrated,
		SeverityScore:        round4(adjustedImpact * calibrated),
		Severity:             severityCategory(in.Label, calibrated, detection),
		FinancialExposure:    exposure,
		ExtractedMetadata: interfaces.ExtractedMetadata{
			MonetaryValue: monetaryValue,
			Durations:     durations,
		},
		HighRiskDetection: detection,
		Calibration:       calibration,
	}
}

// severityCategory buckets a clause's severity. A high-risk override always
// wins; Neutral clauses never rise above None; otherwise the calibrated
// confidence bands decide.
func severityCategory(label interfaces.RiskCategory, calibrated float64, detection interfaces.HighRiskDetection) interfaces.Severity {
	switch {
	case detection.SeverityOverride != "":
		return detection.SeverityOverride
	case label == interfaces.CategoryNeutral:
		return interfaces.SeverityNone
	case calibrated >= HighSeverityConfidence:
		return interfaces.SeverityHigh
	case calibrated >= MediumSeverityConfidence:
		return interfaces.SeverityMedium
	default:
		return interfaces.SeverityLow
	}
}

// round4 rounds to 4 decimal places, the precision of all per-clause scores.
func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// round2 rounds to 2 decimal places, used for the normalized contract score.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
