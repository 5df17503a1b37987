package scorer

import "github.com/toyinlola/clausecheck/pkg/interfaces"

// Default contract rating thresholds on the normalized 0-100 risk score.
// Higher means riskier, so RED sits at the top of the scale.
const (
	DefaultRedThreshold    = 60.0
	DefaultYellowThreshold = 30.0
)

// RatingFromScore returns the contract risk rating for a normalized score.
// RED: score >= redThreshold
// YELLOW: score >= yellowThreshold
// GREEN: score < yellowThreshold
func RatingFromScore(normalized float64, redThreshold, yellowThreshold float64) interfaces.RiskRating {
	switch {
	case normalized >= redThreshold:
		return interfaces.RatingRed
	case normalized >= yellowThreshold:
		return interfaces.RatingYellow
	default:
		return interfaces.RatingGreen
	}
}
