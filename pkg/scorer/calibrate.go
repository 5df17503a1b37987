package scorer

import (
	"strings"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// Contextual signal term lists. All checks are case-insensitive substring
// matches against the clause text.
var (
	enforceabilityTerms = []string{"shall", "must", "will", "obligated", "required", "agrees to"}
	negationTerms       = []string{"not", "except", "unless", "excluding", "notwithstanding"}
)

// Calibration deltas, applied in rule order with clamping to [0,1] after
// each step. Each rule contributes at most once.
const (
	strongKeywordDelta   = 0.10 // 3+ category keyword matches
	moderateKeywordDelta = 0.05 // 1-2 category keyword matches
	monetaryClarityDelta = 0.08 // explicit amount present
	enforceabilityDelta  = 0.05
	specificityBonus     = 0.03 // word count > 50
	specificityPenalty   = 0.05 // word count < 15
	negationPenalty      = 0.07

	longClauseWords  = 50
	shortClauseWords = 15
)

// Calibrate adjusts raw classifier confidence using contextual signals and
// returns the calibrated likelihood plus an audit trail of every applied
// adjustment, in evaluation order. Skipped rules are omitted, not recorded
// as zero. The result is always in [0,1].
func Calibrate(baseConfidence float64, label interfaces.RiskCategory, text string, monetaryValue float64) (float64, interfaces.CalibrationResult) {
	calibrated := baseConfidence
	var adjustments []interfaces.Adjustment

	lower := strings.ToLower(text)

	// 1. Keyword signal strength.
	matches := 0
	for _, kw := range Profile(label).HighRiskKeywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	switch {
	case matches >= 3:
		calibrated = min(calibrated+strongKeywordDelta, 1.0)
		adjustments = append(adjustments, interfaces.Adjustment{Factor: "Strong keyword signals", Delta: strongKeywordDelta})
	case matches >= 1:
		calibrated = min(calibrated+moderateKeywordDelta, 1.0)
		adjustments = append(adjustments, interfaces.Adjustment{Factor: "Moderate keyword signals", Delta: moderateKeywordDelta})
	}

	// 2. Financial clarity.
	if monetaryValue > 0 {
		calibrated = min(calibrated+monetaryClarityDelta, 1.0)
		adjustments = append(adjustments, interfaces.Adjustment{Factor: "Explicit financial amount", Delta: monetaryClarityDelta})
	}

	// 3. Enforceability signals (legal language strength).
	if containsAny(lower, enforceabilityTerms) {
		calibrated = min(calibrated+enforceabilityDelta, 1.0)
		adjustments = append(adjustments, interfaces.Adjustment{Factor: "Strong enforceability language", Delta: enforceabilityDelta})
	}

	// 4. Specificity check (longer, more detailed clauses).
	words := len(strings.Fields(text))
	if words > longClauseWords {
		calibrated = min(calibrated+specificityBonus, 1.0)
		adjustments = append(adjustments, interfaces.Adjustment{Factor: "Detailed clause (high specificity)", Delta: specificityBonus})
	} else if words < shortClauseWords {
		calibrated = max(calibrated-specificityPenalty, 0.0)
		adjustments = append(adjustments, interfaces.Adjustment{Factor: "Short clause (low specificity)", Delta: -specificityPenalty})
	}

	// 5. Negation check (reduces confidence).
	if containsAny(lower, negationTerms) {
		calibrated = max(calibrated-negationPenalty, 0.0)
		adjustments = append(adjustments, interfaces.Adjustment{Factor: "Negation/exception language", Delta: -negationPenalty})
	}

	calibrated = round4(calibrated)

	return calibrated, interfaces.CalibrationResult{
		Original:       round4(baseConfidence),
		Calibrated:     calibrated,
		Adjustments:    adjustments,
		KeywordMatches: matches,
		MonetaryValue:  monetaryValue,
	}
}

// containsAny reports whether any of the terms occurs in the text.
func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
