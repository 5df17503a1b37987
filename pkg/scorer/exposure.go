package scorer

import (
	"strings"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// uncappedTerms force critical exposure regardless of any stated amount.
var uncappedTerms = []string{"uncapped", "unlimited", "no limit", "without limit"}

// ClassifyExposure buckets a clause's monetary exposure into a level and
// multiplier. Uncapped language wins over any extracted amount. The label's
// FinancialThreshold does not move the bucket boundaries; they are global.
func ClassifyExposure(text string, label interfaces.RiskCategory, monetaryValue float64) interfaces.ExposureAssessment {
	lower := strings.ToLower(text)
	for _, term := range uncappedTerms {
		if strings.Contains(lower, term) {
			return exposure(interfaces.ExposureCritical, MultiplierCritical, monetaryValue)
		}
	}

	switch {
	case monetaryValue >= ExposureCriticalFloor:
		return exposure(interfaces.ExposureCritical, MultiplierCritical, monetaryValue)
	case monetaryValue >= ExposureHighFloor:
		return exposure(interfaces.ExposureHigh, MultiplierHigh, monetaryValue)
	case monetaryValue >= ExposureMediumFloor:
		return exposure(interfaces.ExposureMedium, MultiplierMedium, monetaryValue)
	default:
		return exposure(interfaces.ExposureLow, MultiplierLow, monetaryValue)
	}
}

func exposure(level interfaces.ExposureLevel, multiplier, monetaryValue float64) interfaces.ExposureAssessment {
	return interfaces.ExposureAssessment{
		Level:         level,
		Multiplier:    multiplier,
		MonetaryValue: monetaryValue,
	}
}
