package category

import (
	"strings"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// ipKeywords are indicators of IP risk in raw clause text. Useful when the
// upstream classifier was not trained with IP as an explicit category.
var ipKeywords = []string{
	"intellectual property", "ip rights", "patent", "trademark", "copyright",
	"trade secret", "proprietary", "source code", "license grant",
	"ownership", "assignment", "work for hire", "work made for hire",
	"derivative works", "joint ownership", "irrevocable", "perpetual",
	"infringement", "license", "licensor", "licensee",
}

// privacyKeywords are indicators of data privacy risk in raw clause text.
var privacyKeywords = []string{
	"personal data", "personally identifiable", "pii",
	"gdpr", "ccpa", "data protection", "data privacy",
	"data breach", "data subject", "data processing",
	"consent", "opt-in", "opt-out", "privacy policy",
	"sensitive data", "biometric", "health information",
	"financial information", "data security",
}

// minKeywordMatches is the number of distinct keyword hits required before
// text-based detection overrides the classifier.
const minKeywordMatches = 2

// countMatches counts case-insensitive substring occurrences of keywords.
func countMatches(text string, keywords []string) int {
	lower := strings.ToLower(text)
	matches := 0
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			matches++
		}
	}
	return matches
}

// DetectIPRisk reports whether clause text contains enough IP indicators to
// flag it as IP risk regardless of its classifier label.
func DetectIPRisk(text string) bool {
	return countMatches(text, ipKeywords) >= minKeywordMatches
}

// DetectPrivacyRisk reports whether clause text contains enough privacy
// indicators to flag it as data privacy risk.
func DetectPrivacyRisk(text string) bool {
	return countMatches(text, privacyKeywords) >= minKeywordMatches
}

// Confidence assigned when a text-based detection overrides a low-confidence
// Neutral label.
const (
	overrideConfidence = 0.75
	overrideBelow      = 0.70
	relatedLabelBoost  = 0.10
)

// Enhance refines a classifier label using text-based detection.
// IP detection runs before privacy detection; within IP, the Neutral
// override precedes the confidence boost. When no rule applies, the plain
// taxonomy mapping is returned with confidence unchanged.
func Enhance(originalLabel, text string, confidence float64) (interfaces.RiskCategory, float64, string) {
	if DetectIPRisk(text) {
		if interfaces.RiskCategory(originalLabel) == interfaces.CategoryNeutral && confidence < overrideBelow {
			return interfaces.CategoryIP, overrideConfidence, "Text-based IP keyword detection"
		}
		labelLower := strings.ToLower(originalLabel)
		if strings.Contains(labelLower, "license") || strings.Contains(labelLower, "ownership") {
			if mapped := Map(originalLabel); mapped == interfaces.CategoryIP {
				return mapped, min(confidence+relatedLabelBoost, 1.0), "Taxonomy label mapped to IP Risk"
			}
		}
	}

	if DetectPrivacyRisk(text) {
		if interfaces.RiskCategory(originalLabel) == interfaces.CategoryNeutral && confidence < overrideBelow {
			return interfaces.CategoryDataPrivacy, overrideConfidence, "Text-based privacy keyword detection"
		}
	}

	return Map(originalLabel), confidence, "Taxonomy category mapping"
}
