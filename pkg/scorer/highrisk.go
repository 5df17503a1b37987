package scorer

import (
	"fmt"
	"strings"

	"github.com/toyinlola/clausecheck/pkg/extract"
	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// termRule is one substring-match trigger rule: if any term occurs in the
// clause text, the trigger fires.
type termRule struct {
	terms   []string
	trigger string
}

// Per-category trigger rule tables, evaluated in order. Rules within a
// category fire independently; the detection collects the union of triggers.
var (
	terminationRules = []termRule{
		{[]string{"immediate", "immediately", "without notice"}, "Immediate termination allowed"},
		{[]string{"for convenience", "without cause", "at any time"}, "Termination for convenience"},
		{[]string{"no cure", "without opportunity to cure"}, "No cure period provided"},
	}

	privacyRules = []termRule{
		{[]string{"pii", "personal data", "personally identifiable"}, "PII/personal data handling required"},
		{[]string{"gdpr", "ccpa", "data protection regulation"}, "GDPR/CCPA compliance obligations"},
		{[]string{"data breach"}, "Data breach liability"},
	}

	ipRules = []termRule{
		{[]string{"ownership", "assign", "transfer"}, "IP ownership transfer or assignment"},
		{[]string{"perpetual", "irrevocable"}, "Perpetual or irrevocable license grant"},
		{[]string{"infringement"}, "IP infringement liability"},
		{[]string{"work for hire", "work made for hire"}, "Work-for-hire IP assignment"},
	}

	damagesTerms           = []string{"liquidated damages", "penalty", "late fee"}
	indemnityTerms         = []string{"indemnif", "hold harmless", "defend"}
	uncappedIndemnityTerms = []string{"uncapped", "unlimited", "no limit"}
)

// highExposureFloor is the monetary amount at which financial-exposure
// triggers fire for payment and liability clauses.
const highExposureFloor = 100_000

// DetectHighRisk applies category-specific trigger rules to a clause.
// Any trigger marks the clause high risk and forces a High severity
// override; with no triggers the override is left unset.
func DetectHighRisk(text string, label interfaces.RiskCategory, monetaryValue float64) interfaces.HighRiskDetection {
	lower := strings.ToLower(text)
	var detection interfaces.HighRiskDetection

	add := func(trigger string) {
		detection.Triggers = append(detection.Triggers, trigger)
		detection.IsHighRisk = true
	}

	if label == interfaces.CategoryTermination {
		applyRules(lower, terminationRules, add)
	}

	if label == interfaces.CategoryPayment || label == interfaces.CategoryLiability {
		if containsAny(lower, damagesTerms) {
			add("Liquidated damages or penalties")
		}
		if monetaryValue >= highExposureFloor {
			add(fmt.Sprintf("High financial exposure ($%s)", extract.FormatAmount(monetaryValue)))
		}
	}

	if label == interfaces.CategoryLiability && containsAny(lower, indemnityTerms) {
		if monetaryValue >= highExposureFloor {
			add(fmt.Sprintf("Indemnification obligation >$%s", extract.FormatAmount(monetaryValue)))
		}
		if containsAny(lower, uncappedIndemnityTerms) {
			add("Uncapped indemnification liability")
		}
	}

	if label == interfaces.CategoryDataPrivacy {
		applyRules(lower, privacyRules, add)
	}

	if label == interfaces.CategoryIP {
		applyRules(lower, ipRules, add)
	}

	if detection.IsHighRisk {
		detection.SeverityOverride = interfaces.SeverityHigh
	}
	return detection
}

// applyRules fires every rule whose terms match, in table order.
func applyRules(lower string, rules []termRule, add func(string)) {
	for _, rule := range rules {
		if containsAny(lower, rule.terms) {
			add(rule.trigger)
		}
	}
}
