package mitigate

import (
	"fmt"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

// Truncation limits for the executive summary buckets.
const (
	maxCriticalActions = 5
	maxHighActions     = 10
)

// riskAcceptanceThreshold is the standing guidance attached to every summary.
const riskAcceptanceThreshold = "Critical and High priority mitigations should be addressed before contract execution."

// ExecutiveSummary rolls up mitigation priorities across the whole contract.
// Strategies are collected only from High and Medium severity clauses,
// split into critical and high-priority buckets, deduplicated within each
// bucket by (name, first 50 chars of action), and truncated to the top 5
// critical / top 10 high. Pure and idempotent: the same assessments always
// yield the same summary.
func ExecutiveSummary(assessments []interfaces.RiskAssessment) interfaces.ExecutiveMitigationSummary {
	var critical, high []interfaces.MitigationStrategy

	for _, a := range assessments {
		if a.Severity != interfaces.SeverityHigh && a.Severity != interfaces.SeverityMedium {
			continue
		}

		strategies := Strategies(
			a.Label,
			a.Severity,
			a.HighRiskDetection.Triggers,
			a.ExtractedMetadata.MonetaryValue,
			a.ExtractedMetadata.Durations,
		)
		for _, s := range strategies {
			switch s.Priority {
			case interfaces.PriorityCritical:
				critical = append(critical, s)
			case interfaces.PriorityHigh:
				high = append(high, s)
			}
		}
	}

	critical = deduplicate(critical)
	high = deduplicate(high)
	total := len(critical) + len(high)

	return interfaces.ExecutiveMitigationSummary{
		CriticalActions:         truncate(critical, maxCriticalActions),
		HighPriorityActions:     truncate(high, maxHighActions),
		RecommendedReviews:      recommendedReviews(assessments),
		TotalMitigationItems:    total,
		EstimatedEffort:         effortEstimate(total),
		RiskAcceptanceThreshold: riskAcceptanceThreshold,
	}
}

// deduplicate drops repeated strategies, keyed by name plus the first 50
// characters of the action. First occurrence wins, preserving order.
func deduplicate(strategies []interfaces.MitigationStrategy) []interfaces.MitigationStrategy {
	type key struct {
		name   string
		action string
	}

	seen := make(map[key]bool)
	var unique []interfaces.MitigationStrategy
	for _, s := range strategies {
		action := s.Action
		if len(action) > 50 {
			action = action[:50]
		}
		k := key{s.Name, action}
		if seen[k] {
			continue
		}
		seen[k] = true
		unique = append(unique, s)
	}
	return unique
}

func truncate(strategies []interfaces.MitigationStrategy, n int) []interfaces.MitigationStrategy {
	if len(strategies) > n {
		return strategies[:n]
	}
	return strategies
}

// recommendedReviews derives the review checklist from severity and
// category counts across the contract.
func recommendedReviews(assessments []interfaces.RiskAssessment) []string {
	var reviews []string

	highSeverity := 0
	liability := 0
	ip := 0
	for _, a := range assessments {
		if a.Severity == interfaces.SeverityHigh {
			highSeverity++
		}
		atRisk := a.Severity == interfaces.SeverityHigh || a.Severity == interfaces.SeverityMedium
		if atRisk && a.Label == interfaces.CategoryLiability {
			liability++
		}
		if atRisk && a.Label == interfaces.CategoryIP {
			ip++
		}
	}

	if highSeverity > 0 {
		reviews = append(reviews, fmt.Sprintf("Legal review required for %d high-severity clauses", highSeverity))
	}
	if liability > 0 {
		reviews = append(reviews, fmt.Sprintf("Risk management review for %d liability clauses", liability))
	}
	if ip > 0 {
		reviews = append(reviews, fmt.Sprintf("IP counsel review for %d intellectual property clauses", ip))
	}
	return reviews
}

// effortEstimate maps the total mitigation count to a qualitative estimate.
func effortEstimate(total int) string {
	switch {
	case total == 0:
		return "Low - Minimal negotiation required"
	case total <= 3:
		return "Medium - 2-3 weeks for negotiation and legal review"
	case total <= 7:
		return "High - 4-6 weeks for comprehensive risk mitigation"
	default:
		return "Very High - 6+ weeks; consider walking away if risks cannot be mitigated"
	}
}
