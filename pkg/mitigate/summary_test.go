package mitigate

import (
	"reflect"
	"testing"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

func riskAssessment(label interfaces.RiskCategory, severity interfaces.Severity, triggers []string, monetaryValue float64, notice int) interfaces.RiskAssessment {
	return interfaces.RiskAssessment{
		ClauseInput: interfaces.ClauseInput{Label: label},
		Severity:    severity,
		HighRiskDetection: interfaces.HighRiskDetection{
			IsHighRisk: len(triggers) > 0,
			Triggers:   triggers,
		},
		ExtractedMetadata: interfaces.ExtractedMetadata{
			MonetaryValue: monetaryValue,
			Durations:     interfaces.Durations{NoticePeriodDays: notice},
		},
	}
}

func riskyContract() []interfaces.RiskAssessment {
	return []interfaces.RiskAssessment{
		riskAssessment(interfaces.CategoryLiability, interfaces.SeverityHigh,
			[]string{"Uncapped indemnification liability"}, 750_000, 0),
		riskAssessment(interfaces.CategoryTermination, interfaces.SeverityHigh,
			[]string{"Immediate termination allowed", "Termination for convenience", "No cure period provided"}, 0, 10),
		riskAssessment(interfaces.CategoryDataPrivacy, interfaces.SeverityHigh,
			[]string{"PII/personal data handling required", "GDPR/CCPA compliance obligations", "Data breach liability"}, 0, 0),
		riskAssessment(interfaces.CategoryIP, interfaces.SeverityMedium,
			[]string{"IP ownership transfer or assignment"}, 0, 0),
	}
}

func TestExecutiveSummary_BucketsAndTruncation(t *testing.T) {
	got := ExecutiveSummary(riskyContract())

	// 7 distinct critical actions exist; only the top 5 survive truncation.
	if len(got.CriticalActions) != 5 {
		t.Errorf("critical actions = %d, want 5", len(got.CriticalActions))
	}
	if len(got.HighPriorityActions) != 9 {
		t.Errorf("high priority actions = %d, want 9", len(got.HighPriorityActions))
	}
	// The total counts everything after dedup, before truncation.
	if got.TotalMitigationItems != 16 {
		t.Errorf("total = %d, want 16", got.TotalMitigationItems)
	}
	if got.EstimatedEffort != "Very High - 6+ weeks; consider walking away if risks cannot be mitigated" {
		t.Errorf("effort = %q", got.EstimatedEffort)
	}

	wantReviews := []string{
		"Legal review required for 3 high-severity clauses",
		"Risk management review for 1 liability clauses",
		"IP counsel review for 1 intellectual property clauses",
	}
	if !reflect.DeepEqual(got.RecommendedReviews, wantReviews) {
		t.Errorf("reviews = %v, want %v", got.RecommendedReviews, wantReviews)
	}
	if got.RiskAcceptanceThreshold == "" {
		t.Errorf("risk acceptance guidance missing")
	}

	for _, s := range got.CriticalActions {
		if s.Priority != interfaces.PriorityCritical {
			t.Errorf("non-critical strategy %q in critical bucket", s.Name)
		}
	}
	for _, s := range got.HighPriorityActions {
		if s.Priority != interfaces.PriorityHigh {
			t.Errorf("non-high strategy %q in high bucket", s.Name)
		}
	}
}

func TestExecutiveSummary_Idempotent(t *testing.T) {
	assessments := riskyContract()

	first := ExecutiveSummary(assessments)
	second := ExecutiveSummary(assessments)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("summary changed between identical runs")
	}
}

func TestExecutiveSummary_DeduplicatesRepeatedClauses(t *testing.T) {
	clause := riskAssessment(interfaces.CategoryLiability, interfaces.SeverityHigh,
		[]string{"Uncapped indemnification liability"}, 0, 0)

	got := ExecutiveSummary([]interfaces.RiskAssessment{clause, clause})

	// Each clause yields Cap Liability + Add Exclusions (critical) and
	// Mutual Indemnification + Legal Review Required (high); duplicates
	// collapse to one of each.
	if len(got.CriticalActions) != 2 {
		t.Errorf("critical actions = %d, want 2", len(got.CriticalActions))
	}
	if len(got.HighPriorityActions) != 2 {
		t.Errorf("high priority actions = %d, want 2", len(got.HighPriorityActions))
	}
	if got.TotalMitigationItems != 4 {
		t.Errorf("total = %d, want 4", got.TotalMitigationItems)
	}
	if got.EstimatedEffort != "High - 4-6 weeks for comprehensive risk mitigation" {
		t.Errorf("effort = %q", got.EstimatedEffort)
	}
}

func TestExecutiveSummary_LowSeverityExcluded(t *testing.T) {
	clause := riskAssessment(interfaces.CategoryLiability, interfaces.SeverityLow,
		[]string{"Uncapped indemnification liability"}, 0, 0)

	got := ExecutiveSummary([]interfaces.RiskAssessment{clause})
	if got.TotalMitigationItems != 0 {
		t.Errorf("total = %d, want 0", got.TotalMitigationItems)
	}
	if got.EstimatedEffort != "Low - Minimal negotiation required" {
		t.Errorf("effort = %q", got.EstimatedEffort)
	}
	if len(got.RecommendedReviews) != 0 {
		t.Errorf("reviews = %v, want none", got.RecommendedReviews)
	}
}

func TestEffortEstimate_Buckets(t *testing.T) {
	cases := []struct {
		total int
		want  string
	}{
		{0, "Low - Minimal negotiation required"},
		{1, "Medium - 2-3 weeks for negotiation and legal review"},
		{3, "Medium - 2-3 weeks for negotiation and legal review"},
		{4, "High - 4-6 weeks for comprehensive risk mitigation"},
		{7, "High - 4-6 weeks for comprehensive risk mitigation"},
		{8, "Very High - 6+ weeks; consider walking away if risks cannot be mitigated"},
	}
	for _, c := range cases {
		if got := effortEstimate(c.total); got != c.want {
			t.Errorf("effortEstimate(%d) = %q, want %q", c.total, got, c.want)
		}
	}
}
