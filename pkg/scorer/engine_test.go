package scorer

import (
	"context"
	"reflect"
	"testing"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

func sampleClauses() []interfaces.ClauseInput {
	return []interfaces.ClauseInput{
		{
			Text:       "Vendor shall indemnify and hold harmless Customer for all claims up to $750,000 in aggregate.",
			Label:      interfaces.CategoryLiability,
			Confidence: 0.8,
		},
		{
			Text:       "This Agreement may be terminated immediately for convenience at any time.",
			Label:      interfaces.CategoryTermination,
			Confidence: 0.7,
		},
		{
			Text:       "This Agreement shall be governed by the laws of Delaware.",
			Label:      interfaces.CategoryNeutral,
			Confidence: 0.95,
		},
	}
}

func TestAnalyze_PreservesInputOrder(t *testing.T) {
	clauses := sampleClauses()

	got, err := NewEngine().Analyze(context.Background(), clauses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != len(clauses) {
		t.Fatalf("got %d assessments, want %d", len(got), len(clauses))
	}
	for i := range clauses {
		if got[i].Text != clauses[i].Text {
			t.Errorf("assessment %d out of order: %q", i, got[i].Text)
		}
		if got[i].Label != clauses[i].Label {
			t.Errorf("assessment %d label = %s, want %s", i, got[i].Label, clauses[i].Label)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	engine := NewEngine()
	clauses := sampleClauses()

	first, err := engine.Analyze(context.Background(), clauses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := engine.Analyze(context.Background(), clauses)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical input produced different assessments")
	}
}

func TestAnalyze_EmptyInput(t *testing.T) {
	got, err := NewEngine().Analyze(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil assessments for empty input, got %v", got)
	}
}

func TestAnalyze_NormalizedScoreInRange(t *testing.T) {
	assessments, err := NewEngine().Analyze(context.Background(), sampleClauses())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breakdown := Aggregate(assessments)
	if breakdown.NormalizedScore < 0 || breakdown.NormalizedScore > 100 {
		t.Errorf("normalized score %f out of [0,100]", breakdown.NormalizedScore)
	}
}
