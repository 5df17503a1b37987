package category

import (
	"testing"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

func TestMap_DirectTableLookup(t *testing.T) {
	cases := []struct {
		label string
		want  interfaces.RiskCategory
	}{
		{"Uncapped Liability", interfaces.CategoryLiability},
		{"Termination For Convenience", interfaces.CategoryTermination},
		{"Liquidated Damages", interfaces.CategoryPayment},
		{"Ip Ownership Assignment", interfaces.CategoryIP},
		{"License Grant", interfaces.CategoryIP},
		{"Governing Law", interfaces.CategoryNeutral},
		{"Parties", interfaces.CategoryNeutral},
	}
	for _, c := range cases {
		if got := Map(c.label); got != c.want {
			t.Errorf("Map(%q) = %s, want %s", c.label, got, c.want)
		}
	}
}

func TestMap_KeywordFallback(t *testing.T) {
	cases := []struct {
		label string
		want  interfaces.RiskCategory
	}{
		{"Patent Cross-License", interfaces.CategoryIP},
		{"Indemnification Obligations", interfaces.CategoryLiability},
		{"Early Expiration Rights", interfaces.CategoryTermination},
		{"Service Fee Schedule", interfaces.CategoryPayment},
		{"Personal Information Handling", interfaces.CategoryDataPrivacy},
	}
	for _, c := range cases {
		if got := Map(c.label); got != c.want {
			t.Errorf("Map(%q) = %s, want %s", c.label, got, c.want)
		}
	}
}

func TestMap_FallbackPriorityOrder(t *testing.T) {
	// IP terms are checked before liability terms: a label matching both
	// groups resolves to IP Risk.
	if got := Map("Patent Indemnification"); got != interfaces.CategoryIP {
		t.Errorf("expected IP Risk to win over Liability Risk, got %s", got)
	}
}

func TestMap_UnknownLabelIsNeutral(t *testing.T) {
	if got := Map("Force Majeure"); got != interfaces.CategoryNeutral {
		t.Errorf("Map(Force Majeure) = %s, want Neutral", got)
	}
}

func TestDescription_KnownCategories(t *testing.T) {
	for _, c := range interfaces.Categories() {
		if Description(c) == "Unknown risk category" {
			t.Errorf("missing description for %s", c)
		}
	}
	if Description("Made Up Risk") != "Unknown risk category" {
		t.Errorf("expected unknown-category description")
	}
}
