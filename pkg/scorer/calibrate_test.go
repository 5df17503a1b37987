package scorer

import (
	"testing"

	"github.com/toyinlola/clausecheck/pkg/interfaces"
)

func adjustmentFactors(adjustments []interfaces.Adjustment) []string {
	factors := make([]string, len(adjustments))
	for i, a := range adjustments {
		factors[i] = a.Factor
	}
	return factors
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestCalibrate_StrongKeywordsAndEnforceability(t *testing.T) {
	// 4 liability keyword matches, "shall" enforceability, 27 words, no
	// amount, no negation language.
	text := "Vendor shall defend and indemnify Customer and hold harmless its affiliates from claims arising out of gross negligence by Vendor personnel in performing services under this Agreement."

	calibrated, result := Calibrate(0.5, interfaces.CategoryLiability, text, 0)
	if calibrated != 0.65 {
		t.Errorf("calibrated = %f, want 0.65", calibrated)
	}
	if result.KeywordMatches != 4 {
		t.Errorf("keyword matches = %d, want 4", result.KeywordMatches)
	}

	want := []string{"Strong keyword signals", "Strong enforceability language"}
	if got := adjustmentFactors(result.Adjustments); !equalStrings(got, want) {
		t.Errorf("adjustments = %v, want %v", got, want)
	}
}

func TestCalibrate_ModerateKeywords(t *testing.T) {
	// Exactly one liability keyword ("hold harmless") plus "agrees to".
	text := "Supplier agrees to hold harmless the Customer for third party claims arising from use of the deliverables provided under this statement of work."

	calibrated, result := Calibrate(0.6, interfaces.CategoryLiability, text, 0)
	if calibrated != 0.7 {
		t.Errorf("calibrated = %f, want 0.7", calibrated)
	}

	want := []string{"Moderate keyword signals", "Strong enforceability language"}
	if got := adjustmentFactors(result.Adjustments); !equalStrings(got, want) {
		t.Errorf("adjustments = %v, want %v", got, want)
	}
}

func TestCalibrate_ExplicitAmountOnly(t *testing.T) {
	// No payment keywords, no enforceability terms, 24 words; only the
	// monetary clarity rule fires.
	text := "Customer pays a fixed charge of $50,000 for onboarding services, invoiced in four equal monthly installments during the first year of the engagement term."

	calibrated, result := Calibrate(0.6, interfaces.CategoryPayment, text, 50_000)
	if calibrated != 0.68 {
		t.Errorf("calibrated = %f, want 0.68", calibrated)
	}
	if result.KeywordMatches != 0 {
		t.Errorf("keyword matches = %d, want 0", result.KeywordMatches)
	}
	if result.MonetaryValue != 50_000 {
		t.Errorf("monetary value = %f, want 50000", result.MonetaryValue)
	}

	want := []string{"Explicit financial amount"}
	if got := adjustmentFactors(result.Adjustments); !equalStrings(got, want) {
		t.Errorf("adjustments = %v, want %v", got, want)
	}
}

func TestCalibrate_ShortClauseWithNegation(t *testing.T) {
	calibrated, result := Calibrate(0.5, interfaces.CategoryPayment, "Fees are not refundable.", 0)
	if calibrated != 0.38 {
		t.Errorf("calibrated = %f, want 0.38", calibrated)
	}

	want := []string{"Short clause (low specificity)", "Negation/exception language"}
	if got := adjustmentFactors(result.Adjustments); !equalStrings(got, want) {
		t.Errorf("adjustments = %v, want %v", got, want)
	}
}

func TestCalibrate_ClampedToUpperBound(t *testing.T) {
	text := "Vendor shall defend and indemnify Customer and hold harmless its affiliates from claims arising out of gross negligence by Vendor personnel in performing services under this Agreement."

	calibrated, _ := Calibrate(0.95, interfaces.CategoryLiability, text, 0)
	if calibrated != 1.0 {
		t.Errorf("calibrated = %f, want 1.0", calibrated)
	}
}

func TestCalibrate_ClampedToLowerBound(t *testing.T) {
	calibrated, _ := Calibrate(0.05, interfaces.CategoryPayment, "Fees are not refundable.", 0)
	if calibrated != 0.0 {
		t.Errorf("calibrated = %f, want 0.0", calibrated)
	}
}

func TestCalibrate_UnknownCategoryHasNoKeywords(t *testing.T) {
	// Unknown categories carry an empty keyword list, so liability language
	// contributes no keyword adjustment. "shall" (+0.05) and the short-clause
	// penalty (-0.05) cancel out.
	calibrated, result := Calibrate(0.5, "Mystery Risk", "Vendor shall indemnify Customer.", 0)
	if calibrated != 0.5 {
		t.Errorf("calibrated = %f, want 0.5", calibrated)
	}
	if result.KeywordMatches != 0 {
		t.Errorf("keyword matches = %d, want 0", result.KeywordMatches)
	}

	want := []string{"Strong enforceability language", "Short clause (low specificity)"}
	if got := adjustmentFactors(result.Adjustments); !equalStrings(got, want) {
		t.Errorf("adjustments = %v, want %v", got, want)
	}
}

func TestCalibrate_OriginalConfidenceRecorded(t *testing.T) {
	_, result := Calibrate(0.73, interfaces.CategoryPayment, "Fees are not refundable.", 0)
	if result.Original != 0.73 {
		t.Errorf("original = %f, want 0.73", result.Original)
	}
}
