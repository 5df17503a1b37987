package extract

import "testing"

func TestExtractDurations_Days(t *testing.T) {
	d := ExtractDurations("Payment is due within 30 days of invoice.")
	if d.Days != 30 {
		t.Errorf("expected 30 days, got %d", d.Days)
	}
}

func TestExtractDurations_Months(t *testing.T) {
	d := ExtractDurations("The initial term is 12 months from the effective date.")
	if d.Months != 12 {
		t.Errorf("expected 12 months, got %d", d.Months)
	}
	if d.Days != 0 {
		t.Errorf("expected 0 days, got %d", d.Days)
	}
}

func TestExtractDurations_Years(t *testing.T) {
	d := ExtractDurations("This Agreement renews automatically for 2 years.")
	if d.Years != 2 {
		t.Errorf("expected 2 years, got %d", d.Years)
	}
}

func TestExtractDurations_NoticePhrases(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"Either party may terminate provided it provide 30 days notice.", 30},
		{"termination requires notice of 60 days", 60},
		{"subject to a 90-day notice requirement", 90},
		{"terminate upon 45 days prior notice", 45},
	}
	for _, c := range cases {
		d := ExtractDurations(c.text)
		if d.NoticePeriodDays != c.want {
			t.Errorf("%q: expected notice %d, got %d", c.text, c.want, d.NoticePeriodDays)
		}
	}
}

func TestExtractDurations_FieldsAreIndependent(t *testing.T) {
	d := ExtractDurations("terminate upon 30 days notice, with a 45-day notice during renewal")

	// The notice field keeps the maximum across its variants; the plain day
	// field keeps the first match of each of its own variants.
	if d.NoticePeriodDays != 45 {
		t.Errorf("expected notice 45, got %d", d.NoticePeriodDays)
	}
	if d.Days != 30 {
		t.Errorf("expected days 30, got %d", d.Days)
	}
}

func TestExtractDurations_Empty(t *testing.T) {
	d := ExtractDurations("No durations appear in this clause.")
	if d.Days != 0 || d.Months != 0 || d.Years != 0 || d.NoticePeriodDays != 0 {
		t.Errorf("expected all-zero durations, got %+v", d)
	}
}
