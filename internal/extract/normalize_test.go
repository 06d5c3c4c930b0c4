package extract

import (
	"testing"
)

func TestParseCurrency(t *testing.T) {
	cases := []struct {
		in   string
		want *float64
	}{
		{"$25,000.50", f64(25000.50)},
		{"15,000", f64(15000)},
		{"$ 1000", f64(1000)},
		{"0", f64(0)},
		{"not a number", nil},
		{"", nil},
		{"$", nil},
	}
	for _, tc := range cases {
		got := ParseCurrency(tc.in)
		if (got == nil) != (tc.want == nil) {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.in, got, tc.want)
			continue
		}
		if got != nil && *got != *tc.want {
			t.Errorf("ParseCurrency(%q) = %v, want %v", tc.in, *got, *tc.want)
		}
	}
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023-06-15", "2023-06-15"},
		{"06/15/2023", "2023-06-15"},
		{"6/15/2023", "2023-06-15"},
		{"June 15, 2023", "2023-06-15"},
		{"Jun 15, 2023", "2023-06-15"},
		{"15-06-2023", "2023-06-15"},
		{"not-a-date", "not-a-date"},
		{"  2023-06-15  ", "2023-06-15"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeDate(tc.in); got != tc.want {
			t.Errorf("NormalizeDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNormalize_BackfillsDefaults(t *testing.T) {
	fields := Normalize(map[string]any{
		"policyNumber": "POL-123",
	})

	if fields.PolicyNumber == nil || *fields.PolicyNumber != "POL-123" {
		t.Errorf("PolicyNumber = %v, want POL-123", fields.PolicyNumber)
	}
	if fields.PolicyholderName != nil {
		t.Errorf("PolicyholderName = %v, want nil", fields.PolicyholderName)
	}
	if fields.ThirdParties == nil || len(fields.ThirdParties) != 0 {
		t.Errorf("ThirdParties = %v, want empty non-nil slice", fields.ThirdParties)
	}
	if fields.Attachments == nil || len(fields.Attachments) != 0 {
		t.Errorf("Attachments = %v, want empty non-nil slice", fields.Attachments)
	}
}

func TestNormalize_CoercesValues(t *testing.T) {
	fields := Normalize(map[string]any{
		"incidentDate":    "June 15, 2023",
		"estimatedDamage": "$15,000",
		"initialEstimate": float64(12000),
		"thirdParties":    []any{"Jane Doe", "  ", "Acme Corp"},
		"claimantName":    "   ",
		"effectiveDates": map[string]any{
			"start": "01/01/2023",
			"end":   "2024-01-01",
		},
	})

	if fields.IncidentDate == nil || *fields.IncidentDate != "2023-06-15" {
		t.Errorf("IncidentDate = %v, want 2023-06-15", fields.IncidentDate)
	}
	if fields.EstimatedDamage == nil || *fields.EstimatedDamage != 15000 {
		t.Errorf("EstimatedDamage = %v, want 15000", fields.EstimatedDamage)
	}
	if fields.InitialEstimate == nil || *fields.InitialEstimate != 12000 {
		t.Errorf("InitialEstimate = %v, want 12000", fields.InitialEstimate)
	}
	if len(fields.ThirdParties) != 2 || fields.ThirdParties[0] != "Jane Doe" || fields.ThirdParties[1] != "Acme Corp" {
		t.Errorf("ThirdParties = %v, want [Jane Doe Acme Corp]", fields.ThirdParties)
	}
	if fields.ClaimantName != nil {
		t.Errorf("ClaimantName = %v, want nil for whitespace-only input", fields.ClaimantName)
	}
	if fields.EffectiveDates.Start == nil || *fields.EffectiveDates.Start != "2023-01-01" {
		t.Errorf("EffectiveDates.Start = %v, want 2023-01-01", fields.EffectiveDates.Start)
	}
	if fields.EffectiveDates.End == nil || *fields.EffectiveDates.End != "2024-01-01" {
		t.Errorf("EffectiveDates.End = %v, want 2024-01-01", fields.EffectiveDates.End)
	}
}

func TestNormalize_Nil(t *testing.T) {
	fields := Normalize(nil)
	if fields == nil {
		t.Fatal("Normalize(nil) = nil, want canonical defaults")
	}
	if fields.ThirdParties == nil || fields.Attachments == nil {
		t.Error("Normalize(nil) must initialize list fields")
	}
}

func f64(v float64) *float64 { return &v }
