package validate

import (
	"reflect"
	"testing"

	"github.com/pkaminsky/claimtriage/internal/model"
)

func populatedFields() *model.ClaimFields {
	fields := model.NewClaimFields()
	fields.PolicyNumber = str("POL-2023-456789")
	fields.PolicyholderName = str("John Smith")
	fields.EffectiveDates.Start = str("2023-01-01")
	fields.EffectiveDates.End = str("2024-01-01")
	fields.IncidentDate = str("2023-06-15")
	fields.IncidentTime = str("14:30")
	fields.IncidentLocation = str("123 Main Street, Springfield")
	fields.IncidentDescription = str("Rear-end collision at a stop light.")
	fields.ClaimantName = str("John Smith")
	fields.ClaimantContact = str("+1 (555) 123-4567")
	fields.AssetType = str("Vehicle")
	fields.AssetID = str("VIN: 1HGBH41JXMN109186")
	fields.EstimatedDamage = num(15000)
	fields.ClaimType = str("Auto")
	return fields
}

func TestValidate_AllPresent(t *testing.T) {
	missing := NewValidator().Validate(populatedFields())
	if missing == nil {
		t.Fatal("Validate() = nil, want empty non-nil slice")
	}
	if len(missing) != 0 {
		t.Errorf("Validate() = %v, want no missing fields", missing)
	}
}

func TestValidate_EmptyFields(t *testing.T) {
	missing := NewValidator().Validate(model.NewClaimFields())
	if !reflect.DeepEqual(missing, MandatoryFields) {
		t.Errorf("Validate() = %v, want all mandatory paths in declaration order", missing)
	}
}

func TestValidate_DeclarationOrder(t *testing.T) {
	fields := populatedFields()
	fields.ClaimType = nil
	fields.PolicyNumber = nil

	missing := NewValidator().Validate(fields)
	want := []string{"policyNumber", "claimType"}
	if !reflect.DeepEqual(missing, want) {
		t.Errorf("Validate() = %v, want %v (declaration order, not mutation order)", missing, want)
	}
}

func TestValidate_WhitespaceIsMissing(t *testing.T) {
	fields := populatedFields()
	fields.ClaimantName = str("   ")

	missing := NewValidator().Validate(fields)
	if !reflect.DeepEqual(missing, []string{"claimantName"}) {
		t.Errorf("Validate() = %v, want [claimantName]", missing)
	}
}

func TestValidate_ZeroDamageIsPresent(t *testing.T) {
	fields := populatedFields()
	fields.EstimatedDamage = num(0)

	if missing := NewValidator().Validate(fields); len(missing) != 0 {
		t.Errorf("Validate() = %v, want zero damage treated as present", missing)
	}
}

func TestValidate_NilFields(t *testing.T) {
	missing := NewValidator().Validate(nil)
	if !reflect.DeepEqual(missing, MandatoryFields) {
		t.Errorf("Validate(nil) = %v, want every mandatory path", missing)
	}
}

func TestDisplayName(t *testing.T) {
	v := NewValidator()
	if got := v.DisplayName("effectiveDates.start"); got != "Policy Start Date" {
		t.Errorf("DisplayName(effectiveDates.start) = %q, want Policy Start Date", got)
	}
	if got := v.DisplayName("unknown.path"); got != "unknown.path" {
		t.Errorf("DisplayName(unknown.path) = %q, want raw path fallback", got)
	}
}

func str(s string) *string   { return &s }
func num(v float64) *float64 { return &v }
