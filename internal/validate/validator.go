package validate

import (
	"strings"

	"github.com/pkaminsky/claimtriage/internal/model"
)

// MandatoryFields is the fixed, exhaustive mandatory-field declaration.
// Validate output follows this order, not document order.
var MandatoryFields = []string{
	"policyNumber",
	"policyholderName",
	"effectiveDates.start",
	"effectiveDates.end",
	"incidentDate",
	"incidentTime",
	"incidentLocation",
	"incidentDescription",
	"claimantName",
	"assetType",
	"assetId",
	"estimatedDamage",
	"claimType",
}

// displayNames maps dot-paths to human-readable labels for reviewers.
var displayNames = map[string]string{
	"policyNumber":         "Policy Number",
	"policyholderName":     "Policyholder Name",
	"effectiveDates.start": "Policy Start Date",
	"effectiveDates.end":   "Policy End Date",
	"incidentDate":         "Incident Date",
	"incidentTime":         "Incident Time",
	"incidentLocation":     "Incident Location",
	"incidentDescription":  "Incident Description",
	"claimantName":         "Claimant Name",
	"claimantContact":      "Claimant Contact",
	"assetType":            "Asset Type",
	"assetId":              "Asset ID",
	"estimatedDamage":      "Estimated Damage",
	"claimType":            "Claim Type",
	"attachments":          "Attachments",
	"initialEstimate":      "Initial Estimate",
}

// Validator checks canonical fields against the mandatory-field list.
type Validator struct{}

// NewValidator creates a validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns the dot-paths of mandatory fields absent or empty in the
// given fields, in declaration order.
func (v *Validator) Validate(fields *model.ClaimFields) []string {
	missing := []string{}
	for _, path := range MandatoryFields {
		if !present(fields, path) {
			missing = append(missing, path)
		}
	}
	return missing
}

// present applies the mandatory-presence test: a nil container or value is
// missing; a string is missing when blank after trimming; a number (including
// zero) is always present; a list is missing when empty.
func present(fields *model.ClaimFields, path string) bool {
	if fields == nil {
		return false
	}

	switch path {
	case "policyNumber":
		return presentString(fields.PolicyNumber)
	case "policyholderName":
		return presentString(fields.PolicyholderName)
	case "effectiveDates.start":
		return presentString(fields.EffectiveDates.Start)
	case "effectiveDates.end":
		return presentString(fields.EffectiveDates.End)
	case "incidentDate":
		return presentString(fields.IncidentDate)
	case "incidentTime":
		return presentString(fields.IncidentTime)
	case "incidentLocation":
		return presentString(fields.IncidentLocation)
	case "incidentDescription":
		return presentString(fields.IncidentDescription)
	case "claimantName":
		return presentString(fields.ClaimantName)
	case "claimantContact":
		return presentString(fields.ClaimantContact)
	case "thirdParties":
		return len(fields.ThirdParties) > 0
	case "assetType":
		return presentString(fields.AssetType)
	case "assetId":
		return presentString(fields.AssetID)
	case "estimatedDamage":
		return fields.EstimatedDamage != nil
	case "claimType":
		return presentString(fields.ClaimType)
	case "attachments":
		return len(fields.Attachments) > 0
	case "initialEstimate":
		return fields.InitialEstimate != nil
	default:
		return false
	}
}

func presentString(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}

// DisplayName converts a dot-path to its human-readable label, falling back
// to the raw path when unmapped.
func (v *Validator) DisplayName(path string) string {
	if name, ok := displayNames[path]; ok {
		return name
	}
	return path
}
