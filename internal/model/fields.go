package model

// EffectiveDates holds the policy coverage window. Both keys are always
// serialized, even when the source document yielded nothing.
type EffectiveDates struct {
	Start *string `json:"start"`
	End   *string `json:"end"`
}

// ClaimFields is the canonical extraction result for one FNOL document.
// Every key is always present in serialized output: scalar fields are
// pointers so an unknown value stays null on the wire, and list fields are
// initialized to empty slices rather than nil.
type ClaimFields struct {
	PolicyNumber        *string        `json:"policyNumber"`
	PolicyholderName    *string        `json:"policyholderName"`
	EffectiveDates      EffectiveDates `json:"effectiveDates"`
	IncidentDate        *string        `json:"incidentDate"`
	IncidentTime        *string        `json:"incidentTime"`
	IncidentLocation    *string        `json:"incidentLocation"`
	IncidentDescription *string        `json:"incidentDescription"`
	ClaimantName        *string        `json:"claimantName"`
	ClaimantContact     *string        `json:"claimantContact"`
	ThirdParties        []string       `json:"thirdParties"`
	AssetType           *string        `json:"assetType"`
	AssetID             *string        `json:"assetId"`
	EstimatedDamage     *float64       `json:"estimatedDamage"`
	ClaimType           *string        `json:"claimType"`
	Attachments         []string       `json:"attachments"`
	InitialEstimate     *float64       `json:"initialEstimate"`
}

// NewClaimFields returns a ClaimFields with all containers initialized so the
// canonical shape holds before any extraction rule has run.
func NewClaimFields() *ClaimFields {
	return &ClaimFields{
		ThirdParties: []string{},
		Attachments:  []string{},
	}
}

// Description returns the incident description or "" when absent.
func (f *ClaimFields) Description() string {
	if f == nil || f.IncidentDescription == nil {
		return ""
	}
	return *f.IncidentDescription
}

// Type returns the claim type or "" when absent.
func (f *ClaimFields) Type() string {
	if f == nil || f.ClaimType == nil {
		return ""
	}
	return *f.ClaimType
}
