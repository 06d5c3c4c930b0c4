package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/pkaminsky/claimtriage/internal/model"
)

// dateLayouts is the fixed priority order for date parsing. First successful
// parse wins; input that matches none passes through verbatim.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"02/01/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"02-01-2006",
	"01-02-2006",
}

var currencyJunk = regexp.MustCompile(`[$,\s]`)

// ParseCurrency converts a currency string to a bare number. "$25,000.50"
// becomes 25000.50. Unparsable values yield nil rather than an error.
func ParseCurrency(value string) *float64 {
	cleaned := currencyJunk.ReplaceAllString(value, "")
	if cleaned == "" {
		return nil
	}
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &n
}

// NormalizeDate converts a date string to ISO YYYY-MM-DD when one of the
// known layouts matches. Otherwise the original string is returned unchanged;
// an unknown format is an explicit fallback, not an error.
func NormalizeDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return value
}

// Normalize converts a loosely-shaped field map (typically a decoded AI
// reply) into the canonical ClaimFields, back-filling absent keys with
// defaults. Both extraction paths funnel through here so callers always see
// an identical shape.
func Normalize(raw map[string]any) *model.ClaimFields {
	fields := model.NewClaimFields()
	if raw == nil {
		return fields
	}

	fields.PolicyNumber = asString(raw["policyNumber"])
	fields.PolicyholderName = asString(raw["policyholderName"])
	fields.IncidentDate = asDate(raw["incidentDate"])
	fields.IncidentTime = asString(raw["incidentTime"])
	fields.IncidentLocation = asString(raw["incidentLocation"])
	fields.IncidentDescription = asString(raw["incidentDescription"])
	fields.ClaimantName = asString(raw["claimantName"])
	fields.ClaimantContact = asString(raw["claimantContact"])
	fields.ThirdParties = asStringList(raw["thirdParties"])
	fields.AssetType = asString(raw["assetType"])
	fields.AssetID = asString(raw["assetId"])
	fields.EstimatedDamage = asNumber(raw["estimatedDamage"])
	fields.ClaimType = asString(raw["claimType"])
	fields.Attachments = asStringList(raw["attachments"])
	fields.InitialEstimate = asNumber(raw["initialEstimate"])

	if dates, ok := raw["effectiveDates"].(map[string]any); ok {
		fields.EffectiveDates.Start = asDate(dates["start"])
		fields.EffectiveDates.End = asDate(dates["end"])
	}

	return fields
}

func asString(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func asDate(v any) *string {
	s := asString(v)
	if s == nil {
		return nil
	}
	normalized := NormalizeDate(*s)
	return &normalized
}

// asNumber accepts JSON numbers and currency-formatted strings. Models
// occasionally return "$15,000" despite the prompt asking for bare numbers.
func asNumber(v any) *float64 {
	switch n := v.(type) {
	case float64:
		f := n
		return &f
	case int:
		f := float64(n)
		return &f
	case string:
		return ParseCurrency(n)
	default:
		return nil
	}
}

func asStringList(v any) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}
