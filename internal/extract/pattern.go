package extract

import (
	"regexp"
	"strings"

	"github.com/pkaminsky/claimtriage/internal/model"
)

// fieldRule is one independent labeled-line heuristic. Rules are pure
// text -> optional value mappings: a rule that finds no match leaves its
// field at the canonical default, so rule order never matters.
type fieldRule struct {
	name  string
	re    *regexp.Regexp
	apply func(match []string, fields *model.ClaimFields)
}

var patternRules = []fieldRule{
	{
		name: "policyNumber",
		re:   regexp.MustCompile(`(?i)Policy Number:?[ \t]*([A-Z0-9\-]+)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.PolicyNumber = trimmed(m[1])
		},
	},
	{
		name: "policyholderName",
		re:   regexp.MustCompile(`(?i)Policyholder Name:?\s*([A-Za-z\s]+?)(?:\n|Policy)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.PolicyholderName = trimmed(m[1])
		},
	},
	{
		name: "effectiveDates",
		re:   regexp.MustCompile(`(?i)Effective Dates?:?[ \t]*([A-Za-z0-9,\- ]+?)[ \t]+to[ \t]+([A-Za-z0-9,\- ]+)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.EffectiveDates.Start = normalized(m[1])
			f.EffectiveDates.End = normalized(m[2])
		},
	},
	{
		name: "incidentDate",
		re:   regexp.MustCompile(`(?i)(?:Date of Incident|Incident Date):?[ \t]*([A-Za-z0-9,\- ]+)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.IncidentDate = normalized(m[1])
		},
	},
	{
		name: "incidentTime",
		re:   regexp.MustCompile(`(?i)(?:Time of Incident|Incident Time):?\s*(\d{1,2}:\d{2})`),
		apply: func(m []string, f *model.ClaimFields) {
			f.IncidentTime = trimmed(m[1])
		},
	},
	{
		name: "incidentLocation",
		re:   regexp.MustCompile(`(?i)Location:?[ \t]*([^\n]+)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.IncidentLocation = trimmed(m[1])
		},
	},
	{
		name: "claimantName",
		re:   regexp.MustCompile(`(?i)Claimant:?\s*([A-Za-z\s]+?)(?:\n|Contact)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.ClaimantName = trimmed(m[1])
		},
	},
	{
		name: "claimantContact",
		re:   regexp.MustCompile(`(?i)(?:Claimant )?Contact:?[ \t]*([+\d\-() ]+)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.ClaimantContact = trimmed(m[1])
		},
	},
	{
		name: "assetType",
		re:   regexp.MustCompile(`(?i)Asset Type:?\s*([A-Za-z\s]+?)(?:\n|Make)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.AssetType = trimmed(m[1])
		},
	},
	{
		name: "assetId",
		re:   regexp.MustCompile(`(?i)VIN:?[ \t]*([A-Z0-9]+)`),
		apply: func(m []string, f *model.ClaimFields) {
			id := "VIN: " + strings.TrimSpace(m[1])
			f.AssetID = &id
		},
	},
	{
		name: "estimatedDamage",
		re:   regexp.MustCompile(`(?i)Estimated Damage:?[ \t]*\$?([\d,\.]+)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.EstimatedDamage = ParseCurrency(m[1])
			f.InitialEstimate = f.EstimatedDamage
		},
	},
	{
		name: "claimType",
		re:   regexp.MustCompile(`(?i)Claim Type:?\s*([A-Za-z\s\-]+?)(?:\n|Date)`),
		apply: func(m []string, f *model.ClaimFields) {
			f.ClaimType = trimmed(m[1])
		},
	},
}

var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// PatternExtractor is the deterministic fallback path. It works fully
// offline with zero external calls: this is the resilience boundary against
// AI-service failure, trading recall for availability.
type PatternExtractor struct{}

// NewPatternExtractor creates a pattern extractor.
func NewPatternExtractor() *PatternExtractor {
	return &PatternExtractor{}
}

// Extract maps raw document text to canonical fields. Absent labels leave
// fields at their null/empty defaults; Extract never fails.
func (e *PatternExtractor) Extract(text string) *model.ClaimFields {
	fields := model.NewClaimFields()

	for _, rule := range patternRules {
		if m := rule.re.FindStringSubmatch(text); m != nil {
			rule.apply(m, fields)
		}
	}

	fields.IncidentDescription = extractDescription(text)
	fields.Attachments = extractAttachments(text)

	return fields
}

var descriptionLabel = regexp.MustCompile(`(?i)^Description:?[ \t]*(.*)$`)
var sectionLabel = regexp.MustCompile(`^[A-Z][A-Z ]+:`)

// extractDescription captures the labeled line plus continuation lines up to
// a blank line or the next ALL-CAPS section label.
func extractDescription(text string) *string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		m := descriptionLabel.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		parts := []string{}
		if v := strings.TrimSpace(m[1]); v != "" {
			parts = append(parts, v)
		}
		for _, next := range lines[i+1:] {
			trimmedLine := strings.TrimSpace(next)
			if trimmedLine == "" || sectionLabel.MatchString(trimmedLine) {
				break
			}
			parts = append(parts, trimmedLine)
		}
		if len(parts) == 0 {
			return nil
		}
		joined := strings.Join(parts, "\n")
		return &joined
	}
	return nil
}

// extractAttachments scans for an ATTACHMENTS section and lists subsequent
// non-empty, non-separator lines with leading ordinal markers stripped.
func extractAttachments(text string) []string {
	attachments := []string{}
	lines := strings.Split(text, "\n")

	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.ToUpper(strings.TrimSpace(line)), "ATTACHMENT") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return attachments
	}

	for _, line := range lines[start:] {
		entry := strings.TrimSpace(line)
		if strings.HasPrefix(entry, "---") {
			continue
		}
		if entry == "" {
			if len(attachments) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(strings.ToUpper(entry), "ADDITIONAL") {
			break
		}
		attachments = append(attachments, ordinalPrefix.ReplaceAllString(entry, ""))
	}

	return attachments
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func normalized(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n := NormalizeDate(s)
	return &n
}
