package route

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkaminsky/claimtriage/internal/model"
)

// FastTrackThreshold is the strict upper bound (USD) for fast-track
// processing. Damage equal to the threshold is NOT fast-tracked.
const FastTrackThreshold = 25000

// fraudIndicators trigger investigation routing on a case-insensitive
// substring match in the incident description.
var fraudIndicators = []string{
	"fraud",
	"fraudulent",
	"inconsistent",
	"staged",
	"suspicious",
	"fabricated",
	"false claim",
	"deceptive",
}

// injuryKeywords trigger specialist routing when found in claim type or
// description.
var injuryKeywords = []string{
	"injury",
	"injured",
	"bodily harm",
	"medical",
	"hospital",
	"ambulance",
	"hurt",
	"pain",
	"personal injury",
	"bodily injury",
}

// rule is one entry of the priority cascade: first match wins, so order is
// the contract.
type rule struct {
	name    string
	matches func(fields *model.ClaimFields, missing []string) bool
	decide  func(fields *model.ClaimFields, missing []string) model.RoutingDecision
}

// Router applies the ordered business rules. It is stateless: every call is
// a full re-evaluation reaching exactly one terminal route.
type Router struct {
	rules []rule
}

// NewRouter creates a router with the fixed rule cascade.
func NewRouter() *Router {
	return &Router{rules: []rule{
		{
			name: "missing-fields",
			matches: func(_ *model.ClaimFields, missing []string) bool {
				return len(missing) > 0
			},
			decide: func(_ *model.ClaimFields, missing []string) model.RoutingDecision {
				return model.RoutingDecision{
					Route: model.RouteManualReview,
					Reasoning: fmt.Sprintf(
						"Mandatory fields are missing: %s. Claim requires manual review to complete missing information.",
						strings.Join(missing, ", ")),
				}
			},
		},
		{
			name: "fraud-indicators",
			matches: func(fields *model.ClaimFields, _ []string) bool {
				return ContainsFraudIndicators(fields.Description())
			},
			decide: func(_ *model.ClaimFields, _ []string) model.RoutingDecision {
				return model.RoutingDecision{
					Route: model.RouteInvestigation,
					Reasoning: "Incident description contains potential fraud indicators " +
						"(e.g., 'fraud', 'inconsistent', 'staged'). Claim flagged for investigation team review.",
				}
			},
		},
		{
			name: "injury",
			matches: func(fields *model.ClaimFields, _ []string) bool {
				return fields.Type() != "" && isInjuryClaim(fields.Type(), fields.Description())
			},
			decide: func(_ *model.ClaimFields, _ []string) model.RoutingDecision {
				return model.RoutingDecision{
					Route:     model.RouteSpecialist,
					Reasoning: "Claim type involves injury or bodily harm. Routing to specialist queue for expert assessment.",
				}
			},
		},
		{
			name: "fast-track-value",
			matches: func(fields *model.ClaimFields, _ []string) bool {
				return fields.EstimatedDamage != nil && *fields.EstimatedDamage < FastTrackThreshold
			},
			decide: func(fields *model.ClaimFields, _ []string) model.RoutingDecision {
				reasons := []string{
					fmt.Sprintf("Estimated damage ($%s) is below the $%s threshold for fast-track processing",
						formatUSD(*fields.EstimatedDamage), formatThousands(FastTrackThreshold)),
					"All mandatory fields are present",
					"No fraud indicators detected",
					"Claim type does not require specialist review",
				}
				return model.RoutingDecision{
					Route:     model.RouteFastTrack,
					Reasoning: strings.Join(reasons, ". ") + ".",
				}
			},
		},
		{
			name: "high-value",
			matches: func(fields *model.ClaimFields, _ []string) bool {
				return fields.EstimatedDamage != nil && *fields.EstimatedDamage >= FastTrackThreshold
			},
			decide: func(fields *model.ClaimFields, _ []string) model.RoutingDecision {
				return model.RoutingDecision{
					Route: model.RouteManualReview,
					Reasoning: fmt.Sprintf(
						"Estimated damage ($%s) exceeds the $%s fast-track threshold. High-value claim requires manual review and approval.",
						formatUSD(*fields.EstimatedDamage), formatThousands(FastTrackThreshold)),
				}
			},
		},
	}}
}

// Route evaluates the cascade top to bottom and returns the first match.
// With no estimated damage and nothing else triggering, the claim defaults
// to manual review.
func (r *Router) Route(fields *model.ClaimFields, missing []string) model.RoutingDecision {
	for _, rule := range r.rules {
		if rule.matches(fields, missing) {
			return rule.decide(fields, missing)
		}
	}
	return model.RoutingDecision{
		Route: model.RouteManualReview,
		Reasoning: "Unable to determine estimated damage or claim does not meet fast-track criteria. " +
			"Routing to manual review for proper assessment.",
	}
}

// RulesSummary maps each route to its trigger criteria, for the routing-rules
// introspection endpoint.
func (r *Router) RulesSummary() map[model.Route]string {
	return map[model.Route]string{
		model.RouteFastTrack:     fmt.Sprintf("Estimated damage < $%s, all fields present, no red flags", formatThousands(FastTrackThreshold)),
		model.RouteManualReview:  "Missing mandatory fields OR high-value claim OR default routing",
		model.RouteInvestigation: "Fraud indicators detected in description",
		model.RouteSpecialist:    "Claim involves injury or bodily harm",
	}
}

// ContainsFraudIndicators reports whether text contains any fraud indicator
// keyword, case-insensitively.
func ContainsFraudIndicators(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, indicator := range fraudIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

func isInjuryClaim(claimType, description string) bool {
	combined := strings.ToLower(claimType + " " + description)
	for _, keyword := range injuryKeywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return false
}

// formatUSD renders a dollar amount with thousands separators and two
// decimals, e.g. 15000 -> "15,000.00".
func formatUSD(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)
	dot := strings.Index(s, ".")
	return formatIntPart(s[:dot]) + s[dot:]
}

func formatThousands(n int) string {
	return formatIntPart(strconv.Itoa(n))
}

func formatIntPart(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var sb strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(d)
	}
	if neg {
		return "-" + sb.String()
	}
	return sb.String()
}
