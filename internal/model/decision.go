package model

// Route identifies the workflow a claim is dispatched to.
type Route string

const (
	RouteFastTrack     Route = "Fast-track"
	RouteManualReview  Route = "Manual Review"
	RouteInvestigation Route = "Investigation Flag"
	RouteSpecialist    Route = "Specialist Queue"
)

// RoutingDecision is the immutable result of one routing evaluation.
type RoutingDecision struct {
	Route     Route  `json:"route"`
	Reasoning string `json:"reasoning"`
}

// ProcessResult is the wire contract returned to callers. HTTP and CLI
// layers serialize this shape unchanged.
type ProcessResult struct {
	ExtractedFields  *ClaimFields `json:"extractedFields"`
	MissingFields    []string     `json:"missingFields"`
	RecommendedRoute Route        `json:"recommendedRoute"`
	Reasoning        string       `json:"reasoning"`
}
