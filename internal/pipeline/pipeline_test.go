package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkaminsky/claimtriage/internal/document"
	"github.com/pkaminsky/claimtriage/internal/model"
)

const fnolTemplate = `FIRST NOTICE OF LOSS

Policy Number: POL-2023-456789
Policyholder Name: John Smith
Effective Dates: 2023-01-01 to 2024-01-01

Date of Incident: June 15, 2023
Time of Incident: 14:30
Location: 123 Main Street, Springfield
Description: %DESCRIPTION%

Claimant: John Smith
Contact: +1 (555) 123-4567

Asset Type: Vehicle
VIN: 1HGBH41JXMN109186
Estimated Damage: %DAMAGE%
Claim Type: %TYPE%
`

func writeDoc(t *testing.T, damage, claimType, description string) string {
	t.Helper()
	text := strings.NewReplacer(
		"%DAMAGE%", damage,
		"%TYPE%", claimType,
		"%DESCRIPTION%", description,
	).Replace(fnolTemplate)

	path := filepath.Join(t.TempDir(), "claim.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := NewPipeline(model.DefaultConfig())
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	if p.AIEnabled() {
		t.Fatal("AIEnabled() = true, want pattern-only with no provider configured")
	}
	return p
}

func TestProcessClaim_FastTrack(t *testing.T) {
	p := newTestPipeline(t)
	path := writeDoc(t, "$15,000", "Auto", "Rear-end collision at a stop light.")

	result, err := p.ProcessClaim(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessClaim() error = %v", err)
	}
	if result.RecommendedRoute != model.RouteFastTrack {
		t.Errorf("RecommendedRoute = %q, want Fast-track (missing: %v)", result.RecommendedRoute, result.MissingFields)
	}
	if len(result.MissingFields) != 0 {
		t.Errorf("MissingFields = %v, want none", result.MissingFields)
	}
	if result.ExtractedFields.EstimatedDamage == nil || *result.ExtractedFields.EstimatedDamage != 15000 {
		t.Errorf("EstimatedDamage = %v, want 15000", result.ExtractedFields.EstimatedDamage)
	}
}

func TestProcessClaim_HighValue(t *testing.T) {
	p := newTestPipeline(t)
	path := writeDoc(t, "$50,000", "Auto", "Multi-vehicle collision on the highway.")

	result, err := p.ProcessClaim(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessClaim() error = %v", err)
	}
	if result.RecommendedRoute != model.RouteManualReview {
		t.Errorf("RecommendedRoute = %q, want Manual Review", result.RecommendedRoute)
	}
	if !strings.Contains(result.Reasoning, "exceeds") {
		t.Errorf("Reasoning = %q, want high-value explanation", result.Reasoning)
	}
}

func TestProcessClaim_FraudIndicators(t *testing.T) {
	p := newTestPipeline(t)
	path := writeDoc(t, "$10,000", "Auto", "The damage appears staged and inconsistent with the police report.")

	result, err := p.ProcessClaim(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessClaim() error = %v", err)
	}
	if result.RecommendedRoute != model.RouteInvestigation {
		t.Errorf("RecommendedRoute = %q, want Investigation Flag", result.RecommendedRoute)
	}
}

func TestProcessClaim_Injury(t *testing.T) {
	p := newTestPipeline(t)
	path := writeDoc(t, "$10,000", "Personal Injury", "Claimant was taken to hospital by ambulance.")

	result, err := p.ProcessClaim(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessClaim() error = %v", err)
	}
	if result.RecommendedRoute != model.RouteSpecialist {
		t.Errorf("RecommendedRoute = %q, want Specialist Queue", result.RecommendedRoute)
	}
}

func TestProcessClaim_MissingFields(t *testing.T) {
	p := newTestPipeline(t)
	path := filepath.Join(t.TempDir(), "sparse.txt")
	if err := os.WriteFile(path, []byte("Policy Number: POL-1\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	result, err := p.ProcessClaim(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessClaim() error = %v", err)
	}
	if result.RecommendedRoute != model.RouteManualReview {
		t.Errorf("RecommendedRoute = %q, want Manual Review", result.RecommendedRoute)
	}
	if len(result.MissingFields) == 0 {
		t.Error("MissingFields is empty, want the absent mandatory paths")
	}
}

func TestProcessClaim_ReadErrors(t *testing.T) {
	p := newTestPipeline(t)

	_, err := p.ProcessClaim(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, document.ErrNotFound) {
		t.Errorf("ProcessClaim() error = %v, want ErrNotFound", err)
	}
}

func TestProcessClaim_WireFormat(t *testing.T) {
	p := newTestPipeline(t)
	path := writeDoc(t, "$15,000", "Auto", "Rear-end collision at a stop light.")

	result, err := p.ProcessClaim(context.Background(), path)
	if err != nil {
		t.Fatalf("ProcessClaim() error = %v", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal result: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal result: %v", err)
	}
	for _, key := range []string{"extractedFields", "missingFields", "recommendedRoute", "reasoning"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("wire format missing key %q", key)
		}
	}
	if decoded["missingFields"] == nil {
		t.Error("missingFields serialized as null, want []")
	}

	// Every schema key appears even when null.
	fields, ok := decoded["extractedFields"].(map[string]any)
	if !ok {
		t.Fatalf("extractedFields = %T, want object", decoded["extractedFields"])
	}
	for _, key := range []string{"policyNumber", "effectiveDates", "thirdParties", "estimatedDamage", "initialEstimate", "attachments"} {
		if _, present := fields[key]; !present {
			t.Errorf("extractedFields missing key %q", key)
		}
	}
	if fields["thirdParties"] == nil {
		t.Error("thirdParties serialized as null, want []")
	}
}
