package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/pkaminsky/claimtriage/internal/llm"
	"github.com/pkaminsky/claimtriage/internal/model"
)

// ErrModelResponse indicates the model replied with something that is not
// valid JSON even after code-fence stripping.
var ErrModelResponse = errors.New("malformed model response")

// AIExtractor sends document text to a language model with a structured
// output prompt and parses the JSON reply into the canonical schema.
type AIExtractor struct {
	provider llm.Provider
}

// NewAIExtractor creates an AI extractor over the given provider.
func NewAIExtractor(provider llm.Provider) *AIExtractor {
	return &AIExtractor{provider: provider}
}

// ExtractText extracts canonical fields from raw document text via the model.
func (e *AIExtractor) ExtractText(ctx context.Context, text string) (*model.ClaimFields, error) {
	if e.provider == nil {
		return nil, llm.ErrUnavailable
	}

	reply, err := e.provider.Generate(ctx, buildExtractionPrompt(text))
	if err != nil {
		return nil, err
	}

	raw, err := parseModelReply(reply)
	if err != nil {
		return nil, err
	}

	// Missing keys in the raw reply are back-filled with defaults, never an
	// error: the canonical shape is guaranteed regardless of model quality.
	return Normalize(raw), nil
}

// buildExtractionPrompt embeds the full target schema and formatting rules.
func buildExtractionPrompt(documentText string) string {
	return fmt.Sprintf(`You are an insurance claims processing AI. Extract the following fields from the FNOL (First Notice of Loss) document below.

Return your response as valid JSON with this exact structure:

{
  "policyNumber": "string or null",
  "policyholderName": "string or null",
  "effectiveDates": {
    "start": "YYYY-MM-DD or null",
    "end": "YYYY-MM-DD or null"
  },
  "incidentDate": "YYYY-MM-DD or null",
  "incidentTime": "HH:MM or null",
  "incidentLocation": "string or null",
  "incidentDescription": "string or null",
  "claimantName": "string or null",
  "claimantContact": "string or null",
  "thirdParties": ["list of names or empty array"],
  "assetType": "string or null (e.g., Vehicle, Property, etc.)",
  "assetId": "string or null (e.g., VIN, address, etc.)",
  "estimatedDamage": number or null,
  "claimType": "string or null (e.g., Auto, Property, Injury, etc.)",
  "attachments": ["list of attachment names or empty array"],
  "initialEstimate": number or null
}

IMPORTANT INSTRUCTIONS:
1. Extract only factual information present in the document
2. Use null for missing fields
3. Convert dates to YYYY-MM-DD format
4. Convert currency amounts to numbers (remove $ and commas)
5. Return ONLY valid JSON, no additional text or explanation
6. If incident description mentions injury or bodily harm, ensure claimType reflects this

FNOL DOCUMENT:
%s

JSON OUTPUT:`, documentText)
}

func parseModelReply(reply string) (map[string]any, error) {
	cleaned := stripCodeFence(strings.TrimSpace(reply))

	var raw map[string]any
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelResponse, err)
	}
	return raw, nil
}

// stripCodeFence tolerates replies wrapped in markdown fences: the leading
// and trailing fence lines are dropped, plus a bare "json" language-tag line.
func stripCodeFence(reply string) string {
	if !strings.HasPrefix(reply, "```") {
		return reply
	}

	lines := strings.Split(reply, "\n")
	lines = lines[1:]
	if len(lines) > 0 && strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	if len(lines) > 0 && strings.TrimSpace(lines[0]) == "json" {
		lines = lines[1:]
	}
	return strings.Join(lines, "\n")
}
