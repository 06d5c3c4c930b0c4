package extract

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pkaminsky/claimtriage/internal/document"
	"github.com/pkaminsky/claimtriage/internal/llm"
	"github.com/pkaminsky/claimtriage/internal/model"
)

// ErrExtractionFailed indicates both extraction paths are exhausted: the AI
// path failed and no fallback is permitted (or the fallback itself could not
// re-read the source).
var ErrExtractionFailed = errors.New("extraction failed")

// FieldExtractor orchestrates the two-stage extraction pipeline: AI first
// when a provider is configured, pattern matching as the offline fallback.
// One attempt per path, no retries: fast predictable degradation is preferred
// over latency from repeated AI calls.
type FieldExtractor struct {
	ai       *AIExtractor // nil when no provider is configured
	pattern  *PatternExtractor
	fallback bool
}

// NewFieldExtractor creates an extractor. A nil provider means AI extraction
// is disabled and every document goes straight to the pattern path.
func NewFieldExtractor(provider llm.Provider, fallback bool) *FieldExtractor {
	var ai *AIExtractor
	if provider != nil {
		ai = NewAIExtractor(provider)
	}
	return &FieldExtractor{
		ai:       ai,
		pattern:  NewPatternExtractor(),
		fallback: fallback,
	}
}

// AIEnabled reports whether an AI provider is configured.
func (e *FieldExtractor) AIEnabled() bool {
	return e.ai != nil
}

// Extract produces canonical fields from document text. sourcePath, when
// non-empty, lets the fallback re-read the original file so text-layout
// fidelity is not lost through an intermediate string.
func (e *FieldExtractor) Extract(ctx context.Context, text, sourcePath string) (*model.ClaimFields, error) {
	if e.ai != nil {
		fields, err := e.ai.ExtractText(ctx, text)
		if err == nil {
			return fields, nil
		}
		if !e.fallback {
			return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		log.Warn().Err(err).Msg("AI extraction failed, falling back to pattern extraction")
		return e.extractWithPattern(text, sourcePath)
	}

	if !e.fallback {
		return nil, fmt.Errorf("%w: no extraction method available", ErrExtractionFailed)
	}
	return e.extractWithPattern(text, sourcePath)
}

func (e *FieldExtractor) extractWithPattern(text, sourcePath string) (*model.ClaimFields, error) {
	if sourcePath != "" {
		fresh, err := document.Read(sourcePath)
		if err != nil {
			// Both sentinels stay matchable: callers map document errors to
			// their own taxonomy status, not to a generic extraction failure.
			return nil, fmt.Errorf("%w: fallback re-read: %w", ErrExtractionFailed, err)
		}
		text = fresh
	}
	return e.pattern.Extract(text), nil
}
