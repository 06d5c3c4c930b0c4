package pipeline

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/pkaminsky/claimtriage/internal/document"
	"github.com/pkaminsky/claimtriage/internal/extract"
	"github.com/pkaminsky/claimtriage/internal/llm"
	"github.com/pkaminsky/claimtriage/internal/model"
	"github.com/pkaminsky/claimtriage/internal/route"
	"github.com/pkaminsky/claimtriage/internal/validate"
)

// Pipeline orchestrates one claim's flow: read, extract, validate, route.
// A pipeline is immutable after construction and safe for concurrent use;
// credential changes are handled by building a new pipeline and swapping it
// at the caller, never by mutating a live one.
type Pipeline struct {
	extractor *extract.FieldExtractor
	validator *validate.Validator
	router    *route.Router
	config    *model.Config
}

// NewPipeline builds a pipeline from configuration. A failed provider
// initialization degrades to fallback-only mode when fallback is enabled,
// otherwise it is surfaced to the caller.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	provider, err := llm.NewProvider(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		if !cfg.Extract.Fallback {
			return nil, fmt.Errorf("init LLM provider: %w", err)
		}
		log.Warn().Err(err).Msg("LLM provider unavailable, pattern extraction only")
		provider = nil
	}
	provider = llm.NewRateLimited(provider, cfg.LLM.RequestsPerSecond, cfg.LLM.Burst)

	return &Pipeline{
		extractor: extract.NewFieldExtractor(provider, cfg.Extract.Fallback),
		validator: validate.NewValidator(),
		router:    route.NewRouter(),
		config:    cfg,
	}, nil
}

// AIEnabled reports whether this pipeline attempts AI extraction first.
func (p *Pipeline) AIEnabled() bool {
	return p.extractor.AIEnabled()
}

// Router exposes the routing engine for rule introspection.
func (p *Pipeline) Router() *route.Router {
	return p.router
}

// ProcessClaim processes a single FNOL document end to end. Each claim's
// data flows linearly; nothing is shared or cached between claims.
func (p *Pipeline) ProcessClaim(ctx context.Context, path string) (*model.ProcessResult, error) {
	text, err := document.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	log.Debug().Str("document", path).Int("chars", len(text)).Msg("document read")

	fields, err := p.extractor.Extract(ctx, text, path)
	if err != nil {
		return nil, fmt.Errorf("extract fields: %w", err)
	}

	missing := p.validator.Validate(fields)
	if len(missing) > 0 {
		log.Debug().Strs("missing", missing).Msg("mandatory fields missing")
	}

	decision := p.router.Route(fields, missing)
	log.Info().
		Str("document", path).
		Str("route", string(decision.Route)).
		Int("missing", len(missing)).
		Msg("claim routed")

	return &model.ProcessResult{
		ExtractedFields:  fields,
		MissingFields:    missing,
		RecommendedRoute: decision.Route,
		Reasoning:        decision.Reasoning,
	}, nil
}
