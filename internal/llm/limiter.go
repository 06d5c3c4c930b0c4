package llm

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimited wraps a Provider with a token-bucket limiter so concurrent
// claims cannot stampede the model endpoint.
type RateLimited struct {
	inner   Provider
	limiter *rate.Limiter
}

// NewRateLimited wraps the provider. requestsPerSecond <= 0 disables
// throttling.
func NewRateLimited(inner Provider, requestsPerSecond float64, burst int) Provider {
	if inner == nil || requestsPerSecond <= 0 {
		return inner
	}
	if burst <= 0 {
		burst = 1
	}
	return &RateLimited{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst),
	}
}

// Name returns the wrapped provider's name
func (p *RateLimited) Name() string {
	return p.inner.Name()
}

// Generate waits for rate-limit clearance, then delegates
func (p *RateLimited) Generate(ctx context.Context, prompt string) (string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return p.inner.Generate(ctx, prompt)
}
