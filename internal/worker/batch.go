package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkaminsky/claimtriage/internal/document"
	"github.com/pkaminsky/claimtriage/internal/model"
)

// Processor defines the interface for processing one claim document.
type Processor interface {
	ProcessClaim(ctx context.Context, path string) (*model.ProcessResult, error)
}

// ClaimJob processes one document.
type ClaimJob struct {
	Path      string
	Processor Processor
}

// Execute runs the claim job. A document's failure is captured in its
// result, never propagated: one bad claim must not abort the batch.
func (j *ClaimJob) Execute(ctx context.Context) Result {
	result, err := j.Processor.ProcessClaim(ctx, j.Path)
	return &ClaimResult{
		Path:   j.Path,
		Result: result,
		Err:    err,
	}
}

// ClaimResult is the per-document outcome of a batch run.
type ClaimResult struct {
	Path   string
	Result *model.ProcessResult
	Err    error
}

// GetError returns the error from the claim result
func (r *ClaimResult) GetError() error {
	return r.Err
}

// BatchProcessor processes a directory of FNOL documents. Default
// concurrency is 1: documents run sequentially, in sorted path order.
type BatchProcessor struct {
	processor   Processor
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(processor Processor, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &BatchProcessor{
		processor:   processor,
		concurrency: concurrency,
	}
}

// ProcessDirectory processes every supported document in dir.
func (b *BatchProcessor) ProcessDirectory(ctx context.Context, dir string) ([]*ClaimResult, error) {
	paths, err := ListDocuments(dir)
	if err != nil {
		return nil, err
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ProcessPaths processes the given documents through the pool.
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*ClaimResult {
	if len(paths) == 0 {
		return []*ClaimResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&ClaimJob{Path: path, Processor: b.processor})
	}

	results := pool.Wait()

	claimResults := make([]*ClaimResult, len(results))
	for i, result := range results {
		claimResults[i] = result.(*ClaimResult)
	}
	sort.Slice(claimResults, func(i, j int) bool {
		return claimResults[i].Path < claimResults[j].Path
	})

	return claimResults
}

// ListDocuments returns the supported documents in dir, sorted by path.
func ListDocuments(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if document.Supported(entry.Name()) {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)

	return paths, nil
}

// Summary aggregates a batch run.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Routes    map[model.Route]int
}

// Summarize computes batch totals and the route distribution.
func Summarize(results []*ClaimResult) Summary {
	summary := Summary{
		Total:  len(results),
		Routes: make(map[model.Route]int),
	}
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Succeeded++
		summary.Routes[r.Result.RecommendedRoute]++
	}
	return summary
}
