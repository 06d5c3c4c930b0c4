package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkaminsky/claimtriage/internal/model"
	"github.com/pkaminsky/claimtriage/internal/pipeline"
	"github.com/pkaminsky/claimtriage/internal/worker"
)

var (
	batchOutputDir   string
	batchConcurrency int
	batchTimeout     time.Duration
	batchProvider    string
	batchModel       string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <directory>",
	Short: "Process all FNOL documents in a directory",
	Long: `Batch processes every supported document (*.txt, *.pdf) in a directory.

Documents run sequentially by default; a failure in one document is recorded
and never aborts the rest of the batch. The summary reports totals and the
route distribution.

Example:
  claimtriage batch ./sample_documents
  claimtriage batch ./claims --output-dir ./results --concurrency 4`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVar(&batchOutputDir, "output-dir", "", "directory for per-document result JSON files")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 0, "worker count (default 1: sequential)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	batchCmd.Flags().StringVar(&batchProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&batchModel, "llm-model", "", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	dir := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg := loadConfig()
	if batchProvider != "" {
		cfg.LLM.Provider = batchProvider
	}
	if batchModel != "" {
		cfg.LLM.Model = batchModel
	}
	if batchConcurrency > 0 {
		cfg.Batch.Concurrency = batchConcurrency
	}
	if batchOutputDir != "" {
		cfg.Batch.OutputDir = batchOutputDir
	}
	if err := resolveCredentials(cfg); err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	processor := worker.NewBatchProcessor(p, cfg.Batch.Concurrency)
	results, err := processor.ProcessDirectory(ctx, dir)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Printf("No documents found in %s\n", dir)
		return nil
	}

	renderer := pipeline.NewRenderer(cfg.Output.Pretty)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", filepath.Base(r.Path), r.Err)
			continue
		}
		fmt.Printf("✓ %s → %s\n", filepath.Base(r.Path), r.Result.RecommendedRoute)

		if cfg.Batch.OutputDir != "" {
			name := strings.TrimSuffix(filepath.Base(r.Path), filepath.Ext(r.Path)) + "_result.json"
			outPath := filepath.Join(cfg.Batch.OutputDir, name)
			if err := renderer.WriteFile(r.Result, outPath); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: write %s: %v\n", outPath, err)
			}
		}
	}

	printSummary(worker.Summarize(results))
	return nil
}

func printSummary(summary worker.Summary) {
	fmt.Println()
	fmt.Println("Batch summary")
	fmt.Printf("  Total documents: %d\n", summary.Total)
	fmt.Printf("  Processed: %d\n", summary.Succeeded)
	fmt.Printf("  Errors: %d\n", summary.Failed)

	if len(summary.Routes) == 0 {
		return
	}

	routes := make([]string, 0, len(summary.Routes))
	for route := range summary.Routes {
		routes = append(routes, string(route))
	}
	sort.Strings(routes)

	fmt.Println("  Routing distribution:")
	for _, route := range routes {
		fmt.Printf("    %s: %d\n", route, summary.Routes[model.Route(route)])
	}
}
