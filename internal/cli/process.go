package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkaminsky/claimtriage/internal/pipeline"
)

var (
	processOutput   string
	processTimeout  time.Duration
	processProvider string
	processModel    string
	noFallback      bool
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process <document>",
	Short: "Process a single FNOL document",
	Long: `Process reads one FNOL document (PDF or TXT), extracts claim fields,
validates completeness, and prints the routing decision as JSON.

AI extraction is used when a provider credential is configured (e.g.
OPENAI_API_KEY); otherwise the deterministic pattern fallback handles the
document offline.

Example:
  claimtriage process claim_001.txt
  claimtriage process claim_001.pdf --output result.json
  claimtriage process claim_001.txt --llm-provider ollama --llm-model llama3.2`,
	Args: cobra.ExactArgs(1),
	RunE: runProcess,
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(&processOutput, "output", "o", "", "output file path for result JSON")
	processCmd.Flags().DurationVar(&processTimeout, "timeout", 2*time.Minute, "overall processing timeout")
	processCmd.Flags().StringVar(&processProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	processCmd.Flags().StringVar(&processModel, "llm-model", "", "LLM model name")
	processCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "fail instead of falling back to pattern extraction")
}

func runProcess(cmd *cobra.Command, args []string) error {
	docPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), processTimeout)
	defer cancel()

	cfg := loadConfig()
	if processProvider != "" {
		cfg.LLM.Provider = processProvider
	}
	if processModel != "" {
		cfg.LLM.Model = processModel
	}
	if noFallback {
		cfg.Extract.Fallback = false
	}
	if err := resolveCredentials(cfg); err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	result, err := p.ProcessClaim(ctx, docPath)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.Pretty)
	data, err := renderer.Render(result)
	if err != nil {
		return err
	}
	fmt.Println(string(data))

	if processOutput != "" {
		if err := renderer.WriteFile(result, processOutput); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote result: %s\n", processOutput)
	}

	return nil
}
