package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/pkaminsky/claimtriage/internal/pipeline"
	"github.com/pkaminsky/claimtriage/internal/server"
)

var (
	serveAddr      string
	serveResultTTL time.Duration
	serveProvider  string
	serveModel     string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API for claim processing",
	Long: `Serve starts an HTTP API exposing the claim pipeline:

  GET    /health              liveness check
  POST   /process             multipart FNOL upload, returns the result
  GET    /results/:id         retrieve a recent result by ID
  GET    /routing-rules       routing rule summary and fast-track threshold
  GET    /config              credential status
  POST   /config/api-key      set the AI credential (swaps the pipeline)
  DELETE /config/api-key      remove the credential (fallback-only mode)

Example:
  claimtriage serve --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default :8080)")
	serveCmd.Flags().DurationVar(&serveResultTTL, "result-ttl", 0, "how long results stay retrievable by ID (default 30m)")
	serveCmd.Flags().StringVar(&serveProvider, "llm-provider", "", "LLM provider (openai, anthropic, ollama)")
	serveCmd.Flags().StringVar(&serveModel, "llm-model", "", "LLM model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveResultTTL > 0 {
		cfg.Server.ResultTTL = serveResultTTL
	}
	if serveProvider != "" {
		cfg.LLM.Provider = serveProvider
	}
	if serveModel != "" {
		cfg.LLM.Model = serveModel
	}
	if err := resolveCredentials(cfg); err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}

	return server.NewServer(cfg, p).Run()
}
