package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pkaminsky/claimtriage/internal/cache"
	"github.com/pkaminsky/claimtriage/internal/model"
	"github.com/pkaminsky/claimtriage/internal/pipeline"
)

// Server exposes the claim pipeline over HTTP. The active pipeline is
// swapped wholesale when the credential changes; requests already in flight
// keep the instance they captured at call start.
type Server struct {
	mu       sync.RWMutex
	pipeline *pipeline.Pipeline
	config   *model.Config
	results  *cache.ResultStore
	router   *gin.Engine

	// keySource records where the active credential came from: "env",
	// "runtime" or "none". Reported by GET /config.
	keySource string
}

// NewServer creates a server around an initial pipeline.
func NewServer(cfg *model.Config, p *pipeline.Pipeline) *Server {
	if !cfg.Output.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	keySource := "none"
	if cfg.LLM.APIKey != "" {
		keySource = "env"
	}

	s := &Server{
		pipeline:  p,
		config:    cfg,
		results:   cache.NewResultStore(cfg.Server.ResultTTL),
		router:    r,
		keySource: keySource,
	}
	s.setupRoutes()
	return s
}

// Run starts the server on the configured address.
func (s *Server) Run() error {
	log.Info().Str("addr", s.config.Server.Addr).Msg("starting HTTP server")
	return s.router.Run(s.config.Server.Addr)
}

// Handler exposes the underlying handler for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)
	s.router.POST("/process", s.handleProcess)
	s.router.GET("/results/:id", s.handleResult)
	s.router.GET("/routing-rules", s.handleRoutingRules)
	s.router.GET("/config", s.handleConfigStatus)
	s.router.POST("/config/api-key", s.handleSetAPIKey)
	s.router.DELETE("/config/api-key", s.handleRemoveAPIKey)
}

// activePipeline returns the pipeline captured at call start.
func (s *Server) activePipeline() *pipeline.Pipeline {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipeline
}

// swapPipeline rebuilds the pipeline from the updated config and swaps it in
// for subsequent requests.
func (s *Server) swapPipeline(cfg *model.Config, source string) error {
	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.pipeline = p
	s.config = cfg
	s.keySource = source
	s.mu.Unlock()
	return nil
}
