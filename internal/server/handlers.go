package server

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/pkaminsky/claimtriage/internal/document"
	"github.com/pkaminsky/claimtriage/internal/extract"
	"github.com/pkaminsky/claimtriage/internal/route"
)

// resultIDHeader carries the retrieval ID for a processed claim so the
// response body stays exactly the wire-contract result shape.
const resultIDHeader = "X-Result-ID"

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "pipeline is ready",
	})
}

// handleProcess accepts a multipart FNOL document upload and returns the
// processing result unchanged from the core's wire contract.
func (s *Server) handleProcess(c *gin.Context) {
	upload, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(upload.Filename))
	if !document.Supported(upload.Filename) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "unsupported file format: " + ext + " (upload PDF or TXT)",
		})
		return
	}

	tmp, err := os.CreateTemp("", "claim-*"+ext)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create temp file: " + err.Error()})
		return
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(tmpPath) }()

	if err := c.SaveUploadedFile(upload, tmpPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save upload: " + err.Error()})
		return
	}

	result, err := s.activePipeline().ProcessClaim(c.Request.Context(), tmpPath)
	if err != nil {
		log.Error().Err(err).Str("filename", upload.Filename).Msg("claim processing failed")
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	c.Header(resultIDHeader, s.results.Put(result))
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleResult(c *gin.Context) {
	result, found := s.results.Get(c.Param("id"))
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "result not found or expired"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleRoutingRules(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rules":                s.activePipeline().Router().RulesSummary(),
		"fast_track_threshold": route.FastTrackThreshold,
	})
}

func (s *Server) handleConfigStatus(c *gin.Context) {
	s.mu.RLock()
	hasKey := s.config.LLM.APIKey != ""
	source := s.keySource
	aiEnabled := s.pipeline.AIEnabled()
	s.mu.RUnlock()

	c.JSON(http.StatusOK, gin.H{
		"has_api_key":    hasKey,
		"api_key_source": source,
		"using_ai":       aiEnabled,
		"using_fallback": !aiEnabled,
	})
}

type apiKeyRequest struct {
	APIKey   string `json:"api_key" binding:"required"`
	Provider string `json:"provider"`
}

// handleSetAPIKey swaps in a new pipeline built with the given credential.
// In-flight requests keep the pipeline they captured.
func (s *Server) handleSetAPIKey(c *gin.Context) {
	var req apiKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	s.mu.RLock()
	cfg := *s.config
	s.mu.RUnlock()

	cfg.LLM.APIKey = strings.TrimSpace(req.APIKey)
	if req.Provider != "" {
		cfg.LLM.Provider = req.Provider
	} else if cfg.LLM.Provider == "" {
		cfg.LLM.Provider = "openai"
	}

	if err := s.swapPipeline(&cfg, "runtime"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload pipeline: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "API key configured, pipeline reloaded",
		"using_ai": s.activePipeline().AIEnabled(),
	})
}

func (s *Server) handleRemoveAPIKey(c *gin.Context) {
	s.mu.RLock()
	cfg := *s.config
	s.mu.RUnlock()

	cfg.LLM.APIKey = ""
	cfg.LLM.Provider = ""

	if err := s.swapPipeline(&cfg, "none"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload pipeline: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "API key removed, pattern extraction only",
	})
}

// statusFor translates the core error taxonomy to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, document.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, document.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, document.ErrRead):
		return http.StatusUnprocessableEntity
	case errors.Is(err, extract.ErrExtractionFailed), errors.Is(err, extract.ErrModelResponse):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
