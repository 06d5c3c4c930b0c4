package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkaminsky/claimtriage/internal/model"
)

// Renderer serializes process results for CLI output and batch artifacts.
type Renderer struct {
	pretty bool
}

// NewRenderer creates a renderer.
func NewRenderer(pretty bool) *Renderer {
	return &Renderer{pretty: pretty}
}

// Render serializes a result to JSON.
func (r *Renderer) Render(result *model.ProcessResult) ([]byte, error) {
	if r.pretty {
		return json.MarshalIndent(result, "", "  ")
	}
	return json.Marshal(result)
}

// WriteFile serializes a result to a JSON file, creating parent directories
// as needed.
func (r *Renderer) WriteFile(result *model.ProcessResult, path string) error {
	data, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("render result: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}
