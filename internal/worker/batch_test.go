package worker

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkaminsky/claimtriage/internal/model"
)

// stubProcessor fails any path containing "bad" and fast-tracks the rest.
type stubProcessor struct{}

func (s *stubProcessor) ProcessClaim(_ context.Context, path string) (*model.ProcessResult, error) {
	if strings.Contains(path, "bad") {
		return nil, errors.New("boom")
	}
	return &model.ProcessResult{
		ExtractedFields:  model.NewClaimFields(),
		MissingFields:    []string{},
		RecommendedRoute: model.RouteFastTrack,
		Reasoning:        "ok",
	}, nil
}

func TestProcessPaths_ErrorIsolation(t *testing.T) {
	b := NewBatchProcessor(&stubProcessor{}, 0)
	results := b.ProcessPaths(context.Background(), []string{"a.txt", "bad.txt", "c.txt"})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	// Results come back sorted by path regardless of completion order.
	for i, want := range []string{"a.txt", "bad.txt", "c.txt"} {
		if results[i].Path != want {
			t.Errorf("results[%d].Path = %q, want %q", i, results[i].Path, want)
		}
	}
	if results[1].Err == nil {
		t.Error("bad.txt: Err = nil, want failure captured in result")
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Error("good documents failed, want batch to survive one bad document")
	}
}

func TestProcessPaths_SequentialLargeBatch(t *testing.T) {
	b := NewBatchProcessor(&stubProcessor{}, 1)
	paths := make([]string, 12)
	for i := range paths {
		paths[i] = fmt.Sprintf("claim_%02d.txt", i)
	}
	paths[7] = "bad_07.txt"

	// A single worker must chew through a batch much larger than the pool's
	// channel buffers. Guarded by a timeout so a stalled pool fails the test
	// instead of hanging it.
	done := make(chan []*ClaimResult, 1)
	go func() {
		done <- b.ProcessPaths(context.Background(), paths)
	}()

	var results []*ClaimResult
	select {
	case results = <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("sequential batch of 12 documents did not complete")
	}

	if len(results) != len(paths) {
		t.Fatalf("got %d results, want %d", len(results), len(paths))
	}
	summary := Summarize(results)
	if summary.Succeeded != 11 || summary.Failed != 1 {
		t.Errorf("Summary = %+v, want 11 succeeded, 1 failed", summary)
	}
}

func TestProcessPaths_Empty(t *testing.T) {
	b := NewBatchProcessor(&stubProcessor{}, 1)
	results := b.ProcessPaths(context.Background(), nil)
	if results == nil || len(results) != 0 {
		t.Errorf("ProcessPaths(nil) = %v, want empty non-nil slice", results)
	}
}

func TestProcessPaths_Concurrent(t *testing.T) {
	b := NewBatchProcessor(&stubProcessor{}, 4)
	paths := []string{"d.txt", "b.txt", "a.txt", "c.txt"}
	results := b.ProcessPaths(context.Background(), paths)

	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	for i := 1; i < len(results); i++ {
		if results[i-1].Path > results[i].Path {
			t.Fatalf("results out of order: %q before %q", results[i-1].Path, results[i].Path)
		}
	}
}

func TestListDocuments(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.txt", "a.pdf", "skip.docx", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := ListDocuments(dir)
	if err != nil {
		t.Fatalf("ListDocuments() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("ListDocuments() = %v, want the two supported documents", paths)
	}
	if filepath.Base(paths[0]) != "a.pdf" || filepath.Base(paths[1]) != "b.txt" {
		t.Errorf("ListDocuments() = %v, want sorted [a.pdf b.txt]", paths)
	}
}

func TestListDocuments_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := ListDocuments(file); err == nil {
		t.Error("ListDocuments(file) error = nil, want error")
	}
	if _, err := ListDocuments(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("ListDocuments(missing) error = nil, want error")
	}
}

func TestSummarize(t *testing.T) {
	results := []*ClaimResult{
		{Path: "a", Result: &model.ProcessResult{RecommendedRoute: model.RouteFastTrack}},
		{Path: "b", Result: &model.ProcessResult{RecommendedRoute: model.RouteFastTrack}},
		{Path: "c", Result: &model.ProcessResult{RecommendedRoute: model.RouteManualReview}},
		{Path: "d", Err: errors.New("boom")},
	}

	summary := Summarize(results)
	if summary.Total != 4 || summary.Succeeded != 3 || summary.Failed != 1 {
		t.Errorf("Summary = %+v, want total 4, succeeded 3, failed 1", summary)
	}
	if summary.Routes[model.RouteFastTrack] != 2 || summary.Routes[model.RouteManualReview] != 1 {
		t.Errorf("Routes = %v, want Fast-track:2 Manual Review:1", summary.Routes)
	}
}
