package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotFound indicates the document path does not exist
	ErrNotFound = errors.New("document not found")

	// ErrUnsupportedFormat indicates an extension other than .txt/.pdf
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrRead indicates the file exists but its content could not be decoded
	ErrRead = errors.New("document read failed")
)

// Read extracts raw text from a document. Plain text files are returned
// trimmed; PDF text is the per-page extraction concatenated and trimmed.
// Failures propagate to the caller, there is no retry.
func Read(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return readPDF(path)
	case ".txt", ".text":
		return readText(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: read text file: %v", ErrRead, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open pdf: %v", ErrRead, err)
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: extract page %d: %v", ErrRead, i, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return strings.TrimSpace(sb.String()), nil
}

// Supported reports whether Read accepts the path's extension. Upload and
// batch layers use it to filter before touching the pipeline.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf", ".txt", ".text":
		return true
	}
	return false
}
