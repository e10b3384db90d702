// Package tabula wraps the external table-extraction tool. The tool is a
// black box: given a PDF path it emits JSON pages, each page an array of
// rows, each row an array of text-bearing cells.
package tabula

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/muniir-gopaul/scan-pdf/internal/config"
)

// Cell is one extracted table cell. Text is nil when the tool reported no
// text for the position.
type Cell struct {
	Text *string `json:"text"`
}

// Page is the per-page cell grid.
type Page struct {
	Data [][]Cell `json:"data"`
}

// Extractor is the table-extraction collaborator boundary.
type Extractor interface {
	ExtractTables(ctx context.Context, pdfPath string) ([]Page, error)
}

// JarExtractor shells out to the tabula jar in stream mode.
type JarExtractor struct {
	javaBin string
	jarPath string
	timeout time.Duration
}

func NewJarExtractor(cfg config.Config) (*JarExtractor, error) {
	if _, err := os.Stat(cfg.TabulaJarPath); err != nil {
		return nil, fmt.Errorf("tabula jar not found at %s: %w", cfg.TabulaJarPath, err)
	}
	if _, err := exec.LookPath(cfg.JavaBin); err != nil {
		return nil, fmt.Errorf("java not available: %w", err)
	}
	return &JarExtractor{
		javaBin: cfg.JavaBin,
		jarPath: cfg.TabulaJarPath,
		timeout: time.Duration(cfg.TabulaTimeoutMs) * time.Millisecond,
	}, nil
}

func (e *JarExtractor) ExtractTables(ctx context.Context, pdfPath string) ([]Page, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, e.javaBin, "-jar", e.jarPath, "--stream", "-p", "all", "-f", "JSON", pdfPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("tabula failed: %w (%s)", err, stderr.String())
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("tabula returned no output for %s", pdfPath)
	}

	var pages []Page
	if err := json.Unmarshal(stdout.Bytes(), &pages); err != nil {
		return nil, fmt.Errorf("failed to parse tabula JSON: %w", err)
	}
	return pages, nil
}
