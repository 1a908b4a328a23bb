// Package ingest handles source document ingestion from PDF files.
package ingest

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/grimoire-tools/grimoire/internal/home"
	"github.com/grimoire-tools/grimoire/internal/pipeline"
	"github.com/grimoire-tools/grimoire/internal/svcctx"
)

// Request contains the parameters for ingesting a source document.
type Request struct {
	PDFPaths []string // PDF file paths (sorted by numeric suffix)
	Title    string   // document title (optional, derived from filename if empty)
}

// Result contains the result of a successful ingest operation.
type Result struct {
	DocumentID string
	Title      string
	PageCount  int
	TextPath   string
}

// Ingest extracts text from PDFs and writes the joined document text under
// the home sources directory.
func Ingest(ctx context.Context, homeDir *home.Dir, req Request) (*Result, error) {
	log := svcctx.LoggerFrom(ctx)

	if len(req.PDFPaths) == 0 {
		return nil, fmt.Errorf("no PDF paths provided")
	}

	// Validate all PDF paths exist
	for _, p := range req.PDFPaths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("PDF not found: %s", p)
		}
	}

	// Sort PDFs by numeric suffix (e.g., bestiary-1.pdf, bestiary-2.pdf)
	sortedPaths := sortPDFsByNumber(req.PDFPaths)
	log.Info("starting ingest", "pdfs", len(sortedPaths), "title", req.Title)

	title := req.Title
	if title == "" {
		title = deriveTitle(sortedPaths[0])
	}

	documentID := uuid.New().String()

	var pages []string
	for i, pdfPath := range sortedPaths {
		log.Debug("extracting PDF", "file", filepath.Base(pdfPath), "part", i+1, "of", len(sortedPaths))
		pdfPages, err := extractText(ctx, pdfPath)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", pdfPath, err)
		}
		pages = append(pages, pdfPages...)
	}

	if len(pages) == 0 {
		return nil, fmt.Errorf("no text extracted from PDFs")
	}

	text := pipeline.JoinPages(pipeline.CleanPages(pages))
	textPath := homeDir.SourceTextPath(documentID)
	if err := os.MkdirAll(filepath.Dir(textPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sources directory: %w", err)
	}
	if err := os.WriteFile(textPath, []byte(text), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write document text: %w", err)
	}

	log.Info("ingest complete", "document_id", documentID, "pages", len(pages), "path", textPath)

	return &Result{
		DocumentID: documentID,
		Title:      title,
		PageCount:  len(pages),
		TextPath:   textPath,
	}, nil
}

// extractText renders each page of a PDF to plain text using pdftotext
// (poppler-utils). pdfcpu supplies the page count; rendering happens in
// bounded parallel workers.
func extractText(ctx context.Context, pdfPath string) ([]string, error) {
	f, err := os.Open(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	pageCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	maxWorkers := runtime.NumCPU()

	type result struct {
		pageNum int
		text    string
		err     error
	}

	results := make(chan result, pageCount)
	sem := make(chan struct{}, maxWorkers)

	for page := 1; page <= pageCount; page++ {
		sem <- struct{}{} // acquire
		go func(pageNum int) {
			defer func() { <-sem }() // release

			text, err := renderPageText(ctx, pdfPath, pageNum)
			results <- result{pageNum: pageNum, text: text, err: err}
		}(page)
	}

	pages := make([]string, pageCount)
	for i := 0; i < pageCount; i++ {
		r := <-results
		if r.err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", r.pageNum, r.err)
		}
		pages[r.pageNum-1] = r.text
	}

	return pages, nil
}

// renderPageText extracts one page's text with pdftotext.
func renderPageText(ctx context.Context, pdfPath string, pageNum int) (string, error) {
	pageStr := strconv.Itoa(pageNum)

	// -layout preserves column layout so statblock lines survive;
	// "-" writes to stdout.
	cmd := exec.CommandContext(ctx, "pdftotext",
		"-layout",
		"-f", pageStr,
		"-l", pageStr,
		pdfPath,
		"-",
	)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return string(output), nil
}

// sortPDFsByNumber sorts PDF paths by their numeric suffix.
// e.g., ["vol-2.pdf", "vol-1.pdf", "vol-10.pdf"] -> ["vol-1.pdf", "vol-2.pdf", "vol-10.pdf"]
func sortPDFsByNumber(paths []string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)

	re := regexp.MustCompile(`-(\d+)\.pdf$`)

	sort.Slice(sorted, func(i, j int) bool {
		mi := re.FindStringSubmatch(sorted[i])
		mj := re.FindStringSubmatch(sorted[j])

		// If both have numbers, sort numerically
		if len(mi) > 1 && len(mj) > 1 {
			ni, _ := strconv.Atoi(mi[1])
			nj, _ := strconv.Atoi(mj[1])
			return ni < nj
		}

		// Files without numbers come first
		if len(mi) > 1 {
			return false
		}
		if len(mj) > 1 {
			return true
		}

		// Both without numbers: alphabetical
		return sorted[i] < sorted[j]
	})

	return sorted
}

// deriveTitle extracts a title from a PDF filename.
// e.g., "monster-manual.pdf" -> "monster-manual"
// e.g., "bestiary-1.pdf" -> "bestiary"
func deriveTitle(pdfPath string) string {
	base := filepath.Base(pdfPath)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	// Remove numeric suffix like "-1", "-2", etc.
	re := regexp.MustCompile(`-\d+$`)
	name = re.ReplaceAllString(name, "")

	return name
}
