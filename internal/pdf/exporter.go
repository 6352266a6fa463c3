package pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/mzen17/PDF-Page-Editor/pkg/logger"
	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

// ErrNoPagesSelected reports an export attempt with every page excluded.
var ErrNoPagesSelected = errors.New("no pages selected for export")

// PageRun is a maximal run of consecutive export pages drawn from the same
// source document. Pages are 1-based pdfcpu selectors in output order.
type PageRun struct {
	Path  string
	Pages []string
}

// GroupRuns splits an export sequence into per-source runs. Each run becomes
// one collect pass over its source file, and the collected parts merge in
// run order, so the output preserves the sequence exactly.
func GroupRuns(refs []models.PageRef) []PageRun {
	var runs []PageRun
	for _, ref := range refs {
		page := strconv.Itoa(ref.PageIndex + 1)
		if n := len(runs); n > 0 && runs[n-1].Path == ref.Path {
			runs[n-1].Pages = append(runs[n-1].Pages, page)
			continue
		}
		runs = append(runs, PageRun{Path: ref.Path, Pages: []string{page}})
	}
	return runs
}

// Exporter assembles a new PDF from pages of previously imported documents.
type Exporter struct {
	log *logger.Logger
}

func NewExporter(log *logger.Logger) *Exporter {
	return &Exporter{log: log}
}

// Export writes the referenced pages, in the given order, to destPath. The
// result is staged next to the destination and renamed into place, so a
// failed export never leaves a partial file behind.
func (e *Exporter) Export(ctx context.Context, refs []models.PageRef, destPath string) error {
	if len(refs) == 0 {
		return ErrNoPagesSelected
	}

	runs := GroupRuns(refs)
	e.log.Debug("Exporting %d pages in %d runs to: %s", len(refs), len(runs), destPath)

	scratch, err := os.MkdirTemp("", "pdf-page-editor-export-*")
	if err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}
	defer os.RemoveAll(scratch)

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	parts := make([]string, 0, len(runs))
	for i, run := range runs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		part := filepath.Join(scratch, fmt.Sprintf("part_%03d.pdf", i))
		if err := api.CollectFile(run.Path, part, run.Pages, conf); err != nil {
			return fmt.Errorf("failed to collect pages from %s: %w", filepath.Base(run.Path), err)
		}
		parts = append(parts, part)
	}

	partial := destPath + ".partial"
	if err := api.MergeCreateFile(parts, partial, false, conf); err != nil {
		os.Remove(partial)
		return fmt.Errorf("failed to assemble %s: %w", destPath, err)
	}

	if err := os.Rename(partial, destPath); err != nil {
		os.Remove(partial)
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	e.log.Info("Exported %d pages to: %s", len(refs), destPath)
	return nil
}
