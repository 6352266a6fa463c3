package scanner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mzen17/PDF-Page-Editor/pkg/logger"
)

// FoundPDF is one PDF file discovered under a scanned directory.
type FoundPDF struct {
	AbsolutePath string
	RelativePath string
}

type DirectoryScanner struct {
	log *logger.Logger
}

func New(log *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{log: log}
}

// FindPDFs walks dir and returns every PDF file under it, in walk order.
// Files are matched by extension only; the importer decides later whether
// the content really is a PDF.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir string) ([]FoundPDF, error) {
	var found []FoundPDF

	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if info.IsDir() {
			s.log.Debug("Scanning directory: %s", path)
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}

		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		found = append(found, FoundPDF{
			AbsolutePath: path,
			RelativePath: relPath,
		})
		s.log.Debug("Found PDF (%d): %s", len(found), relPath)

		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(found) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	return found, nil
}
