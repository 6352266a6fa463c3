package pdf

import (
	"context"
	"errors"
	"fmt"
	"image"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gen2brain/go-fitz"

	"github.com/mzen17/PDF-Page-Editor/pkg/logger"
	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

// ErrNotPDF reports a file whose content is not a PDF, whatever its
// extension claims.
var ErrNotPDF = errors.New("not a PDF file")

// Importer opens source documents and renders one thumbnail per page. A
// document imports completely or not at all; a page that fails to render
// fails the whole document.
type Importer struct {
	renderer *ThumbnailRenderer
	log      *logger.Logger
}

func NewImporter(renderer *ThumbnailRenderer, log *logger.Logger) *Importer {
	return &Importer{
		renderer: renderer,
		log:      log,
	}
}

func (im *Importer) Import(ctx context.Context, path string) (*models.DocumentInfo, []image.Image, error) {
	im.log.Debug("Importing PDF: %s", path)

	kind, err := mimetype.DetectFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if !kind.Is("application/pdf") {
		return nil, nil, fmt.Errorf("cannot import %s (%s): %w", filepath.Base(path), kind.String(), ErrNotPDF)
	}

	doc, err := fitz.New(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return nil, nil, fmt.Errorf("document %s has no pages", filepath.Base(path))
	}

	thumbs := make([]image.Image, 0, doc.NumPage())

	//Page numbers are zero indexed in the fitz package.
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
			thumb, err := im.renderer.Render(doc, pageNum)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to render page %d of %s: %w", pageNum, filepath.Base(path), err)
			}
			thumbs = append(thumbs, thumb)
		}
	}

	info := models.NewDocumentInfo(path, len(thumbs))
	im.log.Info("Imported %d pages from: %s", info.PageCount, path)

	return info, thumbs, nil
}
