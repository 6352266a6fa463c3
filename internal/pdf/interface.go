package pdf

import (
	"context"
	"image"

	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

// DocumentImporter loads a source PDF and renders its page thumbnails.
type DocumentImporter interface {
	Import(ctx context.Context, path string) (*models.DocumentInfo, []image.Image, error)
}

// DocumentExporter writes a page sequence out as a new PDF.
type DocumentExporter interface {
	Export(ctx context.Context, refs []models.PageRef, destPath string) error
}
