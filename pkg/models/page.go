package models

import (
	"path/filepath"

	"github.com/google/uuid"
)

// DocumentInfo identifies one imported source PDF for the lifetime of the
// session. Importing the same file twice yields two distinct identities.
type DocumentInfo struct {
	ID        uuid.UUID
	Path      string
	PageCount int
}

func NewDocumentInfo(path string, pageCount int) *DocumentInfo {
	return &DocumentInfo{
		ID:        uuid.New(),
		Path:      path,
		PageCount: pageCount,
	}
}

// Name returns the file name of the source document without its directory.
func (d *DocumentInfo) Name() string {
	return filepath.Base(d.Path)
}

// PageRef addresses a single page of a source document on disk.
// PageIndex is 0-based.
type PageRef struct {
	Path      string
	PageIndex int
}

// ThumbnailSize bounds rendered page previews in pixels. Pages are scaled
// uniformly to fit inside the box, never cropped.
type ThumbnailSize struct {
	MaxWidth  int
	MaxHeight int
}
