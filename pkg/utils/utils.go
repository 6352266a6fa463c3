package utils

import "strings"

const (
	DEFAULT_THUMBNAIL_MAX_WIDTH  = 180
	DEFAULT_THUMBNAIL_MAX_HEIGHT = 240

	DEFAULT_WINDOW_WIDTH  = 1100
	DEFAULT_WINDOW_HEIGHT = 420
)

// EnsurePDFExtension appends ".pdf" to paths chosen without one. Save
// dialogs let users type bare names; export always produces a .pdf file.
func EnsurePDFExtension(path string) string {
	if strings.TrimSpace(path) == "" {
		return path
	}
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".pdf") {
		return path
	}
	return path + ".pdf"
}
