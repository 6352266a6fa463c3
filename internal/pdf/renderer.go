package pdf

import (
	"fmt"
	"image"
	"math"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/image/draw"

	"github.com/mzen17/PDF-Page-Editor/pkg/models"
)

// baseDPI is the resolution fitz reports page bounds at; rendering at
// baseDPI yields one pixel per point.
const baseDPI = 72

// ThumbnailRenderer rasterizes single pages scaled to fit inside a bounding
// box while preserving aspect ratio.
type ThumbnailRenderer struct {
	box models.ThumbnailSize
}

func NewThumbnailRenderer(box models.ThumbnailSize) *ThumbnailRenderer {
	return &ThumbnailRenderer{box: box}
}

// FitScale returns the factor that scales a width x height page (in points)
// to the largest size that still fits inside box, preserving aspect ratio.
func FitScale(width, height float64, box models.ThumbnailSize) float64 {
	return math.Min(float64(box.MaxWidth)/width, float64(box.MaxHeight)/height)
}

// Render rasterizes page pageNum of an open document so the result fits the
// box. The render DPI is chosen from the page bounds, so most pages need no
// resampling; renders that still overflow by a pixel of rounding are
// downscaled.
func (r *ThumbnailRenderer) Render(doc *fitz.Document, pageNum int) (image.Image, error) {
	bounds, err := doc.Bound(pageNum)
	if err != nil {
		return nil, fmt.Errorf("failed to get bounds for page %d: %w", pageNum, err)
	}

	width := float64(bounds.Dx())
	height := float64(bounds.Dy())
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("page %d has empty bounds %v", pageNum, bounds)
	}

	scale := FitScale(width, height, r.box)

	img, err := doc.ImageDPI(pageNum, baseDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", pageNum, err)
	}

	if img.Bounds().Dx() <= r.box.MaxWidth && img.Bounds().Dy() <= r.box.MaxHeight {
		return img, nil
	}
	return r.shrink(img), nil
}

func (r *ThumbnailRenderer) shrink(img *image.RGBA) image.Image {
	src := img.Bounds()
	scale := FitScale(float64(src.Dx()), float64(src.Dy()), r.box)

	w := int(float64(src.Dx()) * scale)
	h := int(float64(src.Dy()) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, src, draw.Over, nil)
	return dst
}
