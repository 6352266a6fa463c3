package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
	"image/draw"
)

// GenerateImageHash returns a hex SHA-256 over the raw RGBA pixels of img.
// Two renders of the same page at the same size hash identically, which is
// what the inspect tool relies on when comparing exports against sources.
func GenerateImageHash(img image.Image) (string, error) {
	rgba, ok := img.(*image.RGBA)
	if !ok {
		bounds := img.Bounds()
		rgba = image.NewRGBA(bounds)
		draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	}

	hasher := sha256.New()
	if _, err := hasher.Write(rgba.Pix); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
