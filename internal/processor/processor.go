package processor

import (
	"bytes"
	"image"
	"image/jpeg"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

// FitWithin scales img uniformly so it fits inside a maxWidth×maxHeight
// box, preserving aspect ratio. The scale ratio is intentionally not
// clamped at 1.0: a source smaller than the box is scaled up, matching
// the historical behavior of this service.
func FitWithin(img image.Image, maxWidth, maxHeight int) image.Image {
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	if w == 0 || h == 0 || maxWidth == 0 || maxHeight == 0 {
		return img
	}

	ratio := float64(maxWidth) / w
	if hRatio := float64(maxHeight) / h; hRatio < ratio {
		ratio = hRatio
	}

	newW := int(w * ratio)
	newH := int(h * ratio)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	// Resize also flattens 16-bit rasters to 8-bit NRGBA.
	return imaging.Resize(img, newW, newH, imaging.Lanczos)
}

func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality})
	return buf.Bytes(), err
}

func EncodeWebP(img image.Image, quality float32) ([]byte, error) {
	buf := new(bytes.Buffer)
	err := webp.Encode(buf, img, &webp.Options{Quality: quality})
	return buf.Bytes(), err
}

func Bounds(img image.Image) (int, int) {
	return img.Bounds().Size().X, img.Bounds().Size().Y
}
