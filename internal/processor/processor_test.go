package processor

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	return img
}

func gradientImage(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 5), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func TestFitWithin(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		boxW, boxH int
		wantW      int
		wantH      int
	}{
		{
			name: "landscape into thumbnail box",
			srcW: 4000, srcH: 3000,
			boxW: 400, boxH: 300,
			wantW: 400, wantH: 300,
		},
		{
			name: "landscape into high quality box",
			srcW: 4000, srcH: 3000,
			boxW: 1920, boxH: 1440,
			wantW: 1920, wantH: 1440,
		},
		{
			name: "width constrained",
			srcW: 6000, srcH: 2000,
			boxW: 400, boxH: 300,
			wantW: 400, wantH: 133,
		},
		{
			name: "height constrained",
			srcW: 2000, srcH: 6000,
			boxW: 400, boxH: 300,
			wantW: 100, wantH: 300,
		},
		{
			name: "small source is upscaled",
			srcW: 200, srcH: 150,
			boxW: 400, boxH: 300,
			wantW: 400, wantH: 300,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FitWithin(solidImage(tc.srcW, tc.srcH), tc.boxW, tc.boxH)
			assert.Equal(t, tc.wantW, got.Bounds().Dx())
			assert.Equal(t, tc.wantH, got.Bounds().Dy())
		})
	}
}

func TestFitWithinFlattensDepth(t *testing.T) {
	src := image.NewNRGBA64(image.Rect(0, 0, 100, 100))

	got := FitWithin(src, 50, 50)

	_, ok := got.(*image.NRGBA)
	assert.True(t, ok, "resized image should be 8-bit NRGBA")
}

func TestEncodeJPEG(t *testing.T) {
	data, err := EncodeJPEG(solidImage(400, 300), 78)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 400, decoded.Bounds().Dx())
	assert.Equal(t, 300, decoded.Bounds().Dy())
}

func TestEncodeJPEGQualityOrdering(t *testing.T) {
	img := FitWithin(gradientImage(1024, 768), 400, 300)

	low, err := EncodeJPEG(img, 10)
	require.NoError(t, err)
	high, err := EncodeJPEG(img, 100)
	require.NoError(t, err)

	assert.Less(t, len(low), len(high))
}

func TestEncodeWebP(t *testing.T) {
	data, err := EncodeWebP(solidImage(100, 100), 80)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestBounds(t *testing.T) {
	w, h := Bounds(solidImage(123, 45))
	assert.Equal(t, 123, w)
	assert.Equal(t, 45, h)
}
