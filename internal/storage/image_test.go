package storage

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	assert.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNormalizeAvatar(t *testing.T) {
	data, err := NormalizeAvatar(bytes.NewReader(pngBytes(t, 100, 80)))

	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	decoded, err := webp.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, 100, decoded.Bounds().Dx())
	assert.Equal(t, 80, decoded.Bounds().Dy())
}

func TestNormalizeAvatar_DownscalesLargeImages(t *testing.T) {
	data, err := NormalizeAvatar(bytes.NewReader(pngBytes(t, 1024, 768)))

	assert.NoError(t, err)

	decoded, err := webp.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
	assert.Equal(t, MaxAvatarEdge, decoded.Bounds().Dx())
	assert.Equal(t, 384, decoded.Bounds().Dy())
}

func TestNormalizeAvatar_RejectsNonImage(t *testing.T) {
	_, err := NormalizeAvatar(strings.NewReader("definitely not an image"))

	assert.ErrorIs(t, err, ErrInvalidImage)
}
