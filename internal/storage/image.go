package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// Avatars are downscaled so the longest edge is at most MaxAvatarEdge.
const MaxAvatarEdge = 512

const avatarQuality = 85

// NormalizeAvatar decodes an uploaded image (jpeg, png or webp),
// downscales it preserving aspect ratio and re-encodes it as webp.
func NormalizeAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, ErrInvalidImage
	}

	img := downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: avatarQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= MaxAvatarEdge && h <= MaxAvatarEdge {
		return src
	}

	if w >= h {
		h = h * MaxAvatarEdge / w
		w = MaxAvatarEdge
	} else {
		w = w * MaxAvatarEdge / h
		h = MaxAvatarEdge
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
