// Package codec decodes carrier images into RGBA pixel buffers and encodes
// them back into the supported output formats.
//
// Decoding accepts any format registered with the standard image package:
// PNG, JPEG and GIF from the standard library, BMP and TIFF from
// golang.org/x/image, WebP and AVIF from the gen2brain pure-Go codecs, and
// JPEG 2000 from github.com/ajroetker/go-jpeg2000.
package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ajroetker/go-jpeg2000"
	_ "github.com/gen2brain/avif"
	_ "github.com/gen2brain/webp"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// Decode parses raw image bytes into a 4-channel straight-alpha RGBA
// buffer. Straight alpha keeps color channel bytes stable across encode
// and decode even for transparent pixels, which embedded data depends on.
func Decode(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return toNRGBA(img), nil
}

// DecodeConfig returns the image dimensions and format name without
// decoding pixel data.
func DecodeConfig(data []byte) (image.Config, string, error) {
	cfg, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return image.Config{}, "", fmt.Errorf("decode image config: %w", err)
	}
	return cfg, name, nil
}

// toNRGBA converts any decoded image to *image.NRGBA with a zero-origin
// bounds rectangle.
func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
