// encode.go - Output format encoders.
package codec

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/gen2brain/avif"
	"github.com/gen2brain/webp"
)

// Encode writes img to w in the given format.
//
// PNG and WebP output is lossless, so embedded pixel data survives encoding
// bit-exactly. AVIF is encoded at maximum quality with 4:4:4 chroma, the
// closest the codec offers.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatWebP:
		if err := webp.Encode(w, img, webp.Options{Lossless: true, Exact: true}); err != nil {
			return fmt.Errorf("encode webp: %w", err)
		}
	case FormatAVIF:
		opts := avif.Options{
			Quality:           100,
			QualityAlpha:      100,
			Speed:             6,
			ChromaSubsampling: image.YCbCrSubsampleRatio444,
		}
		if err := avif.Encode(w, img, opts); err != nil {
			return fmt.Errorf("encode avif: %w", err)
		}
	default:
		if err := png.Encode(w, img); err != nil {
			return fmt.Errorf("encode png: %w", err)
		}
	}
	return nil
}
