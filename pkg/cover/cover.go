// Package cover generates carrier images sized to hold a payload.
//
// Covers are plain raster images written as PNG or BMP. Dimensions come
// from the caller or, when a payload size is given, from the capacity
// planner, so a generated cover always holds the payload without resizing.
package cover

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"github.com/xob0t/GoVeil/pkg/stego"
)

// Config holds parameters for cover generation.
type Config struct {
	Width   int    // Pixel width (default: 1280)
	Height  int    // Pixel height (default: 720)
	Color   string // Hex "#rrggbb", "random", or "noise"
	Payload int    // Payload size in bytes the cover must hold
}

// Generate creates a cover file. The format is inferred from the file
// extension:
//   - ".png" → PNG image
//   - ".bmp" → BMP image
//
// When both dimensions are set they are used as-is and validated against
// cfg.Payload; otherwise dimensions are derived from cfg.Payload, falling
// back to 1280x720 when no payload is given either.
func Generate(output string, cfg Config) error {
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writeFile(output, img, png.Encode)
	case ".bmp":
		return writeFile(output, img, bmp.Encode)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}
}

// GenerateToWriter writes a cover to an io.Writer. The format is selected
// by ext (".png" or ".bmp"). This is useful for in-memory generation
// (e.g., WASM or the UI server).
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	img, err := resolveImage(cfg)
	if err != nil {
		return err
	}

	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}
}

// resolveImage picks dimensions and fills the pixel buffer.
func resolveImage(cfg Config) (*image.RGBA, error) {
	w, h := cfg.Width, cfg.Height
	switch {
	case w > 0 && h > 0:
		if cfg.Payload > 0 {
			required := cfg.Payload + stego.Overhead
			if c := stego.Capacity(w, h); c < required {
				return nil, fmt.Errorf("cover %dx%d holds %d bytes, payload needs %d", w, h, c, required)
			}
		}
	case cfg.Payload > 0:
		// The planner's resize math from a 1x1 base yields the smallest
		// square that fits the payload with margin.
		d := stego.PlanCapacity(1, 1, cfg.Payload, true)
		w, h = d.TargetWidth, d.TargetHeight
	default:
		w, h = 1280, 720
	}

	if cfg.Color == "noise" {
		return NewNoiseImage(w, h)
	}
	r, g, b, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, err
	}
	return NewSolidImage(w, h, toRGBA(r, g, b)), nil
}

func writeFile(output string, img image.Image, encode func(io.Writer, image.Image) error) error {
	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("create %s: %w", output, err)
	}
	defer f.Close()

	if err := encode(f, img); err != nil {
		return fmt.Errorf("encode %s: %w", output, err)
	}
	return nil
}
