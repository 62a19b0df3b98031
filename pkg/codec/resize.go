// resize.go - High-quality resampling.
package codec

import (
	"image"

	"golang.org/x/image/draw"
)

// Resize resamples src to width x height using the Catmull-Rom kernel, the
// highest-quality scaler x/image provides.
func Resize(src *image.NRGBA, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
