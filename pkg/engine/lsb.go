// lsb.go - Bit-level embedding in RGBA pixel data.
package engine

import (
	"fmt"
	"image"
)

// capacityBytes returns how many whole bytes fit in the low bits of the
// image's R, G and B channels: 3 bits per pixel.
func capacityBytes(img *image.NRGBA) int {
	b := img.Bounds()
	return b.Dx() * b.Dy() * 3 / 8
}

// embedBits writes data into the least significant bit of each R, G and B
// channel, most significant bit of each byte first, row-major. Alpha is
// never touched.
func embedBits(img *image.NRGBA, data []byte) error {
	if len(data) > capacityBytes(img) {
		return fmt.Errorf("%w: need %d bytes, carrier holds %d",
			ErrCarrierTooSmall, len(data), capacityBytes(img))
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	total := len(data) * 8
	bit := 0
	for y := 0; y < h && bit < total; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w && bit < total; x++ {
			for c := 0; c < 3 && bit < total; c++ {
				v := (data[bit>>3] >> (7 - bit&7)) & 1
				row[x*4+c] = row[x*4+c]&0xFE | v
				bit++
			}
		}
	}
	return nil
}

// bitReader reads bytes back out of the channel low bits, tracking a
// cursor in channel slots (one slot per bit).
type bitReader struct {
	pix    []byte
	stride int
	w, h   int
	pos    int
}

func newBitReader(img *image.NRGBA) *bitReader {
	b := img.Bounds()
	return &bitReader{pix: img.Pix, stride: img.Stride, w: b.Dx(), h: b.Dy()}
}

// remaining returns how many whole bytes are still readable.
func (r *bitReader) remaining() int {
	return (r.w*r.h*3 - r.pos) / 8
}

func (r *bitReader) readBytes(n int) ([]byte, error) {
	if n < 0 || n > r.remaining() {
		return nil, fmt.Errorf("%w: %d bytes requested, %d available",
			ErrPayloadTruncated, n, r.remaining())
	}
	out := make([]byte, n)
	for i := 0; i < n*8; i++ {
		slot := r.pos + i
		pixel := slot / 3
		x, y := pixel%r.w, pixel/r.w
		v := r.pix[y*r.stride+x*4+slot%3] & 1
		out[i>>3] |= v << (7 - i&7)
	}
	r.pos += n * 8
	return out, nil
}
