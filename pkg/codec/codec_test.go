package codec

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"png", FormatPNG},
		{"PNG", FormatPNG},
		{"webp", FormatWebP},
		{"WEBP", FormatWebP},
		{" webp ", FormatWebP},
		{"avif", FormatAVIF},
		{"Avif", FormatAVIF},
		{"", FormatPNG},
		{"bmp", FormatPNG},
		{"jpeg", FormatPNG},
		{"nonsense", FormatPNG},
	}
	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_ExtensionMIME(t *testing.T) {
	if got := FormatWebP.Extension(); got != "webp" {
		t.Errorf("Extension() = %q, want webp", got)
	}
	if got := FormatAVIF.MIME(); got != "image/avif" {
		t.Errorf("MIME() = %q, want image/avif", got)
	}
	if got := FormatPNG.MIME(); got != "image/png" {
		t.Errorf("MIME() = %q, want image/png", got)
	}
}

// encodePNG renders a small gradient through the standard encoder so
// decoder tests have known-good input.
func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = uint8(i * 13)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	img, err := Decode(encodePNG(t, 31, 17))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	b := img.Bounds()
	if b.Min != (image.Point{}) {
		t.Errorf("bounds origin = %v, want (0,0)", b.Min)
	}
	if b.Dx() != 31 || b.Dy() != 17 {
		t.Errorf("dimensions = %dx%d, want 31x17", b.Dx(), b.Dy())
	}
}

func TestDecode_BMP(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range src.Pix {
		src.Pix[i] = uint8(i)
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("bmp.Encode() error: %v", err)
	}

	img, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 8 {
		t.Errorf("dimensions = %v, want 8x8", img.Bounds())
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode([]byte("not an image at all")); err == nil {
		t.Error("expected error for undecodable bytes")
	}
}

func TestDecodeConfig(t *testing.T) {
	cfg, name, err := DecodeConfig(encodePNG(t, 64, 48))
	if err != nil {
		t.Fatalf("DecodeConfig() error: %v", err)
	}
	if cfg.Width != 64 || cfg.Height != 48 {
		t.Errorf("dimensions = %dx%d, want 64x48", cfg.Width, cfg.Height)
	}
	if name != "png" {
		t.Errorf("format name = %q, want png", name)
	}
}

func TestResize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 50))
	dst := Resize(src, 37, 83)
	if dst.Bounds().Dx() != 37 || dst.Bounds().Dy() != 83 {
		t.Errorf("dimensions = %v, want 37x83", dst.Bounds())
	}
}

func TestResize_UniformColorPreserved(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 40, 80, 120, 255
	}
	dst := Resize(src, 33, 33)
	for y := 0; y < 33; y++ {
		for x := 0; x < 33; x++ {
			if got := dst.NRGBAAt(x, y); got != (color.NRGBA{40, 80, 120, 255}) {
				t.Fatalf("pixel (%d,%d) = %v, want uniform {40 80 120 255}", x, y, got)
			}
		}
	}
}

func TestEncode_PNG(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 10, 10)), FormatPNG); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("output is not a PNG")
	}
}

func TestEncode_WebP(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 10, 10)), FormatWebP); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out := buf.Bytes()
	if len(out) < 16 || !bytes.HasPrefix(out, []byte("RIFF")) || !bytes.Equal(out[8:12], []byte("WEBP")) {
		t.Error("output is not a WebP container")
	}
}

func TestEncode_AVIF(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, image.NewNRGBA(image.Rect(0, 0, 16, 16)), FormatAVIF); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	out := buf.Bytes()
	if len(out) < 12 || !bytes.Equal(out[4:12], []byte("ftypavif")) {
		t.Error("output is not an AVIF container")
	}
}

func TestEncodeDecode_WebPLossless(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 24, 24))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
	}

	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatWebP); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	got, err := Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("lossless WebP round-trip altered pixel data")
	}
}
