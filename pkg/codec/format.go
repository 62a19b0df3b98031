// format.go - Output format selection.
package codec

import "strings"

// Format identifies an output image format.
type Format string

// Supported output formats.
const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatAVIF Format = "avif"
)

// ParseFormat resolves a caller-supplied format string. Matching is
// case-insensitive; anything unrecognized (including the empty string)
// selects PNG.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "webp":
		return FormatWebP
	case "avif":
		return FormatAVIF
	default:
		return FormatPNG
	}
}

// Extension returns the file extension for the format, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// MIME returns the media type for the format.
func (f Format) MIME() string {
	switch f {
	case FormatWebP:
		return "image/webp"
	case FormatAVIF:
		return "image/avif"
	default:
		return "image/png"
	}
}
