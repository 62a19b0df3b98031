// Package engine implements the steganography engine: container packing,
// payload framing, bit-level embedding in RGB channel low bits, and
// optional password encryption.
//
// One Session serves a single embed or extract operation. Files added to a
// session are packed into a zip archive, framed with a magic header, length
// and checksum, optionally sealed with AES-256-GCM under an Argon2id
// derived key, and the resulting byte stream is spread across the least
// significant bits of the carrier's R, G and B channels.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	"github.com/xob0t/GoVeil/pkg/codec"
)

// Sentinel errors for programmatic handling with errors.Is.
var (
	// ErrNoHiddenData indicates the carrier holds no recognizable frame.
	ErrNoHiddenData = errors.New("no hidden data found in carrier")

	// ErrPayloadTruncated indicates the frame claims more data than the
	// carrier holds.
	ErrPayloadTruncated = errors.New("hidden payload truncated")

	// ErrIntegrityCheck indicates the frame checksum does not match.
	ErrIntegrityCheck = errors.New("payload integrity check failed")

	// ErrDecryptionFailed indicates the payload could not be decrypted,
	// usually a wrong or missing password.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidFileName indicates a file name the frame cannot carry.
	ErrInvalidFileName = errors.New("invalid file name")

	// ErrCarrierTooSmall indicates the frame does not fit the carrier.
	ErrCarrierTooSmall = errors.New("carrier too small for payload")
)

// File is a named payload carried into or recovered from an image.
type File struct {
	Name string
	Data []byte
}

// Engine creates sessions.
type Engine struct{}

// New returns an Engine.
func New() *Engine {
	return &Engine{}
}

// Configure creates a session. An empty password disables encryption;
// format selects the encoding of the final carrier image on embed.
func (e *Engine) Configure(password string, format codec.Format) *Session {
	return &Session{password: password, format: format}
}

// Session is a single-use embed or extract operation. It is not safe for
// concurrent use; create one session per operation.
type Session struct {
	password string
	format   codec.Format
	files    []File
}

// maxNameLen bounds file names so frame overhead stays small and archive
// entries stay portable.
const maxNameLen = 255

// AddFile registers a named payload. Files embed in registration order.
func (s *Session) AddFile(name string, data []byte) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidFileName)
	}
	if len(name) > maxNameLen {
		return fmt.Errorf("%w: name is %d bytes, limit %d", ErrInvalidFileName, len(name), maxNameLen)
	}
	s.files = append(s.files, File{Name: name, Data: data})
	return nil
}

// Embed writes the session's files into img and encodes the result in the
// session's output format. The pixel buffer is modified in place.
func (s *Session) Embed(img *image.NRGBA) ([]byte, error) {
	body, err := packFiles(s.files)
	if err != nil {
		return nil, err
	}

	var salt []byte
	if s.password != "" {
		if salt, err = newSalt(); err != nil {
			return nil, err
		}
		if body, err = encryptPayload(s.password, salt, body); err != nil {
			return nil, err
		}
	}

	if err := embedBits(img, buildFrame(body, salt)); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := codec.Encode(&buf, img, s.format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extract recovers the files embedded in img. The session password is
// applied when the frame is encrypted; a wrong or missing password fails
// authentication and no data is returned.
func (s *Session) Extract(img *image.NRGBA) ([]File, error) {
	body, salt, err := readFrame(newBitReader(img))
	if err != nil {
		return nil, err
	}
	if salt != nil {
		if body, err = decryptPayload(s.password, salt, body); err != nil {
			return nil, err
		}
	}
	return unpackFiles(body)
}
