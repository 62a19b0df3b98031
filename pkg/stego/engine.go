// engine.go - Steganography engine capability interface.
package stego

import (
	"image"

	"github.com/xob0t/GoVeil/pkg/codec"
	"github.com/xob0t/GoVeil/pkg/engine"
)

// Engine produces sessions for the embedding and extraction algorithm.
// This layer drives the engine through exactly this surface and treats its
// diagnostics as opaque; the bit-level scheme and the encryption are the
// engine's own.
type Engine interface {
	// Configure creates a session. An empty password disables encryption;
	// format selects the encoding of the final carrier on embed.
	Configure(password string, format codec.Format) Session
}

// Session is a single embed or extract operation.
type Session interface {
	// AddFile registers a named payload for embedding.
	AddFile(name string, data []byte) error
	// Embed writes the registered payloads into img and returns the final
	// encoded carrier bytes.
	Embed(img *image.NRGBA) ([]byte, error)
	// Extract recovers hidden files from img in the order the engine
	// discovers them.
	Extract(img *image.NRGBA) ([]UnveiledFile, error)
}

// DefaultEngine returns the built-in engine.
func DefaultEngine() Engine {
	return defaultEngine{}
}

type defaultEngine struct{}

func (defaultEngine) Configure(password string, format codec.Format) Session {
	return &defaultSession{inner: engine.New().Configure(password, format)}
}

// defaultSession adapts the concrete engine session to the capability
// surface, mapping each recovered (name, bytes) pair into an UnveiledFile.
type defaultSession struct {
	inner *engine.Session
}

func (s *defaultSession) AddFile(name string, data []byte) error {
	return s.inner.AddFile(name, data)
}

func (s *defaultSession) Embed(img *image.NRGBA) ([]byte, error) {
	return s.inner.Embed(img)
}

func (s *defaultSession) Extract(img *image.NRGBA) ([]UnveiledFile, error) {
	files, err := s.inner.Extract(img)
	if err != nil {
		return nil, err
	}
	out := make([]UnveiledFile, 0, len(files))
	for _, f := range files {
		out = append(out, UnveiledFile{Name: f.Name, Data: f.Data})
	}
	return out, nil
}
