// Package stego hides named byte payloads inside carrier raster images and
// recovers them, optionally protected by a password.
//
// The package is the capacity-aware boundary over an opaque steganography
// engine: it decides whether a carrier can hold a payload, grows the
// carrier when resizing is permitted, sequences decoding, engine
// configuration and embedding or extraction, and translates every failure
// into the Kind-discriminated Error taxonomy.
//
// Hide and Unveil are stateless request/response operations; concurrent
// calls are independent.
package stego

import (
	"time"

	"github.com/xob0t/GoVeil/pkg/codec"
)

// Options configures a hide operation.
type Options struct {
	// Password encrypts the payload when non-empty.
	Password string
	// AllowResize permits growing the carrier to fit the payload.
	AllowResize bool
	// Format selects the output encoding: "webp" or "avif"
	// (case-insensitive); anything else selects PNG.
	Format string
}

// UnveiledFile is one recovered payload.
type UnveiledFile struct {
	Name string
	Data []byte
}

// Hide embeds a single named secret into the carrier image and returns the
// fully encoded result in the selected output format. No partial output is
// ever returned on failure.
func Hide(carrier []byte, name string, secret []byte, opts Options) ([]byte, error) {
	return HideWith(DefaultEngine(), carrier, name, secret, opts)
}

// HideWith is Hide with an explicit engine.
func HideWith(eng Engine, carrier []byte, name string, secret []byte, opts Options) (out []byte, err error) {
	format := codec.ParseFormat(opts.Format)
	emitHideStart(name, string(format), len(secret))
	start := time.Now()
	defer func() { emitHideComplete(string(format), len(out), time.Since(start), err) }()

	img, err := PrepareCarrier(carrier, len(secret), opts.AllowResize)
	if err != nil {
		return nil, err
	}

	session := eng.Configure(opts.Password, format)
	if err := session.AddFile(name, secret); err != nil {
		return nil, wrapError(KindSecretRegistration, "failed to add memory file", err)
	}
	out, err = session.Embed(img)
	if err != nil {
		return nil, wrapError(KindEmbedding, "failed to hide data", err)
	}
	return out, nil
}

// Unveil recovers every file hidden in the carrier image, in the order the
// engine produced them. An empty password means none; a wrong or missing
// password on an encrypted carrier surfaces as a KindUnveil failure.
func Unveil(carrier []byte, password string) ([]UnveiledFile, error) {
	return UnveilWith(DefaultEngine(), carrier, password)
}

// UnveilWith is Unveil with an explicit engine.
func UnveilWith(eng Engine, carrier []byte, password string) (files []UnveiledFile, err error) {
	emitUnveilStart(len(carrier))
	start := time.Now()
	defer func() { emitUnveilComplete(len(files), time.Since(start), err) }()

	img, err := PrepareUnveilCarrier(carrier)
	if err != nil {
		return nil, err
	}

	session := eng.Configure(password, codec.FormatPNG)
	files, err = session.Extract(img)
	if err != nil {
		return nil, wrapError(KindUnveil, "failed to unveil", err)
	}
	return files, nil
}
