// frame.go - Binary frame layout for embedded payloads.
//
// Frame layout, multi-byte integers big-endian:
//
//	magic   4 bytes, "GVL1"
//	flags   1 byte, bit0 set when the body is encrypted
//	salt    16 bytes, present only when encrypted
//	length  4 bytes, body length
//	crc32   4 bytes, IEEE checksum of the body
//	body    zip archive, sealed when encrypted
package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
)

var frameMagic = []byte("GVL1")

const flagEncrypted = 0x01

// buildFrame wraps body in the frame header. A non-nil salt marks the body
// as encrypted and is carried in the frame for key derivation on extract.
func buildFrame(body, salt []byte) []byte {
	var buf bytes.Buffer
	buf.Write(frameMagic)

	var flags byte
	if salt != nil {
		flags |= flagEncrypted
	}
	buf.WriteByte(flags)
	if salt != nil {
		buf.Write(salt)
	}

	var meta [8]byte
	binary.BigEndian.PutUint32(meta[:4], uint32(len(body)))
	binary.BigEndian.PutUint32(meta[4:], crc32.ChecksumIEEE(body))
	buf.Write(meta[:])
	buf.Write(body)
	return buf.Bytes()
}

// readFrame parses a frame from the carrier bit stream and verifies its
// checksum. The returned salt is nil when the body is not encrypted.
func readFrame(r *bitReader) (body, salt []byte, err error) {
	head, err := r.readBytes(5)
	if err != nil || !bytes.Equal(head[:4], frameMagic) {
		return nil, nil, ErrNoHiddenData
	}

	flags := head[4]
	if flags&^byte(flagEncrypted) != 0 {
		return nil, nil, fmt.Errorf("unsupported frame flags 0x%02x", flags)
	}
	if flags&flagEncrypted != 0 {
		if salt, err = r.readBytes(saltSize); err != nil {
			return nil, nil, err
		}
	}

	meta, err := r.readBytes(8)
	if err != nil {
		return nil, nil, err
	}
	length := binary.BigEndian.Uint32(meta[:4])
	sum := binary.BigEndian.Uint32(meta[4:])
	if int64(length) > int64(r.remaining()) {
		return nil, nil, fmt.Errorf("%w: frame claims %d bytes, %d available",
			ErrPayloadTruncated, length, r.remaining())
	}

	if body, err = r.readBytes(int(length)); err != nil {
		return nil, nil, err
	}
	if crc32.ChecksumIEEE(body) != sum {
		return nil, nil, ErrIntegrityCheck
	}
	return body, salt, nil
}
