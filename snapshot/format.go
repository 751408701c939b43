package snapshot

import "errors"

const (
	// MagicNumber identifies colgo snapshot files (ASCII: "CGS0").
	MagicNumber = 0x43475330
	// Version is the current snapshot format version (v1.0.0).
	Version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("snapshot: invalid magic number")
	ErrInvalidVersion     = errors.New("snapshot: unsupported version")
	ErrUnknownCodec       = errors.New("snapshot: unknown codec")
	ErrUnknownCompression = errors.New("snapshot: unknown compression type")
)

// fileHeader is the fixed-size portion of the snapshot header. The
// variable-length codec name and the payload sizes follow it on the wire.
type fileHeader struct {
	Magic        uint32
	Version      uint32
	Compression  uint8
	CodecNameLen uint8
	Padding      [2]byte
}
