package snapshot

import (
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the payload compression algorithm.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, lighter ratio).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}

	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}

	dec, _ := zstd.NewReader(nil)
	return dec
}

// compress returns the compressed payload. LZ4 may report the input as
// incompressible; in that case the payload is stored raw and the header
// compressed size equals the uncompressed size.
func compress(data []byte, typ Compression) ([]byte, error) {
	switch typ {
	case CompressionNone:
		return data, nil
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))

		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, err
		}

		if n == 0 || n >= len(data) {
			return data, nil // Incompressible
		}

		return buf[:n], nil
	case CompressionZSTD:
		enc := getZstdEncoder()
		defer zstdEncoderPool.Put(enc)

		return enc.EncodeAll(data, nil), nil
	default:
		return nil, ErrUnknownCompression
	}
}

// decompress reverses compress. The uncompressed size comes from the
// snapshot header; a compressed size equal to it means the payload was
// stored raw.
func decompress(data []byte, uncompressedSize uint32, typ Compression) ([]byte, error) {
	if typ == CompressionNone || uint32(len(data)) == uncompressedSize {
		return data, nil
	}

	switch typ {
	case CompressionLZ4:
		result := make([]byte, uncompressedSize)

		n, err := lz4.UncompressBlock(data, result)
		if err != nil {
			return nil, err
		}

		if uint32(n) != uncompressedSize {
			return nil, errors.New("snapshot: decompressed size mismatch")
		}

		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer zstdDecoderPool.Put(dec)

		decoded, err := dec.DecodeAll(data, make([]byte, 0, uncompressedSize))
		if err != nil {
			return nil, err
		}

		if uint32(len(decoded)) != uncompressedSize {
			return nil, errors.New("snapshot: decompressed size mismatch")
		}

		return decoded, nil
	default:
		return nil, ErrUnknownCompression
	}
}
