// Package section implements the BRS file's sequentially-laid-out parts: the
// compressed-section framing every major block uses, the Header1/Header2
// metadata codecs, and the component catalog.
package section

import (
	"fmt"
	"io"

	"github.com/bricksave/brs/compress"
	"github.com/bricksave/brs/errs"
)

// DefaultMaxSectionSize is the decompression-bomb ceiling applied when a
// caller does not configure one explicitly: 2 GiB, matching the suggested
// bound in the format's resource-model notes.
const DefaultMaxSectionSize = 2 << 30

// ReadCompressed reads one CompressedSection from r and returns its
// decompressed payload. maxSize bounds the declared uncompressed size; pass
// 0 to use DefaultMaxSectionSize.
//
// Framing: a little-endian i32 uncompressed size U, then a little-endian i32
// compressed size C. C == 0 means U raw bytes follow; otherwise C bytes of
// zlib-compressed data follow that must inflate to exactly U bytes.
func ReadCompressed(r io.Reader, maxSize int64) ([]byte, error) {
	if maxSize <= 0 {
		maxSize = DefaultMaxSectionSize
	}

	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	uncompressedSize := int32(leUint32(lenBuf[:]))

	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	compressedSize := int32(leUint32(lenBuf[:]))

	if uncompressedSize <= 0 || compressedSize < 0 || compressedSize >= uncompressedSize {
		return nil, fmt.Errorf("%w: uncompressed=%d compressed=%d", errs.ErrInvalidCompressedSection, uncompressedSize, compressedSize)
	}
	if int64(uncompressedSize) > maxSize {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d byte limit", errs.ErrSectionTooLarge, uncompressedSize, maxSize)
	}

	if compressedSize == 0 {
		raw := make([]byte, uncompressedSize)
		if _, err := io.ReadFull(r, raw); err != nil {
			return nil, err
		}

		return raw, nil
	}

	compressed := make([]byte, compressedSize)
	if _, err := io.ReadFull(r, compressed); err != nil {
		return nil, err
	}

	codec := compress.NewZlibCompressor()
	out, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrInvalidCompressedSection, err)
	}
	if int32(len(out)) != uncompressedSize {
		return nil, fmt.Errorf("%w: decompressed to %d bytes, expected %d", errs.ErrInvalidCompressedSection, len(out), uncompressedSize)
	}

	return out, nil
}

// WriteCompressed writes payload to w as one CompressedSection, zlib-compressing
// it. If the compressed form is not strictly smaller than the original, the
// raw bytes are written instead (compressed size field set to 0), matching
// the original writer's fallback.
func WriteCompressed(w io.Writer, payload []byte) error {
	if len(payload) >= 1<<31 {
		return fmt.Errorf("%w: section payload too large", errs.ErrInvalidInput)
	}

	codec := compress.NewZlibCompressor()
	compressed, err := codec.Compress(payload)
	if err != nil {
		return err
	}

	var lenBuf [4]byte
	putLeUint32(lenBuf[:], uint32(len(payload)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}

	if len(compressed) >= len(payload) {
		putLeUint32(lenBuf[:], 0)
		if _, err := w.Write(lenBuf[:]); err != nil {
			return err
		}
		_, err := w.Write(payload)

		return err
	}

	putLeUint32(lenBuf[:], uint32(len(compressed)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err = w.Write(compressed)

	return err
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func putLeUint32(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}
