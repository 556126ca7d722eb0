package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCompressor is the codec backing every section.CompressedSection in a
// .brs file. Unlike the Zstd/S2/LZ4 codecs in this package, it is not
// optional: the wire format hard-codes zlib framing, so Reader and Writer
// always go through this type directly rather than through CreateCodec.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a new zlib compressor using the default compression level.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// Compress zlib-compresses data.
func (c ZlibCompressor) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		_ = w.Close()

		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Decompress inflates zlib-compressed data, reading the stream to its end.
func (c ZlibCompressor) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
