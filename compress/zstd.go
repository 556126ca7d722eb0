package compress

// ZstdCompressor provides Zstandard compression for component payloads
// bundled by cmd/brsdump's export-bundle command.
//
// Never used for the core .brs wire format, which is always Zlib; offered
// here as the highest-ratio choice for archiving extracted payloads.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
