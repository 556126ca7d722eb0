// Package compress provides the compression codecs used by brs.
//
// The wire format itself is not pluggable: every section.CompressedSection
// in a .brs file is zlib (format.CompressionZlib), and section always talks
// to ZlibCompressor directly rather than going through CreateCodec. The
// remaining codecs (Zstd, S2, LZ4, NoOp) exist for cmd/brsdump's
// export-bundle command, which lets an operator re-compress extracted
// component payloads with whichever algorithm fits how the bundle will be
// stored:
//
//	codec, _ := compress.CreateCodec(format.CompressionZstd, "export-bundle")
//	compressed, _ := codec.Compress(payload)
//
// # Algorithm selection for export-bundle
//
//   - None: no CPU overhead, largest output; use for already-compressed payloads
//   - Zstd: best ratio, moderate speed; use for long-term archival
//   - S2: balanced ratio and speed
//   - LZ4: fastest decompression; use when bundles are re-read frequently
//
// All four implement the same Codec interface as ZlibCompressor, so
// cmd/brsdump can select one by name without a type switch.
package compress
