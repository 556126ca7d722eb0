package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bricksave/brs"
	"github.com/bricksave/brs/compress"
	"github.com/bricksave/brs/format"
	"github.com/spf13/cobra"
)

// newExportBundleCmd walks a save file's component catalog and writes every
// entry's raw, uninterpreted payload bytes into a single compressed bundle:
// a debugging convenience with no claim on the component payloads' actual
// structure (the core never parses them, see section.ComponentCatalog).
//
// The bundle format is a flat sequence of (name length, name, payload
// length, payload) records, all little-endian, fed through the chosen
// compress.Codec as a single stream.
func newExportBundleCmd() *cobra.Command {
	var outputPath string
	var codecName string

	cmd := &cobra.Command{
		Use:   "export-bundle <file.brs>",
		Short: "Export every component payload into a compressed bundle file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			codecType, err := parseCodecName(codecName)
			if err != nil {
				return err
			}
			codec, err := compress.CreateCodec(codecType, "export-bundle")
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			r, err := brs.Open(f)
			if err != nil {
				return fmt.Errorf("open: %w", err)
			}

			screenshot, advance := r.ScreenshotData()
			if _, err := io.Copy(io.Discard, screenshot); err != nil {
				return fmt.Errorf("screenshot: %w", err)
			}
			screenReader, err := advance()
			if err != nil {
				return fmt.Errorf("screenshot: %w", err)
			}

			dec, bricksReader, err := screenReader.Bricks()
			if err != nil {
				return fmt.Errorf("bricks: %w", err)
			}
			for dec.Next() {
			}
			if err := dec.Err(); err != nil {
				return fmt.Errorf("bricks: %w", err)
			}

			catalog, _, err := bricksReader.Components()
			if err != nil {
				return fmt.Errorf("components: %w", err)
			}

			var raw []byte
			for i, entry := range catalog.Entries() {
				payload, err := catalog.ExtractPayload(i)
				if err != nil {
					return fmt.Errorf("component %d: %w", i, err)
				}
				raw = appendRecord(raw, entry.Name, payload)
			}

			start := time.Now()
			compressed, err := codec.Compress(raw)
			if err != nil {
				return fmt.Errorf("compress: %w", err)
			}
			stats := compress.CompressionStats{
				Algorithm:         codecType,
				OriginalSize:      int64(len(raw)),
				CompressedSize:    int64(len(compressed)),
				CompressionTimeNs: time.Since(start).Nanoseconds(),
			}

			if outputPath == "" {
				outputPath = path + ".components." + codecName
			}
			if err := os.WriteFile(outputPath, compressed, 0o644); err != nil {
				return err
			}

			fmt.Printf("wrote %s (%d components, %d -> %d bytes, %.1f%% of original, %s)\n",
				outputPath, catalog.Len(), len(raw), len(compressed), stats.CompressionRatio()*100, time.Duration(stats.CompressionTimeNs))

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output path (default: <input>.components.<codec>)")
	cmd.Flags().StringVar(&codecName, "codec", "zstd", "compression codec: none, zstd, s2, lz4")

	return cmd
}

func parseCodecName(name string) (format.CompressionType, error) {
	switch name {
	case "none":
		return format.CompressionNone, nil
	case "zstd":
		return format.CompressionZstd, nil
	case "s2":
		return format.CompressionS2, nil
	case "lz4":
		return format.CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("unknown codec %q", name)
	}
}

func appendRecord(buf []byte, name string, payload []byte) []byte {
	var lenBuf [4]byte

	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(name)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, name...)

	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(payload)))
	buf = append(buf, lenBuf[:]...)
	buf = append(buf, payload...)

	return buf
}
