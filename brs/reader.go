// Package brs reads and writes Brickadia .brs save files: the magic and
// version header, the two metadata sections, the optional screenshot
// frame, and the bit-packed brick and component streams.
//
// Reading is staged: Open returns an *InitReader, and each stage-advancing
// method (ScreenshotData, Bricks, Components) consumes exactly the bytes
// for its section and hands back a reader for the next stage. Stages are
// distinct Go types rather than a single type with runtime checks, so
// calling a method out of order is a compile error, mirroring the sealed
// typestate in the format this package is based on.
package brs

import (
	"bytes"
	"fmt"
	"io"

	"github.com/bricksave/brs/brick"
	"github.com/bricksave/brs/errs"
	"github.com/bricksave/brs/format"
	"github.com/bricksave/brs/section"
)

// reader holds the state shared by every stage.
type reader struct {
	src io.Reader
	cfg *readerConfig

	version        format.Version
	gameChangelist uint32

	header1 section.Header1
	header2 section.Header2

	screenshotFormat format.ScreenshotFormat
	screenshotLen    int32
	screenshotDrained bool
}

// InitReader is the state Open returns: Header1 and Header2 are already
// decoded, and the screenshot frame header (if any) has been read, but no
// section payload past that point has been consumed.
type InitReader struct{ *reader }

// ScreenshotReader is reached once a caller has finished (or skipped)
// reading the screenshot payload via ScreenshotData's continuation.
type ScreenshotReader struct{ *reader }

// BricksReader is reached once the brick-stream section has been read and
// decompressed; its bricks are decoded lazily by the brick.Decoder returned
// alongside it.
type BricksReader struct{ *reader }

// ComponentsReader is the terminal stage, reached once the component
// catalog has been decoded.
type ComponentsReader struct{ *reader }

// Open reads a save file's magic, version, and both metadata sections from
// r, returning a reader positioned to read the optional screenshot and the
// brick stream.
func Open(r io.Reader, opts ...ReaderOption) (*InitReader, error) {
	cfg, err := newReaderConfig(opts...)
	if err != nil {
		return nil, err
	}

	if err := readMagic(r); err != nil {
		return nil, err
	}

	rawVersion, err := readUint16LE(r)
	if err != nil {
		return nil, err
	}
	version := format.Version(rawVersion)
	if version < format.VersionMin {
		return nil, errs.VersionTooOldError{Version: rawVersion}
	}
	if version > format.VersionMax {
		return nil, errs.VersionTooNewError{Version: rawVersion}
	}

	var gameChangelist uint32
	if version >= format.VersionAddedGameVersionAndHostAndOwnerDataAndImprovedMaterials {
		gameChangelist, err = readUint32LE(r)
		if err != nil {
			return nil, err
		}
	}

	header1Payload, err := section.ReadCompressed(r, cfg.maxSectionSize)
	if err != nil {
		return nil, fmt.Errorf("header1: %w", err)
	}
	header1, err := section.DecodeHeader1(header1Payload, version)
	if err != nil {
		return nil, fmt.Errorf("header1: %w", err)
	}

	header2Payload, err := section.ReadCompressed(r, cfg.maxSectionSize)
	if err != nil {
		return nil, fmt.Errorf("header2: %w", err)
	}
	header2, err := section.DecodeHeader2(header2Payload, version)
	if err != nil {
		return nil, fmt.Errorf("header2: %w", err)
	}

	rb := &reader{
		src:            r,
		cfg:            cfg,
		version:        version,
		gameChangelist: gameChangelist,
		header1:        header1,
		header2:        header2,
	}

	if version >= format.VersionAddedScreenshotData {
		var marker [1]byte
		if _, err := io.ReadFull(r, marker[:]); err != nil {
			return nil, fmt.Errorf("screenshot format: %w", err)
		}
		rb.screenshotFormat = format.ScreenshotFormat(marker[0])

		switch rb.screenshotFormat {
		case format.ScreenshotNone:
			rb.screenshotDrained = true
		case format.ScreenshotPNG:
			length, err := readInt32LE(r)
			if err != nil {
				return nil, fmt.Errorf("screenshot length: %w", err)
			}
			if length < 0 {
				return nil, fmt.Errorf("%w: negative screenshot length", errs.ErrInvalidInput)
			}
			rb.screenshotLen = length
		default:
			return nil, errs.UnknownScreenshotFormatError{Format: marker[0]}
		}
	} else {
		rb.screenshotDrained = true
	}

	return &InitReader{reader: rb}, nil
}

// Version reports the file's declared format version.
func (r *reader) Version() format.Version { return r.version }

// GameChangelist reports the game build's changelist number, valid only
// for files new enough to carry it (see format.VersionAddedGameVersionAndHostAndOwnerDataAndImprovedMaterials).
func (r *reader) GameChangelist() uint32 { return r.gameChangelist }

// Header1 returns the file's lightweight metadata.
func (r *reader) Header1() section.Header1 { return r.header1 }

// Header2 returns the file's lookup tables.
func (r *reader) Header2() section.Header2 { return r.header2 }

// ScreenshotData returns a reader over the embedded screenshot's raw bytes
// (empty if the file has none) and a continuation to call once done with
// it. The continuation discards any unread bytes before returning the next
// stage, so a caller may read zero, some, or all of the screenshot.
func (r *InitReader) ScreenshotData() (io.Reader, func() (*ScreenshotReader, error)) {
	if r.screenshotFormat != format.ScreenshotPNG {
		return bytes.NewReader(nil), func() (*ScreenshotReader, error) {
			return &ScreenshotReader{reader: r.reader}, nil
		}
	}

	lr := &io.LimitedReader{R: r.src, N: int64(r.screenshotLen)}

	return lr, func() (*ScreenshotReader, error) {
		if lr.N > 0 {
			if _, err := io.CopyN(io.Discard, lr.R, lr.N); err != nil {
				return nil, err
			}
			lr.N = 0
		}
		r.screenshotDrained = true

		return &ScreenshotReader{reader: r.reader}, nil
	}
}

// Bricks decodes the brick stream, automatically skipping the screenshot
// payload first if ScreenshotData was never called.
func (r *InitReader) Bricks() (*brick.Decoder, *BricksReader, error) {
	if !r.screenshotDrained {
		if _, err := io.CopyN(io.Discard, r.src, int64(r.screenshotLen)); err != nil {
			return nil, nil, err
		}
		r.screenshotDrained = true
	}

	return r.reader.bricks()
}

// Bricks decodes the brick stream.
func (r *ScreenshotReader) Bricks() (*brick.Decoder, *BricksReader, error) {
	return r.reader.bricks()
}

func (r *reader) bricks() (*brick.Decoder, *BricksReader, error) {
	payload, err := section.ReadCompressed(r.src, r.cfg.maxSectionSize)
	if err != nil {
		return nil, nil, fmt.Errorf("bricks: %w", err)
	}

	dec := brick.NewDecoder(
		payload,
		r.version,
		r.header1.BrickCount,
		uint32(len(r.header2.BrickAssets)),
		uint32(len(r.header2.Materials)),
		uint32(len(r.header2.Colors)),
	)

	return dec, &BricksReader{reader: r}, nil
}

// Components decodes the component catalog.
func (r *BricksReader) Components() (*section.ComponentCatalog, *ComponentsReader, error) {
	payload, err := section.ReadCompressed(r.src, r.cfg.maxSectionSize)
	if err != nil {
		return nil, nil, fmt.Errorf("components: %w", err)
	}

	catalog, err := section.DecodeComponentCatalog(payload, r.version)
	if err != nil {
		return nil, nil, fmt.Errorf("components: %w", err)
	}

	return catalog, &ComponentsReader{reader: r.reader}, nil
}

// IntoWriteData fully decodes the file — screenshot, bricks, and
// components included — into an in-memory WriteData, ready to pass to
// WriteSave. This consumes the entire reader.
func (r *InitReader) IntoWriteData() (*WriteData, error) {
	screenshotSrc, advance := r.ScreenshotData()
	screenshot, err := io.ReadAll(screenshotSrc)
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", err)
	}
	screenReader, err := advance()
	if err != nil {
		return nil, err
	}

	dec, bricksReader, err := screenReader.Bricks()
	if err != nil {
		return nil, err
	}
	var bricks []brick.Brick
	for dec.Next() {
		bricks = append(bricks, dec.Brick())
	}
	if err := dec.Err(); err != nil {
		return nil, fmt.Errorf("bricks: %w", err)
	}

	catalog, _, err := bricksReader.Components()
	if err != nil {
		return nil, err
	}

	entries := catalog.Entries()
	payloads := make([][]byte, len(entries))
	for i := range entries {
		payloads[i], err = catalog.ExtractPayload(i)
		if err != nil {
			return nil, fmt.Errorf("components: %w", err)
		}
	}

	if len(screenshot) == 0 {
		screenshot = nil
	}

	return &WriteData{
		Map:               r.header1.Map,
		Author:            r.header1.Author,
		Description:       r.header1.Description,
		Host:              r.header1.Host,
		SaveTime:          r.header1.SaveTime,
		Mods:              r.header2.Mods,
		BrickAssets:       r.header2.BrickAssets,
		Colors:            r.header2.Colors,
		Materials:         r.header2.Materials,
		BrickOwners:       r.header2.BrickOwners,
		Bricks:            bricks,
		Screenshot:        screenshot,
		Components:        entries,
		ComponentPayloads: payloads,
	}, nil
}
