package brs

import (
	"fmt"
	"io"

	"github.com/bricksave/brs/brick"
	"github.com/bricksave/brs/errs"
	"github.com/bricksave/brs/format"
	"github.com/bricksave/brs/section"
)

// WriteSave writes data to w as a complete .brs file at the newest format
// version. Writers never emit an older version: every version-gated field
// (host, save time, component descriptor naming, material/owner encoding)
// is written in its newest-version form.
func WriteSave(w io.Writer, data *WriteData) error {
	if _, err := w.Write(magicBytes[:]); err != nil {
		return err
	}
	if err := writeUint16LE(w, uint16(format.VersionMax)); err != nil {
		return err
	}
	if err := writeUint32LE(w, 0); err != nil { // game changelist: unknown on write
		return err
	}

	header1 := section.Header1{
		Map:         data.Map,
		Author:      data.Author,
		Description: data.Description,
		Host:        data.Host,
		SaveTime:    data.SaveTime,
		BrickCount:  uint32(len(data.Bricks)),
	}
	if err := section.WriteCompressed(w, section.EncodeHeader1(header1)); err != nil {
		return fmt.Errorf("header1: %w", err)
	}

	header2 := section.Header2{
		Mods:        data.Mods,
		BrickAssets: data.BrickAssets,
		Colors:      data.Colors,
		Materials:   data.Materials,
		BrickOwners: data.BrickOwners,
	}
	if err := section.WriteCompressed(w, section.EncodeHeader2(header2)); err != nil {
		return fmt.Errorf("header2: %w", err)
	}

	if len(data.Screenshot) == 0 {
		if _, err := w.Write([]byte{byte(format.ScreenshotNone)}); err != nil {
			return err
		}
	} else {
		if _, err := w.Write([]byte{byte(format.ScreenshotPNG)}); err != nil {
			return err
		}
		if err := writeInt32LE(w, int32(len(data.Screenshot))); err != nil {
			return err
		}
		if _, err := w.Write(data.Screenshot); err != nil {
			return err
		}
	}

	brickPayload, err := encodeBricks(data)
	if err != nil {
		return fmt.Errorf("bricks: %w", err)
	}
	if err := section.WriteCompressed(w, brickPayload); err != nil {
		return fmt.Errorf("bricks: %w", err)
	}

	componentPayload, err := section.EncodeComponentCatalog(data.Components, data.ComponentPayloads)
	if err != nil {
		return fmt.Errorf("components: %w", err)
	}
	if err := section.WriteCompressed(w, componentPayload); err != nil {
		return fmt.Errorf("components: %w", err)
	}

	return nil
}

func encodeBricks(data *WriteData) ([]byte, error) {
	enc := brick.NewEncoder(uint32(len(data.BrickAssets)), uint32(len(data.Materials)), uint32(len(data.Colors)))
	for i, b := range data.Bricks {
		if err := enc.Encode(b); err != nil {
			return nil, fmt.Errorf("%w: brick %d: %v", errs.ErrInvalidInput, i, err)
		}
	}

	payload := enc.Bytes()
	if len(payload) == 0 {
		// A compressed section must declare at least one byte, so an empty
		// brick stream is written as a single zero byte of padding.
		payload = []byte{0}
	}

	return payload, nil
}
