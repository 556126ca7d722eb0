package brs

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bricksave/brs/errs"
)

var magicBytes = [3]byte{'B', 'R', 'S'}

func readMagic(r io.Reader) error {
	var got [3]byte
	if _, err := io.ReadFull(r, got[:]); err != nil {
		return err
	}
	if got != magicBytes {
		return fmt.Errorf("%w: got %q", errs.ErrInvalidMagic, got)
	}

	return nil
}

func readUint16LE(r io.Reader) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(b[:]), nil
}

func readUint32LE(r io.Reader) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(b[:]), nil
}

func readInt32LE(r io.Reader) (int32, error) {
	v, err := readUint32LE(r)

	return int32(v), err
}

func writeUint16LE(w io.Writer, v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])

	return err
}

func writeUint32LE(w io.Writer, v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])

	return err
}

func writeInt32LE(w io.Writer, v int32) error {
	return writeUint32LE(w, uint32(v))
}
