// Package encoding implements the scalar wire primitives shared by the
// section and brick packages: length-prefixed strings, UUIDs, UE4
// date-times, and raw colors.
package encoding

import (
	"encoding/binary"
	"fmt"
	"unicode/utf16"

	"github.com/bricksave/brs/errs"
)

// ReadString reads a length-prefixed string from r.
//
// The i32 prefix's sign selects the encoding: non-negative is an ASCII byte
// count (including a trailing null terminator that is stripped from the
// returned string); negative is the negation of a UCS-2/UTF-16 code-unit
// count (likewise null-terminated and stripped).
func ReadString(r *Cursor) (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}

	if n >= 0 {
		if n == 0 {
			return "", fmt.Errorf("%w: zero-length ASCII string has no terminator", errs.ErrInvalidString)
		}
		data, err := r.ReadBytes(int(n))
		if err != nil {
			return "", err
		}

		return string(data[:len(data)-1]), nil
	}

	units := -n
	if units == 0 {
		return "", fmt.Errorf("%w: zero-length UCS-2 string has no terminator", errs.ErrInvalidString)
	}
	data, err := r.ReadBytes(int(units) * 2)
	if err != nil {
		return "", err
	}
	u16 := make([]uint16, units)
	for i := range u16 {
		u16[i] = binary.LittleEndian.Uint16(data[i*2:])
	}

	return string(utf16.Decode(u16[:len(u16)-1])), nil
}

// WriteString writes s using the smallest of the two length-prefix
// encodings: ASCII when every rune fits in a byte, UCS-2 otherwise.
//
// UCS-2 can only represent the BMP's non-surrogate code points; a rune
// outside [0, 0xd7ff] ∪ [0xe000, 0xffff] has no single UCS-2 code unit and
// is rejected rather than silently encoded as a UTF-16 surrogate pair.
func WriteString(w *Builder, s string) error {
	if isASCII(s) {
		n := len(s) + 1
		w.WriteInt32(int32(n))
		w.WriteBytes([]byte(s))
		w.WriteByte(0)

		return nil
	}

	for _, r := range s {
		if !isUCS2(r) {
			return fmt.Errorf("%w: non-BMP code point %U", errs.ErrInvalidString, r)
		}
	}

	units := utf16.Encode([]rune(s))
	n := len(units) + 1
	w.WriteInt32(-int32(n))
	for _, u := range units {
		w.WriteUint16(u)
	}
	w.WriteUint16(0)

	return nil
}

// isUCS2 reports whether r falls within the BMP's non-surrogate range and
// so has a single UCS-2 code unit.
func isUCS2(r rune) bool {
	return r <= 0xd7ff || (r >= 0xe000 && r <= 0xffff)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}

	return true
}
