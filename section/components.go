package section

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/bricksave/brs/bitio"
	"github.com/bricksave/brs/errs"
	"github.com/bricksave/brs/format"
)

// ComponentEntry is one catalog entry: a component type name and where its
// (unparsed) payload lives in the decompressed component stream.
type ComponentEntry struct {
	Name    string
	DataPos int // absolute bit offset of the payload within the stream
	DataLen int // payload length in bits
}

// ComponentCatalog enumerates the component stream's entries without
// interpreting any payload. The game's own component schema is outside this
// library's scope; callers that need the bytes can slice them out of the
// original decompressed payload using DataPos/DataLen.
type ComponentCatalog struct {
	entries []ComponentEntry
	raw     []byte // the decompressed component-stream payload entries index into
}

// DecodeComponentCatalog decodes a ComponentCatalog from payload, the
// already-decompressed bytes of the file's component CompressedSection.
//
// Per entry: byte-align, read the type name (before version 8, replacing
// every "BTD" in it with "BCD" to match the current descriptor naming), read
// a u32 bit-length,
// record the current bit offset, and skip that many bits without parsing —
// grounded on the upstream reader's own unimplemented component parser,
// which only ever needed to skip past entries it didn't understand.
func DecodeComponentCatalog(payload []byte, version format.Version) (*ComponentCatalog, error) {
	r := bitio.NewReader(payload)

	count, err := r.ReadUint32LE()
	if err != nil {
		return nil, err
	}

	entries := make([]ComponentEntry, 0, count)
	for i := uint32(0); i < count; i++ {
		r.EatByteAlign()

		name, err := readComponentName(r)
		if err != nil {
			return nil, fmt.Errorf("component[%d]: %w", i, err)
		}
		if version < format.VersionRenamedComponentDescriptors {
			name = strings.ReplaceAll(name, "BTD", "BCD")
		}

		dataLen, err := r.ReadUint32LE()
		if err != nil {
			return nil, fmt.Errorf("component[%d]: %w", i, err)
		}

		dataPos := r.Pos()
		if err := r.Skip(int(dataLen)); err != nil {
			return nil, fmt.Errorf("component[%d]: %w", i, err)
		}

		entries = append(entries, ComponentEntry{Name: name, DataPos: dataPos, DataLen: int(dataLen)})
	}

	return &ComponentCatalog{entries: entries, raw: payload}, nil
}

// Len returns the number of entries in the catalog.
func (c *ComponentCatalog) Len() int { return len(c.entries) }

// Entries returns every catalog entry in file order.
func (c *ComponentCatalog) Entries() []ComponentEntry { return c.entries }

// Names returns every entry's type name in file order.
func (c *ComponentCatalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}

	return names
}

// ExtractPayload copies the i'th entry's raw, uninterpreted payload bits out
// of the catalog's underlying stream into a byte slice, padding the final
// partial byte with zero bits. Used by cmd/brsdump's export-bundle command;
// the core never calls this itself.
func (c *ComponentCatalog) ExtractPayload(i int) ([]byte, error) {
	e := c.entries[i]
	r := bitio.NewReader(c.raw)
	if err := r.Skip(e.DataPos); err != nil {
		return nil, err
	}

	nBytes := (e.DataLen + 7) / 8
	out := make([]byte, nBytes)
	for i := 0; i < e.DataLen; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit {
			out[i/8] |= 1 << uint(i%8)
		}
	}

	return out, nil
}

// EncodeComponentCatalog encodes entries as a component stream, writing each
// entry's name (post-rename, i.e. as "BCD"), its payload's bit length, and
// the payload bits themselves. Writers always emit the current descriptor
// naming, so no BTD/BCD substitution happens here.
func EncodeComponentCatalog(entries []ComponentEntry, payloads [][]byte) ([]byte, error) {
	if len(entries) != len(payloads) {
		return nil, fmt.Errorf("%w: %d entries but %d payloads", errs.ErrInvalidInput, len(entries), len(payloads))
	}

	w := bitio.NewWriter(256)
	w.WriteUint32LE(uint32(len(entries)))
	for i, e := range entries {
		w.ByteAlign()
		writeComponentName(w, e.Name)
		w.WriteUint32LE(uint32(e.DataLen))
		writeBits(w, payloads[i], e.DataLen)
	}

	return w.Bytes(), nil
}

func writeBits(w *bitio.Writer, payload []byte, nBits int) {
	for i := 0; i < nBits; i++ {
		bit := payload[i/8]&(1<<uint(i%8)) != 0
		w.WriteBit(bit)
	}
}

func writeComponentName(w *bitio.Writer, name string) {
	if isASCII(name) {
		n := int32(len(name) + 1)
		w.WriteUint32LE(uint32(n))
		w.WriteBytes([]byte(name))
		w.WriteBytes([]byte{0})

		return
	}

	units := utf16.Encode([]rune(name))
	n := int32(-(len(units) + 1))
	w.WriteUint32LE(uint32(n))
	for _, u := range units {
		w.WriteBytes([]byte{byte(u), byte(u >> 8)})
	}
	w.WriteBytes([]byte{0, 0})
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}

	return true
}

// readComponentName reads one length-prefixed string using the same i32-sign
// encoding as encoding.ReadString, duplicated here because the catalog reads
// through a bit reader rather than a byte cursor.
func readComponentName(r *bitio.Reader) (string, error) {
	raw, err := r.ReadUint32LE()
	if err != nil {
		return "", err
	}
	n := int32(raw)

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
