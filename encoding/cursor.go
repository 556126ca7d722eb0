package encoding

import (
	"fmt"
	"io"

	"github.com/bricksave/brs/endian"
	"github.com/bricksave/brs/internal/pool"
)

// Cursor is a forward-only byte reader over an in-memory section payload,
// used for every sequentially-laid-out field in Header1/Header2. The brick
// stream and the component catalog are read through bitio.Reader instead.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewCursor creates a Cursor over data using little-endian field encoding,
// matching every numeric field in the BRS wire format.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data, engine: endian.GetLittleEndianEngine()}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// ReadBytes reads exactly n bytes, or returns io.ErrUnexpectedEOF.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("encoding: negative read length %d", n)
	}
	if c.pos+n > len(c.data) {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// ReadInt32 reads a signed little-endian 32-bit integer.
func (c *Cursor) ReadInt32() (int32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return int32(c.engine.Uint32(b)), nil
}

// ReadUint32 reads an unsigned little-endian 32-bit integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint32(b), nil
}

// ReadUint16 reads an unsigned little-endian 16-bit integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	b, err := c.ReadBytes(2)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint16(b), nil
}

// ReadByte reads a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	b, err := c.ReadBytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt64 reads a signed little-endian 64-bit integer.
func (c *Cursor) ReadInt64() (int64, error) {
	b, err := c.ReadBytes(8)
	if err != nil {
		return 0, err
	}

	return int64(c.engine.Uint64(b)), nil
}

// Rest returns every remaining unread byte without advancing the cursor.
func (c *Cursor) Rest() []byte {
	return c.data[c.pos:]
}

// Builder is a growable little-endian byte writer, the write-side
// counterpart of Cursor. It is backed by a pool.ByteBuffer to amortize
// allocations across the many small appends a Header1/Header2 encode does.
type Builder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewBuilder creates a Builder with the given initial capacity hint.
func NewBuilder(sizeHint int) *Builder {
	return &Builder{buf: pool.NewByteBuffer(sizeHint), engine: endian.GetLittleEndianEngine()}
}

// WriteBytes appends raw bytes verbatim.
func (b *Builder) WriteBytes(data []byte) { b.buf.MustWrite(data) }

// WriteByte appends a single byte.
func (b *Builder) WriteByte(v byte) { b.buf.MustWrite([]byte{v}) }

// WriteInt32 appends a signed little-endian 32-bit integer.
func (b *Builder) WriteInt32(v int32) {
	b.buf.B = b.engine.AppendUint32(b.buf.B, uint32(v))
}

// WriteUint32 appends an unsigned little-endian 32-bit integer.
func (b *Builder) WriteUint32(v uint32) {
	b.buf.B = b.engine.AppendUint32(b.buf.B, v)
}

// WriteUint16 appends an unsigned little-endian 16-bit integer.
func (b *Builder) WriteUint16(v uint16) {
	b.buf.B = b.engine.AppendUint16(b.buf.B, v)
}

// WriteInt64 appends a signed little-endian 64-bit integer.
func (b *Builder) WriteInt64(v int64) {
	b.buf.B = b.engine.AppendUint64(b.buf.B, uint64(v))
}

// Bytes returns the accumulated byte slice.
func (b *Builder) Bytes() []byte { return b.buf.Bytes() }
