package bitio

import "github.com/bricksave/brs/internal/pool"

// Writer accumulates individual bits and derived integer encodings into a
// growable byte buffer, LSB-first within each byte, mirroring Reader.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	buf *pool.ByteBuffer
	cur byte // partially-filled current byte
	bit uint // number of bits already placed in cur, in [0, 8)
}

// NewWriter creates a Writer backed by a fresh buffer of the given initial capacity.
func NewWriter(sizeHint int) *Writer {
	return &Writer{buf: pool.NewByteBuffer(sizeHint)}
}

// WriteBit appends a single bit, LSB-first within the current byte.
func (w *Writer) WriteBit(bit bool) {
	if bit {
		w.cur |= 1 << w.bit
	}
	if w.bit == 7 {
		w.buf.MustWrite([]byte{w.cur})
		w.cur = 0
		w.bit = 0
	} else {
		w.bit++
	}
}

// ByteAligned reports whether the writer currently sits on a byte boundary.
func (w *Writer) ByteAligned() bool {
	return w.bit == 0
}

// ByteAlign flushes any partially-filled byte, zero-padding the remaining bits.
func (w *Writer) ByteAlign() {
	if w.bit != 0 {
		w.buf.MustWrite([]byte{w.cur})
		w.cur = 0
		w.bit = 0
	}
}

// WriteInt writes value as a bounded unsigned integer in [0, max), using the
// same mask-doubling bit count as Reader.ReadInt.
func (w *Writer) WriteInt(value, max uint32) {
	var newValue, mask uint32 = 0, 1
	for newValue+mask < max && mask != 0 {
		bit := value&mask != 0
		w.WriteBit(bit)
		if bit {
			newValue |= mask
		}
		mask *= 2
	}
}

// WriteIntPacked writes value as a 7-bit-group packed varint, least-significant
// group first, matching Reader.ReadIntPacked.
func (w *Writer) WriteIntPacked(value uint32) {
	for {
		group := value & 0b111_1111
		value >>= 7
		w.WriteBit(value != 0)
		for b := range 7 {
			w.WriteBit(group&(1<<uint(b)) != 0)
		}
		if value == 0 {
			break
		}
	}
}

// WriteIntVectorPacked writes three signed packed integers using the zigzag-like
// mapping (|v|<<1)|(v>0 ? 1 : 0), matching Reader.ReadIntVectorPacked.
func (w *Writer) WriteIntVectorPacked(x, y, z int32) {
	item := func(v int32) uint32 {
		mag := v
		if mag < 0 {
			mag = -mag
		}
		sign := uint32(0)
		if v > 0 {
			sign = 1
		}

		return (uint32(mag) << 1) | sign
	}
	w.WriteIntPacked(item(x))
	w.WriteIntPacked(item(y))
	w.WriteIntPacked(item(z))
}

// WritePositiveIntVectorPacked writes three unsigned packed integers.
func (w *Writer) WritePositiveIntVectorPacked(x, y, z uint32) {
	w.WriteIntPacked(x)
	w.WriteIntPacked(y)
	w.WriteIntPacked(z)
}

// WriteRawUint32 writes v as 32 individual bits, little-endian, without
// requiring byte alignment. The write-side counterpart of ReadRawUint32.
func (w *Writer) WriteRawUint32(v uint32) {
	var buf [4]byte
	buf[0], buf[1], buf[2], buf[3] = byte(v), byte(v>>8), byte(v>>16), byte(v>>24)
	for i := range 32 {
		w.WriteBit(buf[i/8]&(1<<uint(i%8)) != 0)
	}
}

// WriteUint32LE writes a plain little-endian u32 as four bytes, the
// write-side counterpart of Reader.ReadUint32LE. The writer must be
// byte-aligned; callers that are not byte-aligned must call ByteAlign first.
func (w *Writer) WriteUint32LE(v uint32) {
	w.WriteBytes([]byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)})
}

// WriteBytes appends raw bytes. The writer must be byte-aligned; callers
// that are not byte-aligned must call ByteAlign first.
func (w *Writer) WriteBytes(b []byte) {
	w.buf.MustWrite(b)
}

// Bytes returns the accumulated bytes, including any trailing partial byte
// zero-padded as-is (call ByteAlign first to make the padding explicit and
// flush it into the slice).
func (w *Writer) Bytes() []byte {
	if w.bit != 0 {
		return append(w.buf.Bytes(), w.cur)
	}

	return w.buf.Bytes()
}
