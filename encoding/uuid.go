package encoding

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// ReadUUID reads a UUID encoded as four little-endian u32 words that are
// reinterpreted as big-endian bytes: each of the four 32-bit words read off
// the wire is written back out most-significant-byte-first, which is the
// reshuffle the original game client's serializer performs on FGuid.
func ReadUUID(r *Cursor) (uuid.UUID, error) {
	var abcd [4]uint32
	for i := range abcd {
		v, err := r.ReadUint32()
		if err != nil {
			return uuid.UUID{}, err
		}
		abcd[i] = v
	}

	var out uuid.UUID
	for i, word := range abcd {
		binary.BigEndian.PutUint32(out[i*4:], word)
	}

	return out, nil
}

// WriteUUID writes id using the inverse of ReadUUID's word reshuffle.
func WriteUUID(w *Builder, id uuid.UUID) {
	for i := 0; i < 16; i += 4 {
		w.WriteUint32(binary.BigEndian.Uint32(id[i : i+4]))
	}
}
