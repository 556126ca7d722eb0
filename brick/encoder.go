package brick

import (
	"fmt"

	"github.com/bricksave/brs/bitio"
	"github.com/bricksave/brs/errs"
)

// Encoder accumulates brick records into a bit-packed stream for the
// newest supported format version. Unlike Decoder, it never needs a
// version parameter: writers only ever emit the newest-version branch of
// every version-gated field (material as a bounded index, owner as a
// packed varint).
type Encoder struct {
	w *bitio.Writer

	assetTableLen    uint32
	materialTableLen uint32
	colorTableLen    uint32
}

// NewEncoder creates an Encoder that validates brick fields against the
// given table lengths as it writes them.
func NewEncoder(assetTableLen, materialTableLen, colorTableLen uint32) *Encoder {
	return &Encoder{
		w:                bitio.NewWriter(1024),
		assetTableLen:    assetTableLen,
		materialTableLen: materialTableLen,
		colorTableLen:    colorTableLen,
	}
}

// Encode appends one brick to the stream, byte-aligning before it as the
// format requires between records.
func (e *Encoder) Encode(b Brick) error {
	e.w.ByteAlign()

	assetMax := maxU32(e.assetTableLen, 2)
	if b.AssetNameIndex >= assetMax {
		return fmt.Errorf("%w: asset_name_index %d out of range [0,%d)", errs.ErrInvalidInput, b.AssetNameIndex, assetMax)
	}
	e.w.WriteInt(b.AssetNameIndex, assetMax)

	hasExplicitSize := b.Size != [3]uint32{0, 0, 0}
	e.w.WriteBit(hasExplicitSize)
	if hasExplicitSize {
		e.w.WritePositiveIntVectorPacked(b.Size[0], b.Size[1], b.Size[2])
	}

	e.w.WriteIntVectorPacked(b.Position[0], b.Position[1], b.Position[2])

	orientation := combineOrientation(b.Direction, b.Rotation)
	e.w.WriteInt(orientation, 24)

	e.w.WriteBit(b.Collision)
	e.w.WriteBit(b.Visibility)

	materialMax := maxU32(e.materialTableLen, 2)
	if b.MaterialIndex >= materialMax {
		return fmt.Errorf("%w: material_index %d out of range [0,%d)", errs.ErrInvalidInput, b.MaterialIndex, materialMax)
	}
	e.w.WriteInt(b.MaterialIndex, materialMax)

	e.w.WriteBit(b.Color.Custom)
	if b.Color.Custom {
		e.w.WriteRawUint32(uint32(b.Color.Color))
	} else {
		if e.colorTableLen == 0 {
			return fmt.Errorf("%w: color index used but color table is empty", errs.ErrInvalidInput)
		}
		if b.Color.Index >= e.colorTableLen {
			return fmt.Errorf("%w: color index %d out of range [0,%d)", errs.ErrInvalidInput, b.Color.Index, e.colorTableLen)
		}
		e.w.WriteInt(b.Color.Index, e.colorTableLen)
	}

	var ownerRaw uint32
	if b.OwnerIndex != nil {
		ownerRaw = *b.OwnerIndex + 1
	}
	e.w.WriteIntPacked(ownerRaw)

	return nil
}

// Bytes returns the accumulated brick stream payload.
func (e *Encoder) Bytes() []byte {
	return e.w.Bytes()
}
