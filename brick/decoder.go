package brick

import (
	"github.com/bricksave/brs/bitio"
	"github.com/bricksave/brs/encoding"
	"github.com/bricksave/brs/format"
)

// Decoder iterates the bricks in a decompressed brick-stream payload,
// scanner-style: call Next in a loop, read Brick after each true result,
// and check Err once the loop ends.
//
// On a malformed field, Next latches the error: it returns false and every
// subsequent call also returns false without touching the underlying
// reader again, mirroring the upstream iterator's "index = brick_count on
// first error" behavior.
type Decoder struct {
	r       *bitio.Reader
	version format.Version

	assetTableLen    uint32
	materialTableLen uint32
	colorTableLen    uint32

	brickCount uint32
	index      uint32

	current Brick
	err     error
}

// NewDecoder creates a Decoder over payload, the already-decompressed bytes
// of the file's brick-stream CompressedSection. brickCount comes from
// Header1; the table lengths come from Header2 (asset, material and color
// tables respectively).
func NewDecoder(payload []byte, version format.Version, brickCount, assetTableLen, materialTableLen, colorTableLen uint32) *Decoder {
	return &Decoder{
		r:                bitio.NewReader(payload),
		version:          version,
		assetTableLen:    assetTableLen,
		materialTableLen: materialTableLen,
		colorTableLen:    colorTableLen,
		brickCount:       brickCount,
	}
}

// Next decodes the next brick, making it available via Brick. It returns
// false once every brick has been decoded, or immediately and permanently
// once a decode error occurs (see Err).
func (d *Decoder) Next() bool {
	if d.err != nil || d.index >= d.brickCount {
		return false
	}

	b, err := d.readBrick()
	if err != nil {
		d.err = err
		d.index = d.brickCount

		return false
	}

	d.current = b
	d.index++

	return true
}

// Brick returns the brick decoded by the most recent call to Next.
func (d *Decoder) Brick() Brick { return d.current }

// Err returns the first error encountered during decoding, if any.
func (d *Decoder) Err() error { return d.err }

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}

	return b
}

func (d *Decoder) readBrick() (Brick, error) {
	d.r.EatByteAlign()

	assetNameIndex, err := d.r.ReadInt(maxU32(d.assetTableLen, 2))
	if err != nil {
		return Brick{}, err
	}

	hasExplicitSize, err := d.r.ReadBit()
	if err != nil {
		return Brick{}, err
	}
	var size [3]uint32
	if hasExplicitSize {
		x, y, z, err := d.r.ReadPositiveIntVectorPacked()
		if err != nil {
			return Brick{}, err
		}
		size = [3]uint32{x, y, z}
	}

	px, py, pz, err := d.r.ReadIntVectorPacked()
	if err != nil {
		return Brick{}, err
	}

	orientation, err := d.r.ReadInt(24)
	if err != nil {
		return Brick{}, err
	}
	direction, rotation := splitOrientation(orientation)

	collision, err := d.r.ReadBit()
	if err != nil {
		return Brick{}, err
	}
	visibility, err := d.r.ReadBit()
	if err != nil {
		return Brick{}, err
	}

	var materialIndex uint32
	if d.version >= format.VersionAddedGameVersionAndHostAndOwnerDataAndImprovedMaterials {
		materialIndex, err = d.r.ReadInt(maxU32(d.materialTableLen, 2))
		if err != nil {
			return Brick{}, err
		}
	} else {
		hasMaterial, err := d.r.ReadBit()
		if err != nil {
			return Brick{}, err
		}
		if hasMaterial {
			materialIndex, err = d.r.ReadIntPacked()
			if err != nil {
				return Brick{}, err
			}
		} else {
			materialIndex = 1
		}
	}

	custom, err := d.r.ReadBit()
	if err != nil {
		return Brick{}, err
	}
	var color ColorMode
	if !custom {
		idx, err := d.r.ReadInt(d.colorTableLen)
		if err != nil {
			return Brick{}, err
		}
		color = ColorMode{Index: idx}
	} else {
		raw, err := d.r.ReadRawUint32()
		if err != nil {
			return Brick{}, err
		}
		color = ColorMode{Custom: true, Color: encoding.Color(raw)}
	}

	var ownerRaw uint32
	if d.version >= format.VersionAddedOwnerData {
		ownerRaw, err = d.r.ReadIntPacked()
		if err != nil {
			return Brick{}, err
		}
	}
	var ownerIndex *uint32
	if ownerRaw > 0 {
		idx := ownerRaw - 1
		ownerIndex = &idx
	}

	return Brick{
		AssetNameIndex: assetNameIndex,
		Size:           size,
		Position:       [3]int32{px, py, pz},
		Direction:      direction,
		Rotation:       rotation,
		Collision:      collision,
		Visibility:     visibility,
		MaterialIndex:  materialIndex,
		Color:          color,
		OwnerIndex:     ownerIndex,
	}, nil
}
