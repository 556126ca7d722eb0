package section

import (
	"fmt"

	"github.com/bricksave/brs/encoding"
	"github.com/bricksave/brs/errs"
	"github.com/bricksave/brs/format"
)

// defaultMaterials is substituted on read for files older than
// MaterialsStoredAsNames, which had a fixed four-slot material table instead
// of a string lookup. Encoders never emit files old enough to need this.
var defaultMaterials = []string{"BMC_Hologram", "BMC_Plastic", "BMC_Glow", "BMC_Metallic"}

// BrickOwner is an entry in Header2's owner lookup table: the user plus how
// many bricks they own in this save (zero/absent before the field existed).
type BrickOwner struct {
	User       User
	BrickCount uint32
}

// Header2 is the second compressed section: the lookup tables bricks index into.
type Header2 struct {
	Mods        []string
	BrickAssets []string
	Colors      []encoding.Color
	Materials   []string
	BrickOwners []BrickOwner
}

// DecodeHeader2 decodes a Header2 from payload, the already-decompressed
// bytes of the file's second CompressedSection.
func DecodeHeader2(payload []byte, version format.Version) (Header2, error) {
	c := encoding.NewCursor(payload)

	mods, err := readStringArray(c)
	if err != nil {
		return Header2{}, fmt.Errorf("mods: %w", err)
	}
	brickAssets, err := readStringArray(c)
	if err != nil {
		return Header2{}, fmt.Errorf("brick assets: %w", err)
	}

	colorCount, err := c.ReadInt32()
	if err != nil {
		return Header2{}, err
	}
	if colorCount < 0 {
		return Header2{}, fmt.Errorf("%w: negative color count", errs.ErrInvalidInput)
	}
	colors := make([]encoding.Color, colorCount)
	for i := range colors {
		colors[i], err = encoding.ReadColor(c)
		if err != nil {
			return Header2{}, fmt.Errorf("colors[%d]: %w", i, err)
		}
	}

	var materials []string
	if version >= format.VersionMaterialsStoredAsNames {
		materials, err = readStringArray(c)
		if err != nil {
			return Header2{}, fmt.Errorf("materials: %w", err)
		}
	} else {
		materials = append([]string(nil), defaultMaterials...)
	}

	var brickOwners []BrickOwner
	if version >= format.VersionAddedOwnerData {
		withCount := version >= format.VersionAddedGameVersionAndHostAndOwnerDataAndImprovedMaterials
		n, err := c.ReadInt32()
		if err != nil {
			return Header2{}, err
		}
		if n < 0 {
			return Header2{}, fmt.Errorf("%w: negative brick owner count", errs.ErrInvalidInput)
		}
		brickOwners = make([]BrickOwner, n)
		for i := range brickOwners {
			id, err := encoding.ReadUUID(c)
			if err != nil {
				return Header2{}, fmt.Errorf("brick_owners[%d]: %w", i, err)
			}
			name, err := encoding.ReadString(c)
			if err != nil {
				return Header2{}, fmt.Errorf("brick_owners[%d]: %w", i, err)
			}
			var count uint32
			if withCount {
				count, err = c.ReadUint32()
				if err != nil {
					return Header2{}, fmt.Errorf("brick_owners[%d]: %w", i, err)
				}
			}
			brickOwners[i] = BrickOwner{User: User{ID: id, Name: name}, BrickCount: count}
		}
	}

	return Header2{
		Mods:        mods,
		BrickAssets: brickAssets,
		Colors:      colors,
		Materials:   materials,
		BrickOwners: brickOwners,
	}, nil
}

// EncodeHeader2 encodes h for the newest supported version: materials are
// always a string table and brick owner entries always carry a brick count.
func EncodeHeader2(h Header2) []byte {
	b := encoding.NewBuilder(512)

	writeStringArray(b, h.Mods)
	writeStringArray(b, h.BrickAssets)

	b.WriteInt32(int32(len(h.Colors)))
	for _, c := range h.Colors {
		encoding.WriteColor(b, c)
	}

	writeStringArray(b, h.Materials)

	b.WriteInt32(int32(len(h.BrickOwners)))
	for _, o := range h.BrickOwners {
		encoding.WriteUUID(b, o.User.ID)
		_ = encoding.WriteString(b, o.User.Name)
		b.WriteUint32(o.BrickCount)
	}

	return b.Bytes()
}

func readStringArray(c *encoding.Cursor) ([]string, error) {
	n, err := c.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: negative array count", errs.ErrInvalidInput)
	}

	result := make([]string, n)
	for i := range result {
		s, err := encoding.ReadString(c)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		result[i] = s
	}

	return result, nil
}

func writeStringArray(b *encoding.Builder, values []string) {
	b.WriteInt32(int32(len(values)))
	for _, s := range values {
		_ = encoding.WriteString(b, s)
	}
}
