// Package brick implements the bit-packed brick stream codec: the
// highest-volume part of a .brs file, where every brick placed in the save
// is recorded as a dense run of variable-width fields.
package brick

import "github.com/bricksave/brs/encoding"

// Direction is one of the six axis-aligned facings a brick can be placed in.
type Direction uint8

const (
	DirectionXPositive Direction = iota
	DirectionXNegative
	DirectionYPositive
	DirectionYNegative
	DirectionZPositive
	DirectionZNegative
)

// Rotation is a quarter-turn count (0-3) around the brick's direction axis.
type Rotation uint8

const (
	RotationDeg0 Rotation = iota
	RotationDeg90
	RotationDeg180
	RotationDeg270
)

// ColorMode selects whether a brick indexes into the save's color table or
// carries its own raw color.
type ColorMode struct {
	// Custom is true when Color holds a literal value; otherwise Index
	// selects a slot in Header2.Colors.
	Custom bool
	Index  uint32
	Color  encoding.Color
}

// Brick is one decoded brick stream record. Field names and types mirror
// the wire encoding described in the brick stream codec.
type Brick struct {
	AssetNameIndex uint32
	Size           [3]uint32 // (0,0,0) means "use the asset's default size"
	Position       [3]int32
	Direction      Direction
	Rotation       Rotation
	Collision      bool
	Visibility     bool
	MaterialIndex  uint32
	Color          ColorMode
	// OwnerIndex is nil when the brick has no recorded owner, otherwise an
	// index into Header2.BrickOwners.
	OwnerIndex *uint32
}

// splitOrientation decodes the packed 5-bit orientation value into a
// direction (mod 6) and rotation (low 2 bits).
func splitOrientation(orientation uint32) (Direction, Rotation) {
	return Direction((orientation >> 2) % 6), Rotation(orientation & 0b11)
}

// combineOrientation is the inverse of splitOrientation.
func combineOrientation(direction Direction, rotation Rotation) uint32 {
	return uint32(direction)<<2 | uint32(rotation)
}
