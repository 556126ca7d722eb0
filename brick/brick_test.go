package brick

import (
	"testing"

	"github.com/bricksave/brs/encoding"
	"github.com/bricksave/brs/errs"
	"github.com/bricksave/brs/format"
	"github.com/stretchr/testify/require"
)

func owner(i uint32) *uint32 { return &i }

func TestEncodeDecode_RoundTrip(t *testing.T) {
	bricks := []Brick{
		{
			AssetNameIndex: 0,
			Position:       [3]int32{10, -20, 30},
			Direction:      DirectionZPositive,
			Rotation:       1,
			Collision:      true,
			Visibility:     true,
			MaterialIndex:  0,
			Color:          ColorMode{Index: 2},
		},
		{
			AssetNameIndex: 1,
			Size:           [3]uint32{5, 5, 5},
			Position:       [3]int32{0, 0, 0},
			Direction:      DirectionXNegative,
			Rotation:       3,
			Collision:      false,
			Visibility:     true,
			MaterialIndex:  1,
			Color:          ColorMode{Custom: true, Color: encoding.NewColor(1, 2, 3, 255)},
			OwnerIndex:     owner(4),
		},
	}

	enc := NewEncoder(2, 2, 3)
	for _, b := range bricks {
		require.NoError(t, enc.Encode(b))
	}
	payload := enc.Bytes()

	dec := NewDecoder(payload, format.VersionMax, uint32(len(bricks)), 2, 2, 3)
	var got []Brick
	for dec.Next() {
		got = append(got, dec.Brick())
	}
	require.NoError(t, dec.Err())
	require.Equal(t, bricks, got)
}

func TestDecoder_LatchesFirstError(t *testing.T) {
	dec := NewDecoder([]byte{}, format.VersionMax, 3, 2, 2, 2)
	require.False(t, dec.Next())
	require.Error(t, dec.Err())
	require.False(t, dec.Next())
	require.Error(t, dec.Err())
}

func TestEncoder_RejectsOutOfRangeAssetIndex(t *testing.T) {
	enc := NewEncoder(1, 2, 2)
	err := enc.Encode(Brick{AssetNameIndex: 5, Color: ColorMode{Index: 0}})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestEncoder_RejectsColorIndexWithEmptyTable(t *testing.T) {
	enc := NewEncoder(2, 2, 0)
	err := enc.Encode(Brick{Color: ColorMode{Index: 0}})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestSplitCombineOrientation(t *testing.T) {
	for direction := Direction(0); direction < 6; direction++ {
		for rotation := Rotation(0); rotation < 4; rotation++ {
			packed := combineOrientation(direction, rotation)
			gotDir, gotRot := splitOrientation(packed)
			require.Equal(t, direction, gotDir)
			require.Equal(t, rotation, gotRot)
		}
	}
}
