package brs

import (
	"bytes"
	"testing"
	"time"

	"github.com/bricksave/brs/brick"
	"github.com/bricksave/brs/encoding"
	"github.com/bricksave/brs/errs"
	"github.com/bricksave/brs/format"
	"github.com/bricksave/brs/section"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_EmptyNewest(t *testing.T) {
	epoch := time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)
	data := &WriteData{
		Map:         "Plate",
		Author:      section.User{Name: "J"},
		Description: "",
		SaveTime:    &epoch,
		Mods:        []string{},
		BrickAssets: []string{"PB_DefaultBrick"},
		Colors:      []encoding.Color{encoding.NewColor(0xFF, 0x17, 0xC6, 0xFF)},
		Materials:   []string{"BMC_Plastic"},
		BrickOwners: []section.BrickOwner{},
		Bricks:      []brick.Brick{},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSave(&buf, data))

	r, err := Open(&buf)
	require.NoError(t, err)
	got, err := r.IntoWriteData()
	require.NoError(t, err)

	require.Equal(t, data.Map, got.Map)
	require.Equal(t, data.Author, got.Author)
	require.Equal(t, data.Description, got.Description)
	require.WithinDuration(t, epoch, *got.SaveTime, time.Microsecond)
	require.Equal(t, data.BrickAssets, got.BrickAssets)
	require.Equal(t, data.Colors, got.Colors)
	require.Equal(t, data.Materials, got.Materials)
	require.Empty(t, got.Bricks)
}

func TestRoundTrip_OneBrickDefaultMaterialCustomColor(t *testing.T) {
	data := &WriteData{
		Map:         "Plate",
		Author:      section.User{Name: "J"},
		BrickAssets: []string{"PB_DefaultBrick"},
		Colors:      []encoding.Color{encoding.NewColor(0, 0, 0, 0)},
		Materials:   []string{"BMC_Plastic"},
		Bricks: []brick.Brick{
			{
				AssetNameIndex: 0,
				Direction:      brick.DirectionZPositive,
				Rotation:       brick.RotationDeg0,
				Collision:      true,
				Visibility:     true,
				MaterialIndex:  1,
				Color:          brick.ColorMode{Custom: true, Color: encoding.Color(0xFF0000FF)},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSave(&buf, data))

	r, err := Open(&buf)
	require.NoError(t, err)
	got, err := r.IntoWriteData()
	require.NoError(t, err)

	require.Len(t, got.Bricks, 1)
	require.Equal(t, data.Bricks[0], got.Bricks[0])
}

func TestScreenshotPassthrough(t *testing.T) {
	data := &WriteData{
		Map:         "Plate",
		Author:      section.User{Name: "J"},
		BrickAssets: []string{"PB_DefaultBrick"},
		Colors:      []encoding.Color{encoding.NewColor(1, 2, 3, 255)},
		Materials:   []string{"BMC_Plastic"},
		Screenshot:  []byte{0x89, 0x50, 0x4E, 0x47, 0x01, 0x02, 0x03, 0x04},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSave(&buf, data))

	r, err := Open(&buf)
	require.NoError(t, err)
	got, err := r.IntoWriteData()
	require.NoError(t, err)
	require.Equal(t, data.Screenshot, got.Screenshot)
}

func TestOpen_VersionTooNew(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magicBytes[:])
	require.NoError(t, writeUint16LE(&buf, uint16(format.VersionMax)+1))

	_, err := Open(&buf)
	require.Error(t, err)
	var tooNew errs.VersionTooNewError
	require.ErrorAs(t, err, &tooNew)
}

func TestOpen_InvalidMagic(t *testing.T) {
	_, err := Open(bytes.NewReader([]byte("XYZ")))
	require.ErrorIs(t, err, errs.ErrInvalidMagic)
}
