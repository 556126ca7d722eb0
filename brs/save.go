package brs

import (
	"time"

	"github.com/bricksave/brs/brick"
	"github.com/bricksave/brs/encoding"
	"github.com/bricksave/brs/section"
)

// WriteData is the fully in-memory representation of a save file, ready to
// be handed to WriteSave. It is what IntoWriteData materializes from a
// Reader, and what a caller building a save from scratch populates by hand.
type WriteData struct {
	Map         string
	Author      section.User
	Description string
	Host        *section.User
	SaveTime    *time.Time

	Mods        []string
	BrickAssets []string
	Colors      []encoding.Color
	Materials   []string
	BrickOwners []section.BrickOwner

	Bricks []brick.Brick

	// Screenshot holds PNG-encoded bytes, or nil for no screenshot.
	Screenshot []byte

	// Components and ComponentPayloads are parallel slices (entry, raw
	// payload bits). A save with no components leaves both nil.
	Components        []section.ComponentEntry
	ComponentPayloads [][]byte
}
