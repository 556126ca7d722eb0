package section

import (
	"time"

	"github.com/bricksave/brs/encoding"
	"github.com/bricksave/brs/format"
	"github.com/google/uuid"
)

// User identifies a player by UUID and in-game name.
type User struct {
	ID   uuid.UUID
	Name string
}

// Header1 is the first compressed section: lightweight metadata a caller
// can inspect without decoding the (much larger) header2 lookup tables or
// brick stream.
type Header1 struct {
	Map         string
	Author      User
	Description string
	Host        *User // non-nil iff version >= AddedGameVersionAndHostAndOwnerDataAndImprovedMaterials
	SaveTime    *time.Time
	BrickCount  uint32
}

// DecodeHeader1 decodes a Header1 from payload, the already-decompressed
// bytes of the file's first CompressedSection.
func DecodeHeader1(payload []byte, version format.Version) (Header1, error) {
	c := encoding.NewCursor(payload)

	m, err := encoding.ReadString(c)
	if err != nil {
		return Header1{}, err
	}
	authorName, err := encoding.ReadString(c)
	if err != nil {
		return Header1{}, err
	}
	description, err := encoding.ReadString(c)
	if err != nil {
		return Header1{}, err
	}
	authorID, err := encoding.ReadUUID(c)
	if err != nil {
		return Header1{}, err
	}

	var host *User
	if version >= format.VersionAddedGameVersionAndHostAndOwnerDataAndImprovedMaterials {
		name, err := encoding.ReadString(c)
		if err != nil {
			return Header1{}, err
		}
		id, err := encoding.ReadUUID(c)
		if err != nil {
			return Header1{}, err
		}
		host = &User{ID: id, Name: name}
	}

	var saveTime *time.Time
	if version >= format.VersionAddedDateTime {
		t, err := encoding.ReadDateTime(c)
		if err != nil {
			return Header1{}, err
		}
		saveTime = &t
	}

	rawBrickCount, err := c.ReadInt32()
	if err != nil {
		return Header1{}, err
	}
	brickCount := uint32(rawBrickCount)
	if rawBrickCount < 0 {
		brickCount = 0
	}

	return Header1{
		Map:         m,
		Author:      User{ID: authorID, Name: authorName},
		Description: description,
		Host:        host,
		SaveTime:    saveTime,
		BrickCount:  brickCount,
	}, nil
}

// EncodeHeader1 encodes h for the newest supported version. Writers always
// emit every field the newest version adds (host, save time).
func EncodeHeader1(h Header1) []byte {
	b := encoding.NewBuilder(256)

	_ = encoding.WriteString(b, h.Map)
	_ = encoding.WriteString(b, h.Author.Name)
	_ = encoding.WriteString(b, h.Description)
	encoding.WriteUUID(b, h.Author.ID)

	host := h.Host
	if host == nil {
		host = &User{}
	}
	_ = encoding.WriteString(b, host.Name)
	encoding.WriteUUID(b, host.ID)

	saveTime := time.Now().UTC()
	if h.SaveTime != nil {
		saveTime = *h.SaveTime
	}
	encoding.WriteDateTime(b, saveTime)

	b.WriteInt32(int32(h.BrickCount))

	return b.Bytes()
}
