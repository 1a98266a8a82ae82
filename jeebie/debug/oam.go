package debug

import (
	"fmt"

	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/disasm"
)

const (
	OAMSpriteCount    = 40
	OAMBytesPerSprite = 4
	SpriteYOffset     = 16
	SpriteXOffset     = 8
)

// Sprite attribute bit positions
const (
	AttrBackgroundPriority = 7
	AttrFlipY              = 6
	AttrFlipX              = 5
	AttrPaletteNumber      = 4
)

// SpriteInfo is an OAM entry with screen coordinates.
type SpriteInfo struct {
	Index      int
	Y          int
	X          int
	TileIndex  uint8
	Attributes uint8
}

// ReadOAM decodes every OAM entry.
func ReadOAM(mem disasm.Reader) []SpriteInfo {
	sprites := make([]SpriteInfo, OAMSpriteCount)
	for i := range sprites {
		base := addr.OAMStart + uint16(i*OAMBytesPerSprite)
		sprites[i] = SpriteInfo{
			Index:      i,
			Y:          int(mem.Read(base)) - SpriteYOffset,
			X:          int(mem.Read(base+1)) - SpriteXOffset,
			TileIndex:  mem.Read(base + 2),
			Attributes: mem.Read(base + 3),
		}
	}
	return sprites
}

// Visible reports whether any pixel of a sprite, up to 16 rows tall, can
// land on screen.
func (s SpriteInfo) Visible() bool {
	return s.Y > -16 && s.Y < 144 && s.X > -8 && s.X < 160
}

func (s SpriteInfo) String() string {
	flags := []byte("----")
	for i, b := range []uint8{AttrBackgroundPriority, AttrFlipY, AttrFlipX, AttrPaletteNumber} {
		if s.Attributes&(1<<b) != 0 {
			flags[i] = "PYX1"[i]
		}
	}
	return fmt.Sprintf("Sprite %2d: Y=%4d X=%4d Tile=0x%02X Flags=%s", s.Index, s.Y, s.X, s.TileIndex, flags)
}
