package video

import (
	"slices"

	"github.com/valerio/jeebie-core/jeebie/bit"
)

const (
	spriteCount       = 40
	spriteBytes       = 4
	maxSpritesPerLine = 10
)

// Sprite represents a single sprite/object in OAM memory.
// The Game Boy has 40 sprites stored in OAM (Object Attribute Memory) from 0xFE00-0xFE9F.
type Sprite struct {
	Y         int   // Y position on screen (without the +16 offset)
	X         int   // X position on screen (without the +8 offset)
	TileIndex uint8 // Tile/pattern number (0-255)
	Flags     uint8 // Attribute flags byte
	OAMIndex  int   // OAM index (0-39)
	Height    int   // Sprite height (8 or 16 pixels, from LCDC bit 2)

	// parsed attribute flags for convenience
	PaletteOBP1 bool // false = OBP0, true = OBP1
	FlipX       bool // horizontally flip the sprite
	FlipY       bool // vertically flip the sprite
	BehindBG    bool // true = sprite is behind background colors 1-3
}

func (s *Sprite) parseFlags() {
	s.PaletteOBP1 = bit.IsSet(4, s.Flags)
	s.FlipX = bit.IsSet(5, s.Flags)
	s.FlipY = bit.IsSet(6, s.Flags)
	s.BehindBG = bit.IsSet(7, s.Flags)
}

// readSprite decodes entry index of the OAM table.
func readSprite(oam []uint8, index, height int) Sprite {
	base := index * spriteBytes
	sprite := Sprite{
		Y:         int(oam[base]) - 16,
		X:         int(oam[base+1]) - 8,
		TileIndex: oam[base+2],
		Flags:     oam[base+3],
		OAMIndex:  index,
		Height:    height,
	}
	sprite.parseFlags()
	return sprite
}

// spritesForLine returns the sprites that overlap the given line, at most
// 10 (the hardware limit) picked in OAM order, sorted from the lowest
// drawing priority to the highest.
//
// A sprite with a lower X has priority, equal X is broken by the lower OAM
// index. Drawing in this order lets the highest priority sprite land on top.
func spritesForLine(oam []uint8, line, height int, buf []Sprite) []Sprite {
	sprites := buf[:0]
	for i := 0; i < spriteCount && len(sprites) < maxSpritesPerLine; i++ {
		y := int(oam[i*spriteBytes]) - 16
		if y <= line && line < y+height {
			sprites = append(sprites, readSprite(oam, i, height))
		}
	}

	slices.SortStableFunc(sprites, func(a, b Sprite) int {
		if a.X != b.X {
			return b.X - a.X
		}
		return b.OAMIndex - a.OAMIndex
	})
	return sprites
}

// row returns the tile row of the sprite visible on the given line, with
// the flips applied. In 8x16 mode the tile index ignores bit 0.
func (s *Sprite) row(vram []uint8, line int) TileRow {
	y := line - s.Y
	if s.FlipY {
		y = s.Height - 1 - y
	}
	tile := int(s.TileIndex)
	if s.Height == 16 {
		tile &^= 1
	}
	tile += y / 8
	return fetchRow(vram, tile*tileBytes, y%8)
}

// line renders the sprite as a screen wide image line, color 0 being
// transparent.
func (s *Sprite) line(vram []uint8, line int) ImageLine {
	msb, lsb := s.row(vram, line).planes(s.FlipX)
	pattern := NewImageLineBuilder(bit.WordSize).SetBytes(0, msb, lsb).Build()
	return pattern.ExtractZeroExtended(-s.X, ScreenWidth)
}
