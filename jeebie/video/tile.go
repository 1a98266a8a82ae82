package video

import "github.com/valerio/jeebie-core/jeebie/bit"

const (
	tileBytes   = 16
	tileMapSize = 32
)

// TileRow represents one row of a tile pattern (8 pixels).
//
// Game Boy tiles are 8x8 pixels, with 2 bits per pixel allowing 4 colors.
// Each tile row uses 2 bytes in a bit-plane format:
//
//	Byte 1 (Low):  Bit plane 0 - provides bit 0 of each pixel's color
//	Byte 2 (High): Bit plane 1 - provides bit 1 of each pixel's color
//
// Bit 7 represents the leftmost pixel, bit 0 the rightmost:
//
//	Bit:     7 6 5 4 3 2 1 0
//	Pixel:   0 1 2 3 4 5 6 7
//
// Example: Bytes $3C and $7E represent a row:
//
//	Low  (0x3C): 0 0 1 1 1 1 0 0
//	High (0x7E): 0 1 1 1 1 1 1 0
//	            -----------------
//	Colors:      0 2 3 3 3 3 2 0
//
// Image lines index pixels from bit 0, so a row is mirrored on its way into
// an ImageLineBuilder. A sprite flipped horizontally is the one case where
// the bytes are used as stored.
//
// Reference: https://gbdev.io/pandocs/Tile_Data.html
type TileRow struct {
	Low  byte
	High byte
}

// GetPixel extracts a pixel color (0-3) from the tile row.
// pixelX should be 0-7, where 0 is the leftmost pixel.
func (t TileRow) GetPixel(pixelX int) int {
	// bit 7 is leftmost pixel, bit 0 is rightmost
	bitIndex := uint8(7 - pixelX)

	pixel := 0
	if bit.IsSet(bitIndex, t.Low) {
		pixel |= 1
	}
	if bit.IsSet(bitIndex, t.High) {
		pixel |= 2
	}

	return pixel
}

// planes returns the row as msb and lsb bytes with the leftmost pixel in bit 0.
func (t TileRow) planes(flipX bool) (msb, lsb uint8) {
	if flipX {
		return t.High, t.Low
	}
	return bit.Reverse8(t.High), bit.Reverse8(t.Low)
}

// fetchRow reads row y of the tile starting at offset in vram.
func fetchRow(vram []uint8, offset, y int) TileRow {
	return TileRow{Low: vram[offset+2*y], High: vram[offset+2*y+1]}
}

// Tile represents a complete 8x8 tile pattern.
// Each tile consists of 8 rows, totaling 16 bytes in VRAM.
type Tile struct {
	Index int // optional tile index (0-383 for VRAM tiles)
	Rows  [8]TileRow
}

// GetPixel returns the color index (0-3) for a pixel at (x, y).
// x and y should be 0-7, where (0,0) is the top-left pixel.
func (t *Tile) GetPixel(x, y int) int {
	if y < 0 || y >= 8 || x < 0 || x >= 8 {
		return 0
	}
	return t.Rows[y].GetPixel(x)
}

// FetchTile reads the tile with the given index out of VRAM, where index
// 0 is the tile at 0x8000.
func FetchTile(vram []uint8, index int) Tile {
	tile := Tile{Index: index}
	for row := range tile.Rows {
		tile.Rows[row] = fetchRow(vram, index*tileBytes, row)
	}
	return tile
}
