package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileRow_GetPixel(t *testing.T) {
	row := TileRow{Low: 0x3C, High: 0x7E}

	want := []int{0, 2, 3, 3, 3, 3, 2, 0}
	for x, color := range want {
		assert.Equal(t, color, row.GetPixel(x), "pixel %d", x)
	}
}

func TestTileRow_PlanesMatchPixels(t *testing.T) {
	row := TileRow{Low: 0xA5, High: 0x3C}

	msb, lsb := row.planes(false)
	line := NewImageLineBuilder(32).SetBytes(0, msb, lsb).Build().Opaque()
	for x := 0; x < 8; x++ {
		assert.Equal(t, uint8(row.GetPixel(x)), line.PixelColor(x), "pixel %d", x)
	}

	msb, lsb = row.planes(true)
	flipped := NewImageLineBuilder(32).SetBytes(0, msb, lsb).Build().Opaque()
	for x := 0; x < 8; x++ {
		assert.Equal(t, uint8(row.GetPixel(7-x)), flipped.PixelColor(x), "flipped pixel %d", x)
	}
}

func TestFetchTile(t *testing.T) {
	vram := make([]uint8, 0x2000)
	vram[2*tileBytes+6] = 0xFF
	vram[2*tileBytes+7] = 0x00

	tile := FetchTile(vram, 2)
	assert.Equal(t, 2, tile.Index)
	assert.Equal(t, 1, tile.GetPixel(0, 3))
	assert.Equal(t, 0, tile.GetPixel(0, 2))
	assert.Equal(t, 0, tile.GetPixel(8, 3), "out of the tile")
}
