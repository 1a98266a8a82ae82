package render

import "github.com/valerio/jeebie-core/jeebie/video"

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	fullBlock = '█'
)

// HalfBlockChar returns the character drawing two vertically stacked
// pixels in a single cell, shades going from 0 (white) to 3 (black).
// White is left to the cell background.
func HalfBlockChar(topShade, bottomShade uint8) rune {
	switch {
	case topShade == 0 && bottomShade == 0:
		return ' '
	case topShade == bottomShade:
		return fullBlock
	case topShade == 0:
		return lowerHalf
	default:
		return upperHalf
	}
}

// HalfBlocks renders the image as text, one row of characters for two rows
// of pixels. Only the shape survives, grey levels are lost.
func HalfBlocks(img *video.Image) []string {
	lines := make([]string, video.ScreenHeight/2)
	row := make([]rune, video.ScreenWidth)

	for y := range lines {
		for x := range row {
			row[x] = HalfBlockChar(img.Shade(x, 2*y), img.Shade(x, 2*y+1))
		}
		lines[y] = string(row)
	}
	return lines
}
