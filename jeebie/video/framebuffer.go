package video

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash"
)

const (
	ScreenWidth  = 160
	ScreenHeight = 144
)

type GBColor uint32

const (
	WhiteColor     GBColor = 0xFFFFFFFF
	LightGreyColor GBColor = 0xFF989898
	DarkGreyColor  GBColor = 0xFF4C4C4C
	BlackColor     GBColor = 0xFF000000
)

var shades = [4]GBColor{WhiteColor, LightGreyColor, DarkGreyColor, BlackColor}

// ShadeColor returns the ARGB color of a shade, 0 being white.
func ShadeColor(shade uint8) GBColor {
	return shades[shade&0x03]
}

// Gray returns the intensity of the color, 0xFF being white.
func (c GBColor) Gray() uint8 {
	return uint8(c)
}

// Image is a complete LCD frame as one image line per row, holding shades
// (palette mapped color indices).
type Image struct {
	lines [ScreenHeight]ImageLine
}

// NewImage returns a white image.
func NewImage() *Image {
	img := &Image{}
	blank := BlankLine(ScreenWidth)
	for y := range img.lines {
		img.lines[y] = blank
	}
	return img
}

func (img *Image) Line(y int) ImageLine {
	return img.lines[y]
}

// Shade returns the shade of a pixel, 0 (white) to 3 (black).
func (img *Image) Shade(x, y int) uint8 {
	if x < 0 || x >= ScreenWidth || y < 0 || y >= ScreenHeight {
		panic(fmt.Sprintf("pixel (%d, %d) out of the screen", x, y))
	}
	return img.lines[y].PixelColor(x)
}

// Hash digests every line of the image.
func (img *Image) Hash() uint64 {
	d := xxhash.New()
	var buf []byte
	for _, line := range img.lines {
		buf = line.appendBytes(buf[:0])
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}

// Render writes the image into the frame buffer.
func (img *Image) Render(fb *FrameBuffer) {
	for y := 0; y < ScreenHeight; y++ {
		for x := 0; x < ScreenWidth; x++ {
			fb.SetPixel(uint(x), uint(y), ShadeColor(img.Shade(x, y)))
		}
	}
}

type FrameBuffer struct {
	width  uint
	height uint
	buffer []uint32
}

// NewFrameBuffer creates a frame buffer with the specified size.
func NewFrameBuffer(width, height uint) *FrameBuffer {
	colorSlice := make([]uint32, width*height)

	return &FrameBuffer{
		width:  width,
		height: height,
		buffer: colorSlice,
	}
}

func (fb FrameBuffer) Width() uint  { return fb.width }
func (fb FrameBuffer) Height() uint { return fb.height }

func (fb FrameBuffer) GetPixel(x, y uint) uint32 {
	return fb.buffer[y*fb.width+x]
}

func (fb *FrameBuffer) SetPixel(x, y uint, color GBColor) {
	fb.buffer[y*fb.width+x] = uint32(color)
}

func (fb *FrameBuffer) ToSlice() []uint32 {
	return fb.buffer
}

// Digest hashes the pixels of the frame buffer.
func (fb *FrameBuffer) Digest() uint64 {
	buf := make([]byte, 0, len(fb.buffer)*4)
	for _, px := range fb.buffer {
		buf = binary.LittleEndian.AppendUint32(buf, px)
	}
	return xxhash.Sum64(buf)
}
