package video

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/valerio/jeebie-core/jeebie/bit"
)

// IdentityPalette maps every color index to itself.
const IdentityPalette uint8 = 0b11_10_01_00

// ImageLine is one row of 2 bit color indices, stored as three bit planes
// of the same size: msb and lsb hold the index of each pixel, opacity marks
// the pixels that are visible when the line is composited over another one.
//
// Lines are immutable, every operation returns a new line.
type ImageLine struct {
	msb, lsb, opacity bit.Vector
}

// NewImageLine builds a line from its planes, which must have the same size.
func NewImageLine(msb, lsb, opacity bit.Vector) ImageLine {
	if msb.Size() != lsb.Size() || msb.Size() != opacity.Size() {
		panic(fmt.Sprintf("image line planes differ in size: %d, %d, %d", msb.Size(), lsb.Size(), opacity.Size()))
	}
	return ImageLine{msb: msb, lsb: lsb, opacity: opacity}
}

// BlankLine returns a fully transparent line of color 0.
func BlankLine(size int) ImageLine {
	zero := bit.NewVector(size, false)
	return ImageLine{msb: zero, lsb: zero, opacity: zero}
}

func (l ImageLine) Size() int { return l.msb.Size() }

func (l ImageLine) MSB() bit.Vector     { return l.msb }
func (l ImageLine) LSB() bit.Vector     { return l.lsb }
func (l ImageLine) Opacity() bit.Vector { return l.opacity }

// PixelColor returns the color index of pixel i, 0 when it is transparent.
func (l ImageLine) PixelColor(i int) uint8 {
	if !l.opacity.TestBit(i) {
		return 0
	}
	var color uint8
	if l.msb.TestBit(i) {
		color |= 2
	}
	if l.lsb.TestBit(i) {
		color |= 1
	}
	return color
}

// Opaque returns the line with every pixel visible.
func (l ImageLine) Opaque() ImageLine {
	return ImageLine{msb: l.msb, lsb: l.lsb, opacity: bit.NewVector(l.Size(), true)}
}

// MapColors translates every color index through a palette register: bits
// 2i+1 and 2i of the palette give the new index of color i. Opacity is kept.
func (l ImageLine) MapColors(palette uint8) ImageLine {
	if palette == IdentityPalette {
		return l
	}

	msb := bit.NewVector(l.Size(), false)
	lsb := msb
	for color := uint8(0); color < 4; color++ {
		mask := l.colorMask(color)
		target := (palette >> (2 * color)) & 0x03
		if target&2 != 0 {
			msb = msb.Or(mask)
		}
		if target&1 != 0 {
			lsb = lsb.Or(mask)
		}
	}
	return ImageLine{msb: msb, lsb: lsb, opacity: l.opacity}
}

// colorMask selects the pixels holding the given color index, opacity aside.
func (l ImageLine) colorMask(color uint8) bit.Vector {
	msb, lsb := l.msb, l.lsb
	if color&2 == 0 {
		msb = msb.Not()
	}
	if color&1 == 0 {
		lsb = lsb.Not()
	}
	return msb.And(lsb)
}

// Below composites top over the receiver, using the opacity of top.
func (l ImageLine) Below(top ImageLine) ImageLine {
	return l.BelowWithOpacity(top, top.opacity)
}

// BelowWithOpacity composites top over the receiver: where opacity is set
// the pixel comes from top, elsewhere from the receiver. A pixel of the
// result is visible if it was visible in the receiver or covered by top.
func (l ImageLine) BelowWithOpacity(top ImageLine, opacity bit.Vector) ImageLine {
	keep := opacity.Not()
	return ImageLine{
		msb:     top.msb.And(opacity).Or(l.msb.And(keep)),
		lsb:     top.lsb.And(opacity).Or(l.lsb.And(keep)),
		opacity: l.opacity.Or(opacity),
	}
}

// Join keeps the pixels of the receiver below fromIndex and takes the rest
// from other.
func (l ImageLine) Join(other ImageLine, fromIndex int) ImageLine {
	fromIndex = max(0, min(fromIndex, l.Size()))
	upper := bit.NewVector(l.Size(), true).Shift(fromIndex)
	lower := upper.Not()
	join := func(a, b bit.Vector) bit.Vector {
		return a.And(lower).Or(b.And(upper))
	}
	return ImageLine{
		msb:     join(l.msb, other.msb),
		lsb:     join(l.lsb, other.lsb),
		opacity: join(l.opacity, other.opacity),
	}
}

// Shift moves the pixels delta positions to the right, towards higher
// indices. Pixels shifted in are transparent.
func (l ImageLine) Shift(delta int) ImageLine {
	return ImageLine{msb: l.msb.Shift(delta), lsb: l.lsb.Shift(delta), opacity: l.opacity.Shift(delta)}
}

// ExtractWrapped returns size pixels starting at from, seeing the line as
// repeated on both sides.
func (l ImageLine) ExtractWrapped(from, size int) ImageLine {
	return ImageLine{
		msb:     l.msb.ExtractWrapped(from, size),
		lsb:     l.lsb.ExtractWrapped(from, size),
		opacity: l.opacity.ExtractWrapped(from, size),
	}
}

// ExtractZeroExtended returns size pixels starting at from, pixels outside
// of the line being transparent.
func (l ImageLine) ExtractZeroExtended(from, size int) ImageLine {
	return ImageLine{
		msb:     l.msb.ExtractZeroExtended(from, size),
		lsb:     l.lsb.ExtractZeroExtended(from, size),
		opacity: l.opacity.ExtractZeroExtended(from, size),
	}
}

func (l ImageLine) Equal(other ImageLine) bool {
	return l.msb.Equal(other.msb) && l.lsb.Equal(other.lsb) && l.opacity.Equal(other.opacity)
}

// Hash is consistent with Equal.
func (l ImageLine) Hash() uint64 {
	return xxhash.Sum64(l.appendBytes(nil))
}

func (l ImageLine) appendBytes(buf []byte) []byte {
	for _, plane := range []bit.Vector{l.msb, l.lsb, l.opacity} {
		for _, w := range plane.Words() {
			buf = binary.LittleEndian.AppendUint32(buf, w)
		}
	}
	return buf
}

// String renders the visible color of each pixel, leftmost first, with '.'
// for transparent pixels.
func (l ImageLine) String() string {
	var sb strings.Builder
	sb.Grow(l.Size())
	for i := 0; i < l.Size(); i++ {
		if !l.opacity.TestBit(i) {
			sb.WriteByte('.')
			continue
		}
		sb.WriteByte('0' + l.PixelColor(i))
	}
	return sb.String()
}

// ImageLineBuilder fills a line 8 pixels at a time.
type ImageLineBuilder struct {
	msb, lsb, opacity *bit.VectorBuilder
}

func NewImageLineBuilder(size int) *ImageLineBuilder {
	return &ImageLineBuilder{
		msb:     bit.NewVectorBuilder(size),
		lsb:     bit.NewVectorBuilder(size),
		opacity: bit.NewVectorBuilder(size),
	}
}

// SetBytes stores pixels [8*index, 8*index+8), bit 0 of each byte being the
// leftmost pixel. Pixels of color 0 are transparent.
func (b *ImageLineBuilder) SetBytes(index int, msb, lsb uint8) *ImageLineBuilder {
	b.msb.SetByte(index, msb)
	b.lsb.SetByte(index, lsb)
	b.opacity.SetByte(index, msb|lsb)
	return b
}

// Build returns the line. The builder cannot be used afterwards.
func (b *ImageLineBuilder) Build() ImageLine {
	return ImageLine{msb: b.msb.Build(), lsb: b.lsb.Build(), opacity: b.opacity.Build()}
}
