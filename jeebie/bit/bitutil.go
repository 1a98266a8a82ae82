package bit

import "fmt"

// Bit is anything that names a single bit of a byte by its position (0-7),
// e.g. a CPU flag or an interrupt line.
type Bit interface {
	Index() uint8
}

// Position is a raw bit position, for callers that have no named bit at hand.
type Position uint8

// Index returns the position itself.
func (p Position) Index() uint8 {
	return uint8(p)
}

// Mask returns the byte mask that has only the given bit set.
// It panics if the bit does not fit in a byte.
func Mask(b Bit) uint8 {
	index := b.Index()
	if index > 7 {
		panic(fmt.Sprintf("bit index out of range: %d", index))
	}
	return 1 << index
}

// Combine combines two 8 bit values into a single 16 bit value.
// The high byte will be the most significant one.
func Combine(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// IsSet will check if the bit at the specified index is Set to 1 or not.
func IsSet(index, byte uint8) bool {
	return ((byte >> index) & 1) == 1
}

func IsSet16(index, value uint16) bool {
	return ((value >> index) & 1) == 1
}

// Clear will return the passed byte with the bit at the specified index Set to 0.
func Clear(index, byte uint8) uint8 {
	return byte & ^(1 << index)
}

// Set will return the passed byte with the bit at the specified index Set to 1.
func Set(index, byte uint8) uint8 {
	return byte | (1 << index)
}

// SetTo returns the passed byte with the bit at index set to the given value.
func SetTo(index, byte uint8, value bool) uint8 {
	if value {
		return Set(index, byte)
	}
	return Clear(index, byte)
}

// GetBitValue returns a byte set to the value of the bit at the specified index.
func GetBitValue(index, byte uint8) uint8 {
	if IsSet(index, byte) {
		return 1
	}

	return 0
}

// Low returns the low (LSB) part of a 16 bit number.
func Low(value uint16) uint8 {
	return uint8(value)
}

// High returns the high (MSB) part of a 16 bit number.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// ExtractBits extracts bits from highBit to lowBit (inclusive)
// Example: ExtractBits(0b11010110, 6, 4) -> 0b101 (extracts bits 6, 5, 4)
func ExtractBits(value uint8, highBit, lowBit uint8) uint8 {
	shift := lowBit
	width := highBit - lowBit + 1
	mask := uint8((1 << width) - 1)
	return (value >> shift) & mask
}

// Complement8 returns the one's complement of the byte.
func Complement8(value uint8) uint8 {
	return ^value
}

var reverseTable = func() (table [256]uint8) {
	for i := range table {
		v := uint8(i)
		var r uint8
		for j := 0; j < 8; j++ {
			r = r<<1 | v&1
			v >>= 1
		}
		table[i] = r
	}
	return table
}()

// Reverse8 mirrors the bits of a byte, bit 0 becomes bit 7 and so on.
// Tile data stores the leftmost pixel in bit 7, while image lines index
// pixels from bit 0, so every tile byte goes through this.
func Reverse8(value uint8) uint8 {
	return reverseTable[value]
}

// SignExtend8 interprets the byte as a two's complement value and widens it to 16 bits.
func SignExtend8(value uint8) uint16 {
	return uint16(int16(int8(value)))
}
