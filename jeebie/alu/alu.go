// Package alu implements the arithmetic and logic unit of the DMG CPU as pure
// functions. Every operation returns a Result carrying the numeric value and
// the Z/N/H/C flags it produced; the CPU decides which of those flags end up
// in the F register.
package alu

import "fmt"

// Flag is one of the 4 condition flags, identified by its bit position in
// the F register.
type Flag uint8

const (
	FlagC Flag = 4 // carry
	FlagH Flag = 5 // half carry
	FlagN Flag = 6 // subtraction
	FlagZ Flag = 7 // zero
)

// Index returns the bit position of the flag in the F register.
func (f Flag) Index() uint8 {
	return uint8(f)
}

// Mask returns the F register mask of the flag.
func (f Flag) Mask() uint8 {
	return 1 << f
}

func (f Flag) String() string {
	switch f {
	case FlagZ:
		return "Z"
	case FlagN:
		return "N"
	case FlagH:
		return "H"
	case FlagC:
		return "C"
	}
	return fmt.Sprintf("Flag(%d)", uint8(f))
}

// FlagsMask covers the bits of F that hold flags, the low nibble is always zero.
const FlagsMask uint8 = 0xF0

// RotDir is the direction of a rotation.
type RotDir int

const (
	Left RotDir = iota
	Right
)

// Result is the outcome of an ALU operation: an 8 or 16 bit value and the
// flags byte, laid out exactly like the F register (Z=bit7, N=bit6, H=bit5,
// C=bit4, low nibble zero).
type Result struct {
	value uint16
	flags uint8
}

// Value returns the numeric result.
func (r Result) Value() uint16 { return r.value }

// Value8 returns the numeric result of an 8 bit operation.
func (r Result) Value8() uint8 { return uint8(r.value) }

// Flags returns the flags in F register layout.
func (r Result) Flags() uint8 { return r.flags }

// Flag reports whether the given flag is set.
func (r Result) Flag(f Flag) bool { return r.flags&f.Mask() != 0 }

func (r Result) Z() bool { return r.Flag(FlagZ) }
func (r Result) N() bool { return r.Flag(FlagN) }
func (r Result) H() bool { return r.Flag(FlagH) }
func (r Result) C() bool { return r.Flag(FlagC) }

func (r Result) String() string {
	return fmt.Sprintf("{value: 0x%X, flags: %s}", r.value, FlagString(r.flags))
}

// MaskZNHC packs the four flags into F register layout.
func MaskZNHC(z, n, h, c bool) uint8 {
	var mask uint8
	if z {
		mask |= FlagZ.Mask()
	}
	if n {
		mask |= FlagN.Mask()
	}
	if h {
		mask |= FlagH.Mask()
	}
	if c {
		mask |= FlagC.Mask()
	}
	return mask
}

// FlagString renders a flags byte as "ZNHC", with '-' for cleared flags.
func FlagString(flags uint8) string {
	out := []byte("----")
	for i, f := range []Flag{FlagZ, FlagN, FlagH, FlagC} {
		if flags&f.Mask() != 0 {
			out[i] = f.String()[0]
		}
	}
	return string(out)
}

func result(value uint16, z, n, h, c bool) Result {
	return Result{value: value, flags: MaskZNHC(z, n, h, c)}
}

func b2u(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// Add returns l + r + carry, with half carry out of bit 3 and carry out of bit 7.
func Add(l, r uint8, carry bool) Result {
	c := b2u(carry)
	sum := uint16(l) + uint16(r) + c
	h := uint16(l&0xF)+uint16(r&0xF)+c > 0xF
	v := sum & 0xFF
	return result(v, v == 0, false, h, sum > 0xFF)
}

// Sub returns l - r - borrow. H and C report a borrow from bit 4 and bit 8.
func Sub(l, r uint8, borrow bool) Result {
	b := b2u(borrow)
	v := (uint16(l) - uint16(r) - b) & 0xFF
	h := uint16(l&0xF) < uint16(r&0xF)+b
	c := uint16(l) < uint16(r)+b
	return result(v, v == 0, true, h, c)
}

// Add16L adds two 16 bit values, taking H and C from the addition of the low
// bytes (bits 3 and 7). This is how the CPU flags ADD SP,e8 and LD HL,SP+e8.
func Add16L(l, r uint16) Result {
	v := l + r
	h := (l&0xF)+(r&0xF) > 0xF
	c := (l&0xFF)+(r&0xFF) > 0xFF
	return result(v, false, false, h, c)
}

// Add16H adds two 16 bit values, taking H and C from bits 11 and 15.
// This is how the CPU flags ADD HL,r16.
func Add16H(l, r uint16) Result {
	v := l + r
	h := (l&0xFFF)+(r&0xFFF) > 0xFFF
	c := uint32(l)+uint32(r) > 0xFFFF
	return result(v, false, false, h, c)
}

// And returns l & r, H is always set.
func And(l, r uint8) Result {
	v := uint16(l & r)
	return result(v, v == 0, false, true, false)
}

// Or returns l | r.
func Or(l, r uint8) Result {
	v := uint16(l | r)
	return result(v, v == 0, false, false, false)
}

// Xor returns l ^ r.
func Xor(l, r uint8) Result {
	v := uint16(l ^ r)
	return result(v, v == 0, false, false, false)
}

// Rotate rotates the byte by one position, C receives the bit that wrapped around.
func Rotate(dir RotDir, v uint8) Result {
	var out uint8
	var c bool
	if dir == Left {
		c = v&0x80 != 0
		out = v<<1 | v>>7
	} else {
		c = v&0x01 != 0
		out = v>>1 | v<<7
	}
	return result(uint16(out), out == 0, false, false, c)
}

// RotateThroughCarry rotates the 9 bit value formed by the carry and the byte.
func RotateThroughCarry(dir RotDir, v uint8, carry bool) Result {
	in := uint8(b2u(carry))
	var out uint8
	var c bool
	if dir == Left {
		c = v&0x80 != 0
		out = v<<1 | in
	} else {
		c = v&0x01 != 0
		out = v>>1 | in<<7
	}
	return result(uint16(out), out == 0, false, false, c)
}

// ShiftLeft shifts the byte left, bit 7 goes to C and bit 0 becomes 0.
func ShiftLeft(v uint8) Result {
	out := v << 1
	return result(uint16(out), out == 0, false, false, v&0x80 != 0)
}

// ShiftRightArithmetic shifts the byte right keeping bit 7, bit 0 goes to C.
func ShiftRightArithmetic(v uint8) Result {
	out := v>>1 | v&0x80
	return result(uint16(out), out == 0, false, false, v&0x01 != 0)
}

// ShiftRightLogical shifts the byte right, bit 7 becomes 0 and bit 0 goes to C.
func ShiftRightLogical(v uint8) Result {
	out := v >> 1
	return result(uint16(out), out == 0, false, false, v&0x01 != 0)
}

// Swap exchanges the two nibbles of the byte.
func Swap(v uint8) Result {
	out := v<<4 | v>>4
	return result(uint16(out), out == 0, false, false, false)
}

// TestBit sets Z when the bit at index is 0, and always sets H. C is never
// set here: the CPU keeps its own carry for BIT.
func TestBit(v uint8, index uint8) Result {
	if index > 7 {
		panic(fmt.Sprintf("bit index out of range: %d", index))
	}
	return result(0, v&(1<<index) == 0, false, true, false)
}

// BCDAdjust corrects the accumulator after a BCD addition (n false) or
// subtraction (n true), given the N, H and C flags left by it.
func BCDAdjust(v uint8, n, h, c bool) Result {
	fixL := h || (!n && v&0xF > 9)
	fixH := c || (!n && v > 0x99)

	var fix uint8
	if fixL {
		fix |= 0x06
	}
	if fixH {
		fix |= 0x60
	}

	var out uint8
	if n {
		out = v - fix
	} else {
		out = v + fix
	}
	return result(uint16(out), out == 0, n, false, fixH)
}
