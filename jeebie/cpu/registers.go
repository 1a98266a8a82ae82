package cpu

import (
	"fmt"

	"github.com/valerio/jeebie-core/jeebie/bit"
)

// Reg identifies one of the 8 bit registers.
type Reg uint8

const (
	RegA Reg = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL

	regCount
)

var regNames = [regCount]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (r Reg) String() string {
	if r >= regCount {
		return fmt.Sprintf("Reg(%d)", uint8(r))
	}
	return regNames[r]
}

// Pair identifies a 16 bit register pair.
type Pair uint8

const (
	PairAF Pair = iota
	PairBC
	PairDE
	PairHL
)

var pairRegs = [...][2]Reg{
	PairAF: {RegA, RegF},
	PairBC: {RegB, RegC},
	PairDE: {RegD, RegE},
	PairHL: {RegH, RegL},
}

// High returns the register holding the most significant byte of the pair.
func (p Pair) High() Reg { return pairRegs[p][0] }

// Low returns the register holding the least significant byte of the pair.
func (p Pair) Low() Reg { return pairRegs[p][1] }

func (p Pair) String() string {
	return p.High().String() + p.Low().String()
}

// RegisterFile is a fixed set of 8 bit registers indexed by an enumerated
// identity. Accessing an identity outside the file panics.
type RegisterFile[R ~uint8] struct {
	values []uint8
}

// NewRegisterFile returns a zeroed file holding count registers,
// identities 0 to count-1.
func NewRegisterFile[R ~uint8](count int) *RegisterFile[R] {
	if count <= 0 || count > 256 {
		panic(fmt.Sprintf("invalid register count: %d", count))
	}
	return &RegisterFile[R]{values: make([]uint8, count)}
}

func (f *RegisterFile[R]) check(r R) {
	if int(r) >= len(f.values) {
		panic(fmt.Sprintf("register %d out of range [0, %d)", uint8(r), len(f.values)))
	}
}

// Get returns the value of the register.
func (f *RegisterFile[R]) Get(r R) uint8 {
	f.check(r)
	return f.values[r]
}

// Set stores value in the register.
func (f *RegisterFile[R]) Set(r R, value uint8) {
	f.check(r)
	f.values[r] = value
}

// TestBit reports whether the given bit of the register is set.
func (f *RegisterFile[R]) TestBit(r R, b bit.Bit) bool {
	return f.Get(r)&bit.Mask(b) != 0
}

// SetBit sets or clears the given bit of the register.
func (f *RegisterFile[R]) SetBit(r R, b bit.Bit, value bool) {
	mask := bit.Mask(b)
	v := f.Get(r) &^ mask
	if value {
		v |= mask
	}
	f.Set(r, v)
}

// Reset zeroes every register.
func (f *RegisterFile[R]) Reset() {
	clear(f.values)
}
