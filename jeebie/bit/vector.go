package bit

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash"
)

// WordSize is the number of bits stored in each word of a Vector.
const WordSize = 32

// Vector is an immutable sequence of bits whose length is a positive multiple
// of 32. Bit 0 is the least significant bit of the first word, so for image
// lines index 0 is the leftmost pixel.
//
// Shifting and extraction treat the vector as infinite: ExtractZeroExtended
// sees zeros outside of it, ExtractWrapped sees copies of it repeated on both
// sides, which is what background scrolling needs.
type Vector struct {
	words []uint32
}

type extension int

const (
	zeroExtended extension = iota
	wrapped
)

func checkSize(size int) {
	if size <= 0 || size%WordSize != 0 {
		panic(fmt.Sprintf("bit vector size must be a positive multiple of %d, got %d", WordSize, size))
	}
}

// NewVector returns a vector of the given size with every bit set to initial.
func NewVector(size int, initial bool) Vector {
	checkSize(size)
	words := make([]uint32, size/WordSize)
	if initial {
		for i := range words {
			words[i] = 0xFFFFFFFF
		}
	}
	return Vector{words: words}
}

// FromWords builds a vector from 32 bit words, word 0 holding bits 0-31.
func FromWords(words ...uint32) Vector {
	if len(words) == 0 {
		panic("bit vector needs at least one word")
	}
	return Vector{words: append([]uint32(nil), words...)}
}

// Size returns the number of bits in the vector.
func (v Vector) Size() int {
	return len(v.words) * WordSize
}

// Words returns a copy of the underlying words.
func (v Vector) Words() []uint32 {
	return append([]uint32(nil), v.words...)
}

// TestBit reports whether the bit at index is set.
func (v Vector) TestBit(index int) bool {
	if index < 0 || index >= v.Size() {
		panic(fmt.Sprintf("bit index %d out of range [0, %d)", index, v.Size()))
	}
	return v.words[index/WordSize]&(1<<(index%WordSize)) != 0
}

// Not returns the complement of the vector.
func (v Vector) Not() Vector {
	words := make([]uint32, len(v.words))
	for i, w := range v.words {
		words[i] = ^w
	}
	return Vector{words: words}
}

// And returns the bitwise conjunction of both vectors, which must have the same size.
func (v Vector) And(other Vector) Vector {
	return v.combine(other, func(a, b uint32) uint32 { return a & b })
}

// Or returns the bitwise disjunction of both vectors, which must have the same size.
func (v Vector) Or(other Vector) Vector {
	return v.combine(other, func(a, b uint32) uint32 { return a | b })
}

// Xor returns the bitwise exclusive disjunction of both vectors, which must have the same size.
func (v Vector) Xor(other Vector) Vector {
	return v.combine(other, func(a, b uint32) uint32 { return a ^ b })
}

func (v Vector) combine(other Vector, op func(a, b uint32) uint32) Vector {
	if len(v.words) != len(other.words) {
		panic(fmt.Sprintf("bit vector size mismatch: %d != %d", v.Size(), other.Size()))
	}
	words := make([]uint32, len(v.words))
	for i := range words {
		words[i] = op(v.words[i], other.words[i])
	}
	return Vector{words: words}
}

// Shift moves every bit delta positions towards higher indices (towards
// lower ones when delta is negative). Vacated positions are zero.
func (v Vector) Shift(delta int) Vector {
	return v.ExtractZeroExtended(-delta, v.Size())
}

// ExtractZeroExtended returns size bits starting at from, where bits outside
// of the vector read as zero. size must be a positive multiple of 32.
func (v Vector) ExtractZeroExtended(from, size int) Vector {
	return v.extract(from, size, zeroExtended)
}

// ExtractWrapped returns size bits starting at from, where indices are taken
// modulo the size of the vector. size must be a positive multiple of 32.
func (v Vector) ExtractWrapped(from, size int) Vector {
	return v.extract(from, size, wrapped)
}

func (v Vector) extract(from, size int, ext extension) Vector {
	checkSize(size)
	words := make([]uint32, size/WordSize)
	start := floorDiv(from, WordSize)
	offset := uint(floorMod(from, WordSize))
	for i := range words {
		low := v.extendedWord(start+i, ext)
		if offset == 0 {
			words[i] = low
			continue
		}
		high := v.extendedWord(start+i+1, ext)
		words[i] = low>>offset | high<<(WordSize-offset)
	}
	return Vector{words: words}
}

// extendedWord returns the word at index of the infinite extension of the vector.
func (v Vector) extendedWord(index int, ext extension) uint32 {
	if ext == wrapped {
		return v.words[floorMod(index, len(v.words))]
	}
	if index < 0 || index >= len(v.words) {
		return 0
	}
	return v.words[index]
}

// Equal reports whether both vectors have the same size and bits.
func (v Vector) Equal(other Vector) bool {
	if len(v.words) != len(other.words) {
		return false
	}
	for i := range v.words {
		if v.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Hash returns a structural hash of the vector, consistent with Equal.
func (v Vector) Hash() uint64 {
	return xxhash.Sum64(v.appendBytes(nil))
}

func (v Vector) appendBytes(buf []byte) []byte {
	for _, w := range v.words {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	return buf
}

// String renders the vector with the highest index first.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.Size())
	for i := v.Size() - 1; i >= 0; i-- {
		if v.TestBit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func floorDiv(n, d int) int {
	q := n / d
	if (n%d != 0) && ((n < 0) != (d < 0)) {
		q--
	}
	return q
}

func floorMod(n, d int) int {
	m := n % d
	if m != 0 && ((m < 0) != (d < 0)) {
		m += d
	}
	return m
}

// VectorBuilder fills a vector one byte at a time. A builder produces a
// single vector: using it after Build panics.
type VectorBuilder struct {
	words []uint32
	built bool
}

// NewVectorBuilder returns a builder for a zeroed vector of the given size.
func NewVectorBuilder(size int) *VectorBuilder {
	checkSize(size)
	return &VectorBuilder{words: make([]uint32, size/WordSize)}
}

// SetByte stores value in bits [8*index, 8*index+8).
func (b *VectorBuilder) SetByte(index int, value byte) *VectorBuilder {
	if b.built {
		panic("bit vector builder already used")
	}
	if index < 0 || index >= len(b.words)*4 {
		panic(fmt.Sprintf("byte index %d out of range [0, %d)", index, len(b.words)*4))
	}
	shift := uint(index%4) * 8
	word := &b.words[index/4]
	*word = *word&^(0xFF<<shift) | uint32(value)<<shift
	return b
}

// Build returns the vector and invalidates the builder.
func (b *VectorBuilder) Build() Vector {
	if b.built {
		panic("bit vector builder already used")
	}
	b.built = true
	return Vector{words: b.words}
}
