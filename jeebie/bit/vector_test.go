package bit

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomVector(r *rand.Rand, words int) Vector {
	ws := make([]uint32, words)
	for i := range ws {
		ws[i] = r.Uint32()
	}
	return FromWords(ws...)
}

func TestNewVector(t *testing.T) {
	v := NewVector(64, false)
	assert.Equal(t, 64, v.Size())
	assert.Equal(t, []uint32{0, 0}, v.Words())

	v = NewVector(32, true)
	assert.Equal(t, []uint32{0xFFFFFFFF}, v.Words())

	for _, size := range []int{0, -32, 31, 33, 100} {
		assert.Panicsf(t, func() { NewVector(size, false) }, "size %d", size)
	}
}

func TestVector_TestBit(t *testing.T) {
	v := FromWords(0x00000005, 0x80000000)

	assert.True(t, v.TestBit(0))
	assert.False(t, v.TestBit(1))
	assert.True(t, v.TestBit(2))
	assert.True(t, v.TestBit(63))
	assert.False(t, v.TestBit(32))

	assert.Panics(t, func() { v.TestBit(-1) })
	assert.Panics(t, func() { v.TestBit(64) })
}

func TestVector_Boolean(t *testing.T) {
	a := FromWords(0xF0F0F0F0, 0x0000FFFF)
	b := FromWords(0xFF00FF00, 0xFFFF0000)

	assert.Equal(t, []uint32{0x0F0F0F0F, 0xFFFF0000}, a.Not().Words())
	assert.Equal(t, []uint32{0xF000F000, 0x00000000}, a.And(b).Words())
	assert.Equal(t, []uint32{0xFFF0FFF0, 0xFFFFFFFF}, a.Or(b).Words())
	assert.Equal(t, []uint32{0x0FF00FF0, 0xFFFFFFFF}, a.Xor(b).Words())

	short := FromWords(0)
	assert.Panics(t, func() { a.And(short) })
	assert.Panics(t, func() { a.Or(short) })
	assert.Panics(t, func() { a.Xor(short) })
}

func TestVector_Immutable(t *testing.T) {
	words := []uint32{1, 2}
	v := FromWords(words...)
	words[0] = 99
	assert.Equal(t, []uint32{1, 2}, v.Words())

	v.Words()[1] = 42
	assert.Equal(t, []uint32{1, 2}, v.Words())
}

func TestVector_Shift(t *testing.T) {
	tests := []struct {
		name  string
		in    []uint32
		delta int
		want  []uint32
	}{
		{"left within word", []uint32{0x000000FF}, 4, []uint32{0x00000FF0}},
		{"right within word", []uint32{0x000000FF}, -4, []uint32{0x0000000F}},
		{"left across words", []uint32{0x80000000, 0}, 1, []uint32{0, 1}},
		{"right across words", []uint32{0, 1}, -1, []uint32{0x80000000, 0}},
		{"whole word", []uint32{0x12345678, 0x9ABCDEF0}, 32, []uint32{0, 0x12345678}},
		{"past the end", []uint32{0xFFFFFFFF}, 32, []uint32{0}},
		{"zero", []uint32{0xCAFEBABE}, 0, []uint32{0xCAFEBABE}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromWords(tt.in...).Shift(tt.delta)
			assert.Equal(t, tt.want, got.Words())
		})
	}
}

func TestVector_ShiftRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 200; i++ {
		v := randomVector(r, 1+r.Intn(4))
		d := r.Intn(2*v.Size()+1) - v.Size()

		// bits pushed out of the vector are lost, every other bit comes back
		survivors := NewVector(v.Size(), true).Shift(d).Shift(-d)
		assert.Truef(t, v.Shift(d).Shift(-d).Equal(v.And(survivors)), "v=%s d=%d", v, d)

		// a vector with room on the side it moves towards survives exactly
		padded := v.ExtractZeroExtended(-v.Size(), 3*v.Size())
		for _, delta := range []int{d, -d} {
			assert.Truef(t, padded.Shift(delta).Shift(-delta).Equal(padded), "v=%s d=%d", v, delta)
		}
	}
}

func TestVector_Extract(t *testing.T) {
	v := FromWords(0x11112222, 0x33334444)

	tests := []struct {
		name     string
		from     int
		size     int
		wrapped  []uint32
		zeroExtd []uint32
	}{
		{"aligned", 0, 64, []uint32{0x11112222, 0x33334444}, []uint32{0x11112222, 0x33334444}},
		{"unaligned inside", 16, 32, []uint32{0x44441111}, []uint32{0x44441111}},
		{"crossing the end", 48, 32, []uint32{0x22223333}, []uint32{0x00003333}},
		{"before the start", -16, 32, []uint32{0x22223333}, []uint32{0x22220000}},
		{"larger than source", 0, 128, []uint32{0x11112222, 0x33334444, 0x11112222, 0x33334444}, []uint32{0x11112222, 0x33334444, 0, 0}},
		{"far away", 64 * 10, 32, []uint32{0x11112222}, []uint32{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wrapped, v.ExtractWrapped(tt.from, tt.size).Words())
			assert.Equal(t, tt.zeroExtd, v.ExtractZeroExtended(tt.from, tt.size).Words())
		})
	}

	assert.Panics(t, func() { v.ExtractWrapped(0, 16) })
	assert.Panics(t, func() { v.ExtractZeroExtended(0, 0) })
}

func TestVector_ExtractSingleBit(t *testing.T) {
	one := FromWords(0x1)

	assert.Equal(t, []uint32{0x2}, one.ExtractWrapped(-1, 32).Words())
	assert.Equal(t, []uint32{0x80000000}, one.ExtractWrapped(1, 32).Words())
	assert.Equal(t, []uint32{0}, one.ExtractZeroExtended(1, 32).Words())
}

func TestVector_ExtractWrappedPeriodicity(t *testing.T) {
	r := rand.New(rand.NewSource(2))

	for i := 0; i < 200; i++ {
		v := randomVector(r, 1+r.Intn(4))
		from := r.Intn(1000) - 500
		size := WordSize * (1 + r.Intn(5))

		want := v.ExtractWrapped(from, size)
		assert.True(t, v.ExtractWrapped(from+v.Size(), size).Equal(want))
		assert.True(t, v.ExtractWrapped(from-v.Size(), size).Equal(want))
	}
}

func TestVector_ExtractMatchesBitwiseDefinition(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	v := randomVector(r, 3)

	for _, from := range []int{-70, -33, -1, 0, 5, 31, 32, 63, 95, 130} {
		w := v.ExtractWrapped(from, 64)
		z := v.ExtractZeroExtended(from, 64)
		for j := 0; j < 64; j++ {
			src := from + j
			wantWrapped := v.TestBit(floorMod(src, v.Size()))
			wantZero := src >= 0 && src < v.Size() && v.TestBit(src)
			require.Equalf(t, wantWrapped, w.TestBit(j), "wrapped from=%d j=%d", from, j)
			require.Equalf(t, wantZero, z.TestBit(j), "zero from=%d j=%d", from, j)
		}
	}
}

func TestVector_EqualAndHash(t *testing.T) {
	a := FromWords(1, 2, 3)
	b := FromWords(1, 2, 3)
	c := FromWords(1, 2, 4)
	d := FromWords(1, 2)

	assert.True(t, a.Equal(b))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(d))
}

func TestVector_String(t *testing.T) {
	s := FromWords(0b101).String()
	assert.Len(t, s, 32)
	assert.Equal(t, strings.Repeat("0", 29)+"101", s)
}

func TestVectorBuilder(t *testing.T) {
	b := NewVectorBuilder(64)
	v := b.SetByte(0, 0xAB).SetByte(5, 0xCD).SetByte(7, 0x12).Build()

	assert.Equal(t, []uint32{0x000000AB, 0x1200CD00}, v.Words())

	assert.Panics(t, func() { b.SetByte(0, 1) })
	assert.Panics(t, func() { b.Build() })
	assert.Panics(t, func() { NewVectorBuilder(32).SetByte(4, 1) })
	assert.Panics(t, func() { NewVectorBuilder(32).SetByte(-1, 1) })
}

func TestVectorBuilder_Overwrite(t *testing.T) {
	v := NewVectorBuilder(32).SetByte(1, 0xFF).SetByte(1, 0x0F).Build()
	assert.Equal(t, []uint32{0x00000F00}, v.Words())
}
