package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	codeStart  uint16 = 0xC000
	stackStart uint16 = 0xD000
	data       uint16 = 0xC800
)

type execCase struct {
	name   string
	code   []uint8
	setup  func(c *CPU, bus *testBus)
	check  func(t *testing.T, c *CPU, bus *testBus)
	cycles uint64
}

func runExecCases(t *testing.T, cases []execCase) {
	t.Helper()
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			c, bus := newTestCPU()
			c.pc = codeStart
			c.sp = stackStart
			copy(bus.mem[codeStart:], tt.code)
			if tt.setup != nil {
				tt.setup(c, bus)
			}

			cycles := execOne(c)

			assert.Equal(t, tt.cycles, cycles, "cycles")
			tt.check(t, c, bus)
		})
	}
}

func flags(c *CPU) uint8 { return c.F() }

func setF(c *CPU, f uint8) { c.regs.Set(RegF, f) }

func pcAfter(n uint16) uint16 { return codeStart + n }

func TestExec_Loads(t *testing.T) {
	runExecCases(t, []execCase{
		{
			name:  "LD B,C",
			code:  []uint8{0x41},
			setup: func(c *CPU, _ *testBus) { c.regs.Set(RegC, 0x42) },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x42), c.B())
				assert.Equal(t, pcAfter(1), c.PC())
			},
			cycles: 1,
		},
		{
			name:   "LD B,n8",
			code:   []uint8{0x06, 0x99},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x99), c.B()) },
			cycles: 2,
		},
		{
			name: "LD E,(HL)",
			code: []uint8{0x5E},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x77
			},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x77), c.E()) },
			cycles: 2,
		},
		{
			name: "LD (HL),A",
			code: []uint8{0x77},
			setup: func(c *CPU, _ *testBus) {
				c.setPair(PairHL, data)
				c.setA(0x99)
			},
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x99), bus.mem[data]) },
			cycles: 2,
		},
		{
			name:   "LD (HL),n8",
			code:   []uint8{0x36, 0x5A},
			setup:  func(c *CPU, _ *testBus) { c.setPair(PairHL, data) },
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x5A), bus.mem[data]) },
			cycles: 3,
		},
		{
			name: "LD A,(HL+)",
			code: []uint8{0x2A},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x12
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x12), c.A())
				assert.Equal(t, data+1, c.HL())
			},
			cycles: 2,
		},
		{
			name: "LD A,(HL-)",
			code: []uint8{0x3A},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x13
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x13), c.A())
				assert.Equal(t, data-1, c.HL())
			},
			cycles: 2,
		},
		{
			name: "LD (HL-),A",
			code: []uint8{0x32},
			setup: func(c *CPU, _ *testBus) {
				c.setPair(PairHL, data)
				c.setA(0x21)
			},
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, uint8(0x21), bus.mem[data])
				assert.Equal(t, data-1, c.HL())
			},
			cycles: 2,
		},
		{
			name: "LD (HL+),A",
			code: []uint8{0x22},
			setup: func(c *CPU, _ *testBus) {
				c.setPair(PairHL, 0xFFFF)
				c.setA(0x21)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				v, _ := c.Read(0xFFFF)
				assert.Equal(t, uint8(0x21), v)
				assert.Equal(t, uint16(0), c.HL(), "HL wraps")
			},
			cycles: 2,
		},
		{
			name: "LD (BC),A",
			code: []uint8{0x02},
			setup: func(c *CPU, _ *testBus) {
				c.setPair(PairBC, data)
				c.setA(0x31)
			},
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x31), bus.mem[data]) },
			cycles: 2,
		},
		{
			name: "LD A,(DE)",
			code: []uint8{0x1A},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairDE, data)
				bus.mem[data] = 0x32
			},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x32), c.A()) },
			cycles: 2,
		},
		{
			name:   "LDH (n8),A",
			code:   []uint8{0xE0, 0x80},
			setup:  func(c *CPU, _ *testBus) { c.setA(0x55) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x55), c.hram[0]) },
			cycles: 3,
		},
		{
			name:   "LDH A,(n8)",
			code:   []uint8{0xF0, 0x90},
			setup:  func(c *CPU, _ *testBus) { c.hram[0x10] = 0x66 },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x66), c.A()) },
			cycles: 3,
		},
		{
			name: "LDH (C),A",
			code: []uint8{0xE2},
			setup: func(c *CPU, _ *testBus) {
				c.regs.Set(RegC, 0x81)
				c.setA(0x67)
			},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x67), c.hram[1]) },
			cycles: 2,
		},
		{
			name: "LDH A,(C)",
			code: []uint8{0xF2},
			setup: func(c *CPU, _ *testBus) {
				c.regs.Set(RegC, 0xFF)
				c.ie = 0x1D
			},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x1D), c.A()) },
			cycles: 2,
		},
		{
			name:   "LD A,(n16)",
			code:   []uint8{0xFA, 0x00, 0xC8},
			setup:  func(_ *CPU, bus *testBus) { bus.mem[data] = 0x44 },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x44), c.A()) },
			cycles: 4,
		},
		{
			name:   "LD (n16),A",
			code:   []uint8{0xEA, 0x00, 0xC8},
			setup:  func(c *CPU, _ *testBus) { c.setA(0x45) },
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x45), bus.mem[data]) },
			cycles: 4,
		},
		{
			name:  "LD (n16),SP",
			code:  []uint8{0x08, 0x00, 0xC8},
			setup: func(c *CPU, _ *testBus) { c.sp = 0x1234 },
			check: func(t *testing.T, _ *CPU, bus *testBus) {
				assert.Equal(t, uint8(0x34), bus.mem[data])
				assert.Equal(t, uint8(0x12), bus.mem[data+1])
			},
			cycles: 5,
		},
		{
			name:   "LD HL,n16",
			code:   []uint8{0x21, 0x34, 0x12},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0x1234), c.HL()) },
			cycles: 3,
		},
		{
			name:   "LD SP,n16",
			code:   []uint8{0x31, 0xFE, 0xFF},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0xFFFE), c.SP()) },
			cycles: 3,
		},
		{
			name:   "LD SP,HL",
			code:   []uint8{0xF9},
			setup:  func(c *CPU, _ *testBus) { c.setPair(PairHL, 0xABCD) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0xABCD), c.SP()) },
			cycles: 2,
		},
		{
			name:  "PUSH DE",
			code:  []uint8{0xD5},
			setup: func(c *CPU, _ *testBus) { c.setPair(PairDE, 0xBEEF) },
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, stackStart-2, c.SP())
				assert.Equal(t, uint8(0xEF), bus.mem[stackStart-2])
				assert.Equal(t, uint8(0xBE), bus.mem[stackStart-1])
			},
			cycles: 4,
		},
		{
			name: "POP AF masks the low nibble",
			code: []uint8{0xF1},
			setup: func(_ *CPU, bus *testBus) {
				bus.mem[stackStart] = 0xFF
				bus.mem[stackStart+1] = 0x12
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0x12F0), c.AF())
				assert.Equal(t, stackStart+2, c.SP())
			},
			cycles: 3,
		},
	})
}

func TestExec_Arithmetic(t *testing.T) {
	runExecCases(t, []execCase{
		{
			name: "ADD A,B",
			code: []uint8{0x80},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x3A)
				c.regs.Set(RegB, 0xC6)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0), c.A())
				assert.Equal(t, uint8(0xB0), flags(c))
			},
			cycles: 1,
		},
		{
			name: "ADC A,n8 uses the carry",
			code: []uint8{0xCE, 0x01},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0xFE)
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0), c.A())
				assert.Equal(t, uint8(0xB0), flags(c))
			},
			cycles: 2,
		},
		{
			name: "ADD A,n8 ignores the carry",
			code: []uint8{0xC6, 0x01},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x01)
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x02), c.A())
				assert.Equal(t, uint8(0), flags(c))
			},
			cycles: 2,
		},
		{
			name: "ADD A,(HL)",
			code: []uint8{0x86},
			setup: func(c *CPU, bus *testBus) {
				c.setA(0x0F)
				c.setPair(PairHL, data)
				bus.mem[data] = 0x01
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x10), c.A())
				assert.Equal(t, uint8(0x20), flags(c))
			},
			cycles: 2,
		},
		{
			name: "SUB A,B",
			code: []uint8{0x90},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x3E)
				c.regs.Set(RegB, 0x3E)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0), c.A())
				assert.Equal(t, uint8(0xC0), flags(c))
			},
			cycles: 1,
		},
		{
			name: "SBC A,n8",
			code: []uint8{0xDE, 0x2A},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x3B)
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x10), c.A())
				assert.Equal(t, uint8(0x40), flags(c))
			},
			cycles: 2,
		},
		{
			name: "SBC A,(HL) borrows",
			code: []uint8{0x9E},
			setup: func(c *CPU, bus *testBus) {
				c.setA(0x00)
				c.setPair(PairHL, data)
				bus.mem[data] = 0x00
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0xFF), c.A())
				assert.Equal(t, uint8(0x70), flags(c))
			},
			cycles: 2,
		},
		{
			name:  "CP A,n8 keeps A",
			code:  []uint8{0xFE, 0x3C},
			setup: func(c *CPU, _ *testBus) { c.setA(0x3C) },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x3C), c.A())
				assert.Equal(t, uint8(0xC0), flags(c))
			},
			cycles: 2,
		},
		{
			name: "CP A,B sets the borrow",
			code: []uint8{0xB8},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x01)
				c.regs.Set(RegB, 0x02)
			},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x70), flags(c)) },
			cycles: 1,
		},
		{
			name: "INC B keeps the carry",
			code: []uint8{0x04},
			setup: func(c *CPU, _ *testBus) {
				c.regs.Set(RegB, 0xFF)
				setF(c, 0x50)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0), c.B())
				assert.Equal(t, uint8(0xB0), flags(c))
			},
			cycles: 1,
		},
		{
			name: "DEC (HL)",
			code: []uint8{0x35},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x01
			},
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, uint8(0), bus.mem[data])
				assert.Equal(t, uint8(0xC0), flags(c))
			},
			cycles: 3,
		},
		{
			name: "INC (HL)",
			code: []uint8{0x34},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x0F
			},
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, uint8(0x10), bus.mem[data])
				assert.Equal(t, uint8(0x20), flags(c))
			},
			cycles: 3,
		},
		{
			name: "DEC A half borrow",
			code: []uint8{0x3D},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x10)
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x0F), c.A())
				assert.Equal(t, uint8(0x70), flags(c))
			},
			cycles: 1,
		},
		{
			name: "INC SP wraps without flags",
			code: []uint8{0x33},
			setup: func(c *CPU, _ *testBus) {
				c.sp = 0xFFFF
				setF(c, 0xA0)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0), c.SP())
				assert.Equal(t, uint8(0xA0), flags(c))
			},
			cycles: 2,
		},
		{
			name:   "DEC BC wraps",
			code:   []uint8{0x0B},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0xFFFF), c.BC()) },
			cycles: 2,
		},
		{
			name: "ADD HL,DE keeps Z",
			code: []uint8{0x19},
			setup: func(c *CPU, _ *testBus) {
				c.setPair(PairHL, 0x8A23)
				c.setPair(PairDE, 0x0605)
				setF(c, 0xC0)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0x9028), c.HL())
				assert.Equal(t, uint8(0xA0), flags(c))
			},
			cycles: 2,
		},
		{
			name: "ADD HL,SP carries out of bit 15",
			code: []uint8{0x39},
			setup: func(c *CPU, _ *testBus) {
				c.setPair(PairHL, 0x8000)
				c.sp = 0x8000
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0), c.HL())
				assert.Equal(t, uint8(0x10), flags(c))
			},
			cycles: 2,
		},
		{
			name: "ADD SP,e8 flags from the low byte",
			code: []uint8{0xE8, 0xFF},
			setup: func(c *CPU, _ *testBus) {
				c.sp = 0x0001
				setF(c, 0xC0)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0), c.SP())
				assert.Equal(t, uint8(0x30), flags(c), "Z and N are cleared")
			},
			cycles: 4,
		},
		{
			name:  "LD HL,SP+e8",
			code:  []uint8{0xF8, 0x02},
			setup: func(c *CPU, _ *testBus) { c.sp = 0xFFF8 },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0xFFFA), c.HL())
				assert.Equal(t, uint16(0xFFF8), c.SP())
				assert.Equal(t, uint8(0), flags(c))
			},
			cycles: 3,
		},
		{
			name: "DAA after addition",
			code: []uint8{0x27},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x3C)
				setF(c, 0)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x42), c.A())
				assert.Equal(t, uint8(0), flags(c))
			},
			cycles: 1,
		},
		{
			name: "DAA after subtraction keeps N",
			code: []uint8{0x27},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x2D)
				setF(c, 0x60)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x27), c.A())
				assert.Equal(t, uint8(0x40), flags(c))
			},
			cycles: 1,
		},
	})
}

func TestExec_Logic(t *testing.T) {
	runExecCases(t, []execCase{
		{
			name: "AND A,B",
			code: []uint8{0xA0},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x5A)
				c.regs.Set(RegB, 0x3F)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x1A), c.A())
				assert.Equal(t, uint8(0x20), flags(c))
			},
			cycles: 1,
		},
		{
			name:  "XOR A,A",
			code:  []uint8{0xAF},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x5A)
				setF(c, 0x70)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0), c.A())
				assert.Equal(t, uint8(0x80), flags(c))
			},
			cycles: 1,
		},
		{
			name: "OR A,(HL)",
			code: []uint8{0xB6},
			setup: func(c *CPU, bus *testBus) {
				c.setA(0x50)
				c.setPair(PairHL, data)
				bus.mem[data] = 0x0F
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x5F), c.A())
				assert.Equal(t, uint8(0), flags(c))
			},
			cycles: 2,
		},
		{
			name:   "AND A,n8",
			code:   []uint8{0xE6, 0x0F},
			setup:  func(c *CPU, _ *testBus) { c.setA(0xF0) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0xA0), flags(c)) },
			cycles: 2,
		},
		{
			name:   "XOR A,n8",
			code:   []uint8{0xEE, 0xFF},
			setup:  func(c *CPU, _ *testBus) { c.setA(0x0F) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0xF0), c.A()) },
			cycles: 2,
		},
		{
			name:   "OR A,n8",
			code:   []uint8{0xF6, 0x00},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x80), flags(c)) },
			cycles: 2,
		},
		{
			name: "CPL",
			code: []uint8{0x2F},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x35)
				setF(c, 0x90)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0xCA), c.A())
				assert.Equal(t, uint8(0xF0), flags(c))
			},
			cycles: 1,
		},
		{
			name:   "SCF",
			code:   []uint8{0x37},
			setup:  func(c *CPU, _ *testBus) { setF(c, 0xE0) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x90), flags(c)) },
			cycles: 1,
		},
		{
			name:   "CCF",
			code:   []uint8{0x3F},
			setup:  func(c *CPU, _ *testBus) { setF(c, 0xF0) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x80), flags(c)) },
			cycles: 1,
		},
	})
}

func TestExec_RotationsAndBits(t *testing.T) {
	runExecCases(t, []execCase{
		{
			name:  "RLCA clears Z",
			code:  []uint8{0x07},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x85)
				setF(c, 0x80)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x0B), c.A())
				assert.Equal(t, uint8(0x10), flags(c))
			},
			cycles: 1,
		},
		{
			name:  "RRCA",
			code:  []uint8{0x0F},
			setup: func(c *CPU, _ *testBus) { c.setA(0x01) },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x80), c.A())
				assert.Equal(t, uint8(0x10), flags(c))
			},
			cycles: 1,
		},
		{
			name:  "RLA takes the carry",
			code:  []uint8{0x17},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0x00)
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x01), c.A())
				assert.Equal(t, uint8(0), flags(c))
			},
			cycles: 1,
		},
		{
			name:  "RRA zero result keeps Z clear",
			code:  []uint8{0x1F},
			setup: func(c *CPU, _ *testBus) { c.setA(0x01) },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0), c.A())
				assert.Equal(t, uint8(0x10), flags(c))
			},
			cycles: 1,
		},
		{
			name:  "RLC B",
			code:  []uint8{0xCB, 0x00},
			setup: func(c *CPU, _ *testBus) { c.regs.Set(RegB, 0x85) },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x0B), c.B())
				assert.Equal(t, uint8(0x10), flags(c))
				assert.Equal(t, pcAfter(2), c.PC())
			},
			cycles: 2,
		},
		{
			name:  "RRC C sets Z",
			code:  []uint8{0xCB, 0x09},
			setup: func(c *CPU, _ *testBus) { c.regs.Set(RegC, 0x00) },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x80), flags(c))
			},
			cycles: 2,
		},
		{
			name: "RR (HL)",
			code: []uint8{0xCB, 0x1E},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x01
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, uint8(0x80), bus.mem[data])
				assert.Equal(t, uint8(0x10), flags(c))
			},
			cycles: 4,
		},
		{
			name: "RLC (HL)",
			code: []uint8{0xCB, 0x06},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x80
			},
			check: func(t *testing.T, _ *CPU, bus *testBus) {
				assert.Equal(t, uint8(0x01), bus.mem[data])
			},
			cycles: 4,
		},
		{
			name:  "RL D",
			code:  []uint8{0xCB, 0x12},
			setup: func(c *CPU, _ *testBus) { c.regs.Set(RegD, 0x80) },
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0), c.D())
				assert.Equal(t, uint8(0x90), flags(c))
			},
			cycles: 2,
		},
		{
			name:   "SLA D",
			code:   []uint8{0xCB, 0x22},
			setup:  func(c *CPU, _ *testBus) { c.regs.Set(RegD, 0xC1) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x82), c.D()) },
			cycles: 2,
		},
		{
			name:   "SRA E",
			code:   []uint8{0xCB, 0x2B},
			setup:  func(c *CPU, _ *testBus) { c.regs.Set(RegE, 0x81) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0xC0), c.E()) },
			cycles: 2,
		},
		{
			name: "SRL (HL)",
			code: []uint8{0xCB, 0x3E},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x01
			},
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, uint8(0), bus.mem[data])
				assert.Equal(t, uint8(0x90), flags(c))
			},
			cycles: 4,
		},
		{
			name: "SLA (HL)",
			code: []uint8{0xCB, 0x26},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x40
			},
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x80), bus.mem[data]) },
			cycles: 4,
		},
		{
			name: "SRA (HL)",
			code: []uint8{0xCB, 0x2E},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x80
			},
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0xC0), bus.mem[data]) },
			cycles: 4,
		},
		{
			name:  "SWAP A",
			code:  []uint8{0xCB, 0x37},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0xF0)
				setF(c, 0x10)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x0F), c.A())
				assert.Equal(t, uint8(0), flags(c))
			},
			cycles: 2,
		},
		{
			name: "SWAP (HL)",
			code: []uint8{0xCB, 0x36},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0x12
			},
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x21), bus.mem[data]) },
			cycles: 4,
		},
		{
			name:  "BIT 7,H keeps the carry",
			code:  []uint8{0xCB, 0x7C},
			setup: func(c *CPU, _ *testBus) {
				c.regs.Set(RegH, 0x80)
				setF(c, 0x50)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0x30), flags(c))
				assert.Equal(t, uint8(0x80), c.H())
			},
			cycles: 2,
		},
		{
			name: "BIT 0,(HL)",
			code: []uint8{0xCB, 0x46},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0xFE
			},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0xA0), flags(c)) },
			cycles: 3,
		},
		{
			name:  "RES 3,A",
			code:  []uint8{0xCB, 0x9F},
			setup: func(c *CPU, _ *testBus) {
				c.setA(0xFF)
				setF(c, 0x50)
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint8(0xF7), c.A())
				assert.Equal(t, uint8(0x50), flags(c), "flags untouched")
			},
			cycles: 2,
		},
		{
			name:   "SET 0,L",
			code:   []uint8{0xCB, 0xC5},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint8(0x01), c.L()) },
			cycles: 2,
		},
		{
			name:   "SET 1,(HL)",
			code:   []uint8{0xCB, 0xCE},
			setup:  func(c *CPU, _ *testBus) { c.setPair(PairHL, data) },
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x02), bus.mem[data]) },
			cycles: 4,
		},
		{
			name: "RES 7,(HL)",
			code: []uint8{0xCB, 0xBE},
			setup: func(c *CPU, bus *testBus) {
				c.setPair(PairHL, data)
				bus.mem[data] = 0xFF
			},
			check:  func(t *testing.T, _ *CPU, bus *testBus) { assert.Equal(t, uint8(0x7F), bus.mem[data]) },
			cycles: 4,
		},
	})
}

func TestExec_ControlFlow(t *testing.T) {
	runExecCases(t, []execCase{
		{
			name:   "JP n16",
			code:   []uint8{0xC3, 0x00, 0xC1},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0xC100), c.PC()) },
			cycles: 4,
		},
		{
			name:   "JP NZ,n16 not taken",
			code:   []uint8{0xC2, 0x00, 0xC1},
			setup:  func(c *CPU, _ *testBus) { setF(c, 0x80) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, pcAfter(3), c.PC()) },
			cycles: 3,
		},
		{
			name:   "JP Z,n16 taken",
			code:   []uint8{0xCA, 0x00, 0xC1},
			setup:  func(c *CPU, _ *testBus) { setF(c, 0x80) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0xC100), c.PC()) },
			cycles: 4,
		},
		{
			name:   "JP HL",
			code:   []uint8{0xE9},
			setup:  func(c *CPU, _ *testBus) { c.setPair(PairHL, 0x4000) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0x4000), c.PC()) },
			cycles: 1,
		},
		{
			name:   "JR e8 backwards",
			code:   []uint8{0x18, 0xFE},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, codeStart, c.PC()) },
			cycles: 3,
		},
		{
			name:   "JR C,e8 taken",
			code:   []uint8{0x38, 0x05},
			setup:  func(c *CPU, _ *testBus) { setF(c, 0x10) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, pcAfter(7), c.PC()) },
			cycles: 3,
		},
		{
			name:   "JR NC,e8 not taken",
			code:   []uint8{0x30, 0x05},
			setup:  func(c *CPU, _ *testBus) { setF(c, 0x10) },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, pcAfter(2), c.PC()) },
			cycles: 2,
		},
		{
			name: "CALL n16",
			code: []uint8{0xCD, 0x34, 0x12},
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, uint16(0x1234), c.PC())
				assert.Equal(t, stackStart-2, c.SP())
				assert.Equal(t, uint8(0x03), bus.mem[stackStart-2])
				assert.Equal(t, uint8(0xC0), bus.mem[stackStart-1])
			},
			cycles: 6,
		},
		{
			name: "CALL Z,n16 not taken",
			code: []uint8{0xCC, 0x34, 0x12},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, pcAfter(3), c.PC())
				assert.Equal(t, stackStart, c.SP())
			},
			cycles: 3,
		},
		{
			name:   "CALL NC,n16 taken",
			code:   []uint8{0xD4, 0x34, 0x12},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0x1234), c.PC()) },
			cycles: 6,
		},
		{
			name: "RST $28",
			code: []uint8{0xEF},
			check: func(t *testing.T, c *CPU, bus *testBus) {
				assert.Equal(t, uint16(0x28), c.PC())
				assert.Equal(t, uint8(0x01), bus.mem[stackStart-2])
			},
			cycles: 4,
		},
		{
			name: "RET",
			code: []uint8{0xC9},
			setup: func(_ *CPU, bus *testBus) {
				bus.mem[stackStart] = 0x12
				bus.mem[stackStart+1] = 0x34
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0x3412), c.PC())
				assert.Equal(t, stackStart+2, c.SP())
			},
			cycles: 4,
		},
		{
			name: "RET NZ taken",
			code: []uint8{0xC0},
			setup: func(_ *CPU, bus *testBus) {
				bus.mem[stackStart] = 0x12
				bus.mem[stackStart+1] = 0x34
			},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, uint16(0x3412), c.PC()) },
			cycles: 5,
		},
		{
			name: "RET C not taken",
			code: []uint8{0xD8},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, pcAfter(1), c.PC())
				assert.Equal(t, stackStart, c.SP())
			},
			cycles: 2,
		},
		{
			name: "RETI enables interrupts at once",
			code: []uint8{0xD9},
			setup: func(_ *CPU, bus *testBus) {
				bus.mem[stackStart] = 0x00
				bus.mem[stackStart+1] = 0x02
			},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.Equal(t, uint16(0x0200), c.PC())
				assert.True(t, c.IME())
			},
			cycles: 4,
		},
		{
			name:   "DI",
			code:   []uint8{0xF3},
			setup:  func(c *CPU, _ *testBus) { c.ime = true },
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.False(t, c.IME()) },
			cycles: 1,
		},
		{
			name: "EI is delayed",
			code: []uint8{0xFB},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.False(t, c.IME())
				assert.True(t, c.eiPending)
			},
			cycles: 1,
		},
		{
			name: "HALT",
			code: []uint8{0x76},
			check: func(t *testing.T, c *CPU, _ *testBus) {
				assert.True(t, c.Halted())
				assert.Equal(t, pcAfter(1), c.PC())
			},
			cycles: 1,
		},
		{
			name:   "NOP",
			code:   []uint8{0x00},
			check:  func(t *testing.T, c *CPU, _ *testBus) { assert.Equal(t, pcAfter(1), c.PC()) },
			cycles: 1,
		},
	})
}
