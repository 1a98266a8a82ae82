package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flatMemory []uint8

func (m flatMemory) Read(address uint16) uint8 {
	if int(address) >= len(m) {
		return 0
	}
	return m[address]
}

func TestDisassembleAt(t *testing.T) {
	tests := []struct {
		name   string
		code   []uint8
		pc     uint16
		want   string
		length int
		valid  bool
	}{
		{"no operand", []uint8{0x00}, 0, "NOP", 1, true},
		{"n8", []uint8{0x3E, 0x42}, 0, "LD A,$42", 2, true},
		{"n16", []uint8{0xC3, 0x50, 0x01}, 0, "JP $0150", 3, true},
		{"n8 in brackets", []uint8{0xE0, 0x44}, 0, "LDH ($44),A", 2, true},
		{"relative jump forward", []uint8{0x00, 0x18, 0x05}, 1, "JR $0008", 2, true},
		{"relative jump backwards", []uint8{0x20, 0xFE}, 0, "JR NZ,$0000", 2, true},
		{"signed offset", []uint8{0xF8, 0xFB}, 0, "LD HL,SP-5", 2, true},
		{"signed add", []uint8{0xE8, 0x10}, 0, "ADD SP,16", 2, true},
		{"prefixed", []uint8{0xCB, 0x00}, 0, "RLC B", 2, true},
		{"illegal", []uint8{0xD3}, 0, "DB $D3", 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := DisassembleAt(tt.pc, flatMemory(tt.code))
			assert.Equal(t, tt.want, line.Instruction)
			assert.Equal(t, tt.length, line.Length)
			assert.Equal(t, tt.valid, line.Valid)
			assert.Equal(t, tt.pc, line.Address)
		})
	}
}

var program = flatMemory{
	0x31, 0xFF, 0xFF, // 0x00 LD SP,$FFFF
	0x3E, 0x0B, // 0x03 LD A,$0B
	0xCD, 0x0A, 0x00, // 0x05 CALL $000A
	0x76, // 0x08 HALT
	0x00, // 0x09 NOP
	0xFE, 0x02, // 0x0A CP A,$02
}

func TestDisassembleRange(t *testing.T) {
	lines := DisassembleRange(0, 4, program)
	require.Len(t, lines, 4)

	var addrs []uint16
	for _, l := range lines {
		addrs = append(addrs, l.Address)
	}
	assert.Equal(t, []uint16{0x00, 0x03, 0x05, 0x08}, addrs)
	assert.Equal(t, "CALL $000A", lines[2].Instruction)

	assert.Len(t, DisassembleRange(0xFFFF, 3, program), 1, "stops at the end of the address space")
}

func TestDisassembleAround(t *testing.T) {
	lines := DisassembleAround(0x08, 2, 1, program)
	require.Len(t, lines, 4)
	assert.Equal(t, uint16(0x03), lines[0].Address)
	assert.Equal(t, uint16(0x08), lines[2].Address)
	assert.Equal(t, "NOP", lines[3].Instruction)

	lines = DisassembleAround(0, 3, 0, program)
	require.Len(t, lines, 1)
	assert.Equal(t, "LD SP,$FFFF", lines[0].Instruction)
}

func TestFormatDisassemblyLine(t *testing.T) {
	line := DisassemblyLine{Address: 0x0150, Instruction: "HALT", Length: 1}
	assert.Equal(t, ">0x0150: HALT", FormatDisassemblyLine(line, true))
	assert.Equal(t, " 0x0150: HALT", FormatDisassemblyLine(line, false))
}
