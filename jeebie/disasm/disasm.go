package disasm

import (
	"fmt"
	"strings"

	"github.com/valerio/jeebie-core/jeebie/bit"
	"github.com/valerio/jeebie-core/jeebie/cpu"
)

// Reader is the view of memory the disassembler decodes from.
type Reader interface {
	Read(address uint16) byte
}

// DisassemblyLine represents a single disassembled instruction
type DisassemblyLine struct {
	Address     uint16
	Instruction string
	Length      int
	Valid       bool
}

// Format renders an instruction with its immediate operand substituted
// for the n8, n16 and e8 placeholders of the mnemonic. Relative jumps show
// their target address.
func Format(pc uint16, op cpu.Opcode, operand uint16) string {
	m := op.Mnemonic
	switch {
	case strings.Contains(m, "n16"):
		return strings.Replace(m, "n16", fmt.Sprintf("$%04X", operand), 1)
	case strings.Contains(m, "n8"):
		return strings.Replace(m, "n8", fmt.Sprintf("$%02X", uint8(operand)), 1)
	case strings.Contains(m, "e8"):
		offset := int8(uint8(operand))
		if op.Family == cpu.JrE8 || op.Family == cpu.JrCCE8 {
			target := pc + uint16(op.Length) + uint16(offset)
			return strings.Replace(m, "e8", fmt.Sprintf("$%04X", target), 1)
		}
		if strings.Contains(m, "+e8") {
			return strings.Replace(m, "+e8", fmt.Sprintf("%+d", offset), 1)
		}
		return strings.Replace(m, "e8", fmt.Sprintf("%d", offset), 1)
	}
	return m
}

// DisassembleAt disassembles the instruction at the given program counter.
// Illegal encodings are rendered as a data byte.
func DisassembleAt(pc uint16, mem Reader) DisassemblyLine {
	b := mem.Read(pc)

	if b == cpu.PrefixByte {
		op, _ := cpu.Lookup(cpu.Prefixed, mem.Read(pc+1))
		return DisassemblyLine{
			Address:     pc,
			Instruction: op.Mnemonic,
			Length:      int(op.Length),
			Valid:       true,
		}
	}

	op, ok := cpu.Lookup(cpu.Plain, b)
	if !ok {
		return DisassemblyLine{
			Address:     pc,
			Instruction: fmt.Sprintf("DB $%02X", b),
			Length:      1,
		}
	}

	var operand uint16
	switch op.Length {
	case 2:
		operand = uint16(mem.Read(pc + 1))
	case 3:
		operand = bit.Combine(mem.Read(pc+2), mem.Read(pc+1))
	}

	return DisassemblyLine{
		Address:     pc,
		Instruction: Format(pc, op, operand),
		Length:      int(op.Length),
		Valid:       true,
	}
}

// DisassembleRange disassembles count instructions starting from the given PC.
// It stops early when the address space wraps.
func DisassembleRange(startPC uint16, count int, mem Reader) []DisassemblyLine {
	lines := make([]DisassemblyLine, 0, count)
	pc := uint32(startPC)

	for i := 0; i < count && pc <= 0xFFFF; i++ {
		line := DisassembleAt(uint16(pc), mem)
		lines = append(lines, line)
		pc += uint32(line.Length)
	}

	return lines
}

// DisassembleAround disassembles up to beforeCount instructions before the
// given PC, the instruction at PC and afterCount instructions after it.
//
// Instructions have variable length, so the start is found by decoding
// forward from earlier addresses and keeping the earliest one that lands
// exactly on the PC.
func DisassembleAround(currentPC uint16, beforeCount, afterCount int, mem Reader) []DisassemblyLine {
	startPC := currentPC
	found := 0

	for offset := min(beforeCount*3, int(currentPC)); offset > 0; offset-- {
		pc := currentPC - uint16(offset)
		count := 0
		for pc < currentPC {
			pc += uint16(DisassembleAt(pc, mem).Length)
			count++
		}
		if pc == currentPC && count <= beforeCount {
			startPC = currentPC - uint16(offset)
			found = count
			break
		}
	}

	return DisassembleRange(startPC, found+1+afterCount, mem)
}

// FormatDisassemblyLine formats a disassembly line for display
func FormatDisassemblyLine(line DisassemblyLine, isCurrentPC bool) string {
	prefix := " "
	if isCurrentPC {
		prefix = ">"
	}

	return fmt.Sprintf("%s0x%04X: %s", prefix, line.Address, line.Instruction)
}
