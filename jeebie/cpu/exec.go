package cpu

import (
	"fmt"

	"github.com/valerio/jeebie-core/jeebie/alu"
	"github.com/valerio/jeebie-core/jeebie/bit"
)

// execFunc runs the semantics of an opcode family. PC already points past
// the instruction when it is called. It reports whether a conditional
// branch was taken.
type execFunc func(c *CPU, op Opcode, operand uint16) bool

var families = [familyCount]execFunc{
	Nop: func(*CPU, Opcode, uint16) bool { return false },

	LdR8HLR:    execLdR8HLR,
	LdAHLRU:    execLdAHLRU,
	LdAN8R:     execLdAN8R,
	LdACR:      execLdACR,
	LdAN16R:    execLdAN16R,
	LdABCR:     execLdABCR,
	LdADER:     execLdADER,
	LdR8N8:     execLdR8N8,
	LdR16SPN16: execLdR16SPN16,
	PopR16:     execPopR16,
	LdHLRR8:    execLdHLRR8,
	LdHLRUA:    execLdHLRUA,
	LdN8RA:     execLdN8RA,
	LdCRA:      execLdCRA,
	LdN16RA:    execLdN16RA,
	LdBCRA:     execLdBCRA,
	LdDERA:     execLdDERA,
	LdHLRN8:    execLdHLRN8,
	LdN16RSP:   execLdN16RSP,
	LdR8R8:     execLdR8R8,
	LdSPHL:     execLdSPHL,
	PushR16:    execPushR16,

	AddAR8:     execAddAR8,
	AddAN8:     execAddAN8,
	AddAHLR:    execAddAHLR,
	IncR8:      execIncR8,
	IncHLR:     execIncHLR,
	IncR16SP:   execIncR16SP,
	AddHLR16SP: execAddHLR16SP,
	LdHLSPS8:   execLdHLSPS8,

	SubAR8:   execSubAR8,
	SubAN8:   execSubAN8,
	SubAHLR:  execSubAHLR,
	DecR8:    execDecR8,
	DecHLR:   execDecHLR,
	CpAR8:    execCpAR8,
	CpAN8:    execCpAN8,
	CpAHLR:   execCpAHLR,
	DecR16SP: execDecR16SP,

	AndAR8:  execAndAR8,
	AndAN8:  execAndAN8,
	AndAHLR: execAndAHLR,
	OrAR8:   execOrAR8,
	OrAN8:   execOrAN8,
	OrAHLR:  execOrAHLR,
	XorAR8:  execXorAR8,
	XorAN8:  execXorAN8,
	XorAHLR: execXorAHLR,
	Cpl:     execCpl,

	RotCA:   execRotCA,
	RotA:    execRotA,
	RotCR8:  execRotCR8,
	RotR8:   execRotR8,
	RotCHLR: execRotCHLR,
	RotHLR:  execRotHLR,
	SwapR8:  execSwapR8,
	SwapHLR: execSwapHLR,
	SlaR8:   execSlaR8,
	SraR8:   execSraR8,
	SrlR8:   execSrlR8,
	SlaHLR:  execSlaHLR,
	SraHLR:  execSraHLR,
	SrlHLR:  execSrlHLR,

	BitU3R8:  execBitU3R8,
	BitU3HLR: execBitU3HLR,
	ChgU3R8:  execChgU3R8,
	ChgU3HLR: execChgU3HLR,

	Daa:  execDaa,
	Sccf: execSccf,

	JpHL:      execJpHL,
	JpN16:     execJpN16,
	JpCCN16:   execJpCCN16,
	JrE8:      execJrE8,
	JrCCE8:    execJrCCE8,
	CallN16:   execCallN16,
	CallCCN16: execCallCCN16,
	RstU3:     execRstU3,
	Ret:       execRet,
	RetCC:     execRetCC,
	Reti:      execReti,

	Edi:  execEdi,
	Halt: execHalt,
	Stop: execStop,
}

// Operand decoding. The 3 bit register field maps 0-7 to B,C,D,E,H,L,(HL),A;
// slot 6 never reaches a register family.

var r8Fields = [8]Reg{RegB, RegC, RegD, RegE, RegH, RegL, regCount, RegA}

func r8(op Opcode, shift uint8) Reg {
	field := op.Encoding >> shift & 0b111
	if field == 6 {
		panic(fmt.Sprintf("opcode %s has no register in field %d", op, shift))
	}
	return r8Fields[field]
}

// srcR8 is the register in bits 0-2, dstR8 the one in bits 3-5.
func srcR8(op Opcode) Reg { return r8(op, 0) }
func dstR8(op Opcode) Reg { return r8(op, 3) }

// r16SP returns the value of the pair selected by bits 4-5: BC, DE, HL, SP.
func (c *CPU) r16SP(op Opcode) uint16 {
	if field := op.Encoding >> 4 & 0b11; field != 3 {
		return c.pair(Pair(field + 1))
	}
	return c.sp
}

func (c *CPU) setR16SP(op Opcode, value uint16) {
	if field := op.Encoding >> 4 & 0b11; field != 3 {
		c.setPair(Pair(field+1), value)
		return
	}
	c.sp = value
}

// r16AF maps bits 4-5 to BC, DE, HL, AF, the pairs PUSH and POP work on.
func r16AF(op Opcode) Pair {
	return [4]Pair{PairBC, PairDE, PairHL, PairAF}[op.Encoding>>4&0b11]
}

// condition evaluates the condition in bits 3-4: NZ, Z, NC, C.
func (c *CPU) condition(op Opcode) bool {
	switch op.Encoding >> 3 & 0b11 {
	case 0:
		return !c.flag(alu.FlagZ)
	case 1:
		return c.flag(alu.FlagZ)
	case 2:
		return !c.flag(alu.FlagC)
	default:
		return c.flag(alu.FlagC)
	}
}

// bitIndex is the bit number in bits 3-5 of BIT, RES and SET.
func bitIndex(op Opcode) uint8 {
	return op.Encoding >> 3 & 0b111
}

// useCarry reports whether bit 3 asks for the carry: ADC and SBC.
func (c *CPU) useCarry(op Opcode) bool {
	return bit.IsSet(3, op.Encoding) && c.flag(alu.FlagC)
}

// rotDir reads the direction in bit 3: left when clear.
func rotDir(op Opcode) alu.RotDir {
	if bit.IsSet(3, op.Encoding) {
		return alu.Right
	}
	return alu.Left
}

// hlDelta is +1 for (HL+) and -1 for (HL-), selected by bit 4.
func hlDelta(op Opcode) uint16 {
	if bit.IsSet(4, op.Encoding) {
		return 0xFFFF
	}
	return 1
}

func (c *CPU) setA(v uint8) { c.regs.Set(RegA, v) }

// loads

func execLdR8HLR(c *CPU, op Opcode, _ uint16) bool {
	c.regs.Set(dstR8(op), c.read(c.HL()))
	return false
}

func execLdAHLRU(c *CPU, op Opcode, _ uint16) bool {
	hl := c.HL()
	c.setA(c.read(hl))
	c.setPair(PairHL, hl+hlDelta(op))
	return false
}

func execLdAN8R(c *CPU, _ Opcode, n uint16) bool {
	c.setA(c.read(0xFF00 + n))
	return false
}

func execLdACR(c *CPU, _ Opcode, _ uint16) bool {
	c.setA(c.read(0xFF00 + uint16(c.C())))
	return false
}

func execLdAN16R(c *CPU, _ Opcode, n uint16) bool {
	c.setA(c.read(n))
	return false
}

func execLdABCR(c *CPU, _ Opcode, _ uint16) bool {
	c.setA(c.read(c.BC()))
	return false
}

func execLdADER(c *CPU, _ Opcode, _ uint16) bool {
	c.setA(c.read(c.DE()))
	return false
}

func execLdR8N8(c *CPU, op Opcode, n uint16) bool {
	c.regs.Set(dstR8(op), uint8(n))
	return false
}

func execLdR16SPN16(c *CPU, op Opcode, n uint16) bool {
	c.setR16SP(op, n)
	return false
}

func execPopR16(c *CPU, op Opcode, _ uint16) bool {
	c.setPair(r16AF(op), c.pop())
	return false
}

func execLdHLRR8(c *CPU, op Opcode, _ uint16) bool {
	c.write(c.HL(), c.regs.Get(srcR8(op)))
	return false
}

func execLdHLRUA(c *CPU, op Opcode, _ uint16) bool {
	hl := c.HL()
	c.write(hl, c.A())
	c.setPair(PairHL, hl+hlDelta(op))
	return false
}

func execLdN8RA(c *CPU, _ Opcode, n uint16) bool {
	c.write(0xFF00+n, c.A())
	return false
}

func execLdCRA(c *CPU, _ Opcode, _ uint16) bool {
	c.write(0xFF00+uint16(c.C()), c.A())
	return false
}

func execLdN16RA(c *CPU, _ Opcode, n uint16) bool {
	c.write(n, c.A())
	return false
}

func execLdBCRA(c *CPU, _ Opcode, _ uint16) bool {
	c.write(c.BC(), c.A())
	return false
}

func execLdDERA(c *CPU, _ Opcode, _ uint16) bool {
	c.write(c.DE(), c.A())
	return false
}

func execLdHLRN8(c *CPU, _ Opcode, n uint16) bool {
	c.write(c.HL(), uint8(n))
	return false
}

func execLdN16RSP(c *CPU, _ Opcode, n uint16) bool {
	c.write(n, bit.Low(c.sp))
	c.write(n+1, bit.High(c.sp))
	return false
}

func execLdR8R8(c *CPU, op Opcode, _ uint16) bool {
	c.regs.Set(dstR8(op), c.regs.Get(srcR8(op)))
	return false
}

func execLdSPHL(c *CPU, _ Opcode, _ uint16) bool {
	c.sp = c.HL()
	return false
}

func execPushR16(c *CPU, op Opcode, _ uint16) bool {
	c.push(c.pair(r16AF(op)))
	return false
}

// add, inc

func (c *CPU) addA(op Opcode, v uint8) {
	r := alu.Add(c.A(), v, c.useCarry(op))
	c.setA(r.Value8())
	c.combineFlags(r, flagALU, flagV0, flagALU, flagALU)
}

func execAddAR8(c *CPU, op Opcode, _ uint16) bool {
	c.addA(op, c.regs.Get(srcR8(op)))
	return false
}

func execAddAN8(c *CPU, op Opcode, n uint16) bool {
	c.addA(op, uint8(n))
	return false
}

func execAddAHLR(c *CPU, op Opcode, _ uint16) bool {
	c.addA(op, c.read(c.HL()))
	return false
}

func (c *CPU) inc(v uint8) uint8 {
	r := alu.Add(v, 1, false)
	c.combineFlags(r, flagALU, flagV0, flagALU, flagCPU)
	return r.Value8()
}

func execIncR8(c *CPU, op Opcode, _ uint16) bool {
	reg := dstR8(op)
	c.regs.Set(reg, c.inc(c.regs.Get(reg)))
	return false
}

func execIncHLR(c *CPU, _ Opcode, _ uint16) bool {
	hl := c.HL()
	c.write(hl, c.inc(c.read(hl)))
	return false
}

func execIncR16SP(c *CPU, op Opcode, _ uint16) bool {
	c.setR16SP(op, c.r16SP(op)+1)
	return false
}

func execAddHLR16SP(c *CPU, op Opcode, _ uint16) bool {
	r := alu.Add16H(c.HL(), c.r16SP(op))
	c.setPair(PairHL, r.Value())
	c.combineFlags(r, flagCPU, flagV0, flagALU, flagALU)
	return false
}

// execLdHLSPS8 runs ADD SP,e8 (bit 4 clear) and LD HL,SP+e8 (bit 4 set).
func execLdHLSPS8(c *CPU, op Opcode, n uint16) bool {
	r := alu.Add16L(c.sp, bit.SignExtend8(uint8(n)))
	if bit.IsSet(4, op.Encoding) {
		c.setPair(PairHL, r.Value())
	} else {
		c.sp = r.Value()
	}
	c.combineFlags(r, flagV0, flagV0, flagALU, flagALU)
	return false
}

// sub, dec, compare

func (c *CPU) subA(op Opcode, v uint8) {
	r := alu.Sub(c.A(), v, c.useCarry(op))
	c.setA(r.Value8())
	c.combineFlags(r, flagALU, flagV1, flagALU, flagALU)
}

func execSubAR8(c *CPU, op Opcode, _ uint16) bool {
	c.subA(op, c.regs.Get(srcR8(op)))
	return false
}

func execSubAN8(c *CPU, op Opcode, n uint16) bool {
	c.subA(op, uint8(n))
	return false
}

func execSubAHLR(c *CPU, op Opcode, _ uint16) bool {
	c.subA(op, c.read(c.HL()))
	return false
}

func (c *CPU) dec(v uint8) uint8 {
	r := alu.Sub(v, 1, false)
	c.combineFlags(r, flagALU, flagV1, flagALU, flagCPU)
	return r.Value8()
}

func execDecR8(c *CPU, op Opcode, _ uint16) bool {
	reg := dstR8(op)
	c.regs.Set(reg, c.dec(c.regs.Get(reg)))
	return false
}

func execDecHLR(c *CPU, _ Opcode, _ uint16) bool {
	hl := c.HL()
	c.write(hl, c.dec(c.read(hl)))
	return false
}

func (c *CPU) cp(v uint8) {
	c.combineFlags(alu.Sub(c.A(), v, false), flagALU, flagV1, flagALU, flagALU)
}

func execCpAR8(c *CPU, op Opcode, _ uint16) bool {
	c.cp(c.regs.Get(srcR8(op)))
	return false
}

func execCpAN8(c *CPU, _ Opcode, n uint16) bool {
	c.cp(uint8(n))
	return false
}

func execCpAHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.cp(c.read(c.HL()))
	return false
}

func execDecR16SP(c *CPU, op Opcode, _ uint16) bool {
	c.setR16SP(op, c.r16SP(op)-1)
	return false
}

// logic

func (c *CPU) logic(r alu.Result) {
	c.setA(r.Value8())
	c.combineFlags(r, flagALU, flagALU, flagALU, flagALU)
}

func execAndAR8(c *CPU, op Opcode, _ uint16) bool {
	c.logic(alu.And(c.A(), c.regs.Get(srcR8(op))))
	return false
}

func execAndAN8(c *CPU, _ Opcode, n uint16) bool {
	c.logic(alu.And(c.A(), uint8(n)))
	return false
}

func execAndAHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.logic(alu.And(c.A(), c.read(c.HL())))
	return false
}

func execOrAR8(c *CPU, op Opcode, _ uint16) bool {
	c.logic(alu.Or(c.A(), c.regs.Get(srcR8(op))))
	return false
}

func execOrAN8(c *CPU, _ Opcode, n uint16) bool {
	c.logic(alu.Or(c.A(), uint8(n)))
	return false
}

func execOrAHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.logic(alu.Or(c.A(), c.read(c.HL())))
	return false
}

func execXorAR8(c *CPU, op Opcode, _ uint16) bool {
	c.logic(alu.Xor(c.A(), c.regs.Get(srcR8(op))))
	return false
}

func execXorAN8(c *CPU, _ Opcode, n uint16) bool {
	c.logic(alu.Xor(c.A(), uint8(n)))
	return false
}

func execXorAHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.logic(alu.Xor(c.A(), c.read(c.HL())))
	return false
}

func execCpl(c *CPU, _ Opcode, _ uint16) bool {
	c.setA(bit.Complement8(c.A()))
	c.combineFlags(alu.Result{}, flagCPU, flagV1, flagV1, flagCPU)
	return false
}

// rotations and shifts

// RLCA, RRCA, RLA and RRA always clear Z.
func execRotCA(c *CPU, op Opcode, _ uint16) bool {
	r := alu.Rotate(rotDir(op), c.A())
	c.setA(r.Value8())
	c.combineFlags(r, flagV0, flagV0, flagV0, flagALU)
	return false
}

func execRotA(c *CPU, op Opcode, _ uint16) bool {
	r := alu.RotateThroughCarry(rotDir(op), c.A(), c.flag(alu.FlagC))
	c.setA(r.Value8())
	c.combineFlags(r, flagV0, flagV0, flagV0, flagALU)
	return false
}

// shiftR8 and shiftHLR apply a prefixed unary ALU operation to the register
// in bits 0-2 or to the byte at HL.
func (c *CPU) shiftR8(op Opcode, fn func(uint8) alu.Result) {
	reg := srcR8(op)
	r := fn(c.regs.Get(reg))
	c.regs.Set(reg, r.Value8())
	c.combineFlags(r, flagALU, flagALU, flagALU, flagALU)
}

func (c *CPU) shiftHLR(fn func(uint8) alu.Result) {
	hl := c.HL()
	r := fn(c.read(hl))
	c.write(hl, r.Value8())
	c.combineFlags(r, flagALU, flagALU, flagALU, flagALU)
}

func rotC(op Opcode) func(uint8) alu.Result {
	dir := rotDir(op)
	return func(v uint8) alu.Result { return alu.Rotate(dir, v) }
}

func (c *CPU) rot(op Opcode) func(uint8) alu.Result {
	dir, carry := rotDir(op), c.flag(alu.FlagC)
	return func(v uint8) alu.Result { return alu.RotateThroughCarry(dir, v, carry) }
}

func execRotCR8(c *CPU, op Opcode, _ uint16) bool {
	c.shiftR8(op, rotC(op))
	return false
}

func execRotR8(c *CPU, op Opcode, _ uint16) bool {
	c.shiftR8(op, c.rot(op))
	return false
}

func execRotCHLR(c *CPU, op Opcode, _ uint16) bool {
	c.shiftHLR(rotC(op))
	return false
}

func execRotHLR(c *CPU, op Opcode, _ uint16) bool {
	c.shiftHLR(c.rot(op))
	return false
}

func execSwapR8(c *CPU, op Opcode, _ uint16) bool {
	c.shiftR8(op, alu.Swap)
	return false
}

func execSwapHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.shiftHLR(alu.Swap)
	return false
}

func execSlaR8(c *CPU, op Opcode, _ uint16) bool {
	c.shiftR8(op, alu.ShiftLeft)
	return false
}

func execSraR8(c *CPU, op Opcode, _ uint16) bool {
	c.shiftR8(op, alu.ShiftRightArithmetic)
	return false
}

func execSrlR8(c *CPU, op Opcode, _ uint16) bool {
	c.shiftR8(op, alu.ShiftRightLogical)
	return false
}

func execSlaHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.shiftHLR(alu.ShiftLeft)
	return false
}

func execSraHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.shiftHLR(alu.ShiftRightArithmetic)
	return false
}

func execSrlHLR(c *CPU, _ Opcode, _ uint16) bool {
	c.shiftHLR(alu.ShiftRightLogical)
	return false
}

// bit tests and changes

func execBitU3R8(c *CPU, op Opcode, _ uint16) bool {
	r := alu.TestBit(c.regs.Get(srcR8(op)), bitIndex(op))
	c.combineFlags(r, flagALU, flagV0, flagV1, flagCPU)
	return false
}

func execBitU3HLR(c *CPU, op Opcode, _ uint16) bool {
	r := alu.TestBit(c.read(c.HL()), bitIndex(op))
	c.combineFlags(r, flagALU, flagV0, flagV1, flagCPU)
	return false
}

// SET has bit 6 set, RES has it clear.
func change(op Opcode, v uint8) uint8 {
	return bit.SetTo(bitIndex(op), v, bit.IsSet(6, op.Encoding))
}

func execChgU3R8(c *CPU, op Opcode, _ uint16) bool {
	reg := srcR8(op)
	c.regs.Set(reg, change(op, c.regs.Get(reg)))
	return false
}

func execChgU3HLR(c *CPU, op Opcode, _ uint16) bool {
	hl := c.HL()
	c.write(hl, change(op, c.read(hl)))
	return false
}

// flags

func execDaa(c *CPU, _ Opcode, _ uint16) bool {
	r := alu.BCDAdjust(c.A(), c.flag(alu.FlagN), c.flag(alu.FlagH), c.flag(alu.FlagC))
	c.setA(r.Value8())
	c.combineFlags(r, flagALU, flagCPU, flagV0, flagALU)
	return false
}

// execSccf runs SCF (bit 3 clear) and CCF (bit 3 set).
func execSccf(c *CPU, op Opcode, _ uint16) bool {
	carry := !bit.IsSet(3, op.Encoding) || !c.flag(alu.FlagC)
	c.combineFlags(alu.Result{}, flagCPU, flagV0, flagV0, constFlag(carry))
	return false
}

// jumps, calls, returns

func execJpHL(c *CPU, _ Opcode, _ uint16) bool {
	c.pc = c.HL()
	return false
}

func execJpN16(c *CPU, _ Opcode, n uint16) bool {
	c.pc = n
	return false
}

func execJpCCN16(c *CPU, op Opcode, n uint16) bool {
	if !c.condition(op) {
		return false
	}
	c.pc = n
	return true
}

func execJrE8(c *CPU, _ Opcode, n uint16) bool {
	c.pc += bit.SignExtend8(uint8(n))
	return false
}

func execJrCCE8(c *CPU, op Opcode, n uint16) bool {
	if !c.condition(op) {
		return false
	}
	c.pc += bit.SignExtend8(uint8(n))
	return true
}

func execCallN16(c *CPU, _ Opcode, n uint16) bool {
	c.push(c.pc)
	c.pc = n
	return false
}

func execCallCCN16(c *CPU, op Opcode, n uint16) bool {
	if !c.condition(op) {
		return false
	}
	c.push(c.pc)
	c.pc = n
	return true
}

func execRstU3(c *CPU, op Opcode, _ uint16) bool {
	c.push(c.pc)
	c.pc = uint16(op.Encoding & 0b0011_1000)
	return false
}

func execRet(c *CPU, _ Opcode, _ uint16) bool {
	c.pc = c.pop()
	return false
}

func execRetCC(c *CPU, op Opcode, _ uint16) bool {
	if !c.condition(op) {
		return false
	}
	c.pc = c.pop()
	return true
}

func execReti(c *CPU, _ Opcode, _ uint16) bool {
	c.pc = c.pop()
	c.ime = true
	c.eiPending = false
	return false
}

// control

// execEdi runs DI (bit 3 clear) and EI (bit 3 set).
func execEdi(c *CPU, op Opcode, _ uint16) bool {
	if bit.IsSet(3, op.Encoding) {
		if !c.ime {
			c.eiPending = true
		}
		return false
	}
	c.ime = false
	c.eiPending = false
	return false
}

func execHalt(c *CPU, _ Opcode, _ uint16) bool {
	c.state = StateHalted
	return false
}

func execStop(c *CPU, op Opcode, _ uint16) bool {
	panic(fmt.Sprintf("unimplemented opcode %s at 0x%04X", op, c.pc-uint16(op.Length)))
}
