package cpu

import (
	"fmt"

	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/alu"
	"github.com/valerio/jeebie-core/jeebie/bit"
)

// Bus is the view of the address space the CPU executes against.
type Bus interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// RunState is the state of the CPU state machine.
type RunState uint8

const (
	// StateRunning fetches an instruction every time the CPU becomes active.
	StateRunning RunState = iota
	// StateHalted waits for a pending interrupt, with no next active cycle.
	StateHalted
)

func (s RunState) String() string {
	if s == StateHalted {
		return "halted"
	}
	return "running"
}

// interruptCycles is the cost of jumping to an interrupt handler.
const interruptCycles = 5

// TraceFunc is called before each executed instruction, with the address it
// was fetched from and its immediate operand (zero if it has none).
type TraceFunc func(pc uint16, op Opcode, operand uint16)

// Option configures a CPU.
type Option func(*CPU)

// WithTrace installs an instruction trace hook.
func WithTrace(fn TraceFunc) Option {
	return func(c *CPU) {
		c.trace = fn
	}
}

// CPU is the SM83 core. It owns the IF and IE registers and high RAM, and
// exposes them as a bus component through Read and Write.
type CPU struct {
	regs *RegisterFile[Reg]
	sp   uint16
	pc   uint16

	ime       bool
	eiPending bool // EI takes effect after the next instruction
	ie        uint8
	ifr       uint8
	hram      [addr.HRAMSize]uint8

	state           RunState
	nextActiveCycle uint64

	bus   Bus
	trace TraceFunc
}

// New returns a CPU with every register zeroed, ready to execute from
// address 0 (where the boot ROM lives).
func New(bus Bus, opts ...Option) *CPU {
	c := &CPU{
		regs: NewRegisterFile[Reg](int(regCount)),
		bus:  bus,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetPostBootState loads the register values the boot ROM leaves behind,
// for machines started without one.
func (c *CPU) SetPostBootState() {
	c.setPair(PairAF, 0x01B0)
	c.setPair(PairBC, 0x0013)
	c.setPair(PairDE, 0x00D8)
	c.setPair(PairHL, 0x014D)
	c.sp = 0xFFFE
	c.pc = 0x0100
}

// Cycle advances the CPU to the given cycle. It does nothing unless the
// CPU is due, or halted with an interrupt pending.
func (c *CPU) Cycle(cycle uint64) {
	pending := c.pendingInterrupts()

	if c.state == StateHalted {
		if pending == 0 {
			return
		}
		c.state = StateRunning
		c.nextActiveCycle = cycle
	}

	if cycle < c.nextActiveCycle {
		return
	}

	if c.ime && pending != 0 {
		c.serviceInterrupt(pending)
		c.nextActiveCycle = cycle + interruptCycles
		return
	}

	c.nextActiveCycle = cycle + c.step()
}

func (c *CPU) pendingInterrupts() uint8 {
	return c.ie & c.ifr & addr.InterruptMask
}

// serviceInterrupt jumps to the handler of the highest priority pending
// interrupt (lowest bit).
func (c *CPU) serviceInterrupt(pending uint8) {
	for i := addr.Interrupt(0); i < addr.InterruptCount; i++ {
		if pending&i.Mask() == 0 {
			continue
		}
		c.ime = false
		c.ifr &^= i.Mask()
		c.push(c.pc)
		c.pc = i.Vector()
		return
	}
}

// step executes the instruction at PC and returns the cycles it took.
func (c *CPU) step() uint64 {
	pc := c.pc
	op, operand := c.decode(pc)
	if c.trace != nil {
		c.trace(pc, op, operand)
	}

	enableAfter := c.eiPending
	c.pc = pc + uint16(op.Length)
	taken := families[op.Family](c, op, operand)

	if enableAfter && c.eiPending {
		c.eiPending = false
		c.ime = true
	}

	cycles := uint64(op.Cycles)
	if taken {
		cycles += uint64(op.ExtraCycles)
	}
	return cycles
}

// decode reads the opcode at pc and its immediate operand, if any.
func (c *CPU) decode(pc uint16) (Opcode, uint16) {
	b := c.bus.Read(pc)
	if b == PrefixByte {
		enc := c.bus.Read(pc + 1)
		op, ok := Lookup(Prefixed, enc)
		if !ok {
			panic(fmt.Sprintf("unknown opcode 0xCB%02X at 0x%04X", enc, pc))
		}
		return op, 0
	}

	op, ok := Lookup(Plain, b)
	if !ok {
		panic(fmt.Sprintf("unknown opcode 0x%02X at 0x%04X", b, pc))
	}

	var operand uint16
	switch op.Length {
	case 2:
		operand = uint16(c.bus.Read(pc + 1))
	case 3:
		operand = bit.Combine(c.bus.Read(pc+2), c.bus.Read(pc+1))
	}
	return op, operand
}

// RequestInterrupt raises the IF bit of the interrupt.
func (c *CPU) RequestInterrupt(interrupt addr.Interrupt) {
	c.ifr |= interrupt.Mask()
}

// Read implements the bus component contract for IF, IE and high RAM.
func (c *CPU) Read(address uint16) (byte, bool) {
	switch {
	case address == addr.IF:
		// unused bits read as 1
		return c.ifr | ^addr.InterruptMask, true
	case address == addr.IE:
		return c.ie, true
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		return c.hram[address-addr.HRAMStart], true
	}
	return 0, false
}

// Write implements the bus component contract for IF, IE and high RAM.
func (c *CPU) Write(address uint16, value byte) {
	switch {
	case address == addr.IF:
		c.ifr = value & addr.InterruptMask
	case address == addr.IE:
		c.ie = value
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		c.hram[address-addr.HRAMStart] = value
	}
}

func (c *CPU) read(address uint16) uint8 {
	return c.bus.Read(address)
}

func (c *CPU) write(address uint16, value byte) {
	c.bus.Write(address, value)
}

func (c *CPU) push(value uint16) {
	c.sp--
	c.write(c.sp, bit.High(value))
	c.sp--
	c.write(c.sp, bit.Low(value))
}

func (c *CPU) pop() uint16 {
	low := c.read(c.sp)
	c.sp++
	high := c.read(c.sp)
	c.sp++
	return bit.Combine(high, low)
}

func (c *CPU) pair(p Pair) uint16 {
	return bit.Combine(c.regs.Get(p.High()), c.regs.Get(p.Low()))
}

func (c *CPU) setPair(p Pair, value uint16) {
	low := bit.Low(value)
	if p == PairAF {
		// the low nibble of F does not exist
		low &= alu.FlagsMask
	}
	c.regs.Set(p.High(), bit.High(value))
	c.regs.Set(p.Low(), low)
}

func (c *CPU) flag(f alu.Flag) bool {
	return c.regs.TestBit(RegF, f)
}

// flagSrc selects where the new value of a flag comes from.
type flagSrc uint8

const (
	flagV0  flagSrc = iota // cleared
	flagV1                 // set
	flagALU                // taken from the ALU result
	flagCPU                // left unchanged
)

func constFlag(set bool) flagSrc {
	if set {
		return flagV1
	}
	return flagV0
}

// combineFlags writes F, picking each flag from the given source.
func (c *CPU) combineFlags(r alu.Result, z, n, h, cy flagSrc) {
	cur := c.regs.Get(RegF)
	var f uint8
	for _, s := range [...]struct {
		flag alu.Flag
		src  flagSrc
	}{{alu.FlagZ, z}, {alu.FlagN, n}, {alu.FlagH, h}, {alu.FlagC, cy}} {
		mask := s.flag.Mask()
		switch s.src {
		case flagV1:
			f |= mask
		case flagALU:
			f |= r.Flags() & mask
		case flagCPU:
			f |= cur & mask
		}
	}
	c.regs.Set(RegF, f)
}

// State is a snapshot of the CPU registers.
type State struct {
	A, F, B, C, D, E, H, L uint8
	SP, PC                 uint16
	IME                    bool
	IE, IF                 uint8
	Halted                 bool
}

func (s State) String() string {
	return fmt.Sprintf("AF=%02X%02X BC=%02X%02X DE=%02X%02X HL=%02X%02X SP=%04X PC=%04X IME=%t IE=%02X IF=%02X %s",
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L, s.SP, s.PC, s.IME, s.IE, s.IF, alu.FlagString(s.F))
}

// State returns a snapshot of the registers.
func (c *CPU) State() State {
	return State{
		A: c.A(), F: c.F(), B: c.B(), C: c.C(), D: c.D(), E: c.E(), H: c.H(), L: c.L(),
		SP: c.sp, PC: c.pc,
		IME: c.ime, IE: c.ie, IF: c.ifr,
		Halted: c.state == StateHalted,
	}
}

func (c *CPU) A() uint8 { return c.regs.Get(RegA) }
func (c *CPU) F() uint8 { return c.regs.Get(RegF) }
func (c *CPU) B() uint8 { return c.regs.Get(RegB) }
func (c *CPU) C() uint8 { return c.regs.Get(RegC) }
func (c *CPU) D() uint8 { return c.regs.Get(RegD) }
func (c *CPU) E() uint8 { return c.regs.Get(RegE) }
func (c *CPU) H() uint8 { return c.regs.Get(RegH) }
func (c *CPU) L() uint8 { return c.regs.Get(RegL) }

func (c *CPU) AF() uint16 { return c.pair(PairAF) }
func (c *CPU) BC() uint16 { return c.pair(PairBC) }
func (c *CPU) DE() uint16 { return c.pair(PairDE) }
func (c *CPU) HL() uint16 { return c.pair(PairHL) }

func (c *CPU) SP() uint16 { return c.sp }
func (c *CPU) PC() uint16 { return c.pc }

// SetPC moves the program counter, used by front-ends and tests.
func (c *CPU) SetPC(pc uint16) { c.pc = pc }

// SetSP moves the stack pointer, used by front-ends and tests.
func (c *CPU) SetSP(sp uint16) { c.sp = sp }

// IME reports whether the interrupt master enable flag is set.
func (c *CPU) IME() bool { return c.ime }

// IE returns the interrupt enable register.
func (c *CPU) IE() uint8 { return c.ie }

// IF returns the requested interrupt lines.
func (c *CPU) IF() uint8 { return c.ifr }

// Halted reports whether the CPU waits for an interrupt.
func (c *CPU) Halted() bool { return c.state == StateHalted }

// RunState returns the state of the CPU state machine.
func (c *CPU) RunState() RunState { return c.state }

// NextActiveCycle returns the cycle the CPU will next execute at. It is
// meaningless while halted.
func (c *CPU) NextActiveCycle() uint64 { return c.nextActiveCycle }
