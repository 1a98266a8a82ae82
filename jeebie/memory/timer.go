package memory

import (
	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/bit"
)

// tacLookup maps TAC input clock select (bits 1–0) to the bit position
// of the 16‑bit internal divider used as the timer’s clock source.
// TIMA increments on falling edges of this bit while the timer is
// enabled (TAC bit 2 = 1).
//
// Mapping per Pan Docs (DMG):
//
//	00 -> bit 9  (4096 Hz)
//	01 -> bit 3  (262144 Hz)
//	10 -> bit 5  (65536 Hz)
//	11 -> bit 7  (16384 Hz)
var tacLookup = [4]uint16{9, 3, 5, 7}

// divStep is how much the divider advances per machine cycle.
const divStep = 4

// Timer implements DIV/TIMA/TMA/TAC.
type Timer struct {
	div      uint16 // DIV is the upper 8 bits
	lastEdge bool   // previous value of the watched signal

	tima uint8
	tma  uint8
	tac  uint8

	irq addr.InterruptRequester
}

// NewTimer creates a timer raising its interrupt through irq.
func NewTimer(irq addr.InterruptRequester) *Timer {
	return &Timer{irq: irq}
}

// SetSeed sets the internal divider, as left by the boot ROM.
func (t *Timer) SetSeed(seed uint16) {
	t.div = seed
	t.lastEdge = t.signal()
}

// Cycle advances the divider by one machine cycle.
func (t *Timer) Cycle(uint64) {
	t.div += divStep
	t.checkEdge()
}

// signal is the watched divider bit gated by the enable bit. A falling edge
// of it increments TIMA, so disabling the timer while the bit is high counts.
func (t *Timer) signal() bool {
	return bit.IsSet(2, t.tac) && bit.IsSet16(tacLookup[t.tac&0x03], t.div)
}

func (t *Timer) checkEdge() {
	s := t.signal()
	if t.lastEdge && !s {
		t.incrementTIMA()
	}
	t.lastEdge = s
}

func (t *Timer) incrementTIMA() {
	if t.tima == 0xFF {
		t.tima = t.tma
		t.irq.RequestInterrupt(addr.TimerInterrupt)
		return
	}
	t.tima++
}

func (t *Timer) Read(address uint16) (byte, bool) {
	switch address {
	case addr.DIV:
		return bit.High(t.div), true
	case addr.TIMA:
		return t.tima, true
	case addr.TMA:
		return t.tma, true
	case addr.TAC:
		return t.tac | 0xF8, true
	}
	return 0, false
}

func (t *Timer) Write(address uint16, value byte) {
	switch address {
	case addr.DIV:
		t.div = uint16(value) << 8
		t.checkEdge()
	case addr.TIMA:
		t.tima = value
	case addr.TMA:
		t.tma = value
	case addr.TAC:
		t.tac = value & 0x07
		t.checkEdge()
	}
}

// Ranges returns the timer registers.
func (t *Timer) Ranges() []Range {
	return []Range{{addr.DIV, addr.TAC}}
}

// DIV returns the full internal divider.
func (t *Timer) DIV() uint16 { return t.div }

func (t *Timer) TIMA() uint8 { return t.tima }

func (t *Timer) TMA() uint8 { return t.tma }

func (t *Timer) TAC() uint8 { return t.tac }
