package memory

import (
	"fmt"

	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/bit"
)

// JoypadKey represents a key on the Gameboy joypad
type JoypadKey uint8

const (
	JoypadRight JoypadKey = iota
	JoypadLeft
	JoypadUp
	JoypadDown
	JoypadA
	JoypadB
	JoypadSelect
	JoypadStart
)

var joypadKeyNames = [...]string{"Right", "Left", "Up", "Down", "A", "B", "Select", "Start"}

func (k JoypadKey) String() string {
	if int(k) >= len(joypadKeyNames) {
		return fmt.Sprintf("JoypadKey(%d)", uint8(k))
	}
	return joypadKeyNames[k]
}

// line returns the bit of the key in its group, and whether the group is
// the d-pad. The first four keys are the d-pad, in P1 bit order.
func (k JoypadKey) line() (index uint8, dpad bool) {
	if k > JoypadStart {
		panic(fmt.Sprintf("invalid joypad key: %d", uint8(k)))
	}
	return uint8(k) % 4, k < JoypadA
}

// Joypad implements the P1 register. 1 means released, 0 pressed.
type Joypad struct {
	buttons   uint8 // A, B, Select, Start in bits 0-3
	dpad      uint8 // Right, Left, Up, Down in bits 0-3
	selection uint8 // bits 4-5 as last written

	irq addr.InterruptRequester
}

// NewJoypad creates a joypad with every key released.
func NewJoypad(irq addr.InterruptRequester) *Joypad {
	return &Joypad{
		buttons:   0x0F,
		dpad:      0x0F,
		selection: 0x30,
		irq:       irq,
	}
}

// Read returns P1 for the current selection.
//
// Bits 4-5 select which group is mapped to bits 0-3, a group is selected
// when its bit is 0:
//   - bit 4 clear maps the d-pad
//   - bit 5 clear maps A, B, Select, Start
//   - both clear is an AND of the two groups
//   - neither is 0x0F
//
// Bits 6-7 are unused and read as 1.
func (j *Joypad) Read(address uint16) (byte, bool) {
	if address != addr.P1 {
		return 0, false
	}

	result := uint8(0b11000000) | j.selection

	selectDpad := !bit.IsSet(4, j.selection)
	selectButtons := !bit.IsSet(5, j.selection)

	switch {
	case selectButtons && !selectDpad:
		result |= j.buttons
	case selectDpad && !selectButtons:
		result |= j.dpad
	case selectButtons && selectDpad:
		result |= j.buttons & j.dpad
	default:
		result |= 0x0F
	}

	return result, true
}

// Write sets the selection, only bits 4-5 are writable.
func (j *Joypad) Write(address uint16, value byte) {
	if address == addr.P1 {
		j.selection = value & 0b00110000
	}
}

// Press marks the key as pressed and requests the Joypad interrupt on the
// high to low transition.
func (j *Joypad) Press(key JoypadKey) {
	index, dpad := key.line()
	group := &j.buttons
	if dpad {
		group = &j.dpad
	}

	if bit.IsSet(index, *group) {
		*group = bit.Clear(index, *group)
		j.irq.RequestInterrupt(addr.JoypadInterrupt)
	}
}

// Release marks the key as released.
func (j *Joypad) Release(key JoypadKey) {
	index, dpad := key.line()
	if dpad {
		j.dpad = bit.Set(index, j.dpad)
	} else {
		j.buttons = bit.Set(index, j.buttons)
	}
}

// Pressed reports whether the key is currently held.
func (j *Joypad) Pressed(key JoypadKey) bool {
	index, dpad := key.line()
	if dpad {
		return !bit.IsSet(index, j.dpad)
	}
	return !bit.IsSet(index, j.buttons)
}
