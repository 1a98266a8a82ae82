package addr

import "fmt"

// Interrupt identifies one of the five interrupt lines, by its bit position
// in the IE and IF registers. Lower positions have higher priority.
type Interrupt uint8

const (
	// VBlankInterrupt is fired when the LCD has completed a frame.
	VBlankInterrupt Interrupt = iota
	// LCDSTATInterrupt is fired based on one of the conditions in the LCDSTAT register.
	LCDSTATInterrupt
	// TimerInterrupt is fired when the timer register (TIMA) overflows (i.e. goes from 0xFF to 0x00).
	TimerInterrupt
	// SerialInterrupt is fired when a serial transfer has completed on the game link port.
	SerialInterrupt
	// JoypadInterrupt is fired when any of the keypad inputs goes from high to low.
	JoypadInterrupt

	// InterruptCount is the number of interrupt lines.
	InterruptCount = 5
)

// InterruptMask covers the IE/IF bits that map to an interrupt line.
const InterruptMask uint8 = 0x1F

const baseInterruptVector uint16 = 0x40

var interruptNames = [InterruptCount]string{"VBlank", "LCDSTAT", "Timer", "Serial", "Joypad"}

// Index returns the bit position of the interrupt in IE/IF.
func (i Interrupt) Index() uint8 {
	return uint8(i)
}

// Mask returns the IE/IF mask of the interrupt.
func (i Interrupt) Mask() uint8 {
	return 1 << i
}

// Vector returns the address the CPU jumps to when serving the interrupt.
// Handlers are 8 bytes apart: 0x40, 0x48, 0x50, 0x58, 0x60.
func (i Interrupt) Vector() uint16 {
	if i >= InterruptCount {
		panic(fmt.Sprintf("invalid interrupt: %d", uint8(i)))
	}
	return baseInterruptVector + uint16(i)*8
}

func (i Interrupt) String() string {
	if i >= InterruptCount {
		return fmt.Sprintf("Interrupt(%d)", uint8(i))
	}
	return interruptNames[i]
}

// InterruptRequester is implemented by whatever owns the IF register.
// Peripherals use it to raise their interrupt line.
type InterruptRequester interface {
	RequestInterrupt(interrupt Interrupt)
}
