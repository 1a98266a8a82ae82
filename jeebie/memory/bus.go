package memory

import (
	"errors"
	"fmt"
)

// Component is a device mapped in the address space. Read reports false for
// addresses the component does not own.
type Component interface {
	Read(address uint16) (byte, bool)
	Write(address uint16, value byte)
}

// Range is an inclusive address range.
type Range struct {
	Start, End uint16
}

// Contains reports whether the address falls in the range.
func (r Range) Contains(address uint16) bool {
	return address >= r.Start && address <= r.End
}

// Size returns the number of addresses in the range.
func (r Range) Size() int {
	return int(r.End) - int(r.Start) + 1
}

func (r Range) String() string {
	return fmt.Sprintf("0x%04X-0x%04X", r.Start, r.End)
}

var (
	ErrAddressConflict = errors.New("address already claimed")
	ErrInvalidRange    = errors.New("invalid address range")
	ErrTooManyOwners   = errors.New("too many components attached")
)

// maxComponents bounds the owner table, index 0 means unclaimed.
const maxComponents = 255

// Bus routes reads and writes to the component owning each address. Every
// address has at most one owner, checked when components are attached.
type Bus struct {
	owners     [0x10000]uint8
	components []Component
}

func NewBus() *Bus {
	return &Bus{components: []Component{nil}}
}

// Attach claims the given ranges for the component. Nothing is claimed if
// any of the ranges is invalid or already owned.
func (b *Bus) Attach(c Component, ranges ...Range) error {
	if len(ranges) == 0 {
		return fmt.Errorf("%w: no ranges for %T", ErrInvalidRange, c)
	}
	if len(b.components) > maxComponents {
		return ErrTooManyOwners
	}

	for i, r := range ranges {
		if r.Start > r.End {
			return fmt.Errorf("%w: %s", ErrInvalidRange, r)
		}
		for _, other := range ranges[:i] {
			if r.Start <= other.End && other.Start <= r.End {
				return fmt.Errorf("%w: %s overlaps %s for %T", ErrAddressConflict, r, other, c)
			}
		}
		for a := int(r.Start); a <= int(r.End); a++ {
			if owner := b.owners[a]; owner != 0 {
				return fmt.Errorf("%w: 0x%04X is owned by %T, cannot attach %T",
					ErrAddressConflict, a, b.components[owner], c)
			}
		}
	}

	index := uint8(len(b.components))
	b.components = append(b.components, c)
	for _, r := range ranges {
		for a := int(r.Start); a <= int(r.End); a++ {
			b.owners[a] = index
		}
	}
	return nil
}

// Owner returns the component that owns the address, if any.
func (b *Bus) Owner(address uint16) (Component, bool) {
	owner := b.owners[address]
	if owner == 0 {
		return nil, false
	}
	return b.components[owner], true
}

// Read returns the byte at the address. Reading an unclaimed address, or an
// address whose owner does not answer for it, panics.
func (b *Bus) Read(address uint16) byte {
	owner := b.owners[address]
	if owner == 0 {
		panic(fmt.Sprintf("read from unclaimed address 0x%04X", address))
	}
	value, ok := b.components[owner].Read(address)
	if !ok {
		panic(fmt.Sprintf("%T does not answer for its address 0x%04X", b.components[owner], address))
	}
	return value
}

// Write forwards the byte to the owner of the address. Writes to unclaimed
// addresses are dropped.
func (b *Bus) Write(address uint16, value byte) {
	if owner := b.owners[address]; owner != 0 {
		b.components[owner].Write(address, value)
	}
}

// ReadWord reads a little-endian 16 bit value.
func (b *Bus) ReadWord(address uint16) uint16 {
	return uint16(b.Read(address)) | uint16(b.Read(address+1))<<8
}

// OpenBus answers for addresses with no device behind them: reads return
// 0xFF and writes are ignored.
type OpenBus struct{}

func (OpenBus) Read(uint16) (byte, bool) { return 0xFF, true }

func (OpenBus) Write(uint16, byte) {}
