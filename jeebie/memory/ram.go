package memory

import "fmt"

// RAM is a plain byte store addressed by offset.
type RAM struct {
	data []byte
}

func NewRAM(size int) *RAM {
	if size <= 0 {
		panic(fmt.Sprintf("invalid RAM size: %d", size))
	}
	return &RAM{data: make([]byte, size)}
}

func (r *RAM) Size() int { return len(r.data) }

func (r *RAM) Get(offset int) byte { return r.data[offset] }

func (r *RAM) Set(offset int, value byte) { r.data[offset] = value }

// Bytes exposes the backing slice.
func (r *RAM) Bytes() []byte { return r.data }

// RAMController maps a RAM at a base address. Mirrors map further ranges
// onto the same bytes, starting again from offset 0 (echo RAM).
type RAMController struct {
	ram     *RAM
	base    Range
	mirrors []Range
}

func NewRAMController(ram *RAM, start uint16, mirrors ...Range) *RAMController {
	end := int(start) + ram.Size() - 1
	if end > 0xFFFF {
		panic(fmt.Sprintf("RAM of %d bytes does not fit at 0x%04X", ram.Size(), start))
	}
	return &RAMController{
		ram:     ram,
		base:    Range{start, uint16(end)},
		mirrors: mirrors,
	}
}

// Ranges returns every range the controller answers for, to be attached on a bus.
func (c *RAMController) Ranges() []Range {
	return append([]Range{c.base}, c.mirrors...)
}

func (c *RAMController) RAM() *RAM { return c.ram }

func (c *RAMController) offset(address uint16) (int, bool) {
	if c.base.Contains(address) {
		return int(address - c.base.Start), true
	}
	for _, m := range c.mirrors {
		if m.Contains(address) {
			return int(address-m.Start) % c.ram.Size(), true
		}
	}
	return 0, false
}

func (c *RAMController) Read(address uint16) (byte, bool) {
	offset, ok := c.offset(address)
	if !ok {
		return 0, false
	}
	return c.ram.Get(offset), true
}

func (c *RAMController) Write(address uint16, value byte) {
	if offset, ok := c.offset(address); ok {
		c.ram.Set(offset, value)
	}
}
