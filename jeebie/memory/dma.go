package memory

import "github.com/valerio/jeebie-core/jeebie/addr"

// dmaLength is the number of bytes copied to OAM, one per cycle.
const dmaLength = addr.OAMSize

// Mapper is the view of the bus the DMA copies through.
type Mapper interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
}

// DMA implements the OAM DMA register. Writing 0xXX to 0xFF46 copies
// 0xXX00-0xXX9F to OAM, one byte per cycle starting on the next cycle.
type DMA struct {
	bus    Mapper
	source uint8
	index  int
	active bool
}

func NewDMA(bus Mapper) *DMA {
	return &DMA{bus: bus, index: dmaLength}
}

func (d *DMA) Read(address uint16) (byte, bool) {
	if address != addr.DMA {
		return 0, false
	}
	return d.source, true
}

func (d *DMA) Write(address uint16, value byte) {
	if address != addr.DMA {
		return
	}
	d.source = value
	d.index = 0
	d.active = true
}

// Cycle copies the next byte of a running transfer.
func (d *DMA) Cycle(uint64) {
	if !d.active {
		return
	}
	from := uint16(d.source)<<8 + uint16(d.index)
	d.bus.Write(addr.OAMStart+uint16(d.index), d.bus.Read(from))
	d.index++
	if d.index == dmaLength {
		d.active = false
	}
}

// Active reports whether a transfer is in progress.
func (d *DMA) Active() bool { return d.active }
