package memory

import (
	"errors"
	"fmt"

	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/bit"
)

const titleLength = 16

const (
	entryPointAddress     = 0x100
	titleAddress          = 0x134
	cgbFlagAddress        = 0x143
	cartridgeTypeAddress  = 0x147
	romSizeAddress        = 0x148
	ramSizeAddress        = 0x149
	versionNumberAddress  = 0x14C
	headerChecksumAddress = 0x14D
	globalChecksumAddress = 0x14E
	headerEnd             = 0x150

	maxROMSizeCode = 0x08
)

var (
	ErrROMTooSmall          = errors.New("ROM image is smaller than the cartridge header")
	ErrUnsupportedCartridge = errors.New("unsupported cartridge type")
	ErrInvalidROMSize       = errors.New("invalid ROM size code")
	ErrInvalidRAMSize       = errors.New("invalid RAM size code")
	ErrNoBattery            = errors.New("cartridge has no battery backed RAM")
	ErrSnapshotSize         = errors.New("snapshot size does not match cartridge RAM")
)

// MBCType is the bank controller family of a cartridge.
type MBCType uint8

const (
	NoMBCType MBCType = iota
	MBC1Type
)

func (t MBCType) String() string {
	switch t {
	case NoMBCType:
		return "ROM"
	case MBC1Type:
		return "MBC1"
	}
	return fmt.Sprintf("MBCType(%d)", uint8(t))
}

type cartridgeKind struct {
	mbc     MBCType
	ram     bool
	battery bool
}

// cartridgeKinds covers the cartridge type byte values this core can run.
var cartridgeKinds = map[uint8]cartridgeKind{
	0x00: {NoMBCType, false, false},
	0x01: {MBC1Type, false, false},
	0x02: {MBC1Type, true, false},
	0x03: {MBC1Type, true, true},
	0x08: {NoMBCType, true, false},
	0x09: {NoMBCType, true, true},
}

// ramBanksBySize maps the RAM size code to 8KB banks. Code 1 is an unused
// 2KB size, mapped to a whole bank.
var ramBanksBySize = map[uint8]int{0: 0, 1: 1, 2: 1, 3: 4, 4: 16, 5: 8}

// Header is the cartridge metadata stored at 0x0100-0x014F.
type Header struct {
	Title          string
	CartridgeType  uint8
	MBC            MBCType
	ROMBanks       int
	RAMBanks       int
	Battery        bool
	CGBFlag        uint8
	Version        uint8
	HeaderChecksum uint8
	GlobalChecksum uint16
	ChecksumValid  bool
}

// ParseHeader decodes the header of a ROM image.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerEnd {
		return Header{}, fmt.Errorf("%w: %d bytes", ErrROMTooSmall, len(data))
	}

	cartType := data[cartridgeTypeAddress]
	kind, ok := cartridgeKinds[cartType]
	if !ok {
		return Header{}, fmt.Errorf("%w: 0x%02X", ErrUnsupportedCartridge, cartType)
	}

	romCode := data[romSizeAddress]
	if romCode > maxROMSizeCode {
		return Header{}, fmt.Errorf("%w: 0x%02X", ErrInvalidROMSize, romCode)
	}

	ramBanks := 0
	if kind.ram {
		banks, ok := ramBanksBySize[data[ramSizeAddress]]
		if !ok {
			return Header{}, fmt.Errorf("%w: 0x%02X", ErrInvalidRAMSize, data[ramSizeAddress])
		}
		ramBanks = banks
	}

	h := Header{
		Title:          cleanGameboyTitle(data[titleAddress : titleAddress+titleLength]),
		CartridgeType:  cartType,
		MBC:            kind.mbc,
		ROMBanks:       2 << romCode,
		RAMBanks:       ramBanks,
		Battery:        kind.battery && ramBanks > 0,
		CGBFlag:        data[cgbFlagAddress],
		Version:        data[versionNumberAddress],
		HeaderChecksum: data[headerChecksumAddress],
		GlobalChecksum: bit.Combine(data[globalChecksumAddress], data[globalChecksumAddress+1]),
	}
	h.ChecksumValid = headerChecksum(data) == h.HeaderChecksum

	// The CGB flag shares the last title byte.
	if bit.IsSet(7, h.CGBFlag) {
		h.Title = cleanGameboyTitle(data[titleAddress:cgbFlagAddress])
	}

	return h, nil
}

// Snapshotter is implemented by devices with state that survives power off.
type Snapshotter interface {
	// Save returns the persistent state, false when there is none.
	Save() ([]byte, bool)
	Load(data []byte) error
}

// Cartridge maps a ROM image and its bank controller at 0x0000-0x7FFF and
// 0xA000-0xBFFF.
type Cartridge struct {
	header Header
	mbc    MBC
}

// NewCartridge parses the header and builds the bank controller. The image is
// padded to the size the header declares.
func NewCartridge(data []byte) (*Cartridge, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	rom := make([]byte, max(header.ROMBanks*romBankSize, len(data)))
	copy(rom, data)
	for i := len(data); i < len(rom); i++ {
		rom[i] = 0xFF
	}

	c := &Cartridge{header: header}
	switch header.MBC {
	case MBC1Type:
		c.mbc = NewMBC1(rom, header.RAMBanks)
	default:
		c.mbc = NewNoMBC(rom, header.RAMBanks)
	}
	return c, nil
}

func (c *Cartridge) Header() Header { return c.header }

func (c *Cartridge) MBC() MBC { return c.mbc }

// Ranges returns the areas the cartridge answers for.
func (c *Cartridge) Ranges() []Range {
	return []Range{
		{addr.ROMStart, addr.ROMEnd},
		{addr.ExtRAMStart, addr.ExtRAMEnd},
	}
}

func (c *Cartridge) owns(address uint16) bool {
	return address <= addr.ROMEnd || (address >= addr.ExtRAMStart && address <= addr.ExtRAMEnd)
}

func (c *Cartridge) Read(address uint16) (byte, bool) {
	if !c.owns(address) {
		return 0, false
	}
	return c.mbc.Read(address), true
}

func (c *Cartridge) Write(address uint16, value byte) {
	if c.owns(address) {
		c.mbc.Write(address, value)
	}
}

// Save returns a copy of the battery backed RAM.
func (c *Cartridge) Save() ([]byte, bool) {
	if !c.header.Battery {
		return nil, false
	}
	return append([]byte(nil), c.mbc.RAM()...), true
}

// Load restores the battery backed RAM from a previous Save.
func (c *Cartridge) Load(data []byte) error {
	if !c.header.Battery {
		return ErrNoBattery
	}
	ram := c.mbc.RAM()
	if len(data) != len(ram) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrSnapshotSize, len(data), len(ram))
	}
	copy(ram, data)
	return nil
}

// EntryPoint is where execution starts after the boot ROM.
func (c *Cartridge) EntryPoint() uint16 { return entryPointAddress }
