package memory

import "github.com/valerio/jeebie-core/jeebie/addr"

const (
	romBankSize = 0x4000
	ramBankSize = 0x2000
)

// MBC is a memory bank controller, it decodes the ROM and external RAM
// areas of a cartridge.
type MBC interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	// RAM returns the external RAM, nil when there is none.
	RAM() []byte
}

// NoMBC maps 32KB of ROM directly at 0x0000-0x7FFF, with an optional single
// bank of external RAM.
type NoMBC struct {
	rom []byte
	ram []byte
}

func NewNoMBC(rom []byte, ramBanks int) *NoMBC {
	return &NoMBC{
		rom: rom,
		ram: newExternalRAM(min(ramBanks, 1)),
	}
}

func (m *NoMBC) Read(address uint16) byte {
	switch {
	case address <= addr.ROMEnd:
		if int(address) >= len(m.rom) {
			return 0xFF
		}
		return m.rom[address]
	case address >= addr.ExtRAMStart && address <= addr.ExtRAMEnd:
		offset := int(address - addr.ExtRAMStart)
		if offset >= len(m.ram) {
			return 0xFF
		}
		return m.ram[offset]
	}
	return 0xFF
}

// Write only reaches the external RAM, ROM is read only.
func (m *NoMBC) Write(address uint16, value byte) {
	if address < addr.ExtRAMStart || address > addr.ExtRAMEnd {
		return
	}
	if offset := int(address - addr.ExtRAMStart); offset < len(m.ram) {
		m.ram[offset] = value
	}
}

func (m *NoMBC) RAM() []byte { return m.ram }

// MBC1 is the first and most common MBC chip. Features include:
// - Supports up to 2MB ROM (125 16KB banks)
// - Up to 32KB RAM (4 8KB banks)
// - Bank 0 always mapped to 0x0000-0x3FFF
// - Switchable ROM bank at 0x4000-0x7FFF
// - Optional RAM banking at 0xA000-0xBFFF
// - Two banking modes:
//   - Mode 0 (ROM): Allows access to full ROM but only 8KB RAM
//   - Mode 1 (RAM): Restricts ROM banking but allows full RAM access
type MBC1 struct {
	rom         []byte
	ram         []byte
	romBank     uint8
	ramBank     uint8
	ramEnabled  bool
	bankingMode uint8
}

func NewMBC1(rom []byte, ramBanks int) *MBC1 {
	return &MBC1{
		rom:     rom,
		ram:     newExternalRAM(ramBanks),
		romBank: 1,
	}
}

func newExternalRAM(banks int) []byte {
	if banks <= 0 {
		return nil
	}
	return make([]byte, banks*ramBankSize)
}

func (m *MBC1) Read(address uint16) byte {
	switch {
	case address < romBankSize:
		return m.rom[address]
	case address <= addr.ROMEnd:
		offset := (int(m.romBank) * romBankSize) % len(m.rom)
		return m.rom[offset+int(address-romBankSize)]
	case address >= addr.ExtRAMStart && address <= addr.ExtRAMEnd:
		if !m.ramEnabled || len(m.ram) == 0 {
			return 0xFF
		}
		return m.ram[m.ramOffset(address)]
	}
	return 0xFF
}

func (m *MBC1) Write(address uint16, value byte) {
	switch {
	case address <= 0x1FFF:
		m.ramEnabled = value&0x0F == 0x0A
	case address <= 0x3FFF:
		// lower 5 bits of the ROM bank, 0 selects 1
		bank := value & 0x1F
		if bank == 0 {
			bank = 1
		}
		m.romBank = m.romBank&0x60 | bank
	case address <= 0x5FFF:
		if m.bankingMode == 0 {
			m.romBank = m.romBank&0x1F | (value&0x03)<<5
		} else {
			m.ramBank = value & 0x03
		}
	case address <= addr.ROMEnd:
		m.bankingMode = value & 0x01
		if m.bankingMode == 1 {
			m.romBank &= 0x1F
		} else {
			m.ramBank = 0
		}
	case address >= addr.ExtRAMStart && address <= addr.ExtRAMEnd:
		if m.ramEnabled && len(m.ram) > 0 {
			m.ram[m.ramOffset(address)] = value
		}
	}
}

func (m *MBC1) ramOffset(address uint16) int {
	offset := (int(m.ramBank) * ramBankSize) % len(m.ram)
	return offset + int(address-addr.ExtRAMStart)
}

func (m *MBC1) RAM() []byte { return m.ram }

// ROMBank returns the bank mapped at 0x4000-0x7FFF, before wrapping to the ROM size.
func (m *MBC1) ROMBank() uint8 { return m.romBank }

// RAMBank returns the selected external RAM bank.
func (m *MBC1) RAMBank() uint8 { return m.ramBank }
