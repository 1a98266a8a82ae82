package memory

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/valerio/jeebie-core/jeebie/addr"
)

var ErrBootROMSize = errors.New("invalid boot ROM size")

// BootROMController overlays the boot ROM on the first 256 bytes of the
// cartridge until a non zero value is written to 0xFF50. After that, reads
// fall through to the cartridge. Writes always reach the cartridge, since
// they drive its bank controller.
type BootROMController struct {
	rom     []byte
	cart    Component
	enabled bool
	logger  *slog.Logger
}

func NewBootROMController(rom []byte, cart Component, logger *slog.Logger) (*BootROMController, error) {
	if len(rom) != addr.BootROMSize {
		return nil, fmt.Errorf("%w: %d bytes, want %d", ErrBootROMSize, len(rom), addr.BootROMSize)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &BootROMController{
		rom:     append([]byte(nil), rom...),
		cart:    cart,
		enabled: true,
		logger:  logger,
	}, nil
}

// Ranges returns the overlay and the disable latch.
func (b *BootROMController) Ranges() []Range {
	return []Range{
		{addr.BootROMStart, addr.BootROMEnd},
		{addr.BootROMDisable, addr.BootROMDisable},
	}
}

// Enabled reports whether the boot ROM is still mapped.
func (b *BootROMController) Enabled() bool { return b.enabled }

func (b *BootROMController) Read(address uint16) (byte, bool) {
	switch {
	case address == addr.BootROMDisable:
		return 0xFF, true
	case address > addr.BootROMEnd:
		return 0, false
	case b.enabled:
		return b.rom[address], true
	default:
		return b.cart.Read(address)
	}
}

func (b *BootROMController) Write(address uint16, value byte) {
	switch {
	case address == addr.BootROMDisable:
		if value != 0 && b.enabled {
			b.enabled = false
			b.logger.Debug("boot ROM disabled")
		}
	case address <= addr.BootROMEnd:
		b.cart.Write(address, value)
	}
}
