package jeebie

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/cpu"
	"github.com/valerio/jeebie-core/jeebie/memory"
	"github.com/valerio/jeebie-core/jeebie/serial"
	"github.com/valerio/jeebie-core/jeebie/video"
)

// CyclesPerFrame is the length of a frame in machine cycles, 154 lines of
// 114 cycles.
const CyclesPerFrame = 154 * 114

// timerSeed is the value of the internal divider when the boot ROM hands
// over to the cartridge.
const timerSeed = 0xABCC

var (
	// ErrRewind is returned when asked to run to a cycle that already passed.
	ErrRewind = errors.New("cannot run backwards")
	// ErrContractViolation wraps a panic raised while emulating, which
	// leaves the machine in an unknown state.
	ErrContractViolation = errors.New("contract violation")
)

// Clocked is implemented by every component driven by the scheduler.
type Clocked interface {
	Cycle(cycle uint64)
}

// Cartridge is the component mapped on the ROM and external RAM areas.
type Cartridge interface {
	memory.Component
	Ranges() []memory.Range
}

// unmapped I/O registers, answered by the open bus
var openBusRanges = []memory.Range{
	{Start: addr.UnusableStart, End: addr.UnusableEnd},
	{Start: 0xFF03, End: 0xFF03},
	{Start: 0xFF08, End: 0xFF0E},
	{Start: 0xFF4C, End: 0xFF4F},
	{Start: 0xFF51, End: addr.IOEnd},
}

type config struct {
	bootROM    []uint8
	logger     *slog.Logger
	trace      cpu.TraceFunc
	serialOpts []serial.LogSinkOption
}

// Option configures a GameBoy.
type Option func(*config)

// WithBootROM maps a 256 byte boot ROM over the cartridge. Without one the
// machine starts at 0x0100 in the state the boot ROM would leave.
func WithBootROM(rom []uint8) Option {
	return func(c *config) { c.bootROM = rom }
}

// WithLogger sets the logger for the machine and its components.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithTrace installs an instruction trace hook on the CPU.
func WithTrace(fn cpu.TraceFunc) Option {
	return func(c *config) { c.trace = fn }
}

// WithSerial configures the serial port.
func WithSerial(opts ...serial.LogSinkOption) Option {
	return func(c *config) { c.serialOpts = append(c.serialOpts, opts...) }
}

// GameBoy wires the components of a DMG on a bus and drives them one
// machine cycle at a time.
type GameBoy struct {
	bus    *memory.Bus
	cpu    *cpu.CPU
	timer  *memory.Timer
	lcd    *video.LCD
	dma    *memory.DMA
	serial *serial.LogSink
	joypad *memory.Joypad
	wram   *memory.RAMController
	cart   Cartridge

	clocked []Clocked
	cycle   uint64
	failure error
	logger  *slog.Logger
}

// New builds a machine around the cartridge.
func New(cart Cartridge, opts ...Option) (*GameBoy, error) {
	cfg := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	bus := memory.NewBus()
	gb := &GameBoy{
		bus:    bus,
		cart:   cart,
		logger: cfg.logger,
	}

	var cpuOpts []cpu.Option
	if cfg.trace != nil {
		cpuOpts = append(cpuOpts, cpu.WithTrace(cfg.trace))
	}
	gb.cpu = cpu.New(bus, cpuOpts...)
	gb.timer = memory.NewTimer(gb.cpu)
	gb.lcd = video.NewLCD(gb.cpu)
	gb.dma = memory.NewDMA(bus)
	gb.joypad = memory.NewJoypad(gb.cpu)
	gb.serial = serial.NewLogSink(gb.cpu, append([]serial.LogSinkOption{serial.WithLogger(cfg.logger)}, cfg.serialOpts...)...)
	gb.wram = memory.NewRAMController(memory.NewRAM(addr.WRAMSize), addr.WRAMStart,
		memory.Range{Start: addr.EchoStart, End: addr.EchoEnd})
	audio := memory.NewRAMController(memory.NewRAM(int(addr.AudioEnd-addr.AudioStart)+1), addr.AudioStart)

	if err := gb.attach(cart, cfg, audio); err != nil {
		return nil, err
	}

	gb.clocked = []Clocked{gb.cpu, gb.dma, gb.timer, gb.lcd, gb.serial}

	if cfg.bootROM == nil {
		gb.cpu.SetPostBootState()
		gb.timer.SetSeed(timerSeed)
		gb.lcd.SetPostBootState()
	}

	if h, ok := cart.(interface{ Header() memory.Header }); ok {
		header := h.Header()
		gb.logger.Info("cartridge loaded",
			"title", header.Title,
			"mbc", header.MBC,
			"rom_banks", header.ROMBanks,
			"ram_banks", header.RAMBanks,
			"battery", header.Battery,
			"checksum_valid", header.ChecksumValid)
	}
	return gb, nil
}

type attachment struct {
	name   string
	c      memory.Component
	ranges []memory.Range
}

func (gb *GameBoy) attach(cart Cartridge, cfg config, audio *memory.RAMController) error {
	open := slices.Clone(openBusRanges)
	cartRanges := cart.Ranges()

	attachments := []attachment{
		{"cpu", gb.cpu, []memory.Range{{Start: addr.IF, End: addr.IF}, {Start: addr.HRAMStart, End: addr.IE}}},
		{"timer", gb.timer, gb.timer.Ranges()},
		{"lcd", gb.lcd, gb.lcd.Ranges()},
		{"dma", gb.dma, []memory.Range{{Start: addr.DMA, End: addr.DMA}}},
		{"joypad", gb.joypad, []memory.Range{{Start: addr.P1, End: addr.P1}}},
		{"serial", gb.serial, gb.serial.Ranges()},
		{"wram", gb.wram, gb.wram.Ranges()},
		{"audio", audio, audio.Ranges()},
	}

	if cfg.bootROM != nil {
		boot, err := memory.NewBootROMController(cfg.bootROM, cart, cfg.logger)
		if err != nil {
			return err
		}
		attachments = append(attachments, attachment{"boot rom", boot, boot.Ranges()})
		cartRanges = subtractRange(cartRanges, memory.Range{Start: addr.BootROMStart, End: addr.BootROMEnd})
	} else {
		open = append(open, memory.Range{Start: addr.BootROMDisable, End: addr.BootROMDisable})
	}

	attachments = append(attachments,
		attachment{"cartridge", cart, cartRanges},
		attachment{"open bus", memory.OpenBus{}, open},
	)

	for _, a := range attachments {
		if err := gb.bus.Attach(a.c, a.ranges...); err != nil {
			return fmt.Errorf("attaching %s: %w", a.name, err)
		}
	}
	return nil
}

// subtractRange removes cut from every range.
func subtractRange(ranges []memory.Range, cut memory.Range) []memory.Range {
	var out []memory.Range
	for _, r := range ranges {
		if r.End < cut.Start || r.Start > cut.End {
			out = append(out, r)
			continue
		}
		if r.Start < cut.Start {
			out = append(out, memory.Range{Start: r.Start, End: cut.Start - 1})
		}
		if r.End > cut.End {
			out = append(out, memory.Range{Start: cut.End + 1, End: r.End})
		}
	}
	return out
}

// RunUntil advances every component up to, and excluding, the given cycle.
//
// A panic raised by a component stops the machine: it is returned wrapped
// in ErrContractViolation, by this call and every later one.
func (gb *GameBoy) RunUntil(cycle uint64) (err error) {
	if gb.failure != nil {
		return gb.failure
	}
	if cycle < gb.cycle {
		return fmt.Errorf("%w: at cycle %d, asked for %d", ErrRewind, gb.cycle, cycle)
	}

	defer func() {
		if r := recover(); r != nil {
			gb.failure = fmt.Errorf("%w at cycle %d: %v", ErrContractViolation, gb.cycle, r)
			gb.logger.Error("emulation stopped", "cycle", gb.cycle, "pc", fmt.Sprintf("0x%04X", gb.cpu.PC()), "error", r)
			err = gb.failure
		}
	}()

	for ; gb.cycle < cycle; gb.cycle++ {
		for _, c := range gb.clocked {
			c.Cycle(gb.cycle)
		}
	}
	return nil
}

// RunFrame runs for the length of one frame.
func (gb *GameBoy) RunFrame() error {
	return gb.RunUntil(gb.cycle + CyclesPerFrame)
}

// Cycles returns the next cycle to run, which is the number of cycles run so far.
func (gb *GameBoy) Cycles() uint64 { return gb.cycle }

// Err returns the failure that stopped the machine, if any.
func (gb *GameBoy) Err() error { return gb.failure }

func (gb *GameBoy) CPU() *cpu.CPU { return gb.cpu }
func (gb *GameBoy) Timer() *memory.Timer { return gb.timer }
func (gb *GameBoy) Joypad() *memory.Joypad { return gb.joypad }
func (gb *GameBoy) LCD() *video.LCD { return gb.lcd }
func (gb *GameBoy) Bus() *memory.Bus { return gb.bus }
func (gb *GameBoy) Serial() *serial.LogSink { return gb.serial }
func (gb *GameBoy) DMA() *memory.DMA { return gb.dma }
func (gb *GameBoy) WRAM() *memory.RAMController { return gb.wram }
func (gb *GameBoy) Cartridge() Cartridge { return gb.cart }

// Frame returns the last complete frame.
func (gb *GameBoy) Frame() *video.Image { return gb.lcd.Frame() }

// Press and Release forward key changes to the joypad. They must be called
// from the goroutine running the machine.
func (gb *GameBoy) Press(key memory.JoypadKey) { gb.joypad.Press(key) }
func (gb *GameBoy) Release(key memory.JoypadKey) { gb.joypad.Release(key) }
