package video

import (
	"fmt"

	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/bit"
	"github.com/valerio/jeebie-core/jeebie/memory"
)

// Mode is the value of the two low bits of STAT.
type Mode uint8

const (
	HBlankMode Mode = iota
	VBlankMode
	OAMScanMode
	TransferMode
)

func (m Mode) String() string {
	switch m {
	case HBlankMode:
		return "HBlank"
	case VBlankMode:
		return "VBlank"
	case OAMScanMode:
		return "OAMScan"
	case TransferMode:
		return "Transfer"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// line cadence, in machine cycles (a dot is a quarter of a cycle)
const (
	oamScanlineCycles  = 80 / 4
	vramScanlineCycles = 172 / 4
	scanlineCycles     = 456 / 4

	vblankLine = ScreenHeight
	frameLines = 154

	backgroundSize = 256
)

// LCDC (LCD Control) Register bit values
// Bit 7 - LCD Display Enable (0=Off, 1=On)
// Bit 6 - Window Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 5 - Window Display Enable (0=Off, 1=On)
// Bit 4 - BG & Window Tile Data Select (0=8800-97FF, 1=8000-8FFF)
// Bit 3 - BG Tile Map Display Select (0=9800-9BFF, 1=9C00-9FFF)
// Bit 2 - OBJ (Sprite) Size (0=8x8, 1=8x16)
// Bit 1 - OBJ (Sprite) Display Enable (0=Off, 1=On)
// Bit 0 - BG Display (0=Off, 1=On)
type lcdcFlag uint8

const (
	bgDisplay lcdcFlag = iota
	spriteDisplayEnable
	spriteSize
	bgTileMapDisplaySelect
	bgWindowTileDataSelect
	windowDisplayEnable
	windowTileMapSelect
	lcdDisplayEnable
)

// STAT interrupt sources
const (
	statHBlankSource    = 3
	statVBlankSource    = 4
	statOAMSource       = 5
	statLYCSource       = 6
	statCoincidence     = 2
	statWritableMask    = 0x78
	statUnusedBit uint8 = 0x80
)

// LCD is the video unit: it owns VRAM, OAM and the LCD registers, walks
// the 154 lines of a frame and composes each visible line out of the
// background, the window and the sprites.
//
// Pixel fetching is not emulated: a line is composed in one go when its
// transfer period ends, and VRAM/OAM stay accessible in every mode.
type LCD struct {
	irq  addr.InterruptRequester
	vram *memory.RAM
	oam  *memory.RAM

	lcdc, stat uint8
	scy, scx   uint8
	ly, lyc    uint8
	bgp        uint8
	obp0, obp1 uint8
	wy, wx     uint8

	mode       Mode
	lineCycle  int
	windowLine int
	statLine   bool

	current *Image
	frame   *Image
	frames  uint64

	spriteBuf [maxSpritesPerLine]Sprite
}

// NewLCD returns a switched off LCD. VBlank and STAT interrupts are
// requested through irq.
func NewLCD(irq addr.InterruptRequester) *LCD {
	return &LCD{
		irq:     irq,
		vram:    memory.NewRAM(addr.VRAMSize),
		oam:     memory.NewRAM(addr.OAMSize),
		current: NewImage(),
		frame:   NewImage(),
	}
}

// SetPostBootState sets the registers to the values the boot ROM leaves behind.
func (l *LCD) SetPostBootState() {
	l.bgp = 0xFC
	l.obp0 = 0xFF
	l.obp1 = 0xFF
	l.Write(addr.LCDC, 0x91)
}

// Ranges returns VRAM, OAM and the LCD registers, DMA excluded.
func (l *LCD) Ranges() []memory.Range {
	return []memory.Range{
		{Start: addr.VRAMStart, End: addr.VRAMEnd},
		{Start: addr.OAMStart, End: addr.OAMEnd},
		{Start: addr.LCDC, End: addr.LYC},
		{Start: addr.BGP, End: addr.WX},
	}
}

func (l *LCD) Read(address uint16) (byte, bool) {
	switch {
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		return l.vram.Get(int(address - addr.VRAMStart)), true
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		return l.oam.Get(int(address - addr.OAMStart)), true
	}

	switch address {
	case addr.LCDC:
		return l.lcdc, true
	case addr.STAT:
		return l.readSTAT(), true
	case addr.SCY:
		return l.scy, true
	case addr.SCX:
		return l.scx, true
	case addr.LY:
		return l.ly, true
	case addr.LYC:
		return l.lyc, true
	case addr.BGP:
		return l.bgp, true
	case addr.OBP0:
		return l.obp0, true
	case addr.OBP1:
		return l.obp1, true
	case addr.WY:
		return l.wy, true
	case addr.WX:
		return l.wx, true
	}
	return 0, false
}

func (l *LCD) Write(address uint16, value byte) {
	switch {
	case address >= addr.VRAMStart && address <= addr.VRAMEnd:
		l.vram.Set(int(address-addr.VRAMStart), value)
		return
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		l.oam.Set(int(address-addr.OAMStart), value)
		return
	}

	switch address {
	case addr.LCDC:
		l.writeLCDC(value)
	case addr.STAT:
		l.stat = value & statWritableMask
		l.updateSTATLine()
	case addr.SCY:
		l.scy = value
	case addr.SCX:
		l.scx = value
	case addr.LY:
		// read only
	case addr.LYC:
		l.lyc = value
		l.updateSTATLine()
	case addr.BGP:
		l.bgp = value
	case addr.OBP0:
		l.obp0 = value
	case addr.OBP1:
		l.obp1 = value
	case addr.WY:
		l.wy = value
	case addr.WX:
		l.wx = value
	}
}

func (l *LCD) readSTAT() uint8 {
	stat := statUnusedBit | l.stat | uint8(l.mode)
	if l.ly == l.lyc {
		stat = bit.Set(statCoincidence, stat)
	}
	return stat
}

func (l *LCD) writeLCDC(value byte) {
	wasOn := l.enabled()
	l.lcdc = value

	switch {
	case wasOn && !l.enabled():
		l.ly = 0
		l.lineCycle = 0
		l.mode = HBlankMode
		l.frame = NewImage()
	case !wasOn && l.enabled():
		l.ly = 0
		l.lineCycle = 0
		l.windowLine = 0
		l.mode = OAMScanMode
	}
	l.updateSTATLine()
}

func (l *LCD) isSet(flag lcdcFlag) bool {
	return bit.IsSet(uint8(flag), l.lcdc)
}

func (l *LCD) enabled() bool {
	return l.isSet(lcdDisplayEnable)
}

// Cycle advances the LCD by one machine cycle. A switched off LCD stays
// on line 0.
func (l *LCD) Cycle(uint64) {
	if !l.enabled() {
		return
	}

	l.lineCycle++
	switch {
	case l.lineCycle == scanlineCycles:
		l.lineCycle = 0
		l.nextLine()
	case l.ly >= vblankLine:
		// no mode changes until the next frame
	case l.lineCycle == oamScanlineCycles:
		l.mode = TransferMode
	case l.lineCycle == oamScanlineCycles+vramScanlineCycles:
		l.drawScanline()
		l.mode = HBlankMode
	}
	l.updateSTATLine()
}

func (l *LCD) nextLine() {
	l.ly++
	switch {
	case l.ly == vblankLine:
		l.mode = VBlankMode
		l.irq.RequestInterrupt(addr.VBlankInterrupt)
		l.frame, l.current = l.current, l.frame
		l.frames++
	case l.ly == frameLines:
		l.ly = 0
		l.windowLine = 0
		l.mode = OAMScanMode
	case l.ly < vblankLine:
		l.mode = OAMScanMode
	}
}

// updateSTATLine requests the STAT interrupt on a rising edge of the OR of
// all enabled sources.
func (l *LCD) updateSTATLine() {
	line := false
	if bit.IsSet(statLYCSource, l.stat) && l.ly == l.lyc {
		line = true
	}
	switch l.mode {
	case HBlankMode:
		line = line || bit.IsSet(statHBlankSource, l.stat)
	case VBlankMode:
		line = line || bit.IsSet(statVBlankSource, l.stat)
	case OAMScanMode:
		line = line || bit.IsSet(statOAMSource, l.stat)
	}
	line = line && l.enabled()

	if line && !l.statLine {
		l.irq.RequestInterrupt(addr.LCDSTATInterrupt)
	}
	l.statLine = line
}

// drawScanline composes line LY of the current frame.
func (l *LCD) drawScanline() {
	y := int(l.ly)
	background := l.backgroundLine(y)
	line := BlankLine(ScreenWidth).Opaque()
	if l.isSet(bgDisplay) {
		line = background.MapColors(l.bgp).Opaque()
	}
	l.current.lines[y] = l.drawSprites(line, background, y)
}

// backgroundLine returns the raw color indices of the background and
// window on line y, color 0 being transparent.
func (l *LCD) backgroundLine(y int) ImageLine {
	if !l.isSet(bgDisplay) {
		return BlankLine(ScreenWidth)
	}

	row := (y + int(l.scy)) % backgroundSize
	line := l.tileMapLine(l.tileMap(bgTileMapDisplaySelect), row).
		ExtractWrapped(int(l.scx), ScreenWidth)

	start := int(l.wx) - 7
	if !l.isSet(windowDisplayEnable) || y < int(l.wy) || start >= ScreenWidth {
		return line
	}

	window := l.tileMapLine(l.tileMap(windowTileMapSelect), l.windowLine).
		ExtractWrapped(-start, ScreenWidth)
	l.windowLine++
	return line.Join(window, start)
}

func (l *LCD) tileMap(selectFlag lcdcFlag) uint16 {
	if l.isSet(selectFlag) {
		return addr.TileMap1
	}
	return addr.TileMap0
}

// tileOffset returns where the data of a tile starts in VRAM. With LCDC
// bit 4 clear tile numbers are signed and relative to 0x9000.
func (l *LCD) tileOffset(tile uint8) int {
	if l.isSet(bgWindowTileDataSelect) {
		return int(tile) * tileBytes
	}
	return 0x1000 + int(int8(tile))*tileBytes
}

// tileMapLine renders a full 256 pixel row of a tile map.
func (l *LCD) tileMapLine(tileMap uint16, row int) ImageLine {
	vram := l.vram.Bytes()
	mapRow := int(tileMap-addr.VRAMStart) + (row/8)*tileMapSize

	builder := NewImageLineBuilder(backgroundSize)
	for x := 0; x < tileMapSize; x++ {
		tile := vram[mapRow+x]
		msb, lsb := fetchRow(vram, l.tileOffset(tile), row%8).planes(false)
		builder.SetBytes(x, msb, lsb)
	}
	return builder.Build()
}

// drawSprites composites the sprites of line y over the palette mapped
// line. Sprites behind the background only show over its color 0.
func (l *LCD) drawSprites(line, background ImageLine, y int) ImageLine {
	if !l.isSet(spriteDisplayEnable) {
		return line
	}

	height := 8
	if l.isSet(spriteSize) {
		height = 16
	}

	vram := l.vram.Bytes()
	for _, s := range spritesForLine(l.oam.Bytes(), y, height, l.spriteBuf[:]) {
		sprite := s.line(vram, y)
		palette := l.obp0
		if s.PaletteOBP1 {
			palette = l.obp1
		}

		mask := sprite.Opacity()
		if s.BehindBG {
			mask = mask.And(background.Opacity().Not())
		}
		line = line.BelowWithOpacity(sprite.MapColors(palette), mask)
	}
	return line
}

func (l *LCD) LY() uint8  { return l.ly }
func (l *LCD) Mode() Mode { return l.mode }

// Frame returns the last complete frame. The image is reused for drawing
// once the next frame completes.
func (l *LCD) Frame() *Image {
	return l.frame
}

// Frames returns how many frames have been completed.
func (l *LCD) Frames() uint64 {
	return l.frames
}

// Tile returns tile index of the 384 tiles in VRAM.
func (l *LCD) Tile(index int) Tile {
	return FetchTile(l.vram.Bytes(), index)
}
