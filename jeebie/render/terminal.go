package render

import (
	"context"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/valerio/jeebie-core/jeebie/memory"
	"github.com/valerio/jeebie-core/jeebie/video"
)

const (
	frameTime = time.Second / 60
	// terminals report key presses only, a key is held until it has not
	// been repeated for this long
	keyTimeout = 150 * time.Millisecond
)

// Machine is what the terminal drives: one frame per tick, keys in between.
type Machine interface {
	RunFrame() error
	Frame() *video.Image
	Press(key memory.JoypadKey)
	Release(key memory.JoypadKey)
}

var runeKeys = map[rune]memory.JoypadKey{
	'a': memory.JoypadA,
	's': memory.JoypadB,
	'q': memory.JoypadSelect,
}

var specialKeys = map[tcell.Key]memory.JoypadKey{
	tcell.KeyEnter: memory.JoypadStart,
	tcell.KeyRight: memory.JoypadRight,
	tcell.KeyLeft:  memory.JoypadLeft,
	tcell.KeyUp:    memory.JoypadUp,
	tcell.KeyDown:  memory.JoypadDown,
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithFrameTime sets the interval between two frames.
func WithFrameTime(d time.Duration) TerminalOption {
	return func(t *Terminal) { t.frameTime = d }
}

// WithLogger sets the logger of the terminal.
func WithLogger(logger *slog.Logger) TerminalOption {
	return func(t *Terminal) { t.logger = logger }
}

// Terminal shows frames in a tcell screen, two pixel rows per character
// row, and feeds key presses to the joypad.
type Terminal struct {
	screen    tcell.Screen
	frameTime time.Duration
	logger    *slog.Logger

	pressed map[memory.JoypadKey]time.Time
	styles  [4][4]tcell.Style
}

// NewTerminal wraps an initialized screen. Run takes ownership of it.
func NewTerminal(screen tcell.Screen, opts ...TerminalOption) *Terminal {
	t := &Terminal{
		screen:    screen,
		frameTime: frameTime,
		logger:    slog.Default(),
		pressed:   make(map[memory.JoypadKey]time.Time),
	}
	for _, opt := range opts {
		opt(t)
	}

	for top := range t.styles {
		for bottom := range t.styles[top] {
			t.styles[top][bottom] = tcell.StyleDefault.
				Foreground(shadeColor(uint8(top))).
				Background(shadeColor(uint8(bottom)))
		}
	}
	return t
}

// OpenTerminal initializes the terminal the process runs in.
func OpenTerminal(opts ...TerminalOption) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	return NewTerminal(screen, opts...), nil
}

func shadeColor(shade uint8) tcell.Color {
	gray := int32(video.ShadeColor(shade).Gray())
	return tcell.NewRGBColor(gray, gray, gray)
}

// Run drives the machine until the context is done, Escape or Ctrl-C is
// pressed, or the machine fails. The machine is only touched from the
// calling goroutine, input is polled on another one and handed over on a
// channel.
func (t *Terminal) Run(ctx context.Context, m Machine) error {
	defer t.screen.Fini()

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go t.poll(events, done)

	ticker := time.NewTicker(t.frameTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if t.handleEvent(ev) {
				t.logger.Info("terminal closed by user")
				return nil
			}
		case now := <-ticker.C:
			t.updateKeys(m, now)
			if err := m.RunFrame(); err != nil {
				return err
			}
			t.Draw(m.Frame())
			t.screen.Show()
		}
	}
}

func (t *Terminal) poll(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent records key presses, and reports whether the user asked to quit.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if key, ok := runeKeys[ev.Rune()]; ok {
				t.pressed[key] = ev.When()
			}
		default:
			if key, ok := specialKeys[ev.Key()]; ok {
				t.pressed[key] = ev.When()
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

// updateKeys presses the keys seen recently and releases the expired ones.
func (t *Terminal) updateKeys(m Machine, now time.Time) {
	for key, at := range t.pressed {
		if now.Sub(at) < keyTimeout {
			m.Press(key)
			continue
		}
		t.logger.Debug("key released", "key", key)
		m.Release(key)
		delete(t.pressed, key)
	}
}

// Draw puts the image on the screen. Each cell shows the upper pixel as
// foreground and the lower one as background of an upper half block.
func (t *Terminal) Draw(img *video.Image) {
	for y := 0; y < video.ScreenHeight/2; y++ {
		for x := 0; x < video.ScreenWidth; x++ {
			top, bottom := img.Shade(x, 2*y), img.Shade(x, 2*y+1)
			t.screen.SetContent(x, y, upperHalf, nil, t.styles[top][bottom])
		}
	}
}
