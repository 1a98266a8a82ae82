package render

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/jeebie-core/jeebie/memory"
	"github.com/valerio/jeebie-core/jeebie/video"
)

type fakeMachine struct {
	frames  int
	pressed map[memory.JoypadKey]bool
	onFrame func(m *fakeMachine) error
}

func (m *fakeMachine) RunFrame() error {
	m.frames++
	if m.onFrame != nil {
		return m.onFrame(m)
	}
	return nil
}

func (m *fakeMachine) Frame() *video.Image { return video.NewImage() }

func (m *fakeMachine) Press(key memory.JoypadKey) { m.pressed[key] = true }

func (m *fakeMachine) Release(key memory.JoypadKey) { delete(m.pressed, key) }

func newSimulationScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(video.ScreenWidth, video.ScreenHeight/2)
	return screen
}

func TestTerminal_RunsFramesUntilCancelled(t *testing.T) {
	screen := newSimulationScreen(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m := &fakeMachine{pressed: map[memory.JoypadKey]bool{}}
	m.onFrame = func(m *fakeMachine) error {
		if m.frames == 3 {
			cancel()
		}
		return nil
	}

	term := NewTerminal(screen, WithFrameTime(time.Millisecond))
	require.NoError(t, term.Run(ctx, m))
	assert.GreaterOrEqual(t, m.frames, 3)
}

func TestTerminal_KeysReachTheMachine(t *testing.T) {
	screen := newSimulationScreen(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	m := &fakeMachine{pressed: map[memory.JoypadKey]bool{}}
	m.onFrame = func(m *fakeMachine) error {
		if m.pressed[memory.JoypadStart] && m.pressed[memory.JoypadA] {
			cancel()
		}
		return nil
	}

	screen.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	term := NewTerminal(screen, WithFrameTime(time.Millisecond))
	require.NoError(t, term.Run(ctx, m))
	assert.True(t, m.pressed[memory.JoypadStart])
	assert.True(t, m.pressed[memory.JoypadA])
}

func TestTerminal_Escape(t *testing.T) {
	screen := newSimulationScreen(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	term := NewTerminal(screen, WithFrameTime(time.Hour))
	require.NoError(t, term.Run(ctx, &fakeMachine{pressed: map[memory.JoypadKey]bool{}}))
	assert.NoError(t, ctx.Err(), "stopped by the key, not the deadline")
}

func TestTerminal_MachineFailure(t *testing.T) {
	screen := newSimulationScreen(t)
	failure := errors.New("boom")
	m := &fakeMachine{
		pressed: map[memory.JoypadKey]bool{},
		onFrame: func(*fakeMachine) error { return failure },
	}

	term := NewTerminal(screen, WithFrameTime(time.Millisecond))
	assert.ErrorIs(t, term.Run(context.Background(), m), failure)
}

func TestTerminal_UpdateKeysReleasesExpiredKeys(t *testing.T) {
	term := NewTerminal(newSimulationScreen(t))
	m := &fakeMachine{pressed: map[memory.JoypadKey]bool{}}

	now := time.Now()
	term.pressed[memory.JoypadUp] = now
	term.pressed[memory.JoypadB] = now.Add(-time.Second)

	term.updateKeys(m, now)
	assert.Equal(t, map[memory.JoypadKey]bool{memory.JoypadUp: true}, m.pressed)
	assert.NotContains(t, term.pressed, memory.JoypadB)

	term.updateKeys(m, now.Add(time.Second))
	assert.Empty(t, m.pressed)
	assert.Empty(t, term.pressed)
}

func TestTerminal_Draw(t *testing.T) {
	screen := newSimulationScreen(t)
	term := NewTerminal(screen)

	term.Draw(video.NewImage())
	screen.Show()

	r, _, style, _ := screen.GetContent(10, 10)
	assert.Equal(t, upperHalf, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, shadeColor(0), fg)
	assert.Equal(t, shadeColor(0), bg)
}

func TestHalfBlocks(t *testing.T) {
	lines := HalfBlocks(video.NewImage())
	require.Len(t, lines, video.ScreenHeight/2)
	assert.Equal(t, strings.Repeat(" ", video.ScreenWidth), lines[0])
}

func TestHalfBlockChar(t *testing.T) {
	tests := []struct {
		top, bottom uint8
		want        rune
	}{
		{0, 0, ' '},
		{3, 3, fullBlock},
		{1, 1, fullBlock},
		{0, 3, lowerHalf},
		{3, 0, upperHalf},
		{2, 1, upperHalf},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HalfBlockChar(tt.top, tt.bottom), "top %d bottom %d", tt.top, tt.bottom)
	}
}
