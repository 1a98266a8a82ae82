package jeebie

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/jeebie-core/jeebie/memory"
	"github.com/valerio/jeebie-core/jeebie/rom"
)

// blargg's cpu_instrs ROMs are not distributed with the sources. Drop them
// in test-roms/ at the repository root to run these.
var blarggROMs = []struct {
	name   string
	frames int
}{
	{"01-special", 500},
	{"02-interrupts", 500},
	{"03-op sp,hl", 500},
	{"04-op r,imm", 500},
	{"05-op rp", 500},
	{"06-ld r,r", 500},
	{"07-jr,jp,call,ret,rst", 500},
	{"08-misc instrs", 500},
	{"09-op r,r", 1000},
	{"10-bit ops", 1000},
	{"11-op a,(hl)", 1500},
}

func TestBlargg(t *testing.T) {
	for _, tt := range blarggROMs {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join("..", "test-roms", tt.name+".gb")
			if _, err := os.Stat(path); os.IsNotExist(err) {
				t.Skipf("ROM file not found: %s", path)
			}

			data, err := rom.Load(path)
			require.NoError(t, err)
			cart, err := memory.NewCartridge(data)
			require.NoError(t, err)
			gb, err := New(cart, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
			require.NoError(t, err)

			// the ROMs report on the serial port, then loop forever
			for frame := 0; frame < tt.frames; frame++ {
				require.NoError(t, gb.RunFrame())
				out := string(gb.Serial().Transcript())
				if strings.Contains(out, "Passed") || strings.Contains(out, "Failed") {
					break
				}
			}

			out := string(gb.Serial().Transcript())
			assert.Contains(t, out, "Passed", "serial output:\n%s", out)
			t.Logf("frame hash %016x", gb.Frame().Hash())
		})
	}
}
