// Package debug turns machine state into things a person can read: PNG
// and text frame snapshots, and crash reports.
package debug

import (
	"fmt"
	"io"

	"github.com/valerio/jeebie-core/jeebie/cpu"
	"github.com/valerio/jeebie-core/jeebie/disasm"
)

// WriteReport describes a stopped machine: registers, the code around PC
// and the sprites on screen.
func WriteReport(w io.Writer, state cpu.State, mem disasm.Reader) error {
	if _, err := fmt.Fprintf(w, "registers: %s\n\ncode:\n", state); err != nil {
		return err
	}
	for _, line := range disasm.DisassembleAround(state.PC, 5, 5, mem) {
		if _, err := fmt.Fprintln(w, disasm.FormatDisassemblyLine(line, line.Address == state.PC)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, "\nsprites:\n"); err != nil {
		return err
	}
	for _, s := range ReadOAM(mem) {
		if !s.Visible() {
			continue
		}
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}
