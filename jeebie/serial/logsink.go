package serial

import (
	"log/slog"

	"github.com/valerio/jeebie-core/jeebie/addr"
	"github.com/valerio/jeebie-core/jeebie/bit"
	"github.com/valerio/jeebie-core/jeebie/memory"
)

// transferCycles is how long a byte takes on the internal clock
// (8192 Hz, 8 bits), in machine cycles.
const transferCycles = 1024

// LogSink implements a dummy serial device that just logs outgoing bytes as text.
// Handy for debugging test roms that output to serial.
type LogSink struct {
	irq            addr.InterruptRequester
	sb, sc         byte
	transferActive bool
	countdown      int
	logger         *slog.Logger

	// settings
	immediate bool
	defaultRX uint8 // received byte when no peer is connected

	// line buffer for readable output
	line       []byte
	transcript []byte
}

type LogSinkOption func(*LogSink)

// WithFixedTiming sets the sink to complete transfers after the time a byte
// takes on the internal clock instead of immediately.
func WithFixedTiming() LogSinkOption { return func(s *LogSink) { s.immediate = false } }

// WithLogger sets the logger lines are written to.
func WithLogger(logger *slog.Logger) LogSinkOption {
	return func(s *LogSink) { s.logger = logger }
}

// NewLogSink creates a new logging serial device. Completed transfers
// request the Serial interrupt through irq.
func NewLogSink(irq addr.InterruptRequester, opts ...LogSinkOption) *LogSink {
	s := &LogSink{
		irq:       irq,
		immediate: true,
		defaultRX: 0xFF,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Reset()
	return s
}

func (s *LogSink) Write(address uint16, value byte) {
	switch address {
	case addr.SB:
		s.sb = value
	case addr.SC:
		s.sc = value
		s.maybeStartTransfer()
	}
}

func (s *LogSink) Read(address uint16) (byte, bool) {
	switch address {
	case addr.SB:
		return s.sb, true
	case addr.SC:
		// bits 1-6 are unused
		return s.sc | 0x7E, true
	}
	return 0, false
}

// Ranges returns SB and SC.
func (s *LogSink) Ranges() []memory.Range {
	return []memory.Range{{Start: addr.SB, End: addr.SC}}
}

// Cycle advances a transfer in progress by one machine cycle.
func (s *LogSink) Cycle(uint64) {
	if s.immediate || !s.transferActive {
		return
	}
	s.countdown--
	if s.countdown <= 0 {
		s.completeTransfer()
		s.countdown = 0
	}
}

func (s *LogSink) Reset() {
	s.sb = 0x00
	s.sc = 0x00
	s.transferActive = false
	s.countdown = 0
	s.line = s.line[:0]
	s.transcript = s.transcript[:0]
}

// Transcript returns every byte sent so far.
func (s *LogSink) Transcript() []byte {
	return append([]byte(nil), s.transcript...)
}

// Flush logs a pending partial line.
func (s *LogSink) Flush() {
	if len(s.line) > 0 {
		s.logger.Info("serial", "line", string(s.line))
		s.line = s.line[:0]
	}
}

func (s *LogSink) maybeStartTransfer() {
	if s.transferActive {
		return
	}
	// a transfer should start when bit 7 (start) and bit 0 (clock source) of SC are set.
	if !bit.IsSet(7, s.sc) || !bit.IsSet(0, s.sc) {
		return
	}

	// log the outgoing byte as text; buffer until newline for readability
	b := s.sb
	s.transcript = append(s.transcript, b)
	if b == 0 || b == '\n' || b == '\r' {
		s.Flush()
	} else {
		s.line = append(s.line, b)
	}

	if s.immediate {
		s.completeTransfer()
		return
	}

	s.transferActive = true
	s.countdown = transferCycles
}

func (s *LogSink) completeTransfer() {
	s.sb = s.defaultRX
	// Clear start bit (bit7) to indicate completion
	s.sc = bit.Clear(7, s.sc)
	s.transferActive = false
	if s.irq != nil {
		s.irq.RequestInterrupt(addr.SerialInterrupt)
	}
}
