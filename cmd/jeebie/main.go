package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"
	"github.com/valerio/jeebie-core/jeebie"
	"github.com/valerio/jeebie-core/jeebie/cpu"
	"github.com/valerio/jeebie-core/jeebie/debug"
	"github.com/valerio/jeebie-core/jeebie/disasm"
	"github.com/valerio/jeebie-core/jeebie/memory"
	"github.com/valerio/jeebie-core/jeebie/render"
	"github.com/valerio/jeebie-core/jeebie/rom"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "Jeebie"
	app.Description = "A simple gameboy emulator"
	app.Usage = "jeebie [options] <ROM file>"
	app.Version = "1.0.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file, raw or in a .gz, .zip or .7z archive",
		},
		cli.StringFlag{
			Name:  "boot-rom",
			Usage: "Path to a 256 byte DMG boot ROM (default: start in the post boot state)",
		},
		cli.Uint64Flag{
			Name:  "cycles",
			Usage: "Number of machine cycles to run without a display",
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every executed instruction at debug level",
		},
		cli.BoolFlag{
			Name:  "terminal",
			Usage: "Show the screen in the terminal",
		},
		cli.StringFlag{
			Name:  "save",
			Usage: "Battery RAM file, loaded at start and written on exit",
		},
		cli.StringFlag{
			Name:  "snapshot",
			Usage: "Write the last frame to this PNG file on exit",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "Minimum log level: debug, info, warn or error",
			Value: "info",
		},
		cli.StringFlag{
			Name:  "log-file",
			Usage: "Write logs to this file instead of stderr",
		},
	}
	app.Action = func(c *cli.Context) error {
		return runEmulator(c, stdout, stderr)
	}
	return app
}

func newLogger(c *cli.Context, stderr io.Writer) (*slog.Logger, func() error, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.String("log-level"))); err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeLog := stderr, func() error { return nil }
	if path := c.String("log-file"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, err
		}
		out, closeLog = f, f.Close
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	return logger, closeLog, nil
}

func runEmulator(c *cli.Context, stdout, stderr io.Writer) (err error) {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().Get(0)
	}

	cycles := c.Uint64("cycles")
	if !c.Bool("terminal") && cycles == 0 {
		return errors.New("running without --terminal requires a positive --cycles")
	}

	logger, closeLog, err := newLogger(c, stderr)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, closeLog()) }()
	slog.SetDefault(logger)

	gb, cart, err := newGameBoy(c, romPath, logger)
	if err != nil {
		return err
	}

	if c.Bool("terminal") {
		err = runTerminal(gb, logger)
	} else {
		logger.Info("running headless", "cycles", cycles)
		err = gb.RunUntil(cycles)
	}

	gb.Serial().Flush()
	if errors.Is(err, jeebie.ErrContractViolation) {
		_ = debug.WriteReport(stderr, gb.CPU().State(), gb.Bus())
	}

	if transcript := gb.Serial().Transcript(); len(transcript) > 0 {
		fmt.Fprintf(stdout, "%s\n", transcript)
	}
	logger.Info("run completed",
		"cycles", gb.Cycles(),
		"frames", gb.LCD().Frames(),
		"frame_hash", fmt.Sprintf("%016x", gb.Frame().Hash()))

	return errors.Join(err, finish(c, gb, cart))
}

func newGameBoy(c *cli.Context, romPath string, logger *slog.Logger) (*jeebie.GameBoy, *memory.Cartridge, error) {
	data, err := rom.Load(romPath)
	if err != nil {
		return nil, nil, err
	}
	cart, err := memory.NewCartridge(data)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", romPath, err)
	}

	if path := c.String("save"); path != "" {
		save, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			logger.Info("no battery save yet", "path", path)
		case err != nil:
			return nil, nil, err
		default:
			if err := cart.Load(save); err != nil {
				return nil, nil, fmt.Errorf("loading %s: %w", path, err)
			}
			logger.Info("battery save loaded", "path", path, "bytes", len(save))
		}
	}

	opts := []jeebie.Option{jeebie.WithLogger(logger)}
	if path := c.String("boot-rom"); path != "" {
		boot, err := rom.Load(path)
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, jeebie.WithBootROM(boot))
	}
	if c.Bool("trace") {
		opts = append(opts, jeebie.WithTrace(func(pc uint16, op cpu.Opcode, operand uint16) {
			logger.Debug("exec", "pc", fmt.Sprintf("0x%04X", pc), "instruction", disasm.Format(pc, op, operand))
		}))
	}

	gb, err := jeebie.New(cart, opts...)
	if err != nil {
		return nil, nil, err
	}
	return gb, cart, nil
}

func runTerminal(gb *jeebie.GameBoy, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term, err := render.OpenTerminal(render.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	return term.Run(ctx, gb)
}

// finish writes the battery save and the snapshot, when asked for.
func finish(c *cli.Context, gb *jeebie.GameBoy, cart *memory.Cartridge) error {
	var errs []error
	if path := c.String("save"); path != "" {
		if data, ok := cart.Save(); ok {
			errs = append(errs, os.WriteFile(path, data, 0o644))
		}
	}
	if path := c.String("snapshot"); path != "" {
		errs = append(errs, debug.SavePNG(gb.Frame(), path))
	}
	return errors.Join(errs...)
}
