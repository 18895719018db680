// Command vcs runs a cartridge image against the emulator core, presenting
// frames through an SDL window. Adapted from the teacher's vcs_main.go:
// cli.App replaces flag.Parse for argument handling, but the cartridge
// load / window-scale / debug-mode knobs are the same ones that file
// exposed.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/retrovcs/emulator/headlesshost"
	"github.com/retrovcs/emulator/host"
	"github.com/retrovcs/emulator/sdlhost"
	"github.com/retrovcs/emulator/vcs"
)

func main() {
	app := cli.NewApp()
	app.Name = "vcs"
	app.Usage = "run an Atari 2600 cartridge image"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "cart", Usage: "path to the cartridge image to load"},
		cli.IntFlag{Name: "scale", Value: 3, Usage: "window scale factor"},
		cli.BoolFlag{Name: "debug", Usage: "emit CPU/TIA/PIA debug logging while running"},
		cli.BoolFlag{Name: "headless", Usage: "run without an SDL window (for smoke-testing a cart)"},
		cli.BoolFlag{Name: "disasm", Usage: "record an instruction-level disassembly trace (ENABLE_DISASSEMBLER)"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

type exitCoder interface {
	ExitCode() int
}

func exitCodeFor(err error) int {
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return 1
}

type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }
func (e *usageError) ExitCode() int { return 1 }

func run(c *cli.Context) error {
	cartPath := c.String("cart")
	if cartPath == "" {
		return &usageError{msg: "vcs: -cart is required"}
	}
	rom, err := os.ReadFile(cartPath)
	if err != nil {
		return fmt.Errorf("vcs: reading cartridge: %w", err)
	}

	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := vcs.Config{
		EnableDisassembler: c.Bool("disasm"),
		DebugMode:          c.Bool("debug"),
	}

	var renderer host.Renderer
	var input host.InputSource
	var closer func()

	if c.Bool("headless") {
		hh := headlesshost.New(logger)
		renderer, input = hh, hh
	} else {
		sh, err := sdlhost.New("vcs", c.Int("scale"), logger)
		if err != nil {
			return fmt.Errorf("vcs: opening window: %w", err)
		}
		renderer, input, closer = sh, sh, sh.Close
	}
	if closer != nil {
		defer closer()
	}

	m, err := vcs.New(cfg, rom, renderer, input, hostLogger{logger})
	if err != nil {
		return fmt.Errorf("vcs: %w", err)
	}

	m.Run()

	if d := m.Disassembly(); d != nil {
		if err := os.WriteFile("dis.asm", d.Bytes(), 0o644); err != nil {
			return fmt.Errorf("vcs: writing disassembly: %w", err)
		}
	}
	return nil
}

type hostLogger struct {
	logger *slog.Logger
}

func (h hostLogger) Log(severity host.Severity, message string) {
	switch severity {
	case host.SeverityError:
		h.logger.Error(message)
	case host.SeverityWarn:
		h.logger.Warn(message)
	default:
		h.logger.Debug(message)
	}
}
