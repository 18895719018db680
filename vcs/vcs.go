// Package vcs assembles the CPU, TIA, PIA and address space into one owned
// machine and drives the main loop: one CPU instruction (or a one-cycle
// WSYNC stall) per iteration, the TIA advanced three color clocks per CPU
// cycle, the PIA advanced one tick per CPU cycle, and a single input poll.
package vcs

import (
	"fmt"

	"github.com/retrovcs/emulator/cpu"
	"github.com/retrovcs/emulator/cpubus"
	"github.com/retrovcs/emulator/disasm"
	"github.com/retrovcs/emulator/host"
	"github.com/retrovcs/emulator/pia"
	"github.com/retrovcs/emulator/tia"
)

// Config selects the machine's optional features. Both are runtime flags
// rather than build tags so a single binary can toggle them per run.
type Config struct {
	EnableDisassembler bool
	DebugMode          bool
}

// Machine owns the CPU, TIA, PIA and the address space wiring them together,
// plus the host collaborators driving and observing it.
type Machine struct {
	CPU   *cpu.CPU
	TIA   *tia.Chip
	PIA   *pia.Chip
	Bus   *cpubus.AddressSpace

	renderer host.Renderer
	input    host.InputSource
	logger   host.Logger

	disasm *disasm.Writer

	CPUCycles int64
	TIAClocks int64
	PIACycles int64
}

// New builds a machine around the given host collaborators and loads rom.
// renderer, input and logger may each be nil to disable that collaborator.
func New(cfg Config, rom []uint8, renderer host.Renderer, input host.InputSource, logger host.Logger) (*Machine, error) {
	p := pia.New()
	t := tia.New(&tia.Def{})
	bus := cpubus.New(t, p)

	resetPC, err := bus.LoadCartridge(rom)
	if err != nil {
		return nil, fmt.Errorf("vcs: %w", err)
	}

	c := cpu.New(bus)
	c.PC = resetPC

	m := &Machine{
		CPU:      c,
		TIA:      t,
		PIA:      p,
		Bus:      bus,
		renderer: renderer,
		input:    input,
		logger:   logger,
	}

	if cfg.EnableDisassembler {
		m.disasm = disasm.New()
	}

	t.OnFrame = func(frame []uint32) {
		if m.renderer != nil {
			if err := m.renderer.PresentFrame(frame); err != nil && m.logger != nil {
				m.logger.Log(host.SeverityError, fmt.Sprintf("present frame: %v", err))
			}
		}
	}
	c.OnIllegalOpcode = func(opcode uint8) {
		if m.logger != nil {
			m.logger.Log(host.SeverityWarn, fmt.Sprintf("vacant opcode $%02X at $%04X", opcode, c.PC))
		}
	}

	return m, nil
}

// Disassembly returns the recorded instruction trace, or nil if the
// disassembler was not enabled.
func (m *Machine) Disassembly() *disasm.Writer {
	return m.disasm
}

// Step runs one iteration of the main loop: a WSYNC stall if pending,
// otherwise one CPU instruction, then advances the TIA and PIA by the
// matching number of clocks and polls input once. It returns false when the
// host has requested shutdown or the CPU's running flag has been cleared.
func (m *Machine) Step() bool {
	if !m.CPU.Running {
		return false
	}
	if m.TIA.WSYNCPending() {
		m.advance(1)
		return m.pollInput()
	}

	pc := m.CPU.PC
	cycles := m.CPU.Step()
	if m.disasm != nil {
		m.disasm.Record(pc, m.CPU)
	}
	m.advance(cycles)
	return m.pollInput()
}

func (m *Machine) advance(cycles int) {
	m.CPUCycles += int64(cycles)
	m.TIAClocks += int64(cycles) * 3
	m.PIACycles += int64(cycles)
	m.TIA.Advance(cycles * 3)
	m.PIA.Advance(cycles)
}

func (m *Machine) pollInput() bool {
	if m.input == nil {
		return true
	}
	key, quit := m.input.PollInput()
	m.PIA.SetInput(key)
	return !quit
}

// Run steps the machine until the host requests shutdown.
func (m *Machine) Run() {
	for m.Step() {
	}
}
