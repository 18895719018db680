package cpu_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/stretchr/testify/require"

	"github.com/retrovcs/emulator/cpu"
)

// regSnapshot captures the register file for deep.Equal comparisons; the
// private bus/jumped fields on cpu.CPU aren't exported and don't belong in
// a snapshot.
type regSnapshot struct {
	A, X, Y, S, P uint8
	PC            uint16
}

func snapshot(c *cpu.CPU) regSnapshot {
	return regSnapshot{A: c.A, X: c.X, Y: c.Y, S: c.S, P: c.P, PC: c.PC}
}

// flatBus is a plain 64KiB array satisfying cpu.Bus, used to drive the CPU
// directly without the rest of the machine.
type flatBus struct {
	mem [1 << 16]uint8
}

func (b *flatBus) Read8(addr uint16) uint8       { return b.mem[addr] }
func (b *flatBus) Write8(addr uint16, val uint8) { b.mem[addr] = val }

func newBusAt(resetPC uint16, program ...uint8) *flatBus {
	b := &flatBus{}
	b.mem[cpu.ResetVector] = uint8(resetPC)
	b.mem[cpu.ResetVector+1] = uint8(resetPC >> 8)
	copy(b.mem[resetPC:], program)
	return b
}

func TestResetVectorLatch(t *testing.T) {
	bus := &flatBus{}
	bus.mem[4092] = 0x00
	bus.mem[4093] = 0xF1
	bus.mem[4094] = 0x00
	bus.mem[4095] = 0x00

	bus.mem[cpu.ResetVector] = bus.mem[4092]
	bus.mem[cpu.ResetVector+1] = bus.mem[4093]

	c := cpu.New(bus)
	require.Equal(t, uint16(0xF100), c.PC)
}

func TestSimpleStoreLDAImmediateSTAZeroPage(t *testing.T) {
	bus := newBusAt(0xF000, 0xA9, 0x42, 0x85, 0x80)
	c := cpu.New(bus)

	cycles := c.Step() // LDA #$42
	cycles += c.Step() // STA $80

	require.Equal(t, uint8(0x42), bus.mem[0x80])
	require.Equal(t, uint8(0x42), c.A)
	require.Equal(t, 5, cycles)
}

func TestBranchTakenNoPageCross(t *testing.T) {
	// LDA #$00 sets Z; BEQ +2 branches two bytes forward within the page.
	bus := newBusAt(0xF000, 0xA9, 0x00, 0xF0, 0x02)
	c := cpu.New(bus)

	c1 := c.Step() // LDA #$00
	c2 := c.Step() // BEQ +2

	require.Equal(t, uint16(0xF006), c.PC)
	require.Equal(t, 2, c1)
	require.Equal(t, 3, c2)
}

func TestBranchTakenAcrossPage(t *testing.T) {
	bus := newBusAt(0xF0FC, 0xA9, 0x00, 0xF0, 0x02)
	c := cpu.New(bus)

	c.Step()           // LDA #$00
	cycles := c.Step() // BEQ +2, crosses from $F0FE/$F0FF page into $F1xx

	require.Equal(t, uint16(0xF102), c.PC)
	require.Equal(t, 4, cycles)
}

func TestADCOverflow(t *testing.T) {
	// 0x50 + 0x50 = 0xA0 with carry clear: signed overflow (V set), carry clear.
	bus := newBusAt(0xF000, 0xA9, 0x50, 0x69, 0x50)
	c := cpu.New(bus)
	c.Step()
	c.Step()

	require.Equal(t, uint8(0xA0), c.A)
	require.NotZero(t, c.P&cpu.FlagV)
	require.Zero(t, c.P&cpu.FlagC)
}

func TestVacantOpcodeLogsAndAdvances(t *testing.T) {
	bus := newBusAt(0xF000, 0x02) // $02 is vacant in the legal opcode set.
	c := cpu.New(bus)

	var logged uint8
	c.OnIllegalOpcode = func(opcode uint8) { logged = opcode }

	cycles := c.Step()
	require.Equal(t, uint8(0x02), logged)
	require.Equal(t, 0, cycles)
	require.Equal(t, uint16(0xF001), c.PC)
}

func TestBugFixedOpcodes(t *testing.T) {
	mnemonic, _, _, _ := cpu.Decode(0x00)
	require.Equal(t, "BRK", mnemonic)

	mnemonic, _, _, _ = cpu.Decode(0x60)
	require.Equal(t, "RTS", mnemonic)

	mnemonic, _, _, _ = cpu.Decode(0x10)
	require.Equal(t, "BPL", mnemonic)

	mnemonic, mode, _, _ := cpu.Decode(0x1D)
	require.Equal(t, "ORA", mnemonic)
	require.Equal(t, cpu.ModeAbsoluteX, mode)

	mnemonic, mode, _, _ = cpu.Decode(0x6D)
	require.Equal(t, "ADC", mnemonic)
	require.Equal(t, cpu.ModeAbsolute, mode)

	mnemonic, _, _, _ = cpu.Decode(0x70)
	require.Equal(t, "BVS", mnemonic)
}

func TestTransferOpsLeaveExpectedRegisterState(t *testing.T) {
	// LDA #$07, then TAX, TAY, TSX, TXS chained; compare the end state against a
	// hand-computed expectation with go-test/deep, dumping via go-spew if it
	// ever drifts.
	bus := newBusAt(0xF000, 0xA9, 0x07, 0xAA, 0xA8, 0xBA, 0x9A)
	c := cpu.New(bus)
	for i := 0; i < 5; i++ {
		c.Step()
	}

	want := regSnapshot{A: 0x07, X: 0xFF, Y: 0x07, S: 0xFF, P: c.P, PC: c.PC}
	got := snapshot(c)
	if diff := deep.Equal(want, got); diff != nil {
		t.Fatalf("register state mismatch: %v\nfull state: %s", diff, spew.Sdump(c))
	}
}

func TestINXAndINYAreIndependent(t *testing.T) {
	bus := newBusAt(0xF000, 0xE8, 0xC8) // INX, INY
	c := cpu.New(bus)
	c.X, c.Y = 5, 9

	c.Step()
	require.Equal(t, uint8(6), c.X)
	require.Equal(t, uint8(9), c.Y)

	c.Step()
	require.Equal(t, uint8(6), c.X)
	require.Equal(t, uint8(10), c.Y)
}
