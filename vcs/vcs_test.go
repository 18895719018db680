package vcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrovcs/emulator/headlesshost"
	"github.com/retrovcs/emulator/pia"
	"github.com/retrovcs/emulator/vcs"
)

func fourKRomWithResetVector(pc uint16, program ...uint8) []uint8 {
	rom := make([]uint8, 4096)
	copy(rom[0x000:], program)
	rom[4092] = uint8(pc)
	rom[4093] = uint8(pc >> 8)
	return rom
}

func TestMachineRunsProgramAndPresentsFrames(t *testing.T) {
	// A tight loop: LDA #$00, STA COLUBK, JMP back to start.
	rom := fourKRomWithResetVector(0xF000, 0xA9, 0x00, 0x8D, 0x09, 0x00, 0x4C, 0x00, 0xF0)

	hh := headlesshost.New(nil)
	m, err := vcs.New(vcs.Config{}, rom, hh, hh, hh)
	require.NoError(t, err)

	for i := 0; i < tiaFrameClocks(); i++ {
		m.Step()
	}
	require.Greater(t, hh.FrameCount, 0)
}

func tiaFrameClocks() int {
	// One main-loop Step per instruction drives several TIA clocks; running
	// a generous number of iterations guarantees at least one full frame.
	return 20000
}

func TestMachineStopsOnInputQuit(t *testing.T) {
	rom := fourKRomWithResetVector(0xF000, 0xEA) // NOP, then the zero-filled ROM (BRK)
	hh := headlesshost.New(nil)
	quitter := &quitAfter{n: 3}

	m, err := vcs.New(vcs.Config{}, rom, hh, quitter, hh)
	require.NoError(t, err)

	count := 0
	for m.Step() {
		count++
		if count > 100 {
			t.Fatal("machine did not stop on quit")
		}
	}
	require.Equal(t, 3, count)
}

type quitAfter struct {
	n, seen int
}

func (q *quitAfter) PollInput() (pia.Key, bool) {
	q.seen++
	return pia.KeyNone, q.seen > q.n
}
