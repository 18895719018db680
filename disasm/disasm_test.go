package disasm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrovcs/emulator/cpu"
	"github.com/retrovcs/emulator/disasm"
)

type flatBus struct {
	mem [1 << 16]uint8
}

func (b *flatBus) Read8(addr uint16) uint8       { return b.mem[addr] }
func (b *flatBus) Write8(addr uint16, val uint8) { b.mem[addr] = val }

func TestRecordProducesOneLinePerInstruction(t *testing.T) {
	bus := &flatBus{}
	bus.mem[cpu.ResetVector] = 0x00
	bus.mem[cpu.ResetVector+1] = 0xF0
	bus.mem[0xF000] = 0xA9 // LDA #$42
	bus.mem[0xF001] = 0x42
	bus.mem[0xF002] = 0x85 // STA $80
	bus.mem[0xF003] = 0x80

	c := cpu.New(bus)
	w := disasm.New()

	pc := c.PC
	c.Step()
	w.Record(pc, c)

	pc = c.PC
	c.Step()
	w.Record(pc, c)

	require.Equal(t, 2, w.Len())
	require.Contains(t, string(w.Bytes()), "LDA")
	require.Contains(t, string(w.Bytes()), "STA")
}
