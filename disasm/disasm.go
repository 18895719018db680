// Package disasm records a human-readable trace of executed instructions,
// one line per Record call: address, opcode, mnemonic, operand, the
// register file after execution and the opcode's base cycle count. Grounded on the teacher's disassemble
// package, rebuilt against cpu.Decode instead of re-decoding the opcode
// table by hand, and extended to show post-execution register state since
// it runs alongside a live CPU rather than over a static binary.
package disasm

import (
	"bytes"
	"fmt"

	"github.com/retrovcs/emulator/cpu"
)

// Bus is the minimum read access disasm needs to format an operand.
type Bus interface {
	Read8(addr uint16) uint8
}

// Writer accumulates a disassembly trace in memory; Bytes returns it as a
// single text blob (e.g. for writing to dis.asm).
type Writer struct {
	buf bytes.Buffer
	n   int
}

// New returns an empty disassembly trace.
func New() *Writer {
	return &Writer{}
}

// Record decodes the instruction at pc and appends one line describing it
// and the CPU's register file after Step has executed it.
func (w *Writer) Record(pc uint16, c *cpu.CPU) {
	opcode := c.Peek(pc)
	mnemonic, mode, size, cycles := cpu.Decode(opcode)

	operand := operandString(pc, opcode, mode, size, c)
	fmt.Fprintf(&w.buf, "%04X  %02X  %-3s%-10s  A:%02X X:%02X Y:%02X S:%02X P:%02X  cyc:%d\n",
		pc, opcode, mnemonic, operand, c.A, c.X, c.Y, c.S, c.P, cycles)
	w.n++
}

// Len returns the number of instructions recorded.
func (w *Writer) Len() int {
	return w.n
}

// Bytes returns the accumulated trace.
func (w *Writer) Bytes() []byte {
	return w.buf.Bytes()
}

func operandString(pc uint16, opcode uint8, mode cpu.Mode, size uint16, c *cpu.CPU) string {
	switch size {
	case 1:
		return ""
	case 2:
		b := c.Peek(pc + 1)
		return fmt.Sprintf("$%02X%s", b, mode.Suffix())
	case 3:
		lo := c.Peek(pc + 1)
		hi := c.Peek(pc + 2)
		return fmt.Sprintf("$%02X%02X%s", hi, lo, mode.Suffix())
	default:
		return ""
	}
}
