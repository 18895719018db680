package cpu

// Mode identifies one of the 13 addressing modes.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirectX
	ModeIndirectY
	ModeIndirect
	ModeRelative
)

// Suffix returns the addressing-mode suffix used in disassembly output
// (i, z, zx, zy, ax, ay, inx, iny, in, a, r); absolute and implied have none.
func (m Mode) Suffix() string {
	switch m {
	case ModeImmediate:
		return "i"
	case ModeZeroPage:
		return "z"
	case ModeZeroPageX:
		return "zx"
	case ModeZeroPageY:
		return "zy"
	case ModeAbsoluteX:
		return "ax"
	case ModeAbsoluteY:
		return "ay"
	case ModeIndirectX:
		return "inx"
	case ModeIndirectY:
		return "iny"
	case ModeIndirect:
		return "in"
	case ModeAccumulator:
		return "a"
	case ModeRelative:
		return "r"
	default:
		return ""
	}
}

// modeSize is the instruction's total size in bytes (opcode + operand).
func modeSize(mode Mode) uint16 {
	switch mode {
	case ModeImplied, ModeAccumulator:
		return 1
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY, ModeIndirectX, ModeIndirectY, ModeRelative:
		return 2
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
		return 3
	default:
		return 1
	}
}

// addrAndExtra computes the effective address for mode and any page-
// crossing cycle penalty. Not valid for ModeImmediate/ModeAccumulator/
// ModeImplied/ModeRelative, which are handled by their callers directly.
func (c *CPU) addrAndExtra(mode Mode) (uint16, int) {
	switch mode {
	case ModeZeroPage:
		return uint16(c.bus.Read8(c.PC + 1)), 0
	case ModeZeroPageX:
		return uint16(c.bus.Read8(c.PC+1) + c.X), 0
	case ModeZeroPageY:
		return uint16(c.bus.Read8(c.PC+1) + c.Y), 0
	case ModeAbsolute:
		return c.readWord(c.PC + 1), 0
	case ModeAbsoluteX:
		base := c.readWord(c.PC + 1)
		addr := base + uint16(c.X)
		extra := 0
		if pageCrossed(base, addr) {
			extra = 1
		}
		return addr, extra
	case ModeAbsoluteY:
		base := c.readWord(c.PC + 1)
		addr := base + uint16(c.Y)
		extra := 0
		if pageCrossed(base, addr) {
			extra = 1
		}
		return addr, extra
	case ModeIndirectX:
		ptr := c.bus.Read8(c.PC+1) + c.X
		lo := c.bus.Read8(uint16(ptr))
		hi := c.bus.Read8(uint16(ptr + 1))
		return uint16(lo) | uint16(hi)<<8, 0
	case ModeIndirectY:
		ptr := c.bus.Read8(c.PC + 1)
		lo := c.bus.Read8(uint16(ptr))
		hi := c.bus.Read8(uint16(ptr + 1))
		base := uint16(lo) | uint16(hi)<<8
		addr := base + uint16(c.Y)
		extra := 0
		if pageCrossed(base, addr) {
			extra = 1
		}
		return addr, extra
	case ModeIndirect:
		ptr := c.readWord(c.PC + 1)
		lo := c.bus.Read8(ptr)
		hi := c.bus.Read8(ptr + 1)
		return uint16(lo) | uint16(hi)<<8, 0
	default:
		return 0, 0
	}
}

// effectiveAddress is addrAndExtra without the page-crossing penalty, for
// instructions (stores, RMW) whose base cycle count already assumes the
// worst case.
func (c *CPU) effectiveAddress(mode Mode) uint16 {
	addr, _ := c.addrAndExtra(mode)
	return addr
}

// operand fetches the value an ALU/load instruction reads, plus any page-
// crossing penalty.
func (c *CPU) operand(mode Mode) (uint8, int) {
	switch mode {
	case ModeImmediate:
		return c.bus.Read8(c.PC + 1), 0
	case ModeAccumulator:
		return c.A, 0
	default:
		addr, extra := c.addrAndExtra(mode)
		return c.bus.Read8(addr), extra
	}
}
