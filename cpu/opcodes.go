package cpu

// instruction is the static descriptor for one opcode: its mnemonic,
// addressing mode, base cycle count and executor. Collapsing the 256-entry
// table to ~56 mnemonic handlers parameterized by addressing mode (rather
// than one function per opcode) is what keeps this table small.
type instruction struct {
	mnemonic string
	mode     Mode
	cycles   int
	exec     execFunc
}

var opcodeTable = buildOpcodeTable()

func buildOpcodeTable() [256]instruction {
	var t [256]instruction
	for i := range t {
		t[i] = instruction{"???", ModeImplied, 0, vacantExec}
	}
	set := func(op uint8, mnemonic string, mode Mode, cycles int, exec execFunc) {
		t[op] = instruction{mnemonic, mode, cycles, exec}
	}

	regA := func(c *CPU) uint8 { return c.A }
	regX := func(c *CPU) uint8 { return c.X }
	regY := func(c *CPU) uint8 { return c.Y }
	setA := func(c *CPU, v uint8) { c.A = v }
	setX := func(c *CPU, v uint8) { c.X = v }
	setY := func(c *CPU, v uint8) { c.Y = v }

	flag := func(mask uint8) func(uint8) bool { return func(p uint8) bool { return p&mask != 0 } }
	notFlag := func(mask uint8) func(uint8) bool { return func(p uint8) bool { return p&mask == 0 } }

	set(0x69, "ADC", ModeImmediate, 2, execADC)
	set(0x65, "ADC", ModeZeroPage, 3, execADC)
	set(0x75, "ADC", ModeZeroPageX, 4, execADC)
	set(0x6D, "ADC", ModeAbsolute, 4, execADC)
	set(0x7D, "ADC", ModeAbsoluteX, 4, execADC)
	set(0x79, "ADC", ModeAbsoluteY, 4, execADC)
	set(0x61, "ADC", ModeIndirectX, 6, execADC)
	set(0x71, "ADC", ModeIndirectY, 5, execADC)

	set(0x29, "AND", ModeImmediate, 2, execAND)
	set(0x25, "AND", ModeZeroPage, 3, execAND)
	set(0x35, "AND", ModeZeroPageX, 4, execAND)
	set(0x2D, "AND", ModeAbsolute, 4, execAND)
	set(0x3D, "AND", ModeAbsoluteX, 4, execAND)
	set(0x39, "AND", ModeAbsoluteY, 4, execAND)
	set(0x21, "AND", ModeIndirectX, 6, execAND)
	set(0x31, "AND", ModeIndirectY, 5, execAND)

	set(0x0A, "ASL", ModeAccumulator, 2, execASL)
	set(0x06, "ASL", ModeZeroPage, 5, execASL)
	set(0x16, "ASL", ModeZeroPageX, 6, execASL)
	set(0x0E, "ASL", ModeAbsolute, 6, execASL)
	set(0x1E, "ASL", ModeAbsoluteX, 7, execASL)

	set(0x90, "BCC", ModeRelative, 2, branchIf(notFlag(FlagC)))
	set(0xB0, "BCS", ModeRelative, 2, branchIf(flag(FlagC)))
	set(0xF0, "BEQ", ModeRelative, 2, branchIf(flag(FlagZ)))
	set(0x30, "BMI", ModeRelative, 2, branchIf(flag(FlagN)))
	set(0xD0, "BNE", ModeRelative, 2, branchIf(notFlag(FlagZ)))
	set(0x10, "BPL", ModeRelative, 2, branchIf(notFlag(FlagN)))
	set(0x50, "BVC", ModeRelative, 2, branchIf(notFlag(FlagV)))
	set(0x70, "BVS", ModeRelative, 2, branchIf(flag(FlagV)))

	set(0x24, "BIT", ModeZeroPage, 3, execBIT)
	set(0x2C, "BIT", ModeAbsolute, 4, execBIT)

	set(0x00, "BRK", ModeImplied, 7, execBRK)

	set(0x18, "CLC", ModeImplied, 2, execCLC)
	set(0xD8, "CLD", ModeImplied, 2, execCLD)
	set(0x58, "CLI", ModeImplied, 2, execCLI)
	set(0xB8, "CLV", ModeImplied, 2, execCLV)
	set(0x38, "SEC", ModeImplied, 2, execSEC)
	set(0xF8, "SED", ModeImplied, 2, execSED)
	set(0x78, "SEI", ModeImplied, 2, execSEI)

	set(0xC9, "CMP", ModeImmediate, 2, compareWith(regA))
	set(0xC5, "CMP", ModeZeroPage, 3, compareWith(regA))
	set(0xD5, "CMP", ModeZeroPageX, 4, compareWith(regA))
	set(0xCD, "CMP", ModeAbsolute, 4, compareWith(regA))
	set(0xDD, "CMP", ModeAbsoluteX, 4, compareWith(regA))
	set(0xD9, "CMP", ModeAbsoluteY, 4, compareWith(regA))
	set(0xC1, "CMP", ModeIndirectX, 6, compareWith(regA))
	set(0xD1, "CMP", ModeIndirectY, 5, compareWith(regA))

	set(0xE0, "CPX", ModeImmediate, 2, compareWith(regX))
	set(0xE4, "CPX", ModeZeroPage, 3, compareWith(regX))
	set(0xEC, "CPX", ModeAbsolute, 4, compareWith(regX))

	set(0xC0, "CPY", ModeImmediate, 2, compareWith(regY))
	set(0xC4, "CPY", ModeZeroPage, 3, compareWith(regY))
	set(0xCC, "CPY", ModeAbsolute, 4, compareWith(regY))

	set(0xC6, "DEC", ModeZeroPage, 5, execDEC)
	set(0xD6, "DEC", ModeZeroPageX, 6, execDEC)
	set(0xCE, "DEC", ModeAbsolute, 6, execDEC)
	set(0xDE, "DEC", ModeAbsoluteX, 7, execDEC)

	set(0xCA, "DEX", ModeImplied, 2, execDEX)
	set(0x88, "DEY", ModeImplied, 2, execDEY)

	set(0x49, "EOR", ModeImmediate, 2, execEOR)
	set(0x45, "EOR", ModeZeroPage, 3, execEOR)
	set(0x55, "EOR", ModeZeroPageX, 4, execEOR)
	set(0x4D, "EOR", ModeAbsolute, 4, execEOR)
	set(0x5D, "EOR", ModeAbsoluteX, 4, execEOR)
	set(0x59, "EOR", ModeAbsoluteY, 4, execEOR)
	set(0x41, "EOR", ModeIndirectX, 6, execEOR)
	set(0x51, "EOR", ModeIndirectY, 5, execEOR)

	set(0xE6, "INC", ModeZeroPage, 5, execINC)
	set(0xF6, "INC", ModeZeroPageX, 6, execINC)
	set(0xEE, "INC", ModeAbsolute, 6, execINC)
	set(0xFE, "INC", ModeAbsoluteX, 7, execINC)

	set(0xE8, "INX", ModeImplied, 2, execINX)
	set(0xC8, "INY", ModeImplied, 2, execINY)

	set(0x4C, "JMP", ModeAbsolute, 3, execJMP)
	set(0x6C, "JMP", ModeIndirect, 5, execJMP)

	set(0x20, "JSR", ModeAbsolute, 6, execJSR)

	set(0xA9, "LDA", ModeImmediate, 2, loadInto(setA))
	set(0xA5, "LDA", ModeZeroPage, 3, loadInto(setA))
	set(0xB5, "LDA", ModeZeroPageX, 4, loadInto(setA))
	set(0xAD, "LDA", ModeAbsolute, 4, loadInto(setA))
	set(0xBD, "LDA", ModeAbsoluteX, 4, loadInto(setA))
	set(0xB9, "LDA", ModeAbsoluteY, 4, loadInto(setA))
	set(0xA1, "LDA", ModeIndirectX, 6, loadInto(setA))
	set(0xB1, "LDA", ModeIndirectY, 5, loadInto(setA))

	set(0xA2, "LDX", ModeImmediate, 2, loadInto(setX))
	set(0xA6, "LDX", ModeZeroPage, 3, loadInto(setX))
	set(0xB6, "LDX", ModeZeroPageY, 4, loadInto(setX))
	set(0xAE, "LDX", ModeAbsolute, 4, loadInto(setX))
	set(0xBE, "LDX", ModeAbsoluteY, 4, loadInto(setX))

	set(0xA0, "LDY", ModeImmediate, 2, loadInto(setY))
	set(0xA4, "LDY", ModeZeroPage, 3, loadInto(setY))
	set(0xB4, "LDY", ModeZeroPageX, 4, loadInto(setY))
	set(0xAC, "LDY", ModeAbsolute, 4, loadInto(setY))
	set(0xBC, "LDY", ModeAbsoluteX, 4, loadInto(setY))

	set(0x4A, "LSR", ModeAccumulator, 2, execLSR)
	set(0x46, "LSR", ModeZeroPage, 5, execLSR)
	set(0x56, "LSR", ModeZeroPageX, 6, execLSR)
	set(0x4E, "LSR", ModeAbsolute, 6, execLSR)
	set(0x5E, "LSR", ModeAbsoluteX, 7, execLSR)

	set(0xEA, "NOP", ModeImplied, 2, execNOP)

	set(0x09, "ORA", ModeImmediate, 2, execORA)
	set(0x05, "ORA", ModeZeroPage, 3, execORA)
	set(0x15, "ORA", ModeZeroPageX, 4, execORA)
	set(0x0D, "ORA", ModeAbsolute, 4, execORA)
	set(0x1D, "ORA", ModeAbsoluteX, 4, execORA)
	set(0x19, "ORA", ModeAbsoluteY, 4, execORA)
	set(0x01, "ORA", ModeIndirectX, 6, execORA)
	set(0x11, "ORA", ModeIndirectY, 5, execORA)

	set(0x48, "PHA", ModeImplied, 3, execPHA)
	set(0x08, "PHP", ModeImplied, 3, execPHP)
	set(0x68, "PLA", ModeImplied, 4, execPLA)
	set(0x28, "PLP", ModeImplied, 4, execPLP)

	set(0x2A, "ROL", ModeAccumulator, 2, execROL)
	set(0x26, "ROL", ModeZeroPage, 5, execROL)
	set(0x36, "ROL", ModeZeroPageX, 6, execROL)
	set(0x2E, "ROL", ModeAbsolute, 6, execROL)
	set(0x3E, "ROL", ModeAbsoluteX, 7, execROL)

	set(0x6A, "ROR", ModeAccumulator, 2, execROR)
	set(0x66, "ROR", ModeZeroPage, 5, execROR)
	set(0x76, "ROR", ModeZeroPageX, 6, execROR)
	set(0x6E, "ROR", ModeAbsolute, 6, execROR)
	set(0x7E, "ROR", ModeAbsoluteX, 7, execROR)

	set(0x40, "RTI", ModeImplied, 6, execRTI)
	set(0x60, "RTS", ModeImplied, 6, execRTS)

	set(0xE9, "SBC", ModeImmediate, 2, execSBC)
	set(0xE5, "SBC", ModeZeroPage, 3, execSBC)
	set(0xF5, "SBC", ModeZeroPageX, 4, execSBC)
	set(0xED, "SBC", ModeAbsolute, 4, execSBC)
	set(0xFD, "SBC", ModeAbsoluteX, 4, execSBC)
	set(0xF9, "SBC", ModeAbsoluteY, 4, execSBC)
	set(0xE1, "SBC", ModeIndirectX, 6, execSBC)
	set(0xF1, "SBC", ModeIndirectY, 5, execSBC)

	set(0x85, "STA", ModeZeroPage, 3, storeFrom(regA))
	set(0x95, "STA", ModeZeroPageX, 4, storeFrom(regA))
	set(0x8D, "STA", ModeAbsolute, 4, storeFrom(regA))
	set(0x9D, "STA", ModeAbsoluteX, 5, storeFrom(regA))
	set(0x99, "STA", ModeAbsoluteY, 5, storeFrom(regA))
	set(0x81, "STA", ModeIndirectX, 6, storeFrom(regA))
	set(0x91, "STA", ModeIndirectY, 6, storeFrom(regA))

	set(0x86, "STX", ModeZeroPage, 3, storeFrom(regX))
	set(0x96, "STX", ModeZeroPageY, 4, storeFrom(regX))
	set(0x8E, "STX", ModeAbsolute, 4, storeFrom(regX))

	set(0x84, "STY", ModeZeroPage, 3, storeFrom(regY))
	set(0x94, "STY", ModeZeroPageX, 4, storeFrom(regY))
	set(0x8C, "STY", ModeAbsolute, 4, storeFrom(regY))

	set(0xAA, "TAX", ModeImplied, 2, execTAX)
	set(0xA8, "TAY", ModeImplied, 2, execTAY)
	set(0xBA, "TSX", ModeImplied, 2, execTSX)
	set(0x8A, "TXA", ModeImplied, 2, execTXA)
	set(0x9A, "TXS", ModeImplied, 2, execTXS)
	set(0x98, "TYA", ModeImplied, 2, execTYA)

	return t
}
