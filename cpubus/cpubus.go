// Package cpubus implements the console's unified 16-bit address space: a
// flat 64KiB byte array overlaid with the TIA's write/read register banks,
// the PIA's RAM and I/O/timer registers, and the cartridge ROM. Writes to
// the TIA/PIA ranges are forwarded to the owning chip so the address space
// remains the sole medium components use to observe each other's state.
package cpubus

import "fmt"

// Chip is implemented by both tia.Chip and pia.Chip.
type Chip interface {
	Read(addr uint16) uint8
	Write(addr uint16, val uint8)
}

const (
	tiaRegionEnd = 0x002C
	cartBase     = 0xF000
	cartSize     = 0x1000
)

// AddressSpace is the machine's single owned memory map.
type AddressSpace struct {
	mem [1 << 16]uint8

	tia Chip
	pia Chip
}

// New returns an address space wired to the given TIA and PIA.
func New(tia, pia Chip) *AddressSpace {
	return &AddressSpace{tia: tia, pia: pia}
}

// Read8 returns the byte at addr, routing TIA/PIA register ranges to their
// owning chip.
func (a *AddressSpace) Read8(addr uint16) uint8 {
	switch {
	case addr <= 0x000D:
		return a.tia.Read(addr)
	case inPIARange(addr):
		return a.pia.Read(addr)
	default:
		return a.mem[addr]
	}
}

// Write8 stores val at addr. Addresses in the TIA strobe/control range or
// the PIA register range are forwarded to the owning chip so side effects
// (strobes, timer loads) fire; the byte is also kept in the flat backing
// array for every other region (general RAM, cartridge ROM).
func (a *AddressSpace) Write8(addr uint16, val uint8) {
	switch {
	case addr <= tiaRegionEnd:
		a.tia.Write(addr, val)
	case inPIARange(addr):
		a.pia.Write(addr, val)
	default:
		a.mem[addr] = val
	}
}

func inPIARange(addr uint16) bool {
	return (addr >= 0x0080 && addr <= 0x00FF) || (addr >= 0x0280 && addr <= 0x0297)
}

// LoadCartridge copies rom (2KiB or 4KiB) into 0xF000-0xFFFF, mirroring a
// 2KiB image into the upper half, and returns the reset PC derived from the
// reset vector at the cartridge's last four bytes, clamped to 0xF000 if the
// vector points below the cartridge region.
func (a *AddressSpace) LoadCartridge(rom []uint8) (uint16, error) {
	switch len(rom) {
	case 2048, 4096:
	default:
		return 0, fmt.Errorf("cpubus: unsupported cartridge size %d, want 2048 or 4096", len(rom))
	}
	for i := 0; i < cartSize; i++ {
		a.mem[cartBase+i] = rom[i%len(rom)]
	}
	lo := a.mem[0xFFFC]
	hi := a.mem[0xFFFD]
	pc := uint16(lo) | uint16(hi)<<8
	if pc < cartBase {
		pc = cartBase
	}
	return pc, nil
}
