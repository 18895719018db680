// Package tia implements the video coprocessor of the console: a
// beam-position state machine that walks a 228x262 NTSC raster and selects
// one pixel per color clock from the background, playfield, player, missile
// and ball objects during the visible region.
//
// Register naming follows the console's own documentation (VSYNC, VBLANK,
// NUSIZ0/1, COLUP0/1, COLUPF, COLUBK, CTRLPF, PF0/1/2, GRP0/1, ENAM0/1,
// ENABL, HMP0/1, HMM0/1, HMBL, RESP0/1, RESM0/1, RESBL, HMOVE, HMCLR,
// CXCLR).
package tia

import "github.com/retrovcs/emulator/io"

// Raster geometry. See the GLOSSARY for beam position / color clock.
const (
	TotalWidth  = 228
	TotalHeight = 262
	HBlankWidth = 68

	VisibleVStart = 40
	VisibleVEnd   = 232 // exclusive

	FrameWidth  = 160
	FrameHeight = 192
)

// Collision latch indices, matching the bit pairs the real hardware packs
// into CXM0P..CXPPMM.
const (
	cxM0P = iota
	cxM1P
	cxP0FB
	cxP1FB
	cxM0FB
	cxM1FB
	cxBLPF
	cxPPMM
)

const maskRead = uint8(0xC0)

// object holds the shared shadow state for a player, missile or ball: its
// horizontal reset position, its motion register and enable flag.
type object struct {
	pos    int
	motion int8 // sign-extended 4 bit value from the high nibble of HMPx/HMMx/HMBL.
	enable bool
}

// Chip implements the TIA's beam counter, register file and pixel selection.
type Chip struct {
	h, v int

	vsync, vblank bool
	wsyncPending  bool

	colup0, colup1, colupf, colubk uint8
	ctrlpf                         uint8

	pf0, pf1, pf2 uint8

	nusiz0, nusiz1 uint8
	refp0, refp1   bool
	grp0, grp1     uint8
	grp0Old        uint8
	grp1Old        uint8
	vdelp0, vdelp1 bool

	p0, p1 object
	m0, m1 object
	bl     object
	blOld  bool
	vdelbl bool

	collision [8]uint8

	inputPorts  [6]io.PortIn1
	latches     bool
	outLatch    [2]bool
	groundInput bool

	colorTable [256]uint32

	frame   [FrameWidth * FrameHeight]uint32
	OnFrame func(frame []uint32)
}

// Def supplies the optional paddle/joystick-trigger input ports (INPT0-5).
type Def struct {
	Port0, Port1, Port2, Port3 io.PortIn1
	Port4, Port5               io.PortIn1
}

// New returns a power-on TIA.
func New(def *Def) *Chip {
	t := &Chip{
		colorTable: ntscColorTable,
	}
	if def != nil {
		t.inputPorts = [6]io.PortIn1{def.Port0, def.Port1, def.Port2, def.Port3, def.Port4, def.Port5}
	}
	return t
}

// Position returns the current beam position, primarily for tests.
func (t *Chip) Position() (h, v int) {
	return t.h, t.v
}

// WSYNCPending reports whether the CPU must stall until HBLANK.
func (t *Chip) WSYNCPending() bool {
	return t.wsyncPending
}

// Read implements the TIA read-register bank (collision latches and input
// ports), addresses 0x00-0x0D.
func (t *Chip) Read(addr uint16) uint8 {
	addr &= 0x0F
	var ret uint8
	switch addr {
	case 0x00:
		ret = t.collision[cxM0P]
	case 0x01:
		ret = t.collision[cxM1P]
	case 0x02:
		ret = t.collision[cxP0FB]
	case 0x03:
		ret = t.collision[cxP1FB]
	case 0x04:
		ret = t.collision[cxM0FB]
	case 0x05:
		ret = t.collision[cxM1FB]
	case 0x06:
		ret = t.collision[cxBLPF]
	case 0x07:
		ret = t.collision[cxPPMM]
	case 0x08, 0x09, 0x0A, 0x0B:
		idx := int(addr) - 0x08
		if !t.groundInput && t.inputPorts[idx] != nil && t.inputPorts[idx].Input() {
			ret = 0x80
		}
	case 0x0C, 0x0D:
		idx := int(addr) - 0x0C
		if t.latches && t.outLatch[idx] {
			ret = 0x80
			break
		}
		if t.inputPorts[idx+4] != nil && t.inputPorts[idx+4].Input() {
			ret = 0x80
		}
	default:
		ret = 0xFF
	}
	return ret & maskRead
}

// Write implements the TIA write-register bank and the strobe set,
// addresses 0x00-0x2C.
func (t *Chip) Write(addr uint16, val uint8) {
	addr &= 0x3F
	switch addr {
	case 0x00: // VSYNC
		t.vsync = val&0x02 != 0
	case 0x01: // VBLANK
		t.vblank = val&0x02 != 0
		latch := val&0x40 != 0
		if latch && !t.latches {
			t.outLatch[0] = true
			t.outLatch[1] = true
		}
		t.latches = latch
		t.groundInput = val&0x80 != 0
	case 0x02: // WSYNC
		t.wsyncPending = true
	case 0x03: // RSYNC
		t.h = 0
	case 0x04:
		t.nusiz0 = val
	case 0x05:
		t.nusiz1 = val
	case 0x06:
		t.colup0 = val
	case 0x07:
		t.colup1 = val
	case 0x08:
		t.colupf = val
	case 0x09:
		t.colubk = val
	case 0x0A:
		t.ctrlpf = val
	case 0x0B:
		t.refp0 = val&0x08 != 0
	case 0x0C:
		t.refp1 = val&0x08 != 0
	case 0x0D:
		t.pf0 = val
	case 0x0E:
		t.pf1 = val
	case 0x0F:
		t.pf2 = val
	case 0x10: // RESP0
		t.p0.pos = t.h
	case 0x11: // RESP1
		t.p1.pos = t.h
	case 0x12: // RESM0
		t.m0.pos = t.h
	case 0x13: // RESM1
		t.m1.pos = t.h
	case 0x14: // RESBL
		t.bl.pos = t.h
	case 0x1B:
		t.grp0Old = t.grp0
		t.grp0 = val
	case 0x1C:
		t.grp1Old = t.grp1
		t.grp1 = val
	case 0x1D:
		t.m0.enable = val&0x02 != 0
	case 0x1E:
		t.m1.enable = val&0x02 != 0
	case 0x1F:
		t.blOld = t.bl.enable
		t.bl.enable = val&0x02 != 0
	case 0x20:
		t.p0.motion = motionNibble(val)
	case 0x21:
		t.p1.motion = motionNibble(val)
	case 0x22:
		t.m0.motion = motionNibble(val)
	case 0x23:
		t.m1.motion = motionNibble(val)
	case 0x24:
		t.bl.motion = motionNibble(val)
	case 0x25:
		t.vdelp0 = val&0x01 != 0
	case 0x26:
		t.vdelp1 = val&0x01 != 0
	case 0x27:
		t.vdelbl = val&0x01 != 0
	case 0x28:
		if val&0x02 != 0 {
			t.m0.pos = t.p0.pos
		}
	case 0x29:
		if val&0x02 != 0 {
			t.m1.pos = t.p1.pos
		}
	case 0x2A: // HMOVE
		t.p0.pos = wrapPos(t.p0.pos + int(t.p0.motion))
		t.p1.pos = wrapPos(t.p1.pos + int(t.p1.motion))
		t.m0.pos = wrapPos(t.m0.pos + int(t.m0.motion))
		t.m1.pos = wrapPos(t.m1.pos + int(t.m1.motion))
		t.bl.pos = wrapPos(t.bl.pos + int(t.bl.motion))
	case 0x2B: // HMCLR
		t.p0.motion, t.p1.motion, t.m0.motion, t.m1.motion, t.bl.motion = 0, 0, 0, 0, 0
	case 0x2C: // CXCLR
		for i := range t.collision {
			t.collision[i] = 0
		}
	}
}

// motionNibble sign-extends the high nibble of an HMPx/HMMx/HMBL write.
func motionNibble(val uint8) int8 {
	n := int8(val>>4) & 0x0F
	if n > 7 {
		n -= 16
	}
	return n
}

func wrapPos(p int) int {
	p %= TotalWidth
	if p < 0 {
		p += TotalWidth
	}
	return p
}

// Advance runs the TIA for the given number of color clocks.
func (t *Chip) Advance(clocks int) {
	for i := 0; i < clocks; i++ {
		t.tick()
	}
}

func (t *Chip) tick() {
	visible := t.h >= HBlankWidth && t.h < TotalWidth && t.v >= VisibleVStart && t.v < VisibleVEnd && !t.vsync && !t.vblank
	if visible {
		t.renderPixel()
	}

	t.h++
	if t.h >= TotalWidth {
		t.h = 0
		t.wsyncPending = false
		t.v++
		if t.v >= TotalHeight {
			t.v = 0
			if t.OnFrame != nil {
				t.OnFrame(t.frame[:])
			}
		}
	}
}

func (t *Chip) renderPixel() {
	x := t.h - HBlankWidth
	y := t.v - VisibleVStart

	p0on := t.playerBit(t.grp0, t.grp0Old, t.vdelp0, t.refp0, t.nusiz0, t.p0.pos, x)
	p1on := t.playerBit(t.grp1, t.grp1Old, t.vdelp1, t.refp1, t.nusiz1, t.p1.pos, x)
	m0on := t.m0.enable && t.objectBit(t.m0.pos, missileWidth(t.nusiz0), x)
	m1on := t.m1.enable && t.objectBit(t.m1.pos, missileWidth(t.nusiz1), x)
	blEnable := t.bl.enable
	if t.vdelbl {
		blEnable = t.blOld
	}
	blon := blEnable && t.objectBit(t.bl.pos, ballWidth(t.ctrlpf), x)
	pfon := t.playfieldBit(x)

	t.updateCollisions(p0on, p1on, m0on, m1on, blon, pfon)

	var color uint8
	switch {
	case p0on:
		color = t.colup0
	case p1on:
		color = t.colup1
	case m0on:
		color = t.colup0
	case m1on:
		color = t.colup1
	case blon:
		color = t.colupf
	case pfon:
		color = t.playfieldColor(x)
	default:
		color = t.colubk
	}
	t.frame[y*FrameWidth+x] = t.colorTable[color]
}

// playfieldColor honors the CTRLPF "score mode" bit: left half uses COLUP0,
// right half COLUP1, otherwise COLUPF for the whole field.
func (t *Chip) playfieldColor(x int) uint8 {
	if t.ctrlpf&0x02 != 0 {
		if x < FrameWidth/2 {
			return t.colup0
		}
		return t.colup1
	}
	return t.colupf
}

func (t *Chip) playfieldBit(x int) bool {
	column := x / 4
	var bit int
	switch {
	case column < 20:
		bit = column
	case t.ctrlpf&0x01 != 0: // reflect
		bit = 39 - column
	default:
		bit = column - 20
	}
	switch {
	case bit < 4:
		return t.pf0&(0x10<<uint(bit)) != 0
	case bit < 12:
		return t.pf1&(0x80>>uint(bit-4)) != 0
	default:
		return t.pf2&(0x01<<uint(bit-12)) != 0
	}
}

// playerBit tests whether x falls within the 8-pixel sprite starting at pos,
// scaled by NUSIZ's size field and reflected per REFPx. Multiple-copy
// spacing (close/medium) is not modeled.
func (t *Chip) playerBit(grp, grpOld uint8, vdelay, reflect bool, nusiz uint8, pos, x int) bool {
	g := grp
	if vdelay {
		g = grpOld
	}
	if g == 0 {
		return false
	}
	scale := playerScale(nusiz)
	width := 8 * scale
	off := x - pos
	if off < 0 {
		off += TotalWidth
	}
	if off >= width {
		return false
	}
	bitIdx := off / scale
	if !reflect {
		bitIdx = 7 - bitIdx
	}
	return g&(1<<uint(bitIdx)) != 0
}

func playerScale(nusiz uint8) int {
	switch nusiz & 0x07 {
	case 0x05:
		return 2
	case 0x07:
		return 4
	default:
		return 1
	}
}

func missileWidth(nusiz uint8) int {
	return 1 << uint((nusiz>>4)&0x03)
}

func ballWidth(ctrlpf uint8) int {
	return 1 << uint((ctrlpf>>4)&0x03)
}

func (t *Chip) objectBit(pos, width, x int) bool {
	off := x - pos
	if off < 0 {
		off += TotalWidth
	}
	return off < width
}

func (t *Chip) updateCollisions(p0, p1, m0, m1, bl, pf bool) {
	set := func(idx int, hi, lo bool) {
		var v uint8
		if hi {
			v |= 0x80
		}
		if lo {
			v |= 0x40
		}
		t.collision[idx] |= v
	}
	set(cxM0P, m0 && p0, m0 && p1)
	set(cxM1P, m1 && p1, m1 && p0)
	set(cxP0FB, p0 && pf, p0 && bl)
	set(cxP1FB, p1 && pf, p1 && bl)
	set(cxM0FB, m0 && pf, m0 && bl)
	set(cxM1FB, m1 && pf, m1 && bl)
	if bl && pf {
		t.collision[cxBLPF] |= 0x80
	}
	set(cxPPMM, p0 && p1, m0 && m1)
}
