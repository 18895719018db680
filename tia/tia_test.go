package tia_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrovcs/emulator/tia"
)

func TestWSYNCStallsUntilHBlank(t *testing.T) {
	c := tia.New(&tia.Def{})
	c.Write(0x02, 0x01) // WSYNC

	clocks := 0
	for c.WSYNCPending() {
		c.Advance(1)
		clocks++
	}
	// The beam is at power-on (0, 0) when WSYNC is struck, so the stall runs
	// a whole line; TestWSYNCExactColorClockCount covers the (100, 50) case.
	require.Greater(t, clocks, 0)
}

func TestWSYNCExactColorClockCount(t *testing.T) {
	c := tia.New(&tia.Def{})
	// Drive the beam to (100, 50) by advancing from power-on (0, 0).
	c.Advance(50*tia.TotalWidth + 100)
	h, v := c.Position()
	require.Equal(t, 100, h)
	require.Equal(t, 50, v)

	c.Write(0x02, 0x01) // WSYNC
	clocks := 0
	for c.WSYNCPending() {
		c.Advance(1)
		clocks++
	}
	require.Equal(t, tia.TotalWidth-100, clocks)

	// The stall runs to the start of the next line, not merely out of
	// HBLANK: it resumes at (0, 51), not (HBlankWidth, 51).
	h, v = c.Position()
	require.Equal(t, 0, h)
	require.Equal(t, 51, v)
}

func TestFrameCallbackFiresOncePerRaster(t *testing.T) {
	c := tia.New(&tia.Def{})
	frames := 0
	c.OnFrame = func(frame []uint32) { frames++ }

	c.Advance(tia.TotalWidth * tia.TotalHeight)
	require.Equal(t, 1, frames)
}

func TestPlayfieldLeftHalfPixel(t *testing.T) {
	c := tia.New(&tia.Def{})
	var frame []uint32
	c.OnFrame = func(f []uint32) { frame = append([]uint32(nil), f...) }
	c.Write(0x08, 0x20)   // COLUPF
	c.Write(0x0D, 0xF0)   // PF0, all four usable bits set
	c.Write(0x0E, 0xFF)   // PF1
	c.Write(0x0F, 0xFF)   // PF2

	// Walk to the end of HBLANK on the first line.
	c.Advance(tia.HBlankWidth)
	h, _ := c.Position()
	require.Equal(t, tia.HBlankWidth, h)

	// Finish the frame: the leftmost visible pixel comes from PF0 bit 4 and
	// is drawn in COLUPF ($20), not the background.
	c.Advance(tia.TotalWidth*tia.TotalHeight - tia.HBlankWidth)
	require.NotNil(t, frame)
	require.Equal(t, uint32(0x370000FF), frame[0])
}

func TestCollisionLatchesClearOnCXCLR(t *testing.T) {
	c := tia.New(&tia.Def{})
	c.Write(0x2C, 0x00) // CXCLR
	require.Zero(t, c.Read(0x00))
	require.Zero(t, c.Read(0x07))
}
