package pia_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrovcs/emulator/pia"
)

func TestTimerReachesZeroAfterExactTickCount(t *testing.T) {
	p := pia.New()
	p.Write(pia.TIM64T, 0x10)

	require.Equal(t, uint8(0x10), p.Read(pia.INTIM))

	ticks := 0
	for p.Read(pia.INTIM) != 0 {
		p.Advance(1)
		ticks++
	}
	require.Equal(t, 16*64, ticks)
}

func TestUnderflowSetsINSTATBit(t *testing.T) {
	p := pia.New()
	p.Write(pia.TIM1T, 0x01)

	p.Advance(1) // 0x01 -> 0x00
	require.Equal(t, uint8(0x00), p.Read(pia.INTIM))
	require.Equal(t, uint8(0x00), p.Read(pia.INSTAT))

	p.Advance(1) // underflow
	require.Equal(t, uint8(0x80), p.Read(pia.INSTAT))
}

func TestSetInputClearsActiveLowBit(t *testing.T) {
	p := pia.New()
	require.Equal(t, uint8(0xFF), p.Read(pia.SWCHA))

	p.SetInput(pia.Player0Up)
	require.Equal(t, uint8(0xFF&^0x10), p.Read(pia.SWCHA))

	p.SetInput(pia.KeyNone)
	require.Equal(t, uint8(0xFF), p.Read(pia.SWCHA))
}

func TestRAMRoundTrips(t *testing.T) {
	p := pia.New()
	p.Write(0x0080, 0x42)
	require.Equal(t, uint8(0x42), p.Read(0x0080))
}
