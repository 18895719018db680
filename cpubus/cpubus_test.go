package cpubus_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrovcs/emulator/cpubus"
	"github.com/retrovcs/emulator/pia"
	"github.com/retrovcs/emulator/tia"
)

func TestLoadCartridge4KLatchesResetVector(t *testing.T) {
	rom := make([]uint8, 4096)
	rom[4092] = 0x00
	rom[4093] = 0xF1
	rom[4094] = 0x00
	rom[4095] = 0x00

	bus := cpubus.New(tia.New(&tia.Def{}), pia.New())
	pc, err := bus.LoadCartridge(rom)
	require.NoError(t, err)
	require.Equal(t, uint16(0xF100), pc)
}

func TestLoadCartridge2KMirrorsIntoUpperHalf(t *testing.T) {
	rom := make([]uint8, 2048)
	rom[0] = 0xEA // NOP

	bus := cpubus.New(tia.New(&tia.Def{}), pia.New())
	_, err := bus.LoadCartridge(rom)
	require.NoError(t, err)
	require.Equal(t, uint8(0xEA), bus.Read8(0xF000))
	require.Equal(t, uint8(0xEA), bus.Read8(0xF800))
}

func TestRejectsUnsupportedCartridgeSize(t *testing.T) {
	bus := cpubus.New(tia.New(&tia.Def{}), pia.New())
	_, err := bus.LoadCartridge(make([]uint8, 100))
	require.Error(t, err)
}

func TestTIAAndPIARegistersRouteThroughBus(t *testing.T) {
	bus := cpubus.New(tia.New(&tia.Def{}), pia.New())

	bus.Write8(0x09, 0x3C) // COLUBK
	bus.Write8(0x0080, 0x99)
	require.Equal(t, uint8(0x99), bus.Read8(0x0080))

	bus.Write8(0x0280, 0x00) // SWCHA write should not panic or fall through to flat RAM
	require.Equal(t, uint8(0x00), bus.Read8(0x0280))
}
