package headlesshost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/retrovcs/emulator/headlesshost"
	"github.com/retrovcs/emulator/host"
	"github.com/retrovcs/emulator/pia"
)

func TestPresentFrameCopiesAndCounts(t *testing.T) {
	h := headlesshost.New(nil)
	frame := []uint32{1, 2, 3}

	require.NoError(t, h.PresentFrame(frame))
	require.Equal(t, 1, h.FrameCount)
	require.Equal(t, frame, h.LastFrame)

	frame[0] = 99
	require.NotEqual(t, frame[0], h.LastFrame[0])
}

func TestPollInputAlwaysIdle(t *testing.T) {
	h := headlesshost.New(nil)
	key, quit := h.PollInput()
	require.Equal(t, pia.KeyNone, key)
	require.False(t, quit)
}

func TestLogDoesNotPanic(t *testing.T) {
	h := headlesshost.New(nil)
	h.Log(host.SeverityDebug, "debug")
	h.Log(host.SeverityWarn, "warn")
	h.Log(host.SeverityError, "error")
}
