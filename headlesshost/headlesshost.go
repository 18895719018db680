// Package headlesshost supplies a null implementation of the host
// collaborator interfaces for tests and non-interactive runs.
package headlesshost

import (
	"log/slog"

	"github.com/retrovcs/emulator/host"
	"github.com/retrovcs/emulator/pia"
)

// Host implements host.Renderer, host.InputSource and host.Logger as no-ops,
// optionally recording frames for inspection by tests.
type Host struct {
	// FrameCount is incremented every PresentFrame call.
	FrameCount int
	// LastFrame holds a copy of the most recently presented frame.
	LastFrame []uint32

	logger *slog.Logger
}

// New returns a headless host. If logger is nil, slog.Default() is used.
func New(logger *slog.Logger) *Host {
	if logger == nil {
		logger = slog.Default()
	}
	return &Host{logger: logger}
}

// PresentFrame implements host.Renderer.
func (h *Host) PresentFrame(pixels []uint32) error {
	h.FrameCount++
	h.LastFrame = append(h.LastFrame[:0], pixels...)
	return nil
}

// PollInput implements host.InputSource; headless runs never produce input.
func (h *Host) PollInput() (pia.Key, bool) {
	return pia.KeyNone, false
}

// Log implements host.Logger by forwarding to log/slog at the matching
// level.
func (h *Host) Log(severity host.Severity, message string) {
	switch severity {
	case host.SeverityError:
		h.logger.Error(message)
	case host.SeverityWarn:
		h.logger.Warn(message)
	default:
		h.logger.Debug(message)
	}
}
