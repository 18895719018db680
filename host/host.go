// Package host defines the external collaborators the emulation core calls
// out to: presenting a finished frame, polling for input, and logging
// diagnostics. The core never depends on a concrete windowing or logging
// library directly — only on these three interfaces.
package host

import "github.com/retrovcs/emulator/pia"

// Renderer presents one completed 160x192 RGBA frame.
type Renderer interface {
	PresentFrame(pixels []uint32) error
}

// InputSource polls for the next pending input event, non-blocking. Quit
// reports whether the host has requested shutdown (e.g. window close).
type InputSource interface {
	PollInput() (key pia.Key, quit bool)
}

// Severity classifies a diagnostic log line.
type Severity int

const (
	SeverityDebug Severity = iota
	SeverityWarn
	SeverityError
)

// Logger receives diagnostic output from the core.
type Logger interface {
	Log(severity Severity, message string)
}
