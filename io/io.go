// Package io defines the basic interfaces for working with a 6502 family
// based I/O port (generally bi-directional). It's intended that implementors
// of I/O (such as a PIA) call the input callback (if provided) on every
// clock tick and properly account for the fact that output won't mirror
// input for a clock cycle (to account for latches being loaded).
package io

// Port8 defines an 8 bit I/O port.
type Port8 interface {
	// Input will return the current value being set on the given input port.
	Input() uint8
}

// PortIn1 defines a single-bit I/O port, such as one joystick direction,
// a fire button, or a console switch.
type PortIn1 interface {
	// Input returns the current value on the port. true means the line is
	// held (e.g. a button pressed or a switch in its "set" position); the
	// caller is responsible for any active-low inversion.
	Input() bool
}
