package terminal

import "io"

// Backend abstracts the terminal device. The Unix implementation is
// the only platform wired today; the interface is the seam that lets
// tests substitute an in-memory device.
type Backend interface {
	// Lifecycle
	// Init switches the device into raw mode.
	Init() error
	// Fini restores the previous mode. Safe to call multiple times.
	Fini() error

	// Capabilities
	// Size returns current terminal dimensions in columns and rows.
	Size() (width, height int, err error)

	// I/O
	// Write writes raw bytes to the terminal output.
	io.Writer

	// Read blocks until input is available or timeoutMs elapses.
	// A timeout returns a nil slice and nil error.
	Read(timeoutMs int) ([]byte, error)
}
