package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery when the normal restore path cannot
// run; errors are ignored because there is nothing left to do with
// them in a crash context.
func EmergencyReset(w io.Writer) {
	w.Write(CursorShow)
	w.Write(ResetAttrs)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
