package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/rvim/editor"
	"github.com/lixenwraith/rvim/terminal"
)

func main() {
	// Panic recovery: restore the terminal before reporting a crash,
	// a stack trace is useless on a screen stuck in raw mode
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// Use \r\n in case raw mode is still active
			fmt.Fprintf(os.Stderr, "\r\nrvim crashed: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// One mode of operation: no flags, no arguments
	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: rvim")
		os.Exit(2)
	}

	backend := terminal.NewBackend()
	if err := backend.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "rvim: %v\n", err)
		os.Exit(1)
	}

	runErr := run(backend)

	// Unconditional teardown: clear the screen, home the cursor and
	// restore canonical mode on every exit path. A failed restore is
	// fatal; the user's terminal cannot be left in raw mode silently.
	restoreErr := restore(backend)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "rvim: %v\n", runErr)
		os.Exit(1)
	}
	if restoreErr != nil {
		fmt.Fprintf(os.Stderr, "rvim: %v\n", restoreErr)
		os.Exit(1)
	}
}

// run wires the components and drives the loop until quit or error.
func run(backend terminal.Backend) error {
	width, height, err := backend.Size()
	if err != nil {
		return err
	}

	renderer := editor.NewRenderer(width, height, backend)
	reader := terminal.NewReader(backend)

	return editor.New(renderer, reader).Run()
}

// restore clears the screen and returns the terminal to canonical mode.
func restore(backend terminal.Backend) error {
	if _, err := backend.Write(terminal.ClearScreen); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if _, err := backend.Write(terminal.CursorHome); err != nil {
		return fmt.Errorf("reset cursor: %w", err)
	}
	return backend.Fini()
}
