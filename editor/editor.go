package editor

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/rvim/terminal"
)

// KeySource yields decoded key events; satisfied by *terminal.Reader.
type KeySource interface {
	ReadKey() (terminal.Event, error)
}

// Editor runs the cycle: render frame, read one key, dispatch, repeat
// until quit is requested.
type Editor struct {
	renderer *Renderer
	keys     KeySource
	cursor   Cursor
	running  bool
}

// New creates an editor over a renderer and a key source.
func New(renderer *Renderer, keys KeySource) *Editor {
	return &Editor{
		renderer: renderer,
		keys:     keys,
		running:  true,
	}
}

// Cursor returns the current cursor position.
func (e *Editor) Cursor() Cursor {
	return e.cursor
}

// Run drives the loop. Returns nil when the user quits with Ctrl+Q;
// any propagated device error is fatal and ends the loop.
func (e *Editor) Run() error {
	for e.running {
		if err := e.renderer.RenderFrame(&e.cursor); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		ev, err := e.keys.ReadKey()
		if err != nil {
			return err
		}
		if err := e.dispatch(ev); err != nil {
			return err
		}
	}
	return nil
}

// dispatch interprets one key event. Ctrl+Q (and nothing else held)
// requests quit; h/j/k/l with no modifiers move the cursor; every
// other key is a no-op.
func (e *Editor) dispatch(ev terminal.Event) error {
	if ev.Key != terminal.KeyRune {
		return nil
	}

	if ev.Rune == 'q' && ev.Modifiers == terminal.ModCtrl {
		e.running = false
		return nil
	}

	if ev.Modifiers != terminal.ModNone {
		return nil
	}

	d, ok := DirectionFromRune(ev.Rune)
	if !ok {
		return nil
	}

	err := e.cursor.Move(d)
	if errors.Is(err, ErrCursorBounds) {
		// Origin edge: the cursor stays put and the session continues
		return nil
	}
	return err
}
