package editor

import "errors"

// Direction is the closed set of cursor movements. Values outside the
// four constants are rejected by Move.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

var (
	// ErrCursorBounds reports a movement that would take a coordinate
	// below zero.
	ErrCursorBounds = errors.New("cursor: movement out of bounds")

	// ErrUnsupportedDirection reports a Direction outside the four
	// recognized values.
	ErrUnsupportedDirection = errors.New("cursor: unsupported direction")
)

// DirectionFromRune maps the movement keys h/j/k/l to a Direction.
// Any other rune is not a movement: ok is false and Move must not be
// called.
func DirectionFromRune(r rune) (d Direction, ok bool) {
	switch r {
	case 'h':
		return Left, true
	case 'j':
		return Down, true
	case 'k':
		return Up, true
	case 'l':
		return Right, true
	}
	return 0, false
}

// Cursor tracks the current cell, origin at the top-left. Coordinates
// are not clamped against the viewport.
type Cursor struct {
	X int
	Y int
}

// Move applies a one-cell delta. Moving left at X=0 or up at Y=0
// returns ErrCursorBounds and leaves the coordinate unchanged.
func (c *Cursor) Move(d Direction) error {
	switch d {
	case Right:
		c.X++
	case Left:
		if c.X == 0 {
			return ErrCursorBounds
		}
		c.X--
	case Down:
		c.Y++
	case Up:
		if c.Y == 0 {
			return ErrCursorBounds
		}
		c.Y--
	default:
		return ErrUnsupportedDirection
	}
	return nil
}
