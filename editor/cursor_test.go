package editor

import (
	"errors"
	"testing"
)

func TestDirectionFromRune(t *testing.T) {
	cases := []struct {
		r    rune
		want Direction
	}{
		{'h', Left},
		{'j', Down},
		{'k', Up},
		{'l', Right},
	}
	for _, c := range cases {
		d, ok := DirectionFromRune(c.r)
		if !ok {
			t.Errorf("Expected %q to map to a direction", c.r)
		}
		if d != c.want {
			t.Errorf("Expected %q to map to %d, got %d", c.r, c.want, d)
		}
	}

	for _, r := range []rune{'q', 'H', 'x', ' ', '1', 'é'} {
		if _, ok := DirectionFromRune(r); ok {
			t.Errorf("Expected %q not to map to a direction", r)
		}
	}
}

func TestMoveDeltas(t *testing.T) {
	cases := []struct {
		d            Direction
		wantX, wantY int
	}{
		{Right, 4, 3},
		{Left, 2, 3},
		{Down, 3, 4},
		{Up, 3, 2},
	}
	for _, c := range cases {
		cur := Cursor{X: 3, Y: 3}
		if err := cur.Move(c.d); err != nil {
			t.Fatalf("Move(%d) failed: %v", c.d, err)
		}
		if cur.X != c.wantX || cur.Y != c.wantY {
			t.Errorf("Move(%d): expected (%d,%d), got (%d,%d)", c.d, c.wantX, c.wantY, cur.X, cur.Y)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	cur := Cursor{X: 7, Y: 11}

	cur.Move(Right)
	cur.Move(Left)
	if cur.X != 7 {
		t.Errorf("Expected right then left to restore x=7, got %d", cur.X)
	}

	cur.Move(Down)
	cur.Move(Up)
	if cur.Y != 11 {
		t.Errorf("Expected down then up to restore y=11, got %d", cur.Y)
	}
}

func TestMoveBounds(t *testing.T) {
	cur := Cursor{}

	if err := cur.Move(Left); !errors.Is(err, ErrCursorBounds) {
		t.Errorf("Expected ErrCursorBounds moving left at x=0, got %v", err)
	}
	if err := cur.Move(Up); !errors.Is(err, ErrCursorBounds) {
		t.Errorf("Expected ErrCursorBounds moving up at y=0, got %v", err)
	}
	if cur.X != 0 || cur.Y != 0 {
		t.Errorf("Expected coordinates unchanged after bounds error, got (%d,%d)", cur.X, cur.Y)
	}
}

func TestMoveUnsupportedDirection(t *testing.T) {
	cur := Cursor{X: 2, Y: 2}
	if err := cur.Move(Direction(9)); !errors.Is(err, ErrUnsupportedDirection) {
		t.Errorf("Expected ErrUnsupportedDirection, got %v", err)
	}
	if cur.X != 2 || cur.Y != 2 {
		t.Errorf("Expected coordinates unchanged, got (%d,%d)", cur.X, cur.Y)
	}
}
