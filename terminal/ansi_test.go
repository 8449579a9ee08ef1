package terminal

import "testing"

func TestCursorPos(t *testing.T) {
	cases := []struct {
		x, y int
		want string
	}{
		{0, 0, "\x1b[1;1H"},
		{5, 0, "\x1b[1;6H"},
		{79, 23, "\x1b[24;80H"},
		{119, 49, "\x1b[50;120H"},
		{1233, 999, "\x1b[1000;1234H"},
	}
	for _, c := range cases {
		got := string(CursorPos(c.x, c.y))
		if got != c.want {
			t.Errorf("CursorPos(%d, %d): expected %q, got %q", c.x, c.y, c.want, got)
		}
	}
}

func TestAppendInt(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{123, "123"},
		{1234, "1234"},
		{-3, "0"},
	}
	for _, c := range cases {
		got := string(appendInt(nil, c.n))
		if got != c.want {
			t.Errorf("appendInt(%d): expected %q, got %q", c.n, c.want, got)
		}
	}
}
