package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/lixenwraith/rvim/terminal"
)

// composeFrame builds one frame without flushing and returns its content.
func composeFrame(t *testing.T, width, height int, cur *Cursor) string {
	t.Helper()
	r := NewRenderer(width, height, io.Discard)
	r.compose(cur)
	return r.buf.String()
}

// frameBody strips the leading cursor-hide/home and the trailing
// cursor-position/show sequences, leaving just the composed rows.
func frameBody(t *testing.T, frame string, cur *Cursor) string {
	t.Helper()
	prefix := string(terminal.CursorHide) + string(terminal.CursorHome)
	suffix := string(terminal.CursorPos(cur.X, cur.Y)) + string(terminal.CursorShow)
	if !strings.HasPrefix(frame, prefix) {
		t.Fatalf("Expected frame to start with hide+home, got %q", frame[:12])
	}
	if !strings.HasSuffix(frame, suffix) {
		t.Fatalf("Expected frame to end with cursor position %q, got %q", suffix, frame)
	}
	return frame[len(prefix) : len(frame)-len(suffix)]
}

func TestComposeScenario24x80(t *testing.T) {
	cur := &Cursor{}
	body := frameBody(t, composeFrame(t, 80, 24, cur), cur)
	lines := strings.Split(body, "\r\n")

	if len(lines) != 24 {
		t.Fatalf("Expected 24 lines, got %d", len(lines))
	}

	for i, line := range lines {
		if i == 8 {
			continue
		}
		if line != "~\x1b[K" {
			t.Errorf("Expected filler row at %d, got %q", i, line)
		}
	}

	// Banner on row 24/3 = 8: one tilde, 25 spaces, then the text
	want := "~" + strings.Repeat(" ", 25) + Banner + "\x1b[K"
	if lines[8] != want {
		t.Errorf("Expected banner row %q, got %q", want, lines[8])
	}
}

func TestComposeRowCountAndSeparators(t *testing.T) {
	for _, height := range []int{1, 2, 3, 10, 50} {
		cur := &Cursor{}
		body := frameBody(t, composeFrame(t, 40, height, cur), cur)
		if got := strings.Count(body, "\r\n"); got != height-1 {
			t.Errorf("height %d: expected %d separators, got %d", height, height-1, got)
		}
		if got := len(strings.Split(body, "\r\n")); got != height {
			t.Errorf("height %d: expected %d lines, got %d", height, height, got)
		}
	}
}

func TestComposeBannerTruncated(t *testing.T) {
	cur := &Cursor{}
	body := frameBody(t, composeFrame(t, 10, 3, cur), cur)
	lines := strings.Split(body, "\r\n")

	// Banner row 3/3 = 1, width 10 < banner length: first 10 characters,
	// no leading tilde or spaces
	want := Banner[:10] + "\x1b[K"
	if lines[1] != want {
		t.Errorf("Expected truncated banner %q, got %q", want, lines[1])
	}
}

func TestComposeBannerExactWidthNoPadding(t *testing.T) {
	cur := &Cursor{}
	width := len(Banner)
	body := frameBody(t, composeFrame(t, width, 6, cur), cur)
	lines := strings.Split(body, "\r\n")

	// Zero padding: the banner starts the row, no glyph in front
	want := Banner + "\x1b[K"
	if lines[2] != want {
		t.Errorf("Expected unpadded banner %q, got %q", want, lines[2])
	}
}

func TestComposeBannerCentering(t *testing.T) {
	cur := &Cursor{}
	width := len(Banner) + 8 // padding (8)/2 = 4: tilde + 3 spaces
	body := frameBody(t, composeFrame(t, width, 9, cur), cur)
	lines := strings.Split(body, "\r\n")

	want := "~   " + Banner + "\x1b[K"
	if lines[3] != want {
		t.Errorf("Expected centered banner %q, got %q", want, lines[3])
	}
}

func TestComposeIdempotent(t *testing.T) {
	cur := &Cursor{X: 4, Y: 2}
	first := composeFrame(t, 30, 12, cur)
	second := composeFrame(t, 30, 12, cur)
	if first != second {
		t.Errorf("Expected identical frames for unchanged state")
	}
}

func TestComposeCursorPlacement(t *testing.T) {
	cur := &Cursor{X: 12, Y: 7}
	frame := composeFrame(t, 40, 20, cur)
	if !strings.HasSuffix(frame, string(terminal.CursorPos(12, 7))+string(terminal.CursorShow)) {
		t.Errorf("Expected frame to position cursor at (12,7) before showing it")
	}
}

func TestRenderFrameSingleWriteAndClear(t *testing.T) {
	var sink countingWriter
	r := NewRenderer(20, 5, &sink)
	cur := &Cursor{}

	if err := r.RenderFrame(cur); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if sink.calls != 1 {
		t.Errorf("Expected one device write per frame, got %d", sink.calls)
	}
	if r.buf.Len() != 0 {
		t.Errorf("Expected buffer cleared after flush, got %d bytes", r.buf.Len())
	}

	// Next frame recomposes from scratch and matches the first
	first := sink.String()
	sink.Reset()
	if err := r.RenderFrame(cur); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}
	if sink.String() != first {
		t.Errorf("Expected identical consecutive frames")
	}
}
