package editor

import (
	"io"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/rvim/terminal"
)

// Banner is the welcome text shown on the row a third of the way down.
const Banner = "Rusty vim --- Version 0.1.1"

// Renderer composes full frames into a FrameBuffer and flushes them to
// the output device in a single write. Dimensions are captured once at
// startup; the viewport is fixed for the process lifetime.
type Renderer struct {
	width  int
	height int
	buf    *FrameBuffer
	out    io.Writer
}

// NewRenderer creates a renderer for a width x height viewport writing
// to out.
func NewRenderer(width, height int, out io.Writer) *Renderer {
	return &Renderer{
		width:  width,
		height: height,
		buf:    NewFrameBuffer(),
		out:    out,
	}
}

// RenderFrame recomposes the whole screen from scratch and flushes it
// as one write.
func (r *Renderer) RenderFrame(cur *Cursor) error {
	r.compose(cur)
	return r.buf.Flush(r.out)
}

// compose fills the frame buffer: cursor hidden and homed, one line
// per row, then the cursor repositioned to its tracked cell and shown.
func (r *Renderer) compose(cur *Cursor) {
	r.buf.Append(terminal.CursorHide)
	r.buf.Append(terminal.CursorHome)
	r.drawRows()
	r.buf.Append(terminal.CursorPos(cur.X, cur.Y))
	r.buf.Append(terminal.CursorShow)
}

// drawRows emits one line per terminal row: a tilde everywhere except
// the banner row. Each row clears stale content to its right; the last
// row gets no trailing line break so the viewport does not scroll.
func (r *Renderer) drawRows() {
	bannerRow := r.height / 3
	for y := 0; y < r.height; y++ {
		if y == bannerRow {
			r.drawBanner()
		} else {
			r.buf.AppendByte('~')
		}
		r.buf.Append(terminal.ClearToEOL)
		if y < r.height-1 {
			r.buf.AppendString("\r\n")
		}
	}
}

// drawBanner centers the banner text, truncated to the viewport width.
// The first padding column is a tilde so the background pattern is
// unbroken down the left edge.
func (r *Renderer) drawBanner() {
	text := Banner
	if runewidth.StringWidth(text) > r.width {
		text = runewidth.Truncate(text, r.width, "")
	}
	padding := (r.width - runewidth.StringWidth(text)) / 2
	if padding > 0 {
		r.buf.AppendByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		r.buf.AppendByte(' ')
	}
	r.buf.AppendString(text)
}
