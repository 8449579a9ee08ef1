package editor

import (
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// ErrInvalidText reports non-UTF-8 bytes reaching the frame buffer
// through its io.Writer surface.
var ErrInvalidText = errors.New("frame buffer: invalid UTF-8")

// FrameBuffer accumulates one composed frame so the terminal sees a
// single write per refresh instead of many small flickering ones.
// Created empty, grows during composition, cleared after a successful
// flush.
type FrameBuffer struct {
	content []byte
}

// NewFrameBuffer returns an empty buffer sized for a typical frame.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{content: make([]byte, 0, 4096)}
}

// Append adds raw bytes (escape fragments) to the frame.
func (b *FrameBuffer) Append(p []byte) {
	b.content = append(b.content, p...)
}

// AppendByte adds a single byte to the frame.
func (b *FrameBuffer) AppendByte(c byte) {
	b.content = append(b.content, c)
}

// AppendString adds a string to the frame.
func (b *FrameBuffer) AppendString(s string) {
	b.content = append(b.content, s...)
}

// Write implements io.Writer for callers feeding external text.
// Bytes that are not valid UTF-8 are rejected with ErrInvalidText.
func (b *FrameBuffer) Write(p []byte) (int, error) {
	if !utf8.Valid(p) {
		return 0, ErrInvalidText
	}
	b.content = append(b.content, p...)
	return len(p), nil
}

// Len returns the number of accumulated bytes.
func (b *FrameBuffer) Len() int {
	return len(b.content)
}

// String returns the accumulated frame content.
func (b *FrameBuffer) String() string {
	return string(b.content)
}

// Flush writes the whole frame to w in a single write, then clears the
// buffer. On failure the content is kept so the error is observable
// alongside what was being written.
func (b *FrameBuffer) Flush(w io.Writer) error {
	n, err := w.Write(b.content)
	if err != nil {
		return fmt.Errorf("flush frame: %w", err)
	}
	if n != len(b.content) {
		return fmt.Errorf("flush frame: %w", io.ErrShortWrite)
	}
	b.content = b.content[:0]
	return nil
}
