// Package editor composes frames and runs the render/read/dispatch
// cycle: tilde-filled rows, a centered version banner, and a cursor
// driven by h/j/k/l until Ctrl+Q.
package editor
