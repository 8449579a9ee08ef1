// Package terminal provides direct ANSI terminal control for the
// full-screen interface: raw mode lifecycle, window size queries,
// bounded input polling, and escape sequence key decoding.
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI
// sequences. Target environments: Linux, macOS, BSDs with
// xterm-compatible terminals.
package terminal
