package terminal

import (
	"fmt"
	"unicode/utf8"
)

// pollTimeoutMs bounds each input wait. On timeout the reader polls
// again; there is no overall deadline, a key press can be awaited
// indefinitely.
const pollTimeoutMs = 5000

// Reader decodes raw terminal bytes into key events. Fully
// synchronous: the calling goroutine blocks inside ReadKey. Single
// caller only, not safe for concurrent use.
type Reader struct {
	backend Backend

	// Decoded events not yet handed to the caller
	pending []Event

	// Persistent buffer for stream assembly; escape sequences and
	// UTF-8 runes can straddle read boundaries
	buf []byte
}

// NewReader creates a reader on top of the given backend.
func NewReader(b Backend) *Reader {
	return &Reader{
		backend: b,
		buf:     make([]byte, 0, 256),
	}
}

// ReadKey blocks until a key press is decoded and returns it.
// Non-key input (unrecognized control sequences) is consumed and
// discarded; the reader simply keeps polling.
func (r *Reader) ReadKey() (Event, error) {
	for {
		for len(r.pending) > 0 {
			ev := r.pending[0]
			r.pending = r.pending[1:]
			if ev.Key != KeyNone {
				return ev, nil
			}
		}

		data, err := r.backend.Read(pollTimeoutMs)
		if err != nil {
			return Event{}, fmt.Errorf("read key: %w", err)
		}

		if len(data) == 0 {
			// Poll timeout. A buffered lone ESC with no continuation
			// bytes by now is a real Escape press.
			if len(r.buf) == 1 && r.buf[0] == 0x1b {
				r.buf = r.buf[:0]
				return Event{Key: KeyEscape}, nil
			}
			continue
		}

		r.buf = append(r.buf, data...)

		// Parse as much as possible, get consumed count
		consumed := r.parse(r.buf)

		// Compact buffer
		if consumed > 0 {
			if consumed >= len(r.buf) {
				r.buf = r.buf[:0]
			} else {
				copy(r.buf, r.buf[consumed:])
				r.buf = r.buf[:len(r.buf)-consumed]
			}
		}
	}
}

func (r *Reader) emit(ev Event) {
	r.pending = append(r.pending, ev)
}

// parse decodes raw bytes into events and returns bytes consumed
// (stops on an incomplete trailing sequence)
func (r *Reader) parse(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		// Fast path: printable ASCII
		if b >= 0x20 && b < 0x7f {
			r.emit(Event{Key: KeyRune, Rune: rune(b)})
			i++
			continue
		}

		// Escape sequence
		if b == 0x1b {
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i // Wait for more data
			}

			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i // Incomplete sequence, wait for more data
			}

			r.emit(ev)
			i += consumed
			continue
		}

		// Control characters
		if b < 0x20 {
			r.emit(parseControl(b))
			i++
			continue
		}

		// DEL
		if b == 0x7f {
			r.emit(Event{Key: KeyBackspace})
			i++
			continue
		}

		// UTF-8 multibyte
		seqLen := utf8SeqLen(b)
		if seqLen == 0 {
			// Invalid start byte, skip
			i++
			continue
		}
		if i+seqLen > n {
			// Incomplete UTF-8, wait for more data
			return i
		}

		rn, size := utf8.DecodeRune(data[i : i+seqLen])
		if rn == utf8.RuneError && size <= 1 {
			// Malformed continuation, skip the start byte
			i++
			continue
		}
		r.emit(Event{Key: KeyRune, Rune: rn})
		i += size
	}
	return i
}

// utf8SeqLen returns expected UTF-8 sequence length from start byte, 0 if invalid
func utf8SeqLen(b byte) int {
	if b < 0x80 {
		return 1
	}
	if b&0xe0 == 0xc0 {
		return 2
	}
	if b&0xf0 == 0xe0 {
		return 3
	}
	if b&0xf8 == 0xf0 {
		return 4
	}
	return 0 // Invalid
}

// parseEscape attempts to parse an escape sequence, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{} // Incomplete, wait for more
	}

	// ESC ESC -> Alt+Escape
	if data[1] == 0x1b {
		return 2, Event{Key: KeyEscape, Modifiers: ModAlt}
	}

	if data[1] == '[' {
		return parseCSI(data)
	}
	if data[1] == 'O' {
		return parseSS3(data)
	}

	// Alt+Control character (ESC + 0x00-0x1F)
	if data[1] < 0x20 {
		ev := parseControl(data[1])
		ev.Modifiers |= ModAlt
		return 2, ev
	}

	// Alt+Backspace
	if data[1] == 0x7f {
		return 2, Event{Key: KeyBackspace, Modifiers: ModAlt}
	}

	// Alt+printable
	return 2, Event{Key: KeyRune, Rune: rune(data[1]), Modifiers: ModAlt}
}

// parseCSI parses a CSI sequence without allocation
func parseCSI(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}

	end := 2
	maxScan := len(data)
	if maxScan > 16 {
		maxScan = 16
	}

	for end < maxScan {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			end++
			break
		}
		if b < 0x20 || b > 0x7e {
			return 0, Event{}
		}
		end++
	}

	if end <= 2 || end > maxScan {
		return 0, Event{} // Incomplete
	}

	// Check last byte is valid terminator
	lastByte := data[end-1]
	if !((lastByte >= 'A' && lastByte <= 'Z') || (lastByte >= 'a' && lastByte <= 'z') || lastByte == '~') {
		return 0, Event{} // Incomplete, no terminator found
	}

	if key, mod, ok := lookupCSI(data[2:end]); ok {
		return end, Event{Key: key, Modifiers: mod}
	}

	// Unknown but valid CSI syntax (focus, mouse, ...) - consume and
	// return KeyNone so ReadKey discards it
	return end, Event{Key: KeyNone}
}

// parseSS3 parses an SS3 sequence, consuming even unknown sequences
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Key: key, Modifiers: mod}
	}
	// Unknown SS3 - consume to prevent garbage
	return 3, Event{Key: KeyNone}
}

// parseControl maps C0 control bytes to events. Letters come back as
// the plain rune plus ModCtrl; the handful of control bytes with a key
// of their own (Tab, Enter) keep their named form.
func parseControl(b byte) Event {
	switch b {
	case 0x00: // Ctrl+Space
		return Event{Key: KeyRune, Rune: ' ', Modifiers: ModCtrl}
	case 0x09:
		return Event{Key: KeyTab}
	case 0x0a, 0x0d: // LF, CR (Enter)
		return Event{Key: KeyEnter}
	}

	// Ctrl+letter (Ctrl+A = 0x01 .. Ctrl+Z = 0x1A)
	if b >= 0x01 && b <= 0x1a {
		return Event{Key: KeyRune, Rune: rune('a' + b - 0x01), Modifiers: ModCtrl}
	}

	// Remaining C0 bytes map to Ctrl+symbol (0x1c -> Ctrl+\ etc.)
	return Event{Key: KeyRune, Rune: rune(b + 0x40), Modifiers: ModCtrl}
}
