package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// Screen control
	ClearScreen = []byte("\x1b[2J")
	ClearToEOL  = []byte("\x1b[K")
	CursorHome  = []byte("\x1b[H")

	// Cursor control
	CursorHide = []byte("\x1b[?25l")
	CursorShow = []byte("\x1b[?25h")

	// Reset
	ResetAttrs = []byte("\x1b[0m")
	csiRIS     = []byte("\x1bc") // Reset to Initial State (emergency)

	csiPrefix = []byte("\x1b[")
)

// appendInt appends a decimal integer without allocation
// Optimized for terminal coordinates (0-255 common, 0-999 typical max)
func appendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [5]byte
	i := 4
	for n > 0 {
		buf[i] = byte(n%10) + '0'
		n /= 10
		i--
	}
	return append(dst, buf[i+1:]...)
}

// CursorPos returns the positioning sequence for the 0-indexed cell (x, y).
func CursorPos(x, y int) []byte {
	seq := make([]byte, 0, 16)
	seq = append(seq, csiPrefix...)
	seq = appendInt(seq, y+1)
	seq = append(seq, ';')
	seq = appendInt(seq, x+1)
	seq = append(seq, 'H')
	return seq
}
