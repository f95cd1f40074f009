package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/randomwalk/core"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csiClear      = []byte("\x1b[2J")
	csiReset      = []byte("\x1b[0m")
	csiCursorPos  = []byte("\x1b[")      // followed by row;colH
	csiBgRGB      = []byte("\x1b[48;2;") // followed by R;G;B;m
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
)

// ANSI renders by writing raw escape sequences: cursor positioning plus a
// truecolor background space per cell. Output matches the classic
// `ESC[row;colH ESC[48;2;r;g;bm ` protocol, 1-indexed.
type ANSI struct {
	w *bufio.Writer
}

// NewANSI returns an ANSI sink writing to w (normally stdout).
func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: bufio.NewWriterSize(w, 32768)}
}

func (a *ANSI) Clear() {
	a.w.Write(csiCursorHide)
	a.w.Write(csiClear)
}

func (a *ANSI) Draw(c core.Coordinate, color core.RGB) {
	w := a.w
	w.Write(csiCursorPos)
	writeInt(w, int(c.Y)+1)
	w.WriteByte(';')
	writeInt(w, int(c.X)+1)
	w.WriteByte('H')
	w.Write(csiBgRGB)
	writeInt(w, int(color.R))
	w.WriteByte(';')
	writeInt(w, int(color.G))
	w.WriteByte(';')
	writeInt(w, int(color.B))
	w.WriteByte('m')
	w.WriteByte(' ')
}

func (a *ANSI) Flush() error {
	return a.w.Flush()
}

func (a *ANSI) Fini() {
	a.w.Write(csiReset)
	a.w.Write(csiCursorShow)
	a.w.Flush()
}

// writeInt writes an integer without allocation.
// Terminal values are 0-255; three digits cover every caller.
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	w.WriteByte(byte(n/100) + '0')
	w.WriteByte(byte(n/10%10) + '0')
	w.WriteByte(byte(n%10) + '0')
}
