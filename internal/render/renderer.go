package render

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/numero/internal/digits"
)

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Terminal redraws the digit row in place on a single line.
type Terminal struct {
	out   io.Writer
	sep   string
	width int
	sleep func(time.Duration)
}

func NewTerminal(out io.Writer, sep string, width int, sleep func(time.Duration)) *Terminal {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Terminal{out: out, sep: sep, width: width, sleep: sleep}
}

// Render waits for delay, returns the cursor to the start of the line and
// writes the centred row without a newline.
func (t *Terminal) Render(seq digits.Sequence, delay time.Duration) error {
	t.sleep(delay)
	if _, err := io.WriteString(t.out, "\r"+Center(seq.Join(t.sep), t.width)); err != nil {
		return err
	}
	return flush(t.out)
}

func flush(w io.Writer) error {
	switch f := w.(type) {
	case flusher:
		return f.Flush()
	case syncer:
		// Sync fails on terminals and pipes; a failed flush of an unbuffered
		// device is not a render failure.
		_ = f.Sync()
	}
	return nil
}

// Center pads s with spaces to width columns. Odd padding puts the extra
// space on the left when width is odd and on the right otherwise. A width
// narrower than s returns s unchanged.
func Center(s string, width int) string {
	n := lipgloss.Width(s)
	if width <= n {
		return s
	}
	marg := width - n
	left := marg/2 + (marg & width & 1)
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", marg-left)
}
