package render

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	FallbackColumns = 80
	FallbackLines   = 24
)

// Screen wraps the output terminal for sizing and clearing.
type Screen struct {
	out     io.Writer
	fd      int
	tty     bool
	getenv  func(string) string
	getSize func(fd int) (int, int, error)
}

func NewScreen(f *os.File) *Screen {
	fd := f.Fd()
	return &Screen{
		out:     f,
		fd:      int(fd),
		tty:     isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		getenv:  os.Getenv,
		getSize: term.GetSize,
	}
}

func (s *Screen) IsTerminal() bool { return s.tty }

// Size returns the column and line count. COLUMNS and LINES win when set to
// positive integers, then the terminal device is asked, then 80x24 is used.
func (s *Screen) Size() (cols, lines int) {
	cols = envInt(s.getenv("COLUMNS"))
	lines = envInt(s.getenv("LINES"))
	if cols > 0 && lines > 0 {
		return cols, lines
	}

	tc, tl, err := s.getSize(s.fd)
	if err != nil || tc <= 0 || tl <= 0 {
		tc, tl = FallbackColumns, FallbackLines
	}
	if cols <= 0 {
		cols = tc
	}
	if lines <= 0 {
		lines = tl
	}
	return cols, lines
}

// Clear wipes the screen and homes the cursor. Non-terminal output is left
// untouched.
func (s *Screen) Clear() {
	if !s.tty {
		return
	}
	termenv.NewOutput(s.out).ClearScreen()
}

func (s *Screen) Newlines(n int) error {
	if n <= 0 {
		return nil
	}
	_, err := io.WriteString(s.out, strings.Repeat("\n", n))
	return err
}

// VerticalPadding splits lines into the blank lines printed above and below
// a single centred row.
func VerticalPadding(lines int) (before, after int) {
	before = lines / 2
	after = lines - before - 1
	if after < 0 {
		after = 0
	}
	return before, after
}

func envInt(v string) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
