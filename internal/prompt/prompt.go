// Package prompt collects animation settings from the user or at random.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/numero/internal/animator"
	"github.com/san-kum/numero/internal/digits"
)

// ErrUnknownOption indicates a menu answer other than the listed options.
var ErrUnknownOption = errors.New("prompt: option not recognized")

// ValidationError reports user input that cannot configure a run.
type ValidationError struct {
	Input   string
	Message string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Wrapped
}

// IsValidation reports whether err came from rejected user input.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	min, max int
}

func New(in io.Reader, out io.Writer, min, max int) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, min: min, max: max}
}

// Ask prints question and returns the answer line without its line ending.
// An answer cut short by end of input is returned as is; end of input with
// no answer at all is an error.
func (p *Prompter) Ask(question string) (string, error) {
	if _, err := io.WriteString(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *Prompter) confirm(question string) (bool, error) {
	ans, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(ans), "y"), nil
}

// UseRandom asks whether to skip the manual questions.
func (p *Prompter) UseRandom() (bool, error) {
	return p.confirm("\nUse default random values? (y/n) ")
}

// Collect asks for random or manual settings and fills them into base.
func (p *Prompter) Collect(r digits.Rand, base animator.Settings) (animator.Settings, error) {
	random, err := p.UseRandom()
	if err != nil {
		return base, err
	}
	if random {
		return Random(r, base, p.min, p.max), nil
	}
	return p.Manual(base)
}

// Manual walks through the digit count or explicit number menu and the
// reveal order question.
func (p *Prompter) Manual(base animator.Settings) (animator.Settings, error) {
	s := base
	fmt.Fprintln(p.out, "\nEnter the number for the option you want:")
	fmt.Fprintln(p.out, "\t1. Specify a number of digits to generate")
	fmt.Fprintln(p.out, "\t2. Provide a specific number to generate")
	opt, err := p.Ask("\nOption: ")
	if err != nil {
		return base, err
	}

	switch strings.TrimSpace(opt) {
	case "1":
		ans, err := p.Ask(fmt.Sprintf("\nEnter a number of digits between %d and %d: ", p.min, p.max))
		if err != nil {
			return base, err
		}
		n, err := digits.ParseCount(ans, p.min, p.max)
		if err != nil {
			return base, &ValidationError{Input: ans, Message: "Enter a valid number of digits", Wrapped: err}
		}
		s.NumDigits = n
		s.Final = nil
	case "2":
		ans, err := p.Ask(fmt.Sprintf("\nEnter a number that has between %d and %d digits: ", p.min, p.max))
		if err != nil {
			return base, err
		}
		final, err := digits.Parse(ans, p.min, p.max)
		if err != nil {
			return base, &ValidationError{Input: ans, Message: "Enter a valid number", Wrapped: err}
		}
		s.Final = final
		s.NumDigits = len(final)
	default:
		return base, &ValidationError{Input: opt, Message: "Option not recognized", Wrapped: ErrUnknownOption}
	}

	shuffle, err := p.confirm("\nWould you like to display the final digits in a random order? (y/n) ")
	if err != nil {
		return base, err
	}
	s.ShuffleReveal = shuffle
	return s, nil
}

// Random picks a digit count in [min, max] and a reveal order by coin flip.
func Random(r digits.Rand, base animator.Settings, min, max int) animator.Settings {
	s := base
	s.NumDigits = min + r.IntN(max-min+1)
	s.Final = nil
	s.ShuffleReveal = r.IntN(2) == 1
	return s
}

// Close blocks until the user presses return and reports what was typed.
func (p *Prompter) Close() (string, error) {
	ans, err := p.Ask("Please press enter when complete . . . ")
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return ans, nil
}

// Scold returns the reply to anything typed at the closing prompt, or "".
func Scold(typed string) string {
	if typed == "" {
		return ""
	}
	return fmt.Sprintf("\nI told you to hit enter; why'd you type \"%s\"???", typed)
}
