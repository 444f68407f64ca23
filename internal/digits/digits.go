package digits

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet holds the ten decimal digits in order.
const Alphabet = "0123456789"

var (
	// ErrInvalidNumber indicates input containing anything but decimal digits.
	ErrInvalidNumber = errors.New("digits: not a decimal number")

	// ErrDigitCount indicates a digit count outside the configured bounds.
	ErrDigitCount = errors.New("digits: digit count out of range")
)

// Rand is the subset of *rand.Rand the package draws from.
type Rand interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type Sequence []byte

func (s Sequence) Clone() Sequence {
	c := make(Sequence, len(s))
	copy(c, s)
	return c
}

func (s Sequence) String() string {
	return string(s)
}

// Join renders the digits with sep between each pair.
func (s Sequence) Join(sep string) string {
	if len(s) == 0 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s) + len(sep)*(len(s)-1))
	for i, d := range s {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteByte(d)
	}
	return b.String()
}

// IsValid reports whether every element is a decimal digit character.
func (s Sequence) IsValid() bool {
	for _, d := range s {
		if !IsDigit(d) {
			return false
		}
	}
	return true
}

func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func IsDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Random returns n uniformly random digits.
func Random(r Rand, n int) Sequence {
	s := make(Sequence, n)
	for i := range s {
		s[i] = Alphabet[r.IntN(len(Alphabet))]
	}
	return s
}

// Allowed returns the alphabet with every excluded digit removed, in order.
func Allowed(exclude ...byte) []byte {
	allowed := make([]byte, 0, len(Alphabet))
	for i := 0; i < len(Alphabet); i++ {
		d := Alphabet[i]
		skip := false
		for _, e := range exclude {
			if d == e {
				skip = true
				break
			}
		}
		if !skip {
			allowed = append(allowed, d)
		}
	}
	return allowed
}

// PickExcluding draws uniformly from the digits not listed in exclude.
// It panics if exclude covers the whole alphabet.
func PickExcluding(r Rand, exclude ...byte) byte {
	allowed := Allowed(exclude...)
	if len(allowed) == 0 {
		panic("digits: every digit excluded")
	}
	return allowed[r.IntN(len(allowed))]
}

// Parse validates an explicit number whose length must lie in [min, max].
func Parse(s string, min, max int) (Sequence, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
	}
	if len(s) < min || len(s) > max {
		return nil, fmt.Errorf("%w: %d digits, want %d to %d", ErrDigitCount, len(s), min, max)
	}
	return Sequence(s), nil
}

// ParseCount validates a requested digit count in [min, max].
func ParseCount(s string, min, max int) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidNumber)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if !IsDigit(s[i]) {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
		}
		n = n*10 + int(s[i]-'0')
		if n > max {
			return 0, fmt.Errorf("%w: %s, want %d to %d", ErrDigitCount, s, min, max)
		}
	}
	if n < min {
		return 0, fmt.Errorf("%w: %d, want %d to %d", ErrDigitCount, n, min, max)
	}
	return n, nil
}
