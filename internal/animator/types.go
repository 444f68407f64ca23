package animator

import (
	"fmt"
	"time"

	"github.com/san-kum/numero/internal/digits"
)

const (
	DefaultNumDigits  = 5
	MinNumDigits      = 3
	MaxNumDigits      = 20
	DefaultSeparator  = " "
	DefaultBaseDelay  = 50 * time.Millisecond
	DefaultDuration   = 3 * time.Second
	DefaultMultiplier = 1.5
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseScrambling
	PhaseSettling
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseScrambling:
		return "scrambling"
	case PhaseSettling:
		return "settling"
	case PhaseDone:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// Settings is fixed for the lifetime of a run.
type Settings struct {
	NumDigits int
	Separator string
	// Final is the number to settle on; nil means generate one.
	Final         digits.Sequence
	ShuffleReveal bool
	PreReveal     bool
	Policy        digits.Policy
	BaseDelay     time.Duration
	Duration      time.Duration
	Multiplier    float64
}

func DefaultSettings() Settings {
	return Settings{
		NumDigits:  DefaultNumDigits,
		Separator:  DefaultSeparator,
		PreReveal:  true,
		Policy:     digits.PolicyDistinct,
		BaseDelay:  DefaultBaseDelay,
		Duration:   DefaultDuration,
		Multiplier: DefaultMultiplier,
	}
}

func (s Settings) Validate() error {
	if s.NumDigits <= 0 {
		return fmt.Errorf("%w: digit count must be positive, got %d", ErrInvalidSettings, s.NumDigits)
	}
	if s.Final != nil {
		if len(s.Final) != s.NumDigits {
			return fmt.Errorf("%w: %d digits, want %d", ErrLengthMismatch, len(s.Final), s.NumDigits)
		}
		if !s.Final.IsValid() {
			return fmt.Errorf("%w: final number %q is not decimal", ErrInvalidSettings, s.Final)
		}
	}
	if s.BaseDelay <= 0 {
		return fmt.Errorf("%w: pacing delay must be positive, got %v", ErrInvalidSettings, s.BaseDelay)
	}
	if s.Duration < 0 {
		return fmt.Errorf("%w: duration must not be negative, got %v", ErrInvalidSettings, s.Duration)
	}
	if s.Multiplier <= 1 {
		return fmt.Errorf("%w: multiplier must exceed 1, got %g", ErrInvalidSettings, s.Multiplier)
	}
	return nil
}

// Frame is one render event.
type Frame struct {
	Phase  Phase
	Digits digits.Sequence
	Delay  time.Duration
	// Revealed is the position settled by this frame, or -1.
	Revealed int
}

// Renderer draws a frame after sleeping for delay.
type Renderer interface {
	Render(seq digits.Sequence, delay time.Duration) error
}

type Observer interface {
	OnPhase(from, to Phase)
	OnFrame(f Frame)
}

type Result struct {
	Final          digits.Sequence
	Order          []int
	ScrambleFrames int
	SettleFrames   int
	Delays         []time.Duration
	Elapsed        time.Duration
}
