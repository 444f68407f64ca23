package animator

import (
	"context"

	"github.com/san-kum/numero/internal/digits"
)

type Animator struct {
	settings  Settings
	rng       digits.Rand
	clock     Clock
	renderer  Renderer
	observers []Observer

	phase   Phase
	current digits.Sequence
	final   digits.Sequence
}

// New validates settings and draws the starting digits. When no final number
// is configured it is generated here, before any scramble frame, so it never
// depends on entropy consumed while scrambling.
func New(settings Settings, rng digits.Rand, clock Clock, renderer Renderer) (*Animator, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	a := &Animator{
		settings: settings,
		rng:      rng,
		clock:    clock,
		renderer: renderer,
		phase:    PhaseIdle,
	}
	a.current = digits.Random(rng, settings.NumDigits)
	if settings.Final != nil {
		a.final = settings.Final.Clone()
	} else {
		a.final = digits.Random(rng, settings.NumDigits)
	}
	return a, nil
}

func (a *Animator) AddObserver(o Observer) { a.observers = append(a.observers, o) }

func (a *Animator) Phase() Phase             { return a.phase }
func (a *Animator) Settings() Settings       { return a.settings }
func (a *Animator) Current() digits.Sequence { return a.current.Clone() }
func (a *Animator) Final() digits.Sequence   { return a.final.Clone() }

// ScrambleStep replaces the current digits with the next scramble frame.
func (a *Animator) ScrambleStep() digits.Sequence {
	a.current = a.settings.Policy.Step(a.rng, a.current)
	return a.current.Clone()
}

// Plan works out the settle phase for the current digits without applying it.
func (a *Animator) Plan() (Plan, error) {
	return PlanSettle(a.rng, a.settings, a.current, a.final)
}

// Apply records a frame as displayed. Drivers that render on their own
// schedule, such as the TUI, use it in place of Run.
func (a *Animator) Apply(f Frame) {
	a.current = f.Digits.Clone()
	a.notifyFrame(f)
}

// Transition moves the animator to the next phase and notifies observers.
func (a *Animator) Transition(to Phase) {
	from := a.phase
	a.phase = to
	for _, o := range a.observers {
		o.OnPhase(from, to)
	}
}

// Run plays the whole animation synchronously through the renderer.
func (a *Animator) Run(ctx context.Context) (*Result, error) {
	start := a.clock.Now()
	result := &Result{}

	a.Transition(PhaseScrambling)
	n, err := a.scramble(ctx)
	result.ScrambleFrames = n
	if err != nil {
		return result, err
	}

	a.Transition(PhaseSettling)
	plan, err := a.Plan()
	if err != nil {
		return result, &PhaseError{Phase: PhaseSettling, Frame: 0, Wrapped: err}
	}
	result.Order = plan.Order
	for i, f := range plan.Frames {
		if err := ctx.Err(); err != nil {
			return result, &PhaseError{Phase: PhaseSettling, Frame: i, Wrapped: err}
		}
		if err := a.renderer.Render(f.Digits, f.Delay); err != nil {
			return result, &PhaseError{Phase: PhaseSettling, Frame: i, Wrapped: err}
		}
		a.Apply(f)
		result.SettleFrames++
		if f.Revealed >= 0 {
			result.Delays = append(result.Delays, f.Delay)
		}
	}

	a.Transition(PhaseDone)
	result.Final = a.Current()
	result.Elapsed = a.clock.Now().Sub(start)
	return result, nil
}

func (a *Animator) scramble(ctx context.Context) (int, error) {
	start := a.clock.Now()
	frames := 0
	for a.clock.Now().Sub(start) < a.settings.Duration {
		if err := ctx.Err(); err != nil {
			return frames, &PhaseError{Phase: PhaseScrambling, Frame: frames, Wrapped: err}
		}
		seq := a.ScrambleStep()
		if err := a.renderer.Render(seq, a.settings.BaseDelay); err != nil {
			return frames, &PhaseError{Phase: PhaseScrambling, Frame: frames, Wrapped: err}
		}
		a.notifyFrame(Frame{Phase: PhaseScrambling, Digits: seq, Delay: a.settings.BaseDelay, Revealed: -1})
		frames++
	}
	return frames, nil
}

func (a *Animator) notifyFrame(f Frame) {
	for _, o := range a.observers {
		o.OnFrame(f)
	}
}
