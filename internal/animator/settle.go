package animator

import (
	"fmt"
	"time"

	"github.com/san-kum/numero/internal/digits"
)

// Plan is the full settle phase worked out ahead of rendering.
type Plan struct {
	Order  []int
	Frames []Frame
}

// RevealOrder returns the positions 0..n-1, shuffled when shuffle is set.
func RevealOrder(r digits.Rand, n int, shuffle bool) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if shuffle {
		r.Shuffle(n, func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	return order
}

// DelaySchedule returns the pacing delay of each of n reveal frames. The
// first reveal already waits base*multiplier and every later one is
// multiplier times longer than the last.
func DelaySchedule(base time.Duration, multiplier float64, n int) []time.Duration {
	delays := make([]time.Duration, n)
	d := float64(base)
	prev := base
	for i := range delays {
		d *= multiplier
		next := time.Duration(d)
		if next <= prev {
			next = prev + 1
		}
		delays[i] = next
		prev = next
	}
	return delays
}

// PlanSettle computes the frames that turn cur into final. cur is not modified.
//
// With PreReveal set, the first frame rescrambles every position to a digit
// that is neither its previous nor its final value and is shown with the base
// delay. Each following frame fixes one more position in reveal order.
func PlanSettle(r digits.Rand, s Settings, cur, final digits.Sequence) (Plan, error) {
	if len(cur) != len(final) {
		return Plan{}, fmt.Errorf("%w: current has %d digits, final has %d", ErrLengthMismatch, len(cur), len(final))
	}

	order := RevealOrder(r, len(final), s.ShuffleReveal)
	frames := make([]Frame, 0, len(final)+1)

	shown := cur.Clone()
	if s.PreReveal {
		shown = digits.ScrambleAvoiding(r, cur, final)
		frames = append(frames, Frame{
			Phase:    PhaseSettling,
			Digits:   shown.Clone(),
			Delay:    s.BaseDelay,
			Revealed: -1,
		})
	}

	delays := DelaySchedule(s.BaseDelay, s.Multiplier, len(order))
	for i, idx := range order {
		shown[idx] = final[idx]
		frames = append(frames, Frame{
			Phase:    PhaseSettling,
			Digits:   shown.Clone(),
			Delay:    delays[i],
			Revealed: idx,
		})
	}

	return Plan{Order: order, Frames: frames}, nil
}
