package animator_test

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/san-kum/numero/internal/animator"
	"github.com/san-kum/numero/internal/digits"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time        { return c.now }
func (c *fakeClock) Sleep(d time.Duration) { c.now = c.now.Add(d) }

type renderedFrame struct {
	digits digits.Sequence
	delay  time.Duration
}

// recordingRenderer sleeps on the fake clock and keeps every frame.
type recordingRenderer struct {
	clock  *fakeClock
	frames []renderedFrame
	failAt int
}

var errRender = errors.New("render failed")

func newRecorder(c *fakeClock) *recordingRenderer {
	return &recordingRenderer{clock: c, failAt: -1}
}

func (r *recordingRenderer) Render(seq digits.Sequence, delay time.Duration) error {
	if r.failAt == len(r.frames) {
		return errRender
	}
	r.clock.Sleep(delay)
	r.frames = append(r.frames, renderedFrame{digits: seq.Clone(), delay: delay})
	return nil
}

type phaseRecorder struct {
	transitions [][2]animator.Phase
	frames      []animator.Frame
}

func (p *phaseRecorder) OnPhase(from, to animator.Phase) {
	p.transitions = append(p.transitions, [2]animator.Phase{from, to})
}

func (p *phaseRecorder) OnFrame(f animator.Frame) { p.frames = append(p.frames, f) }

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}
