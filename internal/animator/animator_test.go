package animator_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numero/internal/animator"
	"github.com/san-kum/numero/internal/digits"
)

var _ = Describe("Settings", func() {
	DescribeTable("Validate rejects unusable settings",
		func(mutate func(*animator.Settings), target error) {
			s := animator.DefaultSettings()
			mutate(&s)
			Expect(s.Validate()).To(MatchError(target))
		},
		Entry("zero digits", func(s *animator.Settings) { s.NumDigits = 0 }, animator.ErrInvalidSettings),
		Entry("zero pacing", func(s *animator.Settings) { s.BaseDelay = 0 }, animator.ErrInvalidSettings),
		Entry("negative duration", func(s *animator.Settings) { s.Duration = -time.Second }, animator.ErrInvalidSettings),
		Entry("multiplier of one", func(s *animator.Settings) { s.Multiplier = 1 }, animator.ErrInvalidSettings),
		Entry("short final number", func(s *animator.Settings) { s.Final = digits.Sequence("12") }, animator.ErrLengthMismatch),
		Entry("non decimal final", func(s *animator.Settings) { s.Final = digits.Sequence("12a45") }, animator.ErrInvalidSettings),
	)

	It("accepts the defaults", func() {
		Expect(animator.DefaultSettings().Validate()).To(Succeed())
	})
})

var _ = Describe("Animator", func() {
	var (
		clock    *fakeClock
		recorder *recordingRenderer
		settings animator.Settings
	)

	BeforeEach(func() {
		clock = newFakeClock()
		recorder = newRecorder(clock)
		settings = animator.DefaultSettings()
	})

	newAnimator := func(seed uint64) *animator.Animator {
		a, err := animator.New(settings, seeded(seed), clock, recorder)
		Expect(err).NotTo(HaveOccurred())
		return a
	}

	It("starts idle with valid digits of the configured length", func() {
		settings.NumDigits = 12
		a := newAnimator(1)
		Expect(a.Phase()).To(Equal(animator.PhaseIdle))
		Expect(a.Current()).To(HaveLen(12))
		Expect(a.Final()).To(HaveLen(12))
		Expect(a.Current().IsValid()).To(BeTrue())
		Expect(a.Final().IsValid()).To(BeTrue())
	})

	It("settles on the configured final number", func() {
		settings.Final = digits.Sequence("90210")
		a := newAnimator(2)

		result, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Final.String()).To(Equal("90210"))
		Expect(a.Current().String()).To(Equal("90210"))
		Expect(a.Phase()).To(Equal(animator.PhaseDone))
	})

	It("settles on the number drawn before scrambling when none is configured", func() {
		a := newAnimator(3)
		want := a.Final()

		result, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Final).To(Equal(want))
	})

	It("scrambles until the duration budget is spent", func() {
		settings.Duration = 3 * time.Second
		settings.BaseDelay = 50 * time.Millisecond
		a := newAnimator(4)

		result, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ScrambleFrames).To(Equal(60))
		Expect(result.SettleFrames).To(Equal(settings.NumDigits + 1))
		Expect(recorder.frames).To(HaveLen(60 + settings.NumDigits + 1))
	})

	It("renders no scramble frames with a zero duration", func() {
		settings.Duration = 0
		a := newAnimator(5)

		result, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(result.ScrambleFrames).To(BeZero())
		Expect(result.Final).To(Equal(a.Final()))
	})

	It("changes every position on every distinct scramble step", func() {
		settings.NumDigits = 20
		a := newAnimator(6)
		prev := a.Current()
		for i := 0; i < 200; i++ {
			next := a.ScrambleStep()
			for j := range next {
				Expect(next[j]).NotTo(Equal(prev[j]))
			}
			prev = next
		}
	})

	It("keeps every frame decimal and of length N under the independent policy", func() {
		settings.Policy = digits.PolicyIndependent
		settings.NumDigits = 7
		a := newAnimator(7)

		_, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		for _, f := range recorder.frames {
			Expect(f.digits).To(HaveLen(7))
			Expect(f.digits.IsValid()).To(BeTrue())
		}
	})

	It("reveals every position exactly once in shuffled mode", func() {
		settings.NumDigits = 15
		settings.ShuffleReveal = true
		a := newAnimator(8)

		result, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Order).To(HaveLen(15))
		Expect(result.Order).To(ConsistOf(0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14))
	})

	It("slows every reveal down by the multiplier", func() {
		settings.NumDigits = 8
		a := newAnimator(9)

		result, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Delays).To(HaveLen(8))
		Expect(result.Delays[0]).To(Equal(75 * time.Millisecond))
		for i := 1; i < len(result.Delays); i++ {
			Expect(result.Delays[i]).To(BeNumerically(">", result.Delays[i-1]))
			ratio := float64(result.Delays[i]) / float64(result.Delays[i-1])
			Expect(ratio).To(BeNumerically("~", settings.Multiplier, 1e-6))
		}
	})

	It("reports phase transitions and frames to observers", func() {
		settings.Duration = 200 * time.Millisecond
		a := newAnimator(10)
		obs := &phaseRecorder{}
		a.AddObserver(obs)

		_, err := a.Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(obs.transitions).To(Equal([][2]animator.Phase{
			{animator.PhaseIdle, animator.PhaseScrambling},
			{animator.PhaseScrambling, animator.PhaseSettling},
			{animator.PhaseSettling, animator.PhaseDone},
		}))
		Expect(obs.frames).To(HaveLen(len(recorder.frames)))
	})

	It("aborts with the failing phase when the renderer fails", func() {
		recorder.failAt = 3
		a := newAnimator(11)

		_, err := a.Run(context.Background())
		var phaseErr *animator.PhaseError
		Expect(err).To(BeAssignableToTypeOf(phaseErr))
		Expect(err).To(MatchError(errRender))
		Expect(err.(*animator.PhaseError).Phase).To(Equal(animator.PhaseScrambling))
		Expect(err.(*animator.PhaseError).Frame).To(Equal(3))
		Expect(a.Phase()).To(Equal(animator.PhaseScrambling))
	})

	It("aborts a settle frame failure in the settling phase", func() {
		settings.Duration = 0
		recorder.failAt = 2
		a := newAnimator(12)

		_, err := a.Run(context.Background())
		Expect(err).To(MatchError(errRender))
		Expect(err.(*animator.PhaseError).Phase).To(Equal(animator.PhaseSettling))
	})

	It("stops between frames when the context is cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		a := newAnimator(13)

		result, err := a.Run(ctx)
		Expect(err).To(MatchError(context.Canceled))
		Expect(result.ScrambleFrames).To(BeZero())
		Expect(recorder.frames).To(BeEmpty())
	})
})
