package animator_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/numero/internal/animator"
	"github.com/san-kum/numero/internal/digits"
)

var _ = Describe("PlanSettle", func() {
	var settings animator.Settings

	BeforeEach(func() {
		settings = animator.DefaultSettings()
	})

	It("walks 427 in sequential order from a frame that hides every final digit", func() {
		settings.NumDigits = 3
		final := digits.Sequence("427")

		for seed := uint64(0); seed < 50; seed++ {
			r := seeded(seed)
			cur := digits.Random(r, 3)
			before := cur.Clone()
			plan, err := animator.PlanSettle(r, settings, cur, final)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.Order).To(Equal([]int{0, 1, 2}))
			Expect(plan.Frames).To(HaveLen(4))

			pre := plan.Frames[0].Digits
			Expect(plan.Frames[0].Revealed).To(Equal(-1))
			Expect(plan.Frames[0].Delay).To(Equal(settings.BaseDelay))
			for i := range pre {
				Expect(pre[i]).NotTo(Equal(final[i]))
				Expect(pre[i]).NotTo(Equal(cur[i]))
			}

			Expect(plan.Frames[1].Digits.String()).To(Equal("4" + string(pre[1:])))
			Expect(plan.Frames[2].Digits.String()).To(Equal("42" + string(pre[2:])))
			Expect(plan.Frames[3].Digits.String()).To(Equal("427"))
			Expect(cur).To(Equal(before))
		}
	})

	It("skips the rescramble frame when pre-reveal is off", func() {
		settings.PreReveal = false
		cur := digits.Sequence("11111")
		plan, err := animator.PlanSettle(seeded(1), settings, cur, digits.Sequence("12345"))
		Expect(err).NotTo(HaveOccurred())
		Expect(plan.Frames).To(HaveLen(5))
		Expect(plan.Frames[0].Digits.String()).To(Equal("11111"))
		Expect(plan.Frames[4].Digits.String()).To(Equal("12345"))
	})

	It("produces a permutation in shuffled mode", func() {
		settings.ShuffleReveal = true
		final := digits.Sequence("01234567890123456789")
		plan, err := animator.PlanSettle(seeded(2), settings, digits.Random(seeded(3), 20), final)
		Expect(err).NotTo(HaveOccurred())

		seen := make(map[int]bool)
		for _, f := range plan.Frames[1:] {
			Expect(seen).NotTo(HaveKey(f.Revealed))
			seen[f.Revealed] = true
		}
		Expect(seen).To(HaveLen(20))
		Expect(plan.Frames[len(plan.Frames)-1].Digits).To(Equal(final))
	})

	It("rejects mismatched lengths", func() {
		_, err := animator.PlanSettle(seeded(4), settings, digits.Sequence("123"), digits.Sequence("1234"))
		Expect(err).To(MatchError(animator.ErrLengthMismatch))
	})
})

var _ = Describe("RevealOrder", func() {
	It("is the identity when not shuffled", func() {
		Expect(animator.RevealOrder(seeded(5), 5, false)).To(Equal([]int{0, 1, 2, 3, 4}))
	})
})

var _ = Describe("DelaySchedule", func() {
	It("multiplies the base delay on every step", func() {
		delays := animator.DelaySchedule(100*time.Millisecond, 2, 4)
		Expect(delays).To(Equal([]time.Duration{
			200 * time.Millisecond,
			400 * time.Millisecond,
			800 * time.Millisecond,
			1600 * time.Millisecond,
		}))
	})

	It("stays strictly increasing at nanosecond resolution", func() {
		delays := animator.DelaySchedule(1, 1.01, 10)
		for i := 1; i < len(delays); i++ {
			Expect(delays[i]).To(BeNumerically(">", delays[i-1]))
		}
	})
})
