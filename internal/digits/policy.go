package digits

import (
	"fmt"
	"strings"
)

// Policy selects how a scramble step replaces each digit.
type Policy int

const (
	// PolicyDistinct replaces every digit with one of the nine others, so
	// every position visibly changes on every frame.
	PolicyDistinct Policy = iota

	// PolicyIndependent replaces every digit with a uniform draw that may
	// repeat the previous value.
	PolicyIndependent
)

var policyNames = map[Policy]string{
	PolicyDistinct:    "distinct",
	PolicyIndependent: "independent",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

func ParsePolicy(name string) (Policy, error) {
	for p, n := range policyNames {
		if strings.EqualFold(n, name) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown scramble policy: %s", name)
}

// Step returns the next scrambled frame for cur. cur is not modified.
func (p Policy) Step(r Rand, cur Sequence) Sequence {
	if p == PolicyIndependent {
		return ScrambleIndependent(r, cur)
	}
	return ScrambleDistinct(r, cur)
}

func ScrambleIndependent(r Rand, cur Sequence) Sequence {
	return Random(r, len(cur))
}

func ScrambleDistinct(r Rand, cur Sequence) Sequence {
	next := make(Sequence, len(cur))
	for i, d := range cur {
		next[i] = PickExcluding(r, d)
	}
	return next
}

// ScrambleAvoiding scrambles cur with the distinct policy and then redraws
// any position that landed on its final digit, excluding both the previous
// and the final digit. The result never matches cur or final at any index.
func ScrambleAvoiding(r Rand, cur, final Sequence) Sequence {
	next := ScrambleDistinct(r, cur)
	for i := range next {
		if next[i] == final[i] {
			next[i] = PickExcluding(r, cur[i], final[i])
		}
	}
	return next
}
