// Package animator drives the slot machine animation of a digit row.
//
// A run moves through four phases:
//
//	Idle -> Scrambling -> Settling -> Done
//
// Scrambling repeats a [digits.Policy] step until a wall-clock budget
// expires. Settling reveals the final number one position at a time, in
// identity or shuffled order, with a pacing delay that grows by a constant
// factor on every reveal.
//
// # Example
//
//	a, _ := animator.New(settings, rng, animator.SystemClock, renderer)
//	result, err := a.Run(ctx)
//
// # Thread Safety
//
// An Animator is NOT safe for concurrent use. It owns its digit buffers and
// blocks the caller for every pacing delay; ctx is only checked between
// frames, so a delay in progress always completes.
package animator
