// Package viz renders the digit animation as a full-screen Bubble Tea program.
//
// The model drives the same [animator.Animator] as the plain terminal
// renderer, but schedules each frame with tea.Tick instead of sleeping:
//
//   - scramble frames every pacing interval until the duration budget is spent
//   - one settle frame per reveal, each waiting longer than the last
//   - a closing prompt that ends on Enter and keeps whatever was typed
//
// # Key Bindings
//
//	T      - Cycle color themes
//	Enter  - Quit once the number has settled
//	Ctrl+C - Abort
package viz
