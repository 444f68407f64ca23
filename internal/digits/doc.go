// Package digits provides the decimal digit sequences shown by the animation.
//
// A [Sequence] is a fixed-length run of ASCII digit characters. The package
// offers the primitives the animator is built from:
//
//   - [Random]: a fresh uniformly random sequence
//   - [PickExcluding]: a uniform pick from the alphabet minus a disallowed set
//   - [Policy]: the scramble step applied on every animation frame
//   - [Parse] and [ParseCount]: validation of user supplied numbers
//
// # Randomness
//
// Every function takes a [Rand], normally a seeded *rand.Rand from
// math/rand/v2, so results are reproducible under a fixed seed.
package digits
