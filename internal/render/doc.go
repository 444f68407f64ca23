// Package render draws the digit row on a plain terminal.
//
// [Terminal] rewrites one line in place: carriage return, centred row, flush.
// [Screen] answers the size of the terminal and clears it between runs.
package render
