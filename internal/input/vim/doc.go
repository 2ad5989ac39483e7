// Package vim holds the interpreter state behind Vim-style key sequences.
//
// The interpreter itself lives in package input; this package provides the
// pieces of state it threads between keystrokes:
//
//   - CountState: the numeric prefix, e.g. "5" in "5j"
//   - Pending: the multi-key command in progress, e.g. the first g of "gg"
//   - RegisterStore: rows captured by "yy"
//
// # Count Prefixes
//
// Digits accumulate left to right (new = old*10 + digit). A leading '0' is
// not a count: with nothing accumulated it is the first-column motion. Once
// the next digit would push the count past its limit the digit is dropped,
// so "9999999j" moves by the saturated value instead of overflowing.
//
// A count is consumed by exactly one command through Take, whether or not
// that command uses it.
//
// # Pending Commands
//
// At most one command is pending at a time:
//
//	g  -> AwaitingSecondG          (gg: first row)
//	z  -> AwaitingViewportLetter   (zt, zz, zb: position the viewport)
//	d  -> AwaitingSecondD          (dd)
//	y  -> AwaitingSecondY          (yy)
//	   -> BufferedColumnLetters    (column label typed after :c)
//
// The zero Pending value is idle.
package vim
