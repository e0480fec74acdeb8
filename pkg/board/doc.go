// Package board transforms Sequence board layouts by substituting suit codes
// with suit glyphs.
//
// A [Board] is a grid of short text labels such as "10S" or "QH". The
// [Transform] function returns a new board in which every cell, except the
// free corner marker "F", has had each [Replacement] applied in order:
//
//	b := board.Board{{"F", "10S", "QS"}, {"2C", "AH", "F"}}
//	out := board.Transform(b, board.DefaultReplacements())
//	// out == {{"F", "10♠", "Q♠"}, {"2♣", "A♥", "F"}}
//
// # Ordering
//
// Replacements are an ordered slice rather than a map. Each replacement
// rewrites all non-overlapping occurrences of its key in the current cell
// text before the next one runs, so a later key can match text produced by an
// earlier value. The default suit mapping never triggers this because the
// glyphs contain none of the letters C, H, S or D.
//
// # Shape
//
// Boards need not be rectangular. Each output row has exactly the length of
// its input row, and an empty board yields an empty board.
//
// # Cell types
//
// Go's type system makes a [Board] text-only. Data decoded from an untyped
// source goes through [FromValues], which rejects non-string cells with an
// INVALID_CELL error.
package board
