/*
 * corvid - a headless chess engine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package types

// Value is a centipawn evaluation or search score.
type Value int32

const (
	// ValueDraw is the score of a drawn position.
	ValueDraw Value = 0

	// Inf is used as the initial alpha-beta search window bound.
	Inf Value = 10_000_000

	// CheckMate is the base mate score; alphaBeta adds the remaining search
	// depth so that shorter mates score higher in absolute value (spec §4.6,
	// §9 "Mate-score depth adjustment").
	CheckMate Value = 100_000

	// MaxSearchDepth bounds iterative deepening (spec §4.6 "cap").
	MaxSearchDepth = 100
)

// IsCheckMateValue reports whether v represents some depth-adjusted mate
// score rather than a normal evaluation.
func IsCheckMateValue(v Value) bool {
	abs := v
	if abs < 0 {
		abs = -abs
	}
	return abs > CheckMate-Value(MaxSearchDepth) && abs <= CheckMate+Value(MaxSearchDepth)
}
