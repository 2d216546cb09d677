//
// corvid - a headless chess engine
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package history implements the history-heuristic move-ordering table
// search consults after the transposition-table move: a per-color,
// per-from/to counter bumped whenever a quiet move causes a beta cutoff,
// used to try previously-useful quiet moves earlier in later searches.
package history

import (
	. "corvid/internal/types"
)

// Table holds accumulated cutoff counts indexed by side to move and the
// move's from/to squares.
type Table struct {
	count [ColorLength][SqLength][SqLength]int64
}

// New returns an empty history table.
func New() *Table {
	return &Table{}
}

// Update rewards a quiet move that caused a beta cutoff at depth; the
// bonus grows with depth so cutoffs found deeper (rarer, more reliable)
// outweigh shallow ones.
func (t *Table) Update(us Color, from, to Square, depth int) {
	bonus := int64(depth) * int64(depth)
	t.count[us][from][to] += bonus
	if t.count[us][from][to] > 1<<20 {
		t.halve()
	}
}

// Score reports the current cutoff count for a from/to pair; search adds
// it to the move's static ordering score.
func (t *Table) Score(us Color, from, to Square) int64 {
	return t.count[us][from][to]
}

// halve rescales every counter down so long searches don't overflow.
func (t *Table) halve() {
	for c := range t.count {
		for f := range t.count[c] {
			for to := range t.count[c][f] {
				t.count[c][f][to] /= 2
			}
		}
	}
}

// Clear resets every counter to zero.
func (t *Table) Clear() {
	*t = Table{}
}
