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

// Package evaluator contains the static evaluation function used by
// internal/search, combining material, piece-square tables, and castling
// rights into a single absolute (White-positive) centipawn score (spec
// §4.5).
package evaluator

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"corvid/internal/position"
	. "corvid/internal/types"
)

// out formats evaluation breakdowns for diagnostic reporting (grounded on
// the teacher's locale-formatted search/eval reports).
var out = message.NewPrinter(language.English)

// castlingRightBonus is spec §4.5's "+5 per remaining White right, -5 per
// remaining Black right".
const castlingRightBonus Value = 5

// Evaluate returns the absolute static evaluation of p: positive favors
// White, per spec §4.5.
func Evaluate(p *position.Position) Value {
	if p.IsDrawByRule() {
		return ValueDraw
	}

	var score Value
	for c := White; c < ColorLength; c++ {
		sign := Value(1)
		if c == Black {
			sign = -1
		}
		for pt := Pawn; pt <= King; pt++ {
			bb := p.PiecesBb(c, pt)
			score += sign * Value(bb.PopCount()) * pt.ValueOf()
			for b := bb; b != 0; {
				sq := b.PopLsb()
				score += sign * pstValue(pt, c, sq)
			}
		}
	}

	cr := p.CastlingRights()
	if cr.Has(CastlingWhiteOO) {
		score += castlingRightBonus
	}
	if cr.Has(CastlingWhiteOOO) {
		score += castlingRightBonus
	}
	if cr.Has(CastlingBlackOO) {
		score -= castlingRightBonus
	}
	if cr.Has(CastlingBlackOOO) {
		score -= castlingRightBonus
	}

	return score
}

// EvaluateRelative returns Evaluate(p) from the perspective of the side to
// move — positive always means "good for the mover" — for use by negamax
// search (spec §4.5 "evaluateRelative").
func EvaluateRelative(p *position.Position) Value {
	v := Evaluate(p)
	if p.WhiteToMove() {
		return v
	}
	return -v
}

// Report renders a human-readable breakdown of the static evaluation,
// grounded on the teacher's locale-formatted search report style.
func Report(p *position.Position) string {
	return out.Sprintf("static eval: %d (side to move relative: %d)", Evaluate(p), EvaluateRelative(p))
}

// pstValue looks up the piece-square bonus for (pt, c) on sq, mirroring
// White's table by rank for Black (spec §4.5 "mirror-symmetric between
// colors by rank").
func pstValue(pt PieceType, c Color, sq Square) Value {
	idx := sq
	if c == Black {
		idx = SquareOf(sq.FileOf(), Rank(7-int(sq.RankOf())))
	}
	return pieceSquareTables[pt][idx]
}
