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

package position

import (
	"corvid/internal/assert"
	. "corvid/internal/types"
	"corvid/internal/zobrist"
)

// MakeMove applies a pseudo-legal move and returns the resulting position,
// following spec §4.4 step by step. The receiver is left untouched: copy-make
// is used throughout (spec §4.4 "The implementer MAY use copy-make"), and
// the history slice is explicitly cloned so sibling search branches never
// alias the same backing array through a shallow `child := p` copy.
func (p *Position) MakeMove(m Move) *Position {
	child := *p
	child.history = make([]zobrist.Key, len(p.history), len(p.history)+1)
	copy(child.history, p.history)
	child.history = append(child.history, p.zobristKey)

	us := p.SideToMove()
	them := us.Flip()
	from, to := m.From(), m.To()
	moved := p.board[from]

	oldEp := p.epTarget
	child.epTarget = BbZero

	isPawnMove := moved.TypeOf() == Pawn
	isCapture := false

	switch m.MoveType() {
	case Normal:
		if p.board[to] != PieceNone {
			isCapture = true
			child.removePiece(to)
			child.zobristKey ^= zobrist.PieceKeys[to][p.board[to]]
		}
		child.removePiece(from)
		child.setPiece(to, moved)
		child.zobristKey ^= zobrist.PieceKeys[from][moved]
		child.zobristKey ^= zobrist.PieceKeys[to][moved]

		if isPawnMove {
			fromR, toR := from.RankOf(), to.RankOf()
			diff := int(toR) - int(fromR)
			if diff == 2 || diff == -2 {
				passed := SquareOf(from.FileOf(), Rank((int(fromR)+int(toR))/2))
				child.epTarget = passed.Bb()
			}
		}

	case Promotion:
		if p.board[to] != PieceNone {
			isCapture = true
			child.removePiece(to)
			child.zobristKey ^= zobrist.PieceKeys[to][p.board[to]]
		}
		child.removePiece(from)
		promoted := MakePiece(us, m.PromotionType())
		child.setPiece(to, promoted)
		child.zobristKey ^= zobrist.PieceKeys[from][moved]
		child.zobristKey ^= zobrist.PieceKeys[to][promoted]

	case EnPassant:
		isCapture = true
		child.removePiece(from)
		child.setPiece(to, moved)
		child.zobristKey ^= zobrist.PieceKeys[from][moved]
		child.zobristKey ^= zobrist.PieceKeys[to][moved]

		var capturedSq Square
		if us == White {
			capturedSq = to.To(South)
		} else {
			capturedSq = to.To(North)
		}
		capturedPiece := p.board[capturedSq]
		child.removePiece(capturedSq)
		child.zobristKey ^= zobrist.PieceKeys[capturedSq][capturedPiece]

	case Castling:
		child.removePiece(from)
		child.setPiece(to, moved)
		child.zobristKey ^= zobrist.PieceKeys[from][moved]
		child.zobristKey ^= zobrist.PieceKeys[to][moved]

		rookFrom, rookTo := castlingRookSquares(to)
		rook := p.board[rookFrom]
		child.removePiece(rookFrom)
		child.setPiece(rookTo, rook)
		child.zobristKey ^= zobrist.PieceKeys[rookFrom][rook]
		child.zobristKey ^= zobrist.PieceKeys[rookTo][rook]
	}

	if oldEp != BbZero {
		child.zobristKey ^= zobrist.EpFile[oldEp.Lsb().FileOf()]
	}
	if child.epTarget != BbZero {
		child.zobristKey ^= zobrist.EpFile[child.epTarget.Lsb().FileOf()]
	}

	oldCastle := p.castle
	child.castle = updatedCastlingRights(p.castle, from, to, moved)
	for _, right := range [4]CastlingRights{CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO, CastlingBlackOOO} {
		if oldCastle.Has(right) != child.castle.Has(right) {
			child.zobristKey ^= zobrist.CastlingKey(right)
		}
	}

	if isPawnMove || isCapture {
		child.halfmoveClock = 0
	} else {
		child.halfmoveClock = p.halfmoveClock + 1
	}

	child.whiteToMove = !p.whiteToMove
	child.zobristKey ^= zobrist.BlackToMove
	if them == White {
		child.fullmoveNumber = p.fullmoveNumber + 1
	} else {
		child.fullmoveNumber = p.fullmoveNumber
	}

	if assert.DEBUG {
		assert.Assert(child.zobristKey == child.computeZobristFromScratch(),
			"incremental zobrist key %d diverged from scratch recompute %d after move %s",
			child.zobristKey, child.computeZobristFromScratch(), m.StringUci())
	}

	return &child
}

// castlingRookSquares returns the rook's from/to squares given the king's
// destination square in a castling move.
func castlingRookSquares(kingTo Square) (from, to Square) {
	switch kingTo {
	case SqG1:
		return SqH1, SqF1
	case SqC1:
		return SqA1, SqD1
	case SqG8:
		return SqH8, SqF8
	case SqC8:
		return SqA8, SqD8
	default:
		panic("position: invalid castling destination square")
	}
}

// updatedCastlingRights clears rights per spec §4.4 step 3: a king move
// clears both rights for its color; a rook moving from, or any piece
// capturing on, a1/h1/a8/h8 clears that single right.
func updatedCastlingRights(cr CastlingRights, from, to Square, moved Piece) CastlingRights {
	if moved.TypeOf() == King {
		if moved.ColorOf() == White {
			cr.Remove(CastlingWhite)
		} else {
			cr.Remove(CastlingBlack)
		}
	}
	clearForSquare := func(sq Square) {
		switch sq {
		case SqA1:
			cr.Remove(CastlingWhiteOOO)
		case SqH1:
			cr.Remove(CastlingWhiteOO)
		case SqA8:
			cr.Remove(CastlingBlackOOO)
		case SqH8:
			cr.Remove(CastlingBlackOO)
		}
	}
	clearForSquare(from)
	clearForSquare(to)
	return cr
}
