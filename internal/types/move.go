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

import "strings"

// MoveType distinguishes the four move kinds spec §3 defines.
type MoveType uint8

const (
	Normal MoveType = iota
	Promotion
	EnPassant
	Castling
)

func (t MoveType) IsValid() bool {
	return t <= Castling
}

func (t MoveType) String() string {
	switch t {
	case Normal:
		return "normal"
	case Promotion:
		return "promotion"
	case EnPassant:
		return "enpassant"
	case Castling:
		return "castling"
	default:
		return "?"
	}
}

// Move is a 16-bit packed move: 6 bits "to", 6 bits "from", 2 bits
// promotion piece type, 2 bits move type (spec §3 "Move encoding"). It
// round-trips through its packed form within one process.
//
//	bit:  15 14 | 13 12 | 11 10 9 8 7 6 | 5 4 3 2 1 0
//	      type  | promo |     from      |     to
type Move uint16

const (
	// MoveNone is the zero value; never a valid move.
	MoveNone Move = 0

	toShift       = 0
	fromShift     = 6
	promShift     = 12
	typeShift     = 14
	squareMask    = 0x3F
	promTypeMask  = 0x3
	moveTypeMask  = 0x3
)

// CreateMove packs a move. promType is ignored unless t is Promotion.
func CreateMove(from, to Square, t MoveType, promType PieceType) Move {
	var promBits PieceType
	if t == Promotion {
		promBits = promType - Knight
	}
	return (Move(to) & squareMask) |
		((Move(from) & squareMask) << fromShift) |
		((Move(promBits) & promTypeMask) << promShift) |
		((Move(t) & moveTypeMask) << typeShift)
}

func (m Move) To() Square {
	return Square((m >> toShift) & squareMask)
}

func (m Move) From() Square {
	return Square((m >> fromShift) & squareMask)
}

func (m Move) MoveType() MoveType {
	return MoveType((m >> typeShift) & moveTypeMask)
}

// PromotionType returns the promoted-to piece type; only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m>>promShift)&promTypeMask) + Knight
}

func (m Move) IsValid() bool {
	return m != MoveNone && m.From().IsValid() && m.To().IsValid() && m.MoveType().IsValid()
}

// StringUci renders the move in the lowercase UCI form spec §6 describes:
// "<from><to>" plus a promotion letter for promotions.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(m.From().String())
	sb.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		sb.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return sb.String()
}

func (m Move) String() string {
	return m.StringUci()
}

// ScoredMove pairs a packed Move with the static "move gain" ordering
// score computed by the generator (spec §4.3 "Move ordering"). The score
// is deliberately kept out of the 16-bit Move so that Move alone stays the
// canonical, round-trippable wire representation (spec §3 invariant on
// Move encoding).
type ScoredMove struct {
	Move  Move
	Score int32
}
