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

// Package movegen generates pseudo-legal moves, orders them by static move
// gain, and tests squares for attack — the three building blocks spec §4.3
// describes. Pseudo-legal output may leave the moving side's king in check;
// internal/search applies the legality filter by making the move and
// testing IsInCheck on the mover.
package movegen

import (
	"sort"

	"corvid/internal/attacks"
	"corvid/internal/position"
	. "corvid/internal/types"
)

// MaxMoves bounds the pseudo-legal move list for a single position —
// comfortably above any reachable chess position's legal move count.
const MaxMoves = 256

// pieceValue mirrors spec §4.3's MVV/LVA ordering table (identical to the
// evaluator's material values, duplicated here to keep move ordering
// self-contained from evaluation).
var pieceValue = [PtLength]Value{0, 100, 350, 350, 525, 1000, 0}

const (
	enPassantOrderScore = 10
	castlingOrderScore  = 20
)

// Generate returns every pseudo-legal move for the side to move, sorted in
// descending order of static move gain (spec §4.3 "Move ordering"), or an
// empty slice if the position is drawn by the halfmove clock or threefold
// repetition (spec §4.3 "Early-out").
func Generate(p *position.Position) []ScoredMove {
	if p.IsDrawByRule() {
		return nil
	}

	moves := make([]ScoredMove, 0, MaxMoves)
	us := p.SideToMove()
	them := us.Flip()
	own := p.OccupiedBb(us)
	enemy := p.OccupiedBb(them)
	occ := p.OccupiedAll()

	moves = genPawnMoves(p, us, occ, enemy, moves)
	moves = genStepMoves(p, Knight, us, own, moves)
	moves = genSliderMoves(p, Bishop, us, own, occ, moves)
	moves = genSliderMoves(p, Rook, us, own, occ, moves)
	moves = genSliderMoves(p, Queen, us, own, occ, moves)
	moves = genStepMoves(p, King, us, own, moves)
	moves = genCastling(p, us, occ, moves)

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Score > moves[j].Score
	})
	return moves
}

func scoreOf(p *position.Position, m Move) int32 {
	switch m.MoveType() {
	case Promotion:
		gain := int32(pieceValue[m.PromotionType()])
		if victim := p.PieceAt(m.To()); victim != PieceNone {
			gain += int32(pieceValue[victim.TypeOf()])
		}
		return gain
	case EnPassant:
		return enPassantOrderScore
	case Castling:
		return castlingOrderScore
	default:
		victim := p.PieceAt(m.To())
		if victim == PieceNone {
			return 0
		}
		attacker := p.PieceAt(m.From())
		return int32(pieceValue[victim.TypeOf()]) - int32(pieceValue[attacker.TypeOf()])
	}
}

func push(p *position.Position, m Move, moves []ScoredMove) []ScoredMove {
	return append(moves, ScoredMove{Move: m, Score: scoreOf(p, m)})
}

func genStepMoves(p *position.Position, pt PieceType, us Color, own Bitboard, moves []ScoredMove) []ScoredMove {
	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		dests := attacks.Of(pt, from, BbZero) &^ own
		for dests != 0 {
			to := dests.PopLsb()
			moves = push(p, CreateMove(from, to, Normal, PtNone), moves)
		}
	}
	return moves
}

func genSliderMoves(p *position.Position, pt PieceType, us Color, own, occ Bitboard, moves []ScoredMove) []ScoredMove {
	pieces := p.PiecesBb(us, pt)
	for pieces != 0 {
		from := pieces.PopLsb()
		dests := attacks.Of(pt, from, occ) &^ own
		for dests != 0 {
			to := dests.PopLsb()
			moves = push(p, CreateMove(from, to, Normal, PtNone), moves)
		}
	}
	return moves
}

var promotionKinds = [4]PieceType{Queen, Rook, Bishop, Knight}

func genPawnMoves(p *position.Position, us Color, occ, enemy Bitboard, moves []ScoredMove) []ScoredMove {
	pawns := p.PiecesBb(us, Pawn)
	forward := North
	startRank, lastRank := Rank2, Rank8
	if us == Black {
		forward = South
		startRank, lastRank = Rank7, Rank1
	}

	for bb := pawns; bb != 0; {
		from := bb.PopLsb()
		one := from.To(forward)
		if one != SqNone && !occ.Has(one) {
			moves = addPawnMove(p, from, one, lastRank, moves)
			if from.RankOf() == startRank {
				two := one.To(forward)
				if two != SqNone && !occ.Has(two) {
					moves = push(p, CreateMove(from, two, Normal, PtNone), moves)
				}
			}
		}
		for capBb := attacks.PawnAttacks(us, from) & enemy; capBb != 0; {
			to := capBb.PopLsb()
			moves = addPawnMove(p, from, to, lastRank, moves)
		}
		if ep := p.EpSquare(); ep != SqNone && attacks.PawnAttacks(us, from).Has(ep) {
			moves = push(p, CreateMove(from, ep, EnPassant, PtNone), moves)
		}
	}
	return moves
}

func addPawnMove(p *position.Position, from, to Square, lastRank Rank, moves []ScoredMove) []ScoredMove {
	if to.RankOf() == lastRank {
		for _, promo := range promotionKinds {
			moves = push(p, CreateMove(from, to, Promotion, promo), moves)
		}
		return moves
	}
	return push(p, CreateMove(from, to, Normal, PtNone), moves)
}

func genCastling(p *position.Position, us Color, occ Bitboard, moves []ScoredMove) []ScoredMove {
	them := us.Flip()
	if us == White {
		if p.CastlingRights().Has(CastlingWhiteOO) &&
			!occ.Has(SqF1) && !occ.Has(SqG1) &&
			!IsSquareAttacked(p, SqE1, them) && !IsSquareAttacked(p, SqF1, them) && !IsSquareAttacked(p, SqG1, them) {
			moves = push(p, CreateMove(SqE1, SqG1, Castling, PtNone), moves)
		}
		if p.CastlingRights().Has(CastlingWhiteOOO) &&
			!occ.Has(SqD1) && !occ.Has(SqC1) && !occ.Has(SqB1) &&
			!IsSquareAttacked(p, SqE1, them) && !IsSquareAttacked(p, SqD1, them) && !IsSquareAttacked(p, SqC1, them) {
			moves = push(p, CreateMove(SqE1, SqC1, Castling, PtNone), moves)
		}
	} else {
		if p.CastlingRights().Has(CastlingBlackOO) &&
			!occ.Has(SqF8) && !occ.Has(SqG8) &&
			!IsSquareAttacked(p, SqE8, them) && !IsSquareAttacked(p, SqF8, them) && !IsSquareAttacked(p, SqG8, them) {
			moves = push(p, CreateMove(SqE8, SqG8, Castling, PtNone), moves)
		}
		if p.CastlingRights().Has(CastlingBlackOOO) &&
			!occ.Has(SqD8) && !occ.Has(SqC8) && !occ.Has(SqB8) &&
			!IsSquareAttacked(p, SqE8, them) && !IsSquareAttacked(p, SqD8, them) && !IsSquareAttacked(p, SqC8, them) {
			moves = push(p, CreateMove(SqE8, SqC8, Castling, PtNone), moves)
		}
	}
	return moves
}

// IsSquareAttacked reports whether sq is attacked by any piece of color by
// (spec §4.3's castling attack test: "tests knight-steps, king-steps,
// pawn-captures-in-reverse, and magic bishop/rook/queen rays").
func IsSquareAttacked(p *position.Position, sq Square, by Color) bool {
	occ := p.OccupiedAll()
	if attacks.KnightAttacks(sq)&p.PiecesBb(by, Knight) != 0 {
		return true
	}
	if attacks.KingAttacks(sq)&p.PiecesBb(by, King) != 0 {
		return true
	}
	// Pawn attacks are symmetric: a pawn of `by` attacks sq the same way a
	// pawn of the opposite color standing on sq would attack back.
	if attacks.PawnAttacks(by.Flip(), sq)&p.PiecesBb(by, Pawn) != 0 {
		return true
	}
	if attacks.BishopAttacks(sq, occ)&(p.PiecesBb(by, Bishop)|p.PiecesBb(by, Queen)) != 0 {
		return true
	}
	if attacks.RookAttacks(sq, occ)&(p.PiecesBb(by, Rook)|p.PiecesBb(by, Queen)) != 0 {
		return true
	}
	return false
}

// IsInCheck reports whether color c's king is currently attacked.
func IsInCheck(p *position.Position, c Color) bool {
	return IsSquareAttacked(p, p.KingSquare(c), c.Flip())
}

// LegalMoves filters Generate's pseudo-legal output down to moves that do
// not leave the mover's own king in check (spec §4.3 "Legality filter").
func LegalMoves(p *position.Position) []ScoredMove {
	pseudo := Generate(p)
	legal := make([]ScoredMove, 0, len(pseudo))
	us := p.SideToMove()
	for _, sm := range pseudo {
		child := p.MakeMove(sm.Move)
		if !IsInCheck(child, us) {
			legal = append(legal, sm)
		}
	}
	return legal
}
