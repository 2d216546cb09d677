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

// Package attacks precomputes the step tables for knights/kings/pawns and
// the magic (PEXT-indexed) sliding-attack tables for bishops and rooks, as
// described in spec §4.1. All tables are built once at process start by
// init() and are read-only afterwards (spec §5 "Shared resources").
package attacks

import (
	. "corvid/internal/types"
)

var (
	knightAttacks [SqLength]Bitboard
	kingAttacks   [SqLength]Bitboard
	pawnAttacks   [ColorLength][SqLength]Bitboard

	bishopTable [SqLength]slidingTable
	rookTable   [SqLength]slidingTable
)

// slidingTable holds the blocker mask and dense PEXT-indexed attack table
// for one sliding piece on one square (spec §4.1).
type slidingTable struct {
	mask    Bitboard
	attacks []Bitboard
}

func (t *slidingTable) attacksFor(occupied Bitboard) Bitboard {
	return t.attacks[pext(occupied, t.mask)]
}

// pext extracts the bits of src at the positions set in mask and packs
// them contiguously starting at bit 0 — a portable software implementation
// of the x86 BMI2 PEXT instruction (spec §4.1, §9: "substitute ... plain
// ray-scan where PEXT is unavailable. The attack-table contract is
// identical").
func pext(src, mask Bitboard) uint {
	var result Bitboard
	var bit Bitboard = 1
	for m := mask; m != 0; {
		lsb := m & (-m)
		if src&lsb != 0 {
			result |= bit
		}
		bit <<= 1
		m &= m - 1
	}
	return uint(result)
}

func init() {
	initStepTables()
	initSlidingTable(&bishopTable, bishopDirs[:])
	initSlidingTable(&rookTable, rookDirs[:])
}

// knightStep enumerates the eight knight destinations from sq directly,
// since a knight's move isn't a composition of two single-step Directions
// in the 8-direction table without risking a wrap on the first leg.
func knightStep(sq Square) Bitboard {
	var b Bitboard
	f, r := int(sq.FileOf()), int(sq.RankOf())
	deltas := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	for _, d := range deltas {
		nf, nr := f+d[0], r+d[1]
		if nf >= 0 && nf < 8 && nr >= 0 && nr < 8 {
			b.PushSquare(SquareOf(File(nf), Rank(nr)))
		}
	}
	return b
}

func initStepTables() {
	for sq := SqA1; sq < SqNone; sq++ {
		knightAttacks[sq] = knightStep(sq)

		var king Bitboard
		for _, d := range Directions {
			if to := sq.To(d); to != SqNone {
				king.PushSquare(to)
			}
		}
		kingAttacks[sq] = king

		var whitePawn, blackPawn Bitboard
		if to := sq.To(Northeast); to != SqNone {
			whitePawn.PushSquare(to)
		}
		if to := sq.To(Northwest); to != SqNone {
			whitePawn.PushSquare(to)
		}
		if to := sq.To(Southeast); to != SqNone {
			blackPawn.PushSquare(to)
		}
		if to := sq.To(Southwest); to != SqNone {
			blackPawn.PushSquare(to)
		}
		pawnAttacks[White][sq] = whitePawn
		pawnAttacks[Black][sq] = blackPawn
	}
}

var bishopDirs = [4]Direction{Northeast, Southeast, Southwest, Northwest}
var rookDirs = [4]Direction{North, East, South, West}

// rayAttack traces every direction in dirs from sq until the board edge or
// the first occupied square (inclusive of that blocker).
func rayAttack(dirs []Direction, sq Square, occupied Bitboard) Bitboard {
	var attack Bitboard
	for _, d := range dirs {
		s := sq
		for {
			next := s.To(d)
			if next == SqNone {
				break
			}
			s = next
			attack.PushSquare(s)
			if occupied.Has(s) {
				break
			}
		}
	}
	return attack
}

// initSlidingTable builds the blocker mask and dense attack table for
// every square for one sliding piece (spec §4.1: "blocker mask", "occupancy
// subset", "attacks[s][idx] where idx = pext(occ, mask(s))").
func initSlidingTable(table *[SqLength]slidingTable, dirs []Direction) {
	for sq := SqA1; sq < SqNone; sq++ {
		edges := ((Rank1Bb | Rank8Bb) &^ sq.RankOf().Bb()) | ((FileABb | FileHBb) &^ sq.FileOf().Bb())
		mask := rayAttack(dirs, sq, BbZero) &^ edges
		size := 1 << uint(mask.PopCount())
		entry := slidingTable{mask: mask, attacks: make([]Bitboard, size)}

		// Carry-Rippler enumeration of every subset of mask.
		var subset Bitboard
		for {
			idx := pext(subset, mask)
			entry.attacks[idx] = rayAttack(dirs, sq, subset)
			subset = (subset - mask) & mask
			if subset == 0 {
				break
			}
		}
		table[sq] = entry
	}
}

// KnightAttacks returns the knight attack set from sq.
func KnightAttacks(sq Square) Bitboard { return knightAttacks[sq] }

// KingAttacks returns the king attack set from sq.
func KingAttacks(sq Square) Bitboard { return kingAttacks[sq] }

// PawnAttacks returns the squares a pawn of color c standing on sq attacks.
func PawnAttacks(c Color, sq Square) Bitboard { return pawnAttacks[c][sq] }

// BishopAttacks returns the bishop attack set from sq given the full board
// occupancy (includes own-piece squares; callers mask with &^ownPieces).
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return bishopTable[sq].attacksFor(occupied)
}

// RookAttacks returns the rook attack set from sq given the full board
// occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard { return rookTable[sq].attacksFor(occupied) }

// QueenAttacks returns the union of bishop and rook attacks from sq (spec
// §4.1 "Queen attacks = bishop-attack ∪ rook-attack at the same square").
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return BishopAttacks(sq, occupied) | RookAttacks(sq, occupied)
}

// Of returns the attack set for the given sliding/stepping piece type.
// pt must be Knight, Bishop, Rook, Queen, or King.
func Of(pt PieceType, sq Square, occupied Bitboard) Bitboard {
	switch pt {
	case Knight:
		return KnightAttacks(sq)
	case Bishop:
		return BishopAttacks(sq, occupied)
	case Rook:
		return RookAttacks(sq, occupied)
	case Queen:
		return QueenAttacks(sq, occupied)
	case King:
		return KingAttacks(sq)
	default:
		return BbZero
	}
}
