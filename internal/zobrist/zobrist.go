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

// Package zobrist builds the fixed, deterministic Zobrist key table used
// to fingerprint chess positions (spec §4.2). The table is built once at
// process start from a fixed seed and is read-only afterwards (spec §5).
package zobrist

import (
	. "corvid/internal/types"
)

// Key is a 64-bit position fingerprint.
type Key uint64

var (
	// PieceKeys[sq][piece] — XORed in for every occupied square.
	PieceKeys [SqLength][PieceLength]Key

	// BlackToMove is XORed in whenever it is Black's turn.
	BlackToMove Key

	// CastlingKeys holds one key per one of the four individual castling
	// rights (WK, WQ, BK, BQ), indexed by the corresponding
	// types.CastlingWhiteOO/... bit position.
	CastlingKeys [4]Key

	// EpFile holds one key per file, used when an en-passant target
	// exists on that file.
	EpFile [FileLength]Key
)

func init() {
	r := newSplitMix64(0x9E3779B97F4A7C15)
	for sq := SqA1; sq < SqNone; sq++ {
		for p := Piece(0); p < PieceLength; p++ {
			PieceKeys[sq][p] = Key(r.next())
		}
	}
	BlackToMove = Key(r.next())
	for i := range CastlingKeys {
		CastlingKeys[i] = Key(r.next())
	}
	for f := FileA; f < FileNone; f++ {
		EpFile[f] = Key(r.next())
	}
}

// CastlingKey returns the key for a single castling-right bit (must be
// exactly one of CastlingWhiteOO, CastlingWhiteOOO, CastlingBlackOO,
// CastlingBlackOOO).
func CastlingKey(right CastlingRights) Key {
	switch right {
	case CastlingWhiteOO:
		return CastlingKeys[0]
	case CastlingWhiteOOO:
		return CastlingKeys[1]
	case CastlingBlackOO:
		return CastlingKeys[2]
	case CastlingBlackOOO:
		return CastlingKeys[3]
	default:
		panic("CastlingKey: not a single castling right")
	}
}

// splitMix64 is a small, fast, deterministic PRNG used only to seed the
// Zobrist tables at process start — the same algorithm family as the
// xorshift64star generator the teacher's magic-bitboard init uses for its
// own fixed-seed table construction (internal/types/magic.go's PrnG).
type splitMix64 struct{ state uint64 }

func newSplitMix64(seed uint64) *splitMix64 {
	return &splitMix64{state: seed}
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9E3779B97F4A7C15
	z := s.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	z = z ^ (z >> 31)
	return z
}
