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

import (
	"math/bits"
	"strconv"
	"strings"
)

// Bitboard is a 64-bit set of squares; bit i set means square i is a
// member (spec §3 "Square and board geometry").
type Bitboard uint64

const BbZero Bitboard = 0
const BbAll Bitboard = 0xFFFFFFFFFFFFFFFF

var (
	FileABb = fileBb(FileA)
	FileBBb = fileBb(FileB)
	FileCBb = fileBb(FileC)
	FileDBb = fileBb(FileD)
	FileEBb = fileBb(FileE)
	FileFBb = fileBb(FileF)
	FileGBb = fileBb(FileG)
	FileHBb = fileBb(FileH)

	Rank1Bb = rankBb(Rank1)
	Rank2Bb = rankBb(Rank2)
	Rank3Bb = rankBb(Rank3)
	Rank4Bb = rankBb(Rank4)
	Rank5Bb = rankBb(Rank5)
	Rank6Bb = rankBb(Rank6)
	Rank7Bb = rankBb(Rank7)
	Rank8Bb = rankBb(Rank8)
)

var fileBbTable = [FileLength]Bitboard{FileABb, FileBBb, FileCBb, FileDBb, FileEBb, FileFBb, FileGBb, FileHBb}
var rankBbTable = [RankLength]Bitboard{Rank1Bb, Rank2Bb, Rank3Bb, Rank4Bb, Rank5Bb, Rank6Bb, Rank7Bb, Rank8Bb}

// Bb returns the bitboard of all squares on this file.
func (f File) Bb() Bitboard { return fileBbTable[f] }

// Bb returns the bitboard of all squares on this rank.
func (r Rank) Bb() Bitboard { return rankBbTable[r] }

func fileBb(f File) Bitboard {
	var b Bitboard
	for r := Rank1; r < RankNone; r++ {
		b.PushSquare(SquareOf(f, r))
	}
	return b
}

func rankBb(r Rank) Bitboard {
	var b Bitboard
	for f := FileA; f < FileNone; f++ {
		b.PushSquare(SquareOf(f, r))
	}
	return b
}

func (sq Square) Bb() Bitboard {
	return Bitboard(1) << uint(sq)
}

func (b *Bitboard) PushSquare(s Square) {
	*b |= s.Bb()
}

func (b *Bitboard) PopSquare(s Square) {
	*b &^= s.Bb()
}

func (b Bitboard) Has(s Square) bool {
	return b&s.Bb() != 0
}

func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Lsb returns the least significant set square, or SqNone if empty.
func (b Bitboard) Lsb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// Msb returns the most significant set square, or SqNone if empty.
func (b Bitboard) Msb() Square {
	if b == 0 {
		return SqNone
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLsb clears and returns the least significant set square.
func (b *Bitboard) PopLsb() Square {
	sq := b.Lsb()
	if sq != SqNone {
		b.PopSquare(sq)
	}
	return sq
}

// ShiftBitboard shifts every set square one step in direction d, masking
// off squares that would wrap around the east/west edge.
func ShiftBitboard(b Bitboard, d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b &^ FileHBb) << 1
	case West:
		return (b &^ FileABb) >> 1
	case Northeast:
		return (b &^ FileHBb) << 9
	case Southeast:
		return (b &^ FileHBb) >> 7
	case Southwest:
		return (b &^ FileABb) >> 9
	case Northwest:
		return (b &^ FileABb) << 7
	default:
		panic("invalid direction")
	}
}

func (b Bitboard) String() string {
	return strconv.FormatUint(uint64(b), 2)
}

// StringBoard renders the bitboard as an 8x8 grid, rank 8 at the top, for
// debugging.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	for r := Rank8; ; r-- {
		for f := FileA; f < FileNone; f++ {
			if b.Has(SquareOf(f, r)) {
				sb.WriteString("1 ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
		if r == Rank1 {
			break
		}
	}
	return sb.String()
}
