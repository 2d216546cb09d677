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

// Piece is a (color, piece type) pair packed into a single small integer:
// color in bit 3, piece type in the low three bits, so White pieces are
// 1..6, Black pieces 9..14, and PieceNone is 0.
type Piece int8

const (
	PieceNone   Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6
	BlackPawn   Piece = 9
	BlackKnight Piece = 10
	BlackBishop Piece = 11
	BlackRook   Piece = 12
	BlackQueen  Piece = 13
	BlackKing   Piece = 14
	PieceLength Piece = 16
)

// MakePiece combines a color and piece type into a Piece.
func MakePiece(c Color, pt PieceType) Piece {
	return Piece(int(c)<<3 + int(pt))
}

func (p Piece) ColorOf() Color {
	return Color(p >> 3)
}

func (p Piece) TypeOf() PieceType {
	return PieceType(p & 7)
}

func (p Piece) IsValid() bool {
	return p != PieceNone && p.TypeOf().IsValid()
}

func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

const pieceToChar = " PNBRQK??pnbrqk"

// Char returns the FEN letter for this piece (uppercase white, lowercase
// black); "-" for PieceNone.
func (p Piece) Char() string {
	if p == PieceNone {
		return "-"
	}
	return string(pieceToChar[p])
}

// PieceFromChar is the inverse of Char; returns PieceNone on an unknown
// letter.
func PieceFromChar(c byte) Piece {
	for i, ch := range pieceToChar {
		if byte(ch) == c && i != 0 {
			return Piece(i)
		}
	}
	return PieceNone
}

func (p Piece) String() string {
	return p.Char()
}
