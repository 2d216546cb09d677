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

package evaluator

import . "corvid/internal/types"

// pieceSquareTables holds a 64-entry centralization/safety bonus per piece
// type, indexed as if White were always moving "up the board" (rank 1 at
// index 0..7); Black's lookup mirrors the rank in pstValue. Values stay in
// [0, 30] per spec §4.5.
var pieceSquareTables = [PtLength][SqLength]Value{
	Pawn: {
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 5, 0, 0, 5, 5, 5,
		5, 0, 0, 10, 10, 0, 0, 5,
		0, 0, 10, 20, 20, 10, 0, 0,
		5, 5, 10, 20, 20, 10, 5, 5,
		10, 10, 15, 20, 20, 15, 10, 10,
		15, 15, 20, 25, 25, 20, 15, 15,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	Knight: {
		0, 5, 5, 5, 5, 5, 5, 0,
		5, 10, 15, 15, 15, 15, 10, 5,
		5, 15, 20, 20, 20, 20, 15, 5,
		5, 15, 20, 30, 30, 20, 15, 5,
		5, 15, 20, 30, 30, 20, 15, 5,
		5, 15, 20, 20, 20, 20, 15, 5,
		5, 10, 15, 15, 15, 15, 10, 5,
		0, 5, 5, 5, 5, 5, 5, 0,
	},
	Bishop: {
		10, 5, 5, 5, 5, 5, 5, 10,
		5, 15, 10, 10, 10, 10, 15, 5,
		5, 10, 15, 15, 15, 15, 10, 5,
		5, 10, 15, 20, 20, 15, 10, 5,
		5, 10, 15, 20, 20, 15, 10, 5,
		5, 10, 15, 15, 15, 15, 10, 5,
		5, 15, 10, 10, 10, 10, 15, 5,
		10, 5, 5, 5, 5, 5, 5, 10,
	},
	Rook: {
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		0, 0, 5, 10, 10, 5, 0, 0,
		15, 15, 15, 15, 15, 15, 15, 15,
		0, 0, 5, 10, 10, 5, 0, 0,
	},
	Queen: {
		0, 5, 5, 5, 5, 5, 5, 0,
		5, 10, 10, 10, 10, 10, 10, 5,
		5, 10, 15, 15, 15, 15, 10, 5,
		5, 10, 15, 20, 20, 15, 10, 5,
		5, 10, 15, 20, 20, 15, 10, 5,
		5, 10, 15, 15, 15, 15, 10, 5,
		5, 10, 10, 10, 10, 10, 10, 5,
		0, 5, 5, 5, 5, 5, 5, 0,
	},
	King: {
		25, 30, 30, 0, 0, 10, 30, 25,
		20, 20, 10, 0, 0, 10, 20, 20,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
}
