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

// CastlingRights is a 4-bit set of {WK, WQ, BK, BQ} castling rights.
type CastlingRights uint8

const (
	CastlingNone    CastlingRights = 0
	CastlingWhiteOO CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
	CastlingWhite   = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny     = CastlingWhite | CastlingBlack
)

func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs != 0
}

func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var sb strings.Builder
	if cr.Has(CastlingWhiteOO) {
		sb.WriteByte('K')
	}
	if cr.Has(CastlingWhiteOOO) {
		sb.WriteByte('Q')
	}
	if cr.Has(CastlingBlackOO) {
		sb.WriteByte('k')
	}
	if cr.Has(CastlingBlackOOO) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// CastlingRightsFromString parses a FEN castling field ("KQkq", any
// subset, or "-").
func CastlingRightsFromString(s string) CastlingRights {
	var cr CastlingRights
	if s == "-" {
		return cr
	}
	for _, c := range s {
		switch c {
		case 'K':
			cr.Add(CastlingWhiteOO)
		case 'Q':
			cr.Add(CastlingWhiteOOO)
		case 'k':
			cr.Add(CastlingBlackOO)
		case 'q':
			cr.Add(CastlingBlackOOO)
		}
	}
	return cr
}
