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

// Package position implements the chess board state from spec §3: the
// bitboard-plus-mailbox representation, FEN (de)serialization, Zobrist
// hashing, and copy-make move application.
package position

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"corvid/internal/assert"
	. "corvid/internal/types"
	"corvid/internal/zobrist"
)

// StartFen is the standard chess starting position.
const StartFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedFEN is returned by FromFEN for any FEN string that cannot be
// parsed (spec §7 "Malformed FEN").
var ErrMalformedFEN = errors.New("position: malformed FEN")

// Position is the mutable chess board state described in spec §3. It is a
// plain value type: copying a Position (e.g. `child := p`) yields an
// independent board suitable for copy-make search recursion, except for
// the history slice, which MakeMove always clones explicitly so sibling
// branches never alias each other's backing array.
type Position struct {
	bb    [14]Bitboard // 0=White occ, 1=Black occ, 2+pieceKind(pt,c)=piece bb
	board [SqLength]Piece

	whiteToMove bool
	castle      CastlingRights
	epTarget    Bitboard // at most one bit set

	halfmoveClock  int
	fullmoveNumber int

	zobristKey zobrist.Key
	history    []zobrist.Key
}

// pieceKind returns the spec §3 "twelve piece kinds indexed 0..11" index:
// {WP,BP,WN,BN,WB,BB,WR,BR,WQ,BQ,WK,BK}.
func pieceKind(pt PieceType, c Color) int {
	return int(pt-1)*2 + int(c)
}

// NewPosition returns the standard starting position.
func NewPosition() *Position {
	p, err := FromFEN(StartFen)
	if err != nil {
		panic("position: start FEN must always parse: " + err.Error())
	}
	return p
}

// OccupiedBb returns the occupancy bitboard for one color.
func (p *Position) OccupiedBb(c Color) Bitboard {
	return p.bb[c]
}

// OccupiedAll returns the occupancy of both colors combined.
func (p *Position) OccupiedAll() Bitboard {
	return p.bb[White] | p.bb[Black]
}

// PiecesBb returns the bitboard of pieces of type pt and color c.
func (p *Position) PiecesBb(c Color, pt PieceType) Bitboard {
	return p.bb[2+pieceKind(pt, c)]
}

// PieceAt returns the piece on sq, or PieceNone if empty.
func (p *Position) PieceAt(sq Square) Piece {
	return p.board[sq]
}

// WhiteToMove reports whether it is White's turn.
func (p *Position) WhiteToMove() bool {
	return p.whiteToMove
}

// SideToMove returns the color to move.
func (p *Position) SideToMove() Color {
	if p.whiteToMove {
		return White
	}
	return Black
}

// CastlingRights returns the current castling rights.
func (p *Position) CastlingRights() CastlingRights {
	return p.castle
}

// EpTarget returns the en-passant target bitboard (spec §3: at most one
// bit set).
func (p *Position) EpTarget() Bitboard {
	return p.epTarget
}

// EpSquare returns the en-passant target square, or SqNone if there is
// none.
func (p *Position) EpSquare() Square {
	return p.epTarget.Lsb()
}

// HalfmoveClock returns the halfmove clock (spec §3).
func (p *Position) HalfmoveClock() int {
	return p.halfmoveClock
}

// FullmoveNumber returns the fullmove counter (spec §3).
func (p *Position) FullmoveNumber() int {
	return p.fullmoveNumber
}

// ZobristKey returns the position's current Zobrist key.
func (p *Position) ZobristKey() zobrist.Key {
	return p.zobristKey
}

// KingSquare returns the square of color c's king.
func (p *Position) KingSquare(c Color) Square {
	return p.PiecesBb(c, King).Lsb()
}

// RepetitionCount returns how many times the current position's Zobrist
// key appears in the retained history (spec §4.3 "Early-out").
func (p *Position) RepetitionCount() int {
	n := 0
	for _, k := range p.history {
		if k == p.zobristKey {
			n++
		}
	}
	return n
}

// IsDrawByRule reports the fifty-move rule or threefold repetition per
// spec §3 invariant 5 and §4.3's early-out ("halfmoveClock >= 100" or the
// current Zobrist already appearing >=2 times, i.e. this is its third
// occurrence).
func (p *Position) IsDrawByRule() bool {
	return p.halfmoveClock >= 100 || p.RepetitionCount() >= 2
}

// FromFEN parses a standard six-field FEN string (spec §6).
func FromFEN(fen string) (*Position, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 fields, got %d", ErrMalformedFEN, len(fields))
	}

	p := &Position{}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrMalformedFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank(7 - i)
		f := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				f += File(c - '0')
				continue
			}
			if !f.IsValid() {
				return nil, fmt.Errorf("%w: rank %s overflows", ErrMalformedFEN, rankStr)
			}
			pc := PieceFromChar(byte(c))
			if pc == PieceNone {
				return nil, fmt.Errorf("%w: unknown piece char %q", ErrMalformedFEN, c)
			}
			sq := SquareOf(f, r)
			p.setPiece(sq, pc)
			f++
		}
		if f != FileNone {
			return nil, fmt.Errorf("%w: rank %s is short", ErrMalformedFEN, rankStr)
		}
	}

	switch fields[1] {
	case "w":
		p.whiteToMove = true
	case "b":
		p.whiteToMove = false
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrMalformedFEN, fields[1])
	}

	p.castle = CastlingRightsFromString(fields[2])

	if fields[3] != "-" {
		epSq := MakeSquare(fields[3])
		if epSq == SqNone {
			return nil, fmt.Errorf("%w: bad en-passant square %q", ErrMalformedFEN, fields[3])
		}
		p.epTarget = epSq.Bb()
	}

	hm, err := strconv.Atoi(fields[4])
	if err != nil || hm < 0 {
		return nil, fmt.Errorf("%w: bad halfmove clock %q", ErrMalformedFEN, fields[4])
	}
	p.halfmoveClock = hm

	fm, err := strconv.Atoi(fields[5])
	if err != nil || fm < 1 {
		return nil, fmt.Errorf("%w: bad fullmove number %q", ErrMalformedFEN, fields[5])
	}
	p.fullmoveNumber = fm

	p.zobristKey = p.computeZobristFromScratch()

	if assert.DEBUG {
		assert.Assert(p.PiecesBb(White, King).PopCount() == 1, "white must have exactly one king, got %d", p.PiecesBb(White, King).PopCount())
		assert.Assert(p.PiecesBb(Black, King).PopCount() == 1, "black must have exactly one king, got %d", p.PiecesBb(Black, King).PopCount())
	}

	return p, nil
}

// setPiece places pc on sq in both the mailbox and the bitboards, with no
// Zobrist bookkeeping — only used while constructing a position from
// scratch (FromFEN); MakeMove maintains Zobrist incrementally itself.
func (p *Position) setPiece(sq Square, pc Piece) {
	p.board[sq] = pc
	p.bb[pc.ColorOf()].PushSquare(sq)
	p.bb[2+pieceKind(pc.TypeOf(), pc.ColorOf())].PushSquare(sq)
}

func (p *Position) removePiece(sq Square) {
	pc := p.board[sq]
	if pc == PieceNone {
		return
	}
	p.board[sq] = PieceNone
	p.bb[pc.ColorOf()].PopSquare(sq)
	p.bb[2+pieceKind(pc.TypeOf(), pc.ColorOf())].PopSquare(sq)
}

// computeZobristFromScratch recomputes the Zobrist key from the current
// fields, independent of any incremental bookkeeping. Used by FromFEN and
// by tests that check the §8 "zobrist from scratch" invariant.
func (p *Position) computeZobristFromScratch() zobrist.Key {
	var key zobrist.Key
	for sq := SqA1; sq < SqNone; sq++ {
		if pc := p.board[sq]; pc != PieceNone {
			key ^= zobrist.PieceKeys[sq][pc]
		}
	}
	if !p.whiteToMove {
		key ^= zobrist.BlackToMove
	}
	if p.castle.Has(CastlingWhiteOO) {
		key ^= zobrist.CastlingKey(CastlingWhiteOO)
	}
	if p.castle.Has(CastlingWhiteOOO) {
		key ^= zobrist.CastlingKey(CastlingWhiteOOO)
	}
	if p.castle.Has(CastlingBlackOO) {
		key ^= zobrist.CastlingKey(CastlingBlackOO)
	}
	if p.castle.Has(CastlingBlackOOO) {
		key ^= zobrist.CastlingKey(CastlingBlackOOO)
	}
	if ep := p.EpSquare(); ep != SqNone {
		key ^= zobrist.EpFile[ep.FileOf()]
	}
	return key
}

// ToFEN renders the position back into the standard six-field FEN string.
func (p *Position) ToFEN() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		empty := 0
		for f := FileA; f < FileNone; f++ {
			pc := p.board[SquareOf(f, r)]
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if r != Rank1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(p.SideToMove().String())
	sb.WriteByte(' ')
	sb.WriteString(p.castle.String())
	sb.WriteByte(' ')
	if ep := p.EpSquare(); ep != SqNone {
		sb.WriteString(ep.String())
	} else {
		sb.WriteByte('-')
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveNumber))
	return sb.String()
}

func (p *Position) String() string {
	return p.ToFEN()
}

// StringBoard renders an ASCII 8x8 grid, rank 8 at the top — a debugging
// aid, not part of the transport protocol (spec §6's board representation
// is FEN-only). Format follows the original prototype's board printer
// (SPEC_FULL.md §C.2).
func (p *Position) StringBoard() string {
	var sb strings.Builder
	for i := 0; i < 8; i++ {
		r := Rank(7 - i)
		for f := FileA; f < FileNone; f++ {
			pc := p.board[SquareOf(f, r)]
			c := " " + pc.Char() + " "
			if pc == PieceNone {
				c = "   "
			}
			sb.WriteString(c)
			if f != FileH {
				sb.WriteByte('|')
			}
		}
		if r != Rank1 {
			sb.WriteString("\n---+---+---+---+---+---+---+---\n")
		}
	}
	return sb.String()
}
