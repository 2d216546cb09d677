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

package movegen

import (
	"corvid/internal/position"
	. "corvid/internal/types"
)

// Perft counts the nodes (and some move-kind statistics) reachable from a
// starting position at a fixed depth, the classic move-generator
// correctness check (spec §8 "Perft (boundary behavior)").
type Perft struct {
	Nodes            uint64
	CaptureCounter   uint64
	EnpassantCounter uint64
	CastleCounter    uint64
	PromotionCounter uint64
	CheckCounter     uint64
	CheckMateCounter uint64
}

// Run resets the counters and walks every legal line to depth from fen.
func (perft *Perft) Run(fen string, depth int) error {
	*perft = Perft{}
	if depth < 1 {
		depth = 1
	}
	p, err := position.FromFEN(fen)
	if err != nil {
		return err
	}
	perft.Nodes = perft.walk(p, depth)
	return nil
}

func (perft *Perft) walk(p *position.Position, depth int) uint64 {
	us := p.SideToMove()
	var nodes uint64

	for _, sm := range Generate(p) {
		child := p.MakeMove(sm.Move)
		if IsInCheck(child, us) {
			continue
		}

		if depth > 1 {
			nodes += perft.walk(child, depth-1)
			continue
		}

		nodes++
		switch sm.Move.MoveType() {
		case EnPassant:
			perft.EnpassantCounter++
			perft.CaptureCounter++
		case Castling:
			perft.CastleCounter++
		case Promotion:
			perft.PromotionCounter++
			if p.PieceAt(sm.Move.To()) != PieceNone {
				perft.CaptureCounter++
			}
		default:
			if p.PieceAt(sm.Move.To()) != PieceNone {
				perft.CaptureCounter++
			}
		}
		if IsInCheck(child, child.SideToMove()) {
			perft.CheckCounter++
			if len(LegalMoves(child)) == 0 {
				perft.CheckMateCounter++
			}
		}
	}
	return nodes
}
