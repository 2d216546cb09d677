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
	"testing"

	"github.com/stretchr/testify/require"

	"corvid/internal/position"
	. "corvid/internal/types"
)

// Node counts from https://www.chessprogramming.org/Perft_Results, also
// reproduced in the specification's perft table. Depths are kept shallow
// enough to run as part of a normal test suite; the specification's own
// table extends further for manual/benchmark verification.
func TestPerftStartPos(t *testing.T) {
	const fen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	expected := map[int]uint64{1: 20, 2: 400, 3: 8902, 4: 197281}

	var perft Perft
	for depth, want := range expected {
		require.NoError(t, perft.Run(fen, depth))
		require.Equalf(t, want, perft.Nodes, "depth %d", depth)
	}
}

func TestPerftKiwipete(t *testing.T) {
	const fen = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	expected := map[int]uint64{1: 48, 2: 2039, 3: 97862}

	var perft Perft
	for depth, want := range expected {
		require.NoError(t, perft.Run(fen, depth))
		require.Equalf(t, want, perft.Nodes, "depth %d", depth)
	}
}

func TestPerftEndgame(t *testing.T) {
	const fen = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	expected := map[int]uint64{1: 14, 2: 191, 3: 2812, 4: 43238}

	var perft Perft
	for depth, want := range expected {
		require.NoError(t, perft.Run(fen, depth))
		require.Equalf(t, want, perft.Nodes, "depth %d", depth)
	}
}

func TestPerftPromotionHeavy(t *testing.T) {
	const fen = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	expected := map[int]uint64{1: 6, 2: 264, 3: 9467}

	var perft Perft
	for depth, want := range expected {
		require.NoError(t, perft.Run(fen, depth))
		require.Equalf(t, want, perft.Nodes, "depth %d", depth)
	}
}

func TestPerftPosition5(t *testing.T) {
	const fen = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	expected := map[int]uint64{1: 44, 2: 1486, 3: 62379}

	var perft Perft
	for depth, want := range expected {
		require.NoError(t, perft.Run(fen, depth))
		require.Equalf(t, want, perft.Nodes, "depth %d", depth)
	}
}

// TestEnPassantEdge checks spec §8's named en-passant case: d5c6 must be
// generated as an EnPassant move and must capture the pawn on c5.
func TestEnPassantEdge(t *testing.T) {
	const fen = "rnbqkbnr/pp1p1ppp/8/2pPp3/8/8/PPP1PPPP/RNBQKBNR w KQkq c6 0 1"
	p, err := position.FromFEN(fen)
	require.NoError(t, err)

	from, to := MakeSquare("d5"), MakeSquare("c6")
	var found Move
	for _, sm := range Generate(p) {
		if sm.Move.From() == from && sm.Move.To() == to {
			found = sm.Move
		}
	}
	require.NotEqual(t, MoveNone, found, "d5c6 en-passant capture must be generated")
	require.Equal(t, EnPassant, found.MoveType())

	child := p.MakeMove(found)
	require.Equal(t, PieceNone, child.PieceAt(MakeSquare("c5")), "captured pawn must be removed from c5")
	require.Equal(t, WhitePawn, child.PieceAt(to))
}

// TestCastlingThroughCheck checks spec §8's named case: once the king's
// traversal square is attacked, the corresponding castling move must not
// appear in the generator's output, even though the king itself isn't in
// check and the destination square is safe.
func TestCastlingThroughCheck(t *testing.T) {
	const fen = "4k3/8/8/8/8/8/5r2/4K2R w K - 0 1"
	p, err := position.FromFEN(fen)
	require.NoError(t, err)

	require.False(t, IsInCheck(p, White), "white king must not be in check in this setup")

	for _, sm := range Generate(p) {
		require.NotEqual(t, Castling, sm.Move.MoveType(),
			"castling must be excluded when the traversal square is attacked")
	}
}
