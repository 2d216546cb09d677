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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"corvid/internal/movegen"
	"corvid/internal/position"
	"corvid/internal/transpositiontable"
	. "corvid/internal/types"
)

func newTestSearch() *Search {
	return NewSearch(transpositiontable.New(1))
}

// TestMateInOne checks spec §8's named scenario: at depth >= 2, the
// search must find the only mating move and report a checkmate score.
func TestMateInOne(t *testing.T) {
	p, err := position.FromFEN("6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1")
	require.NoError(t, err)

	s := newTestSearch()
	result := s.FindBestMove(p, 2*time.Second)

	require.Equal(t, "a1a8", result.Move.StringUci())
	require.GreaterOrEqual(t, result.Depth, 2)
	require.True(t, IsCheckMateValue(result.Score), "score %d must be a mate score", result.Score)
	require.Greater(t, result.Score, Value(0), "the side to move just delivered mate, so its own score must be positive")
}

// TestStalemateGeneratesNoMoves checks spec §8's stalemate case: the
// stalemated side is not in check and has no legal moves.
func TestStalemateGeneratesNoMoves(t *testing.T) {
	// Black king cornered on h8, no legal moves, not in check.
	p, err := position.FromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	require.False(t, movegen.IsInCheck(p, Black))
	require.Empty(t, movegen.LegalMoves(p))
}

// TestThreefoldRepetitionEmptiesGenerator constructs a three-knight-shuffle
// sequence until the same position reappears a third time, per spec §8.
func TestThreefoldRepetitionEmptiesGenerator(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4K2N w - - 0 1")
	require.NoError(t, err)

	shuffle := []Move{
		CreateMove(SqH1, SqG3, Normal, PtNone),
		CreateMove(SqE8, SqD8, Normal, PtNone),
		CreateMove(SqG3, SqH1, Normal, PtNone),
		CreateMove(SqD8, SqE8, Normal, PtNone),
		CreateMove(SqH1, SqG3, Normal, PtNone),
		CreateMove(SqE8, SqD8, Normal, PtNone),
		CreateMove(SqG3, SqH1, Normal, PtNone),
		CreateMove(SqD8, SqE8, Normal, PtNone),
	}

	cur := p
	for _, m := range shuffle {
		cur = cur.MakeMove(m)
	}

	require.True(t, cur.IsDrawByRule())
	require.Empty(t, movegen.Generate(cur))
}

func TestFindBestMoveRefusesConcurrentSearch(t *testing.T) {
	p, err := position.FromFEN(position.StartFen)
	require.NoError(t, err)

	s := newTestSearch()
	require.True(t, s.running.TryAcquire(1))
	result := s.FindBestMove(p, 50*time.Millisecond)
	require.Equal(t, MoveNone, result.Move, "a second concurrent search on the same instance must be refused")
	s.running.Release(1)
}
