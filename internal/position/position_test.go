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

package position

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "corvid/internal/types"
)

func TestFromFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pp1p1ppp/8/2pPp3/8/8/PPP1PPPP/RNBQKBNR w KQkq c6 0 1",
	}
	for _, fen := range fens {
		p, err := FromFEN(fen)
		require.NoError(t, err)
		require.Equal(t, fen, p.ToFEN(), "fromFEN(toFEN(P)) must round-trip field-for-field")
	}
}

func TestFromFENRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"not a fen at all",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
	}
	for _, fen := range cases {
		_, err := FromFEN(fen)
		require.ErrorIs(t, err, ErrMalformedFEN)
	}
}

func TestZobristFromScratchMatchesIncremental(t *testing.T) {
	p, err := FromFEN(StartFen)
	require.NoError(t, err)
	require.Equal(t, p.computeZobristFromScratch(), p.ZobristKey())

	child := p.MakeMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	require.Equal(t, child.computeZobristFromScratch(), child.ZobristKey(),
		"zobrist(makeMove(P, m)) must equal the key computed from scratch on the resulting position")

	grandchild := child.MakeMove(CreateMove(SqB8, SqC6, Normal, PtNone))
	require.Equal(t, grandchild.computeZobristFromScratch(), grandchild.ZobristKey())
}

func TestMakeMoveDoesNotMutateReceiver(t *testing.T) {
	p, err := FromFEN(StartFen)
	require.NoError(t, err)
	before := p.ToFEN()

	_ = p.MakeMove(CreateMove(SqE2, SqE4, Normal, PtNone))

	require.Equal(t, before, p.ToFEN(), "MakeMove must leave the receiver untouched")
}

// TestMakeMoveHistoryIndependence guards against the history slice
// aliasing across sibling branches: two children derived from the same
// parent must not see each other's moves in their history.
func TestMakeMoveHistoryIndependence(t *testing.T) {
	p, err := FromFEN(StartFen)
	require.NoError(t, err)

	childA := p.MakeMove(CreateMove(SqE2, SqE4, Normal, PtNone))
	childB := p.MakeMove(CreateMove(SqD2, SqD4, Normal, PtNone))

	require.Len(t, childA.history, 1)
	require.Len(t, childB.history, 1)
	require.NotEqual(t, childA.zobristKey, childB.zobristKey)

	grandA := childA.MakeMove(CreateMove(SqE7, SqE5, Normal, PtNone))
	require.Len(t, grandA.history, 2)
	require.Len(t, childB.history, 1, "sibling branch's history must not grow from the other branch's descendants")
}

func TestCastlingRightsClearedByRookMove(t *testing.T) {
	p, err := FromFEN(StartFen)
	require.NoError(t, err)
	require.Equal(t, CastlingAny, p.CastlingRights())

	afterRookMove := p.MakeMove(CreateMove(SqA2, SqA4, Normal, PtNone)).
		MakeMove(CreateMove(SqB8, SqA6, Normal, PtNone)).
		MakeMove(CreateMove(SqA1, SqA3, Normal, PtNone))
	require.False(t, afterRookMove.CastlingRights().Has(CastlingWhiteOOO))
	require.True(t, afterRookMove.CastlingRights().Has(CastlingWhiteOO))
}

func TestIsDrawByRuleHalfmoveClock(t *testing.T) {
	p, err := FromFEN("8/8/8/4k3/8/8/8/4K3 w - - 99 50")
	require.NoError(t, err)
	require.False(t, p.IsDrawByRule())

	child := p.MakeMove(CreateMove(SqE1, SqD1, Normal, PtNone))
	require.True(t, child.IsDrawByRule(), "halfmove clock reaching 100 must be a draw")
}
