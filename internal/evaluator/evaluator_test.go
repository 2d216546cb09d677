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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"corvid/internal/position"
	. "corvid/internal/types"
)

func TestEvaluateStartPosIsSymmetric(t *testing.T) {
	p, err := position.FromFEN(position.StartFen)
	require.NoError(t, err)
	require.Equal(t, Value(0), Evaluate(p), "the starting position is materially and positionally symmetric")
}

// TestEvaluateRelativeLaw checks spec §8's law: evaluateRelative(P) =
// evaluate(P) if whiteToMove(P) else -evaluate(P).
func TestEvaluateRelativeLaw(t *testing.T) {
	white, err := position.FromFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, Evaluate(white), EvaluateRelative(white))

	black, err := position.FromFEN("rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1")
	require.NoError(t, err)
	require.Equal(t, -Evaluate(black), EvaluateRelative(black))
}

func TestEvaluateMaterialAdvantage(t *testing.T) {
	// White is missing its queen, Black has every piece.
	p, err := position.FromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1")
	require.NoError(t, err)
	require.Less(t, Evaluate(p), Value(0), "white down a queen must evaluate negative")
}

func TestEvaluateDrawnPositionIsZero(t *testing.T) {
	p, err := position.FromFEN("4k3/8/8/8/8/8/8/4K3 w - - 100 60")
	require.NoError(t, err)
	require.Equal(t, ValueDraw, Evaluate(p), "a fifty-move-rule draw must evaluate to 0 regardless of material")
}

func TestEvaluateCastlingRightsBonus(t *testing.T) {
	withRights, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)
	withoutRights, err := position.FromFEN("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	require.NoError(t, err)

	require.Equal(t, Evaluate(withRights), Evaluate(withoutRights),
		"both sides keep identical rights in both FENs, so the bonus must cancel out")
}
