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

package history

import (
	"testing"

	"github.com/stretchr/testify/require"

	. "corvid/internal/types"
)

func TestScoreStartsAtZero(t *testing.T) {
	h := New()
	require.Equal(t, int64(0), h.Score(White, SqE2, SqE4))
}

func TestUpdateAccumulatesByDepthSquared(t *testing.T) {
	h := New()
	h.Update(White, SqE2, SqE4, 3)
	require.Equal(t, int64(9), h.Score(White, SqE2, SqE4))
	h.Update(White, SqE2, SqE4, 3)
	require.Equal(t, int64(18), h.Score(White, SqE2, SqE4))
}

func TestUpdateIsPerColorAndSquarePair(t *testing.T) {
	h := New()
	h.Update(White, SqE2, SqE4, 4)
	require.Equal(t, int64(0), h.Score(Black, SqE2, SqE4))
	require.Equal(t, int64(0), h.Score(White, SqD2, SqD4))
}

func TestClearResetsEveryCounter(t *testing.T) {
	h := New()
	h.Update(White, SqE2, SqE4, 5)
	h.Clear()
	require.Equal(t, int64(0), h.Score(White, SqE2, SqE4))
}
