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

package transpositiontable

import (
	"testing"

	"github.com/stretchr/testify/require"

	"corvid/internal/types"
	"corvid/internal/zobrist"
)

func TestNewRoundsDownToPowerOfTwoSlots(t *testing.T) {
	tt := New(1)
	require.Greater(t, tt.Len(), 0)
	require.Equal(t, tt.Len(), tt.Len()&-tt.Len(), "slot count must be a power of two")
}

func TestNewUsesDefaultForNonPositiveSize(t *testing.T) {
	tt := New(0)
	require.Equal(t, New(DefaultSizeMB).Len(), tt.Len())
}

func TestStoreThenProbeRoundTrips(t *testing.T) {
	tt := New(1)
	key := zobrist.Key(12345)
	entry := Entry{Key: key, Value: 42, Depth: 3, Bound: BoundExact, BestMove: types.CreateMove(types.SqE2, types.SqE4, types.Normal, types.PtNone)}

	tt.Store(entry)
	got, ok := tt.Probe(key)
	require.True(t, ok)
	require.Equal(t, entry, got)
}

func TestProbeMissReturnsFalse(t *testing.T) {
	tt := New(1)
	_, ok := tt.Probe(zobrist.Key(999))
	require.False(t, ok)
}

func TestStoreAlwaysReplaces(t *testing.T) {
	tt := New(1)
	// Two distinct keys colliding into the same slot (mask is small for a
	// 1MB table, so key and key+slotCount collide by construction).
	slots := uint64(tt.Len())
	first := zobrist.Key(7)
	second := zobrist.Key(7 + slots)

	tt.Store(Entry{Key: first, Value: 1, Bound: BoundExact})
	tt.Store(Entry{Key: second, Value: 2, Bound: BoundExact})

	_, ok := tt.Probe(first)
	require.False(t, ok, "always-replace must drop the first key's entry on collision")
	got, ok := tt.Probe(second)
	require.True(t, ok)
	require.Equal(t, types.Value(2), got.Value)
}

func TestClearRemovesAllEntries(t *testing.T) {
	tt := New(1)
	tt.Store(Entry{Key: zobrist.Key(1), Value: 1, Bound: BoundExact})
	tt.Clear()
	_, ok := tt.Probe(zobrist.Key(1))
	require.False(t, ok)
}
