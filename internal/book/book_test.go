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

package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"corvid/internal/zobrist"
)

func TestLookupMiss(t *testing.T) {
	b := New()
	_, ok := b.Lookup(zobrist.Key(1))
	require.False(t, ok)
	require.Equal(t, 0, b.NumberOfEntries())
}

func TestLoadShardsParsesLines(t *testing.T) {
	dir := t.TempDir()
	shard := filepath.Join(dir, "shard1.book")
	content := "1a2b3c4d5e6f7081 e2e4\n" + "deadbeefdeadbeef g1f3\n" + "malformed line\n"
	require.NoError(t, os.WriteFile(shard, []byte(content), 0o644))

	b, err := LoadShards([]string{shard})
	require.NoError(t, err)
	require.Equal(t, 2, b.NumberOfEntries())

	move, ok := b.Lookup(zobrist.Key(0x1a2b3c4d5e6f7081))
	require.True(t, ok)
	require.Equal(t, "e2e4", move)
}

func TestLoadShardsUsesCacheOnSecondLoad(t *testing.T) {
	dir := t.TempDir()
	shard := filepath.Join(dir, "shard2.book")
	require.NoError(t, os.WriteFile(shard, []byte("00000000000000ff c2c4\n"), 0o644))

	first, err := LoadShards([]string{shard})
	require.NoError(t, err)
	require.Equal(t, 1, first.NumberOfEntries())
	require.FileExists(t, cachePath(shard))

	// Removing the source file proves the second load came from the cache.
	require.NoError(t, os.Remove(shard))
	second, err := LoadShards([]string{shard})
	require.NoError(t, err)
	require.Equal(t, 1, second.NumberOfEntries())
	move, ok := second.Lookup(zobrist.Key(0xff))
	require.True(t, ok)
	require.Equal(t, "c2c4", move)
}

func TestLoadShardsMissingFileErrors(t *testing.T) {
	_, err := LoadShards([]string{filepath.Join(t.TempDir(), "does-not-exist.book")})
	require.Error(t, err)
}
