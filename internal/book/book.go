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

// Package book implements the opening book collaborator from spec §6: a
// lookup from a position's Zobrist key to an optional UCI move string,
// played directly instead of invoking search. Format, persistence, and
// build process are explicitly out of scope (spec §6); this package only
// defines the lookup and a simple line-per-entry loader plus a gob cache
// so repeated startups skip re-parsing.
package book

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"corvid/internal/zobrist"
)

// ErrMalformedBookMove is logged by the driver when an entry's stored
// move string is not a legal move in the looked-up position; it is never
// fatal, and the driver falls through to search.
var ErrMalformedBookMove = fmt.Errorf("book: malformed move string")

// Book is a read-only, concurrency-safe Zobrist-keyed move lookup.
type Book struct {
	mu      sync.RWMutex
	entries map[zobrist.Key]string
}

// New returns an empty book.
func New() *Book {
	return &Book{entries: make(map[zobrist.Key]string)}
}

// Lookup returns the book move for key, if any (spec §6 "returns an
// optional UCI move string").
func (b *Book) Lookup(key zobrist.Key) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	m, ok := b.entries[key]
	return m, ok
}

// NumberOfEntries reports how many positions are in the book.
func (b *Book) NumberOfEntries() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.entries)
}

// shardEntry is one gob-encoded cache record.
type shardEntry struct {
	Key  zobrist.Key
	Move string
}

// LoadShards reads every path concurrently (spec allows any book build
// process; shard files let a large book load in parallel the way the
// teacher's line processor parallelizes over goroutines) and merges the
// results into b. Each shard is plain text, one "<zobristHex> <uciMove>"
// entry per line.
func LoadShards(paths []string) (*Book, error) {
	b := New()
	var g errgroup.Group
	var mu sync.Mutex

	for _, path := range paths {
		path := path
		g.Go(func() error {
			shard, err := loadShardFile(path)
			if err != nil {
				return fmt.Errorf("book: loading %s: %w", path, err)
			}
			mu.Lock()
			for k, v := range shard {
				b.entries[k] = v
			}
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return b, nil
}

func loadShardFile(path string) (map[zobrist.Key]string, error) {
	if cached, ok := loadFromCache(path); ok {
		return cached, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	shard := make(map[zobrist.Key]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 {
			continue
		}
		var key uint64
		if _, err := fmt.Sscanf(fields[0], "%x", &key); err != nil {
			continue
		}
		shard[zobrist.Key(key)] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	saveToCache(path, shard)
	return shard, nil
}

func cachePath(path string) string {
	return path + ".cache"
}

func loadFromCache(path string) (map[zobrist.Key]string, bool) {
	f, err := os.Open(cachePath(path))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var entries []shardEntry
	if err := gob.NewDecoder(f).Decode(&entries); err != nil {
		return nil, false
	}
	shard := make(map[zobrist.Key]string, len(entries))
	for _, e := range entries {
		shard[e.Key] = e.Move
	}
	return shard, true
}

func saveToCache(path string, shard map[zobrist.Key]string) {
	f, err := os.Create(cachePath(path))
	if err != nil {
		return
	}
	defer f.Close()

	entries := make([]shardEntry, 0, len(shard))
	for k, v := range shard {
		entries = append(entries, shardEntry{Key: k, Move: v})
	}
	_ = gob.NewEncoder(f).Encode(entries)
}
