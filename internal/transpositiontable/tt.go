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

// Package transpositiontable implements the fixed-size, always-replace
// transposition table internal/search probes and stores into (spec §4.6
// "TT entry").
package transpositiontable

import (
	"corvid/internal/types"
	"corvid/internal/zobrist"
)

// Bound is the kind of score an entry stores relative to the search
// window that produced it (spec §4.6 step 2).
type Bound uint8

const (
	BoundNone Bound = iota
	BoundExact
	BoundLower
	BoundUpper
)

// Entry is one transposition-table slot: 64-bit key plus the fields spec
// §4.6 lists ("flagByte, value, depth, bestMove optional").
type Entry struct {
	Key      zobrist.Key
	Value    types.Value
	Depth    int
	Bound    Bound
	BestMove types.Move
}

// Table is a fixed-size, always-replace transposition table (spec §4.6
// "Collision policy: always-replace is acceptable").
type Table struct {
	entries []Entry
	mask    uint64
}

// DefaultSizeMB is the table size used when the caller doesn't specify
// one (spec leaves exact sizing implementation-defined).
const DefaultSizeMB = 64

// New allocates a table sized to hold roughly sizeMB megabytes of
// entries, rounded down to a power of two slot count so indexing can use
// a bitmask instead of a modulo.
func New(sizeMB int) *Table {
	if sizeMB <= 0 {
		sizeMB = DefaultSizeMB
	}
	const entrySize = 32 // approximate in-memory footprint of Entry
	want := (sizeMB * 1024 * 1024) / entrySize
	slots := uint64(1)
	for slots*2 <= uint64(want) {
		slots *= 2
	}
	if slots == 0 {
		slots = 1
	}
	return &Table{entries: make([]Entry, slots), mask: slots - 1}
}

func (t *Table) index(key zobrist.Key) uint64 {
	return uint64(key) & t.mask
}

// Probe returns the entry stored for key, if any, and whether it was
// found (the slot may be occupied by a different key, a hash collision
// the always-replace policy accepts).
func (t *Table) Probe(key zobrist.Key) (Entry, bool) {
	e := t.entries[t.index(key)]
	if e.Key != key || e.Bound == BoundNone {
		return Entry{}, false
	}
	return e, true
}

// Store writes an entry, always overwriting whatever previously occupied
// the slot (spec §4.6 "always-replace").
func (t *Table) Store(e Entry) {
	t.entries[t.index(e.Key)] = e
}

// Clear resets every slot (spec §4.6 "cleared between independent search
// invocations").
func (t *Table) Clear() {
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
}

// Len returns the number of slots in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
