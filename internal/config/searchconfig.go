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

package config

// SearchConfig configures internal/search: transposition-table size, the
// depth cap from spec §4.6, and the non-normative time-budget curve.
type SearchConfig struct {
	TtSizeMB        int
	MaxDepth        int
	TimeBudgetCurve []TimeBudgetStep
}

// TimeBudgetStep is one entry of spec §4.6's piecewise time-budget curve:
// "AllotMs if remaining clock < UnderMs".
type TimeBudgetStep struct {
	UnderMs int
	AllotMs int
}

// defaultTimeBudgetCurve mirrors spec §4.6's example curve exactly.
func defaultTimeBudgetCurve() []TimeBudgetStep {
	return []TimeBudgetStep{
		{UnderMs: 10_000, AllotMs: 1_000},
		{UnderMs: 30_000, AllotMs: 2_000},
		{UnderMs: 60_000, AllotMs: 4_000},
		{UnderMs: 120_000, AllotMs: 6_000},
		{UnderMs: 180_000, AllotMs: 8_000},
		{UnderMs: 240_000, AllotMs: 10_000},
		{UnderMs: 1 << 30, AllotMs: 12_000},
	}
}
