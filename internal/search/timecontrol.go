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
	"time"

	"corvid/internal/config"
)

// TimeForMove picks a search-time budget from the remaining clock time,
// walking config.Settings.Search.TimeBudgetCurve (spec §4.6's
// non-normative piecewise curve) in ascending UnderMs order and returning
// the first step's allotment the remaining time falls under; if remaining
// exceeds every step, the last step's allotment applies.
func TimeForMove(remaining time.Duration) time.Duration {
	config.Setup()
	curve := config.Settings.Search.TimeBudgetCurve
	remainingMs := remaining.Milliseconds()
	for _, step := range curve {
		if remainingMs < int64(step.UnderMs) {
			return time.Duration(step.AllotMs) * time.Millisecond
		}
	}
	if len(curve) == 0 {
		return 1 * time.Second
	}
	return time.Duration(curve[len(curve)-1].AllotMs) * time.Millisecond
}
