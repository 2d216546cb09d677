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

// Package search implements iterative-deepening, fail-soft negamax
// alpha-beta search with quiescence and transposition-table support (spec
// §4.6). The engine core is strictly single-threaded (spec §5): Search
// uses a weighted semaphore only to refuse a second concurrent search on
// the same instance, not to parallelize work.
package search

import (
	"sort"
	"time"

	"golang.org/x/sync/semaphore"

	"corvid/internal/config"
	"corvid/internal/evaluator"
	"corvid/internal/history"
	"corvid/internal/logging"
	"corvid/internal/movegen"
	"corvid/internal/position"
	"corvid/internal/transpositiontable"
	. "corvid/internal/types"
	"corvid/internal/util"
)

// Search holds the mutable state of one search run: the transposition
// table it reads and writes, the history table move ordering consults,
// and the cancellation flag alphaBeta checks.
type Search struct {
	tt           *transpositiontable.Table
	history      *history.Table
	running      *semaphore.Weighted
	stopFlag     bool
	nodesVisited uint64
	startTime    time.Time
	limit        time.Duration
}

// NewSearch creates a Search backed by its own transposition table.
func NewSearch(tt *transpositiontable.Table) *Search {
	return &Search{
		tt:      tt,
		history: history.New(),
		running: semaphore.NewWeighted(1),
	}
}

// Result is what FindBestMove reports: the chosen move and the score it
// was assigned by the deepest fully completed iteration.
type Result struct {
	Move  Move
	Score Value
	Depth int
	Nodes uint64
}

// FindBestMove is spec §4.6's entry point: run iterative deepening under
// timeBudget and report the best move found.
func (s *Search) FindBestMove(p *position.Position, timeBudget time.Duration) Result {
	if !s.running.TryAcquire(1) {
		return Result{}
	}
	defer s.running.Release(1)

	s.stopFlag = false
	s.nodesVisited = 0
	s.startTime = time.Now()
	s.limit = timeBudget

	score, move, depth := s.iterativeDeepening(p)
	nps := util.Nps(s.nodesVisited, s.elapsed())
	logging.GetSearchLog().Infof("depth=%d score=%d move=%s nodes=%d nps=%d",
		depth, score, move.StringUci(), s.nodesVisited, nps)
	return Result{Move: move, Score: score, Depth: depth, Nodes: s.nodesVisited}
}

// iterativeDeepening loops depth = 1, 2, 3, ... up to MaxSearchDepth,
// retaining the best move from the deepest fully completed iteration
// (spec §4.6 "iterativeDeepening").
func (s *Search) iterativeDeepening(p *position.Position) (Value, Move, int) {
	var bestScore Value
	var bestMove Move
	completedDepth := 0

	depthCap := MaxSearchDepth
	if configured := config.Settings.Search.MaxDepth; configured > 0 && configured < depthCap {
		depthCap = configured
	}

	for depth := 1; depth <= depthCap; depth++ {
		score, move, completed := s.searchRoot(p, depth)
		if !completed {
			break
		}
		bestScore, bestMove, completedDepth = score, move, depth
		if IsCheckMateValue(score) {
			break
		}
		if s.elapsed() > s.limit {
			break
		}
	}
	return bestScore, bestMove, completedDepth
}

// searchRoot runs one full-width alphaBeta call at depth and reports
// whether it completed before the stop flag was raised.
func (s *Search) searchRoot(p *position.Position, depth int) (Value, Move, bool) {
	legal := movegen.Generate(p)
	us := p.SideToMove()
	s.orderByHistory(legal, us)
	if entry, ok := s.tt.Probe(p.ZobristKey()); ok && entry.BestMove != MoveNone {
		legal = moveToFront(legal, entry.BestMove)
	}

	alpha, beta := -Inf, Inf
	best := -Inf
	var bestMove Move
	anyLegal := false

	for _, sm := range legal {
		child := p.MakeMove(sm.Move)
		if movegen.IsInCheck(child, us) {
			continue
		}
		anyLegal = true
		value := -s.alphaBeta(child, -beta, -alpha, depth-1)
		if s.stopFlag {
			return best, bestMove, false
		}
		if value > best {
			best = value
			bestMove = sm.Move
		}
		if value > alpha {
			alpha = value
		}
	}

	if !anyLegal {
		if p.IsDrawByRule() {
			return ValueDraw, MoveNone, true
		}
		if movegen.IsInCheck(p, us) {
			return -CheckMate, MoveNone, true
		}
		return ValueDraw, MoveNone, true
	}
	return best, bestMove, true
}

// alphaBeta is spec §4.6's fail-soft negamax search.
func (s *Search) alphaBeta(p *position.Position, alpha, beta Value, depth int) Value {
	s.nodesVisited++

	if s.elapsed() > s.limit {
		s.stopFlag = true
		return 0
	}

	alphaIn := alpha
	key := p.ZobristKey()
	var ttMove Move
	if entry, ok := s.tt.Probe(key); ok {
		ttMove = entry.BestMove
		if entry.Depth >= depth {
			switch entry.Bound {
			case transpositiontable.BoundExact:
				return entry.Value
			case transpositiontable.BoundLower:
				if entry.Value > alpha {
					alpha = entry.Value
				}
			case transpositiontable.BoundUpper:
				if entry.Value < beta {
					beta = entry.Value
				}
			}
			if alpha >= beta {
				return entry.Value
			}
		}
	}

	if depth == 0 {
		return s.quiesce(p, alpha, beta)
	}

	moves := movegen.Generate(p)
	us := p.SideToMove()
	s.orderByHistory(moves, us)
	if ttMove != MoveNone {
		moves = moveToFront(moves, ttMove)
	}

	best := -Inf
	var bestMove Move
	anyLegal := false

	for _, sm := range moves {
		isCapture := sm.Move.MoveType() == EnPassant || p.PieceAt(sm.Move.To()) != PieceNone
		child := p.MakeMove(sm.Move)
		if movegen.IsInCheck(child, us) {
			continue
		}
		anyLegal = true
		value := -s.alphaBeta(child, -beta, -alpha, depth-1)
		if s.stopFlag {
			return 0
		}
		if value > best {
			best = value
			bestMove = sm.Move
		}
		if value > alpha {
			alpha = value
		}
		if best >= beta {
			if !isCapture {
				s.history.Update(us, sm.Move.From(), sm.Move.To(), depth)
			}
			break
		}
	}

	if !anyLegal {
		if p.IsDrawByRule() {
			return ValueDraw
		}
		if movegen.IsInCheck(p, us) {
			return -(CheckMate + Value(depth))
		}
		return ValueDraw
	}

	bound := transpositiontable.BoundExact
	if best <= alphaIn {
		bound = transpositiontable.BoundUpper
	} else if best >= beta {
		bound = transpositiontable.BoundLower
	}
	s.tt.Store(transpositiontable.Entry{Key: key, Value: best, Depth: depth, Bound: bound, BestMove: bestMove})

	return best
}

// quiesce extends search along captures and checks only, per spec §4.6
// "quiesce".
func (s *Search) quiesce(p *position.Position, alpha, beta Value) Value {
	s.nodesVisited++

	if s.elapsed() > s.limit {
		s.stopFlag = true
		return 0
	}

	standPat := evaluator.EvaluateRelative(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	moves := movegen.Generate(p)
	us := p.SideToMove()
	anyLegal := false

	for _, sm := range moves {
		isCapture := sm.Move.MoveType() == EnPassant || p.PieceAt(sm.Move.To()) != PieceNone
		child := p.MakeMove(sm.Move)
		if movegen.IsInCheck(child, us) {
			continue
		}
		anyLegal = true
		if !isCapture && !movegen.IsInCheck(child, child.SideToMove()) {
			continue
		}
		score := -s.quiesce(child, -beta, -alpha)
		if s.stopFlag {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	if !anyLegal {
		if p.IsDrawByRule() {
			return ValueDraw
		}
		if movegen.IsInCheck(p, us) {
			return -CheckMate
		}
		return ValueDraw
	}

	return alpha
}

func (s *Search) elapsed() time.Duration {
	return time.Since(s.startTime)
}

// orderByHistory stable-sorts moves, descending, by the sum of movegen's
// static ScoredMove.Score and the history-table cutoff count for the
// move's from/to pair. History counts are not bounded below capture
// scores, so a quiet move with a large count can sort ahead of captures.
func (s *Search) orderByHistory(moves []ScoredMove, us Color) {
	sort.SliceStable(moves, func(i, j int) bool {
		hi := moves[i].Score + int32(s.history.Score(us, moves[i].Move.From(), moves[i].Move.To()))
		hj := moves[j].Score + int32(s.history.Score(us, moves[j].Move.From(), moves[j].Move.To()))
		return hi > hj
	})
}

// moveToFront moves the TT/PV move to the head of the list so it's tried
// first (spec §4.6 step 5 "TT move first").
func moveToFront(moves []ScoredMove, m Move) []ScoredMove {
	for i, sm := range moves {
		if sm.Move == m {
			if i != 0 {
				moves[0], moves[i] = moves[i], moves[0]
			}
			break
		}
	}
	return moves
}
