/*
 * FrankyGo - UCI chess engine in GO for learning purposes
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

// Package search implements the alpha-beta/PVS searcher one Lazy-SMP worker
// runs per iteration: a single fixed-depth, deadline-bounded search of a
// Position that returns the best move found, plus quiescence search,
// killer-move and history-heuristic move ordering, null-move pruning and
// late move reductions. Grounded primarily on
// protochess-engine-rs's searcher/alphabeta.rs, whose node procedure this
// follows step for step, and structured after frankkopp-FrankyGo's
// internal/search package (the rootSearch/search split, Result type,
// per-worker Searcher holding its own TT handle, evaluator and
// killer/history tables).
package search

import (
	"time"

	"github.com/op/go-logging"

	myLogging "github.com/arborian/protochess/internal/logging"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/movegen"
	"github.com/arborian/protochess/internal/position"
	"github.com/arborian/protochess/internal/tt"
)

// MaxPly bounds recursion depth and the size of the per-ply killer table;
// no fixed-depth or timed search in practice approaches it. Carried over
// from frankkopp-FrankyGo's types.MaxDepth (128).
const MaxPly = 128

// GameOverScore is the score returned for a position where the side to
// move has already lost its leader (or is checkmated): very far below any
// real evaluation, with (currentRootDepth - d) added per spec so shorter
// paths to the loss score even lower (and the search prefers the longest
// delay when losing, shortest path when winning, by negamax symmetry).
// Grounded on protochess-engine-rs's searcher/alphabeta.rs GAME_OVER_SCORE.
const GameOverScore = -100_000

// maxScore stands in for the Rust original's Centipawns::MAX: large enough
// that negating it never overflows a Go int, used as the initial alpha/beta
// window at the root.
const maxScore = 1 << 30

// Evaluator is the subset of *eval.Evaluator the searcher depends on,
// expressed as an interface so tests can supply a stub without wiring the
// full eval package.
type Evaluator interface {
	Evaluate(pos *position.Position) int
	ScoreMove(pos *position.Position, mv move.Move, killers [2]move.Move, historyScore int) int
}

// Result is what a single fixed-depth search returns: the move judged
// best, its score from the root position's side-to-move perspective, the
// depth actually completed, and whether the deadline was hit before that
// depth finished. Modeled on frankkopp-FrankyGo's search.Result; kept
// minimal here since this engine exposes only the root's best move rather
// than reconstructing a full principal variation from the TT.
type Result struct {
	Move     move.Move
	Score    int
	Depth    int
	TimedOut bool
}

// Searcher holds one worker's private search state: its own killer and
// history tables, plus a handle to the Table shared across every Lazy-SMP
// worker. Constructing one per goroutine (rather than sharing a Searcher)
// is what lets workers run concurrently without locking anything but the
// table itself.
type Searcher struct {
	log   *logging.Logger
	table *tt.Table
	eval  Evaluator

	// killers[ply] holds up to two quiet moves that caused a beta cutoff
	// at that ply in a sibling node, tried early in this node's siblings.
	killers [MaxPly + 1][2]move.Move
	// history[from][to] accumulates depth-weighted credit for quiet moves
	// that raised alpha, used to order moves once captures/killers/TT-move
	// are exhausted. Sized for the largest board this engine supports
	// (16x16 = 256 squares).
	history [256][256]int

	nodesVisited uint64
	rootDepth    int
	deadline     time.Time
}

// NewSearcher creates a Searcher that stores into table and scores
// positions with evaluator.
func NewSearcher(table *tt.Table, evaluator Evaluator) *Searcher {
	return &Searcher{
		log:   myLogging.GetLog(),
		table: table,
		eval:  evaluator,
	}
}

// Search runs a single fixed-depth alpha-beta search of pos, stopping
// early (TimedOut = true) if the wall clock reaches deadline before the
// depth completes; the clock is read once every
// config.Settings.Search.NodesPerTimeCheck nodes. pos is walked forward and back via MakeMove/UnmakeMove
// (movegen.Apply/Position.UnmakeMove) and is restored to its original
// state before Search returns, whether or not the search timed out.
func (s *Searcher) Search(pos *position.Position, depth int, deadline time.Time) Result {
	s.nodesVisited = 0
	s.rootDepth = depth
	s.deadline = deadline

	moves := movegen.Legal(pos)
	ttMove := move.NullMove
	if entry, ok := s.table.Probe(pos.Zobrist()); ok {
		ttMove = entry.Move
	}
	s.orderMoves(pos, moves, 0, ttMove)

	bestMove := move.NullMove
	bestScore := -maxScore
	alpha, beta := -maxScore, maxScore
	legalCount := 0

	for _, mv := range moves {
		movegen.Apply(pos, mv)
		legalCount++

		var child int
		var timedOut bool
		if legalCount == 1 {
			child, timedOut = s.search(pos, depth-1, 1, -beta, -alpha, true, true)
		} else {
			child, timedOut = s.search(pos, depth-1, 1, -alpha-1, -alpha, false, true)
			if !timedOut {
				if negated := -child; negated > alpha && negated < beta {
					child, timedOut = s.search(pos, depth-1, 1, -beta, -alpha, true, true)
				}
			}
		}
		value := -child
		pos.UnmakeMove()

		if timedOut {
			return Result{Move: bestMove, Score: bestScore, Depth: depth - 1, TimedOut: true}
		}

		if value > bestScore {
			bestScore = value
			bestMove = mv
		}
		if value > alpha {
			alpha = value
		}
	}

	if legalCount == 0 {
		if movegen.InCheck(pos, pos.WhosTurn) || pos.Rules.StalematedPlayerLoses {
			return Result{Move: move.NullMove, Score: GameOverScore, Depth: depth}
		}
		return Result{Move: move.NullMove, Score: 0, Depth: depth}
	}

	s.table.Put(pos.Zobrist(), tt.DepthBucket(depth), tt.Exact, bestScore, bestMove)
	return Result{Move: bestMove, Score: bestScore, Depth: depth}
}

// leaderIsCaptured reports whether the side now to move has already lost
// every leader piece, per spec.md's leader_is_captured(pos): this is
// checked from the perspective of whoever is about to move, since a
// capture that removes all of a player's leaders ends the game for them
// the moment it becomes their turn.
func leaderIsCaptured(pos *position.Position) bool {
	return pos.LeaderCount(pos.WhosTurn) == 0
}

// timedOut reports whether the wall clock has reached s.deadline. A zero
// deadline (time.Time{}) means "no deadline", used by fixed-depth searches
// that should only stop on running out of depth.
func (s *Searcher) timedOut() bool {
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}
