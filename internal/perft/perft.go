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

// Package perft counts legal-move-generation nodes for verifying movegen
// correctness against known node counts, and benchmarks search/movegen
// throughput across a range of depths.
package perft

import (
	"sort"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/arborian/protochess/internal/movegen"
	"github.com/arborian/protochess/internal/notation"
	"github.com/arborian/protochess/internal/position"
)

// Perft returns the number of leaf nodes reachable from pos in exactly
// depth plies of legal play. depth <= 0 counts pos itself as one node.
//
// Grounded on protochess-engine-rs's utils/perft.rs: depth 1 short-circuits
// to len(legal moves) rather than recursing a final ply, and a subtree
// that ends the game (a leader captured, a piece landing on a win square,
// or the mover hitting its checks-to-lose limit) is not expanded further
// and contributes no nodes at all, not even the move that caused it — the
// same early-out the original applies before recursing.
func Perft(pos *position.Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	if depth == 1 {
		return uint64(len(movegen.Legal(pos)))
	}

	var nodes uint64
	for _, mv := range movegen.PseudoMoves(pos) {
		if !movegen.IsLegal(pos, mv) {
			continue
		}
		movegen.Apply(pos, mv)
		if gameOver(pos) {
			pos.UnmakeMove()
			continue
		}
		nodes += Perft(pos, depth-1)
		pos.UnmakeMove()
	}
	return nodes
}

// gameOver reports whether the position, immediately after a move, has
// already ended the game for the side now on move: their leaders are all
// gone, a leader sits on a square that wins outright for its owner, or
// checks-to-lose has been reached against them.
func gameOver(pos *position.Position) bool {
	mover := pos.WhosTurn
	if pos.LeaderCount(mover) == 0 {
		return true
	}
	if pos.Rules.ChecksToLose != 0 && pos.TimesInCheck(mover) >= pos.Rules.ChecksToLose {
		return true
	}
	return pieceOnWinningSquare(pos)
}

// pieceOnWinningSquare reports whether any player's leader occupies one of
// that player's Rules.PieceOnSquareWins squares (King-of-the-Hill,
// Racing Kings).
func pieceOnWinningSquare(pos *position.Position) bool {
	for p, ps := range pos.Pieces {
		win := pos.Rules.PieceOnSquareWins[p]
		if win.IsZero() {
			continue
		}
		for _, leader := range ps.Leaders() {
			if !leader.Bitboard.And(win).IsZero() {
				return true
			}
		}
	}
	return false
}

// Divide is one first-ply move's contribution to a Perft count, identified
// by its long-algebraic notation.
type Divide struct {
	Move  string
	Nodes uint64
}

// PerftDivide behaves like Perft but also reports, for each legal first-ply
// move, how many of the total leaf nodes it alone accounts for — the
// standard way to localize a movegen bug against a reference perft count.
// Grounded on protochess-engine-rs's perft_divide, which sorts its printed
// lines by move text; Divide preserves that order instead of printing.
func PerftDivide(pos *position.Position, depth int) (uint64, []Divide) {
	legal := movegen.Legal(pos)
	divides := make([]Divide, 0, len(legal))
	var total uint64
	for _, mv := range legal {
		label := notation.UCI(pos, mv)
		var sub uint64
		if depth <= 1 {
			sub = 1
		} else {
			movegen.Apply(pos, mv)
			if !gameOver(pos) {
				sub = Perft(pos, depth-1)
			}
			pos.UnmakeMove()
		}
		total += sub
		divides = append(divides, Divide{Move: label, Nodes: sub})
	}
	sort.Slice(divides, func(i, j int) bool { return divides[i].Move < divides[j].Move })
	return total, divides
}

// BenchResult is one depth's outcome from Bench.
type BenchResult struct {
	Depth    int
	Nodes    uint64
	Elapsed  time.Duration
	NodesSec float64
}

// Bench runs Perft at every depth from 1 to maxDepth in turn, timing each
// and reporting nodes-per-second, driving a progress bar across the
// depths — the kind of long, countable batch operation
// github.com/schollz/progressbar/v3 is built for (the same library and
// usage shape as raklaptudirm-mess's classical-eval tuner, which wraps its
// own epoch/batch loop in one).
func Bench(pos *position.Position, maxDepth int) []BenchResult {
	results := make([]BenchResult, 0, maxDepth)
	bar := progressbar.NewOptions(maxDepth,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("depth"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
	)
	for depth := 1; depth <= maxDepth; depth++ {
		start := time.Now()
		nodes := Perft(pos, depth)
		elapsed := time.Since(start)
		nps := float64(0)
		if elapsed > 0 {
			nps = float64(nodes) / elapsed.Seconds()
		}
		results = append(results, BenchResult{Depth: depth, Nodes: nodes, Elapsed: elapsed, NodesSec: nps})
		_ = bar.Add(1)
	}
	return results
}
