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

package search

import (
	"sort"

	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/eval"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/movegen"
	"github.com/arborian/protochess/internal/position"
	"github.com/arborian/protochess/internal/tt"
)

// search is the recursive negamax/PVS node at ply plies below the root,
// still needing depth more plies before dropping into quiescence. alpha
// and beta are from the perspective of pos.WhosTurn, as is the returned
// score. isPV marks a principal-variation node (an open, non-null window);
// doNull allows this node to try a null move (disabled for one ply after
// any null move already tried, to avoid doing it twice in a row).
//
// Grounded step for step on protochess-engine-rs's searcher/alphabeta.rs.
func (s *Searcher) search(pos *position.Position, depth, ply int, alpha, beta int, isPV, doNull bool) (int, bool) {
	if ply > 0 && pos.RepetitionCount() >= 3 {
		return 0, false
	}

	if depth <= 0 {
		return s.quiesce(pos, ply, alpha, beta)
	}

	if leaderIsCaptured(pos) {
		return GameOverScore + (s.rootDepth - depth), false
	}

	s.nodesVisited++
	if s.nodesVisited%config.Settings.Search.NodesPerTimeCheck == 0 && s.timedOut() {
		return 0, true
	}

	origAlpha := alpha

	ttMove := move.NullMove
	if entry, ok := s.table.Probe(pos.Zobrist()); ok {
		ttMove = entry.Move
		if int(entry.Depth) >= depth {
			switch entry.Flag {
			case tt.Exact:
				return entry.Value, false
			case tt.Beta:
				if entry.Value >= beta {
					return entry.Value, false
				}
			case tt.Alpha:
				if entry.Value <= alpha {
					return entry.Value, false
				}
			}
		}
	}

	inCheck := movegen.InCheck(pos, pos.WhosTurn)

	if config.Settings.Search.UseNullMove && !isPV && doNull && ply > 0 &&
		depth > config.Settings.Search.NmpMinDepth && !inCheck && eval.CanDoNullMove(pos) {
		movegen.Apply(pos, move.NullMove)
		reduced := depth - config.Settings.Search.NmpReduction
		child, timedOut := s.search(pos, reduced, ply+1, -beta, -beta+1, false, false)
		pos.UnmakeMove()
		if timedOut {
			return 0, true
		}
		if -child >= beta {
			return beta, false
		}
	}

	pseudo := movegen.PseudoMoves(pos)
	s.orderMoves(pos, pseudo, ply, ttMove)

	bestScore := -maxScore
	bestMove := move.NullMove
	legalCount := 0

	for _, mv := range pseudo {
		if !movegen.IsLegal(pos, mv) {
			continue
		}
		legalCount++
		quiet := !mv.IsCapture() && !mv.IsPromotion()

		reduction := 0
		if config.Settings.Search.UseLmr && quiet && !isPV && !inCheck &&
			legalCount > config.Settings.Search.LmrMinLegalMoves && depth >= config.Settings.Search.LmrMinDepth {
			reduction = config.Settings.Search.LmrReduction
			if legalCount > config.Settings.Search.LmrLateMoveCount {
				reduction = config.Settings.Search.LmrLateReduction
			}
		}

		movegen.Apply(pos, mv)

		var child int
		var timedOut bool
		switch {
		case legalCount == 1:
			child, timedOut = s.search(pos, depth-1, ply+1, -beta, -alpha, isPV, true)
		case reduction > 0:
			child, timedOut = s.search(pos, depth-1-reduction, ply+1, -alpha-1, -alpha, false, true)
			if !timedOut && -child > alpha {
				child, timedOut = s.search(pos, depth-1, ply+1, -alpha-1, -alpha, false, true)
			}
			if !timedOut && -child > alpha && -child < beta {
				child, timedOut = s.search(pos, depth-1, ply+1, -beta, -alpha, true, true)
			}
		default:
			child, timedOut = s.search(pos, depth-1, ply+1, -alpha-1, -alpha, false, true)
			if !timedOut {
				if negated := -child; negated > alpha && negated < beta {
					child, timedOut = s.search(pos, depth-1, ply+1, -beta, -alpha, true, true)
				}
			}
		}
		value := -child
		pos.UnmakeMove()

		if timedOut {
			return 0, true
		}

		if value > bestScore {
			bestScore = value
			bestMove = mv
		}
		if value > alpha {
			alpha = value
			if quiet && config.Settings.Search.UseHistory {
				s.history[mv.From][mv.To] += depth
			}
		}
		if alpha >= beta {
			if quiet && config.Settings.Search.UseKiller {
				s.storeKiller(ply, mv)
			}
			break
		}
	}

	if legalCount == 0 {
		if inCheck || pos.Rules.StalematedPlayerLoses {
			return GameOverScore + (s.rootDepth - depth), false
		}
		return 0, false
	}

	flag := tt.Exact
	switch {
	case bestScore <= origAlpha:
		flag = tt.Alpha
	case bestScore >= beta:
		flag = tt.Beta
	}
	s.table.Put(pos.Zobrist(), tt.DepthBucket(depth), flag, bestScore, bestMove)

	return bestScore, false
}

// quiesce extends the search past depth zero through capturing moves only,
// so the static evaluation returned at the search horizon never mistakes a
// mid-exchange position for a quiet one. Grounded on alphabeta.rs's quiesce:
// stand-pat first, then only captures, no repetition check (a position
// reached only through captures cannot repeat one already on the stack).
func (s *Searcher) quiesce(pos *position.Position, ply int, alpha, beta int) (int, bool) {
	if leaderIsCaptured(pos) {
		return GameOverScore + (s.rootDepth - ply), false
	}

	s.nodesVisited++
	if s.nodesVisited%config.Settings.Search.NodesPerTimeCheck == 0 && s.timedOut() {
		return 0, true
	}

	standPat := s.eval.Evaluate(pos)
	if standPat >= beta {
		return beta, false
	}
	if standPat > alpha {
		alpha = standPat
	}

	captures := movegen.Captures(pos)
	s.orderMoves(pos, captures, ply, move.NullMove)

	for _, mv := range captures {
		if !movegen.IsLegal(pos, mv) {
			continue
		}
		movegen.Apply(pos, mv)
		child, timedOut := s.quiesce(pos, ply+1, -beta, -alpha)
		value := -child
		pos.UnmakeMove()

		if timedOut {
			return 0, true
		}
		if value >= beta {
			return beta, false
		}
		if value > alpha {
			alpha = value
		}
	}

	return alpha, false
}

// storeKiller remembers mv as having caused a beta cutoff at ply, keeping
// the two most recent distinct killers (frankkopp-FrankyGo and
// alphabeta.rs both cap the killer table at two per ply).
func (s *Searcher) storeKiller(ply int, mv move.Move) {
	if s.killers[ply][0] == mv {
		return
	}
	s.killers[ply][1] = s.killers[ply][0]
	s.killers[ply][0] = mv
}

// orderMoves sorts moves in place, best-first, by eval.ScoreMove's capture
// and killer/history heuristics, with one override: ttMove (the move this
// position's transposition table entry remembered as best, if any) is
// pushed to the very front regardless of its own score, per spec.md §4.F.
func (s *Searcher) orderMoves(pos *position.Position, moves []move.Move, ply int, ttMove move.Move) {
	killers := s.killers[ply]
	const ttBonus = 1 << 29
	scored := make([]scoredMove, len(moves))
	for i, mv := range moves {
		score := ttBonus
		if mv != ttMove {
			score = s.eval.ScoreMove(pos, mv, killers, s.history[mv.From][mv.To])
		}
		scored[i] = scoredMove{mv: mv, score: score}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	for i, sm := range scored {
		moves[i] = sm.mv
	}
}

type scoredMove struct {
	mv    move.Move
	score int
}
