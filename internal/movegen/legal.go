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

package movegen

import (
	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/position"
)

// IsLegal reports whether mv, already known pseudo-legal and about to be
// played by pos.WhosTurn, satisfies spec.md §4.E's legality rule: after
// playing it, either the mover's own leaders are all present and safe, or
// the move captured every enemy leader (the win takes precedence over the
// mover's own safety). Castling carries two extra pre-move restrictions
// that don't fit that post-move check: illegal while in check, and illegal
// if the king's step-over square is attacked.
func IsLegal(pos *position.Position, mv move.Move) bool {
	mover := pos.WhosTurn

	if mv.IsCastle() {
		if InCheck(pos, mover) {
			return false
		}
		kx, ky := board.FromIndex(board.Index(mv.From))
		tx, _ := board.FromIndex(board.Index(mv.To))
		step := kx + 1
		if tx < kx {
			step = kx - 1
		}
		if IsAttackedByAny(pos, int(board.ToIndex(step, ky)), mover) {
			return false
		}
	}

	pos.MakeMove(mv)
	legal := legalAfterMove(pos, mover)
	pos.UnmakeMove()
	return legal
}

func legalAfterMove(pos *position.Position, mover int) bool {
	if allEnemyLeadersGone(pos, mover) {
		return true
	}
	if pos.LeaderCount(mover) == 0 {
		return false
	}
	return !leaderAttacked(pos, mover)
}

func allEnemyLeadersGone(pos *position.Position, mover int) bool {
	for p := 0; p < pos.NumPlayers; p++ {
		if p == mover {
			continue
		}
		if pos.LeaderCount(p) > 0 {
			return false
		}
	}
	return true
}

func leaderAttacked(pos *position.Position, player int) bool {
	return InCheck(pos, player)
}

// Legal enumerates every legal move for the side to move: pseudo-legal
// moves filtered by IsLegal, then — under forced-capture rules (antichess)
// — narrowed to captures only when at least one legal capture exists.
func Legal(pos *position.Position) []move.Move {
	pseudo := PseudoMoves(pos)
	legal := make([]move.Move, 0, len(pseudo))
	for _, mv := range pseudo {
		if IsLegal(pos, mv) {
			legal = append(legal, mv)
		}
	}
	if pos.Rules.CapturingIsForced {
		captures := make([]move.Move, 0, len(legal))
		for _, mv := range legal {
			if mv.IsCapture() {
				captures = append(captures, mv)
			}
		}
		if len(captures) > 0 {
			return captures
		}
	}
	return legal
}

// Apply plays mv for real (as opposed to IsLegal's make/unmake probe): it
// calls Position.MakeMove and then Position.NoteCheck for whichever player
// must move next, completing spec.md §4.D step 8 — check-count bookkeeping
// — which Position itself defers to this package to avoid an import cycle.
// In a two-player game "whoever moves next" and "the mover's opponent" are
// the same player; free-for-all variants with more than two players only
// ever need the immediate next mover's check status for search purposes.
func Apply(pos *position.Position, mv move.Move) {
	pos.MakeMove(mv)
	next := pos.WhosTurn
	if InCheck(pos, next) {
		pos.NoteCheck(next)
	}
}
