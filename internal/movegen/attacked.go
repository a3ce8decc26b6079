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
	"github.com/arborian/protochess/internal/attacks"
	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/position"
)

// IsAttackedBy reports whether sq is attacked by any of attacker's pieces,
// per spec.md §4.E's index_in_check: for each of attacker's piece kinds,
// trace its precomputed inverse attack pattern (sliding rays, jump deltas,
// sliding-delta runs) from sq and see whether it reaches one of that kind's
// actual squares. Pieces with AttackingIsLegal false never count.
func IsAttackedBy(pos *position.Position, sq, attacker int) bool {
	occOrOOB := pos.Occupied.Or(pos.Bounds.Not())
	xc, yc := board.FromIndex(board.Index(sq))
	x, y := int(xc), int(yc)

	for _, p := range pos.Pieces[attacker].All() {
		if !p.Def.AttackingIsLegal {
			continue
		}
		inv := p.Inverse()

		if inv.AttackDirs != 0 {
			rays := attacks.SlidingAttacks(sq, occOrOOB, inv.AttackDirs)
			if !rays.And(p.Bitboard).IsZero() {
				return true
			}
		}
		if len(inv.AttackJumpDeltas) > 0 {
			jumps := attacks.JumpAttacks(x, y, inv.AttackJumpDeltas)
			if !jumps.And(p.Bitboard).IsZero() {
				return true
			}
		}
		for _, run := range inv.AttackSlidingRuns {
			path := attacks.RunPath(x, y, occOrOOB, []attacks.Delta(run))
			if !path.And(p.Bitboard).IsZero() {
				return true
			}
		}
	}
	return false
}

// IsAttackedByAny reports whether sq is attacked by any player other than
// defender.
func IsAttackedByAny(pos *position.Position, sq, defender int) bool {
	for p := 0; p < pos.NumPlayers; p++ {
		if p == defender {
			continue
		}
		if IsAttackedBy(pos, sq, p) {
			return true
		}
	}
	return false
}

// InCheck reports whether any of player's leader pieces sits on a square
// attacked by another player.
func InCheck(pos *position.Position, player int) bool {
	for _, leader := range pos.Pieces[player].Leaders() {
		attacked := false
		leader.Bitboard.ForEach(func(sq int) {
			if IsAttackedByAny(pos, sq, player) {
				attacked = true
			}
		})
		if attacked {
			return true
		}
	}
	return false
}
