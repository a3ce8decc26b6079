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

// Package piece implements PieceDefinition/Piece/PieceSet: movement patterns
// expressed as data (direction flags, jump deltas, sliding-delta runs)
// rather than subclasses, per piece and per player.
package piece

import (
	"github.com/arborian/protochess/internal/attacks"
	"github.com/arborian/protochess/internal/bitboard"
)

// Reserved piece kind IDs. Custom (variant-defined) pieces start at
// CustomIDStart.
const (
	King = iota
	Queen
	Rook
	Bishop
	Knight
	Pawn
	CustomIDStart
)

// Run is a single sliding-delta run: a sequence of (dx, dy) steps walked in
// order until a blocker or the grid edge is reached.
type Run []attacks.Delta

// Definition is an immutable descriptor of a piece kind, oriented for one
// particular player (custom pieces register once per player; see Registry).
type Definition struct {
	ID       int
	CharRep  rune
	IsLeader bool
	// CanDoubleMove marks pawn-like pieces that may advance two squares from
	// their starting rank (the double-push / en-passant-creating move).
	CanDoubleMove bool
	CanCastle     bool
	// CanBePromotedTo marks this kind as a legal promotion target.
	CanBePromotedTo bool
	// AttackingIsLegal marks this kind as one whose attacks count toward
	// leader-safety and check detection (spec.md §4.E/§4.F: "whose
	// attacking_is_legal holds"). True for every standard piece; a
	// variant/fairy definition can set it false for a piece that threatens
	// squares without ever making a check "real" (e.g. a non-combative
	// scout piece), in which case move legality and the attacked-square
	// query both ignore it.
	AttackingIsLegal bool

	PromotionSquares bitboard.Bitboard
	PromoVals        []int

	AttackDirs          attacks.Directions
	AttackJumpDeltas    []attacks.Delta
	AttackSlidingRuns   []Run
	TranslateDirs       attacks.Directions
	TranslateJumpDeltas []attacks.Delta
	TranslateSlidingRuns []Run
}

// InverseAttack returns the attack pattern to use when asking "could a piece
// of this kind, standing where the attacker I'm probing from would be,
// attack square X" — attack directions negated and deltas reflected through
// the origin, per spec.md's "inverse attack pattern".
func (d Definition) InverseAttack() Definition {
	inv := d
	inv.AttackDirs = attacks.OppositeDirections(d.AttackDirs)
	inv.AttackJumpDeltas = negateAll(d.AttackJumpDeltas)
	inv.AttackSlidingRuns = reverseAllRuns(d.AttackSlidingRuns)
	return inv
}

func negateAll(ds []attacks.Delta) []attacks.Delta {
	out := make([]attacks.Delta, len(ds))
	for i, d := range ds {
		out[i] = d.Negate()
	}
	return out
}

func reverseAllRuns(runs []Run) []Run {
	out := make([]Run, len(runs))
	for i, run := range runs {
		nr := make(Run, len(run))
		for j, d := range run {
			nr[j] = d.Negate()
		}
		out[i] = nr
	}
	return out
}
