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

package piece

import (
	"github.com/arborian/protochess/internal/attacks"
	"github.com/arborian/protochess/internal/bitboard"
	"github.com/arborian/protochess/internal/move"
)

// Piece is one player's instance of a Definition: the definition itself plus
// a bitboard marking every square currently holding one. Polymorphism across
// the {attack, translate, jump, slide} capability set is achieved entirely
// by inspecting Definition's flags and delta lists — there is no virtual
// dispatch or subclassing.
type Piece struct {
	Def      Definition
	Player   int
	Bitboard bitboard.Bitboard

	inverse Definition
}

// New wraps a Definition as a Piece instance for the given player, with no
// squares occupied yet.
func New(def Definition, player int) *Piece {
	return &Piece{Def: def, Player: player, inverse: def.InverseAttack()}
}

// Inverse returns this piece's precomputed inverse attack pattern — used by
// attacked-square queries to ask "could a piece of this kind, sitting on the
// far end of this ray/jump, attack the square I started from".
func (p *Piece) Inverse() Definition {
	return p.inverse
}

// Count returns how many of this piece kind the player currently has.
func (p *Piece) Count() int {
	return p.Bitboard.PopCount()
}

// Clone returns an independent copy of p: a fresh Piece sharing Def's
// (read-only, set once at construction) delta/run slices but with its own
// Bitboard, safe to mutate from a goroutine without affecting p. Used by
// Position.Clone to give each Lazy-SMP worker its own board to search.
func (p *Piece) Clone() *Piece {
	np := *p
	return &np
}

// RangedMove is one origin square's worth of ranged (bitboard) moves: an
// attack mask (captures) and a translate mask (quiet moves), both already
// restricted to enemies/empty squares and masked to the board's bounds.
// Squares belonging to this piece's promotion rank are excluded — those are
// expanded into discrete Promotion/PromotionCapture moves instead.
type RangedMove struct {
	From          int
	AttackMask    bitboard.Bitboard
	TranslateMask bitboard.Bitboard
}

// OutputMoves appends this piece's ranged moves (one per origin square) and
// discrete promotion moves to outRanged/outDiscrete. enemies is the union of
// every opposing player's occupancy; occOrOOB is the full board occupancy
// with every square outside bounds also treated as occupied (so sliding
// attacks never escape the playable area); empty is bounds with every
// occupied square cleared.
func (p *Piece) OutputMoves(enemies, occOrOOB, empty bitboard.Bitboard, outRanged *[]RangedMove, outDiscrete *[]move.Move) {
	bb := p.Bitboard
	for {
		from := bb.PopLSB()
		if from < 0 {
			break
		}
		x, y := from%16, from/16

		var attackMask, translateMask bitboard.Bitboard

		if p.Def.AttackDirs != 0 {
			attackMask = attackMask.Or(attacks.SlidingAttacks(from, occOrOOB, p.Def.AttackDirs))
		}
		if len(p.Def.AttackJumpDeltas) > 0 {
			attackMask = attackMask.Or(attacks.JumpAttacks(x, y, p.Def.AttackJumpDeltas))
		}
		for _, run := range p.Def.AttackSlidingRuns {
			attackMask = attackMask.Or(attacks.RunPath(x, y, occOrOOB, []attacks.Delta(run)))
		}
		attackMask = attackMask.And(enemies)

		if p.Def.TranslateDirs != 0 {
			translateMask = translateMask.Or(attacks.SlidingAttacks(from, occOrOOB, p.Def.TranslateDirs))
		}
		if len(p.Def.TranslateJumpDeltas) > 0 {
			translateMask = translateMask.Or(attacks.JumpAttacks(x, y, p.Def.TranslateJumpDeltas))
		}
		for _, run := range p.Def.TranslateSlidingRuns {
			translateMask = translateMask.Or(attacks.RunPath(x, y, occOrOOB, []attacks.Delta(run)))
		}
		translateMask = translateMask.And(empty)

		promo := p.Def.PromotionSquares
		if !promo.IsZero() {
			promoAttack := attackMask.And(promo)
			promoTranslate := translateMask.And(promo)
			attackMask = attackMask.AndNot(promo)
			translateMask = translateMask.AndNot(promo)
			expandPromotions(from, promoAttack, move.PromotionCapture, p.Def.PromoVals, outDiscrete)
			expandPromotions(from, promoTranslate, move.Promotion, p.Def.PromoVals, outDiscrete)
		}

		if !attackMask.IsZero() || !translateMask.IsZero() {
			*outRanged = append(*outRanged, RangedMove{From: from, AttackMask: attackMask, TranslateMask: translateMask})
		}
	}
}

// OutputCaptures is the quiescence-search counterpart of OutputMoves: it
// drops every translate (non-capturing) bit, including translate-only
// promotions.
func (p *Piece) OutputCaptures(enemies, occOrOOB bitboard.Bitboard, outRanged *[]RangedMove, outDiscrete *[]move.Move) {
	var ranged []RangedMove
	var discrete []move.Move
	p.OutputMoves(enemies, occOrOOB, bitboard.Empty, &ranged, &discrete)
	for _, rm := range ranged {
		if !rm.AttackMask.IsZero() {
			*outRanged = append(*outRanged, RangedMove{From: rm.From, AttackMask: rm.AttackMask})
		}
	}
	for _, mv := range discrete {
		if mv.IsCapture() {
			*outDiscrete = append(*outDiscrete, mv)
		}
	}
}

func expandPromotions(from int, bits bitboard.Bitboard, typ move.Type, promoVals []int, out *[]move.Move) {
	bits.ForEach(func(to int) {
		for _, pv := range promoVals {
			*out = append(*out, move.Move{From: from, To: to, Target: to, Type: typ, PromotionPiece: pv})
		}
	})
}
