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

package eval

import (
	"github.com/op/go-logging"

	"github.com/arborian/protochess/internal/config"
	myLogging "github.com/arborian/protochess/internal/logging"
	"github.com/arborian/protochess/internal/position"
)

// referencePhaseUnit is the total phase weight frankkopp-FrankyGo's
// GamePhaseMax assumes a single standard army pair is worth (2 knights + 2
// bishops + 2 rooks*2 + 1 queen*4 = 12 per side, 24 summed across both sides
// at the start of a standard game). Free-for-all variants with more than two
// players scale the reference by how many player-pairs are in the game, so
// a four-player game's phase fraction doesn't bottom out at "always
// endgame" just because its armies are split four ways instead of two.
const referencePhaseUnit = 24

// Evaluator scores a Position for the side to move, combining material,
// generalized piece-square bonuses and a check-count penalty, per
// protochess-engine-rs's searcher/eval.rs generalized to N players and to
// data-driven (rather than fixed-enum) piece kinds.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator creates an Evaluator using the engine's standard logger.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate returns a centipawn score for pos from the perspective of
// pos.WhosTurn: positive means the side to move is better off.
func (e *Evaluator) Evaluate(pos *position.Position) int {
	mover := pos.WhosTurn
	var score Score

	phaseFrac := gamePhaseFraction(pos)

	for player, ps := range pos.Pieces {
		var playerScore Score
		for _, p := range ps.All() {
			mat := MaterialValue(p.Def)
			count := p.Count()
			playerScore.Mid += mat * count
			playerScore.End += mat * count
			p.Bitboard.ForEach(func(sq int) {
				playerScore.Add(SquareScore(p.Def, player, sq, pos.Dimensions))
			})
		}
		if player == mover {
			score.Add(playerScore)
		} else {
			score.Sub(playerScore)
		}
	}

	value := score.Interpolate(phaseFrac)

	checkPenalty := int(config.Settings.Eval.CheckPenalty)
	value -= checkPenalty * pos.TimesInCheck(mover)
	for player := 0; player < pos.NumPlayers; player++ {
		if player == mover {
			continue
		}
		value += checkPenalty * pos.TimesInCheck(player)
	}

	if pos.Rules.InvertWinConditions {
		value = -value
	}
	return value
}

// gamePhaseFraction returns 1.0 for a full opening army and trends to 0.0 as
// non-leader material comes off the board, scaled by how many player-pairs
// this game has (see referencePhaseUnit).
func gamePhaseFraction(pos *position.Position) float64 {
	total := 0
	for _, ps := range pos.Pieces {
		for _, p := range ps.All() {
			total += PhaseWeight(p.Def) * p.Count()
		}
	}
	pairs := pos.NumPlayers / 2
	if pairs < 1 {
		pairs = 1
	}
	max := referencePhaseUnit * pairs
	frac := float64(total) / float64(max)
	if frac > 1 {
		frac = 1
	}
	if frac < 0 {
		frac = 0
	}
	return frac
}
