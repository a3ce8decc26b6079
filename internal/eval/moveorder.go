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
	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/position"
)

// ScoreMove ranks mv for move ordering, highest first: captures by
// MVV-LVA (victim value weighted over attacker value), then killer moves,
// then history-heuristic score for everything else, with a flat promotion
// bonus layered on top. Grounded on protochess-engine-rs's
// searcher/eval.rs::score_move, generalized from its two-player
// `1-current_player` victim lookup to PieceAt (which works for any number
// of players) and from its fixed piece-type table to MaterialValue.
func (e *Evaluator) ScoreMove(pos *position.Position, mv move.Move, killers [2]move.Move, historyScore int) int {
	score := 0

	switch {
	case mv.IsCapture():
		attackerVal, victimVal := 0, 0
		if attacker, _ := pos.PieceAt(mv.From); attacker != nil {
			attackerVal = MaterialValue(attacker.Def)
		}
		if victim, _ := pos.PieceAt(mv.Target); victim != nil {
			victimVal = MaterialValue(victim.Def)
		}
		score += int(config.Settings.Eval.CaptureBaseScore)
		score += 8*victimVal - attackerVal
	case mv == killers[0] || mv == killers[1]:
		score += int(config.Settings.Eval.KillerMoveScore)
	default:
		score += historyScore
	}

	if mv.IsPromotion() {
		score += int(config.Settings.Eval.PromotionScore)
	}
	if pos.Rules.InvertWinConditions {
		score = -score
	}
	return score
}

// CanDoNullMove reports whether null-move pruning may be tried at pos:
// the side to move needs enough non-leader material that giving it a free
// tempo wouldn't trivially refute a real zugzwang. Grounded on
// protochess-engine-rs's can_do_null_move, generalized to sum every
// non-leader piece's MaterialValue rather than reading fixed PieceSet
// fields.
func CanDoNullMove(pos *position.Position) bool {
	total := 0
	for _, p := range pos.Pieces[pos.WhosTurn].All() {
		if p.Def.IsLeader {
			continue
		}
		total += MaterialValue(p.Def) * p.Count()
	}
	return total > int(config.Settings.Search.NmpMaterialMin)
}
