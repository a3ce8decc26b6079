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
	"math/bits"

	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/piece"
)

// MaterialValue returns def's centipawn worth, used both for static material
// scoring and for move-ordering's MVV-LVA term. The six reserved kinds use
// config.Settings.Eval's tunable scores directly; a variant/custom kind with
// no configured score is priced from its own movement shape, since
// Definition carries no other notion of "how good is this piece" (spec.md's
// pieces are described purely as movement data).
func MaterialValue(def piece.Definition) int {
	switch def.ID {
	case piece.King:
		return int(config.Settings.Eval.KingScore)
	case piece.Queen:
		return int(config.Settings.Eval.QueenScore)
	case piece.Rook:
		return int(config.Settings.Eval.RookScore)
	case piece.Bishop:
		return int(config.Settings.Eval.BishopScore)
	case piece.Knight:
		return int(config.Settings.Eval.KnightScore)
	case piece.Pawn:
		return int(config.Settings.Eval.PawnScore)
	default:
		return customMaterialValue(def)
	}
}

// customMaterialValue prices a custom piece kind from its movement pattern:
// a fixed per-direction/per-delta unit, doubled for sliding reach (which
// threatens a variable number of squares rather than one fixed neighbor).
// Leader pieces are priced like King (excluded from material trades)
// regardless of their movement, mirroring how a custom royal piece should
// never be "worth capturing for its material".
func customMaterialValue(def piece.Definition) int {
	if def.IsLeader {
		return int(config.Settings.Eval.KingScore)
	}
	const slidingUnit = 120
	const jumpUnit = 40
	value := bits.OnesCount8(uint8(def.AttackDirs|def.TranslateDirs))*slidingUnit/2 +
		len(def.AttackSlidingRuns)*slidingUnit +
		maxInt(len(def.AttackJumpDeltas), len(def.TranslateJumpDeltas))*jumpUnit
	if value == 0 {
		value = int(config.Settings.Eval.PawnScore)
	}
	return value
}

// PhaseWeight returns how much of the "opening-ness" budget a single
// instance of def consumes, per frankkopp-FrankyGo's GamePhaseValue
// (pkg/types/piecetype.go: 0 for king/pawn, 1 for knight/bishop, 2 for rook,
// 4 for queen). Custom pieces are weighted from the same sliding/jump shape
// customMaterialValue uses, scaled down to that 0-4 range.
func PhaseWeight(def piece.Definition) int {
	switch def.ID {
	case piece.Queen:
		return 4
	case piece.Rook:
		return 2
	case piece.Bishop, piece.Knight:
		return 1
	case piece.King, piece.Pawn:
		return 0
	default:
		if def.IsLeader {
			return 0
		}
		v := customMaterialValue(def)
		switch {
		case v >= int(config.Settings.Eval.QueenScore):
			return 4
		case v >= int(config.Settings.Eval.RookScore):
			return 2
		case v >= int(config.Settings.Eval.KnightScore):
			return 1
		default:
			return 0
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
