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
	"github.com/arborian/protochess/internal/board"
	"github.com/arborian/protochess/internal/piece"
)

// SquareScore returns the positional (piece-square) bonus for a piece of
// kind def, owned by player, sitting at sq on a board shaped dims. Unlike
// frankkopp-FrankyGo's PosMidValue/PosEndValue, which index a fixed 8x8
// table (pkg/types' square-indexed arrays), this is computed from the
// square's geometry relative to dims so it generalizes to any board up to
// 16x16: centralization for pieces that benefit from it, advancement for
// pawn-like pieces, and a mid/end safety-vs-activity split for leaders.
func SquareScore(def piece.Definition, player int, sq int, dims board.Dimensions) Score {
	x, y := board.FromIndex(board.Index(sq))
	centrality := centralityBonus(x, y, dims)

	switch {
	case def.IsLeader:
		return leaderScore(x, y, dims)
	case def.CanDoubleMove:
		// pawn-like: reward advancing toward the far rank, oriented by
		// which way this player's pawns travel (factory.orientation: even
		// players go up the board, odd players go down it).
		return pawnScore(x, y, player, dims)
	case def.AttackJumpDeltas != nil && def.AttackDirs == 0 && len(def.AttackSlidingRuns) == 0:
		// knight-like: mobility lives entirely in the center.
		return Score{Mid: centrality * 4, End: centrality * 2}
	case def.AttackDirs != 0 || len(def.AttackSlidingRuns) > 0:
		// slider: mild centralization, worth more early when lines are open.
		return Score{Mid: centrality * 2, End: centrality}
	default:
		return Score{Mid: centrality, End: centrality}
	}
}

// centralityBonus peaks at the board's center and falls off toward the
// edges, scaled so it stays in a comparable range regardless of board size.
func centralityBonus(x, y board.Coord, dims board.Dimensions) int {
	cx := float64(dims.Width-1) / 2
	cy := float64(dims.Height-1) / 2
	dx := float64(x) - cx
	dy := float64(y) - cy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	dist := dx + dy
	maxDist := cx + cy
	if maxDist == 0 {
		return 0
	}
	return int(20 * (1 - dist/maxDist))
}

func leaderScore(x, y board.Coord, dims board.Dimensions) Score {
	centrality := centralityBonus(x, y, dims)
	edge := 20 - centrality
	// midgame: reward staying tucked toward an edge/corner (king safety);
	// endgame: reward centralizing, once there's no attacking army left to
	// punish it.
	return Score{Mid: edge, End: centrality}
}

func pawnScore(x, y board.Coord, player int, dims board.Dimensions) Score {
	advance := int(y)
	if player%2 != 0 {
		advance = int(dims.Height-1) - int(y)
	}
	// file-centralization is a minor tie-breaker; advancement dominates,
	// more so in the endgame where passed/advanced pawns decide races.
	fileCentrality := centralityBonus(x, y, dims) / 4
	return Score{Mid: advance*2 + fileCentrality, End: advance*4 + fileCentrality}
}
