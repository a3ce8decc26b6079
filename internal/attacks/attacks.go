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

// Package attacks precomputes and answers square-attack queries over the
// 16x16 universe: fixed king/knight jump masks and on-the-fly sliding rays
// along the eight compass directions, each stopped by (and including) the
// first blocker in a caller-supplied occupancy bitboard. Boards smaller than
// 16x16 are handled by the caller folding their out-of-bounds mask into that
// occupancy argument before calling in (the "occ_or_not_in_bounds" pattern).
package attacks

import "github.com/arborian/protochess/internal/bitboard"

// Direction identifies one of the eight compass directions used by sliding
// pieces, plus a generic delta step used for jump attacks and custom
// sliding-delta runs.
type Direction int

// The eight compass directions, matching the order PieceDefinition flags are
// declared in.
const (
	North Direction = iota
	South
	East
	West
	Northeast
	Northwest
	Southeast
	Southwest
)

// AllDirections lists every compass direction.
var AllDirections = [8]Direction{North, South, East, West, Northeast, Northwest, Southeast, Southwest}

// Delta is a single (dx, dy) step.
type Delta struct {
	DX, DY int
}

var directionDelta = map[Direction]Delta{
	North:     {0, 1},
	South:     {0, -1},
	East:      {1, 0},
	West:      {-1, 0},
	Northeast: {1, 1},
	Northwest: {-1, 1},
	Southeast: {1, -1},
	Southwest: {-1, -1},
}

// Directions is a bitmask over the eight Direction values.
type Directions uint8

// Has reports whether d is enabled in ds.
func (ds Directions) Has(d Direction) bool {
	return ds&(1<<uint(d)) != 0
}

// DirectionsOf packs the given directions into a Directions mask.
func DirectionsOf(dirs ...Direction) Directions {
	var ds Directions
	for _, d := range dirs {
		ds |= 1 << uint(d)
	}
	return ds
}

// AllCompass is every one of the eight compass directions (a rook+bishop, i.e.
// queen, slider).
var AllCompass = DirectionsOf(North, South, East, West, Northeast, Northwest, Southeast, Southwest)

// Orthogonal is the four rook directions.
var Orthogonal = DirectionsOf(North, South, East, West)

// Diagonal is the four bishop directions.
var Diagonal = DirectionsOf(Northeast, Northwest, Southeast, Southwest)

const gridSize = 16

func inGrid(x, y int) bool {
	return x >= 0 && x < gridSize && y >= 0 && y < gridSize
}

func toIndex(x, y int) int {
	return y*gridSize + x
}

func fromIndex(sq int) (int, int) {
	return sq % gridSize, sq / gridSize
}

var kingMoves [256]bitboard.Bitboard
var knightMoves [256]bitboard.Bitboard

func init() {
	kingSteps := []Delta{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightSteps := []Delta{
		{1, 2}, {2, 1}, {2, -1}, {1, -2},
		{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	for sq := 0; sq < 256; sq++ {
		x, y := fromIndex(sq)
		kingMoves[sq] = JumpAttacks(x, y, kingSteps)
		knightMoves[sq] = JumpAttacks(x, y, knightSteps)
	}
}

// KingMoves returns the precomputed king jump mask from square sq.
func KingMoves(sq int) bitboard.Bitboard {
	return kingMoves[sq]
}

// KnightMoves returns the precomputed knight jump mask from square sq.
func KnightMoves(sq int) bitboard.Bitboard {
	return knightMoves[sq]
}

// JumpAttacks returns the set of squares reachable from (x, y) by any one of
// the given single-step deltas, bounded to the 16x16 universe. Used both for
// King/Knight precompute and for custom pieces' jump_deltas.
func JumpAttacks(x, y int, deltas []Delta) bitboard.Bitboard {
	var bb bitboard.Bitboard
	for _, d := range deltas {
		nx, ny := x+d.DX, y+d.DY
		if inGrid(nx, ny) {
			bb.SetBit(toIndex(nx, ny))
		}
	}
	return bb
}

// SlidingAttacks returns the union, over every direction enabled in dirs, of
// the ray from sq stopped at (and including) the first square set in occ —
// the fixed-direction specialization of the "sliding_moves" contract.
func SlidingAttacks(sq int, occ bitboard.Bitboard, dirs Directions) bitboard.Bitboard {
	var bb bitboard.Bitboard
	x, y := fromIndex(sq)
	for _, d := range AllDirections {
		if !dirs.Has(d) {
			continue
		}
		delta := directionDelta[d]
		bb = bb.Or(RunAttack(x, y, occ, delta, 0))
	}
	return bb
}

// RunAttack walks repeatedly from (x, y) by delta, stopping at (and
// including) the first square set in occ, or at the grid edge. maxSteps
// limits the run length (0 means unbounded, i.e. a full slide); used both for
// the eight fixed compass rays and for a PieceDefinition's custom
// sliding-delta runs.
func RunAttack(x, y int, occ bitboard.Bitboard, delta Delta, maxSteps int) bitboard.Bitboard {
	var bb bitboard.Bitboard
	cx, cy := x, y
	for steps := 0; maxSteps == 0 || steps < maxSteps; steps++ {
		cx += delta.DX
		cy += delta.DY
		if !inGrid(cx, cy) {
			break
		}
		sq := toIndex(cx, cy)
		bb.SetBit(sq)
		if occ.GetBit(sq) {
			break
		}
	}
	return bb
}

// RunPath walks a composite sliding-delta run: a sequence of (possibly
// different) steps applied one after another from (x, y), stopping the
// whole run at (and including) the first square set in occ or at the grid
// edge. This is the general form behind a PieceDefinition's sliding_deltas,
// of which the eight fixed compass rays (RunAttack with a single repeated
// delta) are a special case.
func RunPath(x, y int, occ bitboard.Bitboard, steps []Delta) bitboard.Bitboard {
	var bb bitboard.Bitboard
	cx, cy := x, y
	for _, d := range steps {
		cx += d.DX
		cy += d.DY
		if !inGrid(cx, cy) {
			break
		}
		sq := toIndex(cx, cy)
		bb.SetBit(sq)
		if occ.GetBit(sq) {
			break
		}
	}
	return bb
}

// Ray returns the full unblocked ray from (x, y) in direction d to the edge
// of the 16x16 universe (sq itself excluded).
func Ray(x, y int, d Direction) bitboard.Bitboard {
	return RunAttack(x, y, bitboard.Empty, directionDelta[d], 0)
}

var opposite = map[Direction]Direction{
	North: South, South: North,
	East: West, West: East,
	Northeast: Southwest, Southwest: Northeast,
	Northwest: Southeast, Southeast: Northwest,
}

// Opposite returns the compass direction pointing the other way.
func Opposite(d Direction) Direction {
	return opposite[d]
}

// OppositeDirections returns ds with every direction replaced by its
// opposite — used to build a piece's inverse attack pattern (spec: "attack
// directions negated").
func OppositeDirections(ds Directions) Directions {
	var out Directions
	for _, d := range AllDirections {
		if ds.Has(d) {
			out |= 1 << uint(Opposite(d))
		}
	}
	return out
}

// Negate returns the delta reflected through the origin, (-dx, -dy).
func (d Delta) Negate() Delta {
	return Delta{DX: -d.DX, DY: -d.DY}
}

// MirrorVertical returns the delta reflected across the x-axis, (dx, -dy) —
// used to re-orient a piece defined for player 0's forward direction into
// player 1's (or any odd-numbered player's) forward direction.
func (d Delta) MirrorVertical() Delta {
	return Delta{DX: d.DX, DY: -d.DY}
}

// MirrorVerticalDirections flips every North/South-sensitive direction in ds
// (North<->South, NE<->SE, NW<->SW; East/West are unaffected).
func MirrorVerticalDirections(ds Directions) Directions {
	var out Directions
	mirror := map[Direction]Direction{
		North: South, South: North,
		East: East, West: West,
		Northeast: Southeast, Southeast: Northeast,
		Northwest: Southwest, Southwest: Northwest,
	}
	for _, d := range AllDirections {
		if ds.Has(d) {
			out |= 1 << uint(mirror[d])
		}
	}
	return out
}
