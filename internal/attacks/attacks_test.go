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

package attacks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborian/protochess/internal/bitboard"
)

func TestKingMovesCenter(t *testing.T) {
	sq := toIndex(5, 5)
	moves := KingMoves(sq)
	assert.Equal(t, 8, moves.PopCount())
	assert.True(t, moves.GetBit(toIndex(6, 6)))
	assert.True(t, moves.GetBit(toIndex(4, 4)))
}

func TestKingMovesCorner(t *testing.T) {
	moves := KingMoves(toIndex(0, 0))
	assert.Equal(t, 3, moves.PopCount())
}

func TestKnightMovesCenter(t *testing.T) {
	moves := KnightMoves(toIndex(5, 5))
	assert.Equal(t, 8, moves.PopCount())
}

func TestSlidingAttacksStopsAtBlocker(t *testing.T) {
	var occ bitboard.Bitboard
	occ.SetBit(toIndex(5, 8))
	attacks := SlidingAttacks(toIndex(5, 5), occ, DirectionsOf(North))
	assert.True(t, attacks.GetBit(toIndex(5, 6)))
	assert.True(t, attacks.GetBit(toIndex(5, 7)))
	assert.True(t, attacks.GetBit(toIndex(5, 8)), "includes the blocker itself")
	assert.False(t, attacks.GetBit(toIndex(5, 9)), "does not go past the blocker")
}

func TestSlidingAttacksToGridEdge(t *testing.T) {
	attacks := SlidingAttacks(toIndex(15, 5), bitboard.Empty, DirectionsOf(East))
	assert.True(t, attacks.IsZero())
}

func TestRunAttackMaxSteps(t *testing.T) {
	bb := RunAttack(0, 0, bitboard.Empty, Delta{1, 0}, 2)
	assert.Equal(t, 2, bb.PopCount())
	assert.True(t, bb.GetBit(toIndex(1, 0)))
	assert.True(t, bb.GetBit(toIndex(2, 0)))
	assert.False(t, bb.GetBit(toIndex(3, 0)))
}

func TestJumpAttacksOffGridDropped(t *testing.T) {
	bb := JumpAttacks(0, 0, []Delta{{-1, -1}, {1, 1}})
	assert.Equal(t, 1, bb.PopCount())
	assert.True(t, bb.GetBit(toIndex(1, 1)))
}
