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

package zobrist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedIsDeterministic(t *testing.T) {
	a := newTableSeeded(42)
	b := newTableSeeded(42)
	assert.Equal(t, a, b)
}

func TestDifferentSeedsDiffer(t *testing.T) {
	a := newTableSeeded(42)
	b := newTableSeeded(43)
	assert.NotEqual(t, a, b)
}

func TestKeysAreDistinct(t *testing.T) {
	seen := make(map[Key]bool)
	assert.False(t, seen[PieceSquareKey(0, 0, 0)])
	seen[PieceSquareKey(0, 0, 0)] = true
	assert.False(t, seen[PieceSquareKey(0, 0, 1)])
	assert.False(t, seen[PieceSquareKey(1, 0, 0)])
	assert.False(t, seen[PieceSquareKey(0, 1, 0)])
	assert.False(t, seen[CastlingKey(0, 0)])
	assert.False(t, seen[EnPassantFileKey(0)])
	assert.False(t, seen[TurnKey(0)])
}
