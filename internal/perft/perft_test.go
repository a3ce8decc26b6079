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

package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborian/protochess/internal/fen"
)

func TestPerftZeroDepthCountsOnlyTheRootPosition(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)
	assert.EqualValues(t, 1, Perft(pos, 0))
}

func TestPerftMatchesKnownStartingPositionNodeCounts(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	assert.EqualValues(t, 20, Perft(pos, 1))
	assert.EqualValues(t, 400, Perft(pos, 2))
	assert.EqualValues(t, 8902, Perft(pos, 3))
}

func TestPerftLeavesRootPositionUnchanged(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)
	before := pos.Zobrist()

	Perft(pos, 3)

	assert.Equal(t, before, pos.Zobrist())
}

func TestPerftDivideSumsToTheSameTotalAsPerft(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	total, divides := PerftDivide(pos, 3)
	assert.EqualValues(t, 8902, total)
	assert.Len(t, divides, 20)

	var sum uint64
	for _, d := range divides {
		sum += d.Nodes
	}
	assert.Equal(t, total, sum)
}

func TestPerftDivideOrdersMovesLexicographically(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	_, divides := PerftDivide(pos, 1)
	for i := 1; i < len(divides); i++ {
		assert.LessOrEqual(t, divides[i-1].Move, divides[i].Move)
	}
}

func TestBenchReturnsOneResultPerDepthWithIncreasingNodeCounts(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	results := Bench(pos, 3)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, i+1, r.Depth)
	}
	assert.Less(t, results[0].Nodes, results[1].Nodes)
	assert.Less(t, results[1].Nodes, results[2].Nodes)
}
