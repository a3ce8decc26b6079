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

package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/eval"
	"github.com/arborian/protochess/internal/fen"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/tt"
)

func init() {
	config.Setup()
}

func newTestSearcher() *Searcher {
	return NewSearcher(tt.NewTable(1), eval.NewEvaluator())
}

func TestSearchReturnsALegalMoveFromTheStartingPosition(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	s := newTestSearcher()
	result := s.Search(pos, 3, time.Time{})
	assert.False(t, result.TimedOut)
	assert.NotEqual(t, move.NullMove, result.Move)
}

func TestSearchPrefersWinningCapture(t *testing.T) {
	// White queen on c4 sits beside an undefended black pawn on d4.
	pos, err := fen.Parse("4k3/8/8/8/2Qp4/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	s := newTestSearcher()
	result := s.Search(pos, 2, time.Time{})
	assert.True(t, result.Move.IsCapture(), "with a free pawn on offer the best move should take it")
}

func TestSearchDetectsStalemateAsDraw(t *testing.T) {
	// Black king on a8 has no legal move and is not in check: stalemate.
	pos, err := fen.Parse("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.NoError(t, err)

	s := newTestSearcher()
	result := s.Search(pos, 1, time.Time{})
	assert.Equal(t, move.NullMove, result.Move)
	assert.Zero(t, result.Score)
}

func TestSearchDetectsCheckmate(t *testing.T) {
	// Classic back-rank mate: black's own pawns block every escape square
	// and the rook checks along the open back rank.
	pos, err := fen.Parse("4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	require.NoError(t, err)

	s := newTestSearcher()
	result := s.Search(pos, 1, time.Time{})
	assert.Equal(t, move.NullMove, result.Move)
	assert.Equal(t, GameOverScore, result.Score)
}

func TestSearchRespectsDeadline(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	// The deadline is only consulted every NodesPerTimeCheck nodes; check
	// on every node so a depth-1 search is long enough to notice it.
	saved := config.Settings.Search.NodesPerTimeCheck
	config.Settings.Search.NodesPerTimeCheck = 1
	defer func() { config.Settings.Search.NodesPerTimeCheck = saved }()

	s := newTestSearcher()
	result := s.Search(pos, 1, time.Now().Add(-time.Second))
	assert.True(t, result.TimedOut)
}

func TestOrderMovesPutsTTMoveFirst(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	s := newTestSearcher()
	moves := []move.Move{
		{From: 0, To: 0, Type: move.Quiet},
		{From: 1, To: 1, Type: move.Quiet},
		{From: 2, To: 2, Type: move.Quiet},
	}
	ttMove := moves[2]
	s.orderMoves(pos, moves, 0, ttMove)
	assert.Equal(t, ttMove, moves[0])
}

func TestStoreKillerKeepsTwoMostRecentDistinctMoves(t *testing.T) {
	s := newTestSearcher()
	first := move.Move{From: 1, To: 2, Type: move.Quiet}
	second := move.Move{From: 3, To: 4, Type: move.Quiet}
	third := move.Move{From: 5, To: 6, Type: move.Quiet}

	s.storeKiller(0, first)
	s.storeKiller(0, second)
	assert.Equal(t, second, s.killers[0][0])
	assert.Equal(t, first, s.killers[0][1])

	s.storeKiller(0, third)
	assert.Equal(t, third, s.killers[0][0])
	assert.Equal(t, second, s.killers[0][1])

	s.storeKiller(0, third)
	assert.Equal(t, third, s.killers[0][0])
	assert.Equal(t, second, s.killers[0][1], "re-storing the current top killer must not shift it down")
}

func TestQuiesceStandPatBeatsBeta(t *testing.T) {
	pos, err := fen.Parse("4k3/8/8/8/8/8/8/4KQ2 w - - 0 1")
	require.NoError(t, err)

	s := newTestSearcher()
	score, timedOut := s.quiesce(pos, 0, -maxScore, -1)
	assert.False(t, timedOut)
	assert.Equal(t, -1, score)
}
