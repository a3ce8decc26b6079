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

package smp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/fen"
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/search"
	"github.com/arborian/protochess/internal/tt"
)

func init() {
	config.Setup()
}

func TestDriverSearchReturnsALegalMoveFromTheStartingPosition(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	d := NewDriver(tt.NewTable(1), 4)
	result := d.Search(pos, 3, time.Time{})
	assert.NotEqual(t, move.NullMove, result.Move)
	assert.False(t, result.TimedOut)
}

func TestDriverSearchLeavesRootPositionUntouched(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)
	before := pos.Zobrist()

	d := NewDriver(tt.NewTable(1), 4)
	d.Search(pos, 2, time.Time{})

	assert.Equal(t, before, pos.Zobrist(), "workers search clones; the root Position must be unchanged")
}

func TestDriverWithSingleWorkerMatchesSearcherDepth(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)

	d := NewDriver(tt.NewTable(1), 1)
	result := d.Search(pos, 2, time.Time{})
	assert.Equal(t, 2, result.Depth)
}

func TestNewDriverTreatsNonPositiveWorkersAsOne(t *testing.T) {
	d := NewDriver(tt.NewTable(1), 0)
	assert.Equal(t, 1, d.numWorkers)
}

func TestWaitWhileSearchingReturnsImmediatelyWhenIdle(t *testing.T) {
	d := NewDriver(tt.NewTable(1), 1)
	done := make(chan struct{})
	go func() {
		d.WaitWhileSearching()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("WaitWhileSearching blocked with no search running")
	}
}

func TestWaitWhileSearchingBlocksUntilSearchCompletes(t *testing.T) {
	pos, err := fen.Parse(fen.StartingPosition)
	require.NoError(t, err)
	d := NewDriver(tt.NewTable(1), 4)

	searchDone := make(chan struct{})
	go func() {
		d.Search(pos, 4, time.Time{})
		close(searchDone)
	}()

	waitDone := make(chan struct{})
	go func() {
		d.WaitWhileSearching()
		close(waitDone)
	}()

	select {
	case <-waitDone:
	case <-time.After(5 * time.Second):
		t.Fatal("WaitWhileSearching never unblocked")
	}
	<-searchDone
}

func TestAtomicFetchMaxReturnsPriorValueAndStoresTheMax(t *testing.T) {
	var v int64 = 5
	prior := atomicFetchMax(&v, 3)
	assert.EqualValues(t, 5, prior)
	assert.EqualValues(t, 5, v)

	prior = atomicFetchMax(&v, 9)
	assert.EqualValues(t, 5, prior)
	assert.EqualValues(t, 9, v)
}

func TestBestOfPicksGreatestDepthTiesBrokenByScore(t *testing.T) {
	results := []search.Result{
		{Depth: 3, Score: 10},
		{Depth: 5, Score: -100},
		{Depth: 5, Score: 40},
	}
	best := bestOf(results)
	assert.Equal(t, 5, best.Depth)
	assert.Equal(t, 40, best.Score)
}
