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

package tt

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arborian/protochess/internal/config"
	"github.com/arborian/protochess/internal/move"
)

func init() {
	config.Setup()
}

func TestNewTableSizesToPowerOfTwo(t *testing.T) {
	table := NewTable(2)
	assert.Equal(t, uint64(32_768), table.Len())

	table = NewTable(64)
	assert.Equal(t, uint64(1_048_576), table.Len())
}

func TestProbeMissOnEmptyTable(t *testing.T) {
	table := NewTable(1)
	_, ok := table.Probe(12345)
	assert.False(t, ok)
}

func TestPutThenProbeRoundTrips(t *testing.T) {
	table := NewTable(4)
	mv := move.Move{From: 12, To: 28, Type: move.Quiet}

	table.Put(111, 4, Alpha, 30, mv)
	assert.EqualValues(t, 1, table.Stats.Puts)

	e, ok := table.Probe(111)
	assert.True(t, ok)
	assert.EqualValues(t, 111, e.Key)
	assert.Equal(t, mv, e.Move)
	assert.EqualValues(t, 4, e.Depth)
	assert.Equal(t, Alpha, e.Flag)
	assert.EqualValues(t, 30, e.Value)
}

func TestPutSameKeyUpdatesWhenAtLeastAsDeep(t *testing.T) {
	table := NewTable(4)
	mv := move.Move{From: 12, To: 28, Type: move.Quiet}

	table.Put(111, 4, Alpha, 30, mv)
	table.Put(111, 5, Beta, 40, mv)
	assert.EqualValues(t, 1, table.Stats.Updates)
	assert.EqualValues(t, 0, table.Stats.Collisions)

	e, ok := table.Probe(111)
	assert.True(t, ok)
	assert.EqualValues(t, 5, e.Depth)
	assert.Equal(t, Beta, e.Flag)
	assert.EqualValues(t, 40, e.Value)
}

func TestPutCollisionReplacesOnlyWhenAtLeastAsDeep(t *testing.T) {
	table := NewTable(4)
	mv := move.Move{From: 12, To: 28, Type: move.Quiet}

	table.Put(111, 6, Exact, 113, mv)
	collidingKey := 111 + table.Len()
	table.Put(collidingKey, 6, Exact, 114, mv)
	assert.EqualValues(t, 1, table.Stats.Collisions)
	assert.EqualValues(t, 1, table.Stats.Overwrites)

	e, ok := table.Probe(collidingKey)
	assert.True(t, ok)
	assert.EqualValues(t, 114, e.Value)

	shallowCollidingKey := 111 + 2*table.Len()
	table.Put(shallowCollidingKey, 4, Beta, 115, mv)
	assert.EqualValues(t, 2, table.Stats.Collisions)
	assert.EqualValues(t, 1, table.Stats.Overwrites, "a shallower result must not evict a deeper one")

	_, ok = table.Probe(shallowCollidingKey)
	assert.False(t, ok)
	e, ok = table.Probe(collidingKey)
	assert.True(t, ok)
	assert.EqualValues(t, 114, e.Value)
}

func TestClearEmptiesTable(t *testing.T) {
	table := NewTable(1)
	mv := move.Move{From: 12, To: 28, Type: move.Quiet}
	table.Put(5, 3, Exact, 10, mv)
	table.Clear()

	_, ok := table.Probe(5)
	assert.False(t, ok)
	assert.Zero(t, table.Stats.Puts)
}

func TestHashfullReflectsOccupancy(t *testing.T) {
	table := NewTable(1)
	mv := move.Move{From: 12, To: 28, Type: move.Quiet}
	assert.Zero(t, table.Hashfull())
	// Hashfull is in whole permille: fill just over 1/1000 of the slots.
	for k := uint64(1); k <= table.Len()/1000+1; k++ {
		table.Put(k, 1, Exact, 0, mv)
	}
	assert.Greater(t, table.Hashfull(), 0)
}

func TestResizeToZeroDisablesStorage(t *testing.T) {
	table := NewTable(1)
	table.Resize(0)
	assert.Zero(t, table.Len())
	mv := move.Move{From: 12, To: 28, Type: move.Quiet}
	table.Put(5, 3, Exact, 10, mv)
	_, ok := table.Probe(5)
	assert.False(t, ok)
}
