//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIndexAndFromIndexRoundTrip(t *testing.T) {
	for y := Coord(0); y < Height; y++ {
		for x := Coord(0); x < Width; x++ {
			idx := ToIndex(x, y)
			gotX, gotY := FromIndex(idx)
			assert.Equal(t, x, gotX)
			assert.Equal(t, y, gotY)
		}
	}
}

func TestToIndexMatchesYTimesSixteenPlusX(t *testing.T) {
	assert.EqualValues(t, 0, ToIndex(0, 0))
	assert.EqualValues(t, 15, ToIndex(15, 0))
	assert.EqualValues(t, 16, ToIndex(0, 1))
	assert.EqualValues(t, 255, ToIndex(15, 15))
}

func TestNewDimensionsMarksExactlyTheRectangleInBounds(t *testing.T) {
	dims := NewDimensions(8, 8)
	for y := Coord(0); y < 16; y++ {
		for x := Coord(0); x < 16; x++ {
			want := x < 8 && y < 8
			assert.Equal(t, want, dims.InBounds(x, y), "(%d,%d)", x, y)
		}
	}
	assert.EqualValues(t, 8, dims.Width)
	assert.EqualValues(t, 8, dims.Height)
	assert.Equal(t, 64, dims.Bounds.PopCount())
}

func TestNewDimensionsSupportsNonSquareBoards(t *testing.T) {
	dims := NewDimensions(16, 4)
	assert.True(t, dims.InBounds(15, 3))
	assert.False(t, dims.InBounds(15, 4))
	assert.False(t, dims.InBounds(16, 0))
	assert.Equal(t, 64, dims.Bounds.PopCount())
}

func TestInBoundsRejectsCoordinatesOutsideWidthAndHeight(t *testing.T) {
	dims := NewDimensions(5, 5)
	assert.False(t, dims.InBounds(5, 0))
	assert.False(t, dims.InBounds(0, 5))
	assert.True(t, dims.InBounds(4, 4))
}
