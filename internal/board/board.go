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

// Package board provides the small coordinate types shared by every other
// engine package: file/rank pairs (Coord), packed square indices (Index) and
// board size/shape (Dimensions). Boards may be smaller than the full 16x16
// universe; Dimensions.Bounds masks every square actually in play.
package board

import "github.com/arborian/protochess/internal/bitboard"

// Width and Height are the maximum supported board size.
const (
	Width  = 16
	Height = 16
)

// Coord is a single file or rank coordinate, 0..15.
type Coord = uint8

// Index is a packed square index, 0..255: Index = y*16+x.
type Index = uint8

// ToIndex packs (x, y) into a square index.
func ToIndex(x, y Coord) Index {
	return Index(y)*Width + Index(x)
}

// FromIndex unpacks a square index into (x, y).
func FromIndex(i Index) (Coord, Coord) {
	return Coord(i & 15), Coord(i >> 4)
}

// Dimensions describes the shape of a board: its width and height (both
// <= 16) and a Bounds bitboard marking every playable square. Move
// generation and legality checks mask every candidate square by Bounds so
// that boards smaller than 16x16 behave correctly.
type Dimensions struct {
	Width  Coord
	Height Coord
	Bounds bitboard.Bitboard
}

// NewDimensions builds a Dimensions with a rectangular Bounds of the given
// width and height, anchored at the bottom-left corner (0,0).
func NewDimensions(width, height Coord) Dimensions {
	var bounds bitboard.Bitboard
	for y := Coord(0); y < height; y++ {
		for x := Coord(0); x < width; x++ {
			bounds.SetBit(int(ToIndex(x, y)))
		}
	}
	return Dimensions{Width: width, Height: height, Bounds: bounds}
}

// InBounds reports whether (x, y) is within this Dimensions' playable area.
func (d Dimensions) InBounds(x, y Coord) bool {
	if x >= d.Width || y >= d.Height {
		return false
	}
	return d.Bounds.GetBit(int(ToIndex(x, y)))
}
