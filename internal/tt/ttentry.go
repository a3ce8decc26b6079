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
	"github.com/arborian/protochess/internal/move"
	"github.com/arborian/protochess/internal/zobrist"
)

// Flag classifies the kind of bound a stored value represents.
type Flag int8

const (
	// Null marks a generated-but-never-written slot.
	Null Flag = iota
	// Exact is a fully resolved score.
	Exact
	// Alpha is an upper bound: the real score is <= value.
	Alpha
	// Beta is a lower bound: the real score is >= value.
	Beta
)

func (f Flag) String() string {
	switch f {
	case Exact:
		return "Exact"
	case Alpha:
		return "Alpha"
	case Beta:
		return "Beta"
	default:
		return "Null"
	}
}

// Entry is one slot of the table: the full Zobrist key it was stored
// under, the search depth it was computed at, the bound type, the score,
// and the move judged best at that node. Unlike frankkopp-FrankyGo's
// TtEntry, which bit-packs move/depth/flag/age into 16 bytes tuned for a
// fixed 64-square board, squares here range over a 256-square board and
// PromotionPiece indexes an open-ended custom-piece registry, so the move
// is kept as the plain move.Move struct rather than squeezed into a
// 16-bit code. The table trades some memory density for that
// generality: an Entry takes 64 bytes on a 64-bit platform.
type Entry struct {
	Key   zobrist.Key
	Depth int8
	Flag  Flag
	Value int
	Move  move.Move
}

// empty reports whether this slot has never been written.
func (e *Entry) empty() bool {
	return e.Flag == Null && e.Key == 0
}
