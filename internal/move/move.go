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

// Package move defines the Move struct shared by the piece,
// position, move generator and search packages.
package move

// Type enumerates the kind of a Move.
type Type uint8

const (
	Quiet Type = iota
	Capture
	Promotion
	PromotionCapture
	KingsideCastle
	QueensideCastle
	Null
)

// Move is from/to/target plus a type and, for promotions, the promoted-to
// piece kind. target is the captured square for a Capture (almost always
// equal to `to`, except en-passant) or the rook's origin square for a
// castle move.
type Move struct {
	From           int
	To             int
	Target         int
	Type           Type
	PromotionPiece int
}

// IsCapture reports whether this move type removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Type == Capture || m.Type == PromotionCapture
}

// IsPromotion reports whether this move type promotes the moving piece.
func (m Move) IsPromotion() bool {
	return m.Type == Promotion || m.Type == PromotionCapture
}

// IsCastle reports whether this move is a castling move.
func (m Move) IsCastle() bool {
	return m.Type == KingsideCastle || m.Type == QueensideCastle
}

// NullMove is the distinguished move played by null-move pruning: it passes
// the turn without moving any piece.
var NullMove = Move{Type: Null}
